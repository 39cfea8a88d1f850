package httpserver

import (
	"net/http"
	"os"
	"runtime"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shirou/gopsutil/v4/process"

	"github.com/Skotchmaster/storefront/internal/logging"
)

type HealthHTTP struct {
	Started time.Time
	Now     func() time.Time
}

type memoryReport struct {
	RSS       uint64 `json:"rss"`
	HeapAlloc uint64 `json:"heapAlloc"`
	HeapSys   uint64 `json:"heapSys"`
	Sys       uint64 `json:"sys"`
	NumGC     uint32 `json:"numGC"`
}

type healthReport struct {
	Status    string       `json:"status"`
	Timestamp string       `json:"timestamp"`
	Uptime    float64      `json:"uptime"`
	Memory    memoryReport `json:"memory"`
}

func (h *HealthHTTP) Health(c echo.Context) error {
	ctx := c.Request().Context()

	now := time.Now
	if h.Now != nil {
		now = h.Now
	}
	t := now()

	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)

	mem := memoryReport{
		HeapAlloc: ms.HeapAlloc,
		HeapSys:   ms.HeapSys,
		Sys:       ms.Sys,
		NumGC:     ms.NumGC,
	}

	if p, err := process.NewProcessWithContext(ctx, int32(os.Getpid())); err == nil {
		if mi, err := p.MemoryInfoWithContext(ctx); err == nil && mi != nil {
			mem.RSS = mi.RSS
		} else if err != nil {
			logging.FromContext(ctx).Debug("health_rss_unavailable", "error", err)
		}
	}

	return c.JSON(http.StatusOK, healthReport{
		Status:    "healthy",
		Timestamp: t.UTC().Format(time.RFC3339),
		Uptime:    t.Sub(h.Started).Seconds(),
		Memory:    mem,
	})
}
