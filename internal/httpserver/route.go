package httpserver

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

type Deps struct {
	CatalogHandler *CatalogHTTP
	ContactHandler *ContactHTTP
	HealthHandler  *HealthHTTP
	StaticDir      string
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	api := e.Group("/api")

	api.GET("/services", d.CatalogHandler.ListServices)
	// must stay ahead of /services/:id
	api.GET("/services/featured", d.CatalogHandler.Featured)
	api.GET("/services/:id", d.CatalogHandler.GetService)
	api.GET("/categories", d.CatalogHandler.Categories)
	api.GET("/stats", d.CatalogHandler.Stats)
	api.GET("/health", d.HealthHandler.Health)
	api.POST("/contact", d.ContactHandler.Submit)

	if d.StaticDir != "" {
		e.Use(echomw.StaticWithConfig(echomw.StaticConfig{
			Root:  d.StaticDir,
			HTML5: true,
			Skipper: func(c echo.Context) bool {
				p := c.Request().URL.Path
				return strings.HasPrefix(p, "/api") || strings.HasPrefix(p, "/health")
			},
		}))
	}
}
