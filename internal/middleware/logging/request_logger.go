package loggingmw

import (
	"log/slog"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/storefront/internal/logging"
)

// RequestLogger attaches a per-request logger to the request context and
// logs one line when the handler returns. Catalog filters (search, category,
// offset, limit) are logged as "query". Successful liveness and readiness
// checks are logged at debug so orchestrator polling stays out of info logs.
func RequestLogger(base *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			rid := req.Header.Get(echo.HeaderXRequestID)
			if rid == "" {
				rid = c.Response().Header().Get(echo.HeaderXRequestID)
			}

			attrs := []any{
				"method", req.Method,
				"route", c.Path(),
				"url", req.URL.Path,
				"remote_ip", c.RealIP(),
				"user_agent", req.UserAgent(),
			}
			if q := req.URL.RawQuery; q != "" {
				attrs = append(attrs, "query", q)
			}
			if rid != "" {
				attrs = append(attrs, "request_id", rid)
				c.Response().Header().Set(echo.HeaderXRequestID, rid)
			}
			l := base.With(attrs...)
			c.SetRequest(req.WithContext(logging.IntoContext(req.Context(), l)))

			start := time.Now()
			err := next(c)
			if err != nil {
				c.Echo().HTTPErrorHandler(err, c)
			}
			status := c.Response().Status
			done := []any{"status", status, "duration_ms", time.Since(start).Milliseconds()}

			switch {
			case err != nil || status >= 500:
				if err != nil {
					done = append(done, "error", err.Error())
				}
				l.Error("request completed", done...)
			case status >= 400:
				l.Warn("request completed", done...)
			case isHealthCheck(c.Path()):
				l.Debug("request completed", done...)
			default:
				l.Info("request completed", append(done, "bytes", c.Response().Size)...)
			}
			return nil
		}
	}
}

func isHealthCheck(route string) bool {
	return strings.HasPrefix(route, "/health/")
}
