package httpserver

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/storefront/internal/logging"
	"github.com/Skotchmaster/storefront/internal/repo"
	"github.com/Skotchmaster/storefront/internal/service"
)

type CatalogHTTP struct {
	Svc *service.CatalogService
}

// ListServices answers with a bare array when no query parameter is given
// and with a {services,total,hasMore} envelope otherwise.
func (h *CatalogHTTP) ListServices(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "catalog.list_services")

	params := service.ListParams{
		Search:   c.QueryParam("search"),
		Category: c.QueryParam("category"),
		Limit:    c.QueryParam("limit"),
		Offset:   c.QueryParam("offset"),
	}

	res, err := h.Svc.ListServices(ctx, params)
	if err != nil {
		reason := "cannot list services"
		if errors.Is(err, service.ErrInvalidPagination) {
			reason = "invalid pagination"
		}
		l.Error("list_services_failed", "status", 500, "reason", reason, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch services")
	}

	if !params.Filtered() {
		return c.JSON(http.StatusOK, res.Services)
	}
	return c.JSON(http.StatusOK, res)
}

func (h *CatalogHTTP) GetService(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "catalog.get_service")

	id := c.Param("id")
	s, err := h.Svc.GetService(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrServiceNotFound) {
			l.Warn("get_service_failed", "status", 404, "reason", "service not found", "id", id)
			return echo.NewHTTPError(http.StatusNotFound, "Service not found")
		}
		l.Error("get_service_failed", "status", 500, "reason", "cannot get service", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch service")
	}

	return c.JSON(http.StatusOK, s)
}

func (h *CatalogHTTP) Featured(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "catalog.featured")

	items, err := h.Svc.Featured(ctx)
	if err != nil {
		l.Error("featured_services_failed", "status", 500, "reason", "cannot list services", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch featured services")
	}
	return c.JSON(http.StatusOK, items)
}

func (h *CatalogHTTP) Categories(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "catalog.categories")

	cats, err := h.Svc.Categories(ctx)
	if err != nil {
		l.Error("categories_failed", "status", 500, "reason", "cannot list services", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch categories")
	}
	return c.JSON(http.StatusOK, map[string]any{"categories": cats})
}

func (h *CatalogHTTP) Stats(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "catalog.stats")

	st, err := h.Svc.Stats(ctx)
	if err != nil {
		l.Error("stats_failed", "status", 500, "reason", "cannot aggregate catalog", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch statistics")
	}
	return c.JSON(http.StatusOK, st)
}
