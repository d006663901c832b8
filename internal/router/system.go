package router

import (
	"github.com/labstack/echo/v4"

	"github.com/fitstack/trainings-api/internal/handler"
)

// registerSystemRoutes registers endpoints that are not part of business
// logic: health, docs UI and the static assets backing it.
func registerSystemRoutes(r *echo.Echo, h *handler.Handlers) {
	r.GET("/status", h.Health.CheckHealth)

	// Serves openapi.json and openapi.html (and any future docs assets).
	r.Static("/static", "static")

	r.GET("/docs", h.OpenAPI.ServeOpenAPIUI)
}
