// Package router initializes the HTTP router (using Echo).
//
// It registers the middlewares and defines the API route groups,
// mapping specific paths to their corresponding handlers.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/fitstack/trainings-api/internal/handler"
	"github.com/fitstack/trainings-api/internal/middleware"
)

// New builds the Echo instance: global middleware chain, error handler,
// system routes and the API route groups.
func New(h *handler.Handlers, m *middleware.Middlewares) *echo.Echo {
	r := echo.New()
	r.HideBanner = true
	r.HidePort = true

	r.HTTPErrorHandler = m.Global.GlobalErrorHandler

	// Order matters: request id and tracing first so the context enhancer
	// can pick both up when building the request-scoped logger.
	r.Use(m.Global.Recover())
	r.Use(middleware.RequestID())
	r.Use(m.Tracing.NewRelicMiddleware())
	r.Use(m.ContextEnhancer.EnhanceContext())
	r.Use(m.Tracing.EnhanceTracing())
	r.Use(m.Global.CORS())
	r.Use(m.Global.Secure())
	r.Use(m.Global.RequestLogger())

	registerSystemRoutes(r, h)
	registerAuthRoutes(r, h, m)
	registerAPIRoutes(r, h, m)

	return r
}
