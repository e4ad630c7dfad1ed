package http

import (
	"mortgage-calculator/internal/metrics"

	"github.com/labstack/echo/v4"
)

// Register mounts every route on e. Extra middleware (idempotency) applies to the calculate route only.
func Register(e *echo.Echo, h *Handler, mh *MortgageHandler, calculateMW ...echo.MiddlewareFunc) {
	e.GET("/health", h.Health)
	e.GET("/metrics", echo.WrapHandler(metrics.Handler()))

	g := e.Group("/mortgage")
	g.POST("/calculate", mh.Calculate, calculateMW...)
	g.GET("/calculations", mh.ListCalculations)
	g.GET("/calculations/:calculation_id", mh.GetCalculation)
}
