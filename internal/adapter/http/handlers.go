package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

type Handler struct {
	history     bool
	idempotency bool
}

// NewHandler reports which optional components are wired in the health payload.
func NewHandler(history, idempotency bool) *Handler {
	return &Handler{history: history, idempotency: idempotency}
}

func enabled(b bool) string {
	if b {
		return "enabled"
	}
	return "disabled"
}

func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"status":      "ok",
		"time":        time.Now().UTC().Format(time.RFC3339Nano),
		"history":     enabled(h.history),
		"idempotency": enabled(h.idempotency),
	})
}
