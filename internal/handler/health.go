package handler

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// Health is a liveness endpoint for load balancers. It returns a plain
// text "ok" with a 200 status and does not touch any dependency.
func Health(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}

// HealthHandler exposes a readiness check that verifies database
// connectivity.
type HealthHandler struct {
	DB *sql.DB
}

func NewHealthHandler(db *sql.DB) *HealthHandler {
	return &HealthHandler{DB: db}
}

// Check pings the database with a short timeout. Responds 200 with
// {"ok":true} when reachable, 500 with the failure reason otherwise.
func (h *HealthHandler) Check(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
	defer cancel()
	if err := h.DB.PingContext(ctx); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"ok": false, "error": "db unreachable"})
	}
	return c.JSON(http.StatusOK, echo.Map{"ok": true})
}
