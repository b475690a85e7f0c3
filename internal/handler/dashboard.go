package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/velomir/auto-shop-scheduler/internal/repository"
)

// DashboardHandler serves the aggregate counters shown on the shop's
// landing screen.
type DashboardHandler struct {
	Dashboard *repository.DashboardRepo
}

func NewDashboardHandler(r *repository.DashboardRepo) *DashboardHandler {
	return &DashboardHandler{Dashboard: r}
}

// Summary handles GET /v1/dashboard/summary.
func (h *DashboardHandler) Summary(c echo.Context) error {
	s, err := h.Dashboard.Summary(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, s)
}
