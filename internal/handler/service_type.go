package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/velomir/auto-shop-scheduler/internal/model"
	"github.com/velomir/auto-shop-scheduler/internal/repository"
)

// ServiceTypeHandler serves the service catalog. A service's duration
// drives the slot length of every booking that references it; mutations are
// ADMIN-only at the routing layer.
type ServiceTypeHandler struct {
	ServiceTypes *repository.ServiceTypeRepo
}

func NewServiceTypeHandler(r *repository.ServiceTypeRepo) *ServiceTypeHandler {
	return &ServiceTypeHandler{ServiceTypes: r}
}

type serviceTypeReq struct {
	Name            string  `json:"name"`
	DurationMinutes int     `json:"duration_minutes"`
	BasePrice       float64 `json:"base_price"`
}

// List handles GET /v1/service-types.
func (h *ServiceTypeHandler) List(c echo.Context) error {
	items, err := h.ServiceTypes.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, items)
}

// Create handles POST /v1/service-types.
func (h *ServiceTypeHandler) Create(c echo.Context) error {
	var body serviceTypeReq
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	name := strings.TrimSpace(body.Name)
	if name == "" || body.DurationMinutes <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name and positive duration_minutes are required"})
	}
	s := &model.ServiceType{Name: name, DurationMinutes: body.DurationMinutes, BasePrice: body.BasePrice}
	if err := h.ServiceTypes.Create(c.Request().Context(), s); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create service type"})
	}
	return c.JSON(http.StatusCreated, echo.Map{"ok": true, "id": s.ID})
}

// Update handles PUT /v1/service-types/:id. Existing appointments keep the
// start and end they were booked with; a new duration only affects future
// bookings.
func (h *ServiceTypeHandler) Update(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid id"})
	}
	var body serviceTypeReq
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	name := strings.TrimSpace(body.Name)
	if name == "" || body.DurationMinutes <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name and positive duration_minutes are required"})
	}
	if err := h.ServiceTypes.Update(c.Request().Context(), id, name, body.DurationMinutes, body.BasePrice); err != nil {
		if err == repository.ErrNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "service type not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"ok": true})
}

// Delete handles DELETE /v1/service-types/:id. Fails with 409 while
// appointments still reference the service type.
func (h *ServiceTypeHandler) Delete(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid id"})
	}
	if err := h.ServiceTypes.Delete(c.Request().Context(), id); err != nil {
		if err == repository.ErrNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "service type not found"})
		}
		if err == repository.ErrConflict {
			return c.JSON(http.StatusConflict, echo.Map{"error": "service type has appointments"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"ok": true})
}
