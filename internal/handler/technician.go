package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/velomir/auto-shop-scheduler/internal/model"
	"github.com/velomir/auto-shop-scheduler/internal/repository"
)

// TechnicianHandler serves the technician roster. Mutations are restricted
// to ADMIN at the routing layer; every authenticated user may list.
type TechnicianHandler struct {
	Technicians *repository.TechnicianRepo
}

func NewTechnicianHandler(r *repository.TechnicianRepo) *TechnicianHandler {
	return &TechnicianHandler{Technicians: r}
}

type technicianReq struct {
	Name       string `json:"name"`
	SkillLevel string `json:"skill_level"`
}

// normalizeSkill coerces unknown or missing skill levels to mid instead of
// rejecting them.
func normalizeSkill(s string) string {
	s = strings.TrimSpace(s)
	if !model.ValidSkillLevel(s) {
		return model.SkillMid
	}
	return s
}

// List handles GET /v1/technicians, ordered by id ascending.
func (h *TechnicianHandler) List(c echo.Context) error {
	items, err := h.Technicians.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, items)
}

// Create handles POST /v1/technicians. Missing skill level defaults to mid.
func (h *TechnicianHandler) Create(c echo.Context) error {
	var body technicianReq
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	name := strings.TrimSpace(body.Name)
	if name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name is required"})
	}
	t := &model.Technician{Name: name, SkillLevel: normalizeSkill(body.SkillLevel)}
	if err := h.Technicians.Create(c.Request().Context(), t); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create technician"})
	}
	return c.JSON(http.StatusCreated, echo.Map{"ok": true, "id": t.ID})
}

// Update handles PUT /v1/technicians/:id.
func (h *TechnicianHandler) Update(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid id"})
	}
	var body technicianReq
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	name := strings.TrimSpace(body.Name)
	if name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name is required"})
	}
	if err := h.Technicians.Update(c.Request().Context(), id, name, normalizeSkill(body.SkillLevel)); err != nil {
		if err == repository.ErrNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "technician not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"ok": true})
}

// Delete handles DELETE /v1/technicians/:id. Fails with 409 while
// appointments still reference the technician.
func (h *TechnicianHandler) Delete(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid id"})
	}
	if err := h.Technicians.Delete(c.Request().Context(), id); err != nil {
		if err == repository.ErrNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "technician not found"})
		}
		if err == repository.ErrConflict {
			return c.JSON(http.StatusConflict, echo.Map{"error": "technician has appointments"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"ok": true})
}
