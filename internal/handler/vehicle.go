package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/velomir/auto-shop-scheduler/internal/model"
	"github.com/velomir/auto-shop-scheduler/internal/repository"
)

// VehicleHandler serves the vehicle CRUD endpoints. Vehicles also get
// created implicitly by the booking flow; this surface exists for managing
// them directly.
type VehicleHandler struct {
	Vehicles *repository.VehicleRepo
}

func NewVehicleHandler(r *repository.VehicleRepo) *VehicleHandler {
	return &VehicleHandler{Vehicles: r}
}

type vehicleReq struct {
	CustomerID uint64  `json:"customerId"`
	Make       string  `json:"make"`
	Model      string  `json:"model"`
	Year       *int    `json:"year"`
	VIN        *string `json:"vin"`
	Plate      *string `json:"plate"`
}

// Create handles POST /v1/vehicles.
func (h *VehicleHandler) Create(c echo.Context) error {
	var body vehicleReq
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	body.Make = strings.TrimSpace(body.Make)
	body.Model = strings.TrimSpace(body.Model)
	if body.CustomerID == 0 || body.Make == "" || body.Model == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "customerId, make and model are required"})
	}
	v := &model.Vehicle{
		CustomerID: body.CustomerID,
		Make:       body.Make,
		Model:      body.Model,
		Year:       body.Year,
		VIN:        body.VIN,
		Plate:      body.Plate,
	}
	if err := h.Vehicles.Create(c.Request().Context(), v); err != nil {
		if strings.Contains(err.Error(), "1452") { // FK violation: unknown customer
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "unknown customer"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create vehicle"})
	}
	return c.JSON(http.StatusCreated, echo.Map{"ok": true, "id": v.ID})
}

// List handles GET /v1/vehicles. With ?customerId=N it returns that
// customer's vehicles; otherwise all vehicles joined with the owner's name.
func (h *VehicleHandler) List(c echo.Context) error {
	if raw := c.QueryParam("customerId"); raw != "" {
		customerID, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid customerId"})
		}
		items, err := h.Vehicles.ListByCustomer(c.Request().Context(), customerID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
		}
		return c.JSON(http.StatusOK, items)
	}
	items, err := h.Vehicles.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, items)
}

// Update handles PUT /v1/vehicles/:id.
func (h *VehicleHandler) Update(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid id"})
	}
	var body vehicleReq
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	body.Make = strings.TrimSpace(body.Make)
	body.Model = strings.TrimSpace(body.Model)
	if body.Make == "" || body.Model == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "make and model are required"})
	}
	if err := h.Vehicles.Update(c.Request().Context(), id, body.Make, body.Model, body.Year, body.VIN, body.Plate); err != nil {
		if err == repository.ErrNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "vehicle not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"ok": true})
}

// Delete handles DELETE /v1/vehicles/:id. Appointments of the vehicle go
// with it via FK cascade.
func (h *VehicleHandler) Delete(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid id"})
	}
	if err := h.Vehicles.Delete(c.Request().Context(), id); err != nil {
		if err == repository.ErrNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "vehicle not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"ok": true})
}
