package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/velomir/auto-shop-scheduler/internal/model"
	"github.com/velomir/auto-shop-scheduler/internal/repository"
)

// CustomerHandler serves the customer CRUD endpoints.
type CustomerHandler struct {
	Customers *repository.CustomerRepo
}

func NewCustomerHandler(r *repository.CustomerRepo) *CustomerHandler {
	return &CustomerHandler{Customers: r}
}

// Create handles POST /v1/customers.
func (h *CustomerHandler) Create(c echo.Context) error {
	var body struct {
		Name  string  `json:"name"`
		Phone *string `json:"phone"`
		Email *string `json:"email"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	name := strings.TrimSpace(body.Name)
	if name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Name is required"})
	}
	cust := &model.Customer{Name: name, Phone: body.Phone, Email: body.Email}
	if err := h.Customers.Create(c.Request().Context(), cust); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create customer"})
	}
	return c.JSON(http.StatusCreated, echo.Map{"ok": true, "id": cust.ID})
}

// List handles GET /v1/customers, newest first.
func (h *CustomerHandler) List(c echo.Context) error {
	items, err := h.Customers.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, items)
}

// Get handles GET /v1/customers/:id.
func (h *CustomerHandler) Get(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid id"})
	}
	cust, err := h.Customers.GetByID(c.Request().Context(), id)
	if err != nil {
		if err == repository.ErrNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "customer not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, cust)
}

// Delete handles DELETE /v1/customers/:id. Vehicles and appointments of the
// customer go with it via FK cascade.
func (h *CustomerHandler) Delete(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid id"})
	}
	if err := h.Customers.Delete(c.Request().Context(), id); err != nil {
		if err == repository.ErrNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "customer not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"ok": true})
}
