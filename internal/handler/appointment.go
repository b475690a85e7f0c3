package handler

import (
	"context"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/velomir/auto-shop-scheduler/internal/model"
	"github.com/velomir/auto-shop-scheduler/internal/queue"
	"github.com/velomir/auto-shop-scheduler/internal/repository"
	"github.com/velomir/auto-shop-scheduler/internal/schedule"
	queue_publisher "github.com/velomir/auto-shop-scheduler/internal/service"
)

// AppointmentHandler owns the booking flow and the appointment read/status
// endpoints. Booking runs as a single transaction so a scheduling failure
// never leaves a half-created vehicle or appointment behind.
type AppointmentHandler struct {
	Appointments *repository.AppointmentRepo
	Vehicles     *repository.VehicleRepo
	ServiceTypes *repository.ServiceTypeRepo
	Technicians  *repository.TechnicianRepo
	History      *repository.StatusHistoryRepo
	Customers    *repository.CustomerRepo
}

func NewAppointmentHandler(
	a *repository.AppointmentRepo,
	v *repository.VehicleRepo,
	s *repository.ServiceTypeRepo,
	t *repository.TechnicianRepo,
	h *repository.StatusHistoryRepo,
	c *repository.CustomerRepo,
) *AppointmentHandler {
	return &AppointmentHandler{
		Appointments: a, Vehicles: v, ServiceTypes: s,
		Technicians: t, History: h, Customers: c,
	}
}

type bookVehiclePart struct {
	Make  string  `json:"make"`
	Model string  `json:"model"`
	Year  *int    `json:"year"`
	VIN   *string `json:"vin"`
	Plate *string `json:"plate"`
}

// preferredStartLayouts are the accepted ISO-8601 shapes for preferredStart.
// Zone-less forms are read as UTC.
var preferredStartLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

func parsePreferredStart(s string) (time.Time, error) {
	var lastErr error
	for _, layout := range preferredStartLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t.UTC(), nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

type bookReq struct {
	CustomerID     uint64          `json:"customerId"`
	Vehicle        bookVehiclePart `json:"vehicle"`
	ServiceTypeID  uint64          `json:"serviceTypeId"`
	PreferredStart *string         `json:"preferredStart"`
	AutoSchedule   bool            `json:"autoSchedule"`
	Notes          *string         `json:"notes"`
}

// Create handles POST /v1/appointments. It inserts a fresh vehicle for the
// customer, finds a slot and technician, creates the appointment in status
// scheduled and appends the first status_history row, all in one
// transaction. Scheduling failures (no technicians, preferred slot
// conflicts, exhausted search horizon) roll everything back and come back
// as 409 with the failure message.
func (h *AppointmentHandler) Create(c echo.Context) error {
	var req bookReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	req.Vehicle.Make = strings.TrimSpace(req.Vehicle.Make)
	req.Vehicle.Model = strings.TrimSpace(req.Vehicle.Model)
	if req.CustomerID == 0 || req.Vehicle.Make == "" || req.Vehicle.Model == "" || req.ServiceTypeID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Missing required fields"})
	}

	var preferred *time.Time
	if req.PreferredStart != nil && strings.TrimSpace(*req.PreferredStart) != "" {
		t, err := parsePreferredStart(strings.TrimSpace(*req.PreferredStart))
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid preferredStart"})
		}
		preferred = &t
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	svc, err := h.ServiceTypes.GetByID(ctx, req.ServiceTypeID)
	if err != nil {
		if err == repository.ErrServiceTypeNotFound {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid service type"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	duration := time.Duration(svc.DurationMinutes) * time.Minute

	tx, err := h.Appointments.DB().BeginTx(ctx, nil)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not start booking"})
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	// Lock the technician registry first. Concurrent bookings serialize on
	// this read, so the busy snapshot below stays authoritative until commit.
	techIDs, err := h.Technicians.ListIDsForUpdateTx(ctx, tx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}

	veh := &model.Vehicle{
		CustomerID: req.CustomerID,
		Make:       req.Vehicle.Make,
		Model:      req.Vehicle.Model,
		Year:       req.Vehicle.Year,
		VIN:        req.Vehicle.VIN,
		Plate:      req.Vehicle.Plate,
	}
	if err := h.Vehicles.CreateTx(ctx, tx, veh); err != nil {
		if strings.Contains(err.Error(), "1452") { // FK violation: unknown customer
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "unknown customer"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create vehicle"})
	}

	now := time.Now().UTC()
	anchor := now
	if preferred != nil {
		anchor = *preferred
	}
	anchor = schedule.ClampToWorkday(anchor)
	// One snapshot covers the whole search horizon plus one spare day for
	// appointments running past the last searched workday.
	windowFrom := time.Date(anchor.Year(), anchor.Month(), anchor.Day(), 0, 0, 0, 0, time.UTC)
	windowTo := windowFrom.AddDate(0, 0, 8)

	busy, err := h.Appointments.ActiveWindowTx(ctx, tx, windowFrom, windowTo)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	snap := schedule.NewSnapshot(busy)

	asg, err := schedule.FindSlot(schedule.Request{
		Duration:      duration,
		Preferred:     preferred,
		AutoSchedule:  req.AutoSchedule,
		TechnicianIDs: techIDs,
		Now:           now,
	}, snap)
	if err != nil {
		if schedule.IsUnschedulable(err) {
			return c.JSON(http.StatusConflict, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "scheduling failed"})
	}

	rec := &repository.AppointmentRecord{
		CustomerID:    req.CustomerID,
		VehicleID:     veh.ID,
		ServiceTypeID: req.ServiceTypeID,
		TechnicianID:  asg.TechnicianID,
		StartTime:     asg.Start,
		EndTime:       asg.End,
		Status:        model.StatusScheduled,
		Notes:         req.Notes,
	}
	if err := h.Appointments.CreateTx(ctx, tx, rec); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create appointment"})
	}
	if err := h.History.AppendTx(ctx, tx, rec.ID, model.StatusScheduled); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not record status"})
	}

	if err := tx.Commit(); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not commit booking"})
	}
	committed = true

	// Best effort: booking already succeeded, a broker outage must not fail
	// the request.
	go h.publishBooked(rec, veh, svc.Name)

	return c.JSON(http.StatusCreated, echo.Map{"ok": true, "id": rec.ID})
}

// publishBooked enriches the booked appointment with display names and
// publishes it. Runs outside the request; errors are only logged.
func (h *AppointmentHandler) publishBooked(rec *repository.AppointmentRecord, veh *model.Vehicle, serviceName string) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	customerName := ""
	if cust, err := h.Customers.GetByID(ctx, rec.CustomerID); err == nil {
		customerName = cust.Name
	}
	vehicleLabel := veh.Make + " " + veh.Model
	if veh.Plate != nil && *veh.Plate != "" {
		vehicleLabel += " " + *veh.Plate
	}

	ev := queue.AppointmentBookedEvent{
		AppointmentID: rec.ID,
		CustomerID:    rec.CustomerID,
		CustomerName:  customerName,
		VehicleID:     rec.VehicleID,
		Vehicle:       vehicleLabel,
		ServiceTypeID: rec.ServiceTypeID,
		ServiceName:   serviceName,
		TechnicianID:  rec.TechnicianID,
		StartTime:     rec.StartTime.Format(time.RFC3339),
		EndTime:       rec.EndTime.Format(time.RFC3339),
		BookedAt:      time.Now().UTC().Format(time.RFC3339),
	}
	if err := queue_publisher.PublishAppointmentBooked(ctx, ev); err != nil {
		log.Printf("appointment %d: publish booked event failed: %v", rec.ID, err)
	}
}

// List handles GET /v1/appointments. The optional ?scope=today query narrows
// the result to appointments starting on the current UTC date.
func (h *AppointmentHandler) List(c echo.Context) error {
	todayOnly := c.QueryParam("scope") == "today"
	items, err := h.Appointments.List(c.Request().Context(), todayOnly)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, items)
}

// UpdateStatus handles POST /v1/appointments/:id/status. The new status and
// its audit row are written in one transaction. Any status may follow any
// other; the shop corrects mistakes by moving the appointment again.
func (h *AppointmentHandler) UpdateStatus(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var body struct {
		Status string `json:"status"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if !model.ValidStatus(body.Status) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid status"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	tx, err := h.Appointments.DB().BeginTx(ctx, nil)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	if err := h.Appointments.UpdateStatusTx(ctx, tx, id, body.Status); err != nil {
		if err == repository.ErrNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "appointment not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}
	if err := h.History.AppendTx(ctx, tx, id, body.Status); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not record status"})
	}
	if err := tx.Commit(); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}
	committed = true

	return c.JSON(http.StatusOK, echo.Map{"ok": true})
}

// HistoryList handles GET /v1/appointments/:id/history and returns the
// append-only status trail, oldest first.
func (h *AppointmentHandler) HistoryList(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	entries, err := h.History.ListByAppointment(c.Request().Context(), id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	out := make([]echo.Map, 0, len(entries))
	for _, e := range entries {
		out = append(out, echo.Map{
			"id":         e.ID,
			"status":     e.Status,
			"changed_at": e.ChangedAt.UTC().Format(time.RFC3339),
		})
	}
	return c.JSON(http.StatusOK, out)
}
