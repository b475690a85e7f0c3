package model

import "time"

// Appointment statuses. An appointment counts as active — it occupies its
// technician's time and participates in conflict checks — while scheduled or
// in progress.
const (
	StatusScheduled  = "scheduled"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
	StatusCanceled   = "canceled"
)

// ValidStatus reports whether s is one of the appointment statuses.
func ValidStatus(s string) bool {
	switch s {
	case StatusScheduled, StatusInProgress, StatusCompleted, StatusCanceled:
		return true
	}
	return false
}

// Appointment mirrors the `appointments` table. StartTime and EndTime bound
// a half-open [start, end) interval; for any technician, intervals of active
// appointments must be pairwise disjoint. Appointments are created only by
// the booking flow, always in status scheduled, and are never deleted
// directly — they go away only through customer/vehicle cascade deletes.
//
// Fields:
//  ID            – primary key identifier.
//  CustomerID    – owning customer.
//  VehicleID     – vehicle the work is performed on.
//  ServiceTypeID – booked service.
//  TechnicianID  – assigned technician; nullable only before assignment.
//  StartTime     – slot start (UTC).
//  EndTime       – slot end (UTC).
//  Status        – current lifecycle state.
//  Notes         – free-form notes (nullable).
//  CreatedAt     – creation timestamp.
type Appointment struct {
	ID            uint64    `json:"id"`              // appointments.id
	CustomerID    uint64    `json:"customer_id"`     // appointments.customer_id
	VehicleID     uint64    `json:"vehicle_id"`      // appointments.vehicle_id
	ServiceTypeID uint64    `json:"service_type_id"` // appointments.service_type_id
	TechnicianID  *uint64   `json:"technician_id"`   // appointments.technician_id (nullable)
	StartTime     time.Time `json:"start_time"`      // appointments.start_time
	EndTime       time.Time `json:"end_time"`        // appointments.end_time
	Status        string    `json:"status"`          // appointments.status
	Notes         *string   `json:"notes"`           // appointments.notes (nullable)
	CreatedAt     time.Time `json:"created_at"`      // appointments.created_at
}

// StatusHistoryEntry is one row of the append-only `status_history` audit
// trail. Every status an appointment ever takes, including the initial
// scheduled entry written by the booking transaction, appends one row.
type StatusHistoryEntry struct {
	ID            uint64    `json:"id"`             // status_history.id
	AppointmentID uint64    `json:"appointment_id"` // status_history.appointment_id
	Status        string    `json:"status"`         // status_history.status
	ChangedAt     time.Time `json:"changed_at"`     // status_history.changed_at
}
