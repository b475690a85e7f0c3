// Package queue defines message payloads exchanged over the message broker.
package queue

// AppointmentBookedEvent is published when an appointment is successfully
// booked. It carries enough information for downstream consumers to log or
// notify without querying the primary database.
type AppointmentBookedEvent struct {
	AppointmentID uint64 `json:"appointment_id"`
	CustomerID    uint64 `json:"customer_id"`
	CustomerName  string `json:"customer_name"`
	VehicleID     uint64 `json:"vehicle_id"`
	Vehicle       string `json:"vehicle"`
	ServiceTypeID uint64 `json:"service_type_id"`
	ServiceName   string `json:"service_name"`
	TechnicianID  uint64 `json:"technician_id"`
	StartTime     string `json:"start_time"`
	EndTime       string `json:"end_time"`
	BookedAt      string `json:"booked_at"`
}
