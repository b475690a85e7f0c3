package model

// ServiceType is a bookable service from the `service_types` table. Its
// duration drives the length of scheduled slots.
//
// Fields:
//  ID              – primary key identifier.
//  Name            – display name (e.g. Oil Change).
//  DurationMinutes – slot length in minutes.
//  BasePrice       – base price; stored as DECIMAL(10,2) in the DB.
type ServiceType struct {
	ID              uint64  `json:"id"`               // service_types.id
	Name            string  `json:"name"`             // service_types.name
	DurationMinutes int     `json:"duration_minutes"` // service_types.duration_minutes
	BasePrice       float64 `json:"base_price"`       // service_types.base_price
}
