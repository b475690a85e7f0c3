package model

// Vehicle represents a customer's vehicle in the `vehicles` table. Every
// booking request inserts a fresh vehicle row for its customer; there is no
// dedup against the customer's existing vehicles.
//
// Fields:
//  ID         – primary key identifier.
//  CustomerID – owning customer.
//  Make       – manufacturer (e.g. Toyota).
//  Model      – model name.
//  Year       – model year (nullable).
//  VIN        – vehicle identification number (nullable).
//  Plate      – license plate (nullable).
type Vehicle struct {
	ID         uint64  `json:"id"`          // vehicles.id
	CustomerID uint64  `json:"customer_id"` // vehicles.customer_id
	Make       string  `json:"make"`        // vehicles.make
	Model      string  `json:"model"`       // vehicles.model
	Year       *int    `json:"year"`        // vehicles.year (nullable)
	VIN        *string `json:"vin"`         // vehicles.vin (nullable)
	Plate      *string `json:"plate"`       // vehicles.plate (nullable)
}
