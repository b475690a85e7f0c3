package model

import "time"

// Customer represents a shop customer as stored in the `customers` table.
// A customer owns vehicles and appointments; deleting a customer cascades
// to both.
//
// Fields:
//  ID        – primary key identifier.
//  Name      – full customer name.
//  Phone     – contact phone number (nullable).
//  Email     – contact email (nullable).
//  CreatedAt – creation timestamp.
type Customer struct {
	ID        uint64    `json:"id"`         // customers.id
	Name      string    `json:"name"`       // customers.name
	Phone     *string   `json:"phone"`      // customers.phone (nullable)
	Email     *string   `json:"email"`      // customers.email (nullable)
	CreatedAt time.Time `json:"created_at"` // customers.created_at
}
