// This file defines repository methods for the vehicles table. Besides the
// plain CRUD surface, it exposes CreateTx for the booking transaction, which
// always inserts a fresh vehicle row for the customer being booked.
package repository

import (
	"context"
	"database/sql"

	"github.com/velomir/auto-shop-scheduler/internal/model"
)

// VehicleRepo encapsulates all database queries related to vehicles.
type VehicleRepo struct {
	db *sql.DB
}

// NewVehicleRepo constructs a VehicleRepo with the provided DB handle.
func NewVehicleRepo(db *sql.DB) *VehicleRepo { return &VehicleRepo{db: db} }

// VehicleListItem is the joined display row returned by List: a vehicle
// together with its owner's name.
type VehicleListItem struct {
	ID           uint64  `json:"id"`
	Make         string  `json:"make"`
	Model        string  `json:"model"`
	Year         *int    `json:"year"`
	VIN          *string `json:"vin"`
	Plate        *string `json:"plate"`
	CustomerName string  `json:"customer_name"`
}

// Create inserts a vehicle outside any transaction and populates its ID.
func (r *VehicleRepo) Create(ctx context.Context, v *model.Vehicle) error {
	const q = `INSERT INTO vehicles (customer_id, make, model, year, vin, plate)
	           VALUES (?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q, v.CustomerID, v.Make, v.Model, v.Year, v.VIN, v.Plate)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	v.ID = uint64(id)
	return nil
}

// CreateTx inserts a vehicle within the scope of an existing transaction and
// populates the generated ID. The caller must commit or roll back; a later
// scheduling failure in the same transaction discards this row with it.
func (r *VehicleRepo) CreateTx(ctx context.Context, tx *sql.Tx, v *model.Vehicle) error {
	const q = `INSERT INTO vehicles (customer_id, make, model, year, vin, plate)
	           VALUES (?, ?, ?, ?, ?, ?)`
	res, err := tx.ExecContext(ctx, q, v.CustomerID, v.Make, v.Model, v.Year, v.VIN, v.Plate)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	v.ID = uint64(id)
	return nil
}

// List returns all vehicles joined with their owner's name, newest first.
func (r *VehicleRepo) List(ctx context.Context) ([]*VehicleListItem, error) {
	const q = `SELECT v.id, v.make, v.model, v.year, v.vin, v.plate, c.name
	           FROM vehicles v
	           JOIN customers c ON c.id = v.customer_id
	           ORDER BY v.id DESC`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]*VehicleListItem, 0)
	for rows.Next() {
		v := new(VehicleListItem)
		if err := rows.Scan(&v.ID, &v.Make, &v.Model, &v.Year, &v.VIN, &v.Plate, &v.CustomerName); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// ListByCustomer returns one customer's vehicles, newest first.
func (r *VehicleRepo) ListByCustomer(ctx context.Context, customerID uint64) ([]*model.Vehicle, error) {
	const q = `SELECT id, customer_id, make, model, year, vin, plate
	           FROM vehicles WHERE customer_id = ? ORDER BY id DESC`
	rows, err := r.db.QueryContext(ctx, q, customerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]*model.Vehicle, 0)
	for rows.Next() {
		v := new(model.Vehicle)
		if err := rows.Scan(&v.ID, &v.CustomerID, &v.Make, &v.Model, &v.Year, &v.VIN, &v.Plate); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Update replaces the descriptive fields of a vehicle. Returns ErrNotFound
// when the vehicle does not exist.
func (r *VehicleRepo) Update(ctx context.Context, id uint64, make, vmodel string, year *int, vin, plate *string) error {
	const q = "UPDATE vehicles SET make=?, model=?, year=?, vin=?, plate=? WHERE id=?"
	res, err := r.db.ExecContext(ctx, q, make, vmodel, year, vin, plate, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a vehicle; its appointments cascade at the schema level.
func (r *VehicleRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM vehicles WHERE id = ?", id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
