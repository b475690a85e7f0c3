// This file defines repository methods for the customers table. Customers
// own vehicles and appointments; the schema cascades deletes to both, so
// removing a customer also removes their booking history.
package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/velomir/auto-shop-scheduler/internal/model"
)

// CustomerRepo encapsulates all database queries related to customers. It
// depends on a sql.DB handle constructed at startup and injected here.
type CustomerRepo struct {
	db *sql.DB
}

// NewCustomerRepo constructs a CustomerRepo with the provided DB handle.
func NewCustomerRepo(db *sql.DB) *CustomerRepo { return &CustomerRepo{db: db} }

// Create inserts a new customer. On success the ID field is populated with
// the auto-generated value and CreatedAt is read back from the row.
func (r *CustomerRepo) Create(ctx context.Context, c *model.Customer) error {
	const q = "INSERT INTO customers (name, phone, email) VALUES (?, ?, ?)"
	res, err := r.db.ExecContext(ctx, q, c.Name, c.Phone, c.Email)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	c.ID = uint64(id)

	const sel = "SELECT created_at FROM customers WHERE id = ?"
	return r.db.QueryRowContext(ctx, sel, c.ID).Scan(&c.CreatedAt)
}

// GetByID fetches a customer by id, returning ErrNotFound when absent.
func (r *CustomerRepo) GetByID(ctx context.Context, id uint64) (*model.Customer, error) {
	const q = "SELECT id, name, phone, email, created_at FROM customers WHERE id = ?"
	var c model.Customer
	if err := r.db.QueryRowContext(ctx, q, id).Scan(&c.ID, &c.Name, &c.Phone, &c.Email, &c.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

// List returns all customers, newest first.
func (r *CustomerRepo) List(ctx context.Context) ([]*model.Customer, error) {
	const q = `SELECT id, name, phone, email, created_at
	           FROM customers ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]*model.Customer, 0)
	for rows.Next() {
		c := new(model.Customer)
		if err := rows.Scan(&c.ID, &c.Name, &c.Phone, &c.Email, &c.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Delete removes a customer; vehicles and appointments cascade at the
// schema level. Returns ErrNotFound when no row was affected.
func (r *CustomerRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM customers WHERE id = ?", id)
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
