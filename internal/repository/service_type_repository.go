// This file defines repository methods for the service_types table. The
// booking flow only needs GetByID (for the slot duration); the rest is the
// catalog CRUD surface.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/velomir/auto-shop-scheduler/internal/model"
)

// ErrServiceTypeNotFound is returned when a service type lookup fails. The
// booking handler maps it to a client error since the id came from the
// request.
var ErrServiceTypeNotFound = errors.New("service type not found")

// ServiceTypeRepo encapsulates all database queries related to service types.
type ServiceTypeRepo struct {
	db *sql.DB
}

// NewServiceTypeRepo constructs a ServiceTypeRepo with the provided DB handle.
func NewServiceTypeRepo(db *sql.DB) *ServiceTypeRepo { return &ServiceTypeRepo{db: db} }

// GetByID fetches a service type by id, returning ErrServiceTypeNotFound
// when absent.
func (r *ServiceTypeRepo) GetByID(ctx context.Context, id uint64) (*model.ServiceType, error) {
	const q = "SELECT id, name, duration_minutes, base_price FROM service_types WHERE id = ?"
	var s model.ServiceType
	if err := r.db.QueryRowContext(ctx, q, id).Scan(&s.ID, &s.Name, &s.DurationMinutes, &s.BasePrice); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrServiceTypeNotFound
		}
		return nil, err
	}
	return &s, nil
}

// List returns all service types ordered by id.
func (r *ServiceTypeRepo) List(ctx context.Context) ([]*model.ServiceType, error) {
	const q = "SELECT id, name, duration_minutes, base_price FROM service_types ORDER BY id"
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]*model.ServiceType, 0)
	for rows.Next() {
		s := new(model.ServiceType)
		if err := rows.Scan(&s.ID, &s.Name, &s.DurationMinutes, &s.BasePrice); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Create inserts a service type and populates its ID.
func (r *ServiceTypeRepo) Create(ctx context.Context, s *model.ServiceType) error {
	const q = "INSERT INTO service_types (name, duration_minutes, base_price) VALUES (?, ?, ?)"
	res, err := r.db.ExecContext(ctx, q, s.Name, s.DurationMinutes, s.BasePrice)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	s.ID = uint64(id)
	return nil
}

// Update replaces a service type's fields. Returns ErrNotFound when no row
// was affected.
func (r *ServiceTypeRepo) Update(ctx context.Context, id uint64, name string, durationMinutes int, basePrice float64) error {
	const q = "UPDATE service_types SET name=?, duration_minutes=?, base_price=? WHERE id=?"
	res, err := r.db.ExecContext(ctx, q, name, durationMinutes, basePrice, id)
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

// Delete removes a service type. Existing appointments reference service
// types without cascade, so the DB rejects deletes that would orphan them;
// that surfaces as ErrConflict.
func (r *ServiceTypeRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM service_types WHERE id = ?", id)
	if err != nil {
		if strings.Contains(err.Error(), "1451") {
			return ErrConflict
		}
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
