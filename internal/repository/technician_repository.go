// This file defines repository methods for the technicians table. The
// scheduling engine relies on two guarantees made here: ids are always
// returned in ascending order (fixing the load-balancing tie-break), and
// ListIDsForUpdateTx takes row locks on the whole registry so that booking
// transactions serialize before reading the schedule.
package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/velomir/auto-shop-scheduler/internal/model"
)

// TechnicianRepo encapsulates all database queries related to technicians.
type TechnicianRepo struct {
	db *sql.DB
}

// NewTechnicianRepo constructs a TechnicianRepo with the provided DB handle.
func NewTechnicianRepo(db *sql.DB) *TechnicianRepo { return &TechnicianRepo{db: db} }

// List returns all technicians ordered by id ascending.
func (r *TechnicianRepo) List(ctx context.Context) ([]*model.Technician, error) {
	const q = "SELECT id, name, skill_level FROM technicians ORDER BY id"
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]*model.Technician, 0)
	for rows.Next() {
		t := new(model.Technician)
		if err := rows.Scan(&t.ID, &t.Name, &t.SkillLevel); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// ListIDsForUpdateTx returns all technician ids ascending while taking row
// locks on them for the duration of the transaction. Every booking
// transaction calls this before loading the appointment snapshot: two
// concurrent bookings block here instead of both reading a schedule that is
// about to change, which is what upholds the no-overlap invariant under
// concurrency. Locking reads always observe the latest committed rows.
func (r *TechnicianRepo) ListIDsForUpdateTx(ctx context.Context, tx *sql.Tx) ([]uint64, error) {
	const q = "SELECT id FROM technicians ORDER BY id FOR UPDATE"
	rows, err := tx.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []uint64
	for rows.Next() {
		var id uint64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return ids, nil
}

// Create inserts a technician and populates its ID.
func (r *TechnicianRepo) Create(ctx context.Context, t *model.Technician) error {
	const q = "INSERT INTO technicians (name, skill_level) VALUES (?, ?)"
	res, err := r.db.ExecContext(ctx, q, t.Name, t.SkillLevel)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	t.ID = uint64(id)
	return nil
}

// Update replaces a technician's name and skill level. Returns ErrNotFound
// when no row was affected.
func (r *TechnicianRepo) Update(ctx context.Context, id uint64, name, skillLevel string) error {
	const q = "UPDATE technicians SET name=?, skill_level=? WHERE id=?"
	res, err := r.db.ExecContext(ctx, q, name, skillLevel, id)
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

// Delete removes a technician. The appointments table references technicians
// without cascade, so the DB rejects the delete while appointments still
// point at this technician; that surfaces as ErrConflict.
func (r *TechnicianRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM technicians WHERE id = ?", id)
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
