package repository

import (
	"context"
	"database/sql"

	"github.com/velomir/auto-shop-scheduler/internal/model"
)

// StatusHistoryRepo appends to the status_history audit trail. The table is
// append-only: every status an appointment takes, including the initial
// scheduled entry written by the booking transaction, adds one row.
type StatusHistoryRepo struct {
	db *sql.DB
}

// NewStatusHistoryRepo returns a new StatusHistoryRepo bound to the given database.
func NewStatusHistoryRepo(db *sql.DB) *StatusHistoryRepo { return &StatusHistoryRepo{db: db} }

// AppendTx inserts one history row within an existing transaction. changed_at
// defaults at the schema level.
func (r *StatusHistoryRepo) AppendTx(ctx context.Context, tx *sql.Tx, appointmentID uint64, status string) error {
	const q = "INSERT INTO status_history (appointment_id, status) VALUES (?, ?)"
	_, err := tx.ExecContext(ctx, q, appointmentID, status)
	return err
}

// ListByAppointment returns the audit trail of one appointment, oldest first.
func (r *StatusHistoryRepo) ListByAppointment(ctx context.Context, appointmentID uint64) ([]*model.StatusHistoryEntry, error) {
	const q = `SELECT id, appointment_id, status, changed_at
	           FROM status_history WHERE appointment_id = ? ORDER BY id`
	rows, err := r.db.QueryContext(ctx, q, appointmentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]*model.StatusHistoryEntry, 0)
	for rows.Next() {
		e := new(model.StatusHistoryEntry)
		if err := rows.Scan(&e.ID, &e.AppointmentID, &e.Status, &e.ChangedAt); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
