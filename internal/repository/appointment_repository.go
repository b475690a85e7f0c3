package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/velomir/auto-shop-scheduler/internal/schedule"
)

// AppointmentRepo provides persistence for appointments and their status
// audit trail. Appointment rows are only ever created inside the booking
// transaction; the *Tx methods here run within that transaction and the
// caller commits or rolls back. All timestamps are stored as UTC DATETIME
// strings (YYYY-MM-DD HH:MM:SS).
type AppointmentRepo struct {
	db *sql.DB
}

// NewAppointmentRepo returns a new AppointmentRepo bound to the given database.
func NewAppointmentRepo(db *sql.DB) *AppointmentRepo { return &AppointmentRepo{db: db} }

// DB exposes the underlying handle so handlers can open transactions that
// span several repositories.
func (r *AppointmentRepo) DB() *sql.DB { return r.db }

// AppointmentRecord mirrors the schema of the appointments table for
// insertion. Business logic should use model.Appointment; this type exists
// for constructing rows inside the booking transaction.
type AppointmentRecord struct {
	ID            uint64
	CustomerID    uint64
	VehicleID     uint64
	ServiceTypeID uint64
	TechnicianID  uint64
	StartTime     time.Time
	EndTime       time.Time
	Status        string
	Notes         *string
}

// CreateTx inserts a new appointment within the scope of an existing
// transaction and populates the generated ID on the record. Times are
// rendered through schedule.StorageTimestamp so stored values and the
// comparisons in ActiveWindowTx use the identical wall-clock form.
func (r *AppointmentRepo) CreateTx(ctx context.Context, tx *sql.Tx, rec *AppointmentRecord) error {
	const q = `INSERT INTO appointments
	           (customer_id, vehicle_id, service_type_id, technician_id, start_time, end_time, status, notes)
	           VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	res, err := tx.ExecContext(ctx, q,
		rec.CustomerID, rec.VehicleID, rec.ServiceTypeID, rec.TechnicianID,
		schedule.StorageTimestamp(rec.StartTime), schedule.StorageTimestamp(rec.EndTime),
		rec.Status, rec.Notes)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	rec.ID = uint64(id)
	return nil
}

// ActiveWindowTx loads every active appointment (status scheduled or
// in_progress, any technician) whose interval intersects [from, to). The
// booking transaction calls this once and evaluates all slot candidates
// against the returned snapshot in memory, instead of issuing per-candidate
// conflict and load queries. It must run after the technician registry lock
// is held so the snapshot stays authoritative until commit.
func (r *AppointmentRepo) ActiveWindowTx(ctx context.Context, tx *sql.Tx, from, to time.Time) ([]schedule.BusyInterval, error) {
	const q = `SELECT technician_id, start_time, end_time
	           FROM appointments
	           WHERE technician_id IS NOT NULL
	             AND status IN ('scheduled','in_progress')
	             AND start_time < ? AND end_time > ?`
	rows, err := tx.QueryContext(ctx, q, schedule.StorageTimestamp(to), schedule.StorageTimestamp(from))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var busy []schedule.BusyInterval
	for rows.Next() {
		var (
			techID     uint64
			start, end time.Time
		)
		if err := rows.Scan(&techID, &start, &end); err != nil {
			return nil, err
		}
		busy = append(busy, schedule.BusyInterval{
			TechnicianID: techID,
			Interval:     schedule.Interval{Start: start.UTC(), End: end.UTC()},
		})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return busy, nil
}

// UpdateStatusTx sets a new status on an appointment within a transaction.
// It verifies existence first so that re-applying the current status is not
// mistaken for a missing row. Returns ErrNotFound when the appointment does
// not exist. Transition validity is deliberately not checked: any status may
// follow any other.
func (r *AppointmentRepo) UpdateStatusTx(ctx context.Context, tx *sql.Tx, id uint64, status string) error {
	var exists uint64
	err := tx.QueryRowContext(ctx, "SELECT id FROM appointments WHERE id = ?", id).Scan(&exists)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	_, err = tx.ExecContext(ctx, "UPDATE appointments SET status = ? WHERE id = ?", status, id)
	return err
}

// AppointmentDetail is the joined display row returned by List: an
// appointment with the names a human needs to read the schedule.
type AppointmentDetail struct {
	ID             uint64  `json:"id"`
	StartTime      string  `json:"start_time"`
	EndTime        string  `json:"end_time"`
	Status         string  `json:"status"`
	CustomerName   string  `json:"customer_name"`
	VehicleLabel   string  `json:"vehicle_label"`
	ServiceName    string  `json:"service_name"`
	TechnicianName *string `json:"technician_name"`
}

// List returns appointments joined with customer, vehicle, service and
// technician display fields, ordered by start time. When todayOnly is set,
// only appointments starting on the current UTC date are returned.
func (r *AppointmentRepo) List(ctx context.Context, todayOnly bool) ([]*AppointmentDetail, error) {
	q := `SELECT a.id, a.start_time, a.end_time, a.status,
	             c.name,
	             CONCAT(v.make, ' ', v.model, ' ', COALESCE(v.plate, '')),
	             s.name,
	             t.name
	      FROM appointments a
	      JOIN customers c ON c.id = a.customer_id
	      JOIN vehicles v ON v.id = a.vehicle_id
	      JOIN service_types s ON s.id = a.service_type_id
	      LEFT JOIN technicians t ON t.id = a.technician_id`
	if todayOnly {
		q += ` WHERE DATE(a.start_time) = UTC_DATE()`
	}
	q += ` ORDER BY a.start_time ASC`

	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]*AppointmentDetail, 0)
	for rows.Next() {
		var (
			d          AppointmentDetail
			start, end time.Time
		)
		if err := rows.Scan(&d.ID, &start, &end, &d.Status,
			&d.CustomerName, &d.VehicleLabel, &d.ServiceName, &d.TechnicianName); err != nil {
			return nil, err
		}
		d.StartTime = start.UTC().Format(time.RFC3339)
		d.EndTime = end.UTC().Format(time.RFC3339)
		out = append(out, &d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
