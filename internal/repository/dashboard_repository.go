package repository

import (
	"context"
	"database/sql"
)

// DashboardSummary carries the aggregate counts shown on the dashboard.
type DashboardSummary struct {
	Customers         uint64 `json:"customers"`
	Vehicles          uint64 `json:"vehicles"`
	Technicians       uint64 `json:"technicians"`
	TodayAppointments uint64 `json:"todayAppointments"`
}

// DashboardRepo serves the aggregate counts for the dashboard endpoint.
type DashboardRepo struct {
	db *sql.DB
}

// NewDashboardRepo returns a new DashboardRepo bound to the given database.
func NewDashboardRepo(db *sql.DB) *DashboardRepo { return &DashboardRepo{db: db} }

// Summary counts customers, vehicles, technicians, and the appointments
// starting on the current UTC date.
func (r *DashboardRepo) Summary(ctx context.Context) (*DashboardSummary, error) {
	var s DashboardSummary
	steps := []struct {
		query string
		dest  *uint64
	}{
		{"SELECT COUNT(*) FROM customers", &s.Customers},
		{"SELECT COUNT(*) FROM vehicles", &s.Vehicles},
		{"SELECT COUNT(*) FROM technicians", &s.Technicians},
		{"SELECT COUNT(*) FROM appointments WHERE DATE(start_time) = UTC_DATE()", &s.TodayAppointments},
	}
	for _, st := range steps {
		if err := r.db.QueryRowContext(ctx, st.query).Scan(st.dest); err != nil {
			return nil, err
		}
	}
	return &s, nil
}
