package schedule

import (
	"errors"
	"time"
)

// Scheduling failures. These are user-facing and distinct from storage
// faults; handlers surface them as 409 responses with the message verbatim.
var (
	ErrNoTechnicians = errors.New("No technicians available")
	ErrOutsideHours  = errors.New("Preferred time exceeds working hours")
	ErrConflict      = errors.New("Conflict at preferred time")
	ErrNoSlot        = errors.New("No available slot in the next 7 days")
)

// IsUnschedulable reports whether err is one of the scheduling failures, as
// opposed to an unexpected fault.
func IsUnschedulable(err error) bool {
	return errors.Is(err, ErrNoTechnicians) ||
		errors.Is(err, ErrOutsideHours) ||
		errors.Is(err, ErrConflict) ||
		errors.Is(err, ErrNoSlot)
}

// searchDays is the auto-schedule horizon: today plus the next six days.
const searchDays = 7

// slotStep is the granularity of the auto-schedule candidate grid.
const slotStep = 10 * time.Minute

// Request describes one slot search. TechnicianIDs must be ordered by id
// ascending (the registry returns them that way); Now anchors the
// auto-schedule search when no preferred time is given.
type Request struct {
	Duration      time.Duration
	Preferred     *time.Time
	AutoSchedule  bool
	TechnicianIDs []uint64
	Now           time.Time
}

// Assignment is a conflict-free slot with its technician.
type Assignment struct {
	Start        time.Time
	End          time.Time
	TechnicianID uint64
}

// FindSlot produces a (start, end, technician) assignment for the request,
// evaluating candidates against the snapshot. Two mutually exclusive modes:
// a caller-preferred start that must be honored or rejected, and an
// auto-schedule search over a 7-day grid that returns the first feasible
// candidate in day/hour/minute ascending order. No attempt is made to find a
// globally optimal slot.
func FindSlot(req Request, snap *Snapshot) (Assignment, error) {
	if len(req.TechnicianIDs) == 0 {
		return Assignment{}, ErrNoTechnicians
	}

	if req.Preferred != nil && !req.AutoSchedule {
		start := ClampToWorkday(*req.Preferred)
		end := start.Add(req.Duration)
		if !fitsWorkday(start, end) {
			return Assignment{}, ErrOutsideHours
		}
		tech := LeastLoaded(req.TechnicianIDs, start, snap)
		if snap.HasConflict(tech, start, end) {
			return Assignment{}, ErrConflict
		}
		return Assignment{Start: start, End: end, TechnicianID: tech}, nil
	}

	anchor := req.Now
	if req.Preferred != nil {
		anchor = *req.Preferred
	}
	anchor = ClampToWorkday(anchor)

	for day := 0; day < searchDays; day++ {
		for hour := WorkStartHour; hour <= WorkEndHour; hour++ {
			for minute := 0; minute < 60; minute += int(slotStep / time.Minute) {
				start := time.Date(anchor.Year(), anchor.Month(), anchor.Day()+day,
					hour, minute, 0, 0, time.UTC)
				end := start.Add(req.Duration)
				if !fitsWorkday(start, end) {
					continue
				}
				tech := LeastLoaded(req.TechnicianIDs, start, snap)
				if !snap.HasConflict(tech, start, end) {
					return Assignment{Start: start, End: end, TechnicianID: tech}, nil
				}
			}
		}
	}
	return Assignment{}, ErrNoSlot
}
