package schedule

import "time"

// Interval is a half-open [Start, End) time range.
type Interval struct {
	Start time.Time
	End   time.Time
}

// Overlaps reports whether two half-open intervals intersect. An appointment
// ending exactly when another starts is not a conflict.
func (iv Interval) Overlaps(other Interval) bool {
	return iv.Start.Before(other.End) && other.Start.Before(iv.End)
}

// BusyInterval is one active appointment held by a technician.
type BusyInterval struct {
	TechnicianID uint64
	Interval
}

// Snapshot holds the active appointments (status scheduled or in_progress)
// for a set of technicians over the search window. The booking transaction
// loads it once and the whole candidate search runs against it in memory,
// instead of issuing one conflict query and one load query per candidate.
type Snapshot struct {
	byTech map[uint64][]Interval
}

// NewSnapshot builds a snapshot from preloaded busy intervals.
func NewSnapshot(busy []BusyInterval) *Snapshot {
	s := &Snapshot{byTech: make(map[uint64][]Interval)}
	for _, b := range busy {
		s.byTech[b.TechnicianID] = append(s.byTech[b.TechnicianID], b.Interval)
	}
	return s
}

// HasConflict reports whether [start, end) overlaps any active appointment
// of the given technician.
func (s *Snapshot) HasConflict(technicianID uint64, start, end time.Time) bool {
	cand := Interval{Start: start, End: end}
	for _, iv := range s.byTech[technicianID] {
		if cand.Overlaps(iv) {
			return true
		}
	}
	return false
}

// LoadOn counts the technician's active appointments whose start falls on
// the same UTC calendar date as day.
func (s *Snapshot) LoadOn(technicianID uint64, day time.Time) int {
	y, m, d := day.UTC().Date()
	n := 0
	for _, iv := range s.byTech[technicianID] {
		iy, im, id := iv.Start.UTC().Date()
		if iy == y && im == m && id == d {
			n++
		}
	}
	return n
}
