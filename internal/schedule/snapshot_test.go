package schedule

import (
	"testing"
	"time"
)

func at(day, hour, minute int) time.Time {
	return time.Date(2024, 1, day, hour, minute, 0, 0, time.UTC)
}

func TestIntervalOverlaps_HalfOpen(t *testing.T) {
	a := Interval{Start: at(1, 10, 0), End: at(1, 10, 30)}

	// Back-to-back intervals do not conflict.
	if a.Overlaps(Interval{Start: at(1, 10, 30), End: at(1, 11, 0)}) {
		t.Fatal("adjacent intervals must not overlap")
	}
	if a.Overlaps(Interval{Start: at(1, 9, 30), End: at(1, 10, 0)}) {
		t.Fatal("adjacent intervals must not overlap")
	}
	if !a.Overlaps(Interval{Start: at(1, 10, 29), End: at(1, 11, 0)}) {
		t.Fatal("one-minute intersection must overlap")
	}
	if !a.Overlaps(Interval{Start: at(1, 9, 0), End: at(1, 12, 0)}) {
		t.Fatal("containing interval must overlap")
	}
}

func TestSnapshotHasConflict_PerTechnician(t *testing.T) {
	snap := NewSnapshot([]BusyInterval{
		{TechnicianID: 1, Interval: Interval{Start: at(1, 10, 0), End: at(1, 11, 0)}},
	})
	if !snap.HasConflict(1, at(1, 10, 30), at(1, 11, 30)) {
		t.Fatal("expected conflict for technician 1")
	}
	// A different technician is free at the same time.
	if snap.HasConflict(2, at(1, 10, 30), at(1, 11, 30)) {
		t.Fatal("technician 2 has no appointments")
	}
}

func TestSnapshotLoadOn_CountsSameDateOnly(t *testing.T) {
	snap := NewSnapshot([]BusyInterval{
		{TechnicianID: 1, Interval: Interval{Start: at(1, 9, 0), End: at(1, 9, 30)}},
		{TechnicianID: 1, Interval: Interval{Start: at(1, 14, 0), End: at(1, 15, 0)}},
		{TechnicianID: 1, Interval: Interval{Start: at(2, 9, 0), End: at(2, 9, 30)}},
	})
	if got := snap.LoadOn(1, at(1, 12, 0)); got != 2 {
		t.Fatalf("expected load 2 on Jan 1, got %d", got)
	}
	if got := snap.LoadOn(1, at(2, 12, 0)); got != 1 {
		t.Fatalf("expected load 1 on Jan 2, got %d", got)
	}
}

func TestLeastLoaded_TieBreakLowestID(t *testing.T) {
	snap := NewSnapshot([]BusyInterval{
		{TechnicianID: 1, Interval: Interval{Start: at(1, 9, 0), End: at(1, 10, 0)}},
		{TechnicianID: 2, Interval: Interval{Start: at(1, 11, 0), End: at(1, 12, 0)}},
	})
	if got := LeastLoaded([]uint64{1, 2}, at(1, 12, 0), snap); got != 1 {
		t.Fatalf("tie must resolve to lowest id, got %d", got)
	}
}

func TestLeastLoaded_PrefersLowerLoad(t *testing.T) {
	snap := NewSnapshot([]BusyInterval{
		{TechnicianID: 1, Interval: Interval{Start: at(1, 9, 0), End: at(1, 10, 0)}},
		{TechnicianID: 1, Interval: Interval{Start: at(1, 11, 0), End: at(1, 12, 0)}},
		{TechnicianID: 2, Interval: Interval{Start: at(1, 13, 0), End: at(1, 14, 0)}},
	})
	if got := LeastLoaded([]uint64{1, 2}, at(1, 12, 0), snap); got != 2 {
		t.Fatalf("expected least-loaded technician 2, got %d", got)
	}
}
