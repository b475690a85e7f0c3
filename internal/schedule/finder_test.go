package schedule

import (
	"errors"
	"testing"
	"time"
)

func timePtr(t time.Time) *time.Time { return &t }

func TestFindSlot_PreferredTimeFree(t *testing.T) {
	pref := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	got, err := FindSlot(Request{
		Duration:      30 * time.Minute,
		Preferred:     timePtr(pref),
		TechnicianIDs: []uint64{1},
		Now:           pref,
	}, NewSnapshot(nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.Start.Equal(pref) || !got.End.Equal(pref.Add(30*time.Minute)) {
		t.Fatalf("expected 10:00-10:30, got %s-%s", got.Start, got.End)
	}
	if got.TechnicianID != 1 {
		t.Fatalf("expected technician 1, got %d", got.TechnicianID)
	}
}

func TestFindSlot_PreferredTimeExceedsWorkingHours(t *testing.T) {
	pref := time.Date(2024, 1, 1, 16, 45, 0, 0, time.UTC)
	_, err := FindSlot(Request{
		Duration:      60 * time.Minute,
		Preferred:     timePtr(pref),
		TechnicianIDs: []uint64{1},
		Now:           pref,
	}, NewSnapshot(nil))
	if !errors.Is(err, ErrOutsideHours) {
		t.Fatalf("expected ErrOutsideHours, got %v", err)
	}
}

func TestFindSlot_PreferredTimeConflict(t *testing.T) {
	pref := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	snap := NewSnapshot([]BusyInterval{
		{TechnicianID: 1, Interval: Interval{Start: pref, End: pref.Add(time.Hour)}},
	})
	_, err := FindSlot(Request{
		Duration:      30 * time.Minute,
		Preferred:     timePtr(pref),
		TechnicianIDs: []uint64{1},
		Now:           pref,
	}, snap)
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
}

func TestFindSlot_PreferredBackToBackIsNotConflict(t *testing.T) {
	busyEnd := time.Date(2024, 1, 1, 10, 30, 0, 0, time.UTC)
	snap := NewSnapshot([]BusyInterval{
		{TechnicianID: 1, Interval: Interval{Start: busyEnd.Add(-30 * time.Minute), End: busyEnd}},
	})
	got, err := FindSlot(Request{
		Duration:      30 * time.Minute,
		Preferred:     timePtr(busyEnd),
		TechnicianIDs: []uint64{1},
		Now:           busyEnd,
	}, snap)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.Start.Equal(busyEnd) {
		t.Fatalf("expected start at %s, got %s", busyEnd, got.Start)
	}
}

func TestFindSlot_AutoScheduleSkipsBookedMorning(t *testing.T) {
	day := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	snap := NewSnapshot([]BusyInterval{
		{TechnicianID: 1, Interval: Interval{Start: day.Add(9 * time.Hour), End: day.Add(12 * time.Hour)}},
	})
	got, err := FindSlot(Request{
		Duration:      45 * time.Minute,
		AutoSchedule:  true,
		TechnicianIDs: []uint64{1},
		Now:           day.Add(8 * time.Hour),
	}, snap)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	wantStart := day.Add(12 * time.Hour)
	if !got.Start.Equal(wantStart) || !got.End.Equal(wantStart.Add(45*time.Minute)) {
		t.Fatalf("expected 12:00-12:45, got %s-%s", got.Start, got.End)
	}
}

func TestFindSlot_AutoScheduleRollsToNextDay(t *testing.T) {
	day := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	// Technician 1 is solidly booked on day one.
	snap := NewSnapshot([]BusyInterval{
		{TechnicianID: 1, Interval: Interval{Start: day.Add(9 * time.Hour), End: day.Add(17 * time.Hour)}},
	})
	got, err := FindSlot(Request{
		Duration:      30 * time.Minute,
		AutoSchedule:  true,
		TechnicianIDs: []uint64{1},
		Now:           day.Add(10 * time.Hour),
	}, snap)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	wantStart := day.AddDate(0, 0, 1).Add(9 * time.Hour)
	if !got.Start.Equal(wantStart) {
		t.Fatalf("expected next day 09:00, got %s", got.Start)
	}
}

func TestFindSlot_AutoScheduleBalancesTechnicians(t *testing.T) {
	day := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	// Technician 1 already has a booking today, technician 2 none, so the
	// least-loaded pick for the first candidate is technician 2 even though
	// technician 1 is free at 09:00.
	snap := NewSnapshot([]BusyInterval{
		{TechnicianID: 1, Interval: Interval{Start: day.Add(13 * time.Hour), End: day.Add(14 * time.Hour)}},
	})
	got, err := FindSlot(Request{
		Duration:      30 * time.Minute,
		AutoSchedule:  true,
		TechnicianIDs: []uint64{1, 2},
		Now:           day.Add(8 * time.Hour),
	}, snap)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.TechnicianID != 2 {
		t.Fatalf("expected technician 2, got %d", got.TechnicianID)
	}
	if !got.Start.Equal(day.Add(9 * time.Hour)) {
		t.Fatalf("expected 09:00, got %s", got.Start)
	}
}

func TestFindSlot_NoTechnicians(t *testing.T) {
	_, err := FindSlot(Request{
		Duration: 30 * time.Minute,
		Now:      time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC),
	}, NewSnapshot(nil))
	if !errors.Is(err, ErrNoTechnicians) {
		t.Fatalf("expected ErrNoTechnicians, got %v", err)
	}
	if err.Error() != "No technicians available" {
		t.Fatalf("unexpected message: %q", err.Error())
	}
}

func TestFindSlot_ExhaustedHorizon(t *testing.T) {
	day := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	busy := make([]BusyInterval, 0, searchDays)
	for d := 0; d < searchDays; d++ {
		start := day.AddDate(0, 0, d).Add(9 * time.Hour)
		busy = append(busy, BusyInterval{
			TechnicianID: 1,
			Interval:     Interval{Start: start, End: start.Add(8 * time.Hour)},
		})
	}
	_, err := FindSlot(Request{
		Duration:      10 * time.Minute,
		AutoSchedule:  true,
		TechnicianIDs: []uint64{1},
		Now:           day.Add(9 * time.Hour),
	}, NewSnapshot(busy))
	if !errors.Is(err, ErrNoSlot) {
		t.Fatalf("expected ErrNoSlot, got %v", err)
	}
	if err.Error() != "No available slot in the next 7 days" {
		t.Fatalf("unexpected message: %q", err.Error())
	}
}

// Booking the slot the finder returns and searching again must never yield an
// overlapping interval for the same technician. This exercises the core
// disjointness invariant over a sequence of auto-scheduled bookings.
func TestFindSlot_SequentialBookingsStayDisjoint(t *testing.T) {
	day := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	var booked []BusyInterval
	for i := 0; i < 20; i++ {
		got, err := FindSlot(Request{
			Duration:      50 * time.Minute,
			AutoSchedule:  true,
			TechnicianIDs: []uint64{1, 2},
			Now:           day.Add(9 * time.Hour),
		}, NewSnapshot(booked))
		if err != nil {
			t.Fatalf("booking %d: %v", i, err)
		}
		next := Interval{Start: got.Start, End: got.End}
		for _, b := range booked {
			if b.TechnicianID == got.TechnicianID && b.Overlaps(next) {
				t.Fatalf("booking %d overlaps existing %v for technician %d", i, b, got.TechnicianID)
			}
		}
		booked = append(booked, BusyInterval{TechnicianID: got.TechnicianID, Interval: next})
	}
}
