package schedule

import (
	"testing"
	"time"
)

func TestClampToWorkday_BeforeOpening(t *testing.T) {
	in := time.Date(2024, 1, 1, 7, 23, 45, 0, time.UTC)
	got := ClampToWorkday(in)
	want := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("expected %s, got %s", want, got)
	}
}

func TestClampToWorkday_AfterClosing(t *testing.T) {
	in := time.Date(2024, 1, 1, 18, 40, 0, 0, time.UTC)
	got := ClampToWorkday(in)
	want := time.Date(2024, 1, 1, 16, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("expected %s, got %s", want, got)
	}
}

func TestClampToWorkday_InsideWindowKeepsMinutes(t *testing.T) {
	in := time.Date(2024, 1, 1, 10, 45, 59, 123, time.UTC)
	got := ClampToWorkday(in)
	want := time.Date(2024, 1, 1, 10, 45, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("expected %s, got %s", want, got)
	}
}

func TestStorageTimestamp(t *testing.T) {
	in := time.Date(2024, 3, 5, 9, 10, 0, 0, time.UTC)
	if got := StorageTimestamp(in); got != "2024-03-05 09:10:00" {
		t.Fatalf("unexpected storage form: %q", got)
	}
	back, err := ParseStorageTimestamp("2024-03-05 09:10:00")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if !back.Equal(in) {
		t.Fatalf("round trip mismatch: %s", back)
	}
}

func TestFitsWorkday_EndTouchingCloseIsAllowed(t *testing.T) {
	start := time.Date(2024, 1, 1, 16, 30, 0, 0, time.UTC)
	if !fitsWorkday(start, start.Add(30*time.Minute)) {
		t.Fatal("appointment ending exactly at 17:00 should fit")
	}
	if fitsWorkday(start, start.Add(31*time.Minute)) {
		t.Fatal("appointment ending past 17:00 should not fit")
	}
}
