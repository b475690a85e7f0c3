// Package schedule implements the appointment scheduling engine: clamping
// candidate times into the shop's working hours, conflict detection against a
// preloaded snapshot of active appointments, least-loaded technician
// selection, and the slot search itself. The package is pure — it never
// touches the database — so the whole engine is unit-testable. All times are
// UTC; the repository layer stores them in the same normalized form.
package schedule

import "time"

// Working hours are a fixed daily window. Appointments must fit inside
// [09:00, 17:00) of a single day.
const (
	WorkStartHour = 9
	WorkEndHour   = 17
)

// storageLayout is the wall-clock form used for DATETIME columns.
const storageLayout = "2006-01-02 15:04:05"

// ClampToWorkday normalizes an arbitrary timestamp into the workday window.
// Sub-minute precision is dropped. A time before opening moves to 09:00 of
// the same day; a time at or past closing moves to 16:00, the last hour with
// any usable room. Clamping does not validate the end of an appointment —
// a long duration can still run past closing, and callers check that
// separately.
func ClampToWorkday(t time.Time) time.Time {
	t = t.UTC().Truncate(time.Minute)
	switch h := t.Hour(); {
	case h < WorkStartHour:
		return time.Date(t.Year(), t.Month(), t.Day(), WorkStartHour, 0, 0, 0, time.UTC)
	case h >= WorkEndHour:
		return time.Date(t.Year(), t.Month(), t.Day(), WorkEndHour-1, 0, 0, 0, time.UTC)
	}
	return t
}

// StorageTimestamp renders t in the fixed UTC wall-clock form used for both
// persistence and interval comparisons ("YYYY-MM-DD HH:MM:SS").
func StorageTimestamp(t time.Time) string {
	return t.UTC().Format(storageLayout)
}

// ParseStorageTimestamp is the inverse of StorageTimestamp.
func ParseStorageTimestamp(s string) (time.Time, error) {
	return time.Parse(storageLayout, s)
}

// closeOf returns the closing instant (17:00) of the day t falls on.
func closeOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), WorkEndHour, 0, 0, 0, time.UTC)
}

// fitsWorkday reports whether an appointment starting at start and ending at
// end stays within the workday of its start date. The end may touch 17:00
// exactly; anything later overflows.
func fitsWorkday(start, end time.Time) bool {
	return !end.After(closeOf(start))
}
