// Package repository defines error values that are reused across multiple
// repositories. These sentinel values allow higher layers such as handlers
// to distinguish failure scenarios with errors.Is instead of inspecting
// driver errors.
package repository

import "errors"

// ErrNotFound is returned when a lookup by id finds nothing or an update or
// delete touches no rows. Handlers should translate this into an HTTP 404
// response.
var ErrNotFound = errors.New("not found")

// ErrConflict is returned when a delete cannot be performed because of
// dependent records, such as removing a technician who still has active
// appointments. Handlers should translate this into an HTTP 409 response.
var ErrConflict = errors.New("conflict")
