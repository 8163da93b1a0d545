package port

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound signals that a referenced record is missing or, for
	// banners on the public endpoints, inactive.
	ErrNotFound = errors.New("not found")

	// ErrPermissionDenied is a hard denial at the object level, distinct
	// from the silent exclusion the list scoping performs.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrValidation signals a rejected write, e.g. adding a client's owner
	// to its own staff table. Wrap with detail via fmt.Errorf and %w.
	ErrValidation = errors.New("validation failed")
)

// AnalyticsWriteError wraps a failed insert into the analytics store. The
// tracking pipeline swallows it in normal operation and propagates it in
// strict mode.
type AnalyticsWriteError struct {
	Table string
	Err   error
}

func (e *AnalyticsWriteError) Error() string {
	return fmt.Sprintf("failed to insert into %s: %v", e.Table, e.Err)
}

func (e *AnalyticsWriteError) Unwrap() error { return e.Err }
