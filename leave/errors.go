package leave

import (
	"errors"
	"fmt"
)

var (
	// ErrPeriodsOverlap is the sentinel behind OverlapError.
	ErrPeriodsOverlap = errors.New("leave periods overlap")

	// ErrPeriodNotFound is returned when a period ID is not on the parent.
	ErrPeriodNotFound = errors.New("period not found")
)

// OverlapError identifies two colliding periods by zero-based index.
type OverlapError struct {
	First  int
	Second int
}

func (e *OverlapError) Error() string {
	return fmt.Sprintf("%s: %s", ErrPeriodsOverlap, overlapMessage(e.First, e.Second))
}

func (e *OverlapError) Unwrap() error { return ErrPeriodsOverlap }
