package trip

import (
	"fmt"

	"freight/internal/pkg/errs"
)

// Status represents the lifecycle state of a trip.
//
// State transitions:
//
//	started ──> completed
//	   │
//	   └──────> cancelled
//
// Both completed and cancelled are terminal.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Started is the initial status: the driver is hauling the load.
	Started

	// Completed indicates the haul finished and earnings were recorded.
	// This is a terminal status.
	Completed

	// Cancelled indicates the haul was aborted.
	// This is a terminal status.
	Cancelled
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Started:   "started",
		Completed: "completed",
		Cancelled: "cancelled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation and parsing.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Started:   "started",
		Completed: "completed",
		Cancelled: "cancelled",
	}
}

// StatusFromString parses a persisted status string.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid trip status", s))
}

// Validate checks if the Status value is valid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid trip status", s))
	}
	return nil
}

// String returns the lowercase name of the status used on the wire and
// in persistence. Safe to call on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether no further transition is permitted.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Cancelled
}

// Complete transitions the status to Completed.
//
// Only a Started trip can complete; completing an already completed or
// cancelled trip is rejected so earnings are never credited twice.
//
// This method is used by Trip.Complete() to enforce state transitions.
func (s Status) Complete() (Status, error) {
	if s != Started {
		return 0, errs.NewInvalidStateTransitionError("trip", s.String(), Completed.String())
	}

	return Completed, nil
}
