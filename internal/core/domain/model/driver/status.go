package driver

import (
	"fmt"

	"freight/internal/pkg/errs"
)

// Status represents the availability state of a driver.
// It implements a state machine with defined transitions to ensure
// drivers follow the correct availability workflow.
//
// State transitions:
//
//	offline|maintenance ──> available ──> on_trip
//	         ^                  ^            │
//	         │                  └────────────┘
//	         │                  (via trip completion only)
//	         └── any state except on_trip
//
// A driver on a trip cannot go offline or into maintenance directly;
// the trip must be finished first.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Offline is the initial status at driver onboarding.
	// Offline drivers are invisible to matching.
	Offline

	// Available indicates the driver is ready to take loads.
	// Only available drivers are returned by nearby-driver matching.
	Available

	// OnTrip indicates the driver is currently hauling a load.
	// Drivers in this status always carry an active load reference.
	OnTrip

	// Maintenance indicates the driver's vehicle is out of service.
	// Maintenance drivers are invisible to matching.
	Maintenance
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:     "unknown",
		Offline:     "offline",
		Available:   "available",
		OnTrip:      "on_trip",
		Maintenance: "maintenance",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation and parsing.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Offline:     "offline",
		Available:   "available",
		OnTrip:      "on_trip",
		Maintenance: "maintenance",
	}
}

// StatusFromString parses a persisted or caller-supplied status string.
//
// Returns:
//   - the matching Status for "offline", "available", "on_trip", "maintenance"
//   - (Unknown, error) for any other input
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid driver status", s))
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Offline, Available, OnTrip, Maintenance.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid driver status", s))
	}
	return nil
}

// String returns the lowercase name of the status used on the wire and
// in persistence. It implements the fmt.Stringer interface and is safe
// to call on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// ChangeTo validates a manual status change requested by the driver.
//
// Valid manual transitions:
//   - Offline|Maintenance -> Available (activation)
//   - Offline|Available|Maintenance -> Offline|Maintenance (deactivation)
//   - same status -> same status (no-op)
//
// Invalid manual transitions:
//   - anything involving OnTrip: a trip is entered and left only through
//     the trip coordinator (BeginTrip/FinishTrip)
//
// Returns:
//   - (target, nil) on valid transition
//   - (0, error) if the transition is not permitted from the current status
func (s Status) ChangeTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return 0, err
	}

	if s == target {
		return target, nil
	}

	if s == OnTrip || target == OnTrip {
		return 0, errs.NewInvalidStateTransitionError("driver", s.String(), target.String())
	}

	return target, nil
}

// BeginTrip transitions the status to OnTrip.
//
// Valid transitions:
//   - Available -> OnTrip
//
// Invalid transitions:
//   - OnTrip -> OnTrip (driver is already on a trip)
//   - Offline|Maintenance -> OnTrip (driver must activate first)
//
// This method is used by Driver.BeginTrip() to enforce state transitions.
func (s Status) BeginTrip() (Status, error) {
	if s != Available {
		return 0, errs.NewInvalidStateTransitionError("driver", s.String(), OnTrip.String())
	}

	return OnTrip, nil
}

// FinishTrip transitions the status back to Available.
//
// Valid transitions:
//   - OnTrip -> Available
//
// Any other current status is rejected: a driver not on a trip has no
// trip to finish.
//
// This method is used by Driver.FinishTrip() to enforce state transitions.
func (s Status) FinishTrip() (Status, error) {
	if s != OnTrip {
		return 0, errs.NewInvalidStateTransitionError("driver", s.String(), Available.String())
	}

	return Available, nil
}
