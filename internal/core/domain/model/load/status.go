package load

import (
	"fmt"

	"freight/internal/pkg/errs"
)

// Status represents the lifecycle state of a load.
// It implements a state machine with defined transitions to ensure
// loads follow the correct business workflow.
//
// State transitions:
//
//	pending ──> assigned ──> in_transit ──> delivered
//	   │            │             │
//	   └────────────┴─────────────┴──> cancelled
//
// Progression is monotonic: delivered and cancelled are terminal and
// no status can move backwards.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status when a shipper posts a load.
	// Only pending loads are returned by nearby-load matching.
	Pending

	// Assigned indicates a driver has been assigned to the load.
	Assigned

	// InTransit indicates the load is being hauled.
	InTransit

	// Delivered indicates the load reached its destination.
	// This is a terminal status.
	Delivered

	// Cancelled indicates the load was withdrawn before delivery.
	// This is a terminal status.
	Cancelled
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Pending:   "pending",
		Assigned:  "assigned",
		InTransit: "in_transit",
		Delivered: "delivered",
		Cancelled: "cancelled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation and parsing.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "pending",
		Assigned:  "assigned",
		InTransit: "in_transit",
		Delivered: "delivered",
		Cancelled: "cancelled",
	}
}

// getTransitions returns the permitted forward transitions per status.
// Terminal statuses map to an empty set.
func getTransitions() map[Status][]Status {
	return map[Status][]Status{
		Pending:   {Assigned, Cancelled},
		Assigned:  {InTransit, Cancelled},
		InTransit: {Delivered, Cancelled},
		Delivered: {},
		Cancelled: {},
	}
}

// StatusFromString parses a persisted or caller-supplied status string.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid load status", s))
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Pending, Assigned, InTransit, Delivered, Cancelled.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid load status", s))
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

// IsTerminal reports whether no further transition is permitted.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// TransitionTo validates a transition against the state machine table.
//
// Returns:
//   - (target, nil) if the transition is permitted
//   - (0, error) with an InvalidStateTransition error otherwise
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return 0, err
	}

	for _, allowed := range getTransitions()[s] {
		if allowed == target {
			return target, nil
		}
	}

	return 0, errs.NewInvalidStateTransitionError("load", s.String(), target.String())
}

// Assign transitions the status to Assigned.
//
// Only Pending loads can be assigned; anything else fails so a load is
// never handed to two drivers.
//
// This method is used by Load.Assign() to enforce state transitions.
func (s Status) Assign() (Status, error) {
	if s != Pending {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("load is not available for assignment: status is %s", s.String()),
		)
	}

	return Assigned, nil
}
