package order

import (
	"fmt"

	"studiodesk/internal/pkg/errs"
)

// Status represents the lifecycle state of a photo order.
// The valid states and transitions depend on the order's fulfillment class:
//
// Instant orders:
//
//	Pending ──> Processing ──> Delivered
//	   │
//	   └──> Discarded
//	{Delivered, Discarded} ──> Pending (rollback, confirmation-gated)
//
// Regular orders:
//
//	Pending ──> Lab Processing ──> Lab Received ──> Delivered
//	   │
//	   └──> Discarded
//	{Delivered, Discarded} ──> Pending (rollback, confirmation-gated)
//
// Status is a value object; transitions are validated against the class-specific
// table and rollbacks are flagged so callers can require user confirmation.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusPending is the initial status of every order.
	StatusPending

	// StatusProcessing indicates an instant order being printed at the counter.
	StatusProcessing

	// StatusLabProcessing indicates a regular order sent to the external lab.
	StatusLabProcessing

	// StatusLabReceived indicates a regular order returned from the lab.
	StatusLabReceived

	// StatusDelivered indicates the order was handed over to the customer.
	StatusDelivered

	// StatusDiscarded indicates the order was abandoned while Pending.
	StatusDiscarded
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:       "Unknown",
		StatusPending:       "Pending",
		StatusProcessing:    "Processing",
		StatusLabProcessing: "Lab Processing",
		StatusLabReceived:   "Lab Received",
		StatusDelivered:     "Delivered",
		StatusDiscarded:     "Discarded",
	}
}

// getValidStatuses returns the valid status set for a fulfillment class.
// Lab states only exist for regular orders; Processing only for instant ones.
func getValidStatuses(isInstant bool) map[Status]struct{} {
	if isInstant {
		return map[Status]struct{}{
			StatusPending:    {},
			StatusProcessing: {},
			StatusDelivered:  {},
			StatusDiscarded:  {},
		}
	}
	return map[Status]struct{}{
		StatusPending:       {},
		StatusLabProcessing: {},
		StatusLabReceived:   {},
		StatusDelivered:     {},
		StatusDiscarded:     {},
	}
}

// Validate checks if the Status value is valid for the given fulfillment class.
//
// Returns:
//   - nil if the status is valid for the class
//   - error with details if the status is invalid
func (s Status) Validate(isInstant bool) error {
	if _, ok := getValidStatuses(isInstant)[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a valid status for this order class", s.String()))
	}
	return nil
}

// String returns the human-readable name of the status.
// This method implements the fmt.Stringer interface and is safe
// to call on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// StatusFromString parses a status from its display name.
// Returns StatusUnknown with an error for unrecognized names.
func StatusFromString(name string) (Status, error) {
	for status, str := range getStatusStrings() {
		if status != StatusUnknown && str == name {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a recognized status", name))
}

// AvailableTransitions lists all valid target statuses from the current state
// for the given fulfillment class, in menu order. Destructive transitions
// (Discarded) and rollbacks (back to Pending) are included.
func (s Status) AvailableTransitions(isInstant bool) []Status {
	switch s {
	case StatusPending:
		if isInstant {
			return []Status{StatusProcessing, StatusDiscarded}
		}
		return []Status{StatusLabProcessing, StatusDiscarded}
	case StatusProcessing:
		if isInstant {
			return []Status{StatusDelivered}
		}
	case StatusLabProcessing:
		if !isInstant {
			return []Status{StatusLabReceived}
		}
	case StatusLabReceived:
		if !isInstant {
			return []Status{StatusDelivered}
		}
	case StatusDelivered, StatusDiscarded:
		return []Status{StatusPending}
	}
	return nil
}

// NextAuto returns the unique forward transition from the current state, if any.
// Forward means progress toward Delivered; Discarded and Pending-rollback are
// never chosen automatically. The second return value is false when the state
// has no forward transition (terminal states), in which case a single-click
// advance is a no-op.
func (s Status) NextAuto(isInstant bool) (Status, bool) {
	switch s {
	case StatusPending:
		if isInstant {
			return StatusProcessing, true
		}
		return StatusLabProcessing, true
	case StatusProcessing:
		if isInstant {
			return StatusDelivered, true
		}
	case StatusLabProcessing:
		if !isInstant {
			return StatusLabReceived, true
		}
	case StatusLabReceived:
		if !isInstant {
			return StatusDelivered, true
		}
	}
	return StatusUnknown, false
}

// CanTransition reports whether the transition to target is valid for the
// given fulfillment class.
func (s Status) CanTransition(target Status, isInstant bool) bool {
	for _, t := range s.AvailableTransitions(isInstant) {
		if t == target {
			return true
		}
	}
	return false
}

// Transition validates and performs the transition to target.
//
// Returns:
//   - (target, nil) when the transition is listed for the current state
//   - (0, error) otherwise; callers must leave the current status untouched
func (s Status) Transition(target Status, isInstant bool) (Status, error) {
	if !s.CanTransition(target, isInstant) {
		return 0, errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("transition from %s to %s is not allowed", s.String(), target.String()))
	}
	return target, nil
}

// IsRollback reports whether moving to target would revert the order to
// Pending from a non-initial state. Rollbacks must pass a user confirmation
// gate before being applied.
func (s Status) IsRollback(target Status) bool {
	return target == StatusPending && s != StatusPending
}
