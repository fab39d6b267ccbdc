package transaction

import (
	"fmt"

	"studiodesk/internal/pkg/errs"
)

// Status represents the lifecycle state of a transaction.
//
//	Pending ──> Done
//	   │ ├──> Failed ──> Refunded
//	   │ └──> Discarded
//	{Done, Discarded, Refunded} ──> Pending (rollback, confirmation-gated)
//	Failed ──> Pending (rollback, confirmation-gated)
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// StatusPending is the initial status of every transaction.
	StatusPending

	// StatusDone indicates the payment or transfer went through.
	StatusDone

	// StatusFailed indicates the payment or transfer bounced.
	StatusFailed

	// StatusRefunded indicates the customer was paid back after a failure.
	StatusRefunded

	// StatusDiscarded indicates the transaction was abandoned while Pending.
	StatusDiscarded
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:   "Unknown",
		StatusPending:   "Pending",
		StatusDone:      "Done",
		StatusFailed:    "Failed",
		StatusRefunded:  "Refunded",
		StatusDiscarded: "Discarded",
	}
}

// Validate checks if the Status value is a defined transaction status.
func (s Status) Validate() error {
	if s <= StatusUnknown || s > StatusDiscarded {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid transaction status", int(s)))
	}
	return nil
}

// String returns the human-readable name of the status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// StatusFromString parses a status from its display name.
func StatusFromString(name string) (Status, error) {
	for status, str := range getStatusStrings() {
		if status != StatusUnknown && str == name {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a recognized status", name))
}

// AvailableTransitions lists all valid target statuses from the current state,
// in menu order.
func (s Status) AvailableTransitions() []Status {
	switch s {
	case StatusPending:
		return []Status{StatusDone, StatusFailed, StatusDiscarded}
	case StatusFailed:
		return []Status{StatusRefunded, StatusPending}
	case StatusDone, StatusRefunded, StatusDiscarded:
		return []Status{StatusPending}
	}
	return nil
}

// NextAuto returns the unique forward transition from the current state, if
// any. Failure, discard and rollback are never chosen automatically, so a
// Pending transaction clicks straight to Done and a Failed one to Refunded.
func (s Status) NextAuto() (Status, bool) {
	switch s {
	case StatusPending:
		return StatusDone, true
	case StatusFailed:
		return StatusRefunded, true
	}
	return StatusUnknown, false
}

// CanTransition reports whether the transition to target is valid.
func (s Status) CanTransition(target Status) bool {
	for _, t := range s.AvailableTransitions() {
		if t == target {
			return true
		}
	}
	return false
}

// Transition validates and performs the transition to target.
func (s Status) Transition(target Status) (Status, error) {
	if !s.CanTransition(target) {
		return 0, errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("transition from %s to %s is not allowed", s.String(), target.String()))
	}
	return target, nil
}

// IsRollback reports whether moving to target would revert the transaction to
// Pending from a non-initial state. Rollbacks must pass a user confirmation
// gate before being applied.
func (s Status) IsRollback(target Status) bool {
	return target == StatusPending && s != StatusPending
}
