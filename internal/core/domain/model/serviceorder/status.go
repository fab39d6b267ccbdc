package serviceorder

import (
	"fmt"

	"studiodesk/internal/pkg/errs"
)

// Status represents the lifecycle state of a service order.
//
//	Pending ──> Done (terminal)
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// StatusPending is the initial status; the order is editable in this state.
	StatusPending

	// StatusDone indicates the service was completed and handed over. Terminal.
	StatusDone
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown: "Unknown",
		StatusPending: "Pending",
		StatusDone:    "Done",
	}
}

// Validate checks if the Status value is a defined service order status.
func (s Status) Validate() error {
	if s != StatusPending && s != StatusDone {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid service order status", int(s)))
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
