package commands

import "fmt"

// RollbackConfirmationRequiredError is returned when a transition back to
// Pending is requested without the confirmation flag. The caller must prompt
// the user, naming the state being left, and repeat the command confirmed.
type RollbackConfirmationRequiredError struct {
	CurrentStatus string
}

// NewRollbackConfirmationRequiredError creates the error for the given state.
func NewRollbackConfirmationRequiredError(currentStatus string) *RollbackConfirmationRequiredError {
	return &RollbackConfirmationRequiredError{CurrentStatus: currentStatus}
}

// Error implements the error interface.
func (e *RollbackConfirmationRequiredError) Error() string {
	return fmt.Sprintf("rolling back to Pending from %s requires confirmation", e.CurrentStatus)
}
