package commands

import (
	"errors"

	"studiodesk/internal/core/domain/model/kernel"
	"studiodesk/internal/pkg/guard"
)

var (
	ErrCompleteServiceOrderCommandIsNotConstructed = errors.New(
		"CompleteServiceOrderCommand must be created via NewCompleteServiceOrderCommand constructor",
	)
)

// CompleteServiceOrderCommand represents a request to mark a service order
// Done. Done is terminal: the order stops being editable and cannot be
// completed again.
type CompleteServiceOrderCommand struct { //nolint:recvcheck //using for validation
	serviceOrderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCompleteServiceOrderCommand creates a command to complete a service order.
func NewCompleteServiceOrderCommand(serviceOrderID kernel.UUID) (CompleteServiceOrderCommand, error) {
	if err := serviceOrderID.Validate(); err != nil {
		return CompleteServiceOrderCommand{}, err
	}

	return CompleteServiceOrderCommand{
		serviceOrderID: serviceOrderID,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteServiceOrderCommand) Validate() error {
	return c.guard.Validate(ErrCompleteServiceOrderCommandIsNotConstructed)
}

// ServiceOrderID returns the id of the service order to complete.
func (c CompleteServiceOrderCommand) ServiceOrderID() kernel.UUID {
	return c.serviceOrderID
}
