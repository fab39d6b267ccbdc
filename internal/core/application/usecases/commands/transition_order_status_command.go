package commands

import (
	"errors"

	"studiodesk/internal/core/domain/model/kernel"
	"studiodesk/internal/core/domain/model/order"
	"studiodesk/internal/pkg/guard"
)

var (
	ErrTransitionOrderStatusCommandIsNotConstructed = errors.New(
		"TransitionOrderStatusCommand must be created via NewTransitionOrderStatusCommand or NewAdvanceOrderStatusCommand constructor",
	)
)

// TransitionOrderStatusCommand represents a request to move a photo order to
// another status. It covers both interaction modes: the explicit menu choice
// (with a target status and, for rollbacks, a confirmation flag) and the
// single-click auto-advance (no target; the unique forward transition is
// applied, terminal states are a no-op).
type TransitionOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID           kernel.UUID
	target            order.Status
	auto              bool
	rollbackConfirmed bool

	guard guard.ConstructorGuard
}

// NewTransitionOrderStatusCommand creates an explicit transition command.
// rollbackConfirmed must be true for transitions back to Pending; without it
// the handler rejects the rollback with RollbackConfirmationRequiredError.
func NewTransitionOrderStatusCommand(
	orderID kernel.UUID,
	target order.Status,
	rollbackConfirmed bool,
) (TransitionOrderStatusCommand, error) {
	if err := orderID.Validate(); err != nil {
		return TransitionOrderStatusCommand{}, err
	}

	// the target must be a defined status for at least one order class
	if err := target.Validate(true); err != nil {
		if err = target.Validate(false); err != nil {
			return TransitionOrderStatusCommand{}, err
		}
	}

	return TransitionOrderStatusCommand{
		orderID:           orderID,
		target:            target,
		rollbackConfirmed: rollbackConfirmed,
		guard:             guard.NewConstructorGuard(),
	}, nil
}

// NewAdvanceOrderStatusCommand creates a single-click auto-advance command.
func NewAdvanceOrderStatusCommand(orderID kernel.UUID) (TransitionOrderStatusCommand, error) {
	if err := orderID.Validate(); err != nil {
		return TransitionOrderStatusCommand{}, err
	}

	return TransitionOrderStatusCommand{
		orderID: orderID,
		auto:    true,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through a constructor.
func (c TransitionOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrTransitionOrderStatusCommandIsNotConstructed)
}

// OrderID returns the id of the order to transition.
func (c TransitionOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Target returns the requested status; undefined for auto-advance commands.
func (c TransitionOrderStatusCommand) Target() order.Status {
	return c.target
}

// IsAuto reports whether this is a single-click auto-advance.
func (c TransitionOrderStatusCommand) IsAuto() bool {
	return c.auto
}

// RollbackConfirmed reports whether the user confirmed a rollback to Pending.
func (c TransitionOrderStatusCommand) RollbackConfirmed() bool {
	return c.rollbackConfirmed
}
