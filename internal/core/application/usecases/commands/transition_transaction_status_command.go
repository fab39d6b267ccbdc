package commands

import (
	"errors"

	"studiodesk/internal/core/domain/model/kernel"
	"studiodesk/internal/core/domain/model/transaction"
	"studiodesk/internal/pkg/guard"
)

var (
	ErrTransitionTransactionStatusCommandIsNotConstructed = errors.New(
		"TransitionTransactionStatusCommand must be created via NewTransitionTransactionStatusCommand or NewAdvanceTransactionStatusCommand constructor",
	)
)

// TransitionTransactionStatusCommand represents a request to move a bill
// payment or money transfer to another status. Mirrors the photo order
// transition command: explicit menu choice or single-click auto-advance, with
// rollbacks to Pending gated behind a confirmation flag.
type TransitionTransactionStatusCommand struct { //nolint:recvcheck //using for validation
	transactionID     kernel.UUID
	target            transaction.Status
	auto              bool
	rollbackConfirmed bool

	guard guard.ConstructorGuard
}

// NewTransitionTransactionStatusCommand creates an explicit transition command.
func NewTransitionTransactionStatusCommand(
	transactionID kernel.UUID,
	target transaction.Status,
	rollbackConfirmed bool,
) (TransitionTransactionStatusCommand, error) {
	if err := transactionID.Validate(); err != nil {
		return TransitionTransactionStatusCommand{}, err
	}
	if err := target.Validate(); err != nil {
		return TransitionTransactionStatusCommand{}, err
	}

	return TransitionTransactionStatusCommand{
		transactionID:     transactionID,
		target:            target,
		rollbackConfirmed: rollbackConfirmed,
		guard:             guard.NewConstructorGuard(),
	}, nil
}

// NewAdvanceTransactionStatusCommand creates a single-click auto-advance command.
func NewAdvanceTransactionStatusCommand(transactionID kernel.UUID) (TransitionTransactionStatusCommand, error) {
	if err := transactionID.Validate(); err != nil {
		return TransitionTransactionStatusCommand{}, err
	}

	return TransitionTransactionStatusCommand{
		transactionID: transactionID,
		auto:          true,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through a constructor.
func (c TransitionTransactionStatusCommand) Validate() error {
	return c.guard.Validate(ErrTransitionTransactionStatusCommandIsNotConstructed)
}

// TransactionID returns the id of the transaction to transition.
func (c TransitionTransactionStatusCommand) TransactionID() kernel.UUID {
	return c.transactionID
}

// Target returns the requested status; undefined for auto-advance commands.
func (c TransitionTransactionStatusCommand) Target() transaction.Status {
	return c.target
}

// IsAuto reports whether this is a single-click auto-advance.
func (c TransitionTransactionStatusCommand) IsAuto() bool {
	return c.auto
}

// RollbackConfirmed reports whether the user confirmed a rollback to Pending.
func (c TransitionTransactionStatusCommand) RollbackConfirmed() bool {
	return c.rollbackConfirmed
}
