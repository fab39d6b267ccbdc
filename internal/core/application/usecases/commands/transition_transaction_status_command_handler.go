package commands

import (
	"context"
	"time"

	"studiodesk/internal/core/domain/model/transaction"
)

// TransitionTransactionStatusCommandHandler handles bill payment and money
// transfer status changes, with the same in-flight and rollback-confirmation
// guards as the photo order handler.
type TransitionTransactionStatusCommandHandler struct {
	uowFactory TransactionUoWFactory
	inflight   *TransitionGuard
}

// NewTransitionTransactionStatusCommandHandler creates a handler for transaction status transitions.
func NewTransitionTransactionStatusCommandHandler(
	uowFactory TransactionUoWFactory,
	inflight *TransitionGuard,
) TransitionTransactionStatusCommandHandler {
	return TransitionTransactionStatusCommandHandler{
		uowFactory: uowFactory,
		inflight:   inflight,
	}
}

// Handle processes the transition command and returns the transaction's
// status after it. An auto-advance on a terminal state is a no-op.
func (h *TransitionTransactionStatusCommandHandler) Handle(
	ctx context.Context,
	cmd TransitionTransactionStatusCommand,
) (transaction.Status, error) {
	if err := cmd.Validate(); err != nil {
		return transaction.StatusUnknown, err
	}

	if err := h.inflight.Acquire(cmd.TransactionID().String()); err != nil {
		return transaction.StatusUnknown, err
	}
	defer h.inflight.Release(cmd.TransactionID().String())

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return transaction.StatusUnknown, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	transactionRepo := uow.TransactionRepository()
	aggregate, err := transactionRepo.Get(ctx, cmd.TransactionID())
	if err != nil {
		return transaction.StatusUnknown, err
	}

	if cmd.IsAuto() {
		advanced, err := aggregate.AutoAdvance(time.Now())
		if err != nil {
			return transaction.StatusUnknown, err
		}
		if !advanced {
			return aggregate.Status(), nil
		}
	} else {
		if aggregate.Status().IsRollback(cmd.Target()) && !cmd.RollbackConfirmed() {
			return transaction.StatusUnknown, NewRollbackConfirmationRequiredError(aggregate.Status().String())
		}
		if err = aggregate.TransitionTo(cmd.Target(), time.Now()); err != nil {
			return transaction.StatusUnknown, err
		}
	}

	if err = transactionRepo.Update(ctx, aggregate); err != nil {
		return transaction.StatusUnknown, err
	}

	if err = uow.Commit(ctx); err != nil {
		return transaction.StatusUnknown, err
	}

	return aggregate.Status(), nil
}
