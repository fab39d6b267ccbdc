package commands

import (
	"context"
	"time"

	"studiodesk/internal/core/domain/model/order"
)

// TransitionOrderStatusCommandHandler handles photo order status changes.
//
// Responsibilities:
//   - rejecting a second transition for an order that has one in flight
//   - gating rollbacks to Pending behind the confirmation flag
//   - applying the class-specific state machine and persisting the result
//
// A failed transition leaves the stored order untouched; the caller surfaces
// the error and keeps showing the current status.
type TransitionOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	inflight   *TransitionGuard
}

// NewTransitionOrderStatusCommandHandler creates a handler for order status transitions.
func NewTransitionOrderStatusCommandHandler(
	uowFactory OrderUoWFactory,
	inflight *TransitionGuard,
) TransitionOrderStatusCommandHandler {
	return TransitionOrderStatusCommandHandler{
		uowFactory: uowFactory,
		inflight:   inflight,
	}
}

// Handle processes the transition command and returns the order's status
// after it. An auto-advance on a terminal state is a no-op and returns the
// unchanged status.
func (h *TransitionOrderStatusCommandHandler) Handle(
	ctx context.Context,
	cmd TransitionOrderStatusCommand,
) (order.Status, error) {
	if err := cmd.Validate(); err != nil {
		return order.StatusUnknown, err
	}

	if err := h.inflight.Acquire(cmd.OrderID().String()); err != nil {
		return order.StatusUnknown, err
	}
	defer h.inflight.Release(cmd.OrderID().String())

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return order.StatusUnknown, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return order.StatusUnknown, err
	}

	if cmd.IsAuto() {
		advanced, err := aggregate.AutoAdvance(time.Now())
		if err != nil {
			return order.StatusUnknown, err
		}
		if !advanced {
			return aggregate.Status(), nil
		}
	} else {
		if aggregate.Status().IsRollback(cmd.Target()) && !cmd.RollbackConfirmed() {
			return order.StatusUnknown, NewRollbackConfirmationRequiredError(aggregate.Status().String())
		}
		if err = aggregate.TransitionTo(cmd.Target(), time.Now()); err != nil {
			return order.StatusUnknown, err
		}
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return order.StatusUnknown, err
	}

	if err = uow.Commit(ctx); err != nil {
		return order.StatusUnknown, err
	}

	return aggregate.Status(), nil
}
