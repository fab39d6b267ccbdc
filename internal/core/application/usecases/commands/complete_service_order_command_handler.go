package commands

import (
	"context"
)

// CompleteServiceOrderCommandHandler handles marking service orders Done.
type CompleteServiceOrderCommandHandler struct {
	uowFactory ServiceOrderUoWFactory
}

// NewCompleteServiceOrderCommandHandler creates a handler for service order completion.
func NewCompleteServiceOrderCommandHandler(uowFactory ServiceOrderUoWFactory) CompleteServiceOrderCommandHandler {
	return CompleteServiceOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the completion command.
// Completing an already Done order fails without changing anything.
func (h *CompleteServiceOrderCommandHandler) Handle(ctx context.Context, cmd CompleteServiceOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	serviceOrderRepo := uow.ServiceOrderRepository()
	aggregate, err := serviceOrderRepo.Get(ctx, cmd.ServiceOrderID())
	if err != nil {
		return err
	}

	if err = aggregate.Complete(); err != nil {
		return err
	}

	if err = serviceOrderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
