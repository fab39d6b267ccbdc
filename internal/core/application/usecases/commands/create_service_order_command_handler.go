package commands

import (
	"context"
	"time"

	"studiodesk/internal/core/domain/model/kernel"
	"studiodesk/internal/core/domain/model/order"
	"studiodesk/internal/core/domain/model/serviceorder"
)

// CreateServiceOrderCommandHandler handles the creation of ad-hoc service
// orders. The new order starts Pending and stays editable until completed.
type CreateServiceOrderCommandHandler struct {
	uowFactory ServiceOrderUoWFactory
}

// NewCreateServiceOrderCommandHandler creates a handler for service order creation.
func NewCreateServiceOrderCommandHandler(uowFactory ServiceOrderUoWFactory) CreateServiceOrderCommandHandler {
	return CreateServiceOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the create command and returns the new service order's id.
func (h *CreateServiceOrderCommandHandler) Handle(ctx context.Context, cmd CreateServiceOrderCommand) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	customer, err := order.NewCustomer(cmd.CustomerID(), cmd.CustomerName(), cmd.CustomerMobile())
	if err != nil {
		return kernel.UUID{}, err
	}

	payment, err := order.NewPayment(cmd.PaymentMode(), cmd.Amount(), 0, cmd.AmountPaid())
	if err != nil {
		return kernel.UUID{}, err
	}

	aggregate, err := serviceorder.NewServiceOrder(kernel.NewUUID(), customer,
		cmd.ServiceName(), cmd.Amount(), cmd.Description(), payment, cmd.UploadIDs(), time.Now())
	if err != nil {
		return kernel.UUID{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.ServiceOrderRepository().Add(ctx, aggregate); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	return aggregate.ID(), nil
}
