package commands

import (
	"context"
	"time"

	"studiodesk/internal/core/domain/model/catalog"
	"studiodesk/internal/core/domain/model/kernel"
	"studiodesk/internal/core/domain/model/order"
	"studiodesk/internal/core/domain/services"
	"studiodesk/internal/core/ports"
)

// ComposeOrderCommandHandler handles the business logic for composing photo
// orders: it resolves unit prices from the catalog, runs the composition
// engine and persists every resulting bucket atomically.
//
// Example:
//
//	handler := NewComposeOrderCommandHandler(uowFactory, catalogRepo,
//	    services.NewPriceResolver(),
//	    services.NewOrderComposer(services.NewOrderBucketer(), services.NewSettlementAllocator()))
//
//	ids, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("failed to compose order: %w", err)
//	}
//	// ids lists the persisted orders in bucket order
type ComposeOrderCommandHandler struct {
	uowFactory  OrderUoWFactory
	catalogRepo ports.CatalogRepository
	resolver    services.PriceResolver
	composer    services.OrderComposer
}

// NewComposeOrderCommandHandler creates a handler for order composition.
func NewComposeOrderCommandHandler(
	uowFactory OrderUoWFactory,
	catalogRepo ports.CatalogRepository,
	resolver services.PriceResolver,
	composer services.OrderComposer,
) ComposeOrderCommandHandler {
	return ComposeOrderCommandHandler{
		uowFactory:  uowFactory,
		catalogRepo: catalogRepo,
		resolver:    resolver,
		composer:    composer,
	}
}

// Handle processes the compose command and returns the persisted order ids in
// bucket order. The bucket that kept the original order's id is updated in
// place; every other bucket is added as a new order.
func (h *ComposeOrderCommandHandler) Handle(ctx context.Context, cmd ComposeOrderCommand) ([]kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	draft, err := h.buildDraft(ctx, cmd)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	var original *order.Order
	if cmd.IsEdit() {
		original, err = orderRepo.Get(ctx, cmd.OriginalOrderID())
		if err != nil {
			return nil, err
		}
	}

	composed, err := h.composer.Compose(draft, original, time.Now())
	if err != nil {
		return nil, err
	}

	ids := make([]kernel.UUID, 0, len(composed))
	for _, o := range composed {
		if original != nil && o.ID().IsEqual(original.ID()) {
			err = orderRepo.Update(ctx, o)
		} else {
			err = orderRepo.Add(ctx, o)
		}
		if err != nil {
			return nil, err
		}
		ids = append(ids, o.ID())
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return ids, nil
}

// buildDraft resolves customer-tier unit prices for every row and assembles
// the composer input.
func (h *ComposeOrderCommandHandler) buildDraft(ctx context.Context, cmd ComposeOrderCommand) (services.OrderDraft, error) {
	items, err := h.catalogRepo.GetItems(ctx)
	if err != nil {
		return services.OrderDraft{}, err
	}
	rules, err := h.catalogRepo.GetPricingRules(ctx)
	if err != nil {
		return services.OrderDraft{}, err
	}
	cat := catalog.NewCatalog(items, rules)

	customer, err := order.NewCustomer(cmd.CustomerID(), cmd.CustomerName(), cmd.CustomerMobile())
	if err != nil {
		return services.OrderDraft{}, err
	}

	lineItems := make([]order.LineItem, 0, len(cmd.Items()))
	for _, row := range cmd.Items() {
		unitPrice, err := h.resolver.Resolve(cat, row.ItemType, row.Addons, row.IsInstant, catalog.TierCustomer)
		if err != nil {
			return services.OrderDraft{}, err
		}

		lineItem, err := order.NewLineItem(row.ItemType, row.Addons, row.Quantity,
			row.IsInstant, unitPrice, row.GroupID)
		if err != nil {
			return services.OrderDraft{}, err
		}
		lineItems = append(lineItems, lineItem)
	}

	return services.OrderDraft{
		Customer:       customer,
		Items:          lineItems,
		Description:    cmd.Description(),
		PaymentMode:    cmd.PaymentMode(),
		DiscountAmount: cmd.DiscountAmount(),
		AmountPaid:     cmd.AmountPaid(),
		UploadID:       cmd.UploadID(),
	}, nil
}
