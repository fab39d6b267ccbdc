package commands_test

import (
	"errors"
	"testing"
	"time"

	"studiodesk/internal/core/application/usecases/commands"
	"studiodesk/internal/core/domain/model/catalog"
	"studiodesk/internal/core/domain/model/kernel"
	"studiodesk/internal/core/domain/model/order"
	"studiodesk/internal/core/domain/services"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newComposeHandler(factory *MockOrderUoWFactory, catalogRepo *MockCatalogRepository) commands.ComposeOrderCommandHandler {
	return commands.NewComposeOrderCommandHandler(factory, catalogRepo,
		services.NewPriceResolver(),
		services.NewOrderComposer(services.NewOrderBucketer(), services.NewSettlementAllocator()))
}

func catalogFixtures(t *testing.T) ([]catalog.Item, []catalog.PricingRule) {
	t.Helper()
	passport, err := catalog.NewItem("Passport Photo", 40, 50, 50, 60)
	require.NoError(t, err)
	enlargement, err := catalog.NewItem("12x18 Enlargement", 120, 150, 150, 180)
	require.NoError(t, err)
	return []catalog.Item{passport, enlargement}, nil
}

func regularOrderOnFile(t *testing.T, id kernel.UUID) *order.Order {
	t.Helper()
	item, err := order.NewLineItem("12x18 Enlargement", nil, 1, false, 150, 0)
	require.NoError(t, err)
	customer, err := order.NewCustomer("cust-1", "Asha", "")
	require.NoError(t, err)
	payment, err := order.NewPayment("Cash", 150, 0, 0)
	require.NoError(t, err)

	o, err := order.RestoreOrder(id, customer, []order.LineItem{item}, "", payment, "",
		order.StatusPending, time.Now().Add(-time.Hour), nil)
	require.NoError(t, err)
	return o
}

func TestComposeOrderCommandHandler_Handle_NewDraft(t *testing.T) {
	ctx := t.Context()
	items, rules := catalogFixtures(t)

	catalogRepo := new(MockCatalogRepository)
	catalogRepo.On("GetItems", ctx).Return(items, nil).Once()
	catalogRepo.On("GetPricingRules", ctx).Return(rules, nil).Once()

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	cmd, err := commands.NewComposeOrderCommand(kernel.UUID{}, "cust-1", "Asha", "",
		[]commands.ComposeOrderItem{{ItemType: "Passport Photo", Quantity: 2, IsInstant: true}},
		"", "Cash", 0, 0, "")
	require.NoError(t, err)

	h := newComposeHandler(factory, catalogRepo)
	ids, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Len(t, ids, 1)

	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	catalogRepo.AssertExpectations(t)
}

func TestComposeOrderCommandHandler_Handle_EditSplit(t *testing.T) {
	ctx := t.Context()
	items, rules := catalogFixtures(t)
	originalID := kernel.NewUUID()
	original := regularOrderOnFile(t, originalID)

	catalogRepo := new(MockCatalogRepository)
	catalogRepo.On("GetItems", ctx).Return(items, nil).Once()
	catalogRepo.On("GetPricingRules", ctx).Return(rules, nil).Once()

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, originalID).Return(original, nil).Once(),
		// instant bucket is new, regular bucket keeps the original id
		repo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		repo.On("Update", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	cmd, err := commands.NewComposeOrderCommand(originalID, "cust-1", "Asha", "",
		[]commands.ComposeOrderItem{
			{ItemType: "Passport Photo", Quantity: 1, IsInstant: true},
			{ItemType: "12x18 Enlargement", Quantity: 1, IsInstant: false},
		}, "", "Cash", 0, 0, "")
	require.NoError(t, err)

	h := newComposeHandler(factory, catalogRepo)
	ids, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Len(t, ids, 2)
	require.False(t, ids[0].IsEqual(originalID))
	require.True(t, ids[1].IsEqual(originalID))

	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestComposeOrderCommandHandler_Handle_EditManualSplit(t *testing.T) {
	ctx := t.Context()
	items, rules := catalogFixtures(t)
	originalID := kernel.NewUUID()
	original := regularOrderOnFile(t, originalID)

	catalogRepo := new(MockCatalogRepository)
	catalogRepo.On("GetItems", ctx).Return(items, nil).Once()
	catalogRepo.On("GetPricingRules", ctx).Return(rules, nil).Once()

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, originalID).Return(original, nil).Once(),
		// main bucket keeps the original id, the split bucket is new
		repo.On("Update", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	cmd, err := commands.NewComposeOrderCommand(originalID, "cust-1", "Asha", "",
		[]commands.ComposeOrderItem{
			{ItemType: "Passport Photo", Quantity: 1, IsInstant: true, GroupID: 1},
			{ItemType: "12x18 Enlargement", Quantity: 1, IsInstant: false, GroupID: 2},
		}, "", "Cash", 0, 0, "")
	require.NoError(t, err)

	h := newComposeHandler(factory, catalogRepo)
	ids, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Len(t, ids, 2)
	require.True(t, ids[0].IsEqual(originalID), "main bucket keeps the original id")
	require.False(t, ids[1].IsEqual(originalID))

	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestComposeOrderCommandHandler_Handle_UnknownItem(t *testing.T) {
	ctx := t.Context()
	items, rules := catalogFixtures(t)

	catalogRepo := new(MockCatalogRepository)
	catalogRepo.On("GetItems", ctx).Return(items, nil).Once()
	catalogRepo.On("GetPricingRules", ctx).Return(rules, nil).Once()

	factory := new(MockOrderUoWFactory)

	cmd, err := commands.NewComposeOrderCommand(kernel.UUID{}, "", "Asha", "",
		[]commands.ComposeOrderItem{{ItemType: "5x7 Print", Quantity: 1, IsInstant: true}},
		"", "Cash", 0, 0, "")
	require.NoError(t, err)

	h := newComposeHandler(factory, catalogRepo)
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	factory.AssertNotCalled(t, "Create")
}

func TestComposeOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	h := newComposeHandler(new(MockOrderUoWFactory), new(MockCatalogRepository))

	_, err := h.Handle(ctx, commands.ComposeOrderCommand{})
	require.Error(t, err)
}

func TestComposeOrderCommandHandler_Handle_AddError(t *testing.T) {
	ctx := t.Context()
	items, rules := catalogFixtures(t)

	catalogRepo := new(MockCatalogRepository)
	catalogRepo.On("GetItems", ctx).Return(items, nil).Once()
	catalogRepo.On("GetPricingRules", ctx).Return(rules, nil).Once()

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(errors.New("add error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	cmd, err := commands.NewComposeOrderCommand(kernel.UUID{}, "", "Asha", "",
		[]commands.ComposeOrderItem{{ItemType: "Passport Photo", Quantity: 1, IsInstant: true}},
		"", "Cash", 0, 0, "")
	require.NoError(t, err)

	h := newComposeHandler(factory, catalogRepo)
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}
