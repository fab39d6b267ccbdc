package services_test

import (
	"testing"
	"time"

	"studiodesk/internal/core/domain/model/kernel"
	"studiodesk/internal/core/domain/model/order"
	"studiodesk/internal/core/domain/services"
	"studiodesk/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newComposer() services.OrderComposer {
	return services.NewOrderComposer(services.NewOrderBucketer(), services.NewSettlementAllocator())
}

func draftCustomer(t *testing.T) order.Customer {
	t.Helper()
	customer, err := order.NewCustomer("cust-1", "Asha", "9876543210")
	require.NoError(t, err)
	return customer
}

func regularOriginal(t *testing.T, status order.Status) *order.Order {
	t.Helper()
	item, err := order.NewLineItem("12x18 Enlargement", nil, 1, false, 150, 0)
	require.NoError(t, err)
	payment, err := order.NewPayment("Cash", 150, 0, 0)
	require.NoError(t, err)

	createdAt := time.Now().Add(-time.Hour)
	o, err := order.RestoreOrder(kernel.NewUUID(), draftCustomer(t),
		[]order.LineItem{item}, "matte finish", payment, "",
		status, createdAt, []order.StatusChange{{Status: order.StatusPending, At: createdAt}})
	require.NoError(t, err)
	return o
}

func TestOrderComposer_Compose(t *testing.T) {
	composer := newComposer()
	now := time.Now()

	t.Run("empty draft is rejected", func(t *testing.T) {
		_, err := composer.Compose(services.OrderDraft{
			Customer:    draftCustomer(t),
			PaymentMode: "Cash",
		}, nil, now)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("unidentifiable customer is rejected", func(t *testing.T) {
		_, err := composer.Compose(services.OrderDraft{
			Customer:    order.Customer{},
			Items:       []order.LineItem{mustItemRow(t, "4x6 Print", true, 12, 0)},
			PaymentMode: "Cash",
		}, nil, now)
		require.ErrorIs(t, err, order.ErrCustomerIsNotConstructed)
	})

	t.Run("advance beyond the grand total is rejected", func(t *testing.T) {
		_, err := composer.Compose(services.OrderDraft{
			Customer:    draftCustomer(t),
			Items:       []order.LineItem{mustItemRow(t, "4x6 Print", true, 12, 0)},
			PaymentMode: "Cash",
			AmountPaid:  50,
		}, nil, now)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("new single-class draft becomes one pending order", func(t *testing.T) {
		orders, err := composer.Compose(services.OrderDraft{
			Customer:       draftCustomer(t),
			Items:          []order.LineItem{mustItemRow(t, "Passport Photo", true, 60, 0)},
			Description:    "6 copies",
			PaymentMode:    "UPI",
			DiscountAmount: 10,
			AmountPaid:     50,
			UploadID:       "upload-1",
		}, nil, now)
		require.NoError(t, err)

		require.Len(t, orders, 1)
		o := orders[0]
		assert.Equal(t, order.StatusPending, o.Status())
		assert.Equal(t, "6 copies", o.Description())
		assert.InDelta(t, 60, o.Payment().TotalAmount(), 0.001)
		assert.InDelta(t, 10, o.Payment().DiscountAmount(), 0.001)
		assert.InDelta(t, 50, o.Payment().AmountPaid(), 0.001)
		assert.Equal(t, "upload-1", o.UploadID())
	})

	t.Run("single-bucket edit preserves id status and history", func(t *testing.T) {
		original := regularOriginal(t, order.StatusLabProcessing)
		require.NoError(t, original.TransitionTo(order.StatusLabReceived, now))

		orders, err := composer.Compose(services.OrderDraft{
			Customer:    draftCustomer(t),
			Items:       []order.LineItem{mustItemRow(t, "12x18 Enlargement", false, 180, 0)},
			Description: "matte finish, reprint",
			PaymentMode: "Cash",
		}, original, now)
		require.NoError(t, err)

		require.Len(t, orders, 1)
		o := orders[0]
		assert.True(t, o.ID().IsEqual(original.ID()))
		assert.Equal(t, order.StatusLabReceived, o.Status())
		assert.Equal(t, original.CreatedAt(), o.CreatedAt())
		assert.Equal(t, original.StatusHistory(), o.StatusHistory())
		assert.Equal(t, "matte finish, reprint", o.Description())
		assert.InDelta(t, 180, o.Payment().TotalAmount(), 0.001)
	})

	t.Run("split resets every bucket to pending and prefixes descriptions", func(t *testing.T) {
		original := regularOriginal(t, order.StatusDelivered)

		orders, err := composer.Compose(services.OrderDraft{
			Customer:       draftCustomer(t),
			Items:          []order.LineItem{mustItemRow(t, "Passport Photo", true, 50, 0), mustItemRow(t, "12x18 Enlargement", false, 80, 0)},
			Description:    "wedding set",
			PaymentMode:    "Cash",
			DiscountAmount: 25,
			AmountPaid:     60,
		}, original, now)
		require.NoError(t, err)

		require.Len(t, orders, 2)
		instant, regular := orders[0], orders[1]

		assert.Equal(t, order.StatusPending, instant.Status())
		assert.Equal(t, order.StatusPending, regular.Status())
		assert.Equal(t, "[Instant] wedding set", instant.Description())
		assert.Equal(t, "[Regular] wedding set", regular.Description())

		// settlement carried through to the per-bucket payments
		assert.InDelta(t, 50, instant.Payment().TotalAmount(), 0.001)
		assert.InDelta(t, 10, instant.Payment().DiscountAmount(), 0.001)
		assert.InDelta(t, 50, instant.Payment().AmountPaid(), 0.001)
		assert.InDelta(t, 80, regular.Payment().TotalAmount(), 0.001)
		assert.InDelta(t, 15, regular.Payment().DiscountAmount(), 0.001)
		assert.InDelta(t, 10, regular.Payment().AmountPaid(), 0.001)
	})

	t.Run("original id survives only on the matching-class bucket", func(t *testing.T) {
		original := regularOriginal(t, order.StatusPending)

		orders, err := composer.Compose(services.OrderDraft{
			Customer:    draftCustomer(t),
			Items:       []order.LineItem{mustItemRow(t, "Passport Photo", true, 50, 0), mustItemRow(t, "12x18 Enlargement", false, 80, 0)},
			PaymentMode: "Cash",
		}, original, now)
		require.NoError(t, err)

		require.Len(t, orders, 2)
		assert.False(t, orders[0].ID().IsEqual(original.ID()), "instant bucket must get a fresh id")
		assert.True(t, orders[1].ID().IsEqual(original.ID()), "regular bucket keeps the original id")
	})

	t.Run("manual split keeps the original id on the main bucket", func(t *testing.T) {
		original := regularOriginal(t, order.StatusPending)

		orders, err := composer.Compose(services.OrderDraft{
			Customer:    draftCustomer(t),
			Items:       []order.LineItem{mustItemRow(t, "Passport Photo", true, 50, 1), mustItemRow(t, "12x18 Enlargement", false, 80, 2)},
			PaymentMode: "Cash",
		}, original, now)
		require.NoError(t, err)

		require.Len(t, orders, 2)
		assert.True(t, orders[0].ID().IsEqual(original.ID()), "main bucket keeps the original id")
		assert.False(t, orders[1].ID().IsEqual(original.ID()), "split bucket must get a fresh id")
		assert.Equal(t, "[Main Order]", orders[0].Description())
		assert.Equal(t, "[Split Order #2]", orders[1].Description())
	})

	t.Run("new mixed draft splits without an original", func(t *testing.T) {
		orders, err := composer.Compose(services.OrderDraft{
			Customer:    draftCustomer(t),
			Items:       []order.LineItem{mustItemRow(t, "Passport Photo", true, 50, 0), mustItemRow(t, "12x18 Enlargement", false, 80, 0)},
			PaymentMode: "Cash",
		}, nil, now)
		require.NoError(t, err)

		require.Len(t, orders, 2)
		assert.False(t, orders[0].ID().IsEqual(orders[1].ID()))
	})
}
