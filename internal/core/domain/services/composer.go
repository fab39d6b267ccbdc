package services

import (
	"fmt"
	"time"

	"studiodesk/internal/core/domain/model/kernel"
	"studiodesk/internal/core/domain/model/order"
	"studiodesk/internal/pkg/errs"
)

// OrderDraft is the composer's input: the edited state of an order before it
// is turned into one or more persistable records. The payment fields are the
// order-level figures entered at the counter; per-bucket payments are derived
// by the allocator.
type OrderDraft struct {
	Customer       order.Customer
	Items          []order.LineItem
	Description    string
	PaymentMode    string
	DiscountAmount float64
	AmountPaid     float64
	UploadID       string
}

// OrderComposer is a domain service that turns one edited order into the set
// of orders to persist. It orchestrates the bucketer and the allocator and
// applies the split policies:
//
//   - A single bucket passes through unchanged: on edit the original order's
//     status and history are preserved, on create the order starts Pending.
//   - A split resets every bucket to Pending, whatever the original status.
//     Partial completion cannot be expressed across new records.
//   - Each bucket's description is prefixed with its bracketed label.
//   - The original order's id survives on the bucket whose kind matches the
//     original's fulfillment class. A manual split has no class to match, so
//     the main group's bucket keeps the id; every other bucket gets a fresh
//     one. Exactly one bucket inherits the id on every edit, so the caller
//     always has a row to update in place of the original.
type OrderComposer struct {
	bucketer  OrderBucketer
	allocator SettlementAllocator
}

// NewOrderComposer creates a new OrderComposer instance.
func NewOrderComposer(bucketer OrderBucketer, allocator SettlementAllocator) OrderComposer {
	return OrderComposer{
		bucketer:  bucketer,
		allocator: allocator,
	}
}

// Compose validates the draft and produces the orders to persist, in bucket
// order. The original order is nil when composing a brand-new draft.
//
// Returns a validation error when the draft has no items, no identifiable
// customer, or an advance exceeding the grand total.
func (c OrderComposer) Compose(draft OrderDraft, original *order.Order, now time.Time) ([]*order.Order, error) {
	if err := draft.Customer.Validate(); err != nil {
		return nil, err
	}

	buckets, err := c.bucketer.Bucketize(draft.Items)
	if err != nil {
		return nil, err
	}

	var grandTotal float64
	for _, item := range draft.Items {
		grandTotal += item.Price()
	}

	if draft.AmountPaid > grandTotal {
		return nil, errs.NewValueIsInvalidErrorWithCause("amountPaid",
			fmt.Errorf("advance %v exceeds order total %v", draft.AmountPaid, grandTotal))
	}

	if len(buckets) == 1 {
		return c.composeSingle(draft, original, grandTotal, now)
	}

	return c.composeSplit(draft, original, buckets, grandTotal, now)
}

func (c OrderComposer) composeSingle(
	draft OrderDraft,
	original *order.Order,
	grandTotal float64,
	now time.Time,
) ([]*order.Order, error) {
	payment, err := order.NewPayment(draft.PaymentMode, grandTotal, draft.DiscountAmount, draft.AmountPaid)
	if err != nil {
		return nil, err
	}

	if original == nil {
		created, err := order.NewOrder(kernel.NewUUID(), draft.Customer, draft.Items,
			draft.Description, payment, draft.UploadID, now)
		if err != nil {
			return nil, err
		}
		return []*order.Order{created}, nil
	}

	restored, err := order.RestoreOrder(original.ID(), draft.Customer, draft.Items,
		draft.Description, payment, draft.UploadID,
		original.Status(), original.CreatedAt(), original.StatusHistory())
	if err != nil {
		return nil, err
	}
	return []*order.Order{restored}, nil
}

func (c OrderComposer) composeSplit(
	draft OrderDraft,
	original *order.Order,
	buckets []Bucket,
	grandTotal float64,
	now time.Time,
) ([]*order.Order, error) {
	settlements, err := c.allocator.Allocate(buckets, grandTotal, draft.DiscountAmount, draft.AmountPaid)
	if err != nil {
		return nil, err
	}

	inherit := inheritingBucket(buckets, original)

	orders := make([]*order.Order, 0, len(buckets))
	for i, bucket := range buckets {
		payment, err := order.NewPayment(draft.PaymentMode,
			settlements[i].BucketTotal, settlements[i].Discount, settlements[i].Advance)
		if err != nil {
			return nil, err
		}

		id := kernel.NewUUID()
		if i == inherit {
			id = original.ID()
		}

		composed, err := order.NewOrder(id, draft.Customer, bucket.Items,
			prefixDescription(bucket.Label, draft.Description), payment, draft.UploadID, now)
		if err != nil {
			return nil, err
		}
		orders = append(orders, composed)
	}

	return orders, nil
}

// inheritingBucket returns the index of the bucket that keeps the original
// order's id, or -1 when there is no original. An auto-split always contains
// the bucket matching the original's fulfillment class; a manual split keeps
// the id on its first bucket, the main group.
func inheritingBucket(buckets []Bucket, original *order.Order) int {
	if original == nil {
		return -1
	}
	for i, bucket := range buckets {
		if bucketMatchesClass(bucket, original.IsInstant()) {
			return i
		}
	}
	return 0
}

// bucketMatchesClass reports whether the bucket carries the same fulfillment
// class the original order had. Manual buckets carry no class and never
// match.
func bucketMatchesClass(bucket Bucket, originalIsInstant bool) bool {
	switch bucket.Kind {
	case BucketKindInstant:
		return originalIsInstant
	case BucketKindRegular:
		return !originalIsInstant
	}
	return false
}

func prefixDescription(label, description string) string {
	if description == "" {
		return fmt.Sprintf("[%s]", label)
	}
	return fmt.Sprintf("[%s] %s", label, description)
}
