package services

import (
	"fmt"
	"sort"

	"studiodesk/internal/core/domain/model/order"
	"studiodesk/internal/pkg/errs"
)

// BucketKind tells how a bucket came to be: an explicit manual group on the
// draft, or one side of the automatic instant/regular split.
type BucketKind int

const (
	// BucketKindUnknown represents an invalid or undefined bucket kind.
	BucketKindUnknown BucketKind = iota

	// BucketKindManual is a bucket produced by an explicit group id on the items.
	BucketKindManual

	// BucketKindInstant is the instant side of the automatic class split.
	BucketKindInstant

	// BucketKindRegular is the regular side of the automatic class split.
	BucketKindRegular
)

// String returns the human-readable name of the bucket kind.
func (k BucketKind) String() string {
	switch k {
	case BucketKindManual:
		return "manual"
	case BucketKindInstant:
		return "instant"
	case BucketKindRegular:
		return "regular"
	}
	return "unknown"
}

// Bucket is a contiguous subset of an order's line items destined to become
// one persisted order record.
type Bucket struct {
	Label string
	Items []order.LineItem
	Kind  BucketKind
}

// Total returns the sum of line item prices in the bucket.
func (b Bucket) Total() float64 {
	var total float64
	for _, item := range b.Items {
		total += item.Price()
	}
	return total
}

// OrderBucketer is a domain service that groups an order's line items into
// fulfillment buckets.
//
// Policy, in strict precedence:
//  1. If the items span more than one manual group id, the manual grouping is
//     honored exactly: one bucket per group, in ascending group id order.
//     Group 1 (the default) is labeled "Main Order", others "Split Order #N".
//  2. Otherwise the items are auto-split by fulfillment class: an "Instant"
//     bucket before a "Regular" bucket, empty sides omitted. The order matters
//     because settlement allocation consumes the advance bucket by bucket.
type OrderBucketer struct{}

// NewOrderBucketer creates a new OrderBucketer instance.
func NewOrderBucketer() OrderBucketer {
	return OrderBucketer{}
}

// Bucketize groups the given line items into buckets.
// Returns an error for an empty item list; an order must have at least one item.
func (b OrderBucketer) Bucketize(items []order.LineItem) ([]Bucket, error) {
	if len(items) == 0 {
		return nil, errs.NewValueIsRequiredError("items")
	}

	groups := make(map[int][]order.LineItem)
	for _, item := range items {
		groups[item.GroupID()] = append(groups[item.GroupID()], item)
	}

	if len(groups) > 1 {
		return manualBuckets(groups), nil
	}

	return classBuckets(items), nil
}

func manualBuckets(groups map[int][]order.LineItem) []Bucket {
	ids := make([]int, 0, len(groups))
	for id := range groups {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	buckets := make([]Bucket, 0, len(ids))
	for _, id := range ids {
		label := fmt.Sprintf("Split Order #%d", id)
		if id == order.DefaultGroupID {
			label = "Main Order"
		}
		buckets = append(buckets, Bucket{
			Label: label,
			Items: groups[id],
			Kind:  BucketKindManual,
		})
	}

	return buckets
}

func classBuckets(items []order.LineItem) []Bucket {
	var instant, regular []order.LineItem
	for _, item := range items {
		if item.IsInstant() {
			instant = append(instant, item)
		} else {
			regular = append(regular, item)
		}
	}

	var buckets []Bucket
	if len(instant) > 0 {
		buckets = append(buckets, Bucket{Label: "Instant", Items: instant, Kind: BucketKindInstant})
	}
	if len(regular) > 0 {
		buckets = append(buckets, Bucket{Label: "Regular", Items: regular, Kind: BucketKindRegular})
	}

	return buckets
}
