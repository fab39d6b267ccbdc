package services

import (
	"fmt"
	"math"

	"studiodesk/internal/pkg/errs"
)

// Settlement is the slice of an order's payment assigned to one bucket.
type Settlement struct {
	BucketTotal float64
	Discount    float64
	Advance     float64
}

// SettlementAllocator is a domain service that distributes a single order's
// discount and advance across its buckets.
//
// Discount is split proportionally to each bucket's share of the grand total,
// rounded to the nearest integer unit for every bucket except the last; the
// last bucket takes the remainder, so the distributed discounts always sum to
// the original exactly.
//
// Advance is NOT proportional: it is consumed greedily in bucket order, each
// bucket taking min(bucketTotal, remaining advance). The bucketer emits the
// instant bucket first, so advance payments cover instant work before regular
// work.
type SettlementAllocator struct{}

// NewSettlementAllocator creates a new SettlementAllocator instance.
func NewSettlementAllocator() SettlementAllocator {
	return SettlementAllocator{}
}

// Allocate distributes totalDiscount and totalAdvance across the buckets,
// processed in the order given.
//
// Returns one Settlement per bucket, or an error when grandTotal is zero while
// there is a nonzero discount or advance to distribute (the degenerate case a
// proportional split cannot express).
func (a SettlementAllocator) Allocate(
	buckets []Bucket,
	grandTotal float64,
	totalDiscount float64,
	totalAdvance float64,
) ([]Settlement, error) {
	if len(buckets) == 0 {
		return nil, errs.NewValueIsRequiredError("buckets")
	}
	if grandTotal == 0 && (totalDiscount != 0 || totalAdvance != 0) {
		return nil, errs.NewValueIsInvalidErrorWithCause("grandTotal",
			fmt.Errorf("cannot distribute discount %v and advance %v over a zero total",
				totalDiscount, totalAdvance))
	}

	settlements := make([]Settlement, len(buckets))

	var distributedDiscount float64
	var distributedAdvance float64
	for i, bucket := range buckets {
		total := bucket.Total()

		var discount float64
		if i == len(buckets)-1 {
			discount = totalDiscount - distributedDiscount
		} else {
			discount = math.Round(totalDiscount * total / grandTotal)
		}
		distributedDiscount += discount

		advance := math.Min(total, totalAdvance-distributedAdvance)
		if advance < 0 {
			advance = 0
		}
		distributedAdvance += advance

		settlements[i] = Settlement{
			BucketTotal: total,
			Discount:    discount,
			Advance:     advance,
		}
	}

	return settlements, nil
}
