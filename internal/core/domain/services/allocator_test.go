package services_test

import (
	"math/rand"
	"testing"

	"studiodesk/internal/core/domain/model/order"
	"studiodesk/internal/core/domain/services"
	"studiodesk/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bucketWithTotal(t *testing.T, kind services.BucketKind, total float64) services.Bucket {
	t.Helper()
	item, err := order.NewLineItem("row", nil, 1, kind == services.BucketKindInstant, total, 0)
	require.NoError(t, err)
	return services.Bucket{Label: kind.String(), Items: []order.LineItem{item}, Kind: kind}
}

func TestSettlementAllocator_Allocate(t *testing.T) {
	allocator := services.NewSettlementAllocator()

	t.Run("empty bucket list is rejected", func(t *testing.T) {
		_, err := allocator.Allocate(nil, 100, 10, 0)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("discount splits proportionally with remainder on the last bucket", func(t *testing.T) {
		buckets := []services.Bucket{
			bucketWithTotal(t, services.BucketKindInstant, 50),
			bucketWithTotal(t, services.BucketKindRegular, 80),
		}

		settlements, err := allocator.Allocate(buckets, 130, 25, 0)
		require.NoError(t, err)

		// 25 * 50/130 = 9.6 -> 10; last bucket gets 25 - 10 = 15
		assert.InDelta(t, 10, settlements[0].Discount, 0.001)
		assert.InDelta(t, 15, settlements[1].Discount, 0.001)
	})

	t.Run("advance saturates in bucket order", func(t *testing.T) {
		buckets := []services.Bucket{
			bucketWithTotal(t, services.BucketKindInstant, 50),
			bucketWithTotal(t, services.BucketKindRegular, 80),
		}

		settlements, err := allocator.Allocate(buckets, 130, 0, 60)
		require.NoError(t, err)

		assert.InDelta(t, 50, settlements[0].Advance, 0.001)
		assert.InDelta(t, 10, settlements[1].Advance, 0.001)
	})

	t.Run("exhausted advance leaves later buckets at zero", func(t *testing.T) {
		buckets := []services.Bucket{
			bucketWithTotal(t, services.BucketKindInstant, 50),
			bucketWithTotal(t, services.BucketKindRegular, 80),
		}

		settlements, err := allocator.Allocate(buckets, 130, 0, 30)
		require.NoError(t, err)

		assert.InDelta(t, 30, settlements[0].Advance, 0.001)
		assert.InDelta(t, 0, settlements[1].Advance, 0.001)
	})

	t.Run("zero grand total with nothing to distribute is fine", func(t *testing.T) {
		buckets := []services.Bucket{bucketWithTotal(t, services.BucketKindInstant, 0)}

		settlements, err := allocator.Allocate(buckets, 0, 0, 0)
		require.NoError(t, err)
		assert.InDelta(t, 0, settlements[0].Discount, 0.001)
	})

	t.Run("zero grand total with a discount is degenerate", func(t *testing.T) {
		buckets := []services.Bucket{bucketWithTotal(t, services.BucketKindInstant, 0)}

		_, err := allocator.Allocate(buckets, 0, 10, 0)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)

		_, err = allocator.Allocate(buckets, 0, 0, 10)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("discount conservation holds over random bucket sets", func(t *testing.T) {
		rng := rand.New(rand.NewSource(42))

		for i := 0; i < 500; i++ {
			bucketCount := 1 + rng.Intn(5)
			buckets := make([]services.Bucket, 0, bucketCount)
			var grandTotal float64
			for j := 0; j < bucketCount; j++ {
				total := float64(1 + rng.Intn(5000))
				buckets = append(buckets, bucketWithTotal(t, services.BucketKindManual, total))
				grandTotal += total
			}
			totalDiscount := float64(rng.Intn(int(grandTotal) + 1))

			settlements, err := allocator.Allocate(buckets, grandTotal, totalDiscount, 0)
			require.NoError(t, err)

			var distributed float64
			for _, s := range settlements {
				distributed += s.Discount
			}
			assert.InDelta(t, totalDiscount, distributed, 1e-9,
				"discounts must sum to the total exactly")
		}
	})

	t.Run("advance never exceeds the pool or a bucket total", func(t *testing.T) {
		rng := rand.New(rand.NewSource(7))

		for i := 0; i < 500; i++ {
			bucketCount := 1 + rng.Intn(5)
			buckets := make([]services.Bucket, 0, bucketCount)
			var grandTotal float64
			for j := 0; j < bucketCount; j++ {
				total := float64(1 + rng.Intn(5000))
				buckets = append(buckets, bucketWithTotal(t, services.BucketKindManual, total))
				grandTotal += total
			}
			totalAdvance := float64(rng.Intn(int(grandTotal) + 1))

			settlements, err := allocator.Allocate(buckets, grandTotal, 0, totalAdvance)
			require.NoError(t, err)

			var distributed float64
			for _, s := range settlements {
				require.LessOrEqual(t, s.Advance, s.BucketTotal)
				distributed += s.Advance
			}
			assert.InDelta(t, totalAdvance, distributed, 1e-9,
				"advance within the grand total must be fully distributed")
		}
	})
}
