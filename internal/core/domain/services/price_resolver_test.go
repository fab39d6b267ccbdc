package services_test

import (
	"testing"

	"studiodesk/internal/core/domain/model/catalog"
	"studiodesk/internal/core/domain/services"
	"studiodesk/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustItem(t *testing.T, name string, regularBase, regularCustomer, instantBase, instantCustomer float64) catalog.Item {
	t.Helper()
	item, err := catalog.NewItem(name, regularBase, regularCustomer, instantBase, instantCustomer)
	require.NoError(t, err)
	return item
}

func mustRule(t *testing.T, item string, addons []string, base, customer float64) catalog.PricingRule {
	t.Helper()
	rule, err := catalog.NewPricingRule(item, addons, base, customer)
	require.NoError(t, err)
	return rule
}

func TestPriceResolver_Resolve(t *testing.T) {
	resolver := services.NewPriceResolver()

	print4x6 := mustItem(t, "4x6 Print", 80, 100, 100, 120)
	cat := catalog.NewCatalog(
		[]catalog.Item{print4x6},
		[]catalog.PricingRule{
			// single-addon rule: customer margin = 130 - 100 = 30
			mustRule(t, "4x6 Print", []string{"Frame"}, 100, 130),
			// exact combination override, cheaper than the sum of parts
			mustRule(t, "4x6 Print", []string{"Frame", "Lamination"}, 120, 150),
		},
	)

	t.Run("unknown item is an explicit error", func(t *testing.T) {
		_, err := resolver.Resolve(cat, "5x7 Print", nil, false, catalog.TierCustomer)
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("no addons yields the item's own price", func(t *testing.T) {
		price, err := resolver.Resolve(cat, "4x6 Print", nil, false, catalog.TierCustomer)
		require.NoError(t, err)
		assert.InDelta(t, 100, price, 0.001)

		price, err = resolver.Resolve(cat, "4x6 Print", nil, true, catalog.TierCustomer)
		require.NoError(t, err)
		assert.InDelta(t, 120, price, 0.001)

		price, err = resolver.Resolve(cat, "4x6 Print", nil, false, catalog.TierBase)
		require.NoError(t, err)
		assert.InDelta(t, 80, price, 0.001)
	})

	t.Run("exact combination rule wins over the additive sum", func(t *testing.T) {
		price, err := resolver.Resolve(cat, "4x6 Print",
			[]string{"Frame", "Lamination"}, false, catalog.TierCustomer)
		require.NoError(t, err)
		assert.InDelta(t, 150, price, 0.001)
	})

	t.Run("additive fallback sums margins, unruled addons contribute zero", func(t *testing.T) {
		// 100 (item) + 30 (Frame margin) + 0 (Gift Wrap has no rule) = 130
		price, err := resolver.Resolve(cat, "4x6 Print",
			[]string{"Frame", "Gift Wrap"}, false, catalog.TierCustomer)
		require.NoError(t, err)
		assert.InDelta(t, 130, price, 0.001)
	})

	t.Run("margins use the regular reference even on instant orders", func(t *testing.T) {
		// 120 (instant item price) + (130 - 100 regular reference) = 150
		price, err := resolver.Resolve(cat, "4x6 Print",
			[]string{"Frame"}, true, catalog.TierCustomer)
		require.NoError(t, err)
		assert.InDelta(t, 150, price, 0.001)
	})

	t.Run("resolution is insensitive to addon order", func(t *testing.T) {
		forward, err := resolver.Resolve(cat, "4x6 Print",
			[]string{"Frame", "Lamination"}, false, catalog.TierCustomer)
		require.NoError(t, err)
		backward, err := resolver.Resolve(cat, "4x6 Print",
			[]string{"Lamination", "Frame"}, false, catalog.TierCustomer)
		require.NoError(t, err)

		assert.Equal(t, forward, backward)
	})

	t.Run("duplicate addon entries count once", func(t *testing.T) {
		price, err := resolver.Resolve(cat, "4x6 Print",
			[]string{"Frame", "Frame"}, false, catalog.TierCustomer)
		require.NoError(t, err)
		// the duplicated set normalizes to {Frame}, matching the exact single-addon rule
		assert.InDelta(t, 130, price, 0.001)
	})

	t.Run("base tier margins use base prices", func(t *testing.T) {
		// 80 (regular base) + (100 rule base - 80 regular base reference) = 100
		price, err := resolver.Resolve(cat, "4x6 Print",
			[]string{"Frame", "Gift Wrap"}, false, catalog.TierBase)
		require.NoError(t, err)
		assert.InDelta(t, 100, price, 0.001)
	})

	t.Run("invalid tier is rejected", func(t *testing.T) {
		_, err := resolver.Resolve(cat, "4x6 Print", nil, false, catalog.TierUnknown)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
