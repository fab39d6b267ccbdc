package services

import (
	"studiodesk/internal/core/domain/model/catalog"
	"studiodesk/internal/pkg/errs"
)

// PriceResolver is a domain service that resolves the unit price of an
// item+addon combination from the catalog's sparse rule table.
//
// Resolution order:
//  1. Exact combination rule for (item, normalized addon set): an explicit
//     override, e.g. "Print+Frame+Lamination" priced below the sum of parts.
//  2. Additive fallback: the item's own price for the order's fulfillment
//     class and tier, plus the margin of every addon that has a single-addon
//     rule. Addon margins are defined against the item's regular-class price
//     at the same tier, regardless of the order's own class.
//
// Addons without any rule contribute zero margin; no addon existence check is
// performed. An unknown item is an explicit error, never a silent zero.
type PriceResolver struct{}

// NewPriceResolver creates a new PriceResolver instance.
func NewPriceResolver() PriceResolver {
	return PriceResolver{}
}

// Resolve computes the unit price for one line item combination.
//
// Parameters:
//   - cat: reference data (items and rules), built per request
//   - itemName: catalog item name (must exist in cat)
//   - addons: addon names on the line item; order and duplicates are ignored
//   - isInstant: fulfillment class of the line item
//   - tier: Base (internal cost) or Customer (billed) price dimension
//
// Returns the resolved unit price, or an ObjectNotFound error when the item
// is absent from the catalog.
func (r PriceResolver) Resolve(
	cat catalog.Catalog,
	itemName string,
	addons []string,
	isInstant bool,
	tier catalog.Tier,
) (float64, error) {
	item, ok := cat.Item(itemName)
	if !ok {
		return 0, errs.NewObjectNotFoundError("itemName", itemName)
	}
	if err := tier.Validate(); err != nil {
		return 0, err
	}

	itemOwnPrice := item.Price(isInstant, tier)

	if len(addons) == 0 {
		return itemOwnPrice, nil
	}

	if rule, found := cat.ExactRule(itemName, addons); found {
		return rule.Price(tier), nil
	}

	// Additive fallback: sum single-addon margins over the regular-class
	// reference price. The seen set mirrors the normalized-set semantics of
	// rule keys, so duplicate addon entries do not double a margin.
	referenceBase := item.ReferencePrice(tier)
	seen := make(map[string]struct{}, len(addons))
	price := itemOwnPrice
	for _, addon := range addons {
		if addon == "" {
			continue
		}
		if _, dup := seen[addon]; dup {
			continue
		}
		seen[addon] = struct{}{}

		if rule, found := cat.SingleAddonRule(itemName, addon); found {
			price += rule.Price(tier) - referenceBase
		}
	}

	return price, nil
}
