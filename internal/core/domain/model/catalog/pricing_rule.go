package catalog

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"studiodesk/internal/pkg/errs"
)

var (
	// ErrPricingRuleIsNotConstructed is returned when a PricingRule instance was
	// not created through the NewPricingRule factory function.
	ErrPricingRuleIsNotConstructed = errors.New("PricingRule must be created via NewPricingRule constructor")
)

// addonSetDelimiter joins sorted addon names into the normalized combination key.
const addonSetDelimiter = "|"

// PricingRule prices one specific combination of an item and a set of addons.
// The combination price overrides any additive computation, so
// "Item+Frame+Lamination" can cost less (or more) than the sum of its parts.
//
// The rule is keyed by (item, normalized addon set); at most one rule may exist
// per combination.
type PricingRule struct {
	item          string
	addons        []string // normalized: de-duplicated and sorted
	basePrice     float64
	customerPrice float64

	isConstructed bool
}

// NewPricingRule creates a pricing rule for the given item+addon combination.
// The addon set must not be empty; duplicates are removed and order is ignored.
// Both prices must be non-negative.
func NewPricingRule(item string, addons []string, basePrice, customerPrice float64) (PricingRule, error) {
	if item == "" {
		return PricingRule{}, errs.NewValueIsRequiredError("item")
	}

	normalized := normalizeAddons(addons)
	if len(normalized) == 0 {
		return PricingRule{}, errs.NewValueIsRequiredError("addons")
	}

	if err := errors.Join(
		validatePrice("basePrice", basePrice),
		validatePrice("customerPrice", customerPrice),
	); err != nil {
		return PricingRule{}, err
	}

	return PricingRule{
		item:          item,
		addons:        normalized,
		basePrice:     basePrice,
		customerPrice: customerPrice,
		isConstructed: true,
	}, nil
}

// Validate ensures the PricingRule instance was properly constructed through NewPricingRule.
func (r PricingRule) Validate() error {
	if !r.isConstructed {
		return ErrPricingRuleIsNotConstructed
	}
	return nil
}

// Item returns the name of the catalog item this rule applies to.
func (r PricingRule) Item() string {
	return r.item
}

// Addons returns the normalized addon names of the combination.
func (r PricingRule) Addons() []string {
	out := make([]string, len(r.addons))
	copy(out, r.addons)
	return out
}

// Key returns the unique lookup key of the rule: the item name joined with the
// normalized addon set.
func (r PricingRule) Key() string {
	return RuleKey(r.item, r.addons)
}

// Price returns the rule's price at the given tier.
func (r PricingRule) Price(tier Tier) float64 {
	if tier == TierBase {
		return r.basePrice
	}
	return r.customerPrice
}

// IsSingleAddon reports whether the rule covers exactly one addon.
// Single-addon rules feed the additive fallback of price resolution.
func (r PricingRule) IsSingleAddon() bool {
	return len(r.addons) == 1
}

// RuleKey builds the normalized combination key for an item and addon set.
// The key is insensitive to addon order and duplicates.
func RuleKey(item string, addons []string) string {
	normalized := normalizeAddons(addons)
	return fmt.Sprintf("%s%s%s", item, addonSetDelimiter, strings.Join(normalized, addonSetDelimiter))
}

// normalizeAddons de-duplicates and sorts addon names, dropping empty entries.
// The addon list on a line item is semantically a set.
func normalizeAddons(addons []string) []string {
	seen := make(map[string]struct{}, len(addons))
	normalized := make([]string, 0, len(addons))
	for _, addon := range addons {
		if addon == "" {
			continue
		}
		if _, ok := seen[addon]; ok {
			continue
		}
		seen[addon] = struct{}{}
		normalized = append(normalized, addon)
	}

	sort.Strings(normalized)
	return normalized
}
