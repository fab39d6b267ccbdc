package catalog

// Catalog bundles the reference data needed to resolve prices: items by name
// and pricing rules by normalized combination key. It is built per request from
// repository data and passed to the engine explicitly, never cached globally.
type Catalog struct {
	items map[string]Item
	rules map[string]PricingRule
}

// NewCatalog indexes the given items and rules for lookup.
// Later duplicates win, mirroring how configuration saves overwrite entries.
func NewCatalog(items []Item, rules []PricingRule) Catalog {
	c := Catalog{
		items: make(map[string]Item, len(items)),
		rules: make(map[string]PricingRule, len(rules)),
	}

	for _, item := range items {
		c.items[item.Name()] = item
	}
	for _, rule := range rules {
		c.rules[rule.Key()] = rule
	}

	return c
}

// Item looks up a catalog item by name.
func (c Catalog) Item(name string) (Item, bool) {
	item, ok := c.items[name]
	return item, ok
}

// ExactRule looks up the pricing rule for the exact (item, addon set)
// combination, if one exists. The lookup is insensitive to addon order
// and duplicates.
func (c Catalog) ExactRule(item string, addons []string) (PricingRule, bool) {
	rule, ok := c.rules[RuleKey(item, addons)]
	return rule, ok
}

// SingleAddonRule looks up the rule for (item, {addon}), if one exists.
// Used by the additive fallback of price resolution.
func (c Catalog) SingleAddonRule(item, addon string) (PricingRule, bool) {
	return c.ExactRule(item, []string{addon})
}
