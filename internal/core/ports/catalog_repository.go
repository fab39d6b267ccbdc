package ports

import (
	"context"

	"studiodesk/internal/core/domain/model/catalog"
)

// CatalogRepository defines the contract for the pricing reference data:
// items, addons and pricing rules. The engine reads the collections per
// request and builds an in-memory catalog.Catalog from them; saves come from
// the configuration screens and must invalidate any cache layered on top.
type CatalogRepository interface {
	// GetItems retrieves all catalog items.
	GetItems(ctx context.Context) ([]catalog.Item, error)

	// GetAddons retrieves all addons.
	GetAddons(ctx context.Context) ([]catalog.Addon, error)

	// GetPricingRules retrieves all pricing rules.
	GetPricingRules(ctx context.Context) ([]catalog.PricingRule, error)

	// SaveItem inserts or updates a catalog item, keyed by name.
	SaveItem(ctx context.Context, item catalog.Item) error

	// SaveAddon inserts or updates an addon, keyed by name.
	SaveAddon(ctx context.Context, addon catalog.Addon) error

	// SavePricingRule inserts or updates a pricing rule, keyed by its
	// normalized (item, addon set) combination.
	SavePricingRule(ctx context.Context, rule catalog.PricingRule) error
}
