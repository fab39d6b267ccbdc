package catalogrepo

import (
	"context"

	"studiodesk/internal/core/domain/model/catalog"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormCatalogRepository implements CatalogRepository using GORM.
// Saves are upserts on the natural key, so the configuration screens never
// need to distinguish insert from update.
type GormCatalogRepository struct {
	db *gorm.DB
}

// NewGormCatalogRepository creates a new GORM catalog repository.
func NewGormCatalogRepository(db *gorm.DB) *GormCatalogRepository {
	return &GormCatalogRepository{db: db}
}

// GetItems retrieves all catalog items, ordered by name.
func (r *GormCatalogRepository) GetItems(ctx context.Context) ([]catalog.Item, error) {
	var dtos []ItemDTO
	if err := r.db.WithContext(ctx).Order("name").Find(&dtos).Error; err != nil {
		return nil, err
	}

	items := make([]catalog.Item, 0, len(dtos))
	for _, dto := range dtos {
		item, err := itemToDomain(dto)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, nil
}

// GetAddons retrieves all addons, ordered by name.
func (r *GormCatalogRepository) GetAddons(ctx context.Context) ([]catalog.Addon, error) {
	var dtos []AddonDTO
	if err := r.db.WithContext(ctx).Order("name").Find(&dtos).Error; err != nil {
		return nil, err
	}

	addons := make([]catalog.Addon, 0, len(dtos))
	for _, dto := range dtos {
		addon, err := addonToDomain(dto)
		if err != nil {
			return nil, err
		}
		addons = append(addons, addon)
	}

	return addons, nil
}

// GetPricingRules retrieves all pricing rules, ordered by key.
func (r *GormCatalogRepository) GetPricingRules(ctx context.Context) ([]catalog.PricingRule, error) {
	var dtos []PricingRuleDTO
	if err := r.db.WithContext(ctx).Order("key").Find(&dtos).Error; err != nil {
		return nil, err
	}

	rules := make([]catalog.PricingRule, 0, len(dtos))
	for _, dto := range dtos {
		rule, err := ruleToDomain(dto)
		if err != nil {
			return nil, err
		}
		rules = append(rules, rule)
	}

	return rules, nil
}

// SaveItem inserts or updates a catalog item, keyed by name.
func (r *GormCatalogRepository) SaveItem(ctx context.Context, item catalog.Item) error {
	if err := item.Validate(); err != nil {
		return err
	}

	dto := itemFromDomain(item)
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(&dto).Error
}

// SaveAddon inserts or updates an addon, keyed by name.
func (r *GormCatalogRepository) SaveAddon(ctx context.Context, addon catalog.Addon) error {
	if err := addon.Validate(); err != nil {
		return err
	}

	dto := addonFromDomain(addon)
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&dto).Error
}

// SavePricingRule inserts or updates a pricing rule, keyed by its normalized
// (item, addon set) combination.
func (r *GormCatalogRepository) SavePricingRule(ctx context.Context, rule catalog.PricingRule) error {
	if err := rule.Validate(); err != nil {
		return err
	}

	dto := ruleFromDomain(rule)
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(&dto).Error
}
