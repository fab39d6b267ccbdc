// Package catalogrepo persists the pricing reference data: catalog items,
// addons and pricing rules. Rows are keyed by natural keys (item name, addon
// name, normalized rule key) so the configuration screens can upsert freely.
package catalogrepo

import (
	"strings"

	"studiodesk/internal/core/domain/model/catalog"
)

// ItemDTO represents the database structure for persisting catalog items.
type ItemDTO struct {
	Name                 string `gorm:"primaryKey"`
	RegularBasePrice     float64
	RegularCustomerPrice float64
	InstantBasePrice     float64
	InstantCustomerPrice float64
}

// TableName overrides GORM's default naming to use "catalog_items".
func (ItemDTO) TableName() string {
	return "catalog_items"
}

// AddonDTO represents the database structure for persisting addons.
type AddonDTO struct {
	Name string `gorm:"primaryKey"`
}

// TableName overrides GORM's default naming to use "catalog_addons".
func (AddonDTO) TableName() string {
	return "catalog_addons"
}

// PricingRuleDTO represents the database structure for persisting pricing
// rules. Key is the normalized (item, addon set) combination; the addon list
// is denormalized alongside it for display.
type PricingRuleDTO struct {
	Key           string `gorm:"primaryKey"`
	Item          string `gorm:"index"`
	Addons        string
	BasePrice     float64
	CustomerPrice float64
}

// TableName overrides GORM's default naming to use "catalog_pricing_rules".
func (PricingRuleDTO) TableName() string {
	return "catalog_pricing_rules"
}

const addonListSeparator = "|"

func itemFromDomain(item catalog.Item) ItemDTO {
	return ItemDTO{
		Name:                 item.Name(),
		RegularBasePrice:     item.Price(false, catalog.TierBase),
		RegularCustomerPrice: item.Price(false, catalog.TierCustomer),
		InstantBasePrice:     item.Price(true, catalog.TierBase),
		InstantCustomerPrice: item.Price(true, catalog.TierCustomer),
	}
}

func itemToDomain(dto ItemDTO) (catalog.Item, error) {
	return catalog.NewItem(dto.Name, dto.RegularBasePrice, dto.RegularCustomerPrice,
		dto.InstantBasePrice, dto.InstantCustomerPrice)
}

func addonFromDomain(addon catalog.Addon) AddonDTO {
	return AddonDTO{Name: addon.Name()}
}

func addonToDomain(dto AddonDTO) (catalog.Addon, error) {
	return catalog.NewAddon(dto.Name)
}

func ruleFromDomain(rule catalog.PricingRule) PricingRuleDTO {
	return PricingRuleDTO{
		Key:           rule.Key(),
		Item:          rule.Item(),
		Addons:        strings.Join(rule.Addons(), addonListSeparator),
		BasePrice:     rule.Price(catalog.TierBase),
		CustomerPrice: rule.Price(catalog.TierCustomer),
	}
}

func ruleToDomain(dto PricingRuleDTO) (catalog.PricingRule, error) {
	var addons []string
	if dto.Addons != "" {
		addons = strings.Split(dto.Addons, addonListSeparator)
	}
	return catalog.NewPricingRule(dto.Item, addons, dto.BasePrice, dto.CustomerPrice)
}
