package commands

import (
	"errors"
	"fmt"

	"studiodesk/internal/pkg/errs"
	"studiodesk/internal/pkg/guard"
)

var (
	ErrSavePricingRuleCommandIsNotConstructed = errors.New(
		"SavePricingRuleCommand must be created via NewSavePricingRuleCommand constructor",
	)
)

// SavePricingRuleCommand represents a request to upsert a pricing rule for
// one item+addon combination. The rule is keyed by the normalized combination,
// so saving the same combination twice overwrites the earlier prices.
type SavePricingRuleCommand struct { //nolint:recvcheck //using for validation
	item          string
	addons        []string
	basePrice     float64
	customerPrice float64

	guard guard.ConstructorGuard
}

// NewSavePricingRuleCommand creates a command to save a pricing rule.
// The item and at least one addon are required; prices must be non-negative.
func NewSavePricingRuleCommand(item string, addons []string, basePrice, customerPrice float64) (SavePricingRuleCommand, error) {
	cmd := SavePricingRuleCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setItem(item),
		cmd.setAddons(addons),
		cmd.setPrices(basePrice, customerPrice),
	); err != nil {
		return SavePricingRuleCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SavePricingRuleCommand) Validate() error {
	return c.guard.Validate(ErrSavePricingRuleCommandIsNotConstructed)
}

// Item returns the catalog item name the rule applies to.
func (c SavePricingRuleCommand) Item() string {
	return c.item
}

// Addons returns the addon names of the combination.
func (c SavePricingRuleCommand) Addons() []string {
	out := make([]string, len(c.addons))
	copy(out, c.addons)
	return out
}

// BasePrice returns the base-tier price of the combination.
func (c SavePricingRuleCommand) BasePrice() float64 {
	return c.basePrice
}

// CustomerPrice returns the customer-tier price of the combination.
func (c SavePricingRuleCommand) CustomerPrice() float64 {
	return c.customerPrice
}

func (c *SavePricingRuleCommand) setItem(item string) error {
	if item == "" {
		return errs.NewValueIsRequiredError("item")
	}

	c.item = item
	return nil
}

func (c *SavePricingRuleCommand) setAddons(addons []string) error {
	if len(addons) == 0 {
		return errs.NewValueIsRequiredError("addons")
	}

	c.addons = append([]string(nil), addons...)
	return nil
}

func (c *SavePricingRuleCommand) setPrices(basePrice, customerPrice float64) error {
	if basePrice < 0 {
		return errs.NewValueIsInvalidErrorWithCause("basePrice",
			fmt.Errorf("%v is not greater than or equal to 0", basePrice))
	}
	if customerPrice < 0 {
		return errs.NewValueIsInvalidErrorWithCause("customerPrice",
			fmt.Errorf("%v is not greater than or equal to 0", customerPrice))
	}

	c.basePrice = basePrice
	c.customerPrice = customerPrice
	return nil
}
