package catalog

import (
	"errors"
	"fmt"

	"studiodesk/internal/pkg/errs"
)

var (
	// ErrItemIsNotConstructed is returned when an Item instance was not created
	// through the NewItem factory function.
	ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")
)

// Item is a catalog photo item. It carries four independent price points:
// {regular, instant} fulfillment class crossed with {base, customer} tier.
// The item name is the unique key within the catalog.
//
// Item is immutable after construction; the engine reads prices through
// Price and ReferencePrice.
type Item struct {
	name string

	regularBasePrice     float64
	regularCustomerPrice float64
	instantBasePrice     float64
	instantCustomerPrice float64

	isConstructed bool
}

// NewItem creates a catalog item with validation.
//
// Parameters:
//   - name: unique item name (required)
//   - regularBase, regularCustomer: regular-class prices at base and customer tier
//   - instantBase, instantCustomer: instant-class prices at base and customer tier
//
// All prices must be non-negative. Returns an error if any parameter is invalid.
func NewItem(name string, regularBase, regularCustomer, instantBase, instantCustomer float64) (Item, error) {
	if name == "" {
		return Item{}, errs.NewValueIsRequiredError("name")
	}

	if err := errors.Join(
		validatePrice("regularBasePrice", regularBase),
		validatePrice("regularCustomerPrice", regularCustomer),
		validatePrice("instantBasePrice", instantBase),
		validatePrice("instantCustomerPrice", instantCustomer),
	); err != nil {
		return Item{}, err
	}

	return Item{
		name:                 name,
		regularBasePrice:     regularBase,
		regularCustomerPrice: regularCustomer,
		instantBasePrice:     instantBase,
		instantCustomerPrice: instantCustomer,
		isConstructed:        true,
	}, nil
}

// Validate ensures the Item instance was properly constructed through NewItem.
func (i Item) Validate() error {
	if !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

// Name returns the unique item name.
func (i Item) Name() string {
	return i.name
}

// Price returns the item's own price for the given fulfillment class and tier.
func (i Item) Price(isInstant bool, tier Tier) float64 {
	if isInstant {
		if tier == TierBase {
			return i.instantBasePrice
		}
		return i.instantCustomerPrice
	}
	if tier == TierBase {
		return i.regularBasePrice
	}
	return i.regularCustomerPrice
}

// ReferencePrice returns the regular-class price at the given tier.
// Addon margins are always defined relative to this price, regardless of the
// fulfillment class of the order the addon appears on.
func (i Item) ReferencePrice(tier Tier) float64 {
	return i.Price(false, tier)
}

func validatePrice(paramName string, price float64) error {
	if price < 0 {
		return errs.NewValueIsInvalidErrorWithCause(paramName,
			fmt.Errorf("%v is not greater than or equal to 0", price))
	}
	return nil
}
