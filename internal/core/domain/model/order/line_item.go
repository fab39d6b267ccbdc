package order

import (
	"errors"
	"fmt"

	"studiodesk/internal/pkg/errs"
)

var (
	// ErrLineItemIsNotConstructed is returned when a LineItem instance was not
	// created through the NewLineItem factory function.
	ErrLineItemIsNotConstructed = errors.New("LineItem must be created via NewLineItem constructor")
)

// DefaultGroupID is the manual-bucketing group assigned to line items that
// were not explicitly grouped. Items in the default group are auto-split by
// fulfillment class unless a second manual group exists on the order.
const DefaultGroupID = 1

// LineItem is one priced row of a photo order: an item type, the addons
// attached to it, a quantity, and the fulfillment class it was ordered under.
// The addon list preserves input order but is semantically a set; rule lookups
// normalize it.
type LineItem struct {
	itemType  string
	addons    []string
	quantity  int
	isInstant bool
	unitPrice float64
	groupID   int

	isConstructed bool
}

// NewLineItem creates a line item with validation.
//
// Parameters:
//   - itemType: catalog item name (required)
//   - addons: addon names attached to this row (may be empty)
//   - quantity: number of units (must be >= 1)
//   - isInstant: fulfillment class of this row
//   - unitPrice: resolved price per unit (must be >= 0)
//   - groupID: manual bucketing group; 0 means ungrouped and maps to DefaultGroupID
func NewLineItem(
	itemType string,
	addons []string,
	quantity int,
	isInstant bool,
	unitPrice float64,
	groupID int,
) (LineItem, error) {
	if itemType == "" {
		return LineItem{}, errs.NewValueIsRequiredError("itemType")
	}
	if quantity < 1 {
		return LineItem{}, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than or equal to 1", quantity))
	}
	if unitPrice < 0 {
		return LineItem{}, errs.NewValueIsInvalidErrorWithCause("unitPrice",
			fmt.Errorf("%v is not greater than or equal to 0", unitPrice))
	}
	if groupID < 0 {
		return LineItem{}, errs.NewValueIsInvalidErrorWithCause("groupID",
			fmt.Errorf("%d is not greater than or equal to 0", groupID))
	}
	if groupID == 0 {
		groupID = DefaultGroupID
	}

	copied := make([]string, len(addons))
	copy(copied, addons)

	return LineItem{
		itemType:      itemType,
		addons:        copied,
		quantity:      quantity,
		isInstant:     isInstant,
		unitPrice:     unitPrice,
		groupID:       groupID,
		isConstructed: true,
	}, nil
}

// Validate ensures the LineItem instance was properly constructed through NewLineItem.
func (li LineItem) Validate() error {
	if !li.isConstructed {
		return ErrLineItemIsNotConstructed
	}
	return nil
}

// ItemType returns the catalog item name of this row.
func (li LineItem) ItemType() string {
	return li.itemType
}

// Addons returns the addon names attached to this row, in input order.
func (li LineItem) Addons() []string {
	out := make([]string, len(li.addons))
	copy(out, li.addons)
	return out
}

// Quantity returns the number of units ordered.
func (li LineItem) Quantity() int {
	return li.quantity
}

// IsInstant reports the fulfillment class of this row.
func (li LineItem) IsInstant() bool {
	return li.isInstant
}

// UnitPrice returns the resolved price per unit.
func (li LineItem) UnitPrice() float64 {
	return li.unitPrice
}

// Price returns the row total: unit price times quantity.
func (li LineItem) Price() float64 {
	return li.unitPrice * float64(li.quantity)
}

// GroupID returns the manual bucketing group of this row.
func (li LineItem) GroupID() int {
	return li.groupID
}
