package commands

import (
	"errors"
	"fmt"

	"studiodesk/internal/core/domain/model/kernel"
	"studiodesk/internal/pkg/errs"
	"studiodesk/internal/pkg/guard"
)

var (
	ErrComposeOrderCommandIsNotConstructed = errors.New(
		"ComposeOrderCommand must be created via NewComposeOrderCommand constructor",
	)
)

// ComposeOrderItem is one line item row of a compose request, before prices
// are resolved against the catalog.
type ComposeOrderItem struct {
	ItemType  string
	Addons    []string
	Quantity  int
	IsInstant bool
	GroupID   int
}

// ComposeOrderCommand represents a request to create or re-save a photo
// order. The engine may split the draft into several persisted orders; the
// handler returns their ids in bucket order.
//
// Example:
//
//	cmd, err := NewComposeOrderCommand(kernel.UUID{}, "cust-1", "Asha", "9876543210",
//	    []ComposeOrderItem{{ItemType: "4x6 Print", Quantity: 4, IsInstant: true}},
//	    "glossy", "Cash", 0, 0, "")
//	if err != nil {
//	    return fmt.Errorf("invalid draft: %w", err)
//	}
//
//	ids, err := handler.Handle(ctx, cmd)
type ComposeOrderCommand struct { //nolint:recvcheck //using for validation
	originalOrderID kernel.UUID
	isEdit          bool
	customerID      string
	customerName    string
	customerMobile  string
	items           []ComposeOrderItem
	description     string
	paymentMode     string
	discountAmount  float64
	amountPaid      float64
	uploadID        string

	guard guard.ConstructorGuard
}

// NewComposeOrderCommand creates a command to compose a photo order.
//
// Pass the zero UUID as originalOrderID when composing a brand-new draft; a
// valid id marks the command as an edit of that order. At least one of
// customerName and customerMobile is required, items must be non-empty, and
// the payment figures must be non-negative.
func NewComposeOrderCommand(
	originalOrderID kernel.UUID,
	customerID string,
	customerName string,
	customerMobile string,
	items []ComposeOrderItem,
	description string,
	paymentMode string,
	discountAmount float64,
	amountPaid float64,
	uploadID string,
) (ComposeOrderCommand, error) {
	cmd := ComposeOrderCommand{
		customerID:  customerID,
		description: description,
		uploadID:    uploadID,
		guard:       guard.NewConstructorGuard(),
	}

	if originalOrderID.Validate() == nil {
		cmd.originalOrderID = originalOrderID
		cmd.isEdit = true
	}

	if err := errors.Join(
		cmd.setCustomerIdentity(customerName, customerMobile),
		cmd.setItems(items),
		cmd.setPaymentMode(paymentMode),
		cmd.setAmounts(discountAmount, amountPaid),
	); err != nil {
		return ComposeOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ComposeOrderCommand) Validate() error {
	return c.guard.Validate(ErrComposeOrderCommandIsNotConstructed)
}

// OriginalOrderID returns the id of the order being edited.
// Only meaningful when IsEdit reports true.
func (c ComposeOrderCommand) OriginalOrderID() kernel.UUID {
	return c.originalOrderID
}

// IsEdit reports whether the command edits an existing order.
func (c ComposeOrderCommand) IsEdit() bool {
	return c.isEdit
}

// CustomerID returns the directory id of the customer, or "".
func (c ComposeOrderCommand) CustomerID() string {
	return c.customerID
}

// CustomerName returns the customer's name.
func (c ComposeOrderCommand) CustomerName() string {
	return c.customerName
}

// CustomerMobile returns the customer's mobile number.
func (c ComposeOrderCommand) CustomerMobile() string {
	return c.customerMobile
}

// Items returns the draft line item rows.
func (c ComposeOrderCommand) Items() []ComposeOrderItem {
	out := make([]ComposeOrderItem, len(c.items))
	copy(out, c.items)
	return out
}

// Description returns the free-text instructions of the draft.
func (c ComposeOrderCommand) Description() string {
	return c.description
}

// PaymentMode returns the payment mode of the draft.
func (c ComposeOrderCommand) PaymentMode() string {
	return c.paymentMode
}

// DiscountAmount returns the order-level discount.
func (c ComposeOrderCommand) DiscountAmount() float64 {
	return c.discountAmount
}

// AmountPaid returns the order-level advance.
func (c ComposeOrderCommand) AmountPaid() float64 {
	return c.amountPaid
}

// UploadID returns the opaque file-store reference, or "".
func (c ComposeOrderCommand) UploadID() string {
	return c.uploadID
}

func (c *ComposeOrderCommand) setCustomerIdentity(name, mobile string) error {
	if name == "" && mobile == "" {
		return errs.NewValueIsRequiredError("customer name or mobile")
	}

	c.customerName = name
	c.customerMobile = mobile
	return nil
}

func (c *ComposeOrderCommand) setItems(items []ComposeOrderItem) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	for i, item := range items {
		if item.ItemType == "" {
			return errs.NewValueIsRequiredError(fmt.Sprintf("items[%d].itemType", i))
		}
		if item.Quantity < 1 {
			return errs.NewValueIsInvalidErrorWithCause(fmt.Sprintf("items[%d].quantity", i),
				fmt.Errorf("%d is not greater than or equal to 1", item.Quantity))
		}
	}

	c.items = append([]ComposeOrderItem(nil), items...)
	return nil
}

func (c *ComposeOrderCommand) setPaymentMode(mode string) error {
	if mode == "" {
		return errs.NewValueIsRequiredError("paymentMode")
	}

	c.paymentMode = mode
	return nil
}

func (c *ComposeOrderCommand) setAmounts(discountAmount, amountPaid float64) error {
	if discountAmount < 0 {
		return errs.NewValueIsInvalidErrorWithCause("discountAmount",
			fmt.Errorf("%v is not greater than or equal to 0", discountAmount))
	}
	if amountPaid < 0 {
		return errs.NewValueIsInvalidErrorWithCause("amountPaid",
			fmt.Errorf("%v is not greater than or equal to 0", amountPaid))
	}

	c.discountAmount = discountAmount
	c.amountPaid = amountPaid
	return nil
}
