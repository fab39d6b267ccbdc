package order

import (
	"errors"
	"fmt"

	"studiodesk/internal/pkg/errs"
)

var (
	// ErrPaymentIsNotConstructed is returned when a Payment instance was not
	// created through the NewPayment factory function.
	ErrPaymentIsNotConstructed = errors.New("Payment must be created via NewPayment constructor")
)

// Payment records the settlement of one order: the payment mode, the order
// total, the discount granted, and the advance collected. The due amount is
// derived, never stored: total minus advance minus discount. The advance may
// equal the total (fully paid up front), so a zero due amount is valid.
type Payment struct {
	mode           string
	totalAmount    float64
	discountAmount float64
	amountPaid     float64

	isConstructed bool
}

// NewPayment creates a payment record with validation.
// Mode is required; total, discount, and advance must be non-negative.
func NewPayment(mode string, totalAmount, discountAmount, amountPaid float64) (Payment, error) {
	if mode == "" {
		return Payment{}, errs.NewValueIsRequiredError("mode")
	}

	if err := errors.Join(
		validateAmount("totalAmount", totalAmount),
		validateAmount("discountAmount", discountAmount),
		validateAmount("amountPaid", amountPaid),
	); err != nil {
		return Payment{}, err
	}

	return Payment{
		mode:           mode,
		totalAmount:    totalAmount,
		discountAmount: discountAmount,
		amountPaid:     amountPaid,
		isConstructed:  true,
	}, nil
}

// Validate ensures the Payment instance was properly constructed through NewPayment.
func (p Payment) Validate() error {
	if !p.isConstructed {
		return ErrPaymentIsNotConstructed
	}
	return nil
}

// Mode returns the payment mode (e.g. "Cash", "UPI").
func (p Payment) Mode() string {
	return p.mode
}

// TotalAmount returns the order total.
func (p Payment) TotalAmount() float64 {
	return p.totalAmount
}

// DiscountAmount returns the discount granted on the order.
func (p Payment) DiscountAmount() float64 {
	return p.discountAmount
}

// AmountPaid returns the advance collected when the order was taken.
func (p Payment) AmountPaid() float64 {
	return p.amountPaid
}

// DueAmount returns the outstanding balance: total - advance - discount.
func (p Payment) DueAmount() float64 {
	return p.totalAmount - p.amountPaid - p.discountAmount
}

func validateAmount(paramName string, amount float64) error {
	if amount < 0 {
		return errs.NewValueIsInvalidErrorWithCause(paramName,
			fmt.Errorf("%v is not greater than or equal to 0", amount))
	}
	return nil
}
