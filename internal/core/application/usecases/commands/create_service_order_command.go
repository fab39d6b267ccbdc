package commands

import (
	"errors"
	"fmt"

	"studiodesk/internal/pkg/errs"
	"studiodesk/internal/pkg/guard"
)

var (
	ErrCreateServiceOrderCommandIsNotConstructed = errors.New(
		"CreateServiceOrderCommand must be created via NewCreateServiceOrderCommand constructor",
	)
)

// CreateServiceOrderCommand represents a request to record an ad-hoc counter
// service (scanning, lamination, design work).
type CreateServiceOrderCommand struct { //nolint:recvcheck //using for validation
	customerID     string
	customerName   string
	customerMobile string
	serviceName    string
	amount         float64
	amountPaid     float64
	paymentMode    string
	description    string
	uploadIDs      []string

	guard guard.ConstructorGuard
}

// NewCreateServiceOrderCommand creates a command to record a service order.
func NewCreateServiceOrderCommand(
	customerID string,
	customerName string,
	customerMobile string,
	serviceName string,
	amount float64,
	amountPaid float64,
	paymentMode string,
	description string,
	uploadIDs []string,
) (CreateServiceOrderCommand, error) {
	cmd := CreateServiceOrderCommand{
		customerID:  customerID,
		description: description,
		uploadIDs:   append([]string(nil), uploadIDs...),
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomerIdentity(customerName, customerMobile),
		cmd.setServiceName(serviceName),
		cmd.setAmounts(amount, amountPaid),
		cmd.setPaymentMode(paymentMode),
	); err != nil {
		return CreateServiceOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateServiceOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateServiceOrderCommandIsNotConstructed)
}

// CustomerID returns the directory id of the customer, or "".
func (c CreateServiceOrderCommand) CustomerID() string {
	return c.customerID
}

// CustomerName returns the customer's name.
func (c CreateServiceOrderCommand) CustomerName() string {
	return c.customerName
}

// CustomerMobile returns the customer's mobile number.
func (c CreateServiceOrderCommand) CustomerMobile() string {
	return c.customerMobile
}

// ServiceName returns the name of the service to perform.
func (c CreateServiceOrderCommand) ServiceName() string {
	return c.serviceName
}

// Amount returns the agreed price of the service.
func (c CreateServiceOrderCommand) Amount() float64 {
	return c.amount
}

// AmountPaid returns the advance collected, if any.
func (c CreateServiceOrderCommand) AmountPaid() float64 {
	return c.amountPaid
}

// PaymentMode returns the payment mode.
func (c CreateServiceOrderCommand) PaymentMode() string {
	return c.paymentMode
}

// Description returns the free-text note, or "".
func (c CreateServiceOrderCommand) Description() string {
	return c.description
}

// UploadIDs returns the attached file references.
func (c CreateServiceOrderCommand) UploadIDs() []string {
	out := make([]string, len(c.uploadIDs))
	copy(out, c.uploadIDs)
	return out
}

func (c *CreateServiceOrderCommand) setCustomerIdentity(name, mobile string) error {
	if name == "" && mobile == "" {
		return errs.NewValueIsRequiredError("customer name or mobile")
	}

	c.customerName = name
	c.customerMobile = mobile
	return nil
}

func (c *CreateServiceOrderCommand) setServiceName(serviceName string) error {
	if serviceName == "" {
		return errs.NewValueIsRequiredError("serviceName")
	}

	c.serviceName = serviceName
	return nil
}

func (c *CreateServiceOrderCommand) setAmounts(amount, amountPaid float64) error {
	if amount < 0 {
		return errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%v is not greater than or equal to 0", amount))
	}
	if amountPaid < 0 {
		return errs.NewValueIsInvalidErrorWithCause("amountPaid",
			fmt.Errorf("%v is not greater than or equal to 0", amountPaid))
	}

	c.amount = amount
	c.amountPaid = amountPaid
	return nil
}

func (c *CreateServiceOrderCommand) setPaymentMode(mode string) error {
	if mode == "" {
		return errs.NewValueIsRequiredError("paymentMode")
	}

	c.paymentMode = mode
	return nil
}
