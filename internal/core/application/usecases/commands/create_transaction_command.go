package commands

import (
	"errors"
	"fmt"

	"studiodesk/internal/core/domain/model/transaction"
	"studiodesk/internal/pkg/errs"
	"studiodesk/internal/pkg/guard"
)

var (
	ErrCreateTransactionCommandIsNotConstructed = errors.New(
		"CreateTransactionCommand must be created via NewCreateTransactionCommand constructor",
	)
)

// TransactionBillInput carries the bill payment fields of a create request.
type TransactionBillInput struct {
	Operator         string
	BillID           string
	BillCustomerName string
}

// TransactionTransferInput carries the money transfer fields of a create request.
type TransactionTransferInput struct {
	TransferType  transaction.TransferType
	UPIID         string
	BankName      string
	AccountNumber string
	IFSCCode      string
	RecipientName string
}

// CreateTransactionCommand represents a request to record a bill payment or
// money transfer at the counter. The input matching the kind is used; the
// other is ignored.
type CreateTransactionCommand struct { //nolint:recvcheck //using for validation
	kind           transaction.Kind
	customerID     string
	customerName   string
	customerMobile string
	bill           TransactionBillInput
	transfer       TransactionTransferInput
	amount         float64
	amountPaid     float64
	commission     float64
	paymentMode    string
	description    string
	uploadID       string

	guard guard.ConstructorGuard
}

// NewCreateTransactionCommand creates a command to record a transaction.
// Kind must be defined, the customer must be identifiable by name or mobile,
// the payment mode is required, and all amounts must be non-negative.
func NewCreateTransactionCommand(
	kind transaction.Kind,
	customerID string,
	customerName string,
	customerMobile string,
	bill TransactionBillInput,
	transfer TransactionTransferInput,
	amount float64,
	amountPaid float64,
	commission float64,
	paymentMode string,
	description string,
	uploadID string,
) (CreateTransactionCommand, error) {
	cmd := CreateTransactionCommand{
		customerID:  customerID,
		bill:        bill,
		transfer:    transfer,
		description: description,
		uploadID:    uploadID,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setKind(kind),
		cmd.setCustomerIdentity(customerName, customerMobile),
		cmd.setAmounts(amount, amountPaid, commission),
		cmd.setPaymentMode(paymentMode),
	); err != nil {
		return CreateTransactionCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateTransactionCommand) Validate() error {
	return c.guard.Validate(ErrCreateTransactionCommandIsNotConstructed)
}

// Kind returns the transaction flavor to create.
func (c CreateTransactionCommand) Kind() transaction.Kind {
	return c.kind
}

// CustomerID returns the directory id of the customer, or "".
func (c CreateTransactionCommand) CustomerID() string {
	return c.customerID
}

// CustomerName returns the customer's name.
func (c CreateTransactionCommand) CustomerName() string {
	return c.customerName
}

// CustomerMobile returns the customer's mobile number.
func (c CreateTransactionCommand) CustomerMobile() string {
	return c.customerMobile
}

// Bill returns the bill payment fields; meaningful for KindBillPayment.
func (c CreateTransactionCommand) Bill() TransactionBillInput {
	return c.bill
}

// Transfer returns the money transfer fields; meaningful for KindMoneyTransfer.
func (c CreateTransactionCommand) Transfer() TransactionTransferInput {
	return c.transfer
}

// Amount returns the transaction amount (the bill or transfer value).
func (c CreateTransactionCommand) Amount() float64 {
	return c.amount
}

// AmountPaid returns what the customer handed over against the amount.
func (c CreateTransactionCommand) AmountPaid() float64 {
	return c.amountPaid
}

// Commission returns the counter commission charged on top.
func (c CreateTransactionCommand) Commission() float64 {
	return c.commission
}

// PaymentMode returns the payment mode.
func (c CreateTransactionCommand) PaymentMode() string {
	return c.paymentMode
}

// Description returns the free-text note, or "".
func (c CreateTransactionCommand) Description() string {
	return c.description
}

// UploadID returns the receipt file reference, or "".
func (c CreateTransactionCommand) UploadID() string {
	return c.uploadID
}

func (c *CreateTransactionCommand) setKind(kind transaction.Kind) error {
	if err := kind.Validate(); err != nil {
		return err
	}

	c.kind = kind
	return nil
}

func (c *CreateTransactionCommand) setCustomerIdentity(name, mobile string) error {
	if name == "" && mobile == "" {
		return errs.NewValueIsRequiredError("customer name or mobile")
	}

	c.customerName = name
	c.customerMobile = mobile
	return nil
}

func (c *CreateTransactionCommand) setAmounts(amount, amountPaid, commission float64) error {
	for _, v := range []struct {
		name  string
		value float64
	}{
		{"amount", amount},
		{"amountPaid", amountPaid},
		{"commission", commission},
	} {
		if v.value < 0 {
			return errs.NewValueIsInvalidErrorWithCause(v.name,
				fmt.Errorf("%v is not greater than or equal to 0", v.value))
		}
	}

	c.amount = amount
	c.amountPaid = amountPaid
	c.commission = commission
	return nil
}

func (c *CreateTransactionCommand) setPaymentMode(mode string) error {
	if mode == "" {
		return errs.NewValueIsRequiredError("paymentMode")
	}

	c.paymentMode = mode
	return nil
}
