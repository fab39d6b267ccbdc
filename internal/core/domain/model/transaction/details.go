package transaction

import (
	"errors"

	"studiodesk/internal/pkg/errs"
)

var (
	// ErrBillDetailsAreNotConstructed is returned when a BillDetails instance
	// was not created through the NewBillDetails factory function.
	ErrBillDetailsAreNotConstructed = errors.New("BillDetails must be created via NewBillDetails constructor")

	// ErrTransferDetailsAreNotConstructed is returned when a TransferDetails
	// instance was not created through the NewTransferDetails factory function.
	ErrTransferDetailsAreNotConstructed = errors.New("TransferDetails must be created via NewTransferDetails constructor")
)

// BillDetails carries the operator-side identifiers of a bill payment: which
// operator the bill belongs to, the bill or consumer number, and the name the
// bill is registered under (which may differ from the paying customer).
type BillDetails struct {
	operator         string
	billID           string
	billCustomerName string

	isConstructed bool
}

// NewBillDetails creates bill details with validation.
// Operator and bill id are required; the registered name may be empty.
func NewBillDetails(operator, billID, billCustomerName string) (BillDetails, error) {
	if operator == "" {
		return BillDetails{}, errs.NewValueIsRequiredError("operator")
	}
	if billID == "" {
		return BillDetails{}, errs.NewValueIsRequiredError("billID")
	}

	return BillDetails{
		operator:         operator,
		billID:           billID,
		billCustomerName: billCustomerName,
		isConstructed:    true,
	}, nil
}

// Validate ensures the BillDetails instance was properly constructed.
func (b BillDetails) Validate() error {
	if !b.isConstructed {
		return ErrBillDetailsAreNotConstructed
	}
	return nil
}

// Operator returns the bill operator name.
func (b BillDetails) Operator() string {
	return b.operator
}

// BillID returns the bill or consumer number.
func (b BillDetails) BillID() string {
	return b.billID
}

// BillCustomerName returns the name the bill is registered under.
func (b BillDetails) BillCustomerName() string {
	return b.billCustomerName
}

// TransferDetails carries the destination of a money transfer. A UPI transfer
// needs only the UPI id; an account transfer needs the bank name, account
// number and recipient name.
type TransferDetails struct {
	transferType  TransferType
	upiID         string
	bankName      string
	accountNumber string
	ifscCode      string
	recipientName string

	isConstructed bool
}

// NewTransferDetails creates transfer details with validation.
//
// Parameters:
//   - transferType: TransferTypeUPI or TransferTypeAccount
//   - upiID: destination UPI id (required for UPI transfers)
//   - bankName, accountNumber, ifscCode, recipientName: destination account
//     (bank name, account number and recipient required for account transfers)
func NewTransferDetails(
	transferType TransferType,
	upiID string,
	bankName string,
	accountNumber string,
	ifscCode string,
	recipientName string,
) (TransferDetails, error) {
	if err := transferType.Validate(); err != nil {
		return TransferDetails{}, err
	}

	switch transferType {
	case TransferTypeUPI:
		if upiID == "" {
			return TransferDetails{}, errs.NewValueIsRequiredError("upiID")
		}
	case TransferTypeAccount:
		if err := errors.Join(
			requireField("bankName", bankName),
			requireField("accountNumber", accountNumber),
			requireField("recipientName", recipientName),
		); err != nil {
			return TransferDetails{}, err
		}
	}

	return TransferDetails{
		transferType:  transferType,
		upiID:         upiID,
		bankName:      bankName,
		accountNumber: accountNumber,
		ifscCode:      ifscCode,
		recipientName: recipientName,
		isConstructed: true,
	}, nil
}

// Validate ensures the TransferDetails instance was properly constructed.
func (t TransferDetails) Validate() error {
	if !t.isConstructed {
		return ErrTransferDetailsAreNotConstructed
	}
	return nil
}

// TransferType returns how the transfer reaches the recipient.
func (t TransferDetails) TransferType() TransferType {
	return t.transferType
}

// UPIID returns the destination UPI id, or "" for account transfers.
func (t TransferDetails) UPIID() string {
	return t.upiID
}

// BankName returns the destination bank name, or "" for UPI transfers.
func (t TransferDetails) BankName() string {
	return t.bankName
}

// AccountNumber returns the destination account number, or "" for UPI transfers.
func (t TransferDetails) AccountNumber() string {
	return t.accountNumber
}

// IFSCCode returns the destination branch code, or "" when not provided.
func (t TransferDetails) IFSCCode() string {
	return t.ifscCode
}

// RecipientName returns the recipient's name, or "" for UPI transfers.
func (t TransferDetails) RecipientName() string {
	return t.recipientName
}

func requireField(paramName, value string) error {
	if value == "" {
		return errs.NewValueIsRequiredError(paramName)
	}
	return nil
}
