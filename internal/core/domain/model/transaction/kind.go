package transaction

import (
	"fmt"

	"studiodesk/internal/pkg/errs"
)

// Kind distinguishes the two transaction flavors handled at the counter.
type Kind int

const (
	// KindUnknown represents an invalid or undefined kind.
	KindUnknown Kind = iota

	// KindBillPayment is a utility or operator bill paid for a customer.
	KindBillPayment

	// KindMoneyTransfer is money sent to a UPI id or a bank account.
	KindMoneyTransfer
)

func getKindStrings() map[Kind]string {
	return map[Kind]string{
		KindUnknown:       "Unknown",
		KindBillPayment:   "Bill Payment",
		KindMoneyTransfer: "Money Transfer",
	}
}

// Validate checks if the Kind value is defined.
func (k Kind) Validate() error {
	if k != KindBillPayment && k != KindMoneyTransfer {
		return errs.NewValueIsInvalidErrorWithCause("kind",
			fmt.Errorf("%d is not a valid transaction kind", int(k)))
	}
	return nil
}

// String returns the human-readable name of the kind.
func (k Kind) String() string {
	if str, ok := getKindStrings()[k]; ok {
		return str
	}
	return "Unknown"
}

// KindFromString parses a kind from its display name.
func KindFromString(name string) (Kind, error) {
	for kind, str := range getKindStrings() {
		if kind != KindUnknown && str == name {
			return kind, nil
		}
	}
	return KindUnknown, errs.NewValueIsInvalidErrorWithCause("kind",
		fmt.Errorf("%q is not a recognized transaction kind", name))
}

// TransferType distinguishes how a money transfer reaches the recipient.
type TransferType int

const (
	// TransferTypeUnknown represents an invalid or undefined transfer type.
	TransferTypeUnknown TransferType = iota

	// TransferTypeUPI sends money to a UPI id.
	TransferTypeUPI

	// TransferTypeAccount sends money to a bank account.
	TransferTypeAccount
)

func getTransferTypeStrings() map[TransferType]string {
	return map[TransferType]string{
		TransferTypeUnknown: "Unknown",
		TransferTypeUPI:     "UPI",
		TransferTypeAccount: "Account",
	}
}

// Validate checks if the TransferType value is defined.
func (t TransferType) Validate() error {
	if t != TransferTypeUPI && t != TransferTypeAccount {
		return errs.NewValueIsInvalidErrorWithCause("transferType",
			fmt.Errorf("%d is not a valid transfer type", int(t)))
	}
	return nil
}

// String returns the human-readable name of the transfer type.
func (t TransferType) String() string {
	if str, ok := getTransferTypeStrings()[t]; ok {
		return str
	}
	return "Unknown"
}

// TransferTypeFromString parses a transfer type from its display name.
func TransferTypeFromString(name string) (TransferType, error) {
	for transferType, str := range getTransferTypeStrings() {
		if transferType != TransferTypeUnknown && str == name {
			return transferType, nil
		}
	}
	return TransferTypeUnknown, errs.NewValueIsInvalidErrorWithCause("transferType",
		fmt.Errorf("%q is not a recognized transfer type", name))
}
