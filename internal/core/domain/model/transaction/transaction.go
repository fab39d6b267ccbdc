package transaction

import (
	"errors"
	"fmt"
	"time"

	"studiodesk/internal/core/domain/model/kernel"
	"studiodesk/internal/core/domain/model/order"
	"studiodesk/internal/pkg/errs"
)

var (
	// ErrTransactionIsNotConstructed is returned when a Transaction instance was
	// not created through one of the factory functions.
	ErrTransactionIsNotConstructed = errors.New("Transaction must be created via NewBillPayment, NewMoneyTransfer or RestoreTransaction constructor")
)

// StatusChange is one entry of a transaction's status history.
type StatusChange struct {
	Status Status
	At     time.Time
}

// Transaction is the aggregate root for bill payments and money transfers.
// Exactly one of the detail value objects is populated, matching the kind.
// The payment record reuses the order package's Payment value object: the
// transaction amount is the payment total and the commission charged at the
// counter rides on top of it.
type Transaction struct {
	id            kernel.UUID
	kind          Kind
	customer      order.Customer
	billDetails   BillDetails
	transfer      TransferDetails
	payment       order.Payment
	commission    float64
	description   string
	uploadID      string
	status        Status
	createdAt     time.Time
	statusHistory []StatusChange

	isConstructed bool
}

// NewBillPayment creates a Pending bill payment transaction.
func NewBillPayment(
	id kernel.UUID,
	customer order.Customer,
	details BillDetails,
	payment order.Payment,
	commission float64,
	description string,
	uploadID string,
	now time.Time,
) (*Transaction, error) {
	t := newPending(KindBillPayment, commission, description, uploadID, now)

	if err := errors.Join(
		t.setID(id),
		t.setCustomer(customer),
		t.setPayment(payment),
		t.setBillDetails(details),
		validateCommission(commission),
	); err != nil {
		return nil, err
	}

	return t, nil
}

// NewMoneyTransfer creates a Pending money transfer transaction.
func NewMoneyTransfer(
	id kernel.UUID,
	customer order.Customer,
	details TransferDetails,
	payment order.Payment,
	commission float64,
	description string,
	uploadID string,
	now time.Time,
) (*Transaction, error) {
	t := newPending(KindMoneyTransfer, commission, description, uploadID, now)

	if err := errors.Join(
		t.setID(id),
		t.setCustomer(customer),
		t.setPayment(payment),
		t.setTransferDetails(details),
		validateCommission(commission),
	); err != nil {
		return nil, err
	}

	return t, nil
}

// RestoreTransaction reconstructs a transaction from persistence. The zero
// value is passed for the detail object that does not apply to the kind.
func RestoreTransaction(
	id kernel.UUID,
	kind Kind,
	customer order.Customer,
	billDetails BillDetails,
	transfer TransferDetails,
	payment order.Payment,
	commission float64,
	description string,
	uploadID string,
	status Status,
	createdAt time.Time,
	statusHistory []StatusChange,
) (*Transaction, error) {
	if err := kind.Validate(); err != nil {
		return nil, err
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}

	t := &Transaction{
		kind:          kind,
		commission:    commission,
		description:   description,
		uploadID:      uploadID,
		status:        status,
		createdAt:     createdAt,
		statusHistory: append([]StatusChange(nil), statusHistory...),
		isConstructed: true,
	}

	joined := []error{
		t.setID(id),
		t.setCustomer(customer),
		t.setPayment(payment),
		validateCommission(commission),
	}
	switch kind {
	case KindBillPayment:
		joined = append(joined, t.setBillDetails(billDetails))
	case KindMoneyTransfer:
		joined = append(joined, t.setTransferDetails(transfer))
	}

	if err := errors.Join(joined...); err != nil {
		return nil, err
	}

	return t, nil
}

func newPending(kind Kind, commission float64, description, uploadID string, now time.Time) *Transaction {
	return &Transaction{
		kind:          kind,
		commission:    commission,
		description:   description,
		uploadID:      uploadID,
		status:        StatusPending,
		createdAt:     now,
		statusHistory: []StatusChange{{Status: StatusPending, At: now}},
		isConstructed: true,
	}
}

// Validate ensures the Transaction instance was properly constructed.
func (t *Transaction) Validate() error {
	if t == nil || !t.isConstructed {
		return ErrTransactionIsNotConstructed
	}
	return nil
}

// IsEqual compares two transactions by their unique identifiers.
func (t *Transaction) IsEqual(other *Transaction) bool {
	return other != nil && t.id.IsEqual(other.id)
}

// ID returns the transaction's unique identifier.
func (t *Transaction) ID() kernel.UUID {
	return t.id
}

// Kind returns the transaction flavor.
func (t *Transaction) Kind() Kind {
	return t.kind
}

// Customer returns the customer the transaction is attributed to.
func (t *Transaction) Customer() order.Customer {
	return t.customer
}

// BillDetails returns the bill details; only valid for bill payments.
func (t *Transaction) BillDetails() BillDetails {
	return t.billDetails
}

// TransferDetails returns the transfer details; only valid for money transfers.
func (t *Transaction) TransferDetails() TransferDetails {
	return t.transfer
}

// Payment returns the transaction's settlement record.
func (t *Transaction) Payment() order.Payment {
	return t.payment
}

// Commission returns the counter commission charged on top of the amount.
func (t *Transaction) Commission() float64 {
	return t.commission
}

// Description returns the free-text note attached to the transaction.
func (t *Transaction) Description() string {
	return t.description
}

// UploadID returns the opaque file-store reference of the receipt, or "".
func (t *Transaction) UploadID() string {
	return t.uploadID
}

// Status returns the current status of the transaction.
func (t *Transaction) Status() Status {
	return t.status
}

// CreatedAt returns when the transaction was created.
func (t *Transaction) CreatedAt() time.Time {
	return t.createdAt
}

// StatusHistory returns the ordered list of status changes, oldest first.
func (t *Transaction) StatusHistory() []StatusChange {
	out := make([]StatusChange, len(t.statusHistory))
	copy(out, t.statusHistory)
	return out
}

// AvailableTransitions lists the valid target statuses from the current state.
func (t *Transaction) AvailableTransitions() []Status {
	return t.status.AvailableTransitions()
}

// TransitionTo moves the transaction to the target status after validation and
// appends the change to the status history. On error the transaction is left
// unchanged.
func (t *Transaction) TransitionTo(target Status, at time.Time) error {
	newStatus, err := t.status.Transition(target)
	if err != nil {
		return err
	}

	t.status = newStatus
	t.statusHistory = append(t.statusHistory, StatusChange{Status: newStatus, At: at})
	return nil
}

// AutoAdvance applies the unique forward transition for the current state, if
// one exists. Returns true when a transition was applied.
func (t *Transaction) AutoAdvance(at time.Time) (bool, error) {
	next, ok := t.status.NextAuto()
	if !ok {
		return false, nil
	}

	if err := t.TransitionTo(next, at); err != nil {
		return false, err
	}
	return true, nil
}

func (t *Transaction) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	t.id = id
	return nil
}

func (t *Transaction) setCustomer(customer order.Customer) error {
	if err := customer.Validate(); err != nil {
		return err
	}
	t.customer = customer
	return nil
}

func (t *Transaction) setPayment(payment order.Payment) error {
	if err := payment.Validate(); err != nil {
		return err
	}
	t.payment = payment
	return nil
}

func (t *Transaction) setBillDetails(details BillDetails) error {
	if err := details.Validate(); err != nil {
		return err
	}
	t.billDetails = details
	return nil
}

func (t *Transaction) setTransferDetails(details TransferDetails) error {
	if err := details.Validate(); err != nil {
		return err
	}
	t.transfer = details
	return nil
}

func validateCommission(commission float64) error {
	if commission < 0 {
		return errs.NewValueIsInvalidErrorWithCause("commission",
			fmt.Errorf("%v is not greater than or equal to 0", commission))
	}
	return nil
}
