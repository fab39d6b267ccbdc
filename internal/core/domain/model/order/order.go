package order

import (
	"errors"
	"time"

	"studiodesk/internal/core/domain/model/kernel"
	"studiodesk/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder or RestoreOrder factory functions. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")
)

// StatusChange is one entry of an order's status history: the status entered
// and when it was entered.
type StatusChange struct {
	Status Status
	At     time.Time
}

// Order represents a photo order at the studio counter. It is the aggregate
// root that owns its line items and payment record exclusively and manages the
// status lifecycle from Pending through delivery or discard.
//
// Order follows these invariants:
//   - Must have a valid unique identifier
//   - Must have an identifiable customer and at least one line item
//   - Status transitions follow the class-specific state machine
//   - Every transition appends to the status history
//   - Can only be created through NewOrder or RestoreOrder
type Order struct {
	id            kernel.UUID
	customer      Customer
	items         []LineItem
	description   string
	payment       Payment
	uploadID      string
	status        Status
	createdAt     time.Time
	statusHistory []StatusChange

	isConstructed bool
}

// NewOrder creates a new Order in Pending status with validation. This is the
// primary way to create an order from a composed bucket or a fresh draft.
//
// Parameters:
//   - id: unique identifier (must be valid)
//   - customer: identifiable customer reference
//   - items: line items (at least one, each constructed via NewLineItem)
//   - description: free-text instructions (may be empty)
//   - payment: settlement record for this order
//   - uploadID: opaque file-store reference, "" when no file is attached
//   - now: creation timestamp; also seeds the status history
//
// Returns the created order, or a validation error if any parameter is invalid.
func NewOrder(
	id kernel.UUID,
	customer Customer,
	items []LineItem,
	description string,
	payment Payment,
	uploadID string,
	now time.Time,
) (*Order, error) {
	order := &Order{
		description:   description,
		uploadID:      uploadID,
		status:        StatusPending,
		createdAt:     now,
		statusHistory: []StatusChange{{Status: StatusPending, At: now}},
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setCustomer(customer),
		order.setItems(items),
		order.setPayment(payment),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder reconstructs an order from persistence, bypassing the Pending
// initialization but still validating every component. The status must be
// valid for the order's fulfillment class.
func RestoreOrder(
	id kernel.UUID,
	customer Customer,
	items []LineItem,
	description string,
	payment Payment,
	uploadID string,
	status Status,
	createdAt time.Time,
	statusHistory []StatusChange,
) (*Order, error) {
	order := &Order{
		description:   description,
		uploadID:      uploadID,
		status:        status,
		createdAt:     createdAt,
		statusHistory: append([]StatusChange(nil), statusHistory...),
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setCustomer(customer),
		order.setItems(items),
		order.setPayment(payment),
	); err != nil {
		return nil, err
	}

	if err := status.Validate(order.IsInstant()); err != nil {
		return nil, err
	}

	return order, nil
}

// Validate ensures the Order instance was properly constructed.
// This prevents bypassing validation by directly instantiating the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Customer returns the customer the order is attributed to.
func (o *Order) Customer() Customer {
	return o.customer
}

// Items returns the order's line items.
func (o *Order) Items() []LineItem {
	out := make([]LineItem, len(o.items))
	copy(out, o.items)
	return out
}

// Description returns the free-text instructions attached to the order.
func (o *Order) Description() string {
	return o.description
}

// Payment returns the order's settlement record.
func (o *Order) Payment() Payment {
	return o.payment
}

// UploadID returns the opaque file-store reference, or "" when no file is attached.
func (o *Order) UploadID() string {
	return o.uploadID
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// CreatedAt returns when the order was created.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// StatusHistory returns the ordered list of status changes, oldest first.
func (o *Order) StatusHistory() []StatusChange {
	out := make([]StatusChange, len(o.statusHistory))
	copy(out, o.statusHistory)
	return out
}

// IsInstant reports the order's fulfillment class: an order is instant when it
// contains at least one instant line item. Buckets produced by the composer
// are uniform, so in practice all items share the class.
func (o *Order) IsInstant() bool {
	for _, item := range o.items {
		if item.IsInstant() {
			return true
		}
	}
	return false
}

// GrandTotal returns the sum of all line item prices.
func (o *Order) GrandTotal() float64 {
	var total float64
	for _, item := range o.items {
		total += item.Price()
	}
	return total
}

// AvailableTransitions lists the valid target statuses from the order's
// current state, in menu order.
func (o *Order) AvailableTransitions() []Status {
	return o.status.AvailableTransitions(o.IsInstant())
}

// TransitionTo moves the order to the target status after validating the
// transition against the class-specific state machine, and appends the change
// to the status history. On error the order is left unchanged.
func (o *Order) TransitionTo(target Status, at time.Time) error {
	newStatus, err := o.status.Transition(target, o.IsInstant())
	if err != nil {
		return err
	}

	o.status = newStatus
	o.statusHistory = append(o.statusHistory, StatusChange{Status: newStatus, At: at})
	return nil
}

// AutoAdvance applies the unique forward transition for the current state, if
// one exists. Returns true when a transition was applied; terminal states are
// a no-op and return false without error.
func (o *Order) AutoAdvance(at time.Time) (bool, error) {
	next, ok := o.status.NextAuto(o.IsInstant())
	if !ok {
		return false, nil
	}

	if err := o.TransitionTo(next, at); err != nil {
		return false, err
	}
	return true, nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomer(customer Customer) error {
	if err := customer.Validate(); err != nil {
		return err
	}
	o.customer = customer
	return nil
}

func (o *Order) setItems(items []LineItem) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	o.items = append([]LineItem(nil), items...)
	return nil
}

func (o *Order) setPayment(payment Payment) error {
	if err := payment.Validate(); err != nil {
		return err
	}
	o.payment = payment
	return nil
}
