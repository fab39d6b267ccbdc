package serviceorder

import (
	"errors"
	"fmt"
	"time"

	"studiodesk/internal/core/domain/model/kernel"
	"studiodesk/internal/core/domain/model/order"
	"studiodesk/internal/pkg/errs"
)

var (
	// ErrServiceOrderIsNotConstructed is returned when a ServiceOrder instance
	// was not created through NewServiceOrder or RestoreServiceOrder.
	ErrServiceOrderIsNotConstructed = errors.New("ServiceOrder must be created via NewServiceOrder or RestoreServiceOrder constructor")

	// ErrServiceOrderIsNotEditable is returned when an edit or completion is
	// attempted on a service order that is no longer Pending.
	ErrServiceOrderIsNotEditable = errors.New("service order can only be changed while Pending")
)

// ServiceOrder is the aggregate root for ad-hoc counter services.
type ServiceOrder struct {
	id          kernel.UUID
	customer    order.Customer
	serviceName string
	amount      float64
	description string
	payment     order.Payment
	uploadIDs   []string
	status      Status
	createdAt   time.Time

	isConstructed bool
}

// NewServiceOrder creates a Pending service order with validation.
func NewServiceOrder(
	id kernel.UUID,
	customer order.Customer,
	serviceName string,
	amount float64,
	description string,
	payment order.Payment,
	uploadIDs []string,
	now time.Time,
) (*ServiceOrder, error) {
	so := &ServiceOrder{
		description:   description,
		uploadIDs:     append([]string(nil), uploadIDs...),
		status:        StatusPending,
		createdAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		so.setID(id),
		so.setCustomer(customer),
		so.setServiceName(serviceName),
		so.setAmount(amount),
		so.setPayment(payment),
	); err != nil {
		return nil, err
	}

	return so, nil
}

// RestoreServiceOrder reconstructs a service order from persistence.
func RestoreServiceOrder(
	id kernel.UUID,
	customer order.Customer,
	serviceName string,
	amount float64,
	description string,
	payment order.Payment,
	uploadIDs []string,
	status Status,
	createdAt time.Time,
) (*ServiceOrder, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	so := &ServiceOrder{
		description:   description,
		uploadIDs:     append([]string(nil), uploadIDs...),
		status:        status,
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		so.setID(id),
		so.setCustomer(customer),
		so.setServiceName(serviceName),
		so.setAmount(amount),
		so.setPayment(payment),
	); err != nil {
		return nil, err
	}

	return so, nil
}

// Validate ensures the ServiceOrder instance was properly constructed.
func (so *ServiceOrder) Validate() error {
	if so == nil || !so.isConstructed {
		return ErrServiceOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two service orders by their unique identifiers.
func (so *ServiceOrder) IsEqual(other *ServiceOrder) bool {
	return other != nil && so.id.IsEqual(other.id)
}

// ID returns the service order's unique identifier.
func (so *ServiceOrder) ID() kernel.UUID {
	return so.id
}

// Customer returns the customer the service order is attributed to.
func (so *ServiceOrder) Customer() order.Customer {
	return so.customer
}

// ServiceName returns the name of the service performed.
func (so *ServiceOrder) ServiceName() string {
	return so.serviceName
}

// Amount returns the agreed price of the service.
func (so *ServiceOrder) Amount() float64 {
	return so.amount
}

// Description returns the free-text note attached to the service order.
func (so *ServiceOrder) Description() string {
	return so.description
}

// Payment returns the service order's settlement record.
func (so *ServiceOrder) Payment() order.Payment {
	return so.payment
}

// UploadIDs returns the opaque file-store references attached to the order.
func (so *ServiceOrder) UploadIDs() []string {
	out := make([]string, len(so.uploadIDs))
	copy(out, so.uploadIDs)
	return out
}

// Status returns the current status of the service order.
func (so *ServiceOrder) Status() Status {
	return so.status
}

// CreatedAt returns when the service order was created.
func (so *ServiceOrder) CreatedAt() time.Time {
	return so.createdAt
}

// IsEditable reports whether the service order can still be changed.
func (so *ServiceOrder) IsEditable() bool {
	return so.status == StatusPending
}

// Amend replaces the editable fields of a Pending service order. Done orders
// reject any change. On error the order is left unchanged.
func (so *ServiceOrder) Amend(serviceName string, amount float64, description string, uploadIDs []string) error {
	if !so.IsEditable() {
		return ErrServiceOrderIsNotEditable
	}

	if serviceName == "" {
		return errs.NewValueIsRequiredError("serviceName")
	}
	if amount < 0 {
		return errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%v is not greater than or equal to 0", amount))
	}

	so.serviceName = serviceName
	so.amount = amount
	so.description = description
	so.uploadIDs = append([]string(nil), uploadIDs...)
	return nil
}

// Complete moves the service order from Pending to Done. Done is terminal, so
// completing twice is an error.
func (so *ServiceOrder) Complete() error {
	if so.status != StatusPending {
		return ErrServiceOrderIsNotEditable
	}
	so.status = StatusDone
	return nil
}

func (so *ServiceOrder) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	so.id = id
	return nil
}

func (so *ServiceOrder) setCustomer(customer order.Customer) error {
	if err := customer.Validate(); err != nil {
		return err
	}
	so.customer = customer
	return nil
}

func (so *ServiceOrder) setServiceName(serviceName string) error {
	if serviceName == "" {
		return errs.NewValueIsRequiredError("serviceName")
	}
	so.serviceName = serviceName
	return nil
}

func (so *ServiceOrder) setAmount(amount float64) error {
	if amount < 0 {
		return errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%v is not greater than or equal to 0", amount))
	}
	so.amount = amount
	return nil
}

func (so *ServiceOrder) setPayment(payment order.Payment) error {
	if err := payment.Validate(); err != nil {
		return err
	}
	so.payment = payment
	return nil
}
