package order

import (
	"errors"

	"studiodesk/internal/pkg/errs"
)

var (
	// ErrCustomerIsNotConstructed is returned when a Customer instance was not
	// created through the NewCustomer factory function.
	ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer constructor")
)

// Customer identifies who placed an order. Either a name or a mobile number is
// required; an order with neither cannot be attributed and is rejected before
// composition. The id is assigned by the customer directory and may be empty
// for walk-in customers not yet registered.
type Customer struct {
	id     string
	name   string
	mobile string

	isConstructed bool
}

// NewCustomer creates a customer reference.
// At least one of name or mobile must be present.
func NewCustomer(id, name, mobile string) (Customer, error) {
	if name == "" && mobile == "" {
		return Customer{}, errs.NewValueIsRequiredError("customer name or mobile")
	}

	return Customer{
		id:            id,
		name:          name,
		mobile:        mobile,
		isConstructed: true,
	}, nil
}

// Validate ensures the Customer instance was properly constructed through NewCustomer.
func (c Customer) Validate() error {
	if !c.isConstructed {
		return ErrCustomerIsNotConstructed
	}
	return nil
}

// ID returns the directory id of the customer, or "" if unregistered.
func (c Customer) ID() string {
	return c.id
}

// Name returns the customer's name.
func (c Customer) Name() string {
	return c.name
}

// Mobile returns the customer's mobile number.
func (c Customer) Mobile() string {
	return c.mobile
}
