// Package transaction contains the Transaction aggregate: counter-side bill
// payments and money transfers executed on behalf of a customer.
//
// A transaction is created Pending and normally completes in a single step
// (Pending -> Done). Unlike photo orders there is a failure branch: a transfer
// that bounces moves to Failed and from there to Refunded once the customer is
// paid back. Every settled state can be rolled back to Pending through the
// confirmation gate.
//
// The package follows the same conventions as the order package: value objects
// with factory constructors, an aggregate root with private setters, and
// transitions validated by the Status value object.
package transaction
