// Package order provides domain entities and business logic for photo order
// management at the studio counter. It implements the Order aggregate root with
// lifecycle management and state transitions.
//
// The package includes:
//   - Order: The aggregate root that owns line items, payment, and status history
//   - Status: A state machine per fulfillment class (instant vs regular)
//   - LineItem, Payment, Customer, StatusChange: supporting value objects
//
// Key business rules:
//   - Orders must have at least one line item and an identifiable customer
//   - Instant orders follow Pending -> Processing -> Delivered
//   - Regular orders follow Pending -> Lab Processing -> Lab Received -> Delivered
//   - Pending orders may be discarded; Delivered and Discarded orders may be
//     rolled back to Pending, which is a confirmation-gated operation
//   - Every transition appends to the status history; orders are never deleted
package order
