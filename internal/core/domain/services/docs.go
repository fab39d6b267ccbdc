// Package services provides domain services that orchestrate business operations
// across multiple domain entities in the studio counter system. It implements
// the order composition and settlement engine:
//
//   - PriceResolver: resolves an item+addon combination to a unit price, with
//     exact-rule precedence and an additive single-addon fallback
//   - OrderBucketer: groups line items into fulfillment buckets, honoring
//     manual groups over the automatic instant/regular split
//   - SettlementAllocator: distributes discount proportionally (loss-free) and
//     advance greedily across buckets
//   - OrderComposer: orchestrates the above to turn one edited order into the
//     set of orders to persist
//
// All services are stateless; reference data (catalog, rules) is passed in
// explicitly per call, never cached.
package services
