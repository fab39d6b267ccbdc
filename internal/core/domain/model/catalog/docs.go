// Package catalog contains the shared reference data of the studio counter:
// photo items with their four price points, addons, and pricing rules for
// item+addon combinations. The data is owned by configuration and is read-only
// to the settlement engine.
//
// Pricing rules are keyed by (item, normalized addon set). Normalization
// de-duplicates and sorts addon names, so rule lookup is insensitive to the
// order in which addons were attached to a line item.
package catalog
