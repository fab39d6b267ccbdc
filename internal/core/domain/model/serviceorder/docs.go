// Package serviceorder contains the ServiceOrder aggregate: ad-hoc services
// taken at the counter (scanning, lamination, design work) that do not go
// through the photo order composer or the transaction flows.
//
// The lifecycle is deliberately minimal: Pending until the work is handed
// over, then Done, which is terminal. A service order can only be edited
// while it is still Pending.
package serviceorder
