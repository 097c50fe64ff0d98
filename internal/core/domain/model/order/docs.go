// Package order provides the Order aggregate root of the sales system and the status
// workflow it follows.
//
// The package includes:
//   - Order: the aggregate root that owns its items, totals and lifecycle
//   - Item: an immutable order line priced from a catalog product
//   - Status: the state machine deciding every legal status change
//
// Key business rules:
//   - A new order is Created, priced in EUR, with no items and zero totals
//   - Items are appended while the order is built and never removed
//   - Total and Tax always equal the sums over the items
//   - Status follows Created -> Approved -> Shipped, or Created -> Rejected
//   - Shipped and Rejected orders cannot be changed
//
// A failed operation leaves the order exactly as it was.
package order
