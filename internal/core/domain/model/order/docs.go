// Package order provides the Order aggregate shown on a dispatcher's day board.
//
// The package includes:
//   - Order: identity, client payload, delivery day, lifecycle status and the
//     optional saved board position (sequence)
//   - Status: the Registered -> Delivered | Cancelled state machine
//
// Orders are identified by ID only. Two Order values with the same ID are the
// same order even if their payload differs, which happens when a board is
// refreshed after another dispatcher edited an order.
package order
