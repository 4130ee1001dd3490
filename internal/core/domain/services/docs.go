// Package services provides domain services for arranging a day board that do not
// belong to a single aggregate.
//
// The package includes:
//   - RankResolver: merges sparse user-typed ranks into a complete board order
//   - DropTargetChooser: picks the order a dragged row should swap with
//
// Both services are pure and deterministic: the same inputs always produce the
// same board.
package services
