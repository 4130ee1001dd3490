package services

import (
	"routeboard/internal/core/domain/model/kernel"
	"routeboard/internal/core/domain/model/order"
	"routeboard/internal/core/domain/model/sequence"
)

// RankResolver turns the sparse ranks typed in numeric mode into a full board order.
//
// Resolution rules:
//   - Assignments are processed by ascending rank, ties by ascending baseline position
//   - Each assigned order asks for slot rank-1, clamped to the board
//   - An occupied slot is probed forward to the end of the board without wrapping
//   - An order that finds no free slot is demoted to the unassigned orders
//   - Unassigned orders keep their baseline relative order and fill the remaining
//     slots in ascending slot order
//   - Assignments for orders missing from the baseline are ignored
//
// Example:
//
//	resolver := services.NewRankResolver()
//	// baseline [A, B, C, D], C typed as 1
//	board := resolver.Resolve(baseline, assignments) // [C, A, B, D]
type RankResolver struct{}

func NewRankResolver() RankResolver {
	return RankResolver{}
}

// Resolve returns the resolved board. The result is always a permutation of baseline.
func (RankResolver) Resolve(baseline sequence.Collection, assignments *sequence.Assignments) sequence.Collection {
	n := baseline.Len()
	if n == 0 || assignments == nil || assignments.IsEmpty() {
		return baseline
	}

	orders := baseline.Orders()
	byID := make(map[kernel.UUID]*order.Order, n)
	for _, o := range orders {
		byID[o.ID()] = o
	}

	slots := make([]*order.Order, n)
	placed := make(map[kernel.UUID]struct{}, assignments.Len())

	for _, entry := range assignments.Entries(baseline) {
		for slot := entry.Rank.Slot(n); slot < n; slot++ {
			if slots[slot] == nil {
				slots[slot] = byID[entry.ID]
				placed[entry.ID] = struct{}{}
				break
			}
		}
	}

	unplaced := make([]*order.Order, 0, n-len(placed))
	for _, o := range orders {
		if _, ok := placed[o.ID()]; !ok {
			unplaced = append(unplaced, o)
		}
	}

	next := 0
	for slot := range slots {
		if slots[slot] == nil {
			slots[slot] = unplaced[next]
			next++
		}
	}

	return sequence.New(slots)
}
