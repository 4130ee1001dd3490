package sequence

import (
	"sort"

	"routeboard/internal/core/domain/model/kernel"
)

// Assignments is the sparse map of ranks a user typed in numeric mode.
// Only positive, parsable ranks are kept; anything else means "no preference"
// and removes the entry.
type Assignments struct {
	ranks map[kernel.UUID]kernel.Rank
}

func NewAssignments() *Assignments {
	return &Assignments{ranks: make(map[kernel.UUID]kernel.Rank)}
}

// Assign records the rank typed for id, overwriting any previous one. It reports
// whether an entry is present afterwards.
func (a *Assignments) Assign(id kernel.UUID, rankText string) bool {
	rank, ok := kernel.ParseRank(rankText)
	if !ok {
		delete(a.ranks, id)
		return false
	}
	a.ranks[id] = rank
	return true
}

// Rank returns the rank stored for id.
func (a *Assignments) Rank(id kernel.UUID) (kernel.Rank, bool) {
	r, ok := a.ranks[id]
	return r, ok
}

func (a *Assignments) Len() int {
	return len(a.ranks)
}

func (a *Assignments) IsEmpty() bool {
	return len(a.ranks) == 0
}

// Clear drops every entry.
func (a *Assignments) Clear() {
	clear(a.ranks)
}

// Values returns the 1-based ranks keyed by order ID. The map is a copy.
func (a *Assignments) Values() map[kernel.UUID]int {
	out := make(map[kernel.UUID]int, len(a.ranks))
	for id, r := range a.ranks {
		out[id] = r.Value()
	}
	return out
}

// Entry is one (order, rank) pair.
type Entry struct {
	ID   kernel.UUID
	Rank kernel.Rank
}

// Entries returns the assignments sorted by rank, ties broken by position in board.
// Entries for orders not on board are left out.
func (a *Assignments) Entries(board Collection) []Entry {
	type indexed struct {
		Entry
		index int
	}

	pairs := make([]indexed, 0, len(a.ranks))
	for id, r := range a.ranks {
		idx := board.IndexOf(id)
		if idx < 0 {
			continue
		}
		pairs = append(pairs, indexed{Entry: Entry{ID: id, Rank: r}, index: idx})
	}

	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].Rank.Value() != pairs[j].Rank.Value() {
			return pairs[i].Rank.Value() < pairs[j].Rank.Value()
		}
		return pairs[i].index < pairs[j].index
	})

	out := make([]Entry, len(pairs))
	for i, p := range pairs {
		out[i] = p.Entry
	}
	return out
}
