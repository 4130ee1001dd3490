package sequence

import (
	"sort"

	"routeboard/internal/core/domain/model/kernel"
	"routeboard/internal/core/domain/model/order"
	"routeboard/internal/pkg/errs"
)

// Collection is an ordered board of orders. Positions are contiguous 0..n-1 and every
// order ID appears exactly once.
//
// Collection is an immutable value: every mutation returns a new Collection and leaves
// the receiver untouched, so a Collection can be kept as a baseline snapshot.
// The zero value is an empty board.
type Collection struct {
	items []*order.Order
}

// New builds a collection in the given order. Duplicate IDs are dropped, keeping the
// first occurrence.
func New(orders []*order.Order) Collection {
	seen := make(map[kernel.UUID]struct{}, len(orders))
	items := make([]*order.Order, 0, len(orders))
	for _, o := range orders {
		if o == nil {
			continue
		}
		if _, ok := seen[o.ID()]; ok {
			continue
		}
		seen[o.ID()] = struct{}{}
		items = append(items, o)
	}
	return Collection{items: items}
}

// FromOrders builds the initial board for a freshly loaded list: orders with a saved
// sequence come first in ascending sequence, orders without one follow. Ties keep the
// input order.
func FromOrders(orders []*order.Order) Collection {
	c := New(orders)
	sort.SliceStable(c.items, func(i, j int) bool {
		a, b := c.items[i].Sequence(), c.items[j].Sequence()
		switch {
		case a == nil:
			return false
		case b == nil:
			return true
		default:
			return *a < *b
		}
	})
	return c
}

// Len returns the number of orders on the board.
func (c Collection) Len() int {
	return len(c.items)
}

// Orders returns the orders in board order. The slice is a copy.
func (c Collection) Orders() []*order.Order {
	out := make([]*order.Order, len(c.items))
	copy(out, c.items)
	return out
}

// At returns the order at position i.
func (c Collection) At(i int) (*order.Order, error) {
	if i < 0 || i >= len(c.items) {
		return nil, errs.NewValueIsOutOfRangeError("index", i, 0, len(c.items)-1)
	}
	return c.items[i], nil
}

// IndexOf returns the position of id, or -1 when it is not on the board.
func (c Collection) IndexOf(id kernel.UUID) int {
	for i, o := range c.items {
		if o.ID().IsEqual(id) {
			return i
		}
	}
	return -1
}

// Contains reports whether id is on the board.
func (c Collection) Contains(id kernel.UUID) bool {
	return c.IndexOf(id) >= 0
}

// SnapshotIDs returns the IDs in board order. Each call returns a fresh slice.
func (c Collection) SnapshotIDs() []kernel.UUID {
	ids := make([]kernel.UUID, len(c.items))
	for i, o := range c.items {
		ids[i] = o.ID()
	}
	return ids
}

// MoveBefore relocates id to targetIndex by successive adjacent swaps, so the orders
// between the old and the new position shift by one slot toward the vacated one.
func (c Collection) MoveBefore(id kernel.UUID, targetIndex int) (Collection, error) {
	n := len(c.items)
	if targetIndex < 0 || targetIndex >= n {
		return c, errs.NewValueIsOutOfRangeError("targetIndex", targetIndex, 0, n-1)
	}

	from := c.IndexOf(id)
	if from < 0 {
		return c, errs.NewObjectNotFoundError("orderID", id)
	}

	items := c.Orders()
	for i := from; i < targetIndex; i++ {
		items[i], items[i+1] = items[i+1], items[i]
	}
	for i := from; i > targetIndex; i-- {
		items[i], items[i-1] = items[i-1], items[i]
	}

	return Collection{items: items}, nil
}

// Reorder returns a board holding the same orders arranged as ids. ids must be a
// permutation of the board's IDs.
func (c Collection) Reorder(ids []kernel.UUID) (Collection, error) {
	if len(ids) != len(c.items) {
		return c, errs.NewValueIsInvalidError("ids must list every order on the board exactly once")
	}

	byID := make(map[kernel.UUID]*order.Order, len(c.items))
	for _, o := range c.items {
		byID[o.ID()] = o
	}

	items := make([]*order.Order, 0, len(ids))
	for _, id := range ids {
		o, ok := byID[id]
		if !ok {
			return c, errs.NewObjectNotFoundError("orderID", id)
		}
		delete(byID, id)
		items = append(items, o)
	}

	return Collection{items: items}, nil
}

// IsPermutationOf reports whether both boards hold exactly the same set of IDs.
func (c Collection) IsPermutationOf(other Collection) bool {
	if len(c.items) != len(other.items) {
		return false
	}

	counts := make(map[kernel.UUID]int, len(c.items))
	for _, o := range c.items {
		counts[o.ID()]++
	}
	for _, o := range other.items {
		counts[o.ID()]--
		if counts[o.ID()] < 0 {
			return false
		}
	}
	return true
}

// SameOrder reports whether both boards list the same IDs in the same positions.
// Order payloads are not compared.
func (c Collection) SameOrder(other Collection) bool {
	if len(c.items) != len(other.items) {
		return false
	}
	for i := range c.items {
		if !c.items[i].ID().IsEqual(other.items[i].ID()) {
			return false
		}
	}
	return true
}
