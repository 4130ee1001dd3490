package editor

import (
	"context"

	"routeboard/internal/core/domain/model/kernel"
	"routeboard/internal/core/domain/model/sequence"
)

// EnterNumericMode snapshots the board as the resolution baseline and starts an
// empty set of typed ranks. Entering again starts over. A drag in progress ends.
func (s *Session) EnterNumericMode(ctx context.Context) error {
	return s.exec(ctx, func() error {
		s.dragged = nil
		s.numeric = &numericState{
			cachedBaseline: s.board,
			assignments:    sequence.NewAssignments(),
		}
		s.tracker.Clear(SourceAssignment)
		s.settle()
		return nil
	})
}

// Assign records rankText as the requested 1-based rank of orderID. Text that is
// not a positive integer removes the order's rank. It reports whether a rank is
// stored for the order afterwards.
func (s *Session) Assign(ctx context.Context, orderID kernel.UUID, rankText string) (bool, error) {
	var present bool
	err := s.exec(ctx, func() error {
		if s.numeric == nil {
			return ErrNumericModeInactive
		}

		assignments := s.numeric.assignments
		present = assignments.Assign(orderID, rankText)
		s.revision++

		if assignments.IsEmpty() {
			s.tracker.Clear(SourceAssignment)
		} else {
			s.tracker.Mark(SourceAssignment)
		}

		rank := 0
		if r, ok := assignments.Rank(orderID); ok {
			rank = r.Value()
		}
		s.observer.AssignmentChanged(s.id, orderID, rank, present)

		s.settle()
		return nil
	})
	return present, err
}

// CancelNumericMode drops the typed ranks and leaves the board as it is. Changes
// made by drag or by an earlier resolve stay pending. Cancelling outside numeric
// mode does nothing.
func (s *Session) CancelNumericMode(ctx context.Context) error {
	return s.exec(ctx, func() error {
		if s.numeric == nil {
			return nil
		}
		s.numeric = nil
		s.tracker.Clear(SourceAssignment)
		s.settle()
		return nil
	})
}

// Resolve merges the typed ranks into a complete board order and ends numeric
// mode. It reports whether the board changed; only a change makes the session Dirty.
func (s *Session) Resolve(ctx context.Context) (bool, error) {
	var changed bool
	err := s.exec(ctx, func() error {
		if s.numeric == nil {
			return ErrNumericModeInactive
		}

		changed = s.resolveNumeric()
		s.logger.Debug("ranks resolved", "changed", changed)
		s.settle()
		return nil
	})
	return changed, err
}

// resolveNumeric installs the order resolved from the typed ranks and leaves
// numeric mode. It reports whether the board changed.
func (s *Session) resolveNumeric() bool {
	resolved := s.resolver.Resolve(s.numeric.cachedBaseline, s.numeric.assignments)
	s.numeric = nil
	s.tracker.Clear(SourceAssignment)

	if resolved.SameOrder(s.board) {
		return false
	}
	s.replaceBoard(resolved, SourceResolve)
	return true
}
