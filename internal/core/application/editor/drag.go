package editor

import (
	"context"

	"routeboard/internal/core/domain/model/kernel"
	"routeboard/internal/core/domain/services"
)

// BeginDrag starts dragging orderID. An order that is not on the board is ignored.
// Dragging is unavailable in numeric mode.
func (s *Session) BeginDrag(ctx context.Context, orderID kernel.UUID) error {
	return s.exec(ctx, func() error {
		if s.numeric != nil {
			return ErrNumericModeActive
		}
		if !s.board.Contains(orderID) {
			return nil
		}
		s.dragged = &orderID
		return nil
	})
}

// Overlap moves the dragged order to targetIndex when it is not already there.
// It reports whether the board changed.
func (s *Session) Overlap(ctx context.Context, targetIndex int) (bool, error) {
	var moved bool
	err := s.exec(ctx, func() error {
		var err error
		moved, err = s.overlap(targetIndex)
		return err
	})
	return moved, err
}

// DragPointer picks the drop target among candidates for the dragged row's
// projected span and pointer position, then behaves like Overlap on it. No move
// happens when no candidate qualifies.
func (s *Session) DragPointer(
	ctx context.Context,
	dragged services.Span,
	pointer float64,
	candidates []services.DropCandidate,
) (bool, error) {
	var moved bool
	err := s.exec(ctx, func() error {
		if s.dragged == nil {
			return ErrNoActiveDrag
		}

		target, ok := s.chooser.Choose(dragged, s.board.IndexOf(*s.dragged), pointer, candidates)
		if !ok {
			return nil
		}

		var err error
		moved, err = s.overlap(target)
		return err
	})
	return moved, err
}

func (s *Session) overlap(targetIndex int) (bool, error) {
	if s.dragged == nil {
		return false, ErrNoActiveDrag
	}

	id := *s.dragged
	from := s.board.IndexOf(id)
	if from == targetIndex {
		return false, nil
	}

	board, err := s.board.MoveBefore(id, targetIndex)
	if err != nil {
		s.logger.Error("drag move rejected",
			"order_id", id.String(),
			"from", from,
			"target_index", targetIndex,
			"error", err)
		return false, err
	}

	s.replaceBoard(board, SourceDrag)
	s.observer.MoveRequested(s.id, id, from, targetIndex)
	return true, nil
}

// EndDrag forgets the dragged order. Moves already made stay pending; nothing is saved.
func (s *Session) EndDrag(ctx context.Context) error {
	return s.exec(ctx, func() error {
		s.dragged = nil
		return nil
	})
}
