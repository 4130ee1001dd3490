package editor

import (
	"context"

	"routeboard/internal/core/domain/model/sequence"
	"routeboard/internal/pkg/errs"
)

// Save sends the current board order to the gateway in the background and returns
// at once. The snapshot is taken when Save runs; editing may continue while the save
// is in flight. In numeric mode the typed ranks are resolved first and numeric mode
// ends, so the order sent is always a resolved one.
//
// The returned channel yields the gateway result once the session has applied it,
// then closes. On success the session turns Clean when the board still matches the
// snapshot. On failure the board and the Dirty state are kept and the error is
// exposed as View.LastSaveError.
func (s *Session) Save(ctx context.Context) (<-chan error, error) {
	result := make(chan error, 1)
	err := s.exec(ctx, func() error {
		if s.numeric != nil {
			changed := s.resolveNumeric()
			s.logger.Debug("ranks resolved before save", "changed", changed)
		}

		sent := s.board
		revision := s.revision
		ids := sent.SnapshotIDs()

		s.inFlight++
		s.observer.SaveRequested(s.id, s.day, ids)
		s.logger.Info("saving board order", "orders", len(ids), "revision", revision)

		s.saves.Add(1)
		go func() {
			defer s.saves.Done()
			defer close(result)

			saveCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.saveTimeout)
			defer cancel()

			gatewayErr := s.gateway.SaveOrder(saveCtx, s.day, ids)

			var saveErr error
			if gatewayErr != nil {
				saveErr = errs.NewPersistenceError("save board order", gatewayErr)
			}
			if !s.post(func() { s.saveFinished(sent, revision, saveErr) }) {
				s.logger.Warn("save finished after session closed", "error", saveErr)
			}
			result <- saveErr
		}()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (s *Session) saveFinished(sent sequence.Collection, revision uint64, err error) {
	s.inFlight--

	if err != nil {
		s.lastSaveError = err
		s.logger.Error("failed to save board order", "revision", revision, "error", err)
		s.settle()
		return
	}

	s.lastSaveError = nil
	s.tracker.DropHeld()

	// A Clean board always equals its baseline. After a Discard during the save
	// the board is left alone until the next refresh brings the stored order.
	switch {
	case s.board.SameOrder(sent):
		s.baseline = sent
		s.tracker.Clear(SourceDrag | SourceResolve)
	case s.tracker.State() == Dirty:
		s.baseline = sent
	}
	s.logger.Info("board order saved",
		"revision", revision,
		"current_revision", s.revision,
		"state", s.tracker.State().String())
}
