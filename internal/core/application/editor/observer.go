package editor

import (
	"log/slog"

	"routeboard/internal/core/domain/model/kernel"
)

// Observer receives session events, typically to drive a UI.
//
// Methods run on the session goroutine. They must return quickly and must not
// call back into the session.
type Observer interface {
	MoveRequested(sessionID, orderID kernel.UUID, from, to int)
	AssignmentChanged(sessionID, orderID kernel.UUID, rank int, present bool)
	SaveRequested(sessionID kernel.UUID, day kernel.Day, ids []kernel.UUID)
	StateChanged(sessionID kernel.UUID, state State)
}

// LogObserver writes session events to a slog.Logger at debug level.
type LogObserver struct {
	logger *slog.Logger
}

func NewLogObserver(logger *slog.Logger) *LogObserver {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogObserver{logger: logger.With("component", "editor.observer")}
}

func (o *LogObserver) MoveRequested(sessionID, orderID kernel.UUID, from, to int) {
	o.logger.Debug("order moved",
		"session_id", sessionID.String(),
		"order_id", orderID.String(),
		"from", from,
		"to", to)
}

func (o *LogObserver) AssignmentChanged(sessionID, orderID kernel.UUID, rank int, present bool) {
	o.logger.Debug("rank assignment changed",
		"session_id", sessionID.String(),
		"order_id", orderID.String(),
		"rank", rank,
		"present", present)
}

func (o *LogObserver) SaveRequested(sessionID kernel.UUID, day kernel.Day, ids []kernel.UUID) {
	o.logger.Debug("save requested",
		"session_id", sessionID.String(),
		"day", day.String(),
		"orders", len(ids))
}

func (o *LogObserver) StateChanged(sessionID kernel.UUID, state State) {
	o.logger.Debug("session state changed",
		"session_id", sessionID.String(),
		"state", state.String())
}
