package editor

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"routeboard/internal/core/domain/model/kernel"
	"routeboard/internal/core/domain/model/order"
	"routeboard/internal/core/domain/model/sequence"
	"routeboard/internal/core/domain/services"
	"routeboard/internal/core/ports"
)

var (
	ErrSessionClosed       = errors.New("editing session is closed")
	ErrNumericModeActive   = errors.New("numeric mode is active")
	ErrNumericModeInactive = errors.New("numeric mode is not active")
	ErrNoActiveDrag        = errors.New("no drag in progress")
)

// DefaultSaveTimeout bounds a single gateway call started by Save.
const DefaultSaveTimeout = 10 * time.Second

// Mode is the interaction mode of a session.
type Mode int

const (
	Idle Mode = iota
	Dragging
	Numeric
)

func (m Mode) String() string {
	switch m {
	case Dragging:
		return "dragging"
	case Numeric:
		return "numeric"
	default:
		return "idle"
	}
}

// Config holds the tunables shared by every session of a Registry.
// Zero fields fall back to defaults.
type Config struct {
	SaveTimeout          time.Duration
	DropOverlapThreshold float64
	Observer             Observer
	Logger               *slog.Logger
}

func (c Config) withDefaults() Config {
	if c.SaveTimeout <= 0 {
		c.SaveTimeout = DefaultSaveTimeout
	}
	if c.DropOverlapThreshold == 0 {
		c.DropOverlapThreshold = services.DefaultDropOverlapThreshold
	}
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
	if c.Observer == nil {
		c.Observer = NewLogObserver(c.Logger)
	}
	return c
}

// numericState lives from EnterNumericMode until Resolve or cancellation.
type numericState struct {
	cachedBaseline sequence.Collection
	assignments    *sequence.Assignments
}

// View is a consistent snapshot of a session.
type View struct {
	SessionID     kernel.UUID
	Day           kernel.Day
	State         State
	Mode          Mode
	Orders        []*order.Order
	Assignments   map[kernel.UUID]int
	DraggedID     *kernel.UUID
	Revision      uint64
	Saving        bool
	HeldRefresh   bool
	LastSaveError error
}

// OrderIDs returns the order IDs in board order.
func (v View) OrderIDs() []kernel.UUID {
	ids := make([]kernel.UUID, len(v.Orders))
	for i, o := range v.Orders {
		ids[i] = o.ID()
	}
	return ids
}

// Session is the editing actor for one day board. Every exported method is safe for
// concurrent use: calls are queued to the session goroutine and run one at a time.
// Methods taking a context give up waiting when it is done; a command already
// picked up by the session still completes.
type Session struct {
	id          kernel.UUID
	day         kernel.Day
	gateway     ports.SequenceGateway
	resolver    services.RankResolver
	chooser     services.DropTargetChooser
	observer    Observer
	logger      *slog.Logger
	saveTimeout time.Duration

	mailbox   chan func()
	done      chan struct{}
	stopped   chan struct{}
	closeOnce sync.Once
	saves     sync.WaitGroup

	lastActivity atomic.Int64

	// Owned by the session goroutine.
	board         sequence.Collection
	baseline      sequence.Collection
	tracker       ChangeTracker
	dragged       *kernel.UUID
	numeric       *numericState
	revision      uint64
	inFlight      int
	lastSaveError error
}

// NewSession starts a session over orders, arranged by their saved sequence.
func NewSession(
	id kernel.UUID,
	day kernel.Day,
	orders []*order.Order,
	gateway ports.SequenceGateway,
	cfg Config,
) (*Session, error) {
	if err := errors.Join(id.Validate(), day.Validate()); err != nil {
		return nil, err
	}
	if gateway == nil {
		return nil, errors.New("sequence gateway is required")
	}

	cfg = cfg.withDefaults()
	chooser, err := services.NewDropTargetChooser(cfg.DropOverlapThreshold)
	if err != nil {
		return nil, err
	}

	board := sequence.FromOrders(orders)
	s := &Session{
		id:          id,
		day:         day,
		gateway:     gateway,
		resolver:    services.NewRankResolver(),
		chooser:     chooser,
		observer:    cfg.Observer,
		saveTimeout: cfg.SaveTimeout,
		logger: cfg.Logger.With(
			"component", "editor.session",
			"session_id", id.String(),
			"day", day.String()),
		mailbox:  make(chan func()),
		done:     make(chan struct{}),
		stopped:  make(chan struct{}),
		board:    board,
		baseline: board,
	}
	s.touch()

	go s.run()

	s.logger.Info("session opened", "orders", board.Len())
	return s, nil
}

func (s *Session) ID() kernel.UUID {
	return s.id
}

func (s *Session) Day() kernel.Day {
	return s.day
}

// LastActivity returns when the session last accepted a command.
func (s *Session) LastActivity() time.Time {
	return time.Unix(0, s.lastActivity.Load())
}

// Close stops the session goroutine. Saves already handed to the gateway keep
// running; their results are discarded. Close is idempotent.
func (s *Session) Close() {
	s.closeOnce.Do(func() {
		close(s.done)
		<-s.stopped
		s.logger.Info("session closed")
	})
}

// Wait blocks until every save started by the session has returned from the gateway.
func (s *Session) Wait() {
	s.saves.Wait()
}

func (s *Session) run() {
	defer close(s.stopped)
	for {
		select {
		case fn := <-s.mailbox:
			fn()
		case <-s.done:
			return
		}
	}
}

func (s *Session) touch() {
	s.lastActivity.Store(time.Now().UnixNano())
}

// exec runs fn on the session goroutine and waits for its result. The call counts
// as user activity.
func (s *Session) exec(ctx context.Context, fn func() error) error {
	return s.dispatch(ctx, fn, true)
}

func (s *Session) dispatch(ctx context.Context, fn func() error, activity bool) error {
	result := make(chan error, 1)
	task := func() {
		result <- s.observe(fn)
	}

	select {
	case s.mailbox <- task:
	case <-ctx.Done():
		return ctx.Err()
	case <-s.done:
		return ErrSessionClosed
	}

	if activity {
		s.touch()
	}

	select {
	case err := <-result:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// post queues fn without waiting. It reports false when the session is closed.
func (s *Session) post(fn func()) bool {
	select {
	case s.mailbox <- func() { _ = s.observe(func() error { fn(); return nil }) }:
		return true
	case <-s.done:
		return false
	}
}

// observe runs fn and reports a tracker state flip to the observer.
func (s *Session) observe(fn func() error) error {
	before := s.tracker.State()
	err := fn()
	if after := s.tracker.State(); after != before {
		s.observer.StateChanged(s.id, after)
	}
	return err
}

func (s *Session) mode() Mode {
	switch {
	case s.numeric != nil:
		return Numeric
	case s.dragged != nil:
		return Dragging
	default:
		return Idle
	}
}

// replaceBoard installs a new arrangement produced by a local edit.
func (s *Session) replaceBoard(board sequence.Collection, src ChangeSource) {
	s.board = board
	s.revision++
	s.tracker.Mark(src)
}

// settle applies the held refresh once nothing local is pending.
func (s *Session) settle() {
	if s.tracker.State() != Clean {
		return
	}
	if held, ok := s.tracker.TakeHeld(); ok {
		s.applyRefresh(held)
	}
}

func (s *Session) applyRefresh(board sequence.Collection) {
	s.board = board
	s.baseline = board
	s.revision++
	if s.numeric != nil {
		s.numeric.cachedBaseline = board
	}
	if s.dragged != nil && !board.Contains(*s.dragged) {
		s.dragged = nil
	}
}

// View returns a snapshot of the session.
func (s *Session) View(ctx context.Context) (View, error) {
	var view View
	err := s.exec(ctx, func() error {
		view = View{
			SessionID:     s.id,
			Day:           s.day,
			State:         s.tracker.State(),
			Mode:          s.mode(),
			Orders:        s.board.Orders(),
			Revision:      s.revision,
			Saving:        s.inFlight > 0,
			HeldRefresh:   s.tracker.HasHeld(),
			LastSaveError: s.lastSaveError,
		}
		if s.dragged != nil {
			id := *s.dragged
			view.DraggedID = &id
		}
		if s.numeric != nil {
			view.Assignments = s.numeric.assignments.Values()
		}
		return nil
	})
	return view, err
}

// PushList offers a freshly loaded list of the day's orders. A Clean session
// replaces its board and baseline with it; a Dirty session keeps it aside and
// applies only the most recent one once it becomes Clean through Discard or
// cancellation. Refreshes do not count as activity for idle expiry.
func (s *Session) PushList(ctx context.Context, orders []*order.Order) error {
	incoming := sequence.FromOrders(orders)
	return s.dispatch(ctx, func() error {
		if s.tracker.State() == Dirty {
			s.tracker.Hold(incoming)
			s.logger.Debug("refresh held while changes are pending", "orders", incoming.Len())
			return nil
		}
		s.applyRefresh(incoming)
		return nil
	}, false)
}

// Discard throws local changes away: the board returns to the baseline, any drag
// or numeric mode ends, and the session becomes Clean. A held refresh is applied
// afterwards.
func (s *Session) Discard(ctx context.Context) error {
	return s.exec(ctx, func() error {
		s.board = s.baseline
		s.dragged = nil
		s.numeric = nil
		s.lastSaveError = nil
		s.revision++
		s.tracker.Reset()
		s.settle()
		return nil
	})
}
