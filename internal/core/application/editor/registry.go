package editor

import (
	"context"
	"log/slog"
	"sort"
	"sync"
	"time"

	"routeboard/internal/core/domain/model/kernel"
	"routeboard/internal/core/ports"
	"routeboard/internal/pkg/errs"
)

// Registry keeps the open editing sessions, keyed by session ID.
type Registry struct {
	mu       sync.RWMutex
	sessions map[kernel.UUID]*Session

	reader  ports.OrderReader
	gateway ports.SequenceGateway
	cfg     Config
	logger  *slog.Logger
}

func NewRegistry(reader ports.OrderReader, gateway ports.SequenceGateway, cfg Config) *Registry {
	cfg = cfg.withDefaults()
	return &Registry{
		sessions: make(map[kernel.UUID]*Session),
		reader:   reader,
		gateway:  gateway,
		cfg:      cfg,
		logger:   cfg.Logger.With("component", "editor.registry"),
	}
}

// Open loads the orders of day and starts a new session over them.
func (r *Registry) Open(ctx context.Context, day kernel.Day) (*Session, error) {
	if err := day.Validate(); err != nil {
		return nil, err
	}

	orders, err := r.reader.ListByDeliveryDay(ctx, day)
	if err != nil {
		return nil, err
	}

	session, err := NewSession(kernel.NewUUID(), day, orders, r.gateway, r.cfg)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	r.sessions[session.ID()] = session
	r.mu.Unlock()

	return session, nil
}

// Get returns the open session with id.
func (r *Registry) Get(id kernel.UUID) (*Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	session, ok := r.sessions[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("sessionID", id)
	}
	return session, nil
}

// Close stops and forgets the session with id.
func (r *Registry) Close(id kernel.UUID) error {
	r.mu.Lock()
	session, ok := r.sessions[id]
	delete(r.sessions, id)
	r.mu.Unlock()

	if !ok {
		return errs.NewObjectNotFoundError("sessionID", id)
	}
	session.Close()
	return nil
}

// Sessions returns the open sessions ordered by ID.
func (r *Registry) Sessions() []*Session {
	r.mu.RLock()
	out := make([]*Session, 0, len(r.sessions))
	for _, s := range r.sessions {
		out = append(out, s)
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		return out[i].ID().String() < out[j].ID().String()
	})
	return out
}

// CloseIdle closes every session whose last activity is older than maxIdle at now.
// It returns the IDs of the closed sessions.
func (r *Registry) CloseIdle(now time.Time, maxIdle time.Duration) []kernel.UUID {
	r.mu.Lock()
	idle := make([]*Session, 0)
	for id, s := range r.sessions {
		if now.Sub(s.LastActivity()) > maxIdle {
			idle = append(idle, s)
			delete(r.sessions, id)
		}
	}
	r.mu.Unlock()

	closed := make([]kernel.UUID, 0, len(idle))
	for _, s := range idle {
		s.Close()
		closed = append(closed, s.ID())
		r.logger.Info("idle session closed", "session_id", s.ID().String(), "day", s.Day().String())
	}
	return closed
}

// CloseAll closes every open session.
func (r *Registry) CloseAll() {
	r.mu.Lock()
	sessions := r.sessions
	r.sessions = make(map[kernel.UUID]*Session)
	r.mu.Unlock()

	for _, s := range sessions {
		s.Close()
	}
}
