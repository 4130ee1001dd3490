package editor_test

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"

	"routeboard/internal/core/application/editor"
	"routeboard/internal/core/domain/model/kernel"
	"routeboard/internal/core/domain/model/order"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockSequenceGateway struct{ mock.Mock }

func (m *MockSequenceGateway) SaveOrder(ctx context.Context, day kernel.Day, ids []kernel.UUID) error {
	args := m.Called(ctx, day, ids)
	return args.Error(0)
}

type MockOrderReader struct{ mock.Mock }

func (m *MockOrderReader) ListByDeliveryDay(ctx context.Context, day kernel.Day) ([]*order.Order, error) {
	args := m.Called(ctx, day)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type recordedMove struct {
	orderID  kernel.UUID
	from, to int
}

// recordingObserver keeps every event it receives.
type recordingObserver struct {
	mu          sync.Mutex
	moves       []recordedMove
	states      []editor.State
	saves       [][]kernel.UUID
	assignments int
}

func (o *recordingObserver) MoveRequested(_, orderID kernel.UUID, from, to int) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.moves = append(o.moves, recordedMove{orderID: orderID, from: from, to: to})
}

func (o *recordingObserver) AssignmentChanged(_, _ kernel.UUID, _ int, _ bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.assignments++
}

func (o *recordingObserver) SaveRequested(_ kernel.UUID, _ kernel.Day, ids []kernel.UUID) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.saves = append(o.saves, ids)
}

func (o *recordingObserver) StateChanged(_ kernel.UUID, state editor.State) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.states = append(o.states, state)
}

func (o *recordingObserver) stateHistory() []editor.State {
	o.mu.Lock()
	defer o.mu.Unlock()
	return append([]editor.State(nil), o.states...)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testDay(t *testing.T) kernel.Day {
	t.Helper()
	day, err := kernel.ParseDay("2024-03-15")
	require.NoError(t, err)
	return day
}

type board struct {
	orders  []*order.Order
	byName  map[string]*order.Order
	nameOf  map[kernel.UUID]string
	session *editor.Session
	gateway *MockSequenceGateway
	obs     *recordingObserver
}

// newBoard opens a session over orders named after clients, in the given order.
func newBoard(t *testing.T, clients ...string) *board {
	t.Helper()
	b := &board{
		byName:  make(map[string]*order.Order),
		nameOf:  make(map[kernel.UUID]string),
		gateway: new(MockSequenceGateway),
		obs:     &recordingObserver{},
	}
	b.orders = b.makeOrders(t, clients...)

	session, err := editor.NewSession(kernel.NewUUID(), testDay(t), b.orders, b.gateway, editor.Config{
		Observer: b.obs,
		Logger:   discardLogger(),
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		session.Close()
		session.Wait()
	})
	b.session = session
	return b
}

// makeOrders creates orders sequenced after every order made so far.
func (b *board) makeOrders(t *testing.T, clients ...string) []*order.Order {
	t.Helper()
	orders := make([]*order.Order, 0, len(clients))
	for _, name := range clients {
		seq := len(b.byName)
		o, err := order.RestoreOrder(kernel.NewUUID(), name, "Calle "+name, 10, false, testDay(t), order.Registered, &seq)
		require.NoError(t, err)
		b.byName[name] = o
		b.nameOf[o.ID()] = name
		orders = append(orders, o)
	}
	return orders
}

func (b *board) id(name string) kernel.UUID {
	return b.byName[name].ID()
}

func (b *board) view(t *testing.T) editor.View {
	t.Helper()
	v, err := b.session.View(t.Context())
	require.NoError(t, err)
	return v
}

func (b *board) names(t *testing.T) []string {
	t.Helper()
	v := b.view(t)
	out := make([]string, 0, len(v.Orders))
	for _, o := range v.Orders {
		out = append(out, b.nameOf[o.ID()])
	}
	return out
}

func (b *board) ids(names ...string) []kernel.UUID {
	out := make([]kernel.UUID, 0, len(names))
	for _, n := range names {
		out = append(out, b.id(n))
	}
	return out
}
