package editor_test

import (
	"testing"

	"routeboard/internal/core/application/editor"
	"routeboard/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSession_Resolve(t *testing.T) {
	testCases := []struct {
		name    string
		clients []string
		ranks   [][2]string
		want    []string
	}{
		{
			name:    "should order by distinct ranks",
			clients: []string{"A", "B", "C"},
			ranks:   [][2]string{{"A", "1"}, {"B", "3"}, {"C", "2"}},
			want:    []string{"A", "C", "B"},
		},
		{
			name:    "should probe forward on equal ranks",
			clients: []string{"A", "B", "C"},
			ranks:   [][2]string{{"A", "1"}, {"B", "1"}},
			want:    []string{"A", "B", "C"},
		},
		{
			name:    "should keep unranked orders in relative order",
			clients: []string{"A", "B", "C", "D"},
			ranks:   [][2]string{{"C", "1"}},
			want:    []string{"C", "A", "B", "D"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			b := newBoard(t, tc.clients...)
			ctx := t.Context()
			require.NoError(t, b.session.EnterNumericMode(ctx))
			for _, r := range tc.ranks {
				_, err := b.session.Assign(ctx, b.id(r[0]), r[1])
				require.NoError(t, err)
			}

			_, err := b.session.Resolve(ctx)

			require.NoError(t, err)
			assert.Equal(t, tc.want, b.names(t))
			assert.Equal(t, editor.Idle, b.view(t).Mode)
		})
	}

	t.Run("should stay clean when the order does not change", func(t *testing.T) {
		b := newBoard(t, "A", "B", "C")
		ctx := t.Context()
		require.NoError(t, b.session.EnterNumericMode(ctx))
		_, err := b.session.Assign(ctx, b.id("B"), "2")
		require.NoError(t, err)
		assert.Equal(t, editor.Dirty, b.view(t).State, "typed ranks are pending")

		changed, err := b.session.Resolve(ctx)

		require.NoError(t, err)
		assert.False(t, changed)
		assert.Equal(t, editor.Clean, b.view(t).State)
	})

	t.Run("should mark dirty when the order changes", func(t *testing.T) {
		b := newBoard(t, "A", "B")
		ctx := t.Context()
		require.NoError(t, b.session.EnterNumericMode(ctx))
		_, err := b.session.Assign(ctx, b.id("B"), "1")
		require.NoError(t, err)

		changed, err := b.session.Resolve(ctx)

		require.NoError(t, err)
		assert.True(t, changed)
		assert.Equal(t, editor.Dirty, b.view(t).State)
	})

	t.Run("should fail outside numeric mode", func(t *testing.T) {
		b := newBoard(t, "A")

		_, err := b.session.Resolve(t.Context())

		require.ErrorIs(t, err, editor.ErrNumericModeInactive)
	})
}

func TestSession_Assign(t *testing.T) {
	t.Run("should fail outside numeric mode", func(t *testing.T) {
		b := newBoard(t, "A")

		_, err := b.session.Assign(t.Context(), b.id("A"), "1")

		require.ErrorIs(t, err, editor.ErrNumericModeInactive)
	})

	t.Run("should treat invalid text as no preference", func(t *testing.T) {
		b := newBoard(t, "A", "B")
		ctx := t.Context()
		require.NoError(t, b.session.EnterNumericMode(ctx))

		present, err := b.session.Assign(ctx, b.id("A"), "2")
		require.NoError(t, err)
		assert.True(t, present)
		assert.Equal(t, map[kernel.UUID]int{b.id("A"): 2}, b.view(t).Assignments)

		present, err = b.session.Assign(ctx, b.id("A"), " nope ")
		require.NoError(t, err)
		assert.False(t, present)

		v := b.view(t)
		assert.Empty(t, v.Assignments)
		assert.Equal(t, editor.Clean, v.State, "no typed ranks left")
		assert.Equal(t, 2, b.obs.assignments)
	})
}

func TestSession_CancelNumericMode(t *testing.T) {
	t.Run("should drop typed ranks and leave the board untouched", func(t *testing.T) {
		b := newBoard(t, "A", "B", "C")
		ctx := t.Context()
		require.NoError(t, b.session.EnterNumericMode(ctx))
		_, err := b.session.Assign(ctx, b.id("C"), "1")
		require.NoError(t, err)

		require.NoError(t, b.session.CancelNumericMode(ctx))

		v := b.view(t)
		assert.Equal(t, []string{"A", "B", "C"}, b.names(t))
		assert.Equal(t, editor.Clean, v.State)
		assert.Equal(t, editor.Idle, v.Mode)
		assert.Nil(t, v.Assignments)
	})

	t.Run("should keep earlier drag changes pending", func(t *testing.T) {
		b := newBoard(t, "A", "B", "C")
		ctx := t.Context()
		require.NoError(t, b.session.BeginDrag(ctx, b.id("A")))
		_, err := b.session.Overlap(ctx, 2)
		require.NoError(t, err)
		require.NoError(t, b.session.EnterNumericMode(ctx))
		_, err = b.session.Assign(ctx, b.id("A"), "1")
		require.NoError(t, err)

		require.NoError(t, b.session.CancelNumericMode(ctx))

		assert.Equal(t, editor.Dirty, b.view(t).State)
		assert.Equal(t, []string{"B", "C", "A"}, b.names(t))
	})

	t.Run("should do nothing outside numeric mode", func(t *testing.T) {
		b := newBoard(t, "A")

		require.NoError(t, b.session.CancelNumericMode(t.Context()))
	})

	t.Run("should apply a refresh held while ranks were typed", func(t *testing.T) {
		b := newBoard(t, "A", "B")
		ctx := t.Context()
		require.NoError(t, b.session.EnterNumericMode(ctx))
		_, err := b.session.Assign(ctx, b.id("B"), "1")
		require.NoError(t, err)

		refreshed := append(b.orders, b.makeOrders(t, "C")...)
		require.NoError(t, b.session.PushList(ctx, refreshed))
		assert.Equal(t, []string{"A", "B"}, b.names(t), "refresh is held while dirty")

		require.NoError(t, b.session.CancelNumericMode(ctx))

		assert.Equal(t, []string{"A", "B", "C"}, b.names(t))
	})
}

func TestSession_EnterNumericMode(t *testing.T) {
	t.Run("should end a drag and start with no ranks", func(t *testing.T) {
		b := newBoard(t, "A", "B")
		ctx := t.Context()
		require.NoError(t, b.session.BeginDrag(ctx, b.id("A")))

		require.NoError(t, b.session.EnterNumericMode(ctx))

		v := b.view(t)
		assert.Equal(t, editor.Numeric, v.Mode)
		assert.Nil(t, v.DraggedID)
		assert.Empty(t, v.Assignments)
	})

	t.Run("should resolve against a baseline refreshed while clean", func(t *testing.T) {
		b := newBoard(t, "A", "B")
		ctx := t.Context()
		require.NoError(t, b.session.EnterNumericMode(ctx))

		refreshed := append(b.orders, b.makeOrders(t, "C")...)
		require.NoError(t, b.session.PushList(ctx, refreshed))
		_, err := b.session.Assign(ctx, b.id("C"), "1")
		require.NoError(t, err)
		_, err = b.session.Resolve(ctx)
		require.NoError(t, err)

		assert.Equal(t, []string{"C", "A", "B"}, b.names(t))
	})
}
