package editor_test

import (
	"testing"

	"routeboard/internal/core/application/editor"
	"routeboard/internal/core/domain/model/sequence"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChangeTracker(t *testing.T) {
	t.Run("should start clean", func(t *testing.T) {
		var tracker editor.ChangeTracker

		assert.Equal(t, editor.Clean, tracker.State())
		assert.False(t, tracker.HasHeld())
	})

	t.Run("should stay dirty until every source is cleared", func(t *testing.T) {
		var tracker editor.ChangeTracker
		tracker.Mark(editor.SourceDrag)
		tracker.Mark(editor.SourceAssignment)

		tracker.Clear(editor.SourceAssignment)
		assert.Equal(t, editor.Dirty, tracker.State())
		assert.True(t, tracker.Has(editor.SourceDrag))

		tracker.Clear(editor.SourceDrag)
		assert.Equal(t, editor.Clean, tracker.State())
	})

	t.Run("should reset all sources", func(t *testing.T) {
		var tracker editor.ChangeTracker
		tracker.Mark(editor.SourceDrag | editor.SourceResolve)

		tracker.Reset()

		assert.Equal(t, editor.Clean, tracker.State())
	})

	t.Run("should hold only the latest refresh", func(t *testing.T) {
		b := newBoard(t, "A", "B")
		older := sequence.New(b.orders[:1])
		latest := sequence.New(b.orders)

		var tracker editor.ChangeTracker
		tracker.Hold(older)
		tracker.Hold(latest)

		held, ok := tracker.TakeHeld()
		require.True(t, ok)
		assert.Equal(t, 2, held.Len())
		assert.False(t, tracker.HasHeld())

		_, ok = tracker.TakeHeld()
		assert.False(t, ok)
	})

	t.Run("should drop the held refresh", func(t *testing.T) {
		var tracker editor.ChangeTracker
		tracker.Hold(sequence.Collection{})

		tracker.DropHeld()

		assert.False(t, tracker.HasHeld())
	})
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "clean", editor.Clean.String())
	assert.Equal(t, "dirty", editor.Dirty.String())
	assert.Equal(t, "idle", editor.Idle.String())
	assert.Equal(t, "dragging", editor.Dragging.String())
	assert.Equal(t, "numeric", editor.Numeric.String())
}
