package sequence_test

import (
	"testing"

	"routeboard/internal/core/domain/model/kernel"
	"routeboard/internal/core/domain/model/sequence"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssignments_Assign(t *testing.T) {
	id := kernel.NewUUID()

	t.Run("should store a positive rank", func(t *testing.T) {
		a := sequence.NewAssignments()

		assert.True(t, a.Assign(id, " 3 "))
		r, ok := a.Rank(id)
		require.True(t, ok)
		assert.Equal(t, 3, r.Value())
	})

	t.Run("should overwrite a previous rank", func(t *testing.T) {
		a := sequence.NewAssignments()
		a.Assign(id, "3")

		a.Assign(id, "1")

		r, _ := a.Rank(id)
		assert.Equal(t, 1, r.Value())
		assert.Equal(t, 1, a.Len())
	})

	t.Run("should remove the entry on invalid text", func(t *testing.T) {
		for _, text := range []string{"", "0", "-1", "x"} {
			a := sequence.NewAssignments()
			a.Assign(id, "2")

			assert.False(t, a.Assign(id, text))
			_, ok := a.Rank(id)
			assert.False(t, ok, "text %q", text)
			assert.True(t, a.IsEmpty())
		}
	})
}

func TestAssignments_Entries(t *testing.T) {
	c, o := board(t, "A", "B", "C")
	a := sequence.NewAssignments()
	a.Assign(o["C"].ID(), "1")
	a.Assign(o["B"].ID(), "1")
	a.Assign(o["A"].ID(), "2")
	a.Assign(kernel.NewUUID(), "1")

	entries := a.Entries(c)

	require.Len(t, entries, 3, "unknown ids are left out")
	assert.True(t, entries[0].ID.IsEqual(o["B"].ID()), "tie broken by board position")
	assert.True(t, entries[1].ID.IsEqual(o["C"].ID()))
	assert.True(t, entries[2].ID.IsEqual(o["A"].ID()))
}

func TestAssignments_Values(t *testing.T) {
	id := kernel.NewUUID()
	a := sequence.NewAssignments()
	a.Assign(id, "4")

	values := a.Values()
	values[id] = 9

	r, _ := a.Rank(id)
	assert.Equal(t, 4, r.Value())

	a.Clear()
	assert.True(t, a.IsEmpty())
}
