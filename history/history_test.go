package history

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHistory(t *testing.T) {
	h := New()
	assert.NotEmpty(t, h.SessionID())
	assert.Equal(t, 0, h.Len())

	_, ok := h.Current()
	assert.False(t, ok)
	_, ok = h.Undo()
	assert.False(t, ok)
	_, ok = h.Redo()
	assert.False(t, ok)
}

func TestPushAndUndo(t *testing.T) {
	h := New()
	h.Push("a")
	h.Push("b")
	h.Push("c")
	require.Equal(t, 3, h.Len())

	cur, ok := h.Current()
	require.True(t, ok)
	assert.Equal(t, "c", cur)

	prev, ok := h.Undo()
	require.True(t, ok)
	assert.Equal(t, "b", prev)

	prev, ok = h.Undo()
	require.True(t, ok)
	assert.Equal(t, "a", prev)

	_, ok = h.Undo()
	assert.False(t, ok, "cannot undo past the first snapshot")
}

func TestRedo(t *testing.T) {
	h := New()
	h.Push("a")
	h.Push("b")

	_, ok := h.Redo()
	assert.False(t, ok, "nothing to redo at the tip")

	_, ok = h.Undo()
	require.True(t, ok)

	next, ok := h.Redo()
	require.True(t, ok)
	assert.Equal(t, "b", next)

	_, ok = h.Redo()
	assert.False(t, ok)
}

func TestPushTruncatesRedoTail(t *testing.T) {
	h := New()
	h.Push("a")
	h.Push("b")
	h.Push("c")

	h.Undo()
	h.Undo()
	h.Push("d")
	assert.Equal(t, 2, h.Len())

	cur, _ := h.Current()
	assert.Equal(t, "d", cur)
	_, ok := h.Redo()
	assert.False(t, ok, "redo tail discarded after divergent push")
}

func TestPushSkipsConsecutiveDuplicates(t *testing.T) {
	h := New()
	h.Push("a")
	h.Push("a")
	h.Push("a")
	assert.Equal(t, 1, h.Len())

	h.Push("b")
	h.Push("a")
	assert.Equal(t, 3, h.Len(), "non-consecutive repeats are distinct snapshots")
}

func TestSessionIDsAreUnique(t *testing.T) {
	assert.NotEqual(t, New().SessionID(), New().SessionID())
}
