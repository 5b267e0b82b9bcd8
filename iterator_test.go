package intervalheap_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davidvella/intervalheap"
)

func TestIteratorEmptyHeap(t *testing.T) {
	h := newIntHeap(t, 4)
	it := h.Iterator()

	assert.True(t, it.AtStart())
	assert.True(t, it.AtEnd())
	assert.False(t, it.Next())
	assert.False(t, it.Prev())
	assert.False(t, it.Advance(1))
	assert.False(t, it.Rewind(1))
	assert.False(t, it.GoTo(0))
	assert.Equal(t, 0, it.Value())
	assert.Equal(t, 0, it.Index())

	// Boundary resets are no-ops on an empty heap.
	it.ToStart()
	it.ToEnd()
	assert.Equal(t, 0, it.Index())
}

func TestIteratorForwardTraversal(t *testing.T) {
	h := newIntHeap(t, 8, 5, 3, 8, 1, 9, 2)
	it := h.Iterator()
	it.ToStart()

	assert.True(t, it.AtStart())

	visited := []int{it.Value()}
	for it.Next() {
		visited = append(visited, it.Value())
	}
	assert.True(t, it.AtEnd())
	assert.False(t, it.AtStart())
	require.Len(t, visited, h.Len())

	// Every visited element matches direct indexed access.
	probe := h.Iterator()
	for i, want := range visited {
		require.True(t, probe.GoTo(i))
		assert.Equal(t, want, probe.Value())
		assert.Equal(t, i, probe.Index())
	}
}

func TestIteratorBackwardTraversal(t *testing.T) {
	h := newIntHeap(t, 8, 5, 3, 8, 1, 9, 2)

	forward := make([]int, 0, h.Len())
	for v := range h.All() {
		forward = append(forward, v)
	}

	it := h.Iterator()
	it.ToEnd()
	assert.True(t, it.AtEnd())

	backward := []int{it.Value()}
	for it.Prev() {
		backward = append(backward, it.Value())
	}
	assert.True(t, it.AtStart())
	require.Len(t, backward, h.Len())

	for i, want := range forward {
		assert.Equal(t, want, backward[len(backward)-1-i])
	}
}

func TestIteratorNextAtBoundary(t *testing.T) {
	h := newIntHeap(t, 4, 1)
	it := h.Iterator()

	// A single element: the first Next reaches the end boundary without
	// moving, later calls keep failing.
	assert.False(t, it.Next())
	assert.True(t, it.AtEnd())
	assert.False(t, it.AtStart())
	assert.False(t, it.Next())
	assert.Equal(t, 1, it.Value())
}

func TestIteratorPrevAtBoundary(t *testing.T) {
	h := newIntHeap(t, 4, 1, 2)
	it := h.Iterator()
	it.ToEnd()

	require.True(t, it.Prev())
	assert.False(t, it.Prev())
	assert.True(t, it.AtStart())
	assert.False(t, it.Prev())
}

func TestIteratorAdvanceRewind(t *testing.T) {
	h := newIntHeap(t, 8, 5, 3, 8, 1, 9, 2)
	it := h.Iterator()

	assert.False(t, it.Advance(0), "zero steps never move")
	assert.False(t, it.Advance(6), "cannot run past the last element")
	require.True(t, it.Advance(5), "advancing exactly onto the last element")
	assert.Equal(t, 5, it.Index())
	assert.False(t, it.Advance(1))

	assert.False(t, it.Rewind(0))
	assert.False(t, it.Rewind(6), "cannot run past the first element")
	require.True(t, it.Rewind(5))
	assert.Equal(t, 0, it.Index())

	// Back on the first element there is nothing left to rewind over.
	assert.False(t, it.Rewind(1))
}

func TestIteratorRewindBlockedAtStart(t *testing.T) {
	h := newIntHeap(t, 4, 1, 2, 3)
	it := h.Iterator()
	it.ToStart()

	assert.False(t, it.Rewind(1), "start boundary already flagged")
	assert.True(t, it.Advance(2), "the end boundary is not flagged, so advancing is allowed")
	assert.Equal(t, 2, it.Index())
}

func TestIteratorGoTo(t *testing.T) {
	h := newIntHeap(t, 8, 5, 3, 8, 1)
	it := h.Iterator()

	assert.False(t, it.GoTo(4), "index out of range")
	assert.False(t, it.GoTo(-1))

	require.True(t, it.GoTo(3))
	assert.Equal(t, 3, it.Index())

	require.True(t, it.GoTo(1))
	assert.Equal(t, 1, it.Index())

	require.True(t, it.GoTo(1), "same index is a successful no-op")
	assert.Equal(t, 1, it.Index())
}

func TestIteratorPosition(t *testing.T) {
	h := newIntHeap(t, 4, 1, 2)
	it := h.Iterator()

	assert.Equal(t, intervalheap.BeforeFirst, it.Position())
	require.True(t, it.Next())
	assert.Equal(t, intervalheap.OnElement, it.Position())
	assert.False(t, it.Next())
	assert.Equal(t, intervalheap.AfterLast, it.Position())

	it.ToStart()
	assert.Equal(t, intervalheap.BeforeFirst, it.Position())
	it.ToEnd()
	assert.Equal(t, intervalheap.AfterLast, it.Position())
}
