package intervalheap

// Position describes where an iterator's cursor stands relative to the
// flattened element sequence. The boundary states are explicit so that
// one-before-the-start and one-past-the-end are both observable without a
// sentinel index.
type Position int

const (
	// BeforeFirst marks the start boundary: no earlier element is reachable.
	BeforeFirst Position = iota

	// OnElement marks a cursor standing on an element with neither boundary
	// reached.
	OnElement

	// AfterLast marks the end boundary: no later element is reachable.
	AfterLast
)

// Iterator is a bidirectional, random-access cursor over the flattened
// element sequence of a heap, where flat index i maps to node i/2, slot i%2.
// It borrows the heap without owning it; any structural mutation of the heap
// invalidates the iterator, and using it afterwards is a precondition
// violation.
type Iterator[V any] struct {
	heap   *Heap[V]
	cursor int
	pos    Position
}

// Iterator returns a cursor positioned at the start of the heap's element
// sequence.
func (h *Heap[V]) Iterator() *Iterator[V] {
	return &Iterator[V]{heap: h, pos: BeforeFirst}
}

// Position returns the cursor's boundary state.
func (it *Iterator[V]) Position() Position {
	return it.pos
}

// AtStart reports whether no earlier element is reachable.
func (it *Iterator[V]) AtStart() bool {
	return it.heap.IsEmpty() || it.pos == BeforeFirst
}

// AtEnd reports whether no later element is reachable.
func (it *Iterator[V]) AtEnd() bool {
	return it.heap.IsEmpty() || it.pos == AfterLast
}

// ToStart resets the cursor to the first element. It is a no-op on an empty
// heap.
func (it *Iterator[V]) ToStart() {
	if it.heap.IsEmpty() {
		return
	}
	it.cursor = 0
	it.pos = BeforeFirst
}

// ToEnd resets the cursor to the last element. It is a no-op on an empty
// heap.
func (it *Iterator[V]) ToEnd() {
	if it.heap.IsEmpty() {
		return
	}
	it.cursor = it.heap.Len() - 1
	it.pos = AfterLast
}

// Next advances the cursor by one element. It reports false without moving
// when the end boundary was already reached, and false after marking the
// boundary when the cursor already stood on the last element.
func (it *Iterator[V]) Next() bool {
	if it.AtEnd() {
		return false
	}
	if it.cursor+1 == it.heap.Len() {
		it.pos = AfterLast
		return false
	}
	it.cursor++
	it.pos = OnElement
	return true
}

// Prev moves the cursor back by one element, mirroring Next.
func (it *Iterator[V]) Prev() bool {
	if it.AtStart() {
		return false
	}
	if it.cursor == 0 {
		it.pos = BeforeFirst
		return false
	}
	it.cursor--
	it.pos = OnElement
	return true
}

// Advance moves the cursor forward by steps elements. It reports false
// without moving when steps is not positive, the end boundary was already
// reached, or the move would run past the last element.
func (it *Iterator[V]) Advance(steps int) bool {
	if steps <= 0 || it.AtEnd() {
		return false
	}
	if it.cursor+steps >= it.heap.Len() {
		return false
	}
	it.cursor += steps
	it.pos = OnElement
	return true
}

// Rewind moves the cursor back by steps elements, mirroring Advance.
func (it *Iterator[V]) Rewind(steps int) bool {
	if steps <= 0 || it.AtStart() {
		return false
	}
	if steps > it.cursor {
		return false
	}
	it.cursor -= steps
	it.pos = OnElement
	return true
}

// GoTo positions the cursor on the element at the given flat index, moving
// by the difference from the current position. It reports false when index
// is out of range.
func (it *Iterator[V]) GoTo(index int) bool {
	if index < 0 || index >= it.heap.Len() {
		return false
	}
	switch {
	case index < it.cursor:
		return it.Rewind(it.cursor - index)
	case index > it.cursor:
		return it.Advance(index - it.cursor)
	default:
		return true
	}
}

// Value returns the element under the cursor, or the zero value on an empty
// heap.
func (it *Iterator[V]) Value() V {
	var zero V
	if it.heap.IsEmpty() {
		return zero
	}
	return it.heap.elementAt(it.cursor)
}

// Index returns the cursor's flat element index.
func (it *Iterator[V]) Index() int {
	return it.cursor
}
