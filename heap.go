package intervalheap

import (
	"errors"
	"fmt"
	"iter"
	"math"

	"github.com/google/btree"
)

// Common errors that can be returned by heap operations.
var (
	ErrInvalidCapacity  = errors.New("intervalheap: capacity must be a positive, representable element count")
	ErrNilComparator    = errors.New("intervalheap: comparator cannot be nil")
	ErrCapacityExceeded = errors.New("intervalheap: capacity is smaller than the current element count")
	ErrAllocation       = errors.New("intervalheap: allocation failed")
)

// maxCapacity is the largest element capacity a heap will accept.
const maxCapacity = math.MaxInt - 1

// Compare defines the ordering of elements. It returns a negative number
// when a orders before b, zero when they are equal, and a positive number
// when a orders after b.
type Compare[V any] func(a, b V) int

// Slots of a node. data[low] belongs to the min ordering and data[high] to
// the max ordering.
const (
	low  = 0
	high = 1
)

// Node is one slot pair in the backing array. When the heap holds an odd
// number of elements the last in-use node is populated only in its low slot.
type Node[V any] struct {
	data [2]V
}

// Heap is a double-ended priority queue backed by an interval heap. It is
// not safe for concurrent use.
type Heap[V any] struct {
	// buffer is the node store; len(buffer) is the node capacity.
	buffer []Node[V]

	// size is the number of nodes currently in use.
	size int

	// count is the number of elements currently stored.
	count int

	cmp     Compare[V]
	alloc   Allocator[V]
	hooks   Hooks
	copy    func(V) V
	release func(V)
}

// New creates a heap able to hold capacity elements before growing, ordered
// by cmp. It fails if capacity is not a positive, representable element
// count or if cmp is nil.
func New[V any](capacity int, cmp Compare[V]) (*Heap[V], error) {
	return NewWith(capacity, cmp)
}

// NewWith creates a heap like New, additionally applying the given options.
func NewWith[V any](capacity int, cmp Compare[V], opts ...Option[V]) (*Heap[V], error) {
	if capacity <= 0 || capacity > maxCapacity {
		return nil, ErrInvalidCapacity
	}
	if cmp == nil {
		return nil, ErrNilComparator
	}

	cfg := defaultConfig[V]()
	for _, opt := range opts {
		opt(&cfg)
	}

	buf, err := cfg.alloc.AllocateZeroed(nodesFor(capacity))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAllocation, err)
	}

	return &Heap[V]{
		buffer:  buf,
		cmp:     cmp,
		alloc:   cfg.alloc,
		hooks:   cfg.hooks,
		copy:    cfg.copy,
		release: cfg.release,
	}, nil
}

// nodesFor translates an element capacity into node slots, rounding up so an
// odd capacity still fits.
func nodesFor(capacity int) int {
	return capacity/2 + capacity%2
}

// Index arithmetic for the implicit tree and the flattened element sequence.
func parentOf(i int) int     { return (i - 1) / 2 }
func leftChildOf(i int) int  { return 2*i + 1 }
func rightChildOf(i int) int { return 2*i + 2 }
func nodeOf(element int) int { return element / 2 }
func slotOf(element int) int { return element % 2 }

// elementAt returns the element at the given flattened index.
func (h *Heap[V]) elementAt(i int) V {
	return h.buffer[nodeOf(i)].data[slotOf(i)]
}

// oddLast reports whether node i is the last in-use node and holds a single
// element, leaving its high slot unpopulated.
func (h *Heap[V]) oddLast(i int) bool {
	return i == h.size-1 && h.count%2 != 0
}

// Insert adds an element to the heap, growing the node store by a factor of
// four when full. A failed growth aborts the insert and leaves the heap
// unchanged.
func (h *Heap[V]) Insert(element V) error {
	if h.IsFull() {
		if err := h.Resize(h.Cap() * 4); err != nil {
			return err
		}
	}

	if h.count%2 == 0 {
		// Occupy a new node; the high slot stays unpopulated.
		var zero V
		h.buffer[h.size].data[low] = element
		h.buffer[h.size].data[high] = zero
		h.size++
	} else {
		// Complete the last node, keeping low <= high.
		node := &h.buffer[h.size-1]
		if h.cmp(node.data[low], element) > 0 {
			node.data[high] = node.data[low]
			node.data[low] = element
		} else {
			node.data[high] = element
		}
	}

	h.count++

	if h.count <= 2 {
		return nil
	}

	// A single comparison against the parent node decides which ordering, if
	// any, the new element violates.
	parent := &h.buffer[parentOf(h.size-1)]
	switch {
	case h.cmp(parent.data[low], element) > 0:
		h.siftUpMin()
	case h.cmp(parent.data[high], element) < 0:
		h.siftUpMax()
	}

	return nil
}

// RemoveMax removes and returns the largest element. It reports false on an
// empty heap.
func (h *Heap[V]) RemoveMax() (V, bool) {
	var zero V
	if h.IsEmpty() {
		return zero, false
	}

	if h.count == 1 {
		result := h.buffer[0].data[low]
		h.buffer[0].data[low] = zero
		h.size--
		h.count--
		return result, true
	}

	result := h.buffer[0].data[high]
	last := &h.buffer[h.size-1]

	if h.count%2 != 0 {
		// The last node has no high value; pull its low value up and retire
		// the node.
		h.buffer[0].data[high] = last.data[low]
		last.data[low] = zero
		h.size--
	} else {
		h.buffer[0].data[high] = last.data[high]
		last.data[high] = zero
	}

	h.count--
	h.siftDownMax()

	return result, true
}

// RemoveMin removes and returns the smallest element. It reports false on an
// empty heap.
func (h *Heap[V]) RemoveMin() (V, bool) {
	var zero V
	if h.IsEmpty() {
		return zero, false
	}

	result := h.buffer[0].data[low]

	if h.count == 1 {
		h.buffer[0].data[low] = zero
		h.size--
		h.count--
		return result, true
	}

	last := &h.buffer[h.size-1]
	h.buffer[0].data[low] = last.data[low]

	if h.count%2 != 0 {
		// The last node held a single element; retire it.
		last.data[low] = zero
		h.size--
	} else {
		// Only the high value remains in the last node; promote it to low.
		last.data[low] = last.data[high]
		last.data[high] = zero
	}

	h.count--
	h.siftDownMin()

	return result, true
}

// UpdateMax replaces the current maximum with element and restores the heap
// ordering. It reports false on an empty heap.
func (h *Heap[V]) UpdateMax(element V) bool {
	if h.IsEmpty() {
		return false
	}

	root := &h.buffer[0]
	switch {
	case h.count == 1:
		root.data[low] = element
	case h.cmp(element, root.data[low]) < 0:
		// The new max sits below the current min; the old min becomes the
		// max before sifting.
		root.data[high] = root.data[low]
		root.data[low] = element
		h.siftDownMax()
	default:
		root.data[high] = element
		h.siftDownMax()
	}

	return true
}

// UpdateMin replaces the current minimum with element and restores the heap
// ordering. It reports false on an empty heap.
func (h *Heap[V]) UpdateMin(element V) bool {
	if h.IsEmpty() {
		return false
	}

	root := &h.buffer[0]
	switch {
	case h.count == 1:
		root.data[low] = element
	case h.cmp(element, root.data[high]) > 0:
		// The new min sits above the current max; the old max becomes the
		// min before sifting.
		root.data[low] = root.data[high]
		root.data[high] = element
		h.siftDownMin()
	default:
		root.data[low] = element
		h.siftDownMin()
	}

	return true
}

// PeekMax returns the largest element without removing it. It reports false
// on an empty heap. With a single element PeekMax and PeekMin agree.
func (h *Heap[V]) PeekMax() (V, bool) {
	var zero V
	if h.IsEmpty() {
		return zero, false
	}
	if h.count == 1 {
		return h.buffer[0].data[low], true
	}
	return h.buffer[0].data[high], true
}

// PeekMin returns the smallest element without removing it. It reports false
// on an empty heap.
func (h *Heap[V]) PeekMin() (V, bool) {
	var zero V
	if h.IsEmpty() {
		return zero, false
	}
	return h.buffer[0].data[low], true
}

// Contains reports whether an element comparing equal to element is stored.
// It scans linearly; the heap ordering cannot narrow an equality search.
func (h *Heap[V]) Contains(element V) bool {
	for i := 0; i < h.count; i++ {
		if h.cmp(h.elementAt(i), element) == 0 {
			return true
		}
	}
	return false
}

// IsEmpty reports whether the heap holds no elements.
func (h *Heap[V]) IsEmpty() bool {
	return h.count == 0
}

// IsFull reports whether every node slot holds two elements.
func (h *Heap[V]) IsFull() bool {
	return h.size >= len(h.buffer) && h.count%2 == 0
}

// Len returns the number of stored elements.
func (h *Heap[V]) Len() int {
	return h.count
}

// Cap returns the element capacity, always a whole number of nodes.
func (h *Heap[V]) Cap() int {
	return len(h.buffer) * 2
}

// Resize reallocates the node store to hold capacity elements. It fails when
// capacity is invalid or smaller than the current element count. On
// allocation failure the heap is left exactly as before the call.
func (h *Heap[V]) Resize(capacity int) error {
	if capacity <= 0 || capacity > maxCapacity {
		return ErrInvalidCapacity
	}
	if capacity < h.count {
		return ErrCapacityExceeded
	}

	nodes := nodesFor(capacity)
	if nodes == len(h.buffer) {
		return nil
	}

	buf, err := h.alloc.Reallocate(h.buffer, nodes)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrAllocation, err)
	}
	h.buffer = buf

	return nil
}

// Clear removes every element, releasing each through the release hook when
// one is set. Capacity is retained.
func (h *Heap[V]) Clear() {
	if h.hooks != nil {
		h.hooks.BeforeClear()
	}

	h.releaseElements()
	for i := 0; i < h.size; i++ {
		h.buffer[i] = Node[V]{}
	}
	h.size = 0
	h.count = 0

	if h.hooks != nil {
		h.hooks.AfterClear()
	}
}

// Free releases every element and returns the node store to the allocator.
// The heap is empty with zero capacity afterwards; further inserts fail.
func (h *Heap[V]) Free() {
	if h.hooks != nil {
		h.hooks.BeforeFree()
	}

	h.releaseElements()
	h.alloc.Release(h.buffer)
	h.buffer = nil
	h.size = 0
	h.count = 0

	if h.hooks != nil {
		h.hooks.AfterFree()
	}
}

// releaseElements hands every stored element to the release hook.
func (h *Heap[V]) releaseElements() {
	if h.release == nil {
		return
	}
	for i := 0; i < h.count; i++ {
		h.release(h.elementAt(i))
	}
}

// Copy returns a deep copy of the heap backed by a freshly allocated node
// store of identical capacity. Elements pass through the copy hook when one
// is set; the comparator, allocator and hooks are shared by reference.
func (h *Heap[V]) Copy() (*Heap[V], error) {
	buf, err := h.alloc.Allocate(len(h.buffer))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAllocation, err)
	}

	if h.copy != nil {
		for i := 0; i < h.count; i++ {
			buf[nodeOf(i)].data[slotOf(i)] = h.copy(h.elementAt(i))
		}
	} else {
		copy(buf, h.buffer[:h.size])
	}

	return &Heap[V]{
		buffer:  buf,
		size:    h.size,
		count:   h.count,
		cmp:     h.cmp,
		alloc:   h.alloc,
		hooks:   h.hooks,
		copy:    h.copy,
		release: h.release,
	}, nil
}

// tally counts occurrences of one equality class during Equals.
type tally[V any] struct {
	value V
	n     int
}

// Equals reports whether both heaps hold the same multiset of elements under
// the receiver's comparator, regardless of internal layout.
func (h *Heap[V]) Equals(other *Heap[V]) bool {
	if other == nil {
		return false
	}
	if h.count != other.count {
		return false
	}
	if h.count == 0 {
		return true
	}

	counts := btree.NewG(2, func(a, b *tally[V]) bool {
		return h.cmp(a.value, b.value) < 0
	})
	for i := 0; i < h.count; i++ {
		probe := &tally[V]{value: h.elementAt(i)}
		if t, ok := counts.Get(probe); ok {
			t.n++
		} else {
			probe.n = 1
			counts.ReplaceOrInsert(probe)
		}
	}

	for i := 0; i < other.count; i++ {
		t, ok := counts.Get(&tally[V]{value: other.elementAt(i)})
		if !ok || t.n == 0 {
			return false
		}
		t.n--
	}

	return true
}

// All returns an iterator over the stored elements in storage order, the
// same flattened sequence the Iterator exposes. The heap must not be mutated
// during iteration.
func (h *Heap[V]) All() iter.Seq[V] {
	return func(yield func(V) bool) {
		for i := 0; i < h.count; i++ {
			if !yield(h.elementAt(i)) {
				return
			}
		}
	}
}

// siftUpMin restores the min ordering after an element lands in the low slot
// of the last node.
func (h *Heap[V]) siftUpMin() {
	index := h.size - 1
	for index > 0 {
		parent := parentOf(index)
		if h.cmp(h.buffer[index].data[low], h.buffer[parent].data[low]) >= 0 {
			break
		}
		h.buffer[index].data[low], h.buffer[parent].data[low] =
			h.buffer[parent].data[low], h.buffer[index].data[low]
		index = parent
	}
}

// siftUpMax restores the max ordering after an element lands in the last
// node. When that node holds a single element its low value contends on the
// max side in place of the missing high slot.
func (h *Heap[V]) siftUpMax() {
	index := h.size - 1
	for index > 0 {
		parent := parentOf(index)
		if h.oddLast(index) {
			if h.cmp(h.buffer[index].data[low], h.buffer[parent].data[high]) < 0 {
				break
			}
			h.buffer[index].data[low], h.buffer[parent].data[high] =
				h.buffer[parent].data[high], h.buffer[index].data[low]
		} else {
			if h.cmp(h.buffer[index].data[high], h.buffer[parent].data[high]) < 0 {
				break
			}
			h.buffer[index].data[high], h.buffer[parent].data[high] =
				h.buffer[parent].data[high], h.buffer[index].data[high]
		}
		index = parent
	}
}

// siftDownMax restores the max ordering from the root after the high slot
// changed. Comparisons against an odd last node use its low value, and after
// a swap into a full child the child's own low/high pair is repaired.
func (h *Heap[V]) siftDownMax() {
	index := 0
	for leftChildOf(index) < h.size {
		child := leftChildOf(index)
		if right := rightChildOf(index); right < h.size {
			rightVal := h.buffer[right].data[high]
			if h.oddLast(right) {
				rightVal = h.buffer[right].data[low]
			}
			if h.cmp(h.buffer[child].data[high], rightVal) <= 0 {
				child = right
			}
		}

		if h.oddLast(child) {
			if h.cmp(h.buffer[index].data[high], h.buffer[child].data[low]) >= 0 {
				break
			}
			h.buffer[index].data[high], h.buffer[child].data[low] =
				h.buffer[child].data[low], h.buffer[index].data[high]
		} else {
			if h.cmp(h.buffer[index].data[high], h.buffer[child].data[high]) >= 0 {
				break
			}
			h.buffer[index].data[high], h.buffer[child].data[high] =
				h.buffer[child].data[high], h.buffer[index].data[high]

			if h.cmp(h.buffer[child].data[low], h.buffer[child].data[high]) > 0 {
				h.buffer[child].data[low], h.buffer[child].data[high] =
					h.buffer[child].data[high], h.buffer[child].data[low]
			}
		}

		index = child
	}
}

// siftDownMin restores the min ordering from the root after the low slot
// changed, repairing the low/high pair of any full child swapped into.
func (h *Heap[V]) siftDownMin() {
	index := 0
	for leftChildOf(index) < h.size {
		child := leftChildOf(index)
		if right := rightChildOf(index); right < h.size {
			if h.cmp(h.buffer[child].data[low], h.buffer[right].data[low]) >= 0 {
				child = right
			}
		}

		if h.cmp(h.buffer[index].data[low], h.buffer[child].data[low]) < 0 {
			break
		}
		h.buffer[index].data[low], h.buffer[child].data[low] =
			h.buffer[child].data[low], h.buffer[index].data[low]

		if !h.oddLast(child) && h.cmp(h.buffer[child].data[low], h.buffer[child].data[high]) > 0 {
			h.buffer[child].data[low], h.buffer[child].data[high] =
				h.buffer[child].data[high], h.buffer[child].data[low]
		}

		index = child
	}
}
