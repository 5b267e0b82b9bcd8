// Package intervalheap implements a generic double-ended priority queue
// backed by an interval heap. An interval heap packs two heap orderings into
// a single array of paired nodes: each node holds a low and a high value, the
// low slots form a min-heap and the high slots form a max-heap. This gives
// O(1) access to both the current minimum and the current maximum.
//
// The ordering is determined by a user-provided comparison function returning
// a negative number, zero, or a positive number, in the manner of
// strings.Compare.
//
// Key features:
//   - Generic implementation supporting any element type
//   - O(1) PeekMin and PeekMax
//   - O(log n) Insert, RemoveMin, RemoveMax, UpdateMin and UpdateMax
//   - Bidirectional, random-access iterator over the stored elements
//   - Pluggable allocator for the node buffer
//   - Optional lifecycle hooks observing Clear and Free
//
// Basic usage:
//
//	// Create a heap of ints ordered numerically.
//	h, err := intervalheap.New[int](16, func(a, b int) int {
//	    return a - b
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Add elements.
//	h.Insert(5)
//	h.Insert(3)
//	h.Insert(8)
//
//	// Both extremes are available in constant time.
//	min, _ := h.PeekMin() // 3
//	max, _ := h.PeekMax() // 8
//
//	// Drain from either end.
//	v, ok := h.RemoveMin() // 3, true
//	v, ok = h.RemoveMax()  // 8, true
//
// Implementation details:
// The heap is an array of nodes where each node stores up to two elements,
// data[0] (low) and data[1] (high). For a node at index i, its children live
// at 2i+1 and 2i+2. Three invariants hold at all times:
//   - low <= high within any node holding two elements
//   - low of every non-root node >= low of its parent (min ordering)
//   - high of every non-root node <= high of its parent (max ordering)
//
// When the element count is odd the final node holds only its low value; the
// sift procedures treat that single value as standing in for the missing high
// slot on the max side.
//
// The heap is not safe for concurrent use; callers sharing a heap across
// goroutines must provide their own synchronization. Any structural mutation
// (Insert, RemoveMin, RemoveMax, UpdateMin, UpdateMax, Resize, Clear, Free)
// invalidates all outstanding iterators over the heap.
package intervalheap
