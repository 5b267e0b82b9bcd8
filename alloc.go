package intervalheap

// Allocator abstracts the memory source backing a heap's node store. The
// heap calls it for construction, growth, copying and teardown, and never
// assumes a specific source. Failures surface as errors wrapped in
// ErrAllocation and always leave the heap in its pre-call state.
type Allocator[V any] interface {
	// Allocate returns a buffer of the given node count. The contents may
	// be overwritten wholesale by the caller.
	Allocate(nodes int) ([]Node[V], error)

	// AllocateZeroed returns a buffer of the given node count with every
	// slot unpopulated.
	AllocateZeroed(nodes int) ([]Node[V], error)

	// Reallocate returns a buffer of the given node count carrying over the
	// contents of buf, zero-filling any new slots. buf may be nil.
	Reallocate(buf []Node[V], nodes int) ([]Node[V], error)

	// Release returns a buffer to the allocator. buf may be nil.
	Release(buf []Node[V])
}

// runtimeAllocator is the default Allocator, backed by the Go runtime. It
// never fails.
type runtimeAllocator[V any] struct{}

func (runtimeAllocator[V]) Allocate(nodes int) ([]Node[V], error) {
	return make([]Node[V], nodes), nil
}

func (runtimeAllocator[V]) AllocateZeroed(nodes int) ([]Node[V], error) {
	return make([]Node[V], nodes), nil
}

func (runtimeAllocator[V]) Reallocate(buf []Node[V], nodes int) ([]Node[V], error) {
	next := make([]Node[V], nodes)
	copy(next, buf)
	return next, nil
}

func (runtimeAllocator[V]) Release([]Node[V]) {}
