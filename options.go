package intervalheap

// config holds the construction-time collaborators of a heap.
type config[V any] struct {
	alloc   Allocator[V]
	hooks   Hooks
	copy    func(V) V
	release func(V)
}

// Option configures a heap at construction.
type Option[V any] func(*config[V])

// WithAllocator sets the allocator backing the node store. A nil allocator
// keeps the default.
func WithAllocator[V any](alloc Allocator[V]) Option[V] {
	return func(c *config[V]) {
		if alloc != nil {
			c.alloc = alloc
		}
	}
}

// WithHooks sets the lifecycle observer notified around Clear and Free.
func WithHooks[V any](hooks Hooks) Option[V] {
	return func(c *config[V]) {
		c.hooks = hooks
	}
}

// WithCopyFunc sets the per-element copy hook used by Copy. Without it,
// elements are duplicated by plain assignment.
func WithCopyFunc[V any](fn func(V) V) Option[V] {
	return func(c *config[V]) {
		c.copy = fn
	}
}

// WithReleaseFunc sets the per-element destructor invoked by Clear and Free
// for every element still owned by the heap.
func WithReleaseFunc[V any](fn func(V)) Option[V] {
	return func(c *config[V]) {
		c.release = fn
	}
}

// defaultConfig returns the default collaborators: the runtime allocator and
// no hooks.
func defaultConfig[V any]() config[V] {
	return config[V]{
		alloc: runtimeAllocator[V]{},
	}
}
