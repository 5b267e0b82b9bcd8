package intervalheap

// Hooks observes heap teardown. Collaborators that need to act around Clear
// or Free supply an implementation through WithHooks; a nil Hooks is a
// no-op, not an error.
type Hooks interface {
	// BeforeClear runs before Clear releases any element.
	BeforeClear()

	// AfterClear runs once Clear has emptied the heap.
	AfterClear()

	// BeforeFree runs before Free releases any element or the node store.
	BeforeFree()

	// AfterFree runs once Free has returned the node store to the allocator.
	AfterFree()
}
