package hooks

// Ref is a mutable box that persists across renders. Writing to a Ref
// never triggers a re-render.
type Ref[T any] struct {
	current T
	set     bool
}

// NewRef creates a standalone Ref holding initial.
func NewRef[T any](initial T) *Ref[T] {
	return &Ref[T]{current: initial, set: true}
}

// Current returns the held value.
func (r *Ref[T]) Current() T {
	return r.current
}

// Set replaces the held value.
func (r *Ref[T]) Set(v T) {
	r.current = v
	r.set = true
}

// IsSet reports whether the ref holds a value.
func (r *Ref[T]) IsSet() bool {
	return r.set
}

// Clear resets the ref to the zero value.
func (r *Ref[T]) Clear() {
	var zero T
	r.current = zero
	r.set = false
}

// UseRef returns the Ref stored in the next slot. The same pointer is
// returned on every render.
func UseRef[T any](c *Cycle, initial T) *Ref[T] {
	idx, slot := c.next(HookRef)
	if slot == nil {
		ref := NewRef(initial)
		c.set(idx, HookRef, ref)
		return ref
	}
	ref, ok := slot.(*Ref[T])
	if !ok {
		panic(mismatch(idx, HookRef, slot))
	}
	return ref
}
