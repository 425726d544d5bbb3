package hooks

// Setter updates a state slot. Setters are stable across renders: the
// setter returned on every render for a slot refers to the same cell.
type Setter[T any] struct {
	cell *stateCell[T]
}

type stateCell[T any] struct {
	store *Store
	value T
}

// Set commits v to the slot. If v is the same as the current value (see
// Same) nothing happens; otherwise a re-render is requested.
func (s Setter[T]) Set(v T) {
	if s.cell == nil {
		return
	}
	if Same(s.cell.value, v) {
		return
	}
	s.cell.value = v
	s.cell.store.changed()
}

// Update computes the next value from the current one and commits it
// like Set.
func (s Setter[T]) Update(fn func(prev T) T) {
	if s.cell == nil {
		return
	}
	s.Set(fn(s.cell.value))
}

// Get returns the value currently held by the slot, including writes made
// since the last render.
func (s Setter[T]) Get() T {
	var zero T
	if s.cell == nil {
		return zero
	}
	return s.cell.value
}

// UseState returns the current value of the next state slot and its
// setter. On the first render the slot is initialized to initial.
func UseState[T any](c *Cycle, initial T) (T, Setter[T]) {
	return useState(c, func() T { return initial })
}

// UseLazyState is UseState with an initializer that only runs when the
// slot is first allocated.
func UseLazyState[T any](c *Cycle, init func() T) (T, Setter[T]) {
	return useState(c, init)
}

func useState[T any](c *Cycle, init func() T) (T, Setter[T]) {
	idx, slot := c.next(HookState)
	if slot == nil {
		cell := &stateCell[T]{store: c.store, value: init()}
		c.set(idx, HookState, cell)
		return cell.value, Setter[T]{cell: cell}
	}
	cell, ok := slot.(*stateCell[T])
	if !ok {
		panic(mismatch(idx, HookState, slot))
	}
	return cell.value, Setter[T]{cell: cell}
}
