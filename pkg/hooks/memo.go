package hooks

type memoCell[T any] struct {
	value T
	deps  Deps
}

// UseMemo returns the cached value of the next slot, recomputing it with
// factory on the first render and whenever deps changed since the value
// was computed.
func UseMemo[T any](c *Cycle, factory func() T, deps Deps) T {
	idx, slot := c.next(HookMemo)
	if slot != nil {
		cell, ok := slot.(*memoCell[T])
		if !ok {
			panic(mismatch(idx, HookMemo, slot))
		}
		if !DepsChanged(cell.deps, deps) {
			return cell.value
		}
	}

	cell := &memoCell[T]{value: factory(), deps: deps}
	c.set(idx, HookMemo, cell)
	return cell.value
}

// UseCallback memoizes a function value by deps.
func UseCallback[F any](c *Cycle, fn F, deps Deps) F {
	return UseMemo(c, func() F { return fn }, deps)
}
