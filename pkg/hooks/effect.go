package hooks

// Cleanup undoes the work of an effect. It runs before the effect runs
// again and when the store is disposed.
type Cleanup func()

// EffectFunc is an effect body. It may return nil when there is nothing to
// clean up.
type EffectFunc func() Cleanup

type effectSlot struct {
	deps    Deps
	cleanup Cleanup
	// gen changes each time the slot's effect runs, so a cleanup returned
	// by a superseded run is not stored over a newer one.
	gen uint64
}

type pendingEffect struct {
	index int
	fn    EffectFunc
	deps  Deps
}

// UseEffect schedules fn to run after the cycle's tree has been attached,
// on the first render and whenever deps changed since it last ran.
func UseEffect(c *Cycle, fn EffectFunc, deps Deps) {
	s := c.store
	idx := c.effectCursor
	c.effectCursor++

	if idx >= len(s.effects) {
		s.effects = append(s.effects, effectSlot{})
		c.pending = append(c.pending, pendingEffect{index: idx, fn: fn, deps: deps})
		return
	}
	if DepsChanged(s.effects[idx].deps, deps) {
		c.pending = append(c.pending, pendingEffect{index: idx, fn: fn, deps: deps})
	}
}

// Flush runs the effects queued during the cycle in call order and
// returns how many ran. For each effect the previous cleanup of its slot
// runs first, then the effect, and the returned cleanup is stored.
//
// Flushing stops early if an effect started a newer cycle on the same
// store; that cycle flushes its own queue.
func (c *Cycle) Flush() int {
	s := c.store
	ran := 0
	for len(c.pending) > 0 {
		if c.seq != s.seq || s.disposed {
			c.pending = nil
			break
		}
		p := c.pending[0]
		c.pending = c.pending[1:]

		slot := &s.effects[p.index]
		if slot.cleanup != nil {
			cleanup := slot.cleanup
			slot.cleanup = nil
			cleanup()
		}
		slot.deps = p.deps
		slot.gen++
		gen := slot.gen

		cleanup := p.fn()
		ran++

		// the effect may have triggered a nested cycle that appended slots
		slot = &s.effects[p.index]
		if cleanup == nil {
			continue
		}
		if slot.gen == gen && !s.disposed {
			slot.cleanup = cleanup
		} else {
			cleanup()
		}
	}
	return ran
}
