// Package hooks implements the per-root hook store: call-order indexed
// slots for state, memoized values, refs and effects.
//
// A Store holds slot contents for the lifetime of a mounted tree. Every
// render cycle starts with Store.Begin, which returns a Cycle whose cursors
// are zero; each hook call advances a cursor and reads or allocates the slot
// at that position. Slot contents persist between cycles, only the cursors
// reset.
//
// # Call-order contract
//
// Slots are identified only by position. A render function must make the
// same hook calls, in the same order, on every render for as long as its
// tree is mounted. Calling a hook conditionally or in a loop of varying
// length attributes stored values to the wrong hook. The store does not
// detect this unless StrictOrder is enabled, in which case a mismatch panics
// with ErrHookOrder. A slot whose stored type no longer matches the hook's
// type parameter always panics with ErrHookOrder.
//
// # Dependency lists
//
// UseMemo and UseEffect take a Deps list. A nil list means "changed on every
// render"; an empty, non-nil list (Deps{}) means "never changes after the
// first render". Otherwise the lists are compared pairwise with Same.
//
// # Example
//
//	func Counter(c *hooks.Cycle, props vdom.Props) *vdom.VNode {
//	    count, setCount := hooks.UseState(c, 0)
//	    hooks.UseEffect(c, func() hooks.Cleanup {
//	        log.Println("count is", count)
//	        return nil
//	    }, hooks.Deps{count})
//	    return vdom.Button(vdom.OnClick(func() { setCount.Set(count + 1) }),
//	        vdom.Textf("%d", count))
//	}
package hooks
