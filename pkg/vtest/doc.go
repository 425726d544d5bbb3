// Package vtest provides testing helpers for components.
//
// Mount renders a tree into a fresh root and unmounts it when the test
// ends. The returned Harness finds nodes by class, dispatches events and
// asserts on the rendered markup.
//
// # Quick Start
//
//	func TestCounter(t *testing.T) {
//	    h := vtest.Mount(t, Component(Counter, nil))
//	    h.Click(h.ByClass("inc"))
//	    h.ExpectContains("count: 1")
//	}
//
// Render failures, including failures of re-renders triggered by events,
// are reported with t.Errorf.
package vtest
