// Package render turns vdom trees into live dom nodes and drives render
// cycles for a mount point.
//
// # Materializing
//
// Materialize walks a VNode tree once, calling component render functions
// with the current hooks.Cycle, and returns a freshly built dom.Node. There
// is no reconciliation: every cycle builds a new tree and the root swaps it
// in wholesale.
//
// Element props are applied in sorted key order:
//
//   - className and htmlFor become class and for
//   - style accepts CSS text, vdom.Styles, map[string]string or map[string]any
//   - dangerouslySetInnerHTML (a string, or a map holding "__html") replaces
//     the element's content with trusted markup
//   - on* props holding func(), func(*dom.Event), func(string) or
//     dom.Listener become event listeners for the lower-cased suffix
//   - true sets an empty attribute, false and nil omit the attribute
//   - key and children are never applied
//
// # Roots
//
//	root := render.CreateRoot(container)
//	if err := root.Render(vdom.Component(App, nil)); err != nil {
//	    return err
//	}
//
// A Root owns a hooks.Store. State setters re-render the root
// synchronously; after each cycle the pending effects run in walk order.
// A Root is not safe for concurrent use.
package render
