// Package vdom describes UI trees as plain values.
//
// A VNode is an immutable description of an element, a text leaf, a
// fragment, a component invocation, raw trusted HTML or an empty
// placeholder. Nothing in this package touches a document; pkg/render turns
// a VNode into live dom.Nodes.
//
// # Element API
//
// Trees can be built with CreateElement:
//
//	vdom.CreateElement(vdom.Tag("div"), vdom.Props{"className": "x"}, "hello")
//
// or with the variadic factory functions, which accept attributes, event
// handlers, Props and children in any order:
//
//	Div(Class("card"), ID("main"),
//	    H1(Text("Title")),
//	    P(Text("Content")),
//	    OnClick(handler),
//	)
//
// # Components
//
// A RenderFunc receives the current hooks.Cycle and its props (with the
// flattened children under the "children" key) and returns a VNode. Hooks
// are called through the cycle argument.
package vdom
