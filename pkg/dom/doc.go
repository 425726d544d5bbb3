// Package dom provides the live, in-memory document that the renderer
// materializes into.
//
// A Node is an element, text, comment, document fragment, or raw HTML
// chunk. Elements carry attributes, an inline style declaration, and event
// listeners. The tree supports the handful of mutations a renderer needs
// (AppendChild, ReplaceChildren, SetInnerHTML) and can be serialized back to
// HTML with WriteHTML, InnerHTML and OuterHTML.
//
// # Events
//
// Listeners are registered per event type with AddEventListener and invoked
// by Dispatch. Events bubble from the target up through its ancestors unless
// a listener calls StopPropagation:
//
//	btn, _ := dom.NewElement("button")
//	btn.AddEventListener("click", func(e *dom.Event) { clicked++ })
//	btn.Dispatch(dom.NewEvent("click"))
//
// # Concurrency
//
// A document is owned by a single goroutine. Nothing in this package is
// safe for concurrent use.
package dom
