package vtest

import (
	"strings"
	"testing"

	"github.com/samplecafe/cafe/pkg/dom"
	"github.com/samplecafe/cafe/pkg/render"
	"github.com/samplecafe/cafe/pkg/vdom"
)

// Harness is a mounted tree under test.
type Harness struct {
	t         testing.TB
	Root      *render.Root
	Container *dom.Node
}

// Mount renders node into a detached container. It stops the test when
// the first render fails.
func Mount(t testing.TB, node *vdom.VNode) *Harness {
	t.Helper()
	h := &Harness{t: t, Container: dom.MustElement("div")}
	h.Root = render.CreateRoot(h.Container, render.WithErrorHandler(func(err error) {
		t.Errorf("render error: %v", err)
	}))
	t.Cleanup(h.Root.Unmount)
	if err := h.Root.Render(node); err != nil {
		t.Fatalf("Render: %v", err)
	}
	return h
}

// Rerender replaces the mounted tree.
func (h *Harness) Rerender(node *vdom.VNode) {
	h.t.Helper()
	if err := h.Root.Render(node); err != nil {
		h.t.Fatalf("Render: %v", err)
	}
}

// HTML returns the container's markup.
func (h *Harness) HTML() string {
	return h.Container.InnerHTML()
}

// ByClass returns the first element carrying class, or nil.
func (h *Harness) ByClass(class string) *dom.Node {
	return ByClass(h.Container, class)
}

// AllByClass returns every element carrying class in document order.
func (h *Harness) AllByClass(class string) []*dom.Node {
	return h.Container.FindAll(func(n *dom.Node) bool { return HasClass(n, class) })
}

// ByName returns the first input or textarea named name, or nil.
func (h *Harness) ByName(name string) *dom.Node {
	return h.Container.Find(func(n *dom.Node) bool {
		return (n.Tag == "input" || n.Tag == "textarea") && Attr(n, "name") == name
	})
}

// Click dispatches a click on n. A nil node fails the test.
func (h *Harness) Click(n *dom.Node) {
	h.t.Helper()
	h.Dispatch(n, dom.NewEvent("click"))
}

// Change dispatches a change event carrying value on n.
func (h *Harness) Change(n *dom.Node, value string) {
	h.t.Helper()
	e := dom.NewEvent("change")
	e.Value = value
	h.Dispatch(n, e)
}

// Dispatch dispatches e on n.
func (h *Harness) Dispatch(n *dom.Node, e *dom.Event) {
	h.t.Helper()
	if n == nil {
		h.t.Fatalf("dispatch %s on a nil node", e.Type)
	}
	n.Dispatch(e)
}

// ExpectContains fails the test unless the markup contains want.
func (h *Harness) ExpectContains(want ...string) {
	h.t.Helper()
	html := h.HTML()
	for _, w := range want {
		if !strings.Contains(html, w) {
			h.t.Errorf("expected rendered output to contain %q, got:\n%s", w, truncate(html, 500))
		}
	}
}

// ExpectNotContains fails the test if the markup contains unwanted.
func (h *Harness) ExpectNotContains(unwanted string) {
	h.t.Helper()
	if html := h.HTML(); strings.Contains(html, unwanted) {
		h.t.Errorf("expected rendered output to NOT contain %q, got:\n%s", unwanted, truncate(html, 500))
	}
}

// HasClass reports whether n's class attribute lists class.
func HasClass(n *dom.Node, class string) bool {
	if n == nil || n.Type != dom.ElementNode {
		return false
	}
	for _, c := range strings.Fields(Attr(n, "class")) {
		if c == class {
			return true
		}
	}
	return false
}

// ByClass returns the first element under root carrying class, or nil.
func ByClass(root *dom.Node, class string) *dom.Node {
	if root == nil {
		return nil
	}
	return root.Find(func(n *dom.Node) bool { return HasClass(n, class) })
}

// Attr returns n's attribute name, empty when unset.
func Attr(n *dom.Node, name string) string {
	v, _ := n.GetAttribute(name)
	return v
}

// truncate truncates a string to max length with ellipsis.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
