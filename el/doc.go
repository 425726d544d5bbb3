// Package el is the public surface for writing pages: element
// construction, hooks and mounting, plus the HTML DSL from pkg/vdom.
//
// Typical usage:
//
//	import . "github.com/samplecafe/cafe/el"
//
//	func Counter(c *Cycle, props Props) *VNode {
//	    n, setN := UseState(c, 0)
//	    return Button(OnClick(func() { setN.Set(n + 1) }), n)
//	}
//
//	root := CreateRoot(container)
//	err := root.Render(CreateElement(RenderFunc(Counter), nil))
package el
