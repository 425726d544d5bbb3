package el

import (
	"github.com/samplecafe/cafe/pkg/dom"
	"github.com/samplecafe/cafe/pkg/hooks"
	"github.com/samplecafe/cafe/pkg/render"
	"github.com/samplecafe/cafe/pkg/vdom"
)

// CreateElement builds an element (Tag) or component (RenderFunc) node.
func CreateElement(t ElementType, props Props, children ...any) *VNode {
	return vdom.CreateElement(t, props, children...)
}

// Component is shorthand for CreateElement with a render function.
func Component(fn RenderFunc, props Props, children ...any) *VNode {
	return vdom.Component(fn, props, children...)
}

// UseState returns the current state and its setter.
func UseState[T any](c *Cycle, initial T) (T, Setter[T]) {
	return hooks.UseState(c, initial)
}

// UseLazyState is UseState with a lazily evaluated initial value.
func UseLazyState[T any](c *Cycle, init func() T) (T, Setter[T]) {
	return hooks.UseLazyState(c, init)
}

// UseMemo caches factory's result until deps change.
func UseMemo[T any](c *Cycle, factory func() T, deps Deps) T {
	return hooks.UseMemo(c, factory, deps)
}

// UseRef returns a ref that keeps its identity across renders.
func UseRef[T any](c *Cycle, initial T) *Ref[T] {
	return hooks.UseRef(c, initial)
}

// UseEffect runs fn after the tree is attached, when deps change.
func UseEffect(c *Cycle, fn func() Cleanup, deps Deps) {
	hooks.UseEffect(c, fn, deps)
}

// CreateRoot mounts into container.
func CreateRoot(container *dom.Node, opts ...render.Option) *Root {
	return render.CreateRoot(container, opts...)
}
