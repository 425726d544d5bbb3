package el

import (
	"github.com/samplecafe/cafe/pkg/hooks"
	"github.com/samplecafe/cafe/pkg/render"
	"github.com/samplecafe/cafe/pkg/vdom"
)

// Type aliases for the element, hook and root types.
type (
	VNode        = vdom.VNode
	VKind        = vdom.VKind
	Props        = vdom.Props
	Attr         = vdom.Attr
	EventHandler = vdom.EventHandler
	RenderFunc   = vdom.RenderFunc
	ElementType  = vdom.ElementType
	Tag          = vdom.Tag
	Styles       = vdom.Styles

	Cycle   = hooks.Cycle
	Deps    = hooks.Deps
	Cleanup = hooks.Cleanup

	Root = render.Root
)

// Setter updates a state slot.
type Setter[T any] = hooks.Setter[T]

// Ref is a mutable box that persists across renders.
type Ref[T any] = hooks.Ref[T]
