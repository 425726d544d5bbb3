package vdom

import (
	"fmt"
	"reflect"

	"github.com/samplecafe/cafe/pkg/hooks"
)

// VKind is the node type discriminator.
type VKind uint8

const (
	KindElement   VKind = iota // <div>, <button>, etc.
	KindText                   // Plain text node
	KindFragment               // Grouping without wrapper
	KindComponent              // Render function invocation
	KindRaw                    // Raw HTML (trusted)
	KindEmpty                  // Placeholder left by a false child
)

// String returns the string representation of the VKind.
func (k VKind) String() string {
	switch k {
	case KindElement:
		return "Element"
	case KindText:
		return "Text"
	case KindFragment:
		return "Fragment"
	case KindComponent:
		return "Component"
	case KindRaw:
		return "Raw"
	case KindEmpty:
		return "Empty"
	default:
		return "Unknown"
	}
}

// VNode is an element tree node. Treat it as read-only once built.
type VNode struct {
	Kind     VKind      // Node type
	Tag      string     // Element tag name, or component name for KindComponent
	Props    Props      // Attributes and event handlers
	Children []*VNode   // Child nodes
	Key      string     // Accepted and ignored by the materializer
	Text     string     // For KindText and KindRaw
	Render   RenderFunc // For KindComponent
}

// Props holds attributes, event handlers and component inputs.
type Props map[string]any

// Get returns the prop value for key, or nil.
func (p Props) Get(key string) any {
	if p == nil {
		return nil
	}
	return p[key]
}

// String returns the prop as a string, or "" when it is absent or not a
// string.
func (p Props) String(key string) string {
	s, _ := p.Get(key).(string)
	return s
}

// Children returns the children a component was invoked with.
func (p Props) Children() []*VNode {
	c, _ := p.Get("children").([]*VNode)
	return c
}

// HasHandlers reports whether an element node carries event handler props.
func (v *VNode) HasHandlers() bool {
	if v == nil || v.Kind != KindElement {
		return false
	}
	for key, val := range v.Props {
		if isEventProp(key) && val != nil {
			return true
		}
	}
	return false
}

func isEventProp(key string) bool {
	return len(key) > 2 && (key[0] == 'o' || key[0] == 'O') && (key[1] == 'n' || key[1] == 'N')
}

// Attr represents a single attribute.
type Attr struct {
	Key   string
	Value any
}

// IsEmpty returns true if this is an empty/nil attribute.
func (a Attr) IsEmpty() bool {
	return a.Key == ""
}

// EventHandler represents an event handler.
type EventHandler struct {
	Event   string // "onclick", "oninput", etc.
	Handler any    // func(), func(*dom.Event) or dom.Listener
}

// RenderFunc is a component: it renders props to an element tree, calling
// hooks through c.
type RenderFunc func(c *hooks.Cycle, props Props) *VNode

// ElementType is what CreateElement accepts as its first argument: a Tag
// or a RenderFunc.
type ElementType interface {
	elementType()
}

// Tag is a native element name.
type Tag string

func (Tag) elementType()        {}
func (RenderFunc) elementType() {}

// CreateElement builds an element or component node, or an empty
// placeholder when t is nil. Props are copied;
// a "key" prop is also recorded in VNode.Key. Children are flattened (see
// AppendChildren).
func CreateElement(t ElementType, props Props, children ...any) *VNode {
	node := &VNode{Props: make(Props, len(props))}
	for k, v := range props {
		node.Props[k] = v
	}
	if key, ok := props["key"]; ok && key != nil {
		node.Key = fmt.Sprint(key)
	}

	switch t := t.(type) {
	case Tag:
		node.Kind = KindElement
		node.Tag = string(t)
	case RenderFunc:
		node.Kind = KindComponent
		node.Render = t
		node.Tag = funcName(t)
	default:
		// Only a nil ElementType gets here; it builds a placeholder.
		return &VNode{Kind: KindEmpty}
	}

	node.Children = AppendChildren(nil, children...)
	return node
}

// Component is shorthand for CreateElement(fn, props, children...).
func Component(fn RenderFunc, props Props, children ...any) *VNode {
	return CreateElement(fn, props, children...)
}

// AppendChildren flattens children onto dst and returns the extended
// slice. Slices nest to any depth. nil and true are dropped, false leaves
// a KindEmpty placeholder, strings and numbers become text, a bare
// RenderFunc becomes a component with no props, and any other value is
// formatted with %v.
func AppendChildren(dst []*VNode, children ...any) []*VNode {
	for _, child := range children {
		dst = appendChild(dst, child)
	}
	return dst
}

func appendChild(dst []*VNode, child any) []*VNode {
	switch v := child.(type) {
	case nil:
		return dst
	case *VNode:
		if v == nil {
			return dst
		}
		return append(dst, v)
	case []*VNode:
		for _, c := range v {
			if c != nil {
				dst = append(dst, c)
			}
		}
		return dst
	case []any:
		return AppendChildren(dst, v...)
	case string:
		return append(dst, Text(v))
	case bool:
		if v {
			return dst
		}
		return append(dst, &VNode{Kind: KindEmpty})
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return append(dst, Text(fmt.Sprint(v)))
	case RenderFunc:
		return append(dst, CreateElement(v, nil))
	case func(*hooks.Cycle, Props) *VNode:
		return append(dst, CreateElement(RenderFunc(v), nil))
	case fmt.Stringer:
		return append(dst, Text(v.String()))
	case []string:
		for _, s := range v {
			dst = append(dst, Text(s))
		}
		return dst
	}
	return append(dst, Text(fmt.Sprint(child)))
}

// funcName gives a component node a readable name for error messages.
func funcName(fn RenderFunc) string {
	if fn == nil {
		return ""
	}
	return runtimeName(reflect.ValueOf(fn).Pointer())
}
