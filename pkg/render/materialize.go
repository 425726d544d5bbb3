package render

import (
	"fmt"
	"runtime/debug"

	"github.com/samplecafe/cafe/pkg/dom"
	"github.com/samplecafe/cafe/pkg/hooks"
	"github.com/samplecafe/cafe/pkg/vdom"
)

type materializer struct {
	cycle *hooks.Cycle
	nodes int
	stack []string
}

// Materialize builds the dom tree for v against cycle c. A nil v yields an
// empty comment. Panics from render functions are returned as a
// *RenderError; invalid tag or attribute names as dom errors.
func Materialize(c *hooks.Cycle, v *vdom.VNode) (*dom.Node, error) {
	m := &materializer{cycle: c}
	return m.run(v)
}

func (m *materializer) run(v *vdom.VNode) (node *dom.Node, err error) {
	defer func() {
		if r := recover(); r != nil {
			node = nil
			err = &RenderError{
				Component: m.current(),
				Phase:     PhaseRender,
				Panic:     r,
				Stack:     debug.Stack(),
			}
		}
	}()
	return m.build(v)
}

func (m *materializer) current() string {
	if len(m.stack) == 0 {
		return ""
	}
	return m.stack[len(m.stack)-1]
}

func (m *materializer) build(v *vdom.VNode) (*dom.Node, error) {
	if v == nil {
		m.nodes++
		return dom.NewComment(""), nil
	}

	switch v.Kind {
	case vdom.KindEmpty:
		m.nodes++
		return dom.NewComment(""), nil
	case vdom.KindText:
		m.nodes++
		return dom.NewText(v.Text), nil
	case vdom.KindRaw:
		m.nodes++
		return dom.NewRaw(v.Text), nil
	case vdom.KindFragment:
		frag := dom.NewFragment()
		if err := m.appendChildren(frag, v.Children); err != nil {
			return nil, err
		}
		return frag, nil
	case vdom.KindComponent:
		return m.component(v)
	case vdom.KindElement:
		return m.element(v)
	default:
		return nil, fmt.Errorf("render: unknown node kind %v", v.Kind)
	}
}

func (m *materializer) component(v *vdom.VNode) (*dom.Node, error) {
	if v.Render == nil {
		return nil, fmt.Errorf("render: component %q has no render function", v.Tag)
	}

	props := make(vdom.Props, len(v.Props)+1)
	for k, val := range v.Props {
		props[k] = val
	}
	children := v.Children
	if children == nil {
		children = []*vdom.VNode{}
	}
	props["children"] = children

	m.stack = append(m.stack, v.Tag)
	out := v.Render(m.cycle, props)
	m.stack = m.stack[:len(m.stack)-1]

	return m.build(out)
}

func (m *materializer) element(v *vdom.VNode) (*dom.Node, error) {
	n, err := dom.NewElement(v.Tag)
	if err != nil {
		return nil, fmt.Errorf("render: element %q: %w", v.Tag, err)
	}
	m.nodes++

	if err := applyProps(n, v.Props); err != nil {
		return nil, fmt.Errorf("render: <%s>: %w", n.Tag, err)
	}
	if err := m.appendChildren(n, v.Children); err != nil {
		return nil, err
	}
	return n, nil
}

func (m *materializer) appendChildren(parent *dom.Node, children []*vdom.VNode) error {
	for _, child := range children {
		n, err := m.build(child)
		if err != nil {
			return err
		}
		if err := parent.AppendChild(n); err != nil {
			return err
		}
	}
	return nil
}
