package dom

import (
	"fmt"
	"strings"
)

// NodeType is the node discriminator.
type NodeType uint8

const (
	ElementNode  NodeType = iota + 1 // <div>, <button>, etc.
	TextNode                         // Character data
	CommentNode                      // <!-- -->
	FragmentNode                     // Parentless grouping, flattened on insert
	RawNode                          // Trusted HTML inserted via SetInnerHTML
)

// String returns the string representation of the NodeType.
func (t NodeType) String() string {
	switch t {
	case ElementNode:
		return "Element"
	case TextNode:
		return "Text"
	case CommentNode:
		return "Comment"
	case FragmentNode:
		return "Fragment"
	case RawNode:
		return "Raw"
	default:
		return "Unknown"
	}
}

// Attr is a single element attribute.
type Attr struct {
	Name  string
	Value string
}

// Node is a live document node.
type Node struct {
	Type NodeType

	// Tag is the lower-cased tag name for elements.
	Tag string

	// Data holds the content of text, comment and raw nodes.
	Data string

	attrs     []Attr
	style     *Style
	parent    *Node
	children  []*Node
	listeners map[string][]Listener
}

// NewElement creates a detached element. The tag is lower-cased and must
// be a valid HTML name.
func NewElement(tag string) (*Node, error) {
	if !validName(tag) {
		return nil, fmt.Errorf("%w: tag %q", ErrInvalidCharacter, tag)
	}
	return &Node{Type: ElementNode, Tag: strings.ToLower(tag)}, nil
}

// MustElement is like NewElement but panics on an invalid tag.
func MustElement(tag string) *Node {
	n, err := NewElement(tag)
	if err != nil {
		panic(err)
	}
	return n
}

// NewText creates a detached text node.
func NewText(data string) *Node {
	return &Node{Type: TextNode, Data: data}
}

// NewComment creates a detached comment node.
func NewComment(data string) *Node {
	return &Node{Type: CommentNode, Data: data}
}

// NewFragment creates an empty document fragment.
func NewFragment() *Node {
	return &Node{Type: FragmentNode}
}

// NewRaw creates a node holding trusted, unescaped HTML.
func NewRaw(html string) *Node {
	return &Node{Type: RawNode, Data: html}
}

// Parent returns the parent node, or nil for detached nodes.
func (n *Node) Parent() *Node {
	return n.parent
}

// Children returns the child nodes. The slice must not be modified.
func (n *Node) Children() []*Node {
	return n.children
}

// ChildElements returns only the element children, in document order.
func (n *Node) ChildElements() []*Node {
	var out []*Node
	for _, c := range n.children {
		if c.Type == ElementNode {
			out = append(out, c)
		}
	}
	return out
}

// FirstChild returns the first child, or nil.
func (n *Node) FirstChild() *Node {
	if len(n.children) == 0 {
		return nil
	}
	return n.children[0]
}

func (n *Node) canHaveChildren() bool {
	return n.Type == ElementNode || n.Type == FragmentNode
}

// contains reports whether other is n or one of its descendants.
func (n *Node) contains(other *Node) bool {
	for p := other; p != nil; p = p.parent {
		if p == n {
			return true
		}
	}
	return false
}

// AppendChild appends child to n. A fragment's children are moved into n
// and the fragment is left empty. A child that already has a parent is
// detached first.
func (n *Node) AppendChild(child *Node) error {
	if child == nil {
		return nil
	}
	if !n.canHaveChildren() || child.contains(n) {
		return fmt.Errorf("%w: cannot append %s to %s", ErrHierarchyRequest, child.Type, n.Type)
	}
	if child.Type == FragmentNode {
		moved := child.children
		child.children = nil
		for _, c := range moved {
			c.parent = n
		}
		n.children = append(n.children, moved...)
		return nil
	}
	if child.parent != nil {
		child.parent.RemoveChild(child)
	}
	child.parent = n
	n.children = append(n.children, child)
	return nil
}

// RemoveChild detaches child from n. It is a no-op if child is not a
// child of n.
func (n *Node) RemoveChild(child *Node) {
	for i, c := range n.children {
		if c == child {
			n.children = append(n.children[:i], n.children[i+1:]...)
			child.parent = nil
			return
		}
	}
}

// ReplaceChildren discards every current child and appends nodes in order.
func (n *Node) ReplaceChildren(nodes ...*Node) error {
	if !n.canHaveChildren() {
		return fmt.Errorf("%w: %s cannot have children", ErrHierarchyRequest, n.Type)
	}
	for _, c := range n.children {
		c.parent = nil
	}
	n.children = nil
	for _, c := range nodes {
		if err := n.AppendChild(c); err != nil {
			return err
		}
	}
	return nil
}

// SetInnerHTML replaces the children of n with a single raw HTML node.
func (n *Node) SetInnerHTML(html string) error {
	if html == "" {
		return n.ReplaceChildren()
	}
	return n.ReplaceChildren(NewRaw(html))
}

// TextContent returns the concatenated text of n and its descendants.
// Comments are skipped; raw HTML is included verbatim.
func (n *Node) TextContent() string {
	switch n.Type {
	case TextNode, RawNode:
		return n.Data
	case CommentNode:
		return ""
	}
	var b strings.Builder
	for _, c := range n.children {
		b.WriteString(c.TextContent())
	}
	return b.String()
}

// SetAttribute sets an attribute, replacing any existing value. Setting
// "style" replaces the inline style declaration.
func (n *Node) SetAttribute(name, value string) error {
	if n.Type != ElementNode {
		return fmt.Errorf("%w: %s has no attributes", ErrHierarchyRequest, n.Type)
	}
	if !validName(name) {
		return fmt.Errorf("%w: attribute %q", ErrInvalidCharacter, name)
	}
	name = strings.ToLower(name)
	if name == "style" {
		n.Style().SetCSSText(value)
		return nil
	}
	for i := range n.attrs {
		if n.attrs[i].Name == name {
			n.attrs[i].Value = value
			return nil
		}
	}
	n.attrs = append(n.attrs, Attr{Name: name, Value: value})
	return nil
}

// GetAttribute returns the attribute value and whether it is present.
func (n *Node) GetAttribute(name string) (string, bool) {
	name = strings.ToLower(name)
	if name == "style" {
		if n.style == nil || n.style.Len() == 0 {
			return "", false
		}
		return n.style.CSSText(), true
	}
	for _, a := range n.attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// HasAttribute reports whether the attribute is present.
func (n *Node) HasAttribute(name string) bool {
	_, ok := n.GetAttribute(name)
	return ok
}

// RemoveAttribute removes an attribute if present.
func (n *Node) RemoveAttribute(name string) {
	name = strings.ToLower(name)
	if name == "style" {
		n.style = nil
		return
	}
	for i, a := range n.attrs {
		if a.Name == name {
			n.attrs = append(n.attrs[:i], n.attrs[i+1:]...)
			return
		}
	}
}

// Attributes returns the attributes in insertion order, with the inline
// style (if any) last.
func (n *Node) Attributes() []Attr {
	out := make([]Attr, 0, len(n.attrs)+1)
	out = append(out, n.attrs...)
	if n.style != nil && n.style.Len() > 0 {
		out = append(out, Attr{Name: "style", Value: n.style.CSSText()})
	}
	return out
}

// Style returns the inline style declaration, creating it on first use.
func (n *Node) Style() *Style {
	if n.style == nil {
		n.style = &Style{}
	}
	return n.style
}

// validName reports whether s can be used as a tag or attribute name.
func validName(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		switch {
		case r <= ' ', r == 0x7f:
			return false
		case r == '"', r == '\'', r == '>', r == '<', r == '/', r == '=':
			return false
		}
	}
	return true
}
