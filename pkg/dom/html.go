package dom

import (
	"bytes"
	"io"
	"strings"
)

// voidElements are elements that cannot have children and have no closing tag.
var voidElements = map[string]bool{
	"area":   true,
	"base":   true,
	"br":     true,
	"col":    true,
	"embed":  true,
	"hr":     true,
	"img":    true,
	"input":  true,
	"link":   true,
	"meta":   true,
	"param":  true,
	"source": true,
	"track":  true,
	"wbr":    true,
}

// IsVoidElement returns true if the tag is a void element.
func IsVoidElement(tag string) bool {
	return voidElements[tag]
}

// rawTextElements hold text that is written without escaping.
var rawTextElements = map[string]bool{
	"script": true,
	"style":  true,
}

// booleanAttrs are attributes that don't need a value.
// An empty value is rendered as just the attribute name.
var booleanAttrs = map[string]bool{
	"allowfullscreen": true,
	"async":           true,
	"autofocus":       true,
	"autoplay":        true,
	"checked":         true,
	"controls":        true,
	"default":         true,
	"defer":           true,
	"disabled":        true,
	"formnovalidate":  true,
	"hidden":          true,
	"ismap":           true,
	"itemscope":       true,
	"loop":            true,
	"multiple":        true,
	"muted":           true,
	"nomodule":        true,
	"novalidate":      true,
	"open":            true,
	"playsinline":     true,
	"readonly":        true,
	"required":        true,
	"reversed":        true,
	"selected":        true,
}

// IsBooleanAttr returns true if the attribute is a boolean attribute.
func IsBooleanAttr(name string) bool {
	return booleanAttrs[name]
}

// OuterHTML serializes n including its own tag.
func (n *Node) OuterHTML() string {
	var buf bytes.Buffer
	n.WriteHTML(&buf)
	return buf.String()
}

// InnerHTML serializes the children of n.
func (n *Node) InnerHTML() string {
	var buf bytes.Buffer
	for _, c := range n.children {
		c.WriteHTML(&buf)
	}
	return buf.String()
}

// WriteHTML streams the HTML serialization of n to w.
func (n *Node) WriteHTML(w io.Writer) error {
	sw := &stickyWriter{w: w}
	n.writeHTML(sw, false)
	return sw.err
}

func (n *Node) writeHTML(w *stickyWriter, rawText bool) {
	switch n.Type {
	case TextNode:
		if rawText {
			w.WriteString(n.Data)
		} else {
			w.WriteString(EscapeHTML(n.Data))
		}
	case RawNode:
		w.WriteString(n.Data)
	case CommentNode:
		w.WriteString("<!--")
		w.WriteString(strings.ReplaceAll(n.Data, "--", "- -"))
		w.WriteString("-->")
	case FragmentNode:
		for _, c := range n.children {
			c.writeHTML(w, rawText)
		}
	case ElementNode:
		n.writeElement(w)
	}
}

func (n *Node) writeElement(w *stickyWriter) {
	w.WriteString("<")
	w.WriteString(n.Tag)
	for _, a := range n.Attributes() {
		w.WriteString(" ")
		w.WriteString(a.Name)
		if a.Value == "" && IsBooleanAttr(a.Name) {
			continue
		}
		w.WriteString(`="`)
		w.WriteString(EscapeAttr(a.Value))
		w.WriteString(`"`)
	}
	w.WriteString(">")

	if IsVoidElement(n.Tag) {
		return
	}

	raw := rawTextElements[n.Tag]
	for _, c := range n.children {
		c.writeHTML(w, raw)
	}

	w.WriteString("</")
	w.WriteString(n.Tag)
	w.WriteString(">")
}

// stickyWriter remembers the first write error and drops later writes.
type stickyWriter struct {
	w   io.Writer
	err error
}

func (s *stickyWriter) WriteString(str string) {
	if s.err != nil {
		return
	}
	_, s.err = io.WriteString(s.w, str)
}

// EscapeHTML escapes text for safe inclusion in HTML content.
func EscapeHTML(s string) string {
	var buf strings.Builder
	buf.Grow(len(s))

	for _, r := range s {
		switch r {
		case '&':
			buf.WriteString("&amp;")
		case '<':
			buf.WriteString("&lt;")
		case '>':
			buf.WriteString("&gt;")
		case '"':
			buf.WriteString("&quot;")
		case '\'':
			buf.WriteString("&#39;")
		default:
			buf.WriteRune(r)
		}
	}

	return buf.String()
}

// EscapeAttr escapes text for safe inclusion in HTML attribute values.
// In addition to the standard HTML entities, it also escapes
// whitespace characters that could break attribute parsing.
func EscapeAttr(s string) string {
	var buf strings.Builder
	buf.Grow(len(s))

	for _, r := range s {
		switch r {
		case '&':
			buf.WriteString("&amp;")
		case '<':
			buf.WriteString("&lt;")
		case '>':
			buf.WriteString("&gt;")
		case '"':
			buf.WriteString("&quot;")
		case '\'':
			buf.WriteString("&#39;")
		case '\n':
			buf.WriteString("&#10;")
		case '\r':
			buf.WriteString("&#13;")
		case '\t':
			buf.WriteString("&#9;")
		default:
			buf.WriteRune(r)
		}
	}

	return buf.String()
}
