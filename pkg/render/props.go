package render

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/samplecafe/cafe/pkg/dom"
	"github.com/samplecafe/cafe/pkg/vdom"
)

func applyProps(n *dom.Node, props vdom.Props) error {
	if len(props) == 0 {
		return nil
	}
	keys := make([]string, 0, len(props))
	for k := range props {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		if err := applyProp(n, k, props[k]); err != nil {
			return err
		}
	}
	return nil
}

func applyProp(n *dom.Node, key string, value any) error {
	switch key {
	case "children", "key":
		return nil
	case "className":
		key = "class"
	case "htmlFor":
		key = "for"
	case "style":
		return applyStyle(n, value)
	case "dangerouslySetInnerHTML":
		if html, ok := innerHTML(value); ok {
			return n.SetInnerHTML(html)
		}
		return nil
	}

	if isEventKey(key) {
		if l, ok := listener(value); ok {
			n.AddEventListener(strings.ToLower(key[2:]), l)
			return nil
		}
		if nilHandler(value) {
			return nil
		}
	}

	switch v := value.(type) {
	case nil:
		return nil
	case bool:
		if !v {
			return nil
		}
		return n.SetAttribute(key, "")
	}
	return n.SetAttribute(key, stringify(value))
}

func isEventKey(key string) bool {
	return len(key) > 2 && strings.EqualFold(key[:2], "on")
}

// listener adapts the handler shapes accepted in on* props. Typed nil
// funcs are not handlers.
func listener(value any) (dom.Listener, bool) {
	switch h := value.(type) {
	case dom.Listener:
		return h, h != nil
	case func(*dom.Event):
		return h, h != nil
	case func():
		if h == nil {
			return nil, false
		}
		return func(*dom.Event) { h() }, true
	case func(string):
		if h == nil {
			return nil, false
		}
		return func(e *dom.Event) { h(e.Value) }, true
	}
	return nil, false
}

// nilHandler reports a typed nil in one of the handler shapes, which is
// neither a listener nor an attribute.
func nilHandler(value any) bool {
	switch h := value.(type) {
	case dom.Listener:
		return h == nil
	case func(*dom.Event):
		return h == nil
	case func():
		return h == nil
	case func(string):
		return h == nil
	}
	return false
}

func innerHTML(value any) (string, bool) {
	switch v := value.(type) {
	case string:
		return v, true
	case map[string]string:
		html, ok := v["__html"]
		return html, ok
	case map[string]any:
		html, ok := v["__html"].(string)
		return html, ok
	case vdom.Props:
		html, ok := v["__html"].(string)
		return html, ok
	}
	return "", false
}

func applyStyle(n *dom.Node, value any) error {
	switch v := value.(type) {
	case nil:
		return nil
	case string:
		return n.SetAttribute("style", v)
	case vdom.Styles:
		setStyles(n, v)
	case map[string]string:
		setStyles(n, v)
	case map[string]any:
		m := make(map[string]string, len(v))
		for k, val := range v {
			if val == nil {
				continue
			}
			m[k] = stringify(val)
		}
		setStyles(n, m)
	default:
		return fmt.Errorf("unsupported style value %T", value)
	}
	return nil
}

func setStyles(n *dom.Node, styles map[string]string) {
	keys := make([]string, 0, len(styles))
	for k := range styles {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	st := n.Style()
	for _, k := range keys {
		st.SetProperty(cssName(k), styles[k])
	}
}

// cssName converts a camelCase style key to its CSS property name.
// Custom properties and names that already contain a dash are kept.
func cssName(key string) string {
	if strings.HasPrefix(key, "--") || strings.ContainsRune(key, '-') {
		return key
	}
	var b strings.Builder
	for _, r := range key {
		if r >= 'A' && r <= 'Z' {
			b.WriteByte('-')
			b.WriteRune(r + ('a' - 'A'))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func stringify(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}
