package dom

import "strings"

// Style is an element's inline style declaration. Properties keep the
// order in which they were first set.
type Style struct {
	props []Attr
}

// SetProperty sets a CSS property. An empty value removes it.
func (s *Style) SetProperty(name, value string) {
	name = strings.TrimSpace(name)
	if name == "" {
		return
	}
	if value == "" {
		s.RemoveProperty(name)
		return
	}
	for i := range s.props {
		if s.props[i].Name == name {
			s.props[i].Value = value
			return
		}
	}
	s.props = append(s.props, Attr{Name: name, Value: value})
}

// GetPropertyValue returns the value of a property, or "".
func (s *Style) GetPropertyValue(name string) string {
	for _, p := range s.props {
		if p.Name == name {
			return p.Value
		}
	}
	return ""
}

// RemoveProperty removes a property if present.
func (s *Style) RemoveProperty(name string) {
	for i, p := range s.props {
		if p.Name == name {
			s.props = append(s.props[:i], s.props[i+1:]...)
			return
		}
	}
}

// Len returns the number of properties.
func (s *Style) Len() int {
	return len(s.props)
}

// CSSText serializes the declaration as "a: b; c: d".
func (s *Style) CSSText() string {
	parts := make([]string, 0, len(s.props))
	for _, p := range s.props {
		parts = append(parts, p.Name+": "+p.Value)
	}
	return strings.Join(parts, "; ")
}

// SetCSSText replaces the declaration with the parsed text.
func (s *Style) SetCSSText(text string) {
	s.props = nil
	for _, decl := range strings.Split(text, ";") {
		name, value, ok := strings.Cut(decl, ":")
		if !ok {
			continue
		}
		s.SetProperty(strings.TrimSpace(name), strings.TrimSpace(value))
	}
}
