package vdom

import (
	"sort"
	"strings"
)

func attr(key string, value any) Attr {
	return Attr{Key: key, Value: value}
}

// Identity attributes

// ID sets the id attribute.
func ID(id string) Attr { return attr("id", id) }

// Class sets the class attribute, joining multiple classes with spaces.
func Class(classes ...string) Attr { return attr("class", strings.Join(classes, " ")) }

// StyleAttr sets the style attribute from CSS text (named to avoid
// conflict with the Style element).
func StyleAttr(style string) Attr { return attr("style", style) }

// Styles is a style prop given as property/value pairs. Property names may
// be camelCase (backgroundImage) or CSS (background-image).
type Styles map[string]string

// StyleMap sets the style attribute from a property map.
func StyleMap(s Styles) Attr { return attr("style", s) }

// Data creates a data-* attribute.
// Example: Data("id", "123") → data-id="123"
func Data(key, value string) Attr { return attr("data-"+key, value) }

// InnerHTML sets trusted markup as the element's content.
func InnerHTML(html string) Attr { return attr("dangerouslySetInnerHTML", html) }

// Accessibility attributes

func Role(role string) Attr             { return attr("role", role) }
func AriaLabel(label string) Attr       { return attr("aria-label", label) }
func AriaHidden(hidden bool) Attr       { return attr("aria-hidden", boolString(hidden)) }
func AriaExpanded(expanded bool) Attr   { return attr("aria-expanded", boolString(expanded)) }
func AriaControls(id string) Attr       { return attr("aria-controls", id) }
func AriaCurrent(value string) Attr     { return attr("aria-current", value) }
func AriaLive(mode string) Attr         { return attr("aria-live", mode) }
func AriaModal(modal bool) Attr         { return attr("aria-modal", boolString(modal)) }
func TitleAttr(title string) Attr       { return attr("title", title) }
func Lang(lang string) Attr             { return attr("lang", lang) }
func TabIndex(index int) Attr           { return attr("tabindex", index) }
func Hidden() Attr                      { return attr("hidden", true) }
func Loading(mode string) Attr          { return attr("loading", mode) }
func ReferrerPolicy(policy string) Attr { return attr("referrerpolicy", policy) }
func Allowfullscreen() Attr             { return attr("allowfullscreen", true) }
func Charset(charset string) Attr       { return attr("charset", charset) }
func Content(content string) Attr       { return attr("content", content) }
func Datetime(value string) Attr        { return attr("datetime", value) }
func Autocomplete(value string) Attr    { return attr("autocomplete", value) }
func Placeholder(text string) Attr      { return attr("placeholder", text) }
func Accept(types string) Attr          { return attr("accept", types) }
func Enctype(enctype string) Attr       { return attr("enctype", enctype) }
func Rows(n int) Attr                   { return attr("rows", n) }
func Width(w int) Attr                  { return attr("width", w) }
func Height(h int) Attr                 { return attr("height", h) }

// Link attributes

func Href(url string) Attr      { return attr("href", url) }
func Target(target string) Attr { return attr("target", target) }
func Rel(rel string) Attr       { return attr("rel", rel) }

// Form attributes

func Name(name string) Attr     { return attr("name", name) }
func Value(value string) Attr   { return attr("value", value) }
func Type(t string) Attr        { return attr("type", t) }
func Action(url string) Attr    { return attr("action", url) }
func Method(method string) Attr { return attr("method", method) }
func For(id string) Attr        { return attr("htmlFor", id) }
func Min(value string) Attr     { return attr("min", value) }
func Disabled() Attr            { return attr("disabled", true) }
func Required() Attr            { return attr("required", true) }
func Checked() Attr             { return attr("checked", true) }
func Selected() Attr            { return attr("selected", true) }
func Autofocus() Attr           { return attr("autofocus", true) }
func Src(url string) Attr       { return attr("src", url) }
func Alt(text string) Attr      { return attr("alt", text) }
func Defer_() Attr              { return attr("defer", true) }

func boolString(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

// Conditional attributes

// ClassIf adds a class conditionally.
func ClassIf(condition bool, class string) Attr {
	if condition {
		return attr("class", class)
	}
	return Attr{}
}

// AttrIf adds any attribute conditionally.
func AttrIf(condition bool, a Attr) Attr {
	if condition {
		return a
	}
	return Attr{}
}

// Classes merges class values given as string, []string or map[string]bool.
// Map entries are added in sorted order.
func Classes(classes ...any) Attr {
	var result []string
	for _, c := range classes {
		switch v := c.(type) {
		case string:
			if v != "" {
				result = append(result, v)
			}
		case []string:
			for _, s := range v {
				if s != "" {
					result = append(result, s)
				}
			}
		case map[string]bool:
			keys := make([]string, 0, len(v))
			for class, include := range v {
				if include && class != "" {
					keys = append(keys, class)
				}
			}
			sort.Strings(keys)
			result = append(result, keys...)
		}
	}
	return attr("class", strings.Join(result, " "))
}
