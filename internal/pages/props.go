package pages

import (
	"time"

	. "github.com/samplecafe/cafe/el"
	"github.com/samplecafe/cafe/internal/content"
)

// Flash is a one-shot status message shown above a form.
type Flash struct {
	// Kind is success, info, warning or danger.
	Kind    string
	Message string
}

// Site is the input for a public page.
type Site struct {
	Path     string
	Snapshot *content.Snapshot

	// Err replaces the page body with an error section.
	Err error

	// OnTitle is called with the document title after each path change.
	OnTitle func(string)

	// Year shown in the footer; defaults to the current year.
	Year int
}

// Element returns the App element for s.
func (s Site) Element() *VNode {
	year := s.Year
	if year == 0 {
		year = time.Now().Year()
	}
	props := Props{
		"path":     s.Path,
		"snapshot": s.Snapshot,
		"onTitle":  s.OnTitle,
		"year":     year,
	}
	if s.Err != nil {
		props["error"] = s.Err.Error()
	}
	return Component(App, props)
}

// get returns props[key] as a T, or the zero value.
func get[T any](props Props, key string) T {
	v, _ := props.Get(key).(T)
	return v
}

func flashMessage(f *Flash) *VNode {
	if f == nil || f.Message == "" {
		return nil
	}
	kind := f.Kind
	if kind == "" {
		kind = "info"
	}
	return Div(Class("flash-wrapper"),
		P(Class("flash", "flash-"+kind), Role("alert"), Text(f.Message)),
	)
}

func heroStyle(image string) Attr {
	return StyleMap(Styles{"backgroundImage": "url('" + image + "')"})
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
