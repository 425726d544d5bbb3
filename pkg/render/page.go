package render

import (
	"fmt"
	"io"

	"github.com/samplecafe/cafe/pkg/dom"
)

// Page is a complete HTML document around a rendered body.
type Page struct {
	// Lang defaults to "en".
	Lang  string
	Title string
	Meta  []MetaTag
	// StyleSheets are linked in order.
	StyleSheets []string
	// Styles are inlined as <style> blocks.
	Styles  []string
	Scripts []ScriptTag
	// BodyClass is set on the body element when non-empty.
	BodyClass string
	Body      *dom.Node
	// Container, when set, writes Body's children inside <div id="...">
	// instead of Body itself.
	Container string
}

// MetaTag represents a meta element in the document head.
type MetaTag struct {
	Name     string
	Property string
	Content  string
}

// ScriptTag represents a script element at the end of the body.
type ScriptTag struct {
	Src    string
	Defer  bool
	Module bool
	Inline string
}

// WritePage writes the document. Text and attribute values are escaped;
// Styles and inline scripts are written verbatim.
func WritePage(w io.Writer, p Page) error {
	ew := &errWriter{w: w}

	lang := p.Lang
	if lang == "" {
		lang = "en"
	}
	ew.printf("<!DOCTYPE html>\n<html lang=\"%s\">\n<head>\n", dom.EscapeAttr(lang))
	ew.printf("  <meta charset=\"utf-8\">\n")
	ew.printf("  <meta name=\"viewport\" content=\"width=device-width, initial-scale=1\">\n")
	if p.Title != "" {
		ew.printf("  <title>%s</title>\n", dom.EscapeHTML(p.Title))
	}
	for _, m := range p.Meta {
		switch {
		case m.Property != "":
			ew.printf("  <meta property=\"%s\" content=\"%s\">\n", dom.EscapeAttr(m.Property), dom.EscapeAttr(m.Content))
		case m.Name != "":
			ew.printf("  <meta name=\"%s\" content=\"%s\">\n", dom.EscapeAttr(m.Name), dom.EscapeAttr(m.Content))
		}
	}
	for _, href := range p.StyleSheets {
		ew.printf("  <link rel=\"stylesheet\" href=\"%s\">\n", dom.EscapeAttr(href))
	}
	for _, css := range p.Styles {
		ew.printf("  <style>%s</style>\n", css)
	}
	ew.printf("</head>\n")

	if p.BodyClass != "" {
		ew.printf("<body class=\"%s\">\n", dom.EscapeAttr(p.BodyClass))
	} else {
		ew.printf("<body>\n")
	}
	if p.Container != "" {
		ew.printf("<div id=\"%s\">", dom.EscapeAttr(p.Container))
	}
	if p.Body != nil && ew.err == nil {
		if p.Container != "" {
			for _, c := range p.Body.Children() {
				ew.err = c.WriteHTML(w)
				if ew.err != nil {
					break
				}
			}
		} else {
			ew.err = p.Body.WriteHTML(w)
		}
	}
	if p.Container != "" {
		ew.printf("</div>")
	}
	ew.printf("\n")

	for _, s := range p.Scripts {
		ew.printf("  <script")
		if s.Src != "" {
			ew.printf(" src=\"%s\"", dom.EscapeAttr(s.Src))
		}
		if s.Module {
			ew.printf(" type=\"module\"")
		}
		if s.Defer {
			ew.printf(" defer")
		}
		ew.printf(">%s</script>\n", s.Inline)
	}
	ew.printf("</body>\n</html>\n")
	return ew.err
}

type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) printf(format string, args ...any) {
	if e.err != nil {
		return
	}
	_, e.err = fmt.Fprintf(e.w, format, args...)
}
