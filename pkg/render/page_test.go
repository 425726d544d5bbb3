package render

import (
	"errors"
	"strings"
	"testing"

	"github.com/samplecafe/cafe/pkg/dom"
)

var errTestWrite = errors.New("test write error")

type failingWriter struct {
	FailAt int
	Writes int
}

func (w *failingWriter) Write(p []byte) (int, error) {
	w.Writes++
	if w.Writes == w.FailAt {
		return 0, errTestWrite
	}
	return len(p), nil
}

func TestWritePage(t *testing.T) {
	body := dom.MustElement("div")
	body.AppendChild(dom.NewText("Hi & welcome"))

	var sb strings.Builder
	err := WritePage(&sb, Page{
		Title:       `Cafe "Sample"`,
		Meta:        []MetaTag{{Name: "description", Content: "a <cafe>"}},
		StyleSheets: []string{"/static/site.css"},
		Scripts:     []ScriptTag{{Src: "/live.js", Defer: true}},
		BodyClass:   "home",
		Body:        body,
		Container:   "root",
	})
	if err != nil {
		t.Fatal(err)
	}
	out := sb.String()

	for _, want := range []string{
		"<!DOCTYPE html>\n<html lang=\"en\">",
		"<title>Cafe &quot;Sample&quot;</title>",
		`<meta name="description" content="a &lt;cafe&gt;">`,
		`<link rel="stylesheet" href="/static/site.css">`,
		`<body class="home">`,
		`<div id="root">Hi &amp; welcome</div>`,
		`<script src="/live.js" defer></script>`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestWritePageWriteError(t *testing.T) {
	fw := &failingWriter{FailAt: 3}
	if err := WritePage(fw, Page{Title: "x"}); !errors.Is(err, errTestWrite) {
		t.Errorf("err = %v, want %v", err, errTestWrite)
	}
}
