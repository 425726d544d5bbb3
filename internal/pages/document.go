package pages

import (
	"github.com/samplecafe/cafe/pkg/dom"
	"github.com/samplecafe/cafe/pkg/render"
)

// ContainerID is the id of the element pages are mounted in.
const ContainerID = "root"

var siteStyleSheets = []string{
	"https://fonts.googleapis.com/css2?family=Noto+Sans+JP:wght@400;500;700&family=Playfair+Display:wght@600&display=swap",
	"https://cdnjs.cloudflare.com/ajax/libs/font-awesome/6.5.1/css/all.min.css",
	"/static/css/style.css",
}

// Document wraps a rendered container in the site's HTML shell.
func Document(title string, body *dom.Node) render.Page {
	return render.Page{
		Lang:  "ja",
		Title: title,
		Meta: []render.MetaTag{
			{Name: "description", Content: "Sample Cafe の公式サイト。アクセス、ご予約、ギャラリー、お知らせ。"},
			{Property: "og:title", Content: title},
			{Property: "og:type", Content: "website"},
		},
		StyleSheets: siteStyleSheets,
		Scripts: []render.ScriptTag{
			{Src: "/static/js/site.js", Defer: true},
			{Src: "/static/live.js", Defer: true},
		},
		Body:      body,
		Container: ContainerID,
	}
}

// AdminDocument is Document for the admin console.
func AdminDocument(title string, body *dom.Node) render.Page {
	p := Document(title, body)
	p.Meta = []render.MetaTag{{Name: "robots", Content: "noindex"}}
	p.StyleSheets = append(append([]string(nil), siteStyleSheets...), "/static/css/admin.css")
	p.Scripts = []render.ScriptTag{{Src: "/static/js/admin.js", Defer: true}}
	p.BodyClass = "admin"
	return p
}
