package pages

import (
	"bytes"
	"strings"
	"testing"

	"github.com/samplecafe/cafe/internal/content"
	"github.com/samplecafe/cafe/internal/routes"
	"github.com/samplecafe/cafe/pkg/dom"
	"github.com/samplecafe/cafe/pkg/render"
	"github.com/samplecafe/cafe/pkg/vtest"
)

func testSnapshot() *content.Snapshot {
	return &content.Snapshot{
		Contents: map[string]content.Section{
			content.SectionTop: {Key: content.SectionTop, Title: "Welcome", Subtitle: "sub",
				Image: "/static/images/hero.svg", ExtraInfo: "signature=House blend"},
			content.SectionAccess: {Key: content.SectionAccess, Title: "Access",
				ExtraInfo: "住所=Somewhere\n電話=000|定休日=なし"},
			content.SectionReservations: {Key: content.SectionReservations, Title: "Book",
				ExtraInfo: "cta=Reserve now|link=https://example.com/book"},
			content.SectionAbout:    {Key: content.SectionAbout, Title: "About", ExtraInfo: "team=Owner, Barista,"},
			content.SectionFeatures: {Key: content.SectionFeatures, Title: "Highlights"},
		},
		Features: []content.Feature{
			{ID: 1, Title: "Pairing", Description: "Desserts", Icon: "fa-leaf"},
		},
		Gallery: []content.GalleryImage{
			{ID: 1, FilePath: "/a.svg", Caption: "Espresso"},
			{ID: 2, FilePath: "/b.svg"},
		},
		Announcements: []content.Announcement{
			{ID: 1, Title: "New beans", Content: "In stock", PublishedAt: "2024-05-01T09:00:00"},
		},
	}
}

func mount(t *testing.T, site Site) *vtest.Harness {
	t.Helper()
	return vtest.Mount(t, site.Element())
}

func TestAppHomeAndTitle(t *testing.T) {
	var title string
	h := mount(t, Site{Path: "/", Snapshot: testSnapshot(), OnTitle: func(s string) { title = s }, Year: 2024})

	if title != routes.Title("/") {
		t.Errorf("title = %q, want %q", title, routes.Title("/"))
	}
	h.ExpectContains("Welcome", "House blend", "New beans", "2024-05-01 09:00", "© 2024 Sample Cafe")
	nav := h.ByClass("main-nav")
	if nav == nil {
		t.Fatal("no nav")
	}
	if got := len(nav.ElementsByTag("a")); got != len(routes.NavLinks) {
		t.Errorf("nav links = %d, want %d", got, len(routes.NavLinks))
	}
	if !vtest.HasClass(h.ByClass("page-loader"), "hide") {
		t.Error("loader should be hidden once content is present")
	}
}

func TestAppNotFound(t *testing.T) {
	var title string
	h := mount(t, Site{Path: "/menu", Snapshot: testSnapshot(), OnTitle: func(s string) { title = s }})

	if title != routes.NotFoundTitle {
		t.Errorf("title = %q", title)
	}
	h.ExpectContains("ページが見つかりません")
}

func TestAppLoadingAndError(t *testing.T) {
	h := mount(t, Site{Path: "/access"})
	h.ExpectContains("アクセス情報を読み込み中です。")
	if loader := h.ByClass("page-loader"); loader == nil || vtest.HasClass(loader, "hide") {
		t.Error("loader should be visible without content")
	}

	h = mount(t, Site{Path: "/", Snapshot: testSnapshot(), Err: errString("store offline")})
	h.ExpectContains("エラーが発生しました", "store offline")
}

type errString string

func (e errString) Error() string { return string(e) }

func TestNavToggle(t *testing.T) {
	h := mount(t, Site{Path: "/", Snapshot: testSnapshot()})

	if v := vtest.Attr(h.ByClass("nav-toggle"), "aria-expanded"); v != "false" {
		t.Fatalf("aria-expanded = %q, want false", v)
	}
	h.Click(h.ByClass("nav-toggle"))

	if !vtest.HasClass(h.ByClass("main-nav"), "open") {
		t.Error("nav not open after toggle")
	}
	if !vtest.HasClass(h.ByClass("site"), "nav-open") {
		t.Error("site wrapper missing nav-open")
	}
	if v := vtest.Attr(h.ByClass("nav-toggle"), "aria-expanded"); v != "true" {
		t.Errorf("aria-expanded = %q, want true", v)
	}

	h.Click(h.ByClass("nav-toggle"))
	if vtest.HasClass(h.ByClass("main-nav"), "open") {
		t.Error("nav still open after second toggle")
	}
}

func TestNavClosesOnPathChange(t *testing.T) {
	h := mount(t, Site{Path: "/", Snapshot: testSnapshot()})
	h.Click(h.ByClass("nav-toggle"))
	if !vtest.HasClass(h.ByClass("main-nav"), "open") {
		t.Fatal("nav not open")
	}

	h.Rerender(Site{Path: "/gallery", Snapshot: testSnapshot()}.Element())
	if vtest.HasClass(h.ByClass("main-nav"), "open") {
		t.Error("nav still open after navigating")
	}
}

func TestGalleryLightbox(t *testing.T) {
	h := mount(t, Site{Path: "/gallery", Snapshot: testSnapshot()})

	if h.ByClass("lightbox") != nil {
		t.Fatal("lightbox open before any click")
	}
	items := h.AllByClass("masonry-item")
	if len(items) != 2 {
		t.Fatalf("masonry items = %d, want 2", len(items))
	}
	if alt := vtest.Attr(items[1].ElementsByTag("img")[0], "alt"); alt != "ギャラリー画像" {
		t.Errorf("fallback alt = %q", alt)
	}

	h.Click(items[1])
	box := h.ByClass("lightbox")
	if box == nil {
		t.Fatal("lightbox not shown")
	}
	if !strings.Contains(box.TextContent(), "2 / 2") {
		t.Errorf("lightbox caption = %q", box.TextContent())
	}

	h.Click(h.ByClass("lightbox-close"))
	if h.ByClass("lightbox") != nil {
		t.Error("lightbox still open after close")
	}
}

func TestAccessInfoKeepsOrder(t *testing.T) {
	h := mount(t, Site{Path: "/access", Snapshot: testSnapshot()})

	grid := h.ByClass("info-grid")
	if grid == nil {
		t.Fatal("no info grid")
	}
	var labels []string
	for _, n := range grid.FindAll(func(n *dom.Node) bool { return vtest.HasClass(n, "info-label") }) {
		labels = append(labels, n.TextContent())
	}
	if strings.Join(labels, ",") != "住所,電話,定休日" {
		t.Errorf("labels = %v", labels)
	}
}

func TestReservationsAndAbout(t *testing.T) {
	h := mount(t, Site{Path: "/reservations", Snapshot: testSnapshot()})
	cta := vtest.ByClass(h.ByClass("reservation-card"), "btn-primary")
	if cta == nil {
		t.Fatal("no reservation button")
	}
	if href := vtest.Attr(cta, "href"); href != "https://example.com/book" {
		t.Errorf("cta href = %q", href)
	}
	if cta.TextContent() != "Reserve now" {
		t.Errorf("cta text = %q", cta.TextContent())
	}

	h = mount(t, Site{Path: "/about", Snapshot: testSnapshot()})
	story := h.ByClass("story-card")
	if story == nil {
		t.Fatal("no story card")
	}
	if got := len(story.ElementsByTag("li")); got != 2 {
		t.Errorf("team members = %d, want 2", got)
	}
}

func TestAdminPages(t *testing.T) {
	a := Admin{Path: routes.AdminFeatures, User: "admin", CSRF: "tok", Flash: &Flash{Kind: "success", Message: "saved"}}

	h := vtest.Mount(t, a.Features([]content.Feature{{ID: 7, Title: "Card", Description: "d", Icon: "fa-music"}}))
	tokens := h.Container.FindAll(func(n *dom.Node) bool { return vtest.Attr(n, "name") == CSRFField })
	if len(tokens) < 3 {
		t.Errorf("csrf inputs = %d, want logout, add and delete forms", len(tokens))
	}
	for _, n := range tokens {
		if v := vtest.Attr(n, "value"); v != "tok" {
			t.Errorf("csrf value = %q", v)
		}
	}
	if id := h.ByName("feature_id"); id == nil || vtest.Attr(id, "value") != "7" {
		t.Error("delete form missing feature_id")
	}
	if f := h.ByClass("flash"); f == nil || !vtest.HasClass(f, "flash-success") || f.TextContent() != "saved" {
		t.Error("flash not rendered")
	}
	active := h.ByClass("active")
	if active == nil || vtest.Attr(active, "aria-current") != "page" || vtest.Attr(active, "href") != routes.AdminFeatures {
		t.Error("active nav link not marked")
	}
	if u := h.ByClass("admin-user"); u == nil || !strings.Contains(u.TextContent(), "ログイン中: admin") {
		t.Error("signed-in user not shown")
	}

	h = vtest.Mount(t, a.ContentEditor("menu", nil))
	if !strings.Contains(h.Container.TextContent(), "セクションが見つかりません") {
		t.Error("editor for unknown section should render not found")
	}

	sec := &content.Section{Key: content.SectionAbout, Title: "About <us>"}
	h = vtest.Mount(t, a.ContentEditor(sec.Key, sec))
	if !strings.Contains(h.Container.TextContent(), "コンテンツ編集: ストーリー") {
		t.Error("editor heading missing section label")
	}
	if title := h.ByName("title"); title == nil || vtest.Attr(title, "value") != "About <us>" {
		t.Error("title input not prefilled")
	}
	h.ExpectContains("About &lt;us&gt;")
}

func TestAdminFeaturesIconPreview(t *testing.T) {
	h := vtest.Mount(t, Admin{CSRF: "x"}.Features(nil))

	field := h.ByName("icon")
	if field == nil {
		t.Fatal("no icon field")
	}
	target := vtest.Attr(field, "data-icon-preview")
	preview := h.Container.Find(func(n *dom.Node) bool { return vtest.Attr(n, "id") == target })
	if target == "" || preview == nil || !vtest.HasClass(preview, "icon-preview") {
		t.Fatalf("icon field does not point at the preview: %s", h.HTML())
	}
	i := preview.ElementsByTag("i")[0]
	if !vtest.HasClass(i, content.DefaultIcon) || vtest.Attr(i, "data-default-icon") != content.DefaultIcon {
		t.Errorf("preview = %s", preview.OuterHTML())
	}
	if n := field.ListenerCount("change"); n != 0 {
		t.Errorf("icon field has %d change listeners; admin pages are not live", n)
	}
}

func TestDocument(t *testing.T) {
	body := dom.MustElement("div")
	body.AppendChild(dom.NewText("hi"))

	var buf bytes.Buffer
	if err := render.WritePage(&buf, Document("T & Co", body)); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{`<html lang="ja">`, "<title>T &amp; Co</title>", `<div id="root">hi</div>`, "/static/css/style.css"} {
		if !strings.Contains(out, want) {
			t.Errorf("document missing %s:\n%s", want, out)
		}
	}

	buf.Reset()
	if err := render.WritePage(&buf, AdminDocument("Admin", body)); err != nil {
		t.Fatal(err)
	}
	admin := buf.String()
	if !strings.Contains(admin, `<body class="admin">`) || !strings.Contains(admin, "admin.css") {
		t.Errorf("admin document:\n%s", admin)
	}
	if !strings.Contains(admin, "/static/js/admin.js") || strings.Contains(admin, "live.js") {
		t.Errorf("admin document scripts:\n%s", admin)
	}
}
