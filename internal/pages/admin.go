package pages

import (
	"strconv"

	. "github.com/samplecafe/cafe/el"
	"github.com/samplecafe/cafe/internal/content"
	"github.com/samplecafe/cafe/internal/routes"
)

// CSRFField is the form field carrying the session's CSRF token.
const CSRFField = "csrf_token"

// SectionLabels are the admin names of the editable sections.
var SectionLabels = map[string]string{
	content.SectionTop:          "トップ",
	content.SectionAccess:       "アクセス",
	content.SectionReservations: "予約",
	content.SectionAbout:        "ストーリー",
	content.SectionFeatures:     "ハイライト",
}

// Admin is the shared input of the signed-in admin pages.
type Admin struct {
	Path  string
	User  string
	CSRF  string
	Flash *Flash
}

func (a Admin) wrap(page RenderFunc, props Props) *VNode {
	if props == nil {
		props = Props{}
	}
	props["csrf"] = a.CSRF
	props["flash"] = a.Flash
	return Component(AdminLayout, Props{"path": a.Path, "user": a.User, "csrf": a.CSRF},
		Component(page, props),
	)
}

// Dashboard returns the dashboard element.
func (a Admin) Dashboard(sections []content.Section, stats content.Stats) *VNode {
	return a.wrap(AdminDashboard, Props{"sections": sections, "stats": stats})
}

// ContentEditor returns the editor for sec; a nil sec renders the not
// found view.
func (a Admin) ContentEditor(key string, sec *content.Section) *VNode {
	return a.wrap(AdminContentEditor, Props{"key": key, "section": sec})
}

// Gallery returns the gallery manager.
func (a Admin) Gallery(images []content.GalleryImage, maxBytes int64) *VNode {
	return a.wrap(AdminGallery, Props{"images": images, "maxBytes": maxBytes})
}

// Features returns the feature card manager.
func (a Admin) Features(features []content.Feature) *VNode {
	return a.wrap(AdminFeatures, Props{"features": features})
}

// Announcements returns the announcement manager.
func (a Admin) Announcements(items []content.Announcement) *VNode {
	return a.wrap(AdminAnnouncements, Props{"announcements": items})
}

// Login returns the login form. next is where a successful login goes.
func Login(flash *Flash, next string) *VNode {
	return Component(AdminLogin, Props{"flash": flash, "next": next})
}

// AdminLayout frames an admin page with the console navigation.
func AdminLayout(c *Cycle, props Props) *VNode {
	path := props.String("path")
	return Div(Class("admin-root"),
		Header(Class("admin-header"),
			Div(Class("container"),
				Div(Class("logo"), Text("Sample Cafe 管理画面")),
				Nav(
					Range(routes.AdminNav, func(l routes.Link, _ int) *VNode {
						active := l.Path == path
						return A(Key(l.Path), Href(l.Path), ClassIf(active, "active"),
							AttrIf(active, AriaCurrent("page")), Text(l.Label))
					}),
					Form(Class("logout-form"), Method("post"), Action(routes.AdminLogout),
						csrfInput(props.String("csrf")),
						Button(Type("submit"), Class("btn-outline logout"), Text("ログアウト")),
					),
				),
			),
		),
		Main(Class("admin-main"),
			Div(Class("container"), props.Children()),
		),
		Footer(Class("admin-footer"),
			Div(Class("container"),
				P(
					Text("本ページは「Sample Cafe」用の管理コンソールです。"),
					If(props.String("user") != "", Span(Class("admin-user"), Textf("ログイン中: %s", props.String("user")))),
				),
			),
		),
	)
}

// AdminLogin is the sign-in form.
func AdminLogin(c *Cycle, props Props) *VNode {
	return Div(Class("admin-root login-body"),
		Div(Class("login-card"),
			Div(Class("login-brand"),
				I(Class("fas fa-mug-hot"), AriaHidden(true)),
				H1(Text("Sample Cafe CMS")),
				P(Text("管理画面にログインしてコンテンツを更新できます。")),
			),
			Form(Class("login-form"), Method("post"), Action(routes.AdminLogin),
				If(props.String("next") != "", Input(Type("hidden"), Name("next"), Value(props.String("next")))),
				Label(For("username"), Text("ログインID")),
				Input(ID("username"), Name("username"), Type("text"), Required(), Autocomplete("username")),
				Label(For("password"), Text("パスワード")),
				Input(ID("password"), Name("password"), Type("password"), Required(), Autocomplete("current-password")),
				Button(Type("submit"), Class("btn-primary"), Text("ログイン")),
			),
			flashMessage(get[*Flash](props, "flash")),
			P(Class("login-note"),
				Text("初期ID: admin / 初期パスワード: admin1234"), Br(),
				Text("ログイン後に必ず変更してください。"),
			),
		),
	)
}

type statCard struct {
	label string
	value int
}

// AdminDashboard shows record counts and links to every section editor.
func AdminDashboard(c *Cycle, props Props) *VNode {
	sections := get[[]content.Section](props, "sections")
	stats := get[content.Stats](props, "stats")

	cards := []statCard{
		{"ギャラリー登録数", stats.GalleryCount},
		{"ハイライト登録数", stats.FeatureCount},
		{"お知らせ件数", stats.AnnouncementCount},
	}

	return Section(Class("dashboard"),
		Header(Class("dashboard-header"),
			H1(Text("ダッシュボード")),
			P(Text("管理画面から公式サイトのコンテンツを更新できます。")),
		),
		flashMessage(get[*Flash](props, "flash")),
		Div(Class("stats-grid"), Range(cards, func(s statCard, _ int) *VNode {
			return Article(Key(s.label), Class("stat-card"),
				Span(Class("label"), Text(s.label)),
				Span(Class("value"), Text(strconv.Itoa(s.value))),
			)
		})),
		Section(Class("content-section"),
			H2(Text("ページコンテンツ")),
			Div(Class("content-grid"), Range(sections, func(sec content.Section, _ int) *VNode {
				return Article(Key(sec.Key), Class("content-card"),
					H3(Text(orDefault(SectionLabels[sec.Key], sec.Key))),
					P(Class("content-summary"), Text(sec.Title+" — "+sec.Subtitle)),
					A(Class("btn-outline"), Href(routes.ContentPath(sec.Key)), Text("編集")),
				)
			})),
		),
		Section(Class("content-section"),
			H2(Text("クイックアクション")),
			Div(Class("quick-actions"),
				A(Href(routes.AdminGallery), Class("btn-primary"), Text("ギャラリー管理")),
				A(Href(routes.AdminFeatures), Class("btn-primary"), Text("ハイライト管理")),
				A(Href(routes.AdminAnnouncements), Class("btn-primary"), Text("お知らせ管理")),
			),
		),
	)
}

// AdminContentEditor edits one section's copy.
func AdminContentEditor(c *Cycle, props Props) *VNode {
	key := props.String("key")
	sec := get[*content.Section](props, "section")

	label := UseMemo(c, func() string {
		return orDefault(SectionLabels[key], key)
	}, Deps{key})

	if sec == nil {
		return Section(Class("form-section"),
			Header(
				H1(Text("セクションが見つかりません")),
				P(Text("URL を確認して再度お試しください。")),
			),
			A(Href(routes.AdminDashboard), Class("btn-outline"), Text("ダッシュボードへ戻る")),
		)
	}

	return Section(Class("form-section"),
		Header(
			H1(Textf("コンテンツ編集: %s", label)),
			P(Text("文章と画像URLを更新できます。デザインは固定されています。")),
		),
		flashMessage(get[*Flash](props, "flash")),
		Form(Class("form-grid"), Method("post"), Action(routes.ContentPath(key)),
			csrfInput(props.String("csrf")),
			Label(Text("タイトル"), Input(Name("title"), Value(sec.Title), Required())),
			Label(Text("サブタイトル"), Input(Name("subtitle"), Value(sec.Subtitle))),
			Label(Text("本文"), Textarea(Name("body"), Rows(6), Text(sec.Body))),
			Label(Text("ハイライト"), Input(Name("highlight"), Value(sec.Highlight))),
			Label(Text("背景・画像URL"),
				Input(Name("image"), Value(sec.Image)),
				Span(Class("form-hint"), Text("例: /static/images/hero.jpg または外部URL")),
			),
			Label(Text("追加情報"),
				Textarea(Name("extra_info"), Rows(4), Text(sec.ExtraInfo)),
				Span(Class("form-hint"), Text("キー=値形式で保存されます。セクションによって利用方法が異なります。")),
			),
			Div(Class("form-actions"),
				Button(Type("submit"), Class("btn-primary"), Text("保存")),
				A(Href(routes.AdminDashboard), Class("btn-outline"), Text("戻る")),
			),
		),
	)
}

// AdminGallery uploads and deletes gallery images.
func AdminGallery(c *Cycle, props Props) *VNode {
	images := get[[]content.GalleryImage](props, "images")
	csrf := props.String("csrf")
	maxMB := get[int64](props, "maxBytes") >> 20

	return Section(Class("form-section"),
		Header(
			H1(Text("ギャラリー管理")),
			P(Text("掲載画像をアップロードまたは削除できます。")),
		),
		flashMessage(get[*Flash](props, "flash")),
		Form(Class("upload-form"), Method("post"), Action(routes.AdminGallery), Enctype("multipart/form-data"),
			csrfInput(csrf),
			Input(Type("hidden"), Name("action"), Value("upload")),
			Label(Text("画像ファイル"),
				Input(Type("file"), Name("image"), Accept("image/png,image/jpeg,image/gif,image/webp"), Required()),
				If(maxMB > 0, Span(Class("form-hint"), Textf("%d MB まで", maxMB))),
			),
			Label(Text("キャプション"),
				Input(Name("caption"), Placeholder("例: シグネチャードリンク")),
			),
			Button(Type("submit"), Class("btn-primary"), Text("アップロード")),
		),
		Div(Class("gallery-admin-grid"),
			Range(images, func(img content.GalleryImage, _ int) *VNode {
				return Article(Key(img.ID), Class("gallery-admin-item"),
					Img(Src(img.FilePath), Alt(orDefault(img.Caption, "Gallery item"))),
					P(Text(orDefault(img.Caption, "キャプション未設定"))),
					deleteForm(routes.AdminGallery, csrf, "image_id", img.ID),
				)
			}),
			If(len(images) == 0, P(Class("empty-hint"), Text("まだ画像が登録されていません。"))),
		),
	)
}

// AdminFeatures adds and deletes feature cards. The icon field previews
// the chosen Font Awesome icon; admin.js keeps the preview in step with
// the field as the user types.
func AdminFeatures(c *Cycle, props Props) *VNode {
	features := get[[]content.Feature](props, "features")
	csrf := props.String("csrf")

	return Section(Class("form-section"),
		Header(
			H1(Text("ハイライト管理")),
			P(Text("紹介したい魅力ポイントを追加・削除できます。")),
		),
		flashMessage(get[*Flash](props, "flash")),
		Form(Class("form-grid"), Method("post"), Action(routes.AdminFeatures),
			csrfInput(csrf),
			Input(Type("hidden"), Name("action"), Value("add")),
			Label(Text("タイトル"), Input(Name("title"), Required())),
			Label(Text("説明"), Textarea(Name("description"), Rows(3), Required())),
			Label(Text("アイコン（Font Awesome）"),
				Input(Name("icon"), Placeholder("例: fa-leaf / fa-mug-hot / fa-music"),
					Data("icon-preview", "feature-icon-preview")),
				Span(Class("icon-preview"), ID("feature-icon-preview"),
					I(Class("fas", content.DefaultIcon), AriaHidden(true), Data("default-icon", content.DefaultIcon)),
				),
			),
			Button(Type("submit"), Class("btn-primary"), Text("追加")),
		),
		Div(Class("feature-admin-grid"),
			Range(features, func(f content.Feature, _ int) *VNode {
				return Div(Key(f.ID), Class("feature-admin-item"),
					I(Class("fas", f.Icon), AriaHidden(true)),
					Div(
						H3(Text(f.Title)),
						P(Text(f.Description)),
					),
					deleteForm(routes.AdminFeatures, csrf, "feature_id", f.ID),
				)
			}),
			If(len(features) == 0, P(Class("empty-hint"), Text("カードがまだありません。"))),
		),
	)
}

// AdminAnnouncements adds and deletes announcements.
func AdminAnnouncements(c *Cycle, props Props) *VNode {
	items := get[[]content.Announcement](props, "announcements")
	csrf := props.String("csrf")

	return Section(Class("form-section"),
		Header(
			H1(Text("お知らせ管理")),
			P(Text("最新情報を追加・削除できます。")),
		),
		flashMessage(get[*Flash](props, "flash")),
		Form(Class("form-grid"), Method("post"), Action(routes.AdminAnnouncements),
			csrfInput(csrf),
			Input(Type("hidden"), Name("action"), Value("add")),
			Label(Text("タイトル"), Input(Name("title"), Required())),
			Label(Text("本文"), Textarea(Name("content"), Rows(4), Required())),
			Button(Type("submit"), Class("btn-primary"), Text("追加")),
		),
		Div(Class("announcement-admin-list"),
			Range(items, func(a content.Announcement, _ int) *VNode {
				return Article(Key(a.ID), Class("announcement-admin-item"),
					Time_(Datetime(a.PublishedAt), Text(content.FormatDateTime(a.PublishedAt))),
					H3(Text(a.Title)),
					P(Text(a.Content)),
					deleteForm(routes.AdminAnnouncements, csrf, "announcement_id", a.ID),
				)
			}),
			If(len(items) == 0, P(Class("empty-hint"), Text("お知らせはまだありません。"))),
		),
	)
}

func csrfInput(token string) *VNode {
	return Input(Type("hidden"), Name(CSRFField), Value(token))
}

func deleteForm(action, csrf, field string, id int) *VNode {
	return Form(Method("post"), Action(action),
		csrfInput(csrf),
		Input(Type("hidden"), Name("action"), Value("delete")),
		Input(Type("hidden"), Name(field), Value(strconv.Itoa(id))),
		Button(Type("submit"), Class("btn-outline"), Text("削除")),
	)
}
