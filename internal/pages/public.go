package pages

import (
	"strconv"
	"strings"

	. "github.com/samplecafe/cafe/el"
	"github.com/samplecafe/cafe/internal/content"
	"github.com/samplecafe/cafe/internal/routes"
)

type metric struct {
	count int
	label string
}

var homeMetrics = []metric{
	{680, "今月の保存数"},
	{120, "UGCストーリー"},
	{48, "コラボ投稿"},
}

// HomePage is the landing page.
func HomePage(c *Cycle, props Props) *VNode {
	sec := get[*content.Section](props, "content")
	if sec == nil {
		return loading("トップページを読み込み中です。")
	}
	features := get[[]content.Feature](props, "features")
	gallery := get[[]content.GalleryImage](props, "gallery")
	announcements := get[[]content.Announcement](props, "announcements")

	extra := content.ParseExtraInfo(sec.ExtraInfo)
	signature := orDefault(extra["signature"], "季節ごとに変わるおすすめメニューをご用意しています。")
	highlights := gallery
	if len(highlights) > 4 {
		highlights = highlights[:4]
	}

	return Fragment(
		Section(Class("hero"), heroStyle(sec.Image), Data("animate", ""),
			Div(Class("hero-content container"),
				Span(Class("hero-badge"), Text("Weekend Lounge")),
				H1(Text(sec.Title)),
				P(Text(sec.Subtitle)),
				Div(Class("hero-highlight"), Text(sec.Highlight)),
				A(Class("btn-primary"), Href(routes.Reservations), Text("席を予約する")),
			),
		),
		Section(Class("intro container"),
			Div(Class("intro-text"),
				H2(Text("おもてなしのデモサイト")),
				P(Text(sec.Body)),
			),
			Div(Class("intro-card"),
				H3(Text("おすすめの一杯・一皿")),
				P(Text(signature)),
				A(Class("btn-outline"), Href(routes.Highlights), Text("おすすめを見る")),
			),
		),
		Section(Class("social-proof"), Data("animate", ""),
			Div(Class("container"),
				sectionHeader("お知らせ", "最新の営業情報やイベント情報などをこちらでご案内します。"),
				Div(Class("metrics"), Range(homeMetrics, func(m metric, _ int) *VNode {
					return Div(Key(m.label), Class("card"),
						Strong(Data("count", strconv.Itoa(m.count)), Text(strconv.Itoa(m.count))),
						Span(Text(m.label)),
					)
				})),
			),
		),
		Section(Class("feature-grid container"), Data("animate", ""),
			sectionHeader("ハイライト", "お店らしさが伝わるポイントをご紹介します。"),
			featureGrid(features),
		),
		Section(Class("announcements"), Data("animate", ""),
			Div(Class("container"),
				sectionHeader("News & Journal", "最新のイベントや限定メニューをチェックして、来店前からワクワクをシェア。"),
				announcementGrid(announcements),
			),
		),
		Section(Class("insta-focus"), Data("animate", ""),
			Div(Class("container"),
				Div(Class("insta-header"),
					Div(
						P(Class("hero-label"), Text("Instagram Reels")),
						H2(Text("Colorful Moments")),
					),
					Div(Class("insta-handle"),
						I(Class("fab fa-instagram"), AriaHidden(true)),
						Span(Text("@samplecafe")),
					),
					A(Class("btn-primary"), Href("https://www.instagram.com/"), Target("_blank"), Rel("noreferrer"),
						Text("フォローして最新情報を受け取る")),
				),
				Div(Class("insta-grid"), Range(highlights, func(img content.GalleryImage, _ int) *VNode {
					return Div(Key(img.ID), Class("insta-card"),
						Img(Src(img.FilePath), Alt(orDefault(img.Caption, "Instagram highlight"))),
						P(Text(orDefault(img.Caption, "Daily mood"))),
					)
				})),
			),
		),
		Section(Class("gallery-preview"), Data("animate", ""),
			Div(Class("container"),
				sectionHeader("ギャラリー", "店内の雰囲気やメニューの写真をご覧いただけます。"),
				Div(Class("gallery-grid"), Range(gallery, func(img content.GalleryImage, _ int) *VNode {
					return galleryFigure(img)
				})),
				Div(Class("cta-center"),
					A(Class("btn-outline"), Href(routes.Gallery), Text("ギャラリーをもっと見る")),
				),
			),
		),
		Section(Class("cta-banner"), heroStyle("/static/images/cta.svg"),
			Div(Class("overlay")),
			Div(Class("container"),
				H2(Text("あなたのお店のコンセプト設計に。")),
				P(Text("このデモCMSを使って、ストーリーや見せ方を試しながら作り込めます。")),
				A(Class("btn-primary"), Href(routes.AdminLogin), Text("管理画面にログイン")),
			),
		),
	)
}

// AccessPage shows opening hours, the extra_info pairs and a map.
func AccessPage(c *Cycle, props Props) *VNode {
	sec := get[*content.Section](props, "content")
	if sec == nil {
		return loading("アクセス情報を読み込み中です。")
	}
	blocks := orderedExtraInfo(sec.ExtraInfo)

	return Fragment(
		pageHero(sec, false),
		Section(Class("page-section container two-column"), Data("animate", ""),
			Div(
				H2(Text("ご来店案内")),
				P(Text(sec.Body)),
				Div(Class("info-block"),
					H3(Text("営業時間")),
					P(Text(sec.Highlight)),
				),
				If(len(blocks) > 0, Div(Class("info-grid"), Range(blocks, func(kv [2]string, _ int) *VNode {
					return Div(Key(kv[0]),
						Span(Class("info-label"), Text(kv[0])),
						Span(Class("info-value"), Text(kv[1])),
					)
				}))),
			),
			Div(
				H2(Text("地図")),
				Div(Class("map-wrapper"),
					Iframe(TitleAttr("Sample Cafe map"), Src(mapEmbedURL), Allowfullscreen(), Loading("lazy")),
				),
			),
		),
		accentSection("アクセスのポイント", "最寄り駅からの道順や目印、駐車場の有無など、ご来店に役立つ情報をこちらに記載してください。"),
	)
}

const mapEmbedURL = "https://www.google.com/maps/embed?pb=!1m18!1m12!1m3!1d3240.897597392088!2d139.76712441557174!3d35.68123618019478!2m3!1f0!2f0!3f0!3m2!1i1024!2i768!4f13.1!3m3!1m2!1s0x0%3A0x0!2zMzXCsDQwJzUzLjQiTiAxMznCsDQ2JzAxLjciRQ!5e0!3m2!1sja!2sjp!4v1615973912761!5m2!1sja!2sjp"

// ReservationsPage links to the booking system named in extra_info.
func ReservationsPage(c *Cycle, props Props) *VNode {
	sec := get[*content.Section](props, "content")
	if sec == nil {
		return loading("予約情報を読み込み中です。")
	}
	extra := content.ParseExtraInfo(sec.ExtraInfo)

	return Fragment(
		pageHero(sec, true),
		Section(Class("page-section container two-column"),
			Div(
				H2(Text("ご予約案内")),
				P(Text(sec.Body)),
				Div(Class("info-block"),
					H3(Text("当店からのお約束")),
					P(Text(sec.Highlight)),
				),
			),
			Div(Class("reservation-card"),
				H3(Text("ご予約はこちら")),
				A(Class("btn-primary"), Href(orDefault(extra["link"], "#")), Target("_blank"), Rel("noreferrer"),
					Text(orDefault(extra["cta"], "予約ページへ"))),
				P(Class("note"), Text("予約サイトやお問い合わせフォームへのリンクを設定してください。")),
			),
		),
		Section(Class("page-section accent"),
			Div(Class("container split"),
				Div(
					H2(Text("貸切・団体予約について")),
					P(Text("貸切パーティー、テイスティング会、企業様のご利用など、団体予約に関するご案内や、ご希望に合わせたプラン内容をここにご記載ください。")),
				),
				Div(
					H2(Text("ご予約時のお願い")),
					Ul(Class("bullet-list"),
						Li(Text("お席の時間制や事前のお預かり金などがある場合は、その内容を明記してください。")),
						Li(Text("キャンセル・人数変更の期限や方法についてわかりやすくご案内してください。")),
						Li(Text("アレルギーや記念日の演出など、事前にご相談いただきたい事項を記載すると安心です。")),
					),
				),
			),
		),
	)
}

// GalleryPage is the full gallery with a lightbox for the selected image.
func GalleryPage(c *Cycle, props Props) *VNode {
	gallery := get[[]content.GalleryImage](props, "gallery")
	selected, setSelected := UseState(c, -1)

	captions := UseMemo(c, func() []string {
		out := make([]string, len(gallery))
		for i, img := range gallery {
			out[i] = orDefault(img.Caption, "ギャラリー画像")
		}
		return out
	}, Deps{gallery})

	if selected >= len(gallery) {
		selected = -1
	}

	var body *VNode
	if len(gallery) == 0 {
		body = P(Text("ギャラリー画像はまだ登録されていません。"))
	} else {
		body = Div(Class("masonry-grid"), Range(gallery, func(img content.GalleryImage, i int) *VNode {
			return Figure(Key(img.ID), Class("masonry-item"), OnClick(func() { setSelected.Set(i) }),
				Img(Src(img.FilePath), Alt(captions[i])),
				If(img.Caption != "", Figcaption(Text(img.Caption))),
			)
		}))
	}

	return Fragment(
		Section(Class("page-hero small"), heroStyle("/static/images/gallery-banner.svg"), Data("animate", ""),
			Div(Class("container"),
				H1(Text("ギャラリー")),
				P(Text("写真でお店の雰囲気や体験をお届けします。")),
			),
		),
		Section(Class("page-section container"), Data("animate", ""), body),
		When(selected >= 0, func() *VNode {
			img := gallery[selected]
			return Div(Class("lightbox"), Role("dialog"), AriaModal(true), AriaLabel(captions[selected]),
				Figure(
					Img(Src(img.FilePath), Alt(captions[selected])),
					Figcaption(Textf("%d / %d  %s", selected+1, len(gallery), img.Caption)),
				),
				Button(Class("lightbox-close"), Type("button"), AriaLabel("閉じる"),
					OnClick(func() { setSelected.Set(-1) }),
					Text("×"),
				),
			)
		}),
		accentSection("ビジュアルの活用アイデア", "季節限定メニューやイベントの様子など、さまざまなストーリーを写真で発信してください。"),
	)
}

// AboutPage tells the café's story and lists the team from extra_info.
func AboutPage(c *Cycle, props Props) *VNode {
	sec := get[*content.Section](props, "content")
	if sec == nil {
		return loading("ストーリーを読み込み中です。")
	}
	announcements := get[[]content.Announcement](props, "announcements")

	var team []string
	for _, m := range strings.Split(content.ParseExtraInfo(sec.ExtraInfo)["team"], ",") {
		if m = strings.TrimSpace(m); m != "" {
			team = append(team, m)
		}
	}

	staff := P(Text("お店を支える主なスタッフや、関わっている方々を紹介してください。"))
	if len(team) > 0 {
		staff = Ul(Range(team, func(m string, _ int) *VNode { return Li(Key(m), Text(m)) }))
	}

	return Fragment(
		pageHero(sec, false),
		Section(Class("page-section container two-column"), Data("animate", ""),
			Div(
				H2(Text("私たちのストーリー")),
				P(Text(sec.Body)),
				Div(Class("info-block"),
					H3(Text("コンセプト")),
					P(Text(sec.Highlight)),
				),
			),
			Div(Class("story-card"),
				H3(Text("スタッフ")),
				staff,
			),
		),
		Section(Class("page-section container"), Data("animate", ""),
			sectionHeader("お知らせ・メディア掲載", "メディア掲載、コラボ企画、最近のお知らせなどをこちらに掲載できます。"),
			announcementGrid(announcements),
		),
	)
}

// FeaturesPage lists every feature card.
func FeaturesPage(c *Cycle, props Props) *VNode {
	sec := get[*content.Section](props, "content")
	if sec == nil {
		return loading("ハイライトを読み込み中です。")
	}
	features := get[[]content.Feature](props, "features")

	return Fragment(
		pageHero(sec, false),
		Section(Class("page-section container"), Data("animate", ""),
			Div(Class("intro-card"),
				H3(Text(orDefault(sec.Highlight, "今日の気分に寄り添う一杯を。"))),
				P(Text(sec.Body)),
			),
			Div(Class("feature-grid"), featureGrid(features)),
		),
		accentSection("ご活用アイデア", "季節のおすすめや限定メニューなど、自由にカードを追加してブランドの世界観を伝えてください。"),
	)
}

// NotFoundPage is rendered for paths without a route.
func NotFoundPage(c *Cycle, props Props) *VNode {
	return Section(Class("page-section container"),
		H1(Text("ページが見つかりません")),
		P(Text("指定されたページは存在しないか、移動した可能性があります。")),
		A(Class("btn-primary"), Href(routes.Home), Text("ホームに戻る")),
	)
}

func sectionHeader(title, lead string) *VNode {
	return Header(Class("section-header"),
		H2(Text(title)),
		P(Text(lead)),
	)
}

func pageHero(sec *content.Section, overlay bool) *VNode {
	return Section(Class("page-hero"), heroStyle(sec.Image), Data("animate", ""),
		If(overlay, Div(Class("overlay"))),
		Div(Class("container"),
			H1(Text(sec.Title)),
			P(Text(sec.Subtitle)),
		),
	)
}

func accentSection(title, body string) *VNode {
	return Section(Class("page-section accent"), Data("animate", ""),
		Div(Class("container"),
			H2(Text(title)),
			P(Text(body)),
		),
	)
}

func featureGrid(features []content.Feature) *VNode {
	return Div(Class("grid"), Range(features, func(f content.Feature, _ int) *VNode {
		return Div(Key(f.ID), Class("feature-card"),
			I(Class("fas", f.Icon), AriaHidden(true)),
			H3(Text(f.Title)),
			P(Text(f.Description)),
		)
	}))
}

func announcementGrid(items []content.Announcement) *VNode {
	return Div(Class("announcement-grid"), Range(items, func(a content.Announcement, _ int) *VNode {
		return Article(Key(a.ID), Class("announcement-card"),
			Time_(Datetime(a.PublishedAt), Text(content.FormatDateTime(a.PublishedAt))),
			H3(Text(a.Title)),
			P(Text(a.Content)),
		)
	}))
}

func galleryFigure(img content.GalleryImage) *VNode {
	return Figure(Key(img.ID),
		Img(Src(orDefault(img.ThumbPath, img.FilePath)), Alt(orDefault(img.Caption, "ギャラリー画像")), Loading("lazy")),
		If(img.Caption != "", Figcaption(Text(img.Caption))),
	)
}

// orderedExtraInfo keeps the pairs in the order they were written, which
// a map would lose.
func orderedExtraInfo(text string) [][2]string {
	parsed := content.ParseExtraInfo(text)
	var out [][2]string
	seen := make(map[string]bool)
	for _, line := range strings.FieldsFunc(text, func(r rune) bool { return r == '\n' || r == '|' }) {
		key, _, ok := strings.Cut(line, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, [2]string{key, parsed[key]})
	}
	return out
}
