package pages

import (
	"strconv"

	. "github.com/samplecafe/cafe/el"
	"github.com/samplecafe/cafe/internal/content"
	"github.com/samplecafe/cafe/internal/routes"
)

// App is the public site: header, the page for the current path, footer.
func App(c *Cycle, props Props) *VNode {
	path := props.String("path")
	snap := get[*content.Snapshot](props, "snapshot")
	onTitle := get[func(string)](props, "onTitle")
	errMsg := props.String("error")

	navOpen, setNavOpen := UseState(c, false)

	UseEffect(c, func() Cleanup {
		setNavOpen.Set(false)
		return nil
	}, Deps{path})

	UseEffect(c, func() Cleanup {
		if onTitle != nil {
			onTitle(routes.Title(path))
		}
		return nil
	}, Deps{path})

	var body *VNode
	if errMsg != "" {
		body = Component(ErrorSection, Props{"message": errMsg})
	} else {
		body = page(path, snap)
	}

	return Div(Class("site"), ClassIf(navOpen, "nav-open"),
		Component(PageLoader, Props{"hidden": snap != nil}),
		Component(SiteHeader, Props{
			"links":   routes.NavLinks,
			"navOpen": navOpen,
			"onToggleNav": func() {
				setNavOpen.Update(func(open bool) bool { return !open })
			},
		}),
		Main(body),
		Component(SiteFooter, Props{"year": get[int](props, "year")}),
	)
}

func page(path string, snap *content.Snapshot) *VNode {
	if snap == nil {
		snap = &content.Snapshot{}
	}
	section := func(key string) *content.Section {
		if s, ok := snap.Contents[key]; ok {
			return &s
		}
		return nil
	}

	switch path {
	case routes.Home:
		return Component(HomePage, Props{
			"content":       section(content.SectionTop),
			"features":      snap.Features,
			"gallery":       snap.Gallery,
			"announcements": snap.Announcements,
		})
	case routes.Access:
		return Component(AccessPage, Props{"content": section(content.SectionAccess)})
	case routes.Reservations:
		return Component(ReservationsPage, Props{"content": section(content.SectionReservations)})
	case routes.Gallery:
		return Component(GalleryPage, Props{"gallery": snap.Gallery})
	case routes.About:
		return Component(AboutPage, Props{
			"content":       section(content.SectionAbout),
			"announcements": snap.Announcements,
		})
	case routes.Highlights:
		return Component(FeaturesPage, Props{
			"content":  section(content.SectionFeatures),
			"features": snap.Features,
		})
	}
	return Component(NotFoundPage, nil)
}

// SiteHeader renders the brand, the nav links and the menu toggle.
func SiteHeader(c *Cycle, props Props) *VNode {
	links := get[[]routes.Link](props, "links")
	navOpen := get[bool](props, "navOpen")
	onToggle := get[func()](props, "onToggleNav")

	return Header(Class("site-header"),
		Div(Class("header-inner container"),
			A(Class("brand"), Href(routes.Home),
				Text("Sample Cafe"),
				Span(Text("URBAN SLOW COFFEE")),
			),
			Nav(Class("main-nav"), ClassIf(navOpen, "open"),
				Ul(Range(links, func(l routes.Link, _ int) *VNode {
					return Li(Key(l.Path), Class("nav-item"), A(Href(l.Path), Text(l.Label)))
				})),
			),
			A(Class("nav-cta"), Href(routes.Reservations),
				I(Class("fas fa-calendar-alt"), AriaHidden(true)),
				Span(Text("席を予約")),
			),
			Button(Class("nav-toggle"), Type("button"),
				AriaExpanded(navOpen),
				AriaLabel("メニューを開閉"),
				OnClick(onToggle),
				Span(), Span(), Span(),
			),
		),
	)
}

// SiteFooter renders contact details and the copyright line.
func SiteFooter(c *Cycle, props Props) *VNode {
	year := get[int](props, "year")
	return Footer(Class("site-footer"),
		Div(Class("container footer-grid"),
			Div(
				P(Class("hero-label"), Text("Sample Cafe")),
				P(Text("一杯ごとに、ちいさなひと休みを。")),
			),
			Div(
				P(Class("hero-label"), Text("Contact")),
				A(Href("mailto:demo@example.com"), Text("demo@example.com")),
			),
			Div(
				P(Class("hero-label"), Text("Visit")),
				P(Text("Open daily / 09:00-22:00")),
			),
		),
		Div(Class("container footer-meta"),
			Span(Text("© "+strconv.Itoa(year)+" Sample Cafe")),
			Span(Text("Go Server-Rendered Experience")),
		),
	)
}

// PageLoader is the splash overlay shown until content has loaded.
func PageLoader(c *Cycle, props Props) *VNode {
	hidden := get[bool](props, "hidden")
	return Div(Class("page-loader"), ClassIf(hidden, "hide"), AriaHidden(hidden),
		Div(Class("loader-content"),
			Div(Class("loader-logo"), I(Class("fas fa-mug-hot"), AriaHidden(true))),
			P(Class("loader-text"), Text("淹れたてのひとときを読み込み中...")),
		),
	)
}

// LoadingSection stands in for a page whose content is not available yet.
func LoadingSection(c *Cycle, props Props) *VNode {
	return Section(Class("page-section container"),
		P(Text(props.String("message"))),
	)
}

// ErrorSection replaces the page body when loading content failed.
func ErrorSection(c *Cycle, props Props) *VNode {
	return Section(Class("page-section container"),
		H2(Text("エラーが発生しました")),
		P(Text(props.String("message"))),
	)
}

func loading(message string) *VNode {
	return Component(LoadingSection, Props{"message": message})
}
