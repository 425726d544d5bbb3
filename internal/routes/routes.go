// Package routes is the site's route table: paths, page titles and the
// navigation links shown in the header and the admin console.
package routes

import "strings"

// Public page paths.
const (
	Home         = "/"
	Access       = "/access"
	Reservations = "/reservations"
	Gallery      = "/gallery"
	About        = "/about"
	Highlights   = "/highlights"
)

// Admin paths.
const (
	AdminDashboard     = "/admin"
	AdminLogin         = "/admin/login"
	AdminLogout        = "/admin/logout"
	AdminContentPrefix = "/admin/content/"
	AdminGallery       = "/admin/gallery"
	AdminFeatures      = "/admin/features"
	AdminAnnouncements = "/admin/announcements"
)

// NotFoundTitle is the title of any path without a route.
const NotFoundTitle = "ページが見つかりません | Sample Cafe"

// Route describes one page.
type Route struct {
	Path  string
	Title string

	// RequiresAuth routes redirect to AdminLogin without a session.
	RequiresAuth bool
}

// Link is a navigation entry. It is served as-is by /api/navigation.
type Link struct {
	Label string `json:"label"`
	Path  string `json:"path"`
}

var public = []Route{
	{Path: Home, Title: "Sample Cafe | 公式サイト"},
	{Path: Access, Title: "アクセス | Sample Cafe"},
	{Path: Reservations, Title: "予約 | Sample Cafe"},
	{Path: Gallery, Title: "ギャラリー | Sample Cafe"},
	{Path: About, Title: "ストーリー | Sample Cafe"},
	{Path: Highlights, Title: "ハイライト | Sample Cafe"},
}

var admin = []Route{
	{Path: AdminLogin, Title: "ログイン | Sample Cafe CMS"},
	{Path: AdminDashboard, Title: "ダッシュボード | Sample Cafe CMS", RequiresAuth: true},
	{Path: AdminContentPrefix + "{section}", Title: "コンテンツ編集 | Sample Cafe CMS", RequiresAuth: true},
	{Path: AdminGallery, Title: "ギャラリー管理 | Sample Cafe CMS", RequiresAuth: true},
	{Path: AdminFeatures, Title: "ハイライト管理 | Sample Cafe CMS", RequiresAuth: true},
	{Path: AdminAnnouncements, Title: "お知らせ管理 | Sample Cafe CMS", RequiresAuth: true},
	{Path: AdminLogout, Title: "ログアウト | Sample Cafe CMS", RequiresAuth: true},
}

// NavLinks are the header links, in display order.
var NavLinks = []Link{
	{Label: "ホーム", Path: Home},
	{Label: "アクセス", Path: Access},
	{Label: "予約", Path: Reservations},
	{Label: "ギャラリー", Path: Gallery},
	{Label: "ストーリー", Path: About},
	{Label: "ハイライト", Path: Highlights},
}

// AdminNav are the admin console links.
var AdminNav = []Link{
	{Label: "ダッシュボード", Path: AdminDashboard},
	{Label: "ギャラリー", Path: AdminGallery},
	{Label: "ハイライト", Path: AdminFeatures},
	{Label: "お知らせ", Path: AdminAnnouncements},
}

// Public returns the public page routes.
func Public() []Route {
	return append([]Route(nil), public...)
}

// Admin returns the admin routes.
func Admin() []Route {
	return append([]Route(nil), admin...)
}

// Lookup finds the route for a canonical path. Admin content paths match
// the {section} pattern with any single segment.
func Lookup(path string) (Route, bool) {
	for _, r := range public {
		if r.Path == path {
			return r, true
		}
	}
	for _, r := range admin {
		if r.Path == path {
			return r, true
		}
		if prefix, ok := strings.CutSuffix(r.Path, "{section}"); ok {
			if rest, ok := strings.CutPrefix(path, prefix); ok && rest != "" && !strings.Contains(rest, "/") {
				return r, true
			}
		}
	}
	return Route{}, false
}

// Title returns the document title for path, NotFoundTitle when no route
// matches.
func Title(path string) string {
	if r, ok := Lookup(path); ok {
		return r.Title
	}
	return NotFoundTitle
}

// RequiresAuth reports whether path is an admin page other than the login
// form. Unknown paths under /admin count as protected.
func RequiresAuth(path string) bool {
	if r, ok := Lookup(path); ok {
		return r.RequiresAuth
	}
	return path == AdminDashboard || strings.HasPrefix(path, AdminDashboard+"/")
}

// ContentPath returns the editor path for a section.
func ContentPath(section string) string {
	return AdminContentPrefix + section
}
