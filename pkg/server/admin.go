package server

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/samplecafe/cafe/internal/content"
	"github.com/samplecafe/cafe/internal/pages"
	"github.com/samplecafe/cafe/internal/routes"
	"github.com/samplecafe/cafe/pkg/dom"
	"github.com/samplecafe/cafe/pkg/render"
	"github.com/samplecafe/cafe/pkg/session"
	"github.com/samplecafe/cafe/pkg/vdom"
)

// maxFormBytes limits non-upload admin forms.
const maxFormBytes = 1 << 20

// Login notices, passed as ?notice= to the login form.
const (
	noticeRequired = "required"
	noticeLogout   = "logout"
)

var loginNotices = map[string]pages.Flash{
	noticeRequired: {Kind: "warning", Message: "ログインが必要です。"},
	noticeLogout:   {Kind: "info", Message: "ログアウトしました。"},
}

type sessionKey struct{}

func sessionFrom(ctx context.Context) *session.Session {
	sess, _ := ctx.Value(sessionKey{}).(*session.Session)
	return sess
}

func (s *Server) adminRoutes(r chi.Router) {
	r.Get("/login", s.loginForm)
	r.Post("/login", s.login)

	r.Group(func(r chi.Router) {
		r.Use(s.requireAdmin)
		r.Get("/", s.dashboard)
		r.Post("/logout", s.logout)
		r.Get("/content/{section}", s.contentEditor)
		r.Post("/content/{section}", s.updateContent)
		r.Get("/gallery", s.galleryManager)
		r.Post("/gallery", s.galleryPost)
		r.Get("/features", s.featureManager)
		r.Post("/features", s.featuresPost)
		r.Get("/announcements", s.announcementManager)
		r.Post("/announcements", s.announcementsPost)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		s.requireAdmin(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Redirect(w, r, routes.AdminDashboard, http.StatusSeeOther)
		})).ServeHTTP(w, r)
	})
}

// requireAdmin redirects requests without a session to the login form and
// stores the session in the request context otherwise.
func (s *Server) requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess, err := s.sessions.Get(r.Context(), r)
		if err != nil {
			s.storeFailed(w, r, err)
			return
		}
		if sess == nil {
			q := url.Values{"notice": {noticeRequired}}
			if r.Method == http.MethodGet {
				q.Set("next", r.URL.RequestURI())
			}
			http.Redirect(w, r, routes.AdminLogin+"?"+q.Encode(), http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), sessionKey{}, sess)))
	})
}

// parseForm reads a url-encoded admin form and checks its CSRF token. It
// answers the request itself and returns false when either fails.
func (s *Server) parseForm(w http.ResponseWriter, r *http.Request, sess *session.Session) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)
	if err := r.ParseForm(); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return false
	}
	return s.checkCSRF(w, r, sess)
}

func (s *Server) checkCSRF(w http.ResponseWriter, r *http.Request, sess *session.Session) bool {
	if s.sessions.ValidCSRF(sess, r.PostFormValue(pages.CSRFField)) {
		return true
	}
	s.logger.Warn("csrf token mismatch", "path", r.URL.Path, "user", sess.User)
	http.Error(w, "invalid CSRF token", http.StatusForbidden)
	return false
}

// adminView pops the pending flash and returns the shared admin page input.
func (s *Server) adminView(r *http.Request, sess *session.Session) pages.Admin {
	a := pages.Admin{
		Path: strings.TrimSuffix(r.URL.Path, "/"),
		User: sess.User,
		CSRF: sess.CSRF,
	}
	if a.Path == "" {
		a.Path = routes.AdminDashboard
	}
	flash, err := s.sessions.PopFlash(r.Context(), sess)
	if err != nil {
		s.logger.Warn("pop flash", "error", err)
	}
	if flash != nil {
		a.Flash = &pages.Flash{Kind: flash.Kind, Message: flash.Message}
	}
	return a
}

// flashRedirect stores a flash message and redirects to target with 303.
func (s *Server) flashRedirect(w http.ResponseWriter, r *http.Request, sess *session.Session, kind, message, target string) {
	if err := s.sessions.SetFlash(r.Context(), sess, kind, message); err != nil {
		s.logger.Warn("set flash", "error", err)
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}

func (s *Server) renderAdmin(w http.ResponseWriter, r *http.Request, status int, top *vdom.VNode) {
	title := routes.Title(strings.TrimSuffix(r.URL.Path, "/"))
	if r.URL.Path == routes.AdminDashboard+"/" {
		title = routes.Title(routes.AdminDashboard)
	}
	s.renderPage(w, r, status, top, func(body *dom.Node) render.Page {
		return pages.AdminDocument(title, body)
	})
}

func (s *Server) loginForm(w http.ResponseWriter, r *http.Request) {
	sess, err := s.sessions.Get(r.Context(), r)
	if err != nil {
		s.storeFailed(w, r, err)
		return
	}
	if sess != nil {
		http.Redirect(w, r, routes.AdminDashboard, http.StatusSeeOther)
		return
	}

	q := r.URL.Query()
	var flash *pages.Flash
	if f, ok := loginNotices[q.Get("notice")]; ok {
		flash = &f
	}
	next := routes.SafeRedirect(q.Get("next"), "")
	s.renderAdmin(w, r, http.StatusOK, pages.Login(flash, next))
}

func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)
	if err := r.ParseForm(); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}
	username := strings.TrimSpace(r.PostFormValue("username"))
	next := routes.SafeRedirect(r.PostFormValue("next"), "")

	user, err := s.content.Authenticate(username, r.PostFormValue("password"))
	if errors.Is(err, content.ErrInvalidCredentials) {
		s.logger.Info("login failed", "user", username)
		flash := &pages.Flash{Kind: "danger", Message: "ログインに失敗しました。"}
		s.renderAdmin(w, r, http.StatusUnauthorized, pages.Login(flash, next))
		return
	}
	if err != nil {
		s.storeFailed(w, r, err)
		return
	}

	sess, err := s.sessions.Create(r.Context(), w, user.Username)
	if err != nil {
		s.storeFailed(w, r, err)
		return
	}
	s.logger.Info("login", "user", user.Username)
	if next == "" || !routes.RequiresAuth(strings.SplitN(next, "?", 2)[0]) {
		next = routes.AdminDashboard
	}
	s.flashRedirect(w, r, sess, "success", "ログインしました。", next)
}

func (s *Server) logout(w http.ResponseWriter, r *http.Request) {
	sess := sessionFrom(r.Context())
	if !s.parseForm(w, r, sess) {
		return
	}
	if err := s.sessions.Destroy(r.Context(), w, r); err != nil {
		s.logger.Warn("destroy session", "error", err)
	}
	s.logger.Info("logout", "user", sess.User)
	http.Redirect(w, r, routes.AdminLogin+"?notice="+noticeLogout, http.StatusSeeOther)
}

func (s *Server) dashboard(w http.ResponseWriter, r *http.Request) {
	sess := sessionFrom(r.Context())
	sections, err := s.content.Sections()
	if err != nil {
		s.storeFailed(w, r, err)
		return
	}
	stats, err := s.content.Stats()
	if err != nil {
		s.storeFailed(w, r, err)
		return
	}
	s.renderAdmin(w, r, http.StatusOK, s.adminView(r, sess).Dashboard(sections, stats))
}

func (s *Server) contentEditor(w http.ResponseWriter, r *http.Request) {
	sess := sessionFrom(r.Context())
	key := chi.URLParam(r, "section")
	sec, err := s.content.Section(key)
	if errors.Is(err, content.ErrNotFound) {
		s.renderAdmin(w, r, http.StatusNotFound, s.adminView(r, sess).ContentEditor(key, nil))
		return
	}
	if err != nil {
		s.storeFailed(w, r, err)
		return
	}
	s.renderAdmin(w, r, http.StatusOK, s.adminView(r, sess).ContentEditor(key, &sec))
}

func (s *Server) updateContent(w http.ResponseWriter, r *http.Request) {
	sess := sessionFrom(r.Context())
	if !s.parseForm(w, r, sess) {
		return
	}
	key := chi.URLParam(r, "section")
	_, err := s.content.UpdateSection(key, content.SectionInput{
		Title:     r.PostFormValue("title"),
		Subtitle:  r.PostFormValue("subtitle"),
		Body:      r.PostFormValue("body"),
		Highlight: r.PostFormValue("highlight"),
		Image:     r.PostFormValue("image"),
		ExtraInfo: r.PostFormValue("extra_info"),
	})
	switch {
	case errors.Is(err, content.ErrNotFound):
		s.flashRedirect(w, r, sess, "danger", "セクションが見つかりません。", routes.AdminDashboard)
	case err != nil:
		s.storeFailed(w, r, err)
	default:
		s.logger.Info("section updated", "section", key, "user", sess.User)
		s.flashRedirect(w, r, sess, "success", "更新しました。", routes.ContentPath(key))
	}
}

func (s *Server) featureManager(w http.ResponseWriter, r *http.Request) {
	sess := sessionFrom(r.Context())
	features, err := s.content.Features()
	if err != nil {
		s.storeFailed(w, r, err)
		return
	}
	s.renderAdmin(w, r, http.StatusOK, s.adminView(r, sess).Features(features))
}

func (s *Server) featuresPost(w http.ResponseWriter, r *http.Request) {
	sess := sessionFrom(r.Context())
	if !s.parseForm(w, r, sess) {
		return
	}
	switch r.PostFormValue("action") {
	case "add":
		_, err := s.content.AddFeature(r.PostFormValue("title"), r.PostFormValue("description"), r.PostFormValue("icon"))
		switch {
		case errors.Is(err, content.ErrRequired):
			s.flashRedirect(w, r, sess, "warning", "タイトルと説明を入力してください。", routes.AdminFeatures)
		case err != nil:
			s.storeFailed(w, r, err)
		default:
			s.flashRedirect(w, r, sess, "success", "ハイライトを追加しました。", routes.AdminFeatures)
		}
	case "delete":
		s.deleteRecord(w, r, sess, "feature_id", s.content.DeleteFeature,
			"ハイライトを削除しました。", routes.AdminFeatures)
	default:
		http.Redirect(w, r, routes.AdminFeatures, http.StatusSeeOther)
	}
}

func (s *Server) announcementManager(w http.ResponseWriter, r *http.Request) {
	sess := sessionFrom(r.Context())
	items, err := s.content.Announcements()
	if err != nil {
		s.storeFailed(w, r, err)
		return
	}
	s.renderAdmin(w, r, http.StatusOK, s.adminView(r, sess).Announcements(items))
}

func (s *Server) announcementsPost(w http.ResponseWriter, r *http.Request) {
	sess := sessionFrom(r.Context())
	if !s.parseForm(w, r, sess) {
		return
	}
	switch r.PostFormValue("action") {
	case "add":
		_, err := s.content.AddAnnouncement(r.PostFormValue("title"), r.PostFormValue("content"))
		switch {
		case errors.Is(err, content.ErrRequired):
			s.flashRedirect(w, r, sess, "warning", "タイトルと本文を入力してください。", routes.AdminAnnouncements)
		case err != nil:
			s.storeFailed(w, r, err)
		default:
			s.flashRedirect(w, r, sess, "success", "お知らせを追加しました。", routes.AdminAnnouncements)
		}
	case "delete":
		s.deleteRecord(w, r, sess, "announcement_id", s.content.DeleteAnnouncement,
			"お知らせを削除しました。", routes.AdminAnnouncements)
	default:
		http.Redirect(w, r, routes.AdminAnnouncements, http.StatusSeeOther)
	}
}

// deleteRecord deletes the record whose id is in the field form value.
func (s *Server) deleteRecord(w http.ResponseWriter, r *http.Request, sess *session.Session,
	field string, del func(id int) error, done, target string) {
	id, err := strconv.Atoi(r.PostFormValue(field))
	if err == nil {
		err = del(id)
	} else {
		err = content.ErrNotFound
	}
	switch {
	case errors.Is(err, content.ErrNotFound):
		s.flashRedirect(w, r, sess, "warning", "対象が見つかりません。", target)
	case err != nil:
		s.storeFailed(w, r, err)
	default:
		s.flashRedirect(w, r, sess, "info", done, target)
	}
}
