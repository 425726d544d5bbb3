package session

import (
	"context"
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

// DefaultCookieName names the session cookie when Config leaves it empty.
const DefaultCookieName = "cafe_session"

// Config configures a Manager.
type Config struct {
	// Secret keys the cookie HMAC. A random secret is generated when empty,
	// so sessions do not outlive the process.
	Secret []byte

	// TTL is how long a session stays valid after its last use.
	// Default: 12 hours.
	TTL time.Duration

	CookieName string

	// Secure marks the cookie HTTPS-only.
	Secure bool

	// Now replaces time.Now.
	Now func() time.Time
}

// ErrNoSession is returned by operations that need a session when given nil.
var ErrNoSession = errors.New("session: no session")

// Manager issues, verifies and persists sessions.
type Manager struct {
	store  Store
	config Config
	logger *slog.Logger
}

// NewManager creates a manager backed by store.
func NewManager(store Store, config Config, logger *slog.Logger) *Manager {
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("component", "session_manager")

	if config.TTL <= 0 {
		config.TTL = 12 * time.Hour
	}
	if config.CookieName == "" {
		config.CookieName = DefaultCookieName
	}
	if config.Now == nil {
		config.Now = time.Now
	}
	if len(config.Secret) == 0 {
		config.Secret = []byte(randomToken(32))
		logger.Warn("no session secret configured; sessions end when the server restarts")
	}

	return &Manager{store: store, config: config, logger: logger}
}

// TTL returns the configured session lifetime.
func (m *Manager) TTL() time.Duration {
	return m.config.TTL
}

// Create starts a session for user and sets its cookie on w.
func (m *Manager) Create(ctx context.Context, w http.ResponseWriter, user string) (*Session, error) {
	now := m.config.Now()
	sess := &Session{
		ID:        randomToken(16),
		User:      user,
		CSRF:      randomToken(32),
		CreatedAt: now,
		ExpiresAt: now.Add(m.config.TTL),
	}
	if err := m.Save(ctx, sess); err != nil {
		return nil, err
	}
	http.SetCookie(w, m.cookie(m.sign(sess.ID), int(m.config.TTL/time.Second)))
	m.logger.Info("session created", "user", user)
	return sess, nil
}

// Get returns the session named by r's cookie, or nil when the cookie is
// missing, fails verification, or names an expired session. A valid
// session's expiry is pushed out by TTL.
func (m *Manager) Get(ctx context.Context, r *http.Request) (*Session, error) {
	c, err := r.Cookie(m.config.CookieName)
	if err != nil {
		return nil, nil
	}
	id, ok := m.verify(c.Value)
	if !ok {
		m.logger.Debug("rejected session cookie")
		return nil, nil
	}

	data, err := m.store.Load(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("session: load: %w", err)
	}
	if data == nil {
		return nil, nil
	}
	sess, err := Deserialize(data)
	if err != nil || sess == nil {
		// Unreadable sessions count as signed out.
		m.logger.Warn("discarding unreadable session", "error", err)
		_ = m.store.Delete(ctx, id)
		return nil, nil
	}

	sess.ExpiresAt = m.config.Now().Add(m.config.TTL)
	if err := m.store.Touch(ctx, id, sess.ExpiresAt); err != nil {
		return nil, fmt.Errorf("session: touch: %w", err)
	}
	return sess, nil
}

// Save persists sess.
func (m *Manager) Save(ctx context.Context, sess *Session) error {
	if sess == nil {
		return ErrNoSession
	}
	data, err := Serialize(sess)
	if err != nil {
		return fmt.Errorf("session: encode: %w", err)
	}
	if err := m.store.Save(ctx, sess.ID, data, sess.ExpiresAt); err != nil {
		return fmt.Errorf("session: save: %w", err)
	}
	return nil
}

// Destroy deletes the session named by r's cookie, if any, and clears the
// cookie.
func (m *Manager) Destroy(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	http.SetCookie(w, m.cookie("", -1))

	c, err := r.Cookie(m.config.CookieName)
	if err != nil {
		return nil
	}
	id, ok := m.verify(c.Value)
	if !ok {
		return nil
	}
	if err := m.store.Delete(ctx, id); err != nil {
		return fmt.Errorf("session: delete: %w", err)
	}
	return nil
}

// SetFlash replaces the pending flash message and saves sess.
func (m *Manager) SetFlash(ctx context.Context, sess *Session, kind, message string) error {
	if sess == nil {
		return ErrNoSession
	}
	sess.Flash = &Flash{Kind: kind, Message: message}
	return m.Save(ctx, sess)
}

// PopFlash returns and clears the pending flash message.
func (m *Manager) PopFlash(ctx context.Context, sess *Session) (*Flash, error) {
	if sess == nil || sess.Flash == nil {
		return nil, nil
	}
	f := sess.Flash
	sess.Flash = nil
	return f, m.Save(ctx, sess)
}

// ValidCSRF reports whether token matches sess's CSRF token.
func (m *Manager) ValidCSRF(sess *Session, token string) bool {
	if sess == nil || sess.CSRF == "" || token == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(sess.CSRF), []byte(token)) == 1
}

func (m *Manager) cookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     m.config.CookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   m.config.Secure,
		SameSite: http.SameSiteLaxMode,
	}
}

func (m *Manager) mac(id string) []byte {
	h := hmac.New(sha256.New, m.config.Secret)
	h.Write([]byte(id))
	return h.Sum(nil)
}

func (m *Manager) sign(id string) string {
	return id + "." + base64.RawURLEncoding.EncodeToString(m.mac(id))
}

func (m *Manager) verify(value string) (string, bool) {
	id, sig, ok := strings.Cut(value, ".")
	if !ok || id == "" {
		return "", false
	}
	got, err := base64.RawURLEncoding.DecodeString(sig)
	if err != nil {
		return "", false
	}
	return id, hmac.Equal(got, m.mac(id))
}

func randomToken(n int) string {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		panic("session: crypto/rand failed: " + err.Error())
	}
	return hex.EncodeToString(b)
}
