// internal/app/system/prefs/prefs.go
package prefs

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"github.com/gorilla/securecookie"
	"github.com/gorilla/sessions"
	"go.uber.org/zap"
)

const (
	ThemeLight = "light"
	ThemeDark  = "dark"

	themeKey = "theme"
)

// Preferences is the per-visitor UI state carried in the request context.
type Preferences struct {
	Theme string
}

var (
	fallbackMu    sync.RWMutex
	fallbackTheme = ThemeDark
)

// SetDefaultTheme sets the theme FromRequest reports for requests that did
// not pass through Middleware. NewManager calls it with the configured
// default; invalid themes are ignored.
func SetDefaultTheme(theme string) {
	t, ok := NormalizeTheme(theme)
	if !ok {
		return
	}
	fallbackMu.Lock()
	fallbackTheme = t
	fallbackMu.Unlock()
}

func defaultTheme() string {
	fallbackMu.RLock()
	defer fallbackMu.RUnlock()
	return fallbackTheme
}

type ctxKey string

const prefsKey ctxKey = "prefs"

// NormalizeTheme maps user input onto a known theme. ok is false for
// anything that is not light or dark.
func NormalizeTheme(s string) (string, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case ThemeLight:
		return ThemeLight, true
	case ThemeDark:
		return ThemeDark, true
	}
	return "", false
}

// Opposite returns the other theme.
func Opposite(theme string) string {
	if theme == ThemeLight {
		return ThemeDark
	}
	return ThemeLight
}

// Manager reads and writes the preference cookie.
type Manager struct {
	store        *sessions.CookieStore
	name         string
	defaultTheme string
	log          *zap.Logger
}

// Options configures NewManager.
type Options struct {
	Key          string
	CookieName   string
	DefaultTheme string
	Secure       bool
}

// NewManager builds a cookie-backed preference manager. With no key a random
// one is generated, so preferences do not survive a restart.
func NewManager(opts Options, logger *zap.Logger) (*Manager, error) {
	key := []byte(opts.Key)
	if len(key) == 0 {
		key = securecookie.GenerateRandomKey(32)
		if key == nil {
			return nil, fmt.Errorf("generate preference key: no randomness available")
		}
		logger.Warn("pref_key not set; using a random key, theme choices reset on restart")
	} else if len(key) < 32 {
		logger.Warn("pref_key is short; 32+ chars recommended", zap.Int("length", len(key)))
	}

	theme, ok := NormalizeTheme(opts.DefaultTheme)
	if !ok {
		return nil, fmt.Errorf("invalid default theme %q", opts.DefaultTheme)
	}
	name := opts.CookieName
	if name == "" {
		name = "technav-prefs"
	}

	store := sessions.NewCookieStore(key)
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   60 * 60 * 24 * 365,
		Secure:   opts.Secure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}

	SetDefaultTheme(theme)
	return &Manager{store: store, name: name, defaultTheme: theme, log: logger}, nil
}

// DefaultTheme is the theme used when a visitor has not chosen one.
func (m *Manager) DefaultTheme() string { return m.defaultTheme }

// Load returns the visitor's preferences. A missing, tampered or stale cookie
// yields the defaults.
func (m *Manager) Load(r *http.Request) Preferences {
	p := Preferences{Theme: m.defaultTheme}
	sess, err := m.store.Get(r, m.name)
	if err != nil {
		var serr securecookie.Error
		if errors.As(err, &serr) && serr.IsDecode() {
			m.log.Debug("discarding unreadable preference cookie", zap.Error(err))
		} else {
			m.log.Warn("read preference cookie", zap.Error(err))
		}
		return p
	}
	if t, ok := NormalizeTheme(getString(sess, themeKey)); ok {
		p.Theme = t
	}
	return p
}

// Save writes p to the response cookie.
func (m *Manager) Save(w http.ResponseWriter, r *http.Request, p Preferences) error {
	theme, ok := NormalizeTheme(p.Theme)
	if !ok {
		return fmt.Errorf("invalid theme %q", p.Theme)
	}
	// Get returns a fresh session alongside a decode error, which Save overwrites.
	sess, _ := m.store.Get(r, m.name)
	sess.Values[themeKey] = theme
	return sess.Save(r, w)
}

// Middleware places the visitor's preferences in the request context.
func (m *Manager) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(w, WithPreferences(r, m.Load(r)))
	})
}

// WithPreferences returns r carrying p. Also used by tests.
func WithPreferences(r *http.Request, p Preferences) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), prefsKey, p))
}

// FromRequest returns the preferences set by Middleware, or the configured
// default theme when none were set.
func FromRequest(r *http.Request) Preferences {
	if p, ok := r.Context().Value(prefsKey).(Preferences); ok {
		return p
	}
	return Preferences{Theme: defaultTheme()}
}

func getString(s *sessions.Session, key string) string {
	if v, ok := s.Values[key].(string); ok {
		return v
	}
	return ""
}
