// Package prefcookie centralizes the site's preference cookies: the visitor
// id that keys the preference store and the theme mirror used at render
// time. The theme cookie is readable by page scripts on purpose; the
// visitor id is not.
package prefcookie

import (
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

// VisitorName is the cookie carrying the visitor's preference store key.
const VisitorName = "atrium_visitor"

// ThemeName is the cookie mirroring the stored theme for render time.
const ThemeName = "atrium_theme"

// Canonical theme values. Presentation maps them to its own vocabulary.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

const maxAge = 365 * 24 * time.Hour

// ValidTheme reports whether value is a canonical theme.
func ValidTheme(value string) bool {
	return value == ThemeLight || value == ThemeDark
}

// ReadVisitorID returns the trimmed visitor id cookie value when present.
func ReadVisitorID(r *http.Request) (string, bool) {
	return read(r, VisitorName)
}

// EnsureVisitorID returns the request's visitor id, minting and setting a
// fresh one when the cookie is missing.
func EnsureVisitorID(w http.ResponseWriter, r *http.Request) string {
	if id, ok := ReadVisitorID(r); ok {
		return id
	}
	id := uuid.NewString()
	WriteVisitorID(w, r, id)
	return id
}

// WriteVisitorID sets the visitor id cookie.
func WriteVisitorID(w http.ResponseWriter, r *http.Request, visitorID string) {
	if w == nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     VisitorName,
		Value:    strings.TrimSpace(visitorID),
		Path:     "/",
		MaxAge:   int(maxAge.Seconds()),
		HttpOnly: true,
		Secure:   isHTTPS(r),
		SameSite: http.SameSiteLaxMode,
	})
}

// ReadTheme returns the canonical theme cookie value when present and valid.
func ReadTheme(r *http.Request) (string, bool) {
	value, ok := read(r, ThemeName)
	if !ok || !ValidTheme(value) {
		return "", false
	}
	return value, true
}

// WriteTheme mirrors the stored theme into a cookie page scripts may read.
func WriteTheme(w http.ResponseWriter, r *http.Request, theme string) {
	if w == nil || !ValidTheme(theme) {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     ThemeName,
		Value:    theme,
		Path:     "/",
		MaxAge:   int(maxAge.Seconds()),
		Secure:   isHTTPS(r),
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearTheme expires the theme cookie.
func ClearTheme(w http.ResponseWriter, r *http.Request) {
	if w == nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     ThemeName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Secure:   isHTTPS(r),
		SameSite: http.SameSiteLaxMode,
	})
}

func read(r *http.Request, name string) (string, bool) {
	if r == nil {
		return "", false
	}
	cookie, err := r.Cookie(name)
	if err != nil || cookie == nil {
		return "", false
	}
	value := strings.TrimSpace(cookie.Value)
	if value == "" {
		return "", false
	}
	return value, true
}

func isHTTPS(r *http.Request) bool {
	if r == nil {
		return false
	}
	if r.TLS != nil {
		return true
	}
	return strings.EqualFold(r.Header.Get("X-Forwarded-Proto"), "https")
}
