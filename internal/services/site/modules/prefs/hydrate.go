package prefs

import (
	"net/http"

	"github.com/mvaleri/atrium/internal/services/site/platform/httpx"
	"github.com/mvaleri/atrium/internal/services/site/platform/prefcookie"
	"github.com/mvaleri/atrium/internal/services/site/storage"
)

// Hydrate restores the theme cookie from the preference store when a
// returning visitor arrives without one. The restored cookie is also added
// to the request, so the first page already renders with the right theme.
func Hydrate(store storage.Store) httpx.Middleware {
	return func(next http.Handler) http.Handler {
		if next == nil {
			next = http.NotFoundHandler()
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if store == nil || r == nil {
				next.ServeHTTP(w, r)
				return
			}
			if _, ok := prefcookie.ReadTheme(r); ok {
				next.ServeHTTP(w, r)
				return
			}
			visitorID, ok := prefcookie.ReadVisitorID(r)
			if !ok {
				next.ServeHTTP(w, r)
				return
			}
			pref, found, err := store.GetPreference(r.Context(), visitorID)
			if err == nil && found && prefcookie.ValidTheme(pref.Theme) {
				prefcookie.WriteTheme(w, r, pref.Theme)
				r.AddCookie(&http.Cookie{Name: prefcookie.ThemeName, Value: pref.Theme})
			}
			next.ServeHTTP(w, r)
		})
	}
}
