package prefs

import (
	"context"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	module "github.com/mvaleri/atrium/internal/services/site/module"
	"github.com/mvaleri/atrium/internal/services/site/platform/prefcookie"
	"github.com/mvaleri/atrium/internal/services/site/routepath"
	"github.com/mvaleri/atrium/internal/services/site/storage"
)

type fakeStore struct {
	prefs map[string]storage.Preference
	gets  int
	puts  []storage.Preference
}

func newFakeStore() *fakeStore {
	return &fakeStore{prefs: map[string]storage.Preference{}}
}

func (f *fakeStore) Close() error { return nil }

func (f *fakeStore) GetPreference(_ context.Context, visitorID string) (storage.Preference, bool, error) {
	f.gets++
	pref, ok := f.prefs[visitorID]
	return pref, ok, nil
}

func (f *fakeStore) PutPreference(_ context.Context, pref storage.Preference) error {
	f.puts = append(f.puts, pref)
	f.prefs[pref.VisitorID] = pref
	return nil
}

func mountForTest(t *testing.T, store storage.Store) http.Handler {
	t.Helper()
	mount, err := New().Mount(module.Dependencies{
		Store:  store,
		Logger: log.New(io.Discard, "", 0),
	})
	if err != nil {
		t.Fatalf("Mount() error = %v", err)
	}
	if mount.Prefix != routepath.PrefsTheme {
		t.Fatalf("Mount() prefix = %q, want %q", mount.Prefix, routepath.PrefsTheme)
	}
	return mount.Handler
}

func postToggle(values url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, routepath.PrefsTheme, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func responseCookie(t *testing.T, rr *httptest.ResponseRecorder, name string) *http.Cookie {
	t.Helper()
	for _, cookie := range rr.Result().Cookies() {
		if cookie.Name == name {
			return cookie
		}
	}
	return nil
}

func TestModuleIDReturnsPrefs(t *testing.T) {
	t.Parallel()

	if got := New().ID(); got != "prefs" {
		t.Fatalf("ID() = %q, want %q", got, "prefs")
	}
}

func TestToggleDefaultsToDarkFromFreshVisit(t *testing.T) {
	t.Parallel()

	store := newFakeStore()
	handler := mountForTest(t, store)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, postToggle(url.Values{}))

	if rr.Code != http.StatusFound {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusFound)
	}
	if got := rr.Header().Get("Location"); got != routepath.Root {
		t.Fatalf("Location = %q, want %q", got, routepath.Root)
	}
	theme := responseCookie(t, rr, prefcookie.ThemeName)
	if theme == nil || theme.Value != prefcookie.ThemeDark {
		t.Fatalf("theme cookie = %+v, want dark", theme)
	}
	visitor := responseCookie(t, rr, prefcookie.VisitorName)
	if visitor == nil || visitor.Value == "" {
		t.Fatalf("visitor cookie missing: %+v", visitor)
	}
	if len(store.puts) != 1 || store.puts[0].Theme != prefcookie.ThemeDark {
		t.Fatalf("stored preference = %+v, want dark", store.puts)
	}
	if store.puts[0].VisitorID != visitor.Value {
		t.Fatalf("stored visitor = %q, cookie visitor = %q", store.puts[0].VisitorID, visitor.Value)
	}
}

func TestToggleFlipsDarkBackToLight(t *testing.T) {
	t.Parallel()

	handler := mountForTest(t, newFakeStore())
	req := postToggle(url.Values{})
	req.AddCookie(&http.Cookie{Name: prefcookie.ThemeName, Value: prefcookie.ThemeDark})
	req.AddCookie(&http.Cookie{Name: prefcookie.VisitorName, Value: "visitor-1"})
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	theme := responseCookie(t, rr, prefcookie.ThemeName)
	if theme == nil || theme.Value != prefcookie.ThemeLight {
		t.Fatalf("theme cookie = %+v, want light", theme)
	}
}

func TestToggleHonorsExplicitTheme(t *testing.T) {
	t.Parallel()

	handler := mountForTest(t, newFakeStore())
	req := postToggle(url.Values{routepath.ThemeParam: {prefcookie.ThemeLight}})
	req.AddCookie(&http.Cookie{Name: prefcookie.ThemeName, Value: prefcookie.ThemeLight})
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	// Invariant: an explicit valid theme pins, it never flips.
	theme := responseCookie(t, rr, prefcookie.ThemeName)
	if theme == nil || theme.Value != prefcookie.ThemeLight {
		t.Fatalf("theme cookie = %+v, want pinned light", theme)
	}
}

func TestToggleKeepsExistingVisitorID(t *testing.T) {
	t.Parallel()

	store := newFakeStore()
	handler := mountForTest(t, store)
	req := postToggle(url.Values{})
	req.AddCookie(&http.Cookie{Name: prefcookie.VisitorName, Value: "visitor-7"})
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if visitor := responseCookie(t, rr, prefcookie.VisitorName); visitor != nil {
		t.Fatalf("visitor cookie reissued: %+v", visitor)
	}
	if len(store.puts) != 1 || store.puts[0].VisitorID != "visitor-7" {
		t.Fatalf("stored preference = %+v, want visitor-7", store.puts)
	}
}

func TestToggleRedirectsBackToSameHostReferer(t *testing.T) {
	t.Parallel()

	handler := mountForTest(t, newFakeStore())
	req := postToggle(url.Values{})
	req.Host = "example.com"
	req.Header.Set("Referer", "http://example.com/?skill=roads")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if got := rr.Header().Get("Location"); got != "/?skill=roads" {
		t.Fatalf("Location = %q, want %q", got, "/?skill=roads")
	}
}

func TestToggleIgnoresForeignReferer(t *testing.T) {
	t.Parallel()

	handler := mountForTest(t, newFakeStore())
	req := postToggle(url.Values{})
	req.Host = "example.com"
	req.Header.Set("Referer", "http://evil.example.net/elsewhere")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if got := rr.Header().Get("Location"); got != routepath.Root {
		t.Fatalf("Location = %q, want %q", got, routepath.Root)
	}
}

func TestToggleWorksWithoutStore(t *testing.T) {
	t.Parallel()

	handler := mountForTest(t, nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, postToggle(url.Values{}))

	if rr.Code != http.StatusFound {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusFound)
	}
	if theme := responseCookie(t, rr, prefcookie.ThemeName); theme == nil {
		t.Fatalf("theme cookie missing without store")
	}
}

func TestToggleRejectsGet(t *testing.T) {
	t.Parallel()

	handler := mountForTest(t, newFakeStore())
	req := httptest.NewRequest(http.MethodGet, routepath.PrefsTheme, nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusMethodNotAllowed)
	}
}

func TestHydrateRestoresThemeForReturningVisitor(t *testing.T) {
	t.Parallel()

	store := newFakeStore()
	store.prefs["visitor-9"] = storage.Preference{VisitorID: "visitor-9", Theme: prefcookie.ThemeDark}

	var seen string
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if theme, ok := prefcookie.ReadTheme(r); ok {
			seen = theme
		}
		w.WriteHeader(http.StatusOK)
	})
	handler := Hydrate(store)(inner)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: prefcookie.VisitorName, Value: "visitor-9"})
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if seen != prefcookie.ThemeDark {
		t.Fatalf("inner handler theme = %q, want dark", seen)
	}
	cookie := responseCookie(t, rr, prefcookie.ThemeName)
	if cookie == nil || cookie.Value != prefcookie.ThemeDark {
		t.Fatalf("restored cookie = %+v, want dark", cookie)
	}
}

func TestHydrateSkipsWhenThemeCookiePresent(t *testing.T) {
	t.Parallel()

	store := newFakeStore()
	handler := Hydrate(store)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: prefcookie.VisitorName, Value: "visitor-9"})
	req.AddCookie(&http.Cookie{Name: prefcookie.ThemeName, Value: prefcookie.ThemeLight})
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if store.gets != 0 {
		t.Fatalf("store queried %d times, want 0", store.gets)
	}
}

func TestHydrateSkipsAnonymousVisitors(t *testing.T) {
	t.Parallel()

	store := newFakeStore()
	handler := Hydrate(store)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if store.gets != 0 {
		t.Fatalf("store queried %d times, want 0", store.gets)
	}
}
