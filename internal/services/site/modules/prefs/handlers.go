package prefs

import (
	"log"
	"net/http"
	"net/url"
	"strings"

	module "github.com/mvaleri/atrium/internal/services/site/module"
	apperrors "github.com/mvaleri/atrium/internal/services/site/platform/errors"
	"github.com/mvaleri/atrium/internal/services/site/platform/httpx"
	"github.com/mvaleri/atrium/internal/services/site/platform/prefcookie"
	"github.com/mvaleri/atrium/internal/services/site/platform/weberror"
	"github.com/mvaleri/atrium/internal/services/site/routepath"
	"github.com/mvaleri/atrium/internal/services/site/storage"
)

type handlers struct {
	deps runtimeDependencies
}

type runtimeDependencies struct {
	snapshot     module.SnapshotFunc
	store        storage.Store
	logger       *log.Logger
	assetBaseURL string
}

func newRuntimeDependencies(deps module.Dependencies) runtimeDependencies {
	return runtimeDependencies{
		snapshot:     deps.Snapshot,
		store:        deps.Store,
		logger:       deps.Logger,
		assetBaseURL: deps.AssetBaseURL,
	}
}

func (d runtimeDependencies) moduleDependencies() module.Dependencies {
	return module.Dependencies{
		Snapshot:     d.snapshot,
		Store:        d.store,
		Logger:       d.logger,
		AssetBaseURL: d.assetBaseURL,
	}
}

func newHandlers(deps module.Dependencies) handlers {
	return handlers{deps: newRuntimeDependencies(deps)}
}

// handleThemeToggle flips the theme, or pins an explicit one when the post
// carries a valid theme value. The cookie is what pages render from; the
// store keeps the choice for visits after the cookie expires.
func (h handlers) handleThemeToggle(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		weberror.WriteModuleError(w, r, apperrors.EK(apperrors.KindInvalidInput, "errors.invalid_input", "failed to parse theme form"), h.deps.moduleDependencies())
		return
	}

	theme := strings.TrimSpace(r.FormValue(routepath.ThemeParam))
	if !prefcookie.ValidTheme(theme) {
		current := prefcookie.ThemeLight
		if stored, ok := prefcookie.ReadTheme(r); ok {
			current = stored
		}
		if current == prefcookie.ThemeLight {
			theme = prefcookie.ThemeDark
		} else {
			theme = prefcookie.ThemeLight
		}
	}

	visitorID := prefcookie.EnsureVisitorID(w, r)
	prefcookie.WriteTheme(w, r, theme)

	if h.deps.store != nil {
		pref := storage.Preference{VisitorID: visitorID, Theme: theme}
		if err := h.deps.store.PutPreference(r.Context(), pref); err != nil && h.deps.logger != nil {
			h.deps.logger.Printf("theme preference store failed visitor=%s: %v", visitorID, err)
		}
	}

	httpx.WriteRedirect(w, r, safeReturnPath(r))
}

// safeReturnPath sends the visitor back where they toggled from. Only
// same-host referers are honored; anything else lands on the home page.
func safeReturnPath(r *http.Request) string {
	if r == nil {
		return routepath.Root
	}
	referer := strings.TrimSpace(r.Referer())
	if referer == "" {
		return routepath.Root
	}
	parsed, err := url.Parse(referer)
	if err != nil {
		return routepath.Root
	}
	if parsed.Host != "" && parsed.Host != r.Host {
		return routepath.Root
	}
	if !strings.HasPrefix(parsed.Path, "/") {
		return routepath.Root
	}
	if parsed.RawQuery != "" {
		return parsed.Path + "?" + parsed.RawQuery
	}
	return parsed.Path
}
