// Package pagerender centralizes module page rendering behavior.
package pagerender

import (
	"net/http"
	"strings"

	module "github.com/mvaleri/atrium/internal/services/site/module"
	"github.com/mvaleri/atrium/internal/services/site/platform/httpx"
	sitei18n "github.com/mvaleri/atrium/internal/services/site/platform/i18n"
	"github.com/mvaleri/atrium/internal/services/site/platform/prefcookie"
	"github.com/mvaleri/atrium/internal/services/site/routepath"
	"github.com/mvaleri/atrium/internal/services/site/templates"
	"golang.org/x/text/language"
)

// ModulePage describes a module page response for both full-page and fragment flows.
type ModulePage struct {
	Title      string
	StatusCode int
	ActiveNav  string
	PushURL    string
	Fragment   templates.Fragment
}

// WriteModulePage writes a module page using shared shell rendering contracts.
func WriteModulePage(w http.ResponseWriter, r *http.Request, deps module.Dependencies, page ModulePage) error {
	if w == nil {
		return nil
	}
	statusCode := page.StatusCode
	if statusCode <= 0 {
		statusCode = http.StatusOK
	}

	loc, lang := sitei18n.ResolveLocalizer(w, r)
	if page.PushURL != "" && httpx.IsHTMXRequest(r) {
		httpx.PushURL(w, page.PushURL)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if httpx.IsHTMXRequest(r) {
		w.WriteHeader(statusCode)
		return templates.RenderFragment(w, page.Fragment)
	}

	shell := BuildShell(r, deps, loc, lang, page.Title, page.ActiveNav)
	w.WriteHeader(statusCode)
	return templates.RenderShell(w, shell, page.Fragment)
}

// BuildShell assembles the shared page chrome for a request.
func BuildShell(r *http.Request, deps module.Dependencies, loc sitei18n.Localizer, lang string, title string, activeNav string) templates.Shell {
	snapshot := deps.Resolve()
	doc := snapshot.Document

	shell := templates.Shell{
		Lang:          lang,
		Title:         strings.TrimSpace(title),
		HomeURL:       routepath.Root,
		ThemeAction:   routepath.PrefsTheme,
		StylesheetURL: assetURL(deps.AssetBaseURL, "site.css"),
		ScriptURL:     assetURL(deps.AssetBaseURL, "site.js"),
	}

	if doc != nil {
		shell.SiteName = doc.Name
		shell.Tagline = doc.Tagline
		shell.Motto = doc.Motto
		if shell.Title == "" {
			shell.Title = strings.TrimSpace(doc.Title)
		}
		if shell.Title == "" {
			shell.Title = doc.Name
		}
		for _, section := range doc.Sections {
			shell.Nav = append(shell.Nav, templates.NavLink{
				Label:  sectionLabel(loc, section.Kind, section.Title),
				URL:    routepath.Root + routepath.SectionAnchor(section.Kind),
				Active: activeNav == section.Kind,
			})
		}
	}
	shell.Nav = append(shell.Nav, templates.NavLink{
		Label:  localize(loc, "site.nav.contact"),
		URL:    routepath.Contact,
		Active: activeNav == "contact",
	})

	theme := prefcookie.ThemeLight
	if stored, ok := prefcookie.ReadTheme(r); ok {
		theme = stored
	}
	shell.ThemeClass = ThemeClass(theme)
	if theme == prefcookie.ThemeDark {
		shell.ThemeLabel = localize(loc, "site.theme.to_light")
	} else {
		shell.ThemeLabel = localize(loc, "site.theme.to_dark")
	}

	path, rawQuery := "/", ""
	if r != nil && r.URL != nil {
		path, rawQuery = r.URL.Path, r.URL.RawQuery
	}
	options := sitei18n.BuildLanguageOptions(lang, func(tag language.Tag) string {
		return localize(loc, sitei18n.LanguageKeyLabel(tag))
	})
	for _, option := range options {
		shell.Languages = append(shell.Languages, templates.LanguageLink{
			Label:  option.Label,
			URL:    sitei18n.LanguageURL(path, rawQuery, option.Tag),
			Active: option.Active,
		})
	}

	return shell
}

// ThemeClass maps a stored theme to its body class. The presented names keep
// the site's Latin register: lux for light, nox for dark.
func ThemeClass(theme string) string {
	if theme == prefcookie.ThemeDark {
		return "theme-nox"
	}
	return "theme-lux"
}

// sectionLabel prefers a catalog translation and falls back to the document's
// own section title for kinds without one.
func sectionLabel(loc sitei18n.Localizer, kind string, fallback string) string {
	key := "site.nav." + kind
	if localized := localize(loc, key); localized != key {
		return localized
	}
	if strings.TrimSpace(fallback) != "" {
		return fallback
	}
	return kind
}

func localize(loc sitei18n.Localizer, key string) string {
	if loc == nil {
		return key
	}
	return loc.Sprintf(key)
}

func assetURL(base string, name string) string {
	return strings.TrimRight(strings.TrimSpace(base), "/") + routepath.Static(name)
}
