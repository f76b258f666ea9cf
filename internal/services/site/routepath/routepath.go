// Package routepath centralizes site URL paths so handlers and templates agree.
package routepath

import (
	"net/url"
	"strings"
)

// Top-level routes served by the site.
const (
	Root        = "/"
	Health      = "/up"
	Contact     = "/contact"
	Filter      = "/filter"
	FilterReset = "/filter/reset"
	Preview     = "/preview"
	PrefsTheme  = "/prefs/theme"

	APIPrefix       = "/api/"
	APISkills       = "/api/skills"
	APIState        = "/api/state"
	APIEcosystem    = "/api/ecosystem"
	APIEcosystemSVG = "/api/ecosystem.svg"

	StaticPrefix = "/static/"
)

// Request parameters shared between query strings and form posts.
const (
	// SkillParam carries the active filter tag.
	SkillParam = "skill"
	// CurrentParam carries the filter that was active when the request was made.
	CurrentParam = "current"
	// ItemParam identifies a gallery entry for preview requests.
	ItemParam = "item"
	// ActionParam selects enter or leave on preview requests.
	ActionParam = "action"
	// SentParam flags the contact page confirmation state after a redirect.
	SentParam = "sent"
	// ThemeParam optionally pins an explicit theme on preference posts.
	ThemeParam = "theme"
)

// ContactSent returns the contact page URL carrying the sent confirmation.
func ContactSent() string {
	return Contact + "?" + SentParam + "=1"
}

// HomeFiltered returns the canonical URL for the gallery under a filter.
// A blank tag returns the unfiltered root.
func HomeFiltered(tag string) string {
	trimmed := strings.TrimSpace(tag)
	if trimmed == "" {
		return Root
	}
	query := url.Values{}
	query.Set(SkillParam, trimmed)
	return Root + "?" + query.Encode()
}

// APIStateFor returns the state endpoint URL for a filter tag.
func APIStateFor(tag string) string {
	trimmed := strings.TrimSpace(tag)
	if trimmed == "" {
		return APIState
	}
	query := url.Values{}
	query.Set(SkillParam, trimmed)
	return APIState + "?" + query.Encode()
}

// Static returns the URL for a static asset by name.
func Static(name string) string {
	return StaticPrefix + escapeSegment(name)
}

// SectionAnchor returns the in-page anchor for a section kind.
func SectionAnchor(kind string) string {
	return "#" + escapeSegment(kind)
}

func escapeSegment(value string) string {
	return url.PathEscape(strings.TrimSpace(value))
}
