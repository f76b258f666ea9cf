// Package i18n defines the locales the site speaks and tag matching
// against them. Message catalogs live in the catalog subpackage.
package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

var (
	defaultTag    = language.MustParse("en-US")
	supportedTags = []language.Tag{
		defaultTag,
		language.MustParse("la"),
	}
	matcher = language.NewMatcher(supportedTags)
)

// SupportedTags returns the locales the site serves, default first.
func SupportedTags() []language.Tag {
	out := make([]language.Tag, len(supportedTags))
	copy(out, supportedTags)
	return out
}

// DefaultTag returns the fallback locale.
func DefaultTag() language.Tag {
	return defaultTag
}

// ParseTag parses value and reports whether it names a supported locale,
// matching on the language base so "en-GB" still lands on en-US.
func ParseTag(value string) (language.Tag, bool) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return defaultTag, false
	}
	parsed, err := language.Parse(trimmed)
	if err != nil {
		return defaultTag, false
	}
	parsedBase, _ := parsed.Base()
	for _, tag := range supportedTags {
		base, _ := tag.Base()
		if base == parsedBase {
			return tag, true
		}
	}
	return defaultTag, false
}

// MatchTags picks the best supported locale for an Accept-Language list.
func MatchTags(tags []language.Tag) language.Tag {
	if len(tags) == 0 {
		return defaultTag
	}
	_, idx, conf := matcher.Match(tags...)
	if conf == language.No {
		return defaultTag
	}
	return supportedTags[idx]
}
