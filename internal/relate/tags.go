package relate

import (
	"strings"
	"unicode"
)

// Tag is a normalized skill tag: trimmed, lowercased, never carrying
// delimiter characters.
type Tag string

// NormalizeTag trims and lowercases a single raw tag value.
func NormalizeTag(raw string) Tag {
	return Tag(strings.ToLower(strings.TrimSpace(raw)))
}

// ParseTags splits a raw delimited tag attribute into normalized tags.
// Runs of whitespace and commas separate tags; empty fragments are dropped
// and duplicates collapse to their first occurrence.
func ParseTags(raw string) []Tag {
	fields := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	if len(fields) == 0 {
		return nil
	}
	tags := make([]Tag, 0, len(fields))
	seen := make(map[Tag]struct{}, len(fields))
	for _, field := range fields {
		tag := Tag(strings.ToLower(field))
		if _, dup := seen[tag]; dup {
			continue
		}
		seen[tag] = struct{}{}
		tags = append(tags, tag)
	}
	return tags
}
