package icons

import "strings"

// Definition describes a catalog icon entry.
type Definition struct {
	ID    string
	Glyph string
	Label string
}

var catalog = []Definition{
	{ID: "arch", Glyph: "◠", Label: "Arch"},
	{ID: "wave", Glyph: "≈", Label: "Wave"},
	{ID: "cart", Glyph: "◎", Label: "Cart"},
	{ID: "eagle", Glyph: "⚑", Label: "Eagle"},
	{ID: "map", Glyph: "⌖", Label: "Map"},
	{ID: "compass", Glyph: "△", Label: "Compass"},
	{ID: "brick", Glyph: "▤", Label: "Brick"},
	{ID: "scroll", Glyph: "§", Label: "Scroll"},
}

// DefaultGlyph renders for identifiers the catalog does not know.
const DefaultGlyph = "✶"

// Catalog returns the icon definitions in display order.
func Catalog() []Definition {
	defs := make([]Definition, len(catalog))
	copy(defs, catalog)
	return defs
}

// Lookup finds a definition by identifier.
func Lookup(id string) (Definition, bool) {
	id = normalize(id)
	for _, def := range catalog {
		if def.ID == id {
			return def, true
		}
	}
	return Definition{}, false
}

// Glyph returns the inline glyph for an identifier.
func Glyph(id string) (string, bool) {
	def, ok := Lookup(id)
	if !ok {
		return "", false
	}
	return def.Glyph, true
}

// GlyphOrDefault provides a stable glyph even when the identifier is unknown.
func GlyphOrDefault(id string) string {
	if glyph, ok := Glyph(id); ok {
		return glyph
	}
	return DefaultGlyph
}

func normalize(id string) string {
	return strings.ToLower(strings.TrimSpace(id))
}
