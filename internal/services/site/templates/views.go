package templates

import "html/template"

// Shell is the chrome shared by every full page.
type Shell struct {
	Lang          string
	Title         string
	SiteName      string
	Tagline       string
	Motto         string
	ThemeClass    string
	ThemeLabel    string
	ThemeAction   string
	HomeURL       string
	Nav           []NavLink
	Languages     []LanguageLink
	StylesheetURL string
	ScriptURL     string
	Content       template.HTML
}

// NavLink is one header navigation target.
type NavLink struct {
	Label  string
	URL    string
	Active bool
}

// LanguageLink is one language switcher target.
type LanguageLink struct {
	Label  string
	URL    string
	Active bool
}

// GalleryView renders the skills rail plus the sectioned item grid.
type GalleryView struct {
	Rail       RailView
	Sections   []SectionView
	PreviewURL string
	Empty      bool
	EmptyLabel string
}

// RailView renders the skill controls and reset affordance.
type RailView struct {
	Title      string
	Controls   []ControlView
	FilterURL  string
	ResetURL   string
	ResetLabel string
	ShowReset  bool
	ActiveTag  string
}

// ControlView is one skill button in the rail. Icon is the content's icon
// identifier; IconGlyph is what the rail actually renders.
type ControlView struct {
	ID         string
	Label      string
	Tag        string
	Icon       string
	IconGlyph  string
	Count      int
	CountLabel string
	State      string
}

// SectionView groups entries under one portfolio section.
type SectionView struct {
	Kind       string
	Title      string
	Anchor     string
	Entries    []EntryView
	AnyVisible bool
}

// EntryView is one portfolio entry card.
type EntryView struct {
	ID         string
	Title      string
	Subtitle   string
	Period     string
	Summary    string
	Highlights []string
	Tags       []TagChip
	Links      []LinkView
	Visible    bool
}

// TagChip is one tag marker on an entry card.
type TagChip struct {
	Tag   string
	Label string
	URL   string
}

// LinkView is one outbound link on an entry card.
type LinkView struct {
	Label string
	URL   string
}

// ContactView renders the contact form with validation state.
type ContactView struct {
	Title        string
	Action       string
	NameLabel    string
	EmailLabel   string
	MessageLabel string
	SendLabel    string
	Name         string
	Email        string
	Body         string
	FieldErrors  map[string]string
	Sent         bool
	SentLabel    string
}

// ErrorView renders the shared error state.
type ErrorView struct {
	StatusCode int
	Title      string
	Message    string
	HomeURL    string
	HomeLabel  string
}
