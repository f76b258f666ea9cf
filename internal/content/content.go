// Package content loads the portfolio document the site renders: ordered
// sections of tagged entries plus the skill controls of the selector rail.
// A YAML file and markup in the site's data-attribute convention both load
// into the same Document.
package content

import (
	"fmt"
	"strings"

	"github.com/mvaleri/atrium/internal/relate"
)

// Link is one external reference attached to an entry.
type Link struct {
	Label string `yaml:"label"`
	URL   string `yaml:"url"`
}

// Entry is one tagged content item: a position held, a work built, a
// mandate carried. Tags holds the raw delimited tag list exactly as
// authored; parsing is the relationship engine's concern.
type Entry struct {
	ID         string   `yaml:"id"`
	Title      string   `yaml:"title"`
	Subtitle   string   `yaml:"subtitle"`
	Period     string   `yaml:"period"`
	Summary    string   `yaml:"summary"`
	Tags       string   `yaml:"tags"`
	Links      []Link   `yaml:"links"`
	Highlights []string `yaml:"highlights"`
}

// Section groups entries under one heading, in document order.
type Section struct {
	Kind    string  `yaml:"kind"`
	Title   string  `yaml:"title"`
	Entries []Entry `yaml:"entries"`
}

// Skill is one selector control of the rail. Tag falls back to the label
// when absent.
type Skill struct {
	ID    string `yaml:"id"`
	Label string `yaml:"label"`
	Tag   string `yaml:"tag"`
	Icon  string `yaml:"icon"`
}

// Document is the whole portfolio as one loadable value.
type Document struct {
	Name     string    `yaml:"name"`
	Title    string    `yaml:"title"`
	Tagline  string    `yaml:"tagline"`
	Motto    string    `yaml:"motto"`
	Sections []Section `yaml:"sections"`
	Skills   []Skill   `yaml:"skills"`
}

var knownSectionKinds = map[string]bool{
	"experience": true,
	"projects":   true,
	"leadership": true,
	"education":  true,
	"honors":     true,
}

// Validate checks the structural rules every source must satisfy: a site
// name, known section kinds, present and document-wide unique entry IDs,
// and skills that carry at least a label or a tag. Empty tag lists are not
// an error; untagged entries simply join no relationship bucket.
func (d *Document) Validate() error {
	if strings.TrimSpace(d.Name) == "" {
		return fmt.Errorf("document has no site name")
	}
	entrySection := map[string]string{}
	for i, section := range d.Sections {
		kind := strings.TrimSpace(section.Kind)
		if !knownSectionKinds[kind] {
			return fmt.Errorf("section %d: unknown kind %q", i, section.Kind)
		}
		for _, entry := range section.Entries {
			id := strings.TrimSpace(entry.ID)
			if id == "" {
				return fmt.Errorf("section %q: entry %q has no id", kind, entry.Title)
			}
			if prev, dup := entrySection[id]; dup {
				return fmt.Errorf("entry id %q appears in both %q and %q", id, prev, kind)
			}
			entrySection[id] = kind
		}
	}
	for i, skill := range d.Skills {
		if strings.TrimSpace(skill.Label) == "" && strings.TrimSpace(skill.Tag) == "" {
			return fmt.Errorf("skill %d: needs a label or a tag", i)
		}
	}
	return nil
}

// Entries returns all entries in document order.
func (d *Document) Entries() []Entry {
	var out []Entry
	for _, section := range d.Sections {
		out = append(out, section.Entries...)
	}
	return out
}

// Entry looks up one entry by ID.
func (d *Document) Entry(id string) (Entry, bool) {
	for _, section := range d.Sections {
		for _, entry := range section.Entries {
			if strings.TrimSpace(entry.ID) == id {
				return entry, true
			}
		}
	}
	return Entry{}, false
}

// ItemSources adapts the document's entries to the relationship index
// builder.
func (d *Document) ItemSources() []relate.ItemSource {
	entries := d.Entries()
	out := make([]relate.ItemSource, 0, len(entries))
	for _, entry := range entries {
		out = append(out, relate.ItemSource{ID: strings.TrimSpace(entry.ID), Tags: entry.Tags})
	}
	return out
}

// ControlSources adapts the document's skills to the relationship index
// builder. A skill without an explicit tag is controlled by its label, and
// a skill without an ID gets one derived from the tag.
func (d *Document) ControlSources() []relate.ControlSource {
	out := make([]relate.ControlSource, 0, len(d.Skills))
	for _, skill := range d.Skills {
		out = append(out, relate.ControlSource{ID: skill.ControlID(), Tag: skill.ControlTag()})
	}
	return out
}

// ControlTag returns the raw tag this skill selects, falling back to the
// label.
func (s Skill) ControlTag() string {
	if strings.TrimSpace(s.Tag) != "" {
		return s.Tag
	}
	return s.Label
}

// ControlID returns the skill's stable control ID, derived from the tag
// when not set explicitly.
func (s Skill) ControlID() string {
	if id := strings.TrimSpace(s.ID); id != "" {
		return id
	}
	return "skill-" + string(relate.NormalizeTag(s.ControlTag()))
}

// DisplayLabel returns the text the rail shows for this skill.
func (s Skill) DisplayLabel() string {
	if label := strings.TrimSpace(s.Label); label != "" {
		return label
	}
	return strings.TrimSpace(s.Tag)
}
