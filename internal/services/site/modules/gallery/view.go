package gallery

import (
	"strings"

	"github.com/mvaleri/atrium/internal/content"
	"github.com/mvaleri/atrium/internal/relate"
	module "github.com/mvaleri/atrium/internal/services/site/module"
	sitei18n "github.com/mvaleri/atrium/internal/services/site/platform/i18n"
	"github.com/mvaleri/atrium/internal/services/site/platform/icons"
	"github.com/mvaleri/atrium/internal/services/site/routepath"
	"github.com/mvaleri/atrium/internal/services/site/templates"
)

// buildGalleryView assembles the rail plus the sectioned entry grid for one
// interaction state. The controller decides visibility and control states;
// the document supplies everything the cards show.
func buildGalleryView(snap module.Snapshot, ctrl *relate.Controller, loc sitei18n.Localizer) templates.GalleryView {
	view := templates.GalleryView{
		Rail:       buildRailView(snap, ctrl, loc),
		PreviewURL: routepath.Preview,
		EmptyLabel: localize(loc, "site.gallery.empty"),
	}

	skills := skillsByControlID(snap.Document)
	anyVisible := false
	for _, section := range snap.Document.Sections {
		sectionView := templates.SectionView{
			Kind:   section.Kind,
			Title:  sectionTitle(loc, section.Kind, section.Title),
			Anchor: routepath.SectionAnchor(section.Kind),
		}
		for _, entry := range section.Entries {
			id := strings.TrimSpace(entry.ID)
			entryView := templates.EntryView{
				ID:         id,
				Title:      entry.Title,
				Subtitle:   entry.Subtitle,
				Period:     entry.Period,
				Summary:    entry.Summary,
				Highlights: entry.Highlights,
				Visible:    ctrl.IsVisible(id),
			}
			for _, tag := range snap.Index.TagsOf(id) {
				entryView.Tags = append(entryView.Tags, templates.TagChip{
					Tag:   string(tag),
					Label: chipLabel(snap.Index, skills, tag),
					URL:   routepath.HomeFiltered(string(tag)),
				})
			}
			for _, link := range entry.Links {
				entryView.Links = append(entryView.Links, templates.LinkView{Label: link.Label, URL: link.URL})
			}
			if entryView.Visible {
				sectionView.AnyVisible = true
				anyVisible = true
			}
			sectionView.Entries = append(sectionView.Entries, entryView)
		}
		view.Sections = append(view.Sections, sectionView)
	}
	view.Empty = !anyVisible
	return view
}

// buildRailView assembles the skill selector rail. Controls render in index
// order with their precomputed counts; the document contributes labels and
// icons for controls it declares.
func buildRailView(snap module.Snapshot, ctrl *relate.Controller, loc sitei18n.Localizer) templates.RailView {
	filter, filtered := ctrl.CurrentFilter()
	rail := templates.RailView{
		Title:      localize(loc, "site.rail.title"),
		FilterURL:  routepath.Filter,
		ResetURL:   routepath.FilterReset,
		ResetLabel: localize(loc, "site.rail.reset"),
		ShowReset:  filtered,
		ActiveTag:  string(filter),
	}

	skills := skillsByControlID(snap.Document)
	for _, control := range snap.Index.Controls() {
		controlView := templates.ControlView{
			ID:         control.ID,
			Label:      string(control.Tag),
			Tag:        string(control.Tag),
			Count:      control.RelatedCount,
			CountLabel: countLabel(loc, control.RelatedCount),
			State:      string(ctrl.ControlState(control.Tag)),
		}
		if skill, ok := skills[control.ID]; ok {
			if label := skill.DisplayLabel(); label != "" {
				controlView.Label = label
			}
			if skill.Icon != "" {
				controlView.Icon = skill.Icon
				controlView.IconGlyph = icons.GlyphOrDefault(skill.Icon)
			}
		}
		rail.Controls = append(rail.Controls, controlView)
	}
	return rail
}

func skillsByControlID(doc *content.Document) map[string]content.Skill {
	out := make(map[string]content.Skill, len(doc.Skills))
	for _, skill := range doc.Skills {
		id := skill.ControlID()
		if _, dup := out[id]; dup {
			continue
		}
		out[id] = skill
	}
	return out
}

// chipLabel prefers the rail label of the control bound to tag, so chips and
// rail buttons read the same. Tags without a control show as themselves.
func chipLabel(index *relate.Index, skills map[string]content.Skill, tag relate.Tag) string {
	if control, ok := index.Control(tag); ok {
		if skill, ok := skills[control.ID]; ok {
			if label := skill.DisplayLabel(); label != "" {
				return label
			}
		}
	}
	return string(tag)
}

func sectionTitle(loc sitei18n.Localizer, kind string, fallback string) string {
	key := "site.nav." + kind
	if localized := localize(loc, key); localized != key {
		return localized
	}
	if strings.TrimSpace(fallback) != "" {
		return fallback
	}
	return kind
}

func countLabel(loc sitei18n.Localizer, count int) string {
	if loc == nil {
		return ""
	}
	return loc.Sprintf("site.rail.count", count)
}

func localize(loc sitei18n.Localizer, key string) string {
	if loc == nil {
		return key
	}
	return loc.Sprintf(key)
}
