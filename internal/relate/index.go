// Package relate builds the relationship index between tagged content items
// and selector controls, and drives the filter/preview state machine the
// site renders from. The index is immutable once built; controllers wrap it
// with per-dispatcher interaction state.
package relate

import (
	"slices"
	"strings"
)

// ItemSource describes one content item as the index builder consumes it.
// Tags is the raw delimited attribute value; presentation fields stay with
// the caller.
type ItemSource struct {
	ID   string
	Tags string
}

// ControlSource describes one selector control as the builder consumes it.
type ControlSource struct {
	ID  string
	Tag string
}

// Control is a selector control with its precomputed relationship count.
type Control struct {
	ID           string
	Tag          Tag
	RelatedCount int
}

// Index holds the two mirrored relationship maps: tag to item IDs and item
// ID to tags, both in input order. An Index never changes after BuildIndex
// returns, so any number of goroutines may read it concurrently.
type Index struct {
	items        []string
	itemsByTag   map[Tag][]string
	tagsByItem   map[string][]Tag
	controls     []Control
	controlByTag map[Tag]int
}

// BuildIndex scans items and controls into an Index. It never fails:
// items without tags join no bucket, controls whose tag matches no item
// keep a zero count, duplicate control tags collapse to the first
// occurrence, and a repeated item ID keeps its first position while the
// last tag set wins.
func BuildIndex(items []ItemSource, controls []ControlSource) *Index {
	idx := &Index{
		itemsByTag:   map[Tag][]string{},
		tagsByItem:   map[string][]Tag{},
		controlByTag: map[Tag]int{},
	}

	tagsFor := make(map[string][]Tag, len(items))
	for _, item := range items {
		id := strings.TrimSpace(item.ID)
		if id == "" {
			continue
		}
		if _, seen := tagsFor[id]; !seen {
			idx.items = append(idx.items, id)
		}
		tagsFor[id] = ParseTags(item.Tags)
	}
	for _, id := range idx.items {
		tags := tagsFor[id]
		idx.tagsByItem[id] = tags
		for _, tag := range tags {
			idx.itemsByTag[tag] = append(idx.itemsByTag[tag], id)
		}
	}

	for _, control := range controls {
		tag := NormalizeTag(control.Tag)
		if tag == "" {
			continue
		}
		if _, dup := idx.controlByTag[tag]; dup {
			continue
		}
		idx.controlByTag[tag] = len(idx.controls)
		idx.controls = append(idx.controls, Control{
			ID:           strings.TrimSpace(control.ID),
			Tag:          tag,
			RelatedCount: len(idx.itemsByTag[tag]),
		})
	}
	return idx
}

// Items returns all item IDs in input order.
func (idx *Index) Items() []string {
	return slices.Clone(idx.items)
}

// Controls returns all selector controls in input order.
func (idx *Index) Controls() []Control {
	return slices.Clone(idx.controls)
}

// TagsOf returns the tags of one item in attribute order. Unknown items and
// items without tags both yield an empty result.
func (idx *Index) TagsOf(itemID string) []Tag {
	return slices.Clone(idx.tagsByItem[itemID])
}

// ItemsWith returns the IDs of all items carrying tag, in input order.
func (idx *Index) ItemsWith(tag Tag) []string {
	return slices.Clone(idx.itemsByTag[tag])
}

// RelatedCount returns how many items carry tag.
func (idx *Index) RelatedCount(tag Tag) int {
	return len(idx.itemsByTag[tag])
}

// Control looks up the selector control bound to tag.
func (idx *Index) Control(tag Tag) (Control, bool) {
	pos, ok := idx.controlByTag[tag]
	if !ok {
		return Control{}, false
	}
	return idx.controls[pos], true
}

func (idx *Index) hasControl(tag Tag) bool {
	_, ok := idx.controlByTag[tag]
	return ok
}
