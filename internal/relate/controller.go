package relate

import "strings"

// FilterChange reports a completed filter transition: the new active tag
// (empty when the filter cleared) and the item partition it produces.
type FilterChange struct {
	Tag      Tag
	Filtered bool
	Visible  []string
	Hidden   []string
}

// PreviewChange reports a completed preview transition: the previewed item
// (empty when the preview ended) and the control tags related to it.
type PreviewChange struct {
	ItemID  string
	Active  bool
	Related []Tag
}

// ControlState classifies a selector control for rendering.
type ControlState string

const (
	ControlInactive ControlState = "inactive"
	ControlActive   ControlState = "active"
	ControlRelated  ControlState = "related"
)

// Controller dispatches interaction events against an Index and keeps the
// two interaction axes: the filter (unfiltered or filtered by one tag) and
// the hover preview (idle or previewing one item). The filter axis wins:
// while filtered, preview events are ignored.
//
// A Controller belongs to a single event dispatcher and is not safe for
// concurrent use; the Index it wraps is read-only and may be shared.
type Controller struct {
	index *Index

	filter     Tag
	filtered   bool
	preview    string
	previewing bool

	filterSubs  []func(FilterChange)
	previewSubs []func(PreviewChange)
}

// Option adjusts the initial state of a Controller.
type Option func(*Controller)

// WithFilter seeds the controller with an already-active filter. Seeding is
// construction, not a transition: no hooks fire, and an empty tag leaves
// the controller unfiltered.
func WithFilter(tag Tag) Option {
	return func(c *Controller) {
		normalized := NormalizeTag(string(tag))
		if normalized == "" {
			return
		}
		c.filter = normalized
		c.filtered = true
	}
}

// NewController wraps index with fresh interaction state.
func NewController(index *Index, opts ...Option) *Controller {
	c := &Controller{index: index}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	return c
}

// OnFilterChanged subscribes fn to filter transitions. Subscribers run
// synchronously, in registration order, after the state has settled.
func (c *Controller) OnFilterChanged(fn func(FilterChange)) {
	if fn != nil {
		c.filterSubs = append(c.filterSubs, fn)
	}
}

// OnPreviewChanged subscribes fn to preview transitions.
func (c *Controller) OnPreviewChanged(fn func(PreviewChange)) {
	if fn != nil {
		c.previewSubs = append(c.previewSubs, fn)
	}
}

// Click applies one selector activation: a first click sets the filter,
// clicking the active control again clears it, and clicking a different
// control replaces it. Tags without a control or without related items are
// ordinary filters that happen to match little or nothing. A click that
// sets a filter ends any active preview first.
func (c *Controller) Click(tag Tag) {
	normalized := NormalizeTag(string(tag))
	if normalized == "" {
		return
	}
	if c.filtered && c.filter == normalized {
		c.filtered = false
		c.filter = ""
		c.notifyFilter()
		return
	}
	c.filtered = true
	c.filter = normalized
	c.endPreview()
	c.notifyFilter()
}

// Reset clears the filter axis. Resetting an unfiltered controller is a
// no-op and fires nothing.
func (c *Controller) Reset() {
	if !c.filtered {
		return
	}
	c.filtered = false
	c.filter = ""
	c.notifyFilter()
}

// EnterItem starts previewing an item. Ignored while filtered, for unknown
// items, for items without tags, and when the item is already previewed.
func (c *Controller) EnterItem(itemID string) {
	if c.filtered {
		return
	}
	id := strings.TrimSpace(itemID)
	if id == "" || len(c.index.tagsByItem[id]) == 0 {
		return
	}
	if c.previewing && c.preview == id {
		return
	}
	c.previewing = true
	c.preview = id
	c.notifyPreview()
}

// LeaveItem ends the preview of an item. Stale leaves, where the given item
// is not the one being previewed, are ignored.
func (c *Controller) LeaveItem(itemID string) {
	if c.filtered || !c.previewing {
		return
	}
	if strings.TrimSpace(itemID) != c.preview {
		return
	}
	c.endPreview()
}

// IsVisible reports whether an item shows under the current filter: every
// item is visible while unfiltered, and only items carrying the active tag
// are visible while filtered.
func (c *Controller) IsVisible(itemID string) bool {
	if !c.filtered {
		return true
	}
	for _, tag := range c.index.tagsByItem[itemID] {
		if tag == c.filter {
			return true
		}
	}
	return false
}

// ControlState classifies the control bound to tag: active when it owns the
// current filter, related when an unfiltered preview touches its tag,
// inactive otherwise. At most one control is ever active.
func (c *Controller) ControlState(tag Tag) ControlState {
	normalized := NormalizeTag(string(tag))
	if c.filtered {
		if c.filter == normalized {
			return ControlActive
		}
		return ControlInactive
	}
	if c.previewing {
		for _, itemTag := range c.index.tagsByItem[c.preview] {
			if itemTag == normalized {
				return ControlRelated
			}
		}
	}
	return ControlInactive
}

// CurrentFilter returns the active filter tag, if any.
func (c *Controller) CurrentFilter() (Tag, bool) {
	return c.filter, c.filtered
}

// Previewing returns the previewed item ID, if any.
func (c *Controller) Previewing() (string, bool) {
	return c.preview, c.previewing
}

// RelatedCount returns how many items carry tag.
func (c *Controller) RelatedCount(tag Tag) int {
	return c.index.RelatedCount(tag)
}

func (c *Controller) endPreview() {
	if !c.previewing {
		return
	}
	c.previewing = false
	c.preview = ""
	c.notifyPreview()
}

func (c *Controller) notifyFilter() {
	if len(c.filterSubs) == 0 {
		return
	}
	change := FilterChange{Tag: c.filter, Filtered: c.filtered}
	for _, id := range c.index.items {
		if c.IsVisible(id) {
			change.Visible = append(change.Visible, id)
		} else {
			change.Hidden = append(change.Hidden, id)
		}
	}
	for _, fn := range c.filterSubs {
		fn(change)
	}
}

func (c *Controller) notifyPreview() {
	if len(c.previewSubs) == 0 {
		return
	}
	change := PreviewChange{ItemID: c.preview, Active: c.previewing}
	if c.previewing {
		for _, tag := range c.index.tagsByItem[c.preview] {
			if c.index.hasControl(tag) {
				change.Related = append(change.Related, tag)
			}
		}
	}
	for _, fn := range c.previewSubs {
		fn(change)
	}
}
