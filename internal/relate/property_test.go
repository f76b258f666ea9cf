package relate

import (
	"fmt"
	"slices"
	"testing"

	"pgregory.net/rapid"
)

var tagWordGen = rapid.StringMatching(`[A-Za-z]{1,6}`)

func rawTagsGen() *rapid.Generator[string] {
	return rapid.Custom(func(t *rapid.T) string {
		words := rapid.SliceOfN(tagWordGen, 0, 5).Draw(t, "words")
		separator := rapid.SampledFrom([]string{", ", " ", ",", "\t"}).Draw(t, "separator")
		raw := ""
		for i, word := range words {
			if i > 0 {
				raw += separator
			}
			raw += word
		}
		return raw
	})
}

func indexGen() *rapid.Generator[*Index] {
	return rapid.Custom(func(t *rapid.T) *Index {
		itemCount := rapid.IntRange(0, 10).Draw(t, "itemCount")
		items := make([]ItemSource, itemCount)
		for i := range items {
			items[i] = ItemSource{
				ID:   fmt.Sprintf("item-%d", i),
				Tags: rawTagsGen().Draw(t, fmt.Sprintf("tags-%d", i)),
			}
		}
		controlCount := rapid.IntRange(0, 8).Draw(t, "controlCount")
		controls := make([]ControlSource, controlCount)
		for i := range controls {
			controls[i] = ControlSource{
				ID:  fmt.Sprintf("control-%d", i),
				Tag: tagWordGen.Draw(t, fmt.Sprintf("controlTag-%d", i)),
			}
		}
		return BuildIndex(items, controls)
	})
}

func TestPropertyMirrorInvariant(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		idx := indexGen().Draw(t, "index")

		for _, id := range idx.Items() {
			for _, tag := range idx.TagsOf(id) {
				if !slices.Contains(idx.ItemsWith(tag), id) {
					t.Fatalf("tag %q of item %q missing from bucket", tag, id)
				}
			}
		}
		seen := map[Tag]bool{}
		for _, id := range idx.Items() {
			for _, tag := range idx.TagsOf(id) {
				seen[tag] = true
			}
		}
		for tag := range seen {
			for _, id := range idx.ItemsWith(tag) {
				if !slices.Contains(idx.TagsOf(id), tag) {
					t.Fatalf("bucket %q lists item %q without the tag", tag, id)
				}
			}
			if got := idx.RelatedCount(tag); got != len(idx.ItemsWith(tag)) {
				t.Fatalf("RelatedCount(%q) = %d, want %d", tag, got, len(idx.ItemsWith(tag)))
			}
		}
	})
}

// applyRandomEvents drives the controller through a random event sequence so
// properties can be checked from arbitrary reachable states.
func applyRandomEvents(t *rapid.T, c *Controller, idx *Index) {
	steps := rapid.IntRange(0, 20).Draw(t, "steps")
	for i := 0; i < steps; i++ {
		label := fmt.Sprintf("step-%d", i)
		switch rapid.IntRange(0, 3).Draw(t, label+"-op") {
		case 0:
			c.Click(Tag(tagWordGen.Draw(t, label+"-click")))
		case 1:
			c.Reset()
		case 2:
			if items := idx.Items(); len(items) > 0 {
				c.EnterItem(rapid.SampledFrom(items).Draw(t, label+"-enter"))
			}
		case 3:
			if items := idx.Items(); len(items) > 0 {
				c.LeaveItem(rapid.SampledFrom(items).Draw(t, label+"-leave"))
			}
		}
	}
}

func TestPropertyVisibilityIsPureOverFilter(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		idx := indexGen().Draw(t, "index")
		c := NewController(idx)
		applyRandomEvents(t, c, idx)

		filter, filtered := c.CurrentFilter()
		for _, id := range idx.Items() {
			want := !filtered || slices.Contains(idx.TagsOf(id), filter)
			if got := c.IsVisible(id); got != want {
				t.Fatalf("IsVisible(%q) = %v, want %v under filter %q", id, got, want, filter)
			}
		}
	})
}

func TestPropertyClickTwiceAlwaysClears(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		idx := indexGen().Draw(t, "index")
		c := NewController(idx)
		applyRandomEvents(t, c, idx)

		tag := NormalizeTag(tagWordGen.Draw(t, "toggleTag"))
		c.Click(tag)
		c.Click(tag)
		if current, ok := c.CurrentFilter(); ok {
			t.Fatalf("double click on %q left filter %q active", tag, current)
		}
	})
}

func TestPropertyAtMostOneActiveAndPreviewExcluded(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		idx := indexGen().Draw(t, "index")
		c := NewController(idx)
		applyRandomEvents(t, c, idx)

		active := 0
		for _, control := range idx.Controls() {
			if c.ControlState(control.Tag) == ControlActive {
				active++
			}
		}
		if active > 1 {
			t.Fatalf("%d controls active, want at most 1", active)
		}

		if _, filtered := c.CurrentFilter(); filtered {
			if id, previewing := c.Previewing(); previewing {
				t.Fatalf("previewing %q while filtered", id)
			}
		}
	})
}
