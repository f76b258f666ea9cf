package relate

import (
	"slices"
	"testing"
)

func testIndex() *Index {
	items := []ItemSource{
		{ID: "legion-ops", Tags: "strategy, logistics"},
		{ID: "aqueduct", Tags: "engineering"},
		{ID: "forum-debates", Tags: "rhetoric strategy"},
		{ID: "blank-scroll", Tags: "   "},
	}
	controls := []ControlSource{
		{ID: "skill-strategy", Tag: "Strategy"},
		{ID: "skill-engineering", Tag: "engineering"},
		{ID: "skill-rhetoric", Tag: "rhetoric"},
		{ID: "skill-latin", Tag: "latin"},
	}
	return BuildIndex(items, controls)
}

func TestBuildIndexMirrorsBothMaps(t *testing.T) {
	idx := testIndex()

	for _, id := range idx.Items() {
		for _, tag := range idx.TagsOf(id) {
			if !slices.Contains(idx.ItemsWith(tag), id) {
				t.Fatalf("item %s has tag %s but is missing from its bucket", id, tag)
			}
		}
	}
	for _, control := range idx.Controls() {
		for _, id := range idx.ItemsWith(control.Tag) {
			if !slices.Contains(idx.TagsOf(id), control.Tag) {
				t.Fatalf("bucket %s lists item %s but the item lacks the tag", control.Tag, id)
			}
		}
	}
}

func TestBuildIndexRelatedCounts(t *testing.T) {
	// Scenario: two items sharing one tag, one tag per remaining item.
	idx := BuildIndex([]ItemSource{
		{ID: "P1", Tags: "python,ml"},
		{ID: "P2", Tags: "python,web"},
	}, []ControlSource{
		{ID: "c-python", Tag: "python"},
		{ID: "c-ml", Tag: "ml"},
		{ID: "c-web", Tag: "web"},
	})

	if got := idx.RelatedCount("python"); got != 2 {
		t.Fatalf("RelatedCount(python) = %d, want 2", got)
	}
	if got := idx.RelatedCount("ml"); got != 1 {
		t.Fatalf("RelatedCount(ml) = %d, want 1", got)
	}
	control, ok := idx.Control("python")
	if !ok {
		t.Fatal("expected python control")
	}
	if control.RelatedCount != 2 {
		t.Fatalf("control.RelatedCount = %d, want 2", control.RelatedCount)
	}
}

func TestBuildIndexAbsorbsIrregularInput(t *testing.T) {
	idx := BuildIndex([]ItemSource{
		{ID: "", Tags: "strategy"},
		{ID: "  ", Tags: "strategy"},
		{ID: "villa", Tags: ""},
		{ID: "repeated", Tags: "old"},
		{ID: "repeated", Tags: "new"},
	}, []ControlSource{
		{ID: "first", Tag: "shared"},
		{ID: "second", Tag: "Shared"},
		{ID: "blank", Tag: "   "},
		{ID: "orphan", Tag: "latin"},
	})

	if got := idx.Items(); !slices.Equal(got, []string{"villa", "repeated"}) {
		t.Fatalf("Items() = %v, want [villa repeated]", got)
	}
	if got := idx.TagsOf("villa"); len(got) != 0 {
		t.Fatalf("TagsOf(villa) = %v, want empty", got)
	}
	if got := idx.TagsOf("repeated"); !slices.Equal(got, []Tag{"new"}) {
		t.Fatalf("TagsOf(repeated) = %v, want [new]", got)
	}
	if got := idx.ItemsWith("old"); len(got) != 0 {
		t.Fatalf("ItemsWith(old) = %v, want empty", got)
	}

	controls := idx.Controls()
	if len(controls) != 2 {
		t.Fatalf("Controls() = %v, want shared and latin only", controls)
	}
	if controls[0].ID != "first" || controls[0].Tag != "shared" {
		t.Fatalf("duplicate control tag should keep the first occurrence, got %+v", controls[0])
	}
	if controls[1].Tag != "latin" || controls[1].RelatedCount != 0 {
		t.Fatalf("orphan control should survive with zero count, got %+v", controls[1])
	}
	if got := idx.RelatedCount("unbound"); got != 0 {
		t.Fatalf("RelatedCount(unbound) = %d, want 0", got)
	}
	if _, ok := idx.Control("unbound"); ok {
		t.Fatal("Control(unbound) should not exist")
	}
}

func TestIndexAccessorsReturnCopies(t *testing.T) {
	idx := testIndex()

	items := idx.Items()
	items[0] = "mutated"
	if got := idx.Items()[0]; got != "legion-ops" {
		t.Fatalf("Items() leaked internal slice, got %s", got)
	}

	tags := idx.TagsOf("legion-ops")
	tags[0] = "mutated"
	if got := idx.TagsOf("legion-ops")[0]; got != "strategy" {
		t.Fatalf("TagsOf() leaked internal slice, got %s", got)
	}

	bucket := idx.ItemsWith("strategy")
	bucket[0] = "mutated"
	if got := idx.ItemsWith("strategy")[0]; got != "legion-ops" {
		t.Fatalf("ItemsWith() leaked internal slice, got %s", got)
	}
}
