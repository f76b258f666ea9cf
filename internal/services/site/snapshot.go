package site

import (
	"sync/atomic"

	"github.com/mvaleri/atrium/internal/content"
	"github.com/mvaleri/atrium/internal/relate"
	module "github.com/mvaleri/atrium/internal/services/site/module"
)

// SnapshotHolder publishes immutable content snapshots to request handlers.
// Set indexes a document once and swaps the whole pair, so readers never
// observe a document without its matching index.
type SnapshotHolder struct {
	current atomic.Pointer[module.Snapshot]
}

// NewSnapshotHolder returns a holder seeded with doc. A nil doc leaves the
// holder empty; handlers then report the site unavailable.
func NewSnapshotHolder(doc *content.Document) *SnapshotHolder {
	h := &SnapshotHolder{}
	h.Set(doc)
	return h
}

// Set indexes doc and publishes it as the current snapshot. Nil documents
// are ignored so a failed reload cannot blank the site.
func (h *SnapshotHolder) Set(doc *content.Document) {
	if h == nil || doc == nil {
		return
	}
	snap := module.Snapshot{
		Document: doc,
		Index:    relate.BuildIndex(doc.ItemSources(), doc.ControlSources()),
	}
	h.current.Store(&snap)
}

// Snapshot returns the current snapshot.
func (h *SnapshotHolder) Snapshot() module.Snapshot {
	if h == nil {
		return module.Snapshot{}
	}
	snap := h.current.Load()
	if snap == nil {
		return module.Snapshot{}
	}
	return *snap
}
