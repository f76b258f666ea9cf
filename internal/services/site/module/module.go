// Package module defines the contract site feature modules implement.
package module

import (
	"log"
	"net/http"

	"github.com/mvaleri/atrium/internal/content"
	"github.com/mvaleri/atrium/internal/relate"
	"github.com/mvaleri/atrium/internal/services/site/storage"
)

// Snapshot is an immutable view of the published document and its tag index.
// Reload swaps whole snapshots, so holders never see a half-updated pair.
type Snapshot struct {
	Document *content.Document
	Index    *relate.Index
}

// SnapshotFunc returns the current content snapshot.
type SnapshotFunc func() Snapshot

// Dependencies carries shared collaborators injected into modules at mount time.
type Dependencies struct {
	Snapshot     SnapshotFunc
	Store        storage.Store
	Logger       *log.Logger
	AssetBaseURL string
}

// Resolve returns the current snapshot, tolerating a missing provider.
func (d Dependencies) Resolve() Snapshot {
	if d.Snapshot == nil {
		return Snapshot{}
	}
	return d.Snapshot()
}

// Mount describes where a module hangs off the root mux.
type Mount struct {
	Prefix  string
	Handler http.Handler
}

// Module is implemented by mountable site features.
type Module interface {
	ID() string
	Mount(Dependencies) (Mount, error)
}
