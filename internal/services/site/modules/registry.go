package modules

import (
	"github.com/mvaleri/atrium/internal/services/site/modules/api"
	"github.com/mvaleri/atrium/internal/services/site/modules/contact"
	"github.com/mvaleri/atrium/internal/services/site/modules/gallery"
	"github.com/mvaleri/atrium/internal/services/site/modules/prefs"
)

// DefaultModules returns the stable site modules. Each module owns a
// distinct mount prefix; the gallery holds the root subtree and serves the
// shared not-found page.
func DefaultModules() []Module {
	return []Module{
		gallery.New(),
		contact.New(),
		prefs.New(),
		api.New(),
	}
}
