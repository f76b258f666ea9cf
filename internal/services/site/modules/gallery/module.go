package gallery

import (
	"net/http"

	module "github.com/mvaleri/atrium/internal/services/site/module"
	"github.com/mvaleri/atrium/internal/services/site/routepath"
)

// Module serves the portfolio gallery: the home page, the skill filter, and
// the hover preview endpoints. It owns the root prefix, so it also renders
// the shared not-found page for unclaimed paths.
type Module struct{}

// New returns a gallery module.
func New() Module {
	return Module{}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "gallery" }

// Mount wires gallery route handlers.
func (m Module) Mount(deps module.Dependencies) (module.Mount, error) {
	mux := http.NewServeMux()
	svc := newService(deps.Snapshot)
	h := newHandlers(svc, deps)
	registerRoutes(mux, h)
	return module.Mount{Prefix: routepath.Root, Handler: mux}, nil
}
