package contact

import (
	"net/http"

	module "github.com/mvaleri/atrium/internal/services/site/module"
	"github.com/mvaleri/atrium/internal/services/site/routepath"
)

// Module serves the contact form. Submissions validate server-side and
// dispatch is simulated; nothing is persisted or sent anywhere.
type Module struct{}

// New returns a contact module.
func New() Module {
	return Module{}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "contact" }

// Mount wires contact route handlers.
func (m Module) Mount(deps module.Dependencies) (module.Mount, error) {
	mux := http.NewServeMux()
	svc := newService(deps.Logger)
	h := newHandlers(svc, deps)
	registerRoutes(mux, h)
	return module.Mount{Prefix: routepath.Contact, Handler: mux}, nil
}
