// Package prefs owns visitor presentation preferences: the theme toggle
// endpoint and the middleware that restores a returning visitor's theme
// from the preference store.
package prefs

import (
	"net/http"

	module "github.com/mvaleri/atrium/internal/services/site/module"
	"github.com/mvaleri/atrium/internal/services/site/routepath"
)

// Module serves the theme preference endpoint.
type Module struct{}

// New returns a prefs module.
func New() Module {
	return Module{}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "prefs" }

// Mount wires preference route handlers.
func (m Module) Mount(deps module.Dependencies) (module.Mount, error) {
	mux := http.NewServeMux()
	h := newHandlers(deps)
	registerRoutes(mux, h)
	return module.Mount{Prefix: routepath.PrefsTheme, Handler: mux}, nil
}
