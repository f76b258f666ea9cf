// Package api serves the machine-readable views of the gallery: skill
// counts, filter state partitions, and the skill ecosystem as JSON or SVG.
package api

import (
	"net/http"

	module "github.com/mvaleri/atrium/internal/services/site/module"
	"github.com/mvaleri/atrium/internal/services/site/routepath"
)

// Module serves the JSON and SVG API routes.
type Module struct{}

// New returns an api module.
func New() Module {
	return Module{}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "api" }

// Mount wires api route handlers.
func (m Module) Mount(deps module.Dependencies) (module.Mount, error) {
	mux := http.NewServeMux()
	svc := newService(deps.Snapshot)
	h := newHandlers(svc, deps)
	registerRoutes(mux, h)
	return module.Mount{Prefix: routepath.APIPrefix, Handler: mux}, nil
}
