package api

import (
	"net/http"

	"github.com/mvaleri/atrium/internal/services/site/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.APISkills, h.handleSkills)
	mux.HandleFunc(http.MethodGet+" "+routepath.APIState, h.handleState)
	mux.HandleFunc(http.MethodGet+" "+routepath.APIEcosystem, h.handleEcosystem)
	mux.HandleFunc(http.MethodGet+" "+routepath.APIEcosystemSVG, h.handleEcosystemSVG)
	mux.HandleFunc(routepath.APIPrefix, h.handleNotFound)
}
