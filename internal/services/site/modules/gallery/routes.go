package gallery

import (
	"net/http"

	"github.com/mvaleri/atrium/internal/services/site/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.Root+"{$}", h.handleHome)
	mux.HandleFunc(http.MethodPost+" "+routepath.Filter, h.handleFilterSubmit)
	mux.HandleFunc(http.MethodPost+" "+routepath.FilterReset, h.handleFilterReset)
	mux.HandleFunc(http.MethodPost+" "+routepath.Preview, h.handlePreview)
	mux.HandleFunc("/", h.handleNotFound)
}
