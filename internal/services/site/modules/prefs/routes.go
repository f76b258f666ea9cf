package prefs

import (
	"net/http"

	"github.com/mvaleri/atrium/internal/services/site/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodPost+" "+routepath.PrefsTheme, h.handleThemeToggle)
}
