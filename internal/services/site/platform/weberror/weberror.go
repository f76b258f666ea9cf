// Package weberror renders shared shell error responses for site modules.
package weberror

import (
	"net/http"
	"strings"

	module "github.com/mvaleri/atrium/internal/services/site/module"
	apperrors "github.com/mvaleri/atrium/internal/services/site/platform/errors"
	sitei18n "github.com/mvaleri/atrium/internal/services/site/platform/i18n"
	"github.com/mvaleri/atrium/internal/services/site/platform/pagerender"
	"github.com/mvaleri/atrium/internal/services/site/routepath"
	"github.com/mvaleri/atrium/internal/services/site/templates"
)

// ShouldRenderAppError reports whether status should use error-page UX.
func ShouldRenderAppError(statusCode int) bool {
	return statusCode == http.StatusNotFound || statusCode >= http.StatusInternalServerError
}

// PublicMessage resolves a user-safe localized error message.
func PublicMessage(loc sitei18n.Localizer, err error) string {
	if err == nil {
		return ""
	}
	if loc != nil {
		if key := apperrors.LocalizationKey(err); key != "" {
			if localized := strings.TrimSpace(loc.Sprintf(key)); localized != "" && localized != key {
				return localized
			}
		}
	}
	statusCode := apperrors.HTTPStatus(err)
	if statusCode < http.StatusBadRequest {
		statusCode = http.StatusInternalServerError
	}
	if text := strings.TrimSpace(http.StatusText(statusCode)); text != "" {
		return text
	}
	return http.StatusText(http.StatusInternalServerError)
}

// WriteAppError writes a localized shell error response for full-page and fragment requests.
func WriteAppError(w http.ResponseWriter, r *http.Request, statusCode int, deps module.Dependencies) {
	if w == nil {
		return
	}
	if !ShouldRenderAppError(statusCode) {
		statusCode = http.StatusInternalServerError
	}

	tag, _ := sitei18n.ResolveTag(r)
	loc := sitei18n.Printer(tag)

	view := templates.ErrorView{
		StatusCode: statusCode,
		Title:      http.StatusText(statusCode),
		Message:    messageForStatus(loc, statusCode),
		HomeURL:    routepath.Root,
		HomeLabel:  loc.Sprintf("site.error.back_home"),
	}
	if err := pagerender.WriteModulePage(w, r, deps, pagerender.ModulePage{
		Title:      view.Title,
		StatusCode: statusCode,
		Fragment:   templates.Fragment{Name: "error_state", Data: view},
	}); err != nil {
		http.Error(w, view.Message, statusCode)
	}
}

// WriteModuleError writes a module-safe localized error response.
func WriteModuleError(w http.ResponseWriter, r *http.Request, err error, deps module.Dependencies) {
	if w == nil {
		return
	}
	statusCode := apperrors.HTTPStatus(err)
	if ShouldRenderAppError(statusCode) {
		WriteAppError(w, r, statusCode, deps)
		return
	}
	tag, _ := sitei18n.ResolveTag(r)
	http.Error(w, PublicMessage(sitei18n.Printer(tag), err), statusCode)
}

// messageForStatus maps an error status to its catalog message.
func messageForStatus(loc sitei18n.Localizer, statusCode int) string {
	var key string
	switch {
	case statusCode == http.StatusNotFound:
		key = "errors.page_not_found"
	case statusCode == http.StatusServiceUnavailable:
		key = "errors.unavailable"
	default:
		key = "errors.internal"
	}
	if localized := strings.TrimSpace(loc.Sprintf(key)); localized != "" && localized != key {
		return localized
	}
	return http.StatusText(statusCode)
}
