package contact

import (
	"log"
	"net/http"
	"strings"

	module "github.com/mvaleri/atrium/internal/services/site/module"
	apperrors "github.com/mvaleri/atrium/internal/services/site/platform/errors"
	"github.com/mvaleri/atrium/internal/services/site/platform/httpx"
	sitei18n "github.com/mvaleri/atrium/internal/services/site/platform/i18n"
	"github.com/mvaleri/atrium/internal/services/site/platform/pagerender"
	"github.com/mvaleri/atrium/internal/services/site/platform/weberror"
	"github.com/mvaleri/atrium/internal/services/site/routepath"
	"github.com/mvaleri/atrium/internal/services/site/storage"
	"github.com/mvaleri/atrium/internal/services/site/templates"
)

// honeypotField is a hidden input humans never fill. Submissions that carry
// a value are dropped while still looking successful.
const honeypotField = "legion"

type handlers struct {
	service service
	deps    runtimeDependencies
}

type runtimeDependencies struct {
	snapshot     module.SnapshotFunc
	store        storage.Store
	logger       *log.Logger
	assetBaseURL string
}

func newRuntimeDependencies(deps module.Dependencies) runtimeDependencies {
	return runtimeDependencies{
		snapshot:     deps.Snapshot,
		store:        deps.Store,
		logger:       deps.Logger,
		assetBaseURL: deps.AssetBaseURL,
	}
}

func (d runtimeDependencies) moduleDependencies() module.Dependencies {
	return module.Dependencies{
		Snapshot:     d.snapshot,
		Store:        d.store,
		Logger:       d.logger,
		AssetBaseURL: d.assetBaseURL,
	}
}

func newHandlers(s service, deps module.Dependencies) handlers {
	return handlers{service: s, deps: newRuntimeDependencies(deps)}
}

func (h handlers) handleForm(w http.ResponseWriter, r *http.Request) {
	loc, _ := h.pageLocalizer(r)
	view := buildContactView(loc)
	view.Sent = r.URL.Query().Get(routepath.SentParam) == "1"
	h.writeContactPage(w, r, view, http.StatusOK)
}

func (h handlers) handleSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.writeError(w, r, apperrors.EK(apperrors.KindInvalidInput, "errors.invalid_input", "failed to parse contact form"))
		return
	}
	if strings.TrimSpace(r.FormValue(honeypotField)) != "" {
		h.redirectSent(w, r)
		return
	}

	loc, lang := h.pageLocalizer(r)
	input := Input{
		Name:   r.FormValue("name"),
		Email:  r.FormValue("email"),
		Body:   r.FormValue("message"),
		Locale: lang,
	}
	if keys := validate(input); len(keys) > 0 {
		view := buildContactView(loc)
		view.Name = input.Name
		view.Email = input.Email
		view.Body = input.Body
		view.FieldErrors = localizeFieldErrors(loc, keys)
		h.writeContactPage(w, r, view, http.StatusUnprocessableEntity)
		return
	}
	h.service.submit(input)
	h.redirectSent(w, r)
}

func (h handlers) redirectSent(w http.ResponseWriter, r *http.Request) {
	location := routepath.ContactSent()
	if httpx.IsHTMXRequest(r) {
		httpx.WriteHXRedirect(w, location)
		return
	}
	http.Redirect(w, r, location, http.StatusFound)
}

func buildContactView(loc sitei18n.Localizer) templates.ContactView {
	return templates.ContactView{
		Title:        localize(loc, "site.contact.title"),
		Action:       routepath.Contact,
		NameLabel:    localize(loc, "site.contact.name"),
		EmailLabel:   localize(loc, "site.contact.email"),
		MessageLabel: localize(loc, "site.contact.message"),
		SendLabel:    localize(loc, "site.contact.send"),
		SentLabel:    localize(loc, "site.contact.sent"),
	}
}

func localizeFieldErrors(loc sitei18n.Localizer, keys map[string]string) map[string]string {
	out := make(map[string]string, len(keys))
	for field, key := range keys {
		out[field] = localize(loc, key)
	}
	return out
}

func localize(loc sitei18n.Localizer, key string) string {
	if loc == nil {
		return key
	}
	return loc.Sprintf(key)
}

func (h handlers) pageLocalizer(r *http.Request) (sitei18n.Localizer, string) {
	tag, _ := sitei18n.ResolveTag(r)
	return sitei18n.Printer(tag), tag.String()
}

func (h handlers) writeContactPage(w http.ResponseWriter, r *http.Request, view templates.ContactView, statusCode int) {
	if err := pagerender.WriteModulePage(w, r, h.deps.moduleDependencies(), pagerender.ModulePage{
		Title:      view.Title,
		StatusCode: statusCode,
		ActiveNav:  "contact",
		Fragment:   templates.Fragment{Name: "contact", Data: view},
	}); err != nil {
		h.writeError(w, r, err)
	}
}

func (h handlers) writeError(w http.ResponseWriter, r *http.Request, err error) {
	weberror.WriteModuleError(w, r, err, h.deps.moduleDependencies())
}
