package gallery

import (
	"log"
	"net/http"
	"strings"

	"github.com/mvaleri/atrium/internal/relate"
	module "github.com/mvaleri/atrium/internal/services/site/module"
	apperrors "github.com/mvaleri/atrium/internal/services/site/platform/errors"
	"github.com/mvaleri/atrium/internal/services/site/platform/httpx"
	sitei18n "github.com/mvaleri/atrium/internal/services/site/platform/i18n"
	"github.com/mvaleri/atrium/internal/services/site/platform/pagerender"
	"github.com/mvaleri/atrium/internal/services/site/platform/weberror"
	"github.com/mvaleri/atrium/internal/services/site/routepath"
	"github.com/mvaleri/atrium/internal/services/site/templates"
)

const (
	previewEnter = "enter"
	previewLeave = "leave"
)

type handlers struct {
	service service
	deps    runtimeDependencies
}

type runtimeDependencies struct {
	snapshot     module.SnapshotFunc
	logger       *log.Logger
	assetBaseURL string
}

func newRuntimeDependencies(deps module.Dependencies) runtimeDependencies {
	return runtimeDependencies{
		snapshot:     deps.Snapshot,
		logger:       deps.Logger,
		assetBaseURL: deps.AssetBaseURL,
	}
}

func (d runtimeDependencies) moduleDependencies() module.Dependencies {
	return module.Dependencies{
		Snapshot:     d.snapshot,
		Logger:       d.logger,
		AssetBaseURL: d.assetBaseURL,
	}
}

func newHandlers(s service, deps module.Dependencies) handlers {
	return handlers{service: s, deps: newRuntimeDependencies(deps)}
}

func (h handlers) handleHome(w http.ResponseWriter, r *http.Request) {
	snap, err := h.service.currentSnapshot()
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	seed := relate.NormalizeTag(r.URL.Query().Get(routepath.SkillParam))
	ctrl := relate.NewController(snap.Index, relate.WithFilter(seed))
	view := buildGalleryView(snap, ctrl, h.pageLocalizer(r))
	h.writePage(w, r, pagerender.ModulePage{
		Fragment: templates.Fragment{Name: "gallery", Data: view},
	})
}

func (h handlers) handleFilterSubmit(w http.ResponseWriter, r *http.Request) {
	snap, err := h.service.currentSnapshot()
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if err := r.ParseForm(); err != nil {
		h.writeError(w, r, apperrors.EK(apperrors.KindInvalidInput, "errors.invalid_input", "failed to parse filter form"))
		return
	}
	ctrl := h.seededController(snap, r)
	ctrl.Click(relate.Tag(r.FormValue(routepath.SkillParam)))
	h.writeGalleryState(w, r, snap, ctrl)
}

func (h handlers) handleFilterReset(w http.ResponseWriter, r *http.Request) {
	snap, err := h.service.currentSnapshot()
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if err := r.ParseForm(); err != nil {
		h.writeError(w, r, apperrors.EK(apperrors.KindInvalidInput, "errors.invalid_input", "failed to parse reset form"))
		return
	}
	ctrl := h.seededController(snap, r)
	ctrl.Reset()
	h.writeGalleryState(w, r, snap, ctrl)
}

func (h handlers) handlePreview(w http.ResponseWriter, r *http.Request) {
	snap, err := h.service.currentSnapshot()
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if err := r.ParseForm(); err != nil {
		h.writeError(w, r, apperrors.EK(apperrors.KindInvalidInput, "errors.invalid_input", "failed to parse preview form"))
		return
	}
	if !httpx.IsHTMXRequest(r) {
		http.Redirect(w, r, routepath.Root, http.StatusFound)
		return
	}

	ctrl := h.seededController(snap, r)
	item := strings.TrimSpace(r.FormValue(routepath.ItemParam))
	switch strings.TrimSpace(r.FormValue(routepath.ActionParam)) {
	case previewEnter:
		ctrl.EnterItem(item)
	case previewLeave:
		ctrl.LeaveItem(item)
	default:
		h.writeError(w, r, apperrors.EK(apperrors.KindInvalidInput, "errors.invalid_input", "preview action must be enter or leave"))
		return
	}

	rail := buildRailView(snap, ctrl, h.pageLocalizer(r))
	h.writePage(w, r, pagerender.ModulePage{
		Fragment: templates.Fragment{Name: "skill_rail", Data: rail},
	})
}

func (h handlers) handleNotFound(w http.ResponseWriter, r *http.Request) {
	weberror.WriteAppError(w, r, http.StatusNotFound, h.deps.moduleDependencies())
}

// seededController rebuilds the interaction state a stateless request carries
// in its "current" field, then attaches the transition log sinks.
func (h handlers) seededController(snap module.Snapshot, r *http.Request) *relate.Controller {
	current := relate.NormalizeTag(r.FormValue(routepath.CurrentParam))
	ctrl := relate.NewController(snap.Index, relate.WithFilter(current))
	if logger := h.deps.logger; logger != nil {
		ctrl.OnFilterChanged(func(change relate.FilterChange) {
			logger.Printf("gallery filter tag=%q filtered=%t visible=%d hidden=%d",
				change.Tag, change.Filtered, len(change.Visible), len(change.Hidden))
		})
		ctrl.OnPreviewChanged(func(change relate.PreviewChange) {
			logger.Printf("gallery preview item=%q active=%t related=%d",
				change.ItemID, change.Active, len(change.Related))
		})
	}
	return ctrl
}

// writeGalleryState answers a filter mutation: fragment swaps carry the new
// canonical URL for the history stack, plain form posts redirect to it.
func (h handlers) writeGalleryState(w http.ResponseWriter, r *http.Request, snap module.Snapshot, ctrl *relate.Controller) {
	filter, _ := ctrl.CurrentFilter()
	location := routepath.HomeFiltered(string(filter))
	if !httpx.IsHTMXRequest(r) {
		http.Redirect(w, r, location, http.StatusFound)
		return
	}
	view := buildGalleryView(snap, ctrl, h.pageLocalizer(r))
	h.writePage(w, r, pagerender.ModulePage{
		PushURL:  location,
		Fragment: templates.Fragment{Name: "gallery", Data: view},
	})
}

func (h handlers) pageLocalizer(r *http.Request) sitei18n.Localizer {
	tag, _ := sitei18n.ResolveTag(r)
	return sitei18n.Printer(tag)
}

func (h handlers) writePage(w http.ResponseWriter, r *http.Request, page pagerender.ModulePage) {
	if err := pagerender.WriteModulePage(w, r, h.deps.moduleDependencies(), page); err != nil {
		h.writeError(w, r, err)
	}
}

func (h handlers) writeError(w http.ResponseWriter, r *http.Request, err error) {
	weberror.WriteModuleError(w, r, err, h.deps.moduleDependencies())
}
