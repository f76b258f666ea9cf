package api

import (
	"bytes"
	"crypto/sha256"
	stderrors "errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/mvaleri/atrium/internal/relate"
	module "github.com/mvaleri/atrium/internal/services/site/module"
	apperrors "github.com/mvaleri/atrium/internal/services/site/platform/errors"
	"github.com/mvaleri/atrium/internal/services/site/platform/httpx"
	"github.com/mvaleri/atrium/internal/services/site/routepath"
)

type handlers struct {
	service service
	deps    runtimeDependencies
}

type runtimeDependencies struct {
	snapshot module.SnapshotFunc
	logger   *log.Logger
}

func newHandlers(s service, deps module.Dependencies) handlers {
	return handlers{service: s, deps: runtimeDependencies{
		snapshot: deps.Snapshot,
		logger:   deps.Logger,
	}}
}

type skillPayload struct {
	ID    string `json:"id"`
	Tag   string `json:"tag"`
	Label string `json:"label"`
	Count int    `json:"count"`
}

type statePayload struct {
	Tag      string   `json:"tag"`
	Filtered bool     `json:"filtered"`
	Visible  []string `json:"visible"`
	Hidden   []string `json:"hidden"`
}

type ecosystemItem struct {
	ID      string   `json:"id"`
	Title   string   `json:"title"`
	Section string   `json:"section"`
	Tags    []string `json:"tags"`
}

type ecosystemEdge struct {
	Item string `json:"item"`
	Tag  string `json:"tag"`
}

type ecosystemPayload struct {
	Items  []ecosystemItem `json:"items"`
	Skills []skillPayload  `json:"skills"`
	Edges  []ecosystemEdge `json:"edges"`
}

func (h handlers) handleSkills(w http.ResponseWriter, r *http.Request) {
	snap, err := h.service.currentSnapshot()
	if err != nil {
		h.writeJSONError(w, err)
		return
	}
	if err := httpx.WriteJSON(w, http.StatusOK, skillPayloads(snap)); err != nil {
		h.logWriteFailure(r, err)
	}
}

// handleState answers with the item partition a filter tag produces. The
// partition comes from the controller's transition notification, the same
// payload page rendering subscribes to.
func (h handlers) handleState(w http.ResponseWriter, r *http.Request) {
	snap, err := h.service.currentSnapshot()
	if err != nil {
		h.writeJSONError(w, err)
		return
	}

	tag := relate.NormalizeTag(r.URL.Query().Get(routepath.SkillParam))
	ctrl := relate.NewController(snap.Index)
	var change *relate.FilterChange
	ctrl.OnFilterChanged(func(c relate.FilterChange) {
		change = &c
	})
	ctrl.Click(tag)

	payload := statePayload{Visible: []string{}, Hidden: []string{}}
	if change != nil {
		payload.Tag = string(change.Tag)
		payload.Filtered = change.Filtered
		payload.Visible = append(payload.Visible, change.Visible...)
		payload.Hidden = append(payload.Hidden, change.Hidden...)
	} else {
		payload.Visible = append(payload.Visible, snap.Index.Items()...)
	}
	if err := httpx.WriteJSON(w, http.StatusOK, payload); err != nil {
		h.logWriteFailure(r, err)
	}
}

func (h handlers) handleEcosystem(w http.ResponseWriter, r *http.Request) {
	snap, err := h.service.currentSnapshot()
	if err != nil {
		h.writeJSONError(w, err)
		return
	}

	payload := ecosystemPayload{
		Items:  []ecosystemItem{},
		Skills: skillPayloads(snap),
		Edges:  []ecosystemEdge{},
	}
	for _, section := range snap.Document.Sections {
		for _, entry := range section.Entries {
			id := strings.TrimSpace(entry.ID)
			item := ecosystemItem{ID: id, Title: entry.Title, Section: section.Kind, Tags: []string{}}
			for _, tag := range snap.Index.TagsOf(id) {
				item.Tags = append(item.Tags, string(tag))
				payload.Edges = append(payload.Edges, ecosystemEdge{Item: id, Tag: string(tag)})
			}
			payload.Items = append(payload.Items, item)
		}
	}
	if err := httpx.WriteJSON(w, http.StatusOK, payload); err != nil {
		h.logWriteFailure(r, err)
	}
}

// handleEcosystemSVG renders the skill map as an SVG document. The render is
// deterministic for a given snapshot and filter, so the ETag lets clients
// revalidate cheaply across content reloads.
func (h handlers) handleEcosystemSVG(w http.ResponseWriter, r *http.Request) {
	snap, err := h.service.currentSnapshot()
	if err != nil {
		h.writeJSONError(w, err)
		return
	}

	tag := relate.NormalizeTag(r.URL.Query().Get(routepath.SkillParam))
	var buf bytes.Buffer
	renderEcosystemSVG(&buf, snap, tag)

	etag := fmt.Sprintf(`"%x"`, sha256.Sum256(buf.Bytes()))
	if match := strings.TrimSpace(r.Header.Get("If-None-Match")); match != "" && match == etag {
		w.Header().Set("ETag", etag)
		w.WriteHeader(http.StatusNotModified)
		return
	}

	w.Header().Set("Content-Type", "image/svg+xml; charset=utf-8")
	w.Header().Set("ETag", etag)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(buf.Bytes()); err != nil {
		h.logWriteFailure(r, err)
	}
}

func (h handlers) handleNotFound(w http.ResponseWriter, r *http.Request) {
	if err := httpx.WriteJSONError(w, http.StatusNotFound, "not found"); err != nil {
		h.logWriteFailure(r, err)
	}
}

func skillPayloads(snap module.Snapshot) []skillPayload {
	skills := snap.Document.Skills
	labelByControlID := make(map[string]string, len(skills))
	for _, skill := range skills {
		if _, dup := labelByControlID[skill.ControlID()]; dup {
			continue
		}
		labelByControlID[skill.ControlID()] = skill.DisplayLabel()
	}

	out := make([]skillPayload, 0, len(snap.Index.Controls()))
	for _, control := range snap.Index.Controls() {
		payload := skillPayload{
			ID:    control.ID,
			Tag:   string(control.Tag),
			Label: string(control.Tag),
			Count: control.RelatedCount,
		}
		if label := strings.TrimSpace(labelByControlID[control.ID]); label != "" {
			payload.Label = label
		}
		out = append(out, payload)
	}
	return out
}

func (h handlers) writeJSONError(w http.ResponseWriter, err error) {
	statusCode := apperrors.HTTPStatus(err)
	message := http.StatusText(statusCode)
	var appErr apperrors.Error
	if stderrors.As(err, &appErr) && appErr.Message != "" {
		message = appErr.Message
	}
	if writeErr := httpx.WriteJSONError(w, statusCode, message); writeErr != nil {
		h.logWriteFailure(nil, writeErr)
	}
}

func (h handlers) logWriteFailure(r *http.Request, err error) {
	if h.deps.logger == nil || err == nil {
		return
	}
	path := "-"
	if r != nil && r.URL != nil {
		path = r.URL.Path
	}
	h.deps.logger.Printf("api response write failed path=%s: %v", path, err)
}
