package http

import (
	"html/template"
	"net/http"

	"github.com/fieldpress/fieldpress/internal/logger"
	"github.com/fieldpress/fieldpress/internal/utils"
	"github.com/fieldpress/fieldpress/models"
	"github.com/go-chi/chi/v5"
)

// getNodeTypeForm renders a blank editing form for a node type as an HTML
// fragment ready to be embedded in the admin UI.
func (h *Handler) getNodeTypeForm(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	typeName := chi.URLParam(r, "nodeType")

	if !h.registry.HasNodeType(typeName) {
		utils.WriteJSON(w, models.Fail("type is not registered"), http.StatusNotFound)
		return
	}

	fragment, err := h.forms.NodeForm(typeName, nil)
	if err != nil {
		log.Err(err).Str("nodeType", typeName).Msg("form rendering failed")
		utils.WriteJSON(w, models.Fail(http.StatusText(http.StatusInternalServerError)), http.StatusInternalServerError)
		return
	}

	writeHTML(w, fragment)
}

// getNodeForm renders the editing form for an existing node, pre-filled with
// its display-transformed values.
func (h *Handler) getNodeForm(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)
	typeName := chi.URLParam(r, "nodeType")

	node, err := h.services.NodeService.Get(ctx, typeName, chi.URLParam(r, "id"))
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	fragment, err := h.forms.NodeForm(typeName, node.Data)
	if err != nil {
		log.Err(err).Str("nodeType", typeName).Msg("form rendering failed")
		utils.WriteJSON(w, models.Fail(http.StatusText(http.StatusInternalServerError)), http.StatusInternalServerError)
		return
	}

	writeHTML(w, fragment)
}

func writeHTML(w http.ResponseWriter, fragment template.HTML) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(fragment))
}
