package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/fieldpress/fieldpress/internal/logger"
	"github.com/fieldpress/fieldpress/internal/schema"
	"github.com/fieldpress/fieldpress/internal/store"
	"github.com/fieldpress/fieldpress/internal/utils"
	"github.com/fieldpress/fieldpress/models"
	"github.com/go-chi/chi/v5"
)

// nodeTypeSchema is the introspection payload served to form-rendering
// clients. Hooks are func-typed and never serialize.
type nodeTypeSchema struct {
	Type     string         `json:"type"`
	Settings any            `json:"settings"`
	Fields   []schema.Field `json:"fields"`
}

func (h *Handler) getNodeTypeFields(w http.ResponseWriter, r *http.Request) {
	typeName := chi.URLParam(r, "nodeType")

	nt, ok := h.registry.NodeType(typeName)
	if !ok {
		utils.WriteJSON(w, models.Fail("type is not registered"), http.StatusNotFound)
		return
	}

	utils.WriteJSON(w, models.OK(nodeTypeSchema{
		Type:     nt.Name,
		Settings: nt.Settings,
		Fields:   nt.Fields,
	}), http.StatusOK)
}

func (h *Handler) listNodes(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	typeName := chi.URLParam(r, "nodeType")

	params := store.ListParams{
		Search: r.URL.Query().Get("search"),
	}
	if page := r.URL.Query().Get("page"); page != "" {
		params.Page, _ = strconv.Atoi(page)
	}
	if limit := r.URL.Query().Get("limit"); limit != "" {
		params.Limit, _ = strconv.Atoi(limit)
	}

	list, err := h.services.NodeService.List(ctx, typeName, params)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.OK(list), http.StatusOK)
}

func (h *Handler) getNode(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	node, err := h.services.NodeService.Get(ctx, chi.URLParam(r, "nodeType"), chi.URLParam(r, "id"))
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.OK(node), http.StatusOK)
}

func (h *Handler) createNode(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)
	typeName := chi.URLParam(r, "nodeType")

	var input schema.Values
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSON(w, models.Fail("Invalid JSON was passed"), http.StatusBadRequest)
		return
	}

	userID, _ := utils.GetUserIDFromContext(ctx)

	created, err := h.services.NodeService.Create(ctx, typeName, input, userID)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.OK(created), http.StatusCreated)
}

func (h *Handler) updateNode(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)
	typeName := chi.URLParam(r, "nodeType")

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		utils.WriteJSON(w, models.Fail("invalid node id"), http.StatusBadRequest)
		return
	}

	var input schema.Values
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSON(w, models.Fail("Invalid JSON was passed"), http.StatusBadRequest)
		return
	}

	updated, err := h.services.NodeService.Update(ctx, typeName, id, input)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.OK(updated), http.StatusOK)
}

func (h *Handler) deleteNode(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	typeName := chi.URLParam(r, "nodeType")

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		utils.WriteJSON(w, models.Fail("invalid node id"), http.StatusBadRequest)
		return
	}

	if err := h.services.NodeService.Delete(ctx, typeName, id); err != nil {
		h.respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.OK(map[string]any{"deleted": id}), http.StatusOK)
}
