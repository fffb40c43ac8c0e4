package http

import (
	"net/http"

	"github.com/fieldpress/fieldpress/internal/utils"
	"github.com/fieldpress/fieldpress/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) listBlockTypes(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.OK(h.registry.BlockTypes()), http.StatusOK)
}

func (h *Handler) getBlockType(w http.ResponseWriter, r *http.Request) {
	bt, ok := h.registry.BlockType(chi.URLParam(r, "blockType"))
	if !ok {
		utils.WriteJSON(w, models.Fail("type is not registered"), http.StatusNotFound)
		return
	}

	utils.WriteJSON(w, models.OK(bt), http.StatusOK)
}

func (h *Handler) getBlockTypeFields(w http.ResponseWriter, r *http.Request) {
	bt, ok := h.registry.BlockType(chi.URLParam(r, "blockType"))
	if !ok {
		utils.WriteJSON(w, models.Fail("type is not registered"), http.StatusNotFound)
		return
	}

	utils.WriteJSON(w, models.OK(bt.Fields), http.StatusOK)
}
