package http

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/fieldpress/fieldpress/internal/utils"
	"github.com/fieldpress/fieldpress/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) resolveNode(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	tail := strings.Trim(chi.URLParam(r, "*"), "/")
	var segments []string
	if tail != "" {
		segments = strings.Split(tail, "/")
	}

	resolved, err := h.services.ResolveService.Resolve(ctx, segments)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.OK(resolved), http.StatusOK)
}

func (h *Handler) nodeURL(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		utils.WriteJSON(w, models.Fail("invalid node id"), http.StatusBadRequest)
		return
	}

	url, err := h.services.ResolveService.NodeURL(ctx, chi.URLParam(r, "nodeType"), id)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.OK(map[string]string{"url": url}), http.StatusOK)
}
