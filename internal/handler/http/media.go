package http

import (
	"net/http"

	"github.com/fieldpress/fieldpress/internal/logger"
	"github.com/fieldpress/fieldpress/internal/utils"
	"github.com/fieldpress/fieldpress/models"
	"github.com/go-chi/chi/v5"
)

// maxUploadBytes caps a single media upload at 32 MiB.
const maxUploadBytes = 32 << 20

// uploadMedia accepts one multipart file under the "file" form field, streams
// it into the media store, and returns the stored name for use in file field
// values.
func (h *Handler) uploadMedia(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)

	file, header, err := r.FormFile("file")
	if err != nil {
		log.Err(err).Msg("missing or unreadable file form field")
		utils.WriteJSON(w, models.Fail("missing file"), http.StatusBadRequest)
		return
	}
	defer file.Close()

	storedName, err := h.services.MediaStore.Save(ctx, header.Filename, file)
	if err != nil {
		log.Err(err).Str("fileName", header.Filename).Msg("storing upload failed")
		utils.WriteJSON(w, models.Fail(http.StatusText(http.StatusInternalServerError)), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.OK(map[string]string{"fileName": storedName}), http.StatusCreated)
}

// deleteMedia removes a stored media file by its stored name, cleaning up
// files that no node's file field references anymore. Deleting a name that is
// already gone succeeds.
func (h *Handler) deleteMedia(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	storedName := chi.URLParam(r, "fileName")
	if err := h.services.MediaStore.Remove(r.Context(), storedName); err != nil {
		log.Err(err).Str("fileName", storedName).Msg("removing media file failed")
		h.respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.OK(map[string]string{"deleted": storedName}), http.StatusOK)
}
