package http

import (
	"errors"
	"net/http"

	"github.com/fieldpress/fieldpress/internal/logger"
	"github.com/fieldpress/fieldpress/internal/service"
	"github.com/fieldpress/fieldpress/internal/store"
	"github.com/fieldpress/fieldpress/internal/utils"
	"github.com/fieldpress/fieldpress/models"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrEmptyPath:               http.StatusBadRequest,
	service.ErrInvalidCredentials:      http.StatusUnauthorized,
	service.ErrUserInactive:            http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrTypeNotRegistered:       http.StatusNotFound,
	service.ErrNoRouteMatched:          http.StatusNotFound,
	service.ErrNoURLForNode:            http.StatusNotFound,

	store.ErrNodeNotFound:      http.StatusNotFound,
	store.ErrUserNotFound:      http.StatusNotFound,
	store.ErrInvalidMediaName:  http.StatusBadRequest,
	store.ErrSlugAlreadyExists: http.StatusConflict,
	store.ErrUserAlreadyExists: http.StatusConflict,

	store.ErrBuildingSQLQuery: http.StatusInternalServerError,
	store.ErrExecutingQuery:   http.StatusInternalServerError,
	store.ErrScanningRow:      http.StatusInternalServerError,
	store.ErrScanningRows:     http.StatusInternalServerError,
	store.ErrEncodingData:     http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// respondError translates a service/store error into the uniform failure
// envelope. Validation failures carry the itemized violation list; internal
// failures carry only the generic status text so storage detail never leaks.
func (h *Handler) respondError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	var verr *service.ValidationError
	if errors.As(err, &verr) {
		log.Err(err).Msg("validation failed")
		utils.WriteJSON(w, models.Invalid("validation failed", verr.Violations), http.StatusBadRequest)
		return
	}

	status := statusFromError(err)
	message := http.StatusText(status)
	if status != http.StatusInternalServerError {
		for target := range errorStatusMap {
			if errors.Is(err, target) {
				message = target.Error()
				break
			}
		}
	}

	log.Err(err).Int("status", status).Msg("request failed")
	utils.WriteJSON(w, models.Fail(message), status)
}
