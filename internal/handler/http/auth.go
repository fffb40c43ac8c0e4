package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/fieldpress/fieldpress/internal/logger"
	"github.com/fieldpress/fieldpress/internal/utils"
	"github.com/fieldpress/fieldpress/models"
)

type credentialsRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	User  models.User `json:"user"`
	Token string      `json:"token"`
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSON(w, models.Fail("Invalid JSON was passed"), http.StatusBadRequest)
		return
	}

	registered, err := h.services.AuthService.Register(ctx, req.Username, req.Email, req.Password)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, registered)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		utils.WriteJSON(w, models.Fail(http.StatusText(http.StatusInternalServerError)), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	utils.WriteJSON(w, models.OK(authResponse{User: registered, Token: token.SignedString}), http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSON(w, models.Fail("Invalid JSON was passed"), http.StatusBadRequest)
		return
	}

	found, err := h.services.AuthService.Login(ctx, req.Username, req.Password)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	log.Debug().Int64("id", found.ID).Str("username", found.Username).Msg("user successfully logged in")

	token, err := h.services.AuthService.CreateToken(ctx, found)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		utils.WriteJSON(w, models.Fail(http.StatusText(http.StatusInternalServerError)), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	utils.WriteJSON(w, models.OK(authResponse{User: found, Token: token.SignedString}), http.StatusOK)
}
