package http

import (
	"encoding/json"
	"net/http"

	"github.com/buckylist/bucky/internal/logger"
	"github.com/buckylist/bucky/internal/service"
	"github.com/buckylist/bucky/internal/utils"
	"github.com/buckylist/bucky/models"
)

// register creates a new account from a JSON body with username, email, and
// password. On success it answers 201 with the created username.
func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	ctx := r.Context()

	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("error decoding register request body")
		h.respondError(w, r, service.ErrInvalidDataProvided)
		return
	}

	user, err := h.services.AuthService.RegisterUser(ctx, req)
	if err != nil {
		log.Err(err).Msg("user registration failed")
		h.respondError(w, r, err)
		return
	}

	log.Info().Str("username", user.Username).Msg("user registered")
	utils.WriteJSON(w, models.RegisterResponse{Username: user.Username}, http.StatusCreated)
}

// login verifies an email/password pair and issues a signed JWT. The response
// carries the token string and its lifetime in seconds.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	ctx := r.Context()

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("error decoding login request body")
		h.respondError(w, r, service.ErrInvalidDataProvided)
		return
	}

	user, err := h.services.AuthService.Login(ctx, req.Email, req.Password)
	if err != nil {
		log.Err(err).Msg("login failed")
		h.respondError(w, r, err)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, user)
	if err != nil {
		log.Err(err).Msg("token creation failed")
		h.respondError(w, r, err)
		return
	}

	log.Info().Int64("user_id", user.UserID).Msg("user logged in")
	utils.WriteJSON(w, models.LoginResponse{
		Token:      token.SignedString,
		Expiration: int64(h.services.AuthService.TokenDuration().Seconds()),
	}, http.StatusOK)
}
