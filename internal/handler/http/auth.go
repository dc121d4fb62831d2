package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/account-registry/internal/logger"
	"github.com/MKhiriev/account-registry/internal/service"
	"github.com/MKhiriev/account-registry/internal/utils"
	"github.com/MKhiriev/account-registry/models"
)

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	creds, ok := decodeCredentials(w, r)
	if !ok {
		return
	}

	result, err := h.services.AuthService.Login(ctx, creds)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			http.Error(w, "invalid data provided", http.StatusBadRequest)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user login")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	h.writeLoginResult(w, r, result)
}

func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	creds, ok := decodeCredentials(w, r)
	if !ok {
		return
	}

	result, err := h.services.AuthService.Signup(ctx, creds)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			http.Error(w, "invalid data provided", http.StatusBadRequest)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user signup")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	h.writeLoginResult(w, r, result)
}

// writeLoginResult serializes a login/signup result. Successful attempts
// additionally carry a Bearer token in the Authorization header so clients
// can authenticate follow-up queries without re-sending the password.
func (h *Handler) writeLoginResult(w http.ResponseWriter, r *http.Request, result models.LoginResult) {
	log := logger.FromRequest(r)

	if result.Outcome == models.OutcomeSuccess {
		token, err := h.services.AuthService.CreateToken(r.Context(), result.UserID)
		if err != nil {
			log.Err(err).Msg("creation of token failed")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	}

	if _, err := utils.WriteJSON(w, result, http.StatusOK); err != nil {
		log.Err(err).Msg("writing login result failed")
	}
}
