package http

import (
	"net/http"

	"github.com/MKhiriev/account-registry/internal/logger"
	"github.com/MKhiriev/account-registry/internal/utils"
	"github.com/MKhiriev/account-registry/models"
)

func (h *Handler) lookupUsername(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var body struct {
		Username string `json:"username"`
	}
	if !decodeBody(w, r, &body) {
		return
	}
	if body.Username == "" {
		http.Error(w, "missing username", http.StatusBadRequest)
		return
	}

	id, err := h.services.QueryService.LookupUsername(ctx, body.Username)
	if err != nil {
		http.Error(w, "username not found", http.StatusNotFound)
		return
	}

	log.Debug().Uint32("id", id).Str("username", body.Username).Msg("username resolved")
	utils.WriteJSON(w, id, http.StatusOK)
}

func (h *Handler) queryUsers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var body models.QueryRequest
	if !decodeBody(w, r, &body) {
		return
	}

	if !h.authenticate(w, r, models.LoginInformation{Username: body.Username, Password: body.Password}) {
		return
	}

	matches := h.services.QueryService.Search(ctx, body.Query)
	if _, err := utils.WriteJSON(w, matches, http.StatusOK); err != nil {
		log.Err(err).Msg("writing search results failed")
	}
}

func (h *Handler) getCode(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	creds, ok := decodeCredentials(w, r)
	if !ok {
		return
	}

	result, err := h.services.AuthService.Login(ctx, creds)
	if err != nil {
		log.Err(err).Msg("unexpected error occurred during login")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	if result.Outcome != models.OutcomeSuccess {
		utils.WriteJSON(w, result, http.StatusUnauthorized)
		return
	}

	utils.WriteJSON(w, h.services.QueryService.CodeFor(result.UserID), http.StatusOK)
}

// authenticate gates the search endpoint. A Bearer token, when presented,
// wins over in-body credentials; otherwise the credential pair must pass a
// full login. Failed logins echo the failed LoginResult to the caller.
func (h *Handler) authenticate(w http.ResponseWriter, r *http.Request, creds models.LoginInformation) bool {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if header := r.Header.Get("Authorization"); header != "" {
		raw, err := utils.ParseBearerToken(header)
		if err != nil {
			http.Error(w, "invalid authorization header", http.StatusUnauthorized)
			return false
		}
		token, err := h.services.AuthService.ParseToken(ctx, raw)
		if err != nil {
			http.Error(w, "token is expired or invalid", http.StatusUnauthorized)
			return false
		}
		log.Debug().Uint32("id", token.UserID).Msg("caller authenticated by token")
		return true
	}

	if creds.Username == "" || creds.Password == "" {
		http.Error(w, "missing credential fields", http.StatusBadRequest)
		return false
	}

	result, err := h.services.AuthService.Login(ctx, creds)
	if err != nil {
		log.Err(err).Msg("unexpected error occurred during login")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return false
	}
	if result.Outcome != models.OutcomeSuccess {
		utils.WriteJSON(w, result, http.StatusUnauthorized)
		return false
	}

	return true
}
