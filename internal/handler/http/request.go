package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/account-registry/internal/logger"
	"github.com/MKhiriev/account-registry/models"
)

// decodeBody parses a JSON request body into dst. On failure it writes a
// 400 with a structured malformed-request message and returns false; the
// caller must return immediately.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		logger.FromRequest(r).Err(err).Msg("malformed request body")
		http.Error(w, "malformed request body", http.StatusBadRequest)
		return false
	}
	return true
}

// decodeCredentials parses and checks a username/password body. Requests
// missing either field are rejected here with a 400 rather than reaching
// the services as half-empty credentials.
func decodeCredentials(w http.ResponseWriter, r *http.Request) (models.LoginInformation, bool) {
	var creds models.LoginInformation
	if !decodeBody(w, r, &creds) {
		return models.LoginInformation{}, false
	}

	if creds.Username == "" || creds.Password == "" {
		http.Error(w, "missing credential fields", http.StatusBadRequest)
		return models.LoginInformation{}, false
	}

	return creds, true
}
