package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/MKhiriev/account-registry/internal/logger"
	"github.com/MKhiriev/account-registry/internal/namegen"
	"github.com/MKhiriev/account-registry/models"
	"github.com/go-chi/chi/v5"
)

// seedLimit bounds one generate_users call so a stray request cannot fill
// the id space.
const seedLimit = 10000

func (h *Handler) index(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("can you understand me?"))
}

func (h *Handler) save(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	if err := h.accounts.Save(); err != nil {
		log.Err(err).Msg("saving account registry failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Write([]byte("success"))
}

func (h *Handler) load(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	if err := h.accounts.Reload(); err != nil {
		log.Err(err).Msg("reloading account registry failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Write([]byte("success"))
}

func (h *Handler) generateUsers(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	number, err := strconv.Atoi(chi.URLParam(r, "number"))
	if err != nil || number < 0 || number > seedLimit {
		http.Error(w, "invalid number of users", http.StatusBadRequest)
		return
	}

	h.accounts.SeedUsers(number, namegen.Generate)
	log.Info().Int("number", number).Msg("seeded debug users")

	w.Write([]byte("success"))
}

func (h *Handler) debug(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	dump := make(map[uint32]models.User, h.accounts.Count())
	for _, u := range h.accounts.Users() {
		dump[u.UserID] = u
	}

	pretty, err := json.MarshalIndent(dump, "", "  ")
	if err != nil {
		log.Err(err).Msg("rendering registry dump failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Write(pretty)
}
