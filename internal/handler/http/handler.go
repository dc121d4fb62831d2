// Package http exposes the account registry over HTTP: login/signup, the
// authenticated user search, and the operational save/load/debug routes.
package http

import (
	"github.com/MKhiriev/account-registry/internal/logger"
	"github.com/MKhiriev/account-registry/internal/service"
	"github.com/MKhiriev/account-registry/internal/store"
)

type Handler struct {
	services *service.Services

	// accounts is used directly by the operational routes (save, load,
	// seed, debug), which bypass the service layer by design.
	accounts store.AccountStore

	logger *logger.Logger
}

func NewHandler(services *service.Services, accounts store.AccountStore, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		accounts: accounts,
		logger:   logger,
	}
}
