package service

import (
	"github.com/MKhiriev/account-registry/internal/config"
	"github.com/MKhiriev/account-registry/internal/logger"
	"github.com/MKhiriev/account-registry/internal/store"
)

type Services struct {
	AuthService  AuthService
	QueryService QueryService
}

func NewServices(accounts store.AccountStore, cfg config.App, logger *logger.Logger) *Services {
	return &Services{
		AuthService:  NewAuthService(accounts, cfg, logger),
		QueryService: NewQueryService(accounts, logger),
	}
}
