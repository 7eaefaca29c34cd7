package service

import (
	"github.com/MKhiriev/go-budget-sync/internal/config"
	"github.com/MKhiriev/go-budget-sync/internal/logger"
	"github.com/MKhiriev/go-budget-sync/internal/store"
)

// Services bundles the server-side business layer.
type Services struct {
	AuthService     AuthService
	DocumentService DocumentService
}

func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService: NewAuthService(storages.Users, cfg.Auth, logger),
		DocumentService: NewDocumentValidationService().
			Wrap(NewDocumentService(storages.Documents, logger)),
	}
}
