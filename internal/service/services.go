package service

import (
	"github.com/MKhiriev/zotero-sync/internal/config"
	"github.com/MKhiriev/zotero-sync/internal/crypto"
	"github.com/MKhiriev/zotero-sync/internal/logger"
	"github.com/MKhiriev/zotero-sync/internal/store"
	"github.com/MKhiriev/zotero-sync/internal/validators"
)

// Services is the service layer of the reference API server.
type Services struct {
	AuthService    AuthService
	LibraryService LibraryService
}

func NewServices(storages *store.Storages, cfg *config.ServerConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:    NewAuthService(storages.Accounts, crypto.NewPasswordHasher(), cfg, logger),
		LibraryService: NewLibraryService(storages.Groups, storages.Objects, validators.NewObjectValidator(MaxWriteObjects), logger),
	}
}
