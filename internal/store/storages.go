package store

import (
	"github.com/MKhiriev/zotero-sync/internal/logger"
)

// Storages groups the repositories of the API server. State lives in
// memory and is lost on restart.
type Storages struct {
	Accounts AccountRepository
	Groups   GroupRepository
	Objects  ObjectRepository
}

func NewStorages(logger *logger.Logger) *Storages {
	logger.Info().Msg("creating in-memory server storages...")
	return &Storages{
		Accounts: NewAccountRepository(logger),
		Groups:   NewGroupRepository(logger),
		Objects:  NewObjectRepository(logger),
	}
}
