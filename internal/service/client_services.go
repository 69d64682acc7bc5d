package service

import (
	"github.com/MKhiriev/zotero-sync/internal/adapter"
	"github.com/MKhiriev/zotero-sync/internal/config"
	"github.com/MKhiriev/zotero-sync/internal/logger"
	"github.com/MKhiriev/zotero-sync/internal/store"
	"github.com/MKhiriev/zotero-sync/internal/telemetry"
)

type ClientServices struct {
	AuthService    ClientAuthService
	SyncService    ClientSyncService
	LibraryService ClientLibraryService
	Sessions       SessionRunner
	SyncJob        ClientSyncJob
	Metrics        *telemetry.SyncMetrics
}

func NewClientServices(cfg *config.ClientConfig, storages *store.ClientStorages, serverAdapter adapter.ServerAdapter, logger *logger.Logger) *ClientServices {
	metrics := telemetry.NewSyncMetrics()

	syncSvc := NewClientSyncService(storages, serverAdapter, cfg.Sync, metrics, logger)
	sessions := NewSyncController(syncSvc, cfg.Sync.SessionPolicy, cfg.Storage.DB.DSN+".lock", logger)

	return &ClientServices{
		AuthService:    NewClientAuthService(storages.Libraries, serverAdapter, cfg.App.KeyringService, logger),
		SyncService:    syncSvc,
		LibraryService: NewClientLibraryService(storages, logger),
		Sessions:       sessions,
		SyncJob:        NewClientSyncJob(sessions, logger),
		Metrics:        metrics,
	}
}
