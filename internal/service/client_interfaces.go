package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/MKhiriev/zotero-sync/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// ClientAuthService manages the account of this device. The API key lives in
// the OS keyring; only the user placeholder is stored in the replica.
type ClientAuthService interface {
	// Login exchanges credentials for an API key, stores the user and the key,
	// and configures the adapter with it.
	Login(ctx context.Context, creds models.Credentials) (models.Session, error)
	// RestoreSession loads the stored session and configures the adapter.
	// It returns ErrNotLoggedIn when none is stored.
	RestoreSession(ctx context.Context) (models.Session, error)
	// Logout forgets the stored API key.
	Logout(ctx context.Context) error
}

// ClientSyncService runs one sync session end to end.
type ClientSyncService interface {
	// Sync reconciles every library of the account with the server. The
	// summary describes the committed work also when an error is returned.
	Sync(ctx context.Context, account models.Session) (models.SyncSummary, error)
}

// ClientLibraryService is the local editing surface of the replica.
type ClientLibraryService interface {
	Get(ctx context.Context, lib models.Library, typ models.ObjectType, key string) (models.Record, error)
	// Save records a local edit; it is pushed on the next sync.
	Save(ctx context.Context, lib models.Library, typ models.ObjectType, key string, body json.RawMessage) (models.Record, error)
	// Delete queues a local deletion. Types the server cannot delete key by
	// key fail with ErrUnsupportedDeletionTarget and nothing is queued.
	Delete(ctx context.Context, lib models.Library, typ models.ObjectType, key string) error
	Status(ctx context.Context) ([]models.LibraryStatus, []models.DeletionEntry, error)
	Subscribe() (<-chan models.ChangeBatch, func())
}

// SessionRunner enforces a single active sync session per account.
type SessionRunner interface {
	Run(ctx context.Context, account models.Session) (models.SyncSummary, error)
	// Cancel stops the active session, if any, at its next checkpoint.
	Cancel()
	// Wait blocks until no session is running.
	Wait()
}

// ClientSyncJob periodically runs sync sessions in the background.
type ClientSyncJob interface {
	Start(ctx context.Context, account models.Session, interval time.Duration)
	Stop()
}
