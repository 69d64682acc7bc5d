package config

import (
	"fmt"
	"time"

	"github.com/spf13/pflag"
)

// Session policies accepted by [ClientSync.SessionPolicy].
const (
	SessionPolicyJoin   = "join"
	SessionPolicyIgnore = "ignore"
	SessionPolicyQueue  = "queue"
)

// ClientApp holds client-side application settings derived from the shared
// structured config.
type ClientApp struct {
	// KeyringService is the OS keyring service the API key is stored under.
	KeyringService string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the base URL of the remote API.
	HTTPAddress string
	// RequestTimeout is the timeout of a single outbound request.
	RequestTimeout time.Duration
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite file path of the local replica.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientSync holds the sync engine budgets.
type ClientSync struct {
	MaxConflictRounds    int
	MaxTransportAttempts int
	SessionPolicy        string
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// SyncInterval defines how often the background sync job runs.
	SyncInterval time.Duration
}

// ClientLog holds the client log file location.
type ClientLog struct {
	File string
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Storage ClientStorage
	Sync    ClientSync
	Workers ClientWorkers
	Log     ClientLog
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to the client runtime, and validates the resulting [ClientConfig].
func GetClientConfig(flags *pflag.FlagSet) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(flags)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)

	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		App: ClientApp{
			KeyringService: cfg.App.KeyringService,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				DSN: cfg.Storage.DB.DSN,
			},
		},
		Sync: ClientSync{
			MaxConflictRounds:    cfg.Sync.MaxConflictRounds,
			MaxTransportAttempts: cfg.Sync.MaxTransportAttempts,
			SessionPolicy:        cfg.Sync.SessionPolicy,
		},
		Workers: ClientWorkers{SyncInterval: cfg.Workers.SyncInterval},
		Log:     ClientLog{File: cfg.Log.File},
	}
}
