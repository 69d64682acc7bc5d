// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "strings"

// validate checks that the final merged [StructuredConfig] satisfies the
// invariants shared by every binary. Client-only requirements (such as the
// replica DSN) are checked by [ClientConfig.validate].
func (cfg *StructuredConfig) validate() error {
	if cfg.Sync.MaxConflictRounds < 0 || cfg.Sync.MaxTransportAttempts < 0 {
		return ErrInvalidSyncConfigs
	}

	switch cfg.Sync.SessionPolicy {
	case "", SessionPolicyJoin, SessionPolicyIgnore, SessionPolicyQueue:
	default:
		return ErrInvalidSyncConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Sync.MaxConflictRounds < 1 || cfg.Sync.MaxTransportAttempts < 1 {
		return ErrInvalidSyncConfigs
	}

	if cfg.Workers.SyncInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	if cfg.App.KeyringService == "" {
		return ErrInvalidAppConfigs
	}

	return nil
}
