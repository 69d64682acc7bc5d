package service

import (
	"context"
	"slices"

	"github.com/MKhiriev/zotero-sync/models"
)

// syncService is the stateless version-diff planner.
type syncService struct{}

// NewSyncService constructs a SyncService ready for use.
func NewSyncService() SyncService {
	return &syncService{}
}

// BuildSyncPlan implements SyncService.
//
// Pass 1 walks the remote list: a key is changed when it is unknown locally
// or its remote version is newer than the local one. Pass 2 walks the local
// replica and, for a full list only, collects keys the server no longer has.
// Records at version 0 were never on the server and are never tombstoned.
// Both slices come back sorted.
func (s *syncService) BuildSyncPlan(ctx context.Context, remote models.RemoteVersions, local map[string]models.Record) (models.SyncPlan, error) {
	var plan models.SyncPlan

	for key, version := range remote.Versions {
		if err := ctx.Err(); err != nil {
			return models.SyncPlan{}, err
		}

		rec, ok := local[key]
		if !ok || version > rec.Version {
			plan.Changed = append(plan.Changed, key)
		}
	}

	if remote.Full {
		for key, rec := range local {
			if err := ctx.Err(); err != nil {
				return models.SyncPlan{}, err
			}

			if _, ok := remote.Versions[key]; ok || rec.Version == 0 {
				continue
			}
			plan.Tombstones = append(plan.Tombstones, key)
		}
	}

	slices.Sort(plan.Changed)
	slices.Sort(plan.Tombstones)
	return plan, nil
}
