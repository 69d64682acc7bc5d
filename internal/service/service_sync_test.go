// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/zotero-sync/models"
)

// rec is a shorthand constructor for a local record used only in tests.
func rec(key string, version int64, status models.RecordStatus) models.Record {
	return models.Record{Key: key, Version: version, Status: status}
}

// ─────────────────────────────────────────────────────────────────────────────
// BuildSyncPlan decision matrix
// ─────────────────────────────────────────────────────────────────────────────

func TestSyncService_BuildSyncPlan_DecisionMatrix(t *testing.T) {
	tests := []struct {
		name   string
		remote models.RemoteVersions
		local  map[string]models.Record
		want   models.SyncPlan
	}{
		{
			name:   "RemoteOnly → Changed",
			remote: models.RemoteVersions{Versions: map[string]int64{"ABCD12": 12}},
			want:   models.SyncPlan{Changed: []string{"ABCD12"}},
		},
		{
			name:   "RemoteNewer → Changed",
			remote: models.RemoteVersions{Versions: map[string]int64{"ABCD12": 12}},
			local:  map[string]models.Record{"ABCD12": rec("ABCD12", 10, models.StatusSynced)},
			want:   models.SyncPlan{Changed: []string{"ABCD12"}},
		},
		{
			name:   "SameVersion → NoAction",
			remote: models.RemoteVersions{Versions: map[string]int64{"ABCD12": 12}},
			local:  map[string]models.Record{"ABCD12": rec("ABCD12", 12, models.StatusSynced)},
			want:   models.SyncPlan{},
		},
		{
			name:   "LocalNewer → NoAction",
			remote: models.RemoteVersions{Versions: map[string]int64{"ABCD12": 9}},
			local:  map[string]models.Record{"ABCD12": rec("ABCD12", 12, models.StatusSynced)},
			want:   models.SyncPlan{},
		},
		{
			name:   "RemoteNewer/LocallyModified → Changed",
			remote: models.RemoteVersions{Versions: map[string]int64{"ABCD12": 13}},
			local:  map[string]models.Record{"ABCD12": rec("ABCD12", 12, models.StatusLocallyModified)},
			want:   models.SyncPlan{Changed: []string{"ABCD12"}},
		},
		{
			name:   "Incremental/LocalOnly → NoTombstone",
			remote: models.RemoteVersions{Versions: map[string]int64{}},
			local:  map[string]models.Record{"ZZZZ99": rec("ZZZZ99", 4, models.StatusSynced)},
			want:   models.SyncPlan{},
		},
		{
			name:   "Full/LocalOnly → Tombstone",
			remote: models.RemoteVersions{Versions: map[string]int64{}, Full: true},
			local:  map[string]models.Record{"ZZZZ99": rec("ZZZZ99", 4, models.StatusSynced)},
			want:   models.SyncPlan{Tombstones: []string{"ZZZZ99"}},
		},
		{
			name:   "Full/NeverUploaded → NoTombstone",
			remote: models.RemoteVersions{Versions: map[string]int64{}, Full: true},
			local:  map[string]models.Record{"NEW001": rec("NEW001", 0, models.StatusLocallyModified)},
			want:   models.SyncPlan{},
		},
	}

	svc := NewSyncService()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.BuildSyncPlan(context.Background(), tt.remote, tt.local)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSyncService_BuildSyncPlan_Sorted(t *testing.T) {
	remote := models.RemoteVersions{
		Versions: map[string]int64{"C": 3, "A": 1, "B": 2, "D": 9},
		Full:     true,
	}
	local := map[string]models.Record{
		"D": rec("D", 9, models.StatusSynced),
		"Y": rec("Y", 5, models.StatusSynced),
		"X": rec("X", 5, models.StatusSynced),
	}

	got, err := NewSyncService().BuildSyncPlan(context.Background(), remote, local)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, got.Changed)
	assert.Equal(t, []string{"X", "Y"}, got.Tombstones)
}

// The list from the worked example: stored item version 10, two changed keys.
func TestSyncService_BuildSyncPlan_IncrementalExample(t *testing.T) {
	remote := models.RemoteVersions{
		Versions:            map[string]int64{"ABCD12": 12, "EFGH34": 11},
		LastModifiedVersion: 12,
	}

	got, err := NewSyncService().BuildSyncPlan(context.Background(), remote, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"ABCD12", "EFGH34"}, got.Changed)
	assert.Empty(t, got.Tombstones)
	assert.Equal(t, int64(12), remote.MaxVersion())
}

func TestSyncService_BuildSyncPlan_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewSyncService().BuildSyncPlan(ctx, models.RemoteVersions{Versions: map[string]int64{"A": 1}}, nil)
	assert.ErrorIs(t, err, context.Canceled)
}
