package service

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/zotero-sync/internal/config"
	"github.com/MKhiriev/zotero-sync/internal/logger"
	"github.com/MKhiriev/zotero-sync/internal/store"
	"github.com/MKhiriev/zotero-sync/internal/validators"
	"github.com/MKhiriev/zotero-sync/models"
)

func newTestLibraryService(t *testing.T) LibraryService {
	t.Helper()

	svc := NewLibraryService(store.NewGroupRepository(logger.Nop()), store.NewObjectRepository(logger.Nop()), validators.NewObjectValidator(MaxWriteObjects), logger.Nop())
	_, err := svc.CreateGroup(context.Background(), models.Group{ID: 7, Name: "Reading group", Owner: 1, Members: []int64{42}})
	require.NoError(t, err)
	return svc
}

func TestLibraryService_CheckAccess(t *testing.T) {
	svc := newTestLibraryService(t)
	ctx := context.Background()

	tests := []struct {
		name    string
		userID  int64
		lib     models.Library
		wantErr error
	}{
		{"own library", 42, models.PersonalLibrary(42), nil},
		{"foreign library", 42, models.PersonalLibrary(1), ErrUnauthorizedAccessToDifferentUserData},
		{"member", 42, models.GroupLibrary(7), nil},
		{"owner", 1, models.GroupLibrary(7), nil},
		{"outsider", 5, models.GroupLibrary(7), ErrUnauthorizedAccessToDifferentUserData},
		{"unknown group", 42, models.GroupLibrary(8), ErrLibraryNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.CheckAccess(ctx, tt.userID, tt.lib)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestLibraryService_Write(t *testing.T) {
	svc := newTestLibraryService(t)
	ctx := context.Background()
	lib := models.PersonalLibrary(42)

	out, err := svc.Write(ctx, lib, store.ResourceItems, -1, []byte(`[{"title":"no key"},{"key":"ABCD2345","version":0}]`))
	require.NoError(t, err)
	require.Len(t, out.Successful, 2)

	generated := string(out.Successful[0])
	assert.Regexp(t, `"key":"[23456789A-NP-Z]{8}"`, generated)
	assert.Contains(t, string(out.Successful[1]), `"key":"ABCD2345"`)
	assert.Equal(t, int64(1), out.Version)

	for _, body := range []string{`{}`, `[]`, `[1]`, `not json`, "[" + strings.Repeat(`{},`, MaxWriteObjects) + `{}]`} {
		_, err := svc.Write(ctx, lib, store.ResourceItems, -1, []byte(body))
		assert.ErrorIs(t, err, ErrInvalidDataProvided, body)
	}

	_, err = svc.Write(ctx, lib, store.ResourceItems, 0, []byte(`[{}]`))
	assert.ErrorIs(t, err, store.ErrVersionConflict)
}

func TestLibraryService_Delete(t *testing.T) {
	svc := newTestLibraryService(t)
	ctx := context.Background()
	lib := models.GroupLibrary(7)

	_, err := svc.Write(ctx, lib, store.ResourceCollections, 0, []byte(`[{"key":"COLL0001"}]`))
	require.NoError(t, err)

	version, err := svc.Delete(ctx, lib, store.ResourceCollections, 1, []string{"COLL0001"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), version)

	_, err = svc.Delete(ctx, lib, store.ResourceCollections, 2, nil)
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestLibraryService_GroupVersions(t *testing.T) {
	svc := newTestLibraryService(t)
	ctx := context.Background()

	_, err := svc.CreateGroup(ctx, models.Group{ID: 9, Name: "Lab", Owner: 42, Version: 4})
	require.NoError(t, err)

	versions, latest, err := svc.GroupVersions(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{"7": 1, "9": 4}, versions)
	assert.Equal(t, int64(4), latest)

	versions, latest, err = svc.GroupVersions(ctx, 100)
	require.NoError(t, err)
	assert.Empty(t, versions)
	assert.Zero(t, latest)
}

func TestLoadFixtures(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fixtures.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"users": [{"id": 42, "name": "alice", "password": "pw"}, {"id": 1, "name": "bob", "password": "pw"}],
		"groups": [{"id": 7, "name": "Reading group", "owner": 1, "members": [42]}]
	}`), 0o600))

	cfg := &config.ServerConfig{KeySignKey: "sign", KeyTTL: time.Hour}
	services := NewServices(store.NewStorages(logger.Nop()), cfg, logger.Nop())
	ctx := context.Background()

	require.NoError(t, LoadFixtures(ctx, services, path))

	key, err := services.AuthService.CreateKey(ctx, "alice", "pw")
	require.NoError(t, err)
	assert.Equal(t, int64(42), key.UserID)

	g, err := services.LibraryService.Group(ctx, 42, 7)
	require.NoError(t, err)
	assert.Equal(t, "Reading group", g.Name)

	assert.Error(t, LoadFixtures(ctx, services, filepath.Join(t.TempDir(), "missing.json")))
}
