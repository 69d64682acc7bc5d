package store

import (
	"context"
	"encoding/json"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/zotero-sync/internal/config"
	"github.com/MKhiriev/zotero-sync/internal/logger"
	"github.com/MKhiriev/zotero-sync/models"
)

var (
	personal = models.PersonalLibrary(42)
	group    = models.GroupLibrary(7)
)

func newTestStorages(t *testing.T) *ClientStorages {
	t.Helper()

	cfg := config.ClientStorage{DB: config.ClientDB{DSN: filepath.Join(t.TempDir(), "replica.db")}}
	s, err := NewClientStorages(cfg, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func obj(key string, version int64, body string) models.RemoteObject {
	return models.RemoteObject{Key: key, Version: version, Body: json.RawMessage(body)}
}

func TestVersionRepository(t *testing.T) {
	s := newTestStorages(t)
	ctx := context.Background()

	_, found, err := s.Versions.Get(ctx, personal, models.ObjectItem)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, s.Versions.Set(ctx, personal, models.ObjectItem, 10))
	require.NoError(t, s.Versions.Set(ctx, personal, models.ObjectItem, 12))
	require.NoError(t, s.Versions.Set(ctx, group, models.ObjectItem, 3))

	v, found, err := s.Versions.Get(ctx, personal, models.ObjectItem)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, int64(12), v)

	all, err := s.Versions.List(ctx, group)
	require.NoError(t, err)
	assert.Equal(t, map[models.ObjectType]int64{models.ObjectItem: 3}, all)
}

func TestLibraryRepository(t *testing.T) {
	s := newTestStorages(t)
	ctx := context.Background()

	created, user, err := s.Libraries.GetOrCreateUser(ctx, 42, "alice")
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, "alice", user.Name)

	created, _, err = s.Libraries.GetOrCreateUser(ctx, 42, "")
	require.NoError(t, err)
	assert.False(t, created)

	created, info, err := s.Libraries.GetOrCreateLibrary(ctx, group, 99, "Lab")
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, int64(99), info.OwnerID)

	_, info, err = s.Libraries.GetOrCreateLibrary(ctx, group, 99, "Lab renamed")
	require.NoError(t, err)
	assert.Equal(t, "Lab renamed", info.Name)

	// the owner placeholder was autocreated
	created, _, err = s.Libraries.GetOrCreateUser(ctx, 99, "")
	require.NoError(t, err)
	assert.False(t, created)

	_, err = s.Records.Upsert(ctx, group, models.ObjectItem, obj("AAAA", 1, `{}`))
	require.NoError(t, err)
	require.NoError(t, s.Versions.Set(ctx, group, models.ObjectItem, 1))

	require.NoError(t, s.Libraries.RemoveLibrary(ctx, group))

	libs, err := s.Libraries.Libraries(ctx)
	require.NoError(t, err)
	assert.Empty(t, libs)

	states, err := s.Records.States(ctx, group, models.ObjectItem)
	require.NoError(t, err)
	assert.Empty(t, states)

	_, found, err := s.Versions.Get(ctx, group, models.ObjectItem)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestRecordRepository_Upsert(t *testing.T) {
	s := newTestStorages(t)
	ctx := context.Background()

	res, err := s.Records.Upsert(ctx, personal, models.ObjectItem, obj("AAAA", 5, `{"title":"a"}`))
	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.True(t, res[0].Created)

	t.Run("identical object is a no-op", func(t *testing.T) {
		res, err := s.Records.Upsert(ctx, personal, models.ObjectItem, obj("AAAA", 5, `{"title":"a"}`))
		require.NoError(t, err)
		assert.False(t, res[0].Changed)
	})

	t.Run("stale object is ignored", func(t *testing.T) {
		res, err := s.Records.Upsert(ctx, personal, models.ObjectItem, obj("AAAA", 4, `{"title":"old"}`))
		require.NoError(t, err)
		assert.False(t, res[0].Changed)

		rec, err := s.Records.Get(ctx, personal, models.ObjectItem, "AAAA")
		require.NoError(t, err)
		assert.JSONEq(t, `{"title":"a"}`, string(rec.Body))
	})

	t.Run("newer object replaces synced record", func(t *testing.T) {
		res, err := s.Records.Upsert(ctx, personal, models.ObjectItem, obj("AAAA", 8, `{"title":"b"}`))
		require.NoError(t, err)
		assert.True(t, res[0].Changed)
		assert.False(t, res[0].Created)
		assert.Equal(t, int64(8), res[0].Record.Version)
	})

	t.Run("local edit survives remote update", func(t *testing.T) {
		_, err := s.Records.SaveLocal(ctx, personal, models.ObjectItem, "AAAA", json.RawMessage(`{"title":"mine"}`))
		require.NoError(t, err)

		res, err := s.Records.Upsert(ctx, personal, models.ObjectItem, obj("AAAA", 9, `{"title":"theirs"}`))
		require.NoError(t, err)
		assert.False(t, res[0].Changed)

		rec, err := s.Records.Get(ctx, personal, models.ObjectItem, "AAAA")
		require.NoError(t, err)
		assert.Equal(t, models.StatusLocallyModified, rec.Status)
		assert.Equal(t, int64(9), rec.Version)
		assert.JSONEq(t, `{"title":"mine"}`, string(rec.Body))
	})

	t.Run("empty key is rejected", func(t *testing.T) {
		_, err := s.Records.Upsert(ctx, personal, models.ObjectItem, obj("", 1, `{}`))
		assert.ErrorIs(t, err, ErrInvalidRecord)
	})

	t.Run("libraries are isolated", func(t *testing.T) {
		states, err := s.Records.States(ctx, group, models.ObjectItem)
		require.NoError(t, err)
		assert.Empty(t, states)
	})
}

func TestRecordRepository_ApplyDeletions(t *testing.T) {
	s := newTestStorages(t)
	ctx := context.Background()

	_, err := s.Records.Upsert(ctx, personal, models.ObjectItem,
		obj("AAAA", 1, `{}`), obj("BBBB", 1, `{}`), obj("CCCC", 1, `{}`))
	require.NoError(t, err)

	_, err = s.Records.SaveLocal(ctx, personal, models.ObjectItem, "BBBB", json.RawMessage(`{"x":1}`))
	require.NoError(t, err)

	require.NoError(t, s.Versions.Set(ctx, personal, models.ObjectItem, 1))
	_, queued, err := s.Records.MarkDeleted(ctx, personal, models.ObjectItem, "CCCC")
	require.NoError(t, err)
	require.True(t, queued)

	removed, err := s.Records.ApplyDeletions(ctx, personal, models.ObjectItem, []string{"AAAA", "BBBB", "CCCC", "ZZZZ"})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"AAAA", "CCCC"}, removed)

	rec, err := s.Records.Get(ctx, personal, models.ObjectItem, "BBBB")
	require.NoError(t, err)
	assert.Equal(t, int64(0), rec.Version)
	assert.Equal(t, models.StatusLocallyModified, rec.Status)

	pending, err := s.Deletions.Pending(ctx, personal, models.ObjectItem)
	require.NoError(t, err)
	assert.Empty(t, pending)
}

func TestRecordRepository_SaveLocal(t *testing.T) {
	s := newTestStorages(t)
	ctx := context.Background()

	rec, err := s.Records.SaveLocal(ctx, personal, models.ObjectCollection, "NEW1", json.RawMessage(`{"name":"c"}`))
	require.NoError(t, err)
	assert.Equal(t, int64(0), rec.Version)
	assert.Equal(t, models.StatusLocallyModified, rec.Status)

	modified, err := s.Records.Modified(ctx, personal, models.ObjectCollection)
	require.NoError(t, err)
	require.Len(t, modified, 1)
	assert.Equal(t, "NEW1", modified[0].Key)

	_, err = s.Records.SaveLocal(ctx, personal, models.ObjectCollection, "", nil)
	assert.ErrorIs(t, err, ErrInvalidRecord)
}

func TestRecordRepository_MarkDeleted(t *testing.T) {
	s := newTestStorages(t)
	ctx := context.Background()

	_, err := s.Records.Upsert(ctx, personal, models.ObjectItem, obj("AAAA", 3, `{}`))
	require.NoError(t, err)
	require.NoError(t, s.Versions.Set(ctx, personal, models.ObjectItem, 7))

	entry, queued, err := s.Records.MarkDeleted(ctx, personal, models.ObjectItem, "AAAA")
	require.NoError(t, err)
	assert.True(t, queued)
	assert.Equal(t, int64(7), entry.Version)

	rec, err := s.Records.Get(ctx, personal, models.ObjectItem, "AAAA")
	require.NoError(t, err)
	assert.Equal(t, models.StatusPendingDeletion, rec.Status)

	t.Run("unknown key", func(t *testing.T) {
		_, _, err := s.Records.MarkDeleted(ctx, personal, models.ObjectItem, "NOPE")
		assert.ErrorIs(t, err, ErrRecordNotFound)
	})

	t.Run("never synced record is dropped locally", func(t *testing.T) {
		_, err := s.Records.SaveLocal(ctx, personal, models.ObjectItem, "LOCAL", json.RawMessage(`{}`))
		require.NoError(t, err)

		_, queued, err := s.Records.MarkDeleted(ctx, personal, models.ObjectItem, "LOCAL")
		require.NoError(t, err)
		assert.False(t, queued)

		_, err = s.Records.Get(ctx, personal, models.ObjectItem, "LOCAL")
		assert.ErrorIs(t, err, ErrRecordNotFound)
	})

	t.Run("saving again cancels the deletion", func(t *testing.T) {
		_, err := s.Records.SaveLocal(ctx, personal, models.ObjectItem, "AAAA", json.RawMessage(`{"back":true}`))
		require.NoError(t, err)

		pending, err := s.Deletions.Pending(ctx, personal, models.ObjectItem)
		require.NoError(t, err)
		assert.Empty(t, pending)
	})
}

func TestRecordRepository_MarkSynced(t *testing.T) {
	s := newTestStorages(t)
	ctx := context.Background()

	_, err := s.Records.SaveLocal(ctx, personal, models.ObjectItem, "AAAA", json.RawMessage(`{"t":1}`))
	require.NoError(t, err)

	require.NoError(t, s.Records.MarkSynced(ctx, personal, models.ObjectItem, obj("AAAA", 11, `{"t":1,"version":11}`)))

	rec, err := s.Records.Get(ctx, personal, models.ObjectItem, "AAAA")
	require.NoError(t, err)
	assert.Equal(t, models.StatusSynced, rec.Status)
	assert.Equal(t, int64(11), rec.Version)

	modified, err := s.Records.Modified(ctx, personal, models.ObjectItem)
	require.NoError(t, err)
	assert.Empty(t, modified)
}

func TestDeletionQueue(t *testing.T) {
	s := newTestStorages(t)
	ctx := context.Background()

	_, err := s.Records.Upsert(ctx, personal, models.ObjectSearch, obj("S1", 2, `{}`), obj("S2", 2, `{}`))
	require.NoError(t, err)
	require.NoError(t, s.Versions.Set(ctx, personal, models.ObjectSearch, 2))

	for _, key := range []string{"S1", "S2"} {
		_, _, err := s.Records.MarkDeleted(ctx, personal, models.ObjectSearch, key)
		require.NoError(t, err)
	}

	require.NoError(t, s.Deletions.Requeue(ctx, personal, models.ObjectSearch, []string{"S1", "S2"}, 9))

	all, err := s.Deletions.All(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	for _, e := range all {
		assert.Equal(t, int64(9), e.Version)
		assert.Equal(t, personal, e.Library)
	}

	confirmed, err := s.Deletions.Confirm(ctx, personal, models.ObjectSearch, []string{"S1", "MISSING"})
	require.NoError(t, err)
	assert.Equal(t, []string{"S1"}, confirmed)

	states, err := s.Records.States(ctx, personal, models.ObjectSearch)
	require.NoError(t, err)
	assert.Len(t, states, 1)
	assert.Contains(t, states, "S2")
}

func TestDeletionQueue_ConfirmKeepsLocalEditSavedAfterDeletion(t *testing.T) {
	s := newTestStorages(t)
	ctx := context.Background()

	_, err := s.Records.Upsert(ctx, personal, models.ObjectItem, obj("ITEM01", 3, `{"data":{"title":"old"}}`))
	require.NoError(t, err)
	require.NoError(t, s.Versions.Set(ctx, personal, models.ObjectItem, 3))
	_, _, err = s.Records.MarkDeleted(ctx, personal, models.ObjectItem, "ITEM01")
	require.NoError(t, err)

	// the deletion is undone by a local edit while the request is in flight
	_, err = s.Records.SaveLocal(ctx, personal, models.ObjectItem, "ITEM01", json.RawMessage(`{"data":{"title":"kept"}}`))
	require.NoError(t, err)

	confirmed, err := s.Deletions.Confirm(ctx, personal, models.ObjectItem, []string{"ITEM01"})
	require.NoError(t, err)
	assert.Empty(t, confirmed)

	rec, err := s.Records.Get(ctx, personal, models.ObjectItem, "ITEM01")
	require.NoError(t, err)
	assert.Equal(t, models.StatusLocallyModified, rec.Status)
	assert.JSONEq(t, `{"data":{"title":"kept"}}`, string(rec.Body))
}

func TestRecordRepository_Notifications(t *testing.T) {
	s := newTestStorages(t)
	ctx := context.Background()

	ch, cancel := s.Records.Subscribe()
	defer cancel()

	_, err := s.Records.Upsert(ctx, personal, models.ObjectItem, obj("AAAA", 1, `{}`))
	require.NoError(t, err)

	select {
	case batch := <-ch:
		assert.Equal(t, []string{"AAAA"}, batch.Added)
		assert.Equal(t, personal, batch.Library)
	case <-time.After(time.Second):
		t.Fatal("no change batch published")
	}

	// a no-op write publishes nothing
	_, err = s.Records.Upsert(ctx, personal, models.ObjectItem, obj("AAAA", 1, `{}`))
	require.NoError(t, err)

	select {
	case batch := <-ch:
		t.Fatalf("unexpected batch %+v", batch)
	default:
	}
}
