package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"time"

	"github.com/tidwall/gjson"

	"github.com/MKhiriev/zotero-sync/internal/adapter"
	"github.com/MKhiriev/zotero-sync/internal/config"
	"github.com/MKhiriev/zotero-sync/internal/logger"
	"github.com/MKhiriev/zotero-sync/internal/store"
	"github.com/MKhiriev/zotero-sync/internal/telemetry"
	"github.com/MKhiriev/zotero-sync/internal/utils"
	"github.com/MKhiriev/zotero-sync/models"
)

const personalLibraryName = "My Library"

type clientSyncService struct {
	versions  store.VersionRepository
	libraries store.LibraryRepository
	records   store.RecordRepository
	deletions store.DeletionQueue

	adapter  adapter.ServerAdapter
	planner  SyncService
	resolver *conflictResolver
	retrier  *transportRetrier
	metrics  *telemetry.SyncMetrics
	logger   *logger.Logger

	ids *utils.UUIDGenerator
	now func() time.Time
}

// NewClientSyncService wires the orchestrator to the local replica and the
// server adapter.
func NewClientSyncService(
	storages *store.ClientStorages,
	serverAdapter adapter.ServerAdapter,
	cfg config.ClientSync,
	metrics *telemetry.SyncMetrics,
	logger *logger.Logger,
) ClientSyncService {
	return &clientSyncService{
		versions:  storages.Versions,
		libraries: storages.Libraries,
		records:   storages.Records,
		deletions: storages.Deletions,
		adapter:   serverAdapter,
		planner:   NewSyncService(),
		resolver:  newConflictResolver(cfg.MaxConflictRounds, metrics),
		retrier:   newTransportRetrier(cfg.MaxTransportAttempts),
		metrics:   metrics,
		logger:    logger,
		ids:       utils.NewUUIDGenerator(),
		now:       time.Now,
	}
}

// session is the mutable state of one sync run.
type session struct {
	account models.Session
	summary *models.SyncSummary
	log     *logger.Logger

	// deleted caches the server deletion log per library for the session.
	deleted map[models.Library]deletionLog
}

// deletionLog is a server deletion log fetched with ?since=since.
type deletionLog struct {
	since int64
	models.RemoteDeletions
}

// fail records a per-object failure in the summary.
func (s *session) fail(lib models.Library, typ models.ObjectType, key string, err error) {
	kind := failureKind(err)
	s.summary.AddFailure(lib, typ, key, kind, err)
	s.log.Warn().Err(err).
		Stringer("library", lib).
		Str("object_type", typ.String()).
		Str("key", key).
		Str("kind", string(kind)).
		Msg("object not synchronised")
}

// Sync implements ClientSyncService.
//
// Libraries are discovered first, then each library runs the per-type
// pipeline: list versions, diff, fetch and apply in batches, finalize the
// version. Local edits and deletions are pushed once every type of the
// library is applied. Fatal errors stop the session; per-object failures end
// up in the summary.
func (s *clientSyncService) Sync(ctx context.Context, account models.Session) (models.SyncSummary, error) {
	id := s.ids.Generate()

	log := &logger.Logger{Logger: s.logger.With().Str("session_id", id).Logger()}
	ctx = log.WithContext(ctx)

	summary := models.SyncSummary{SessionID: id, StartedAt: s.now()}
	sess := &session{account: account, summary: &summary, log: log}

	log.Info().Int64("user_id", account.UserID).Msg("sync session started")

	err := s.run(ctx, sess)

	summary.FinishedAt = s.now()
	if err != nil {
		summary.Aborted = err.Error()
	}
	s.metrics.ObserveSession(summary, err, errors.Is(err, ErrSessionCancelled))

	event := log.Info()
	if err != nil {
		event = log.Error().Err(err)
	}
	event.
		Int("libraries", summary.Libraries).
		Int("created", summary.Created).
		Int("updated", summary.Updated).
		Int("removed", summary.Removed).
		Int("submitted", summary.Submitted).
		Int("deletions_confirmed", summary.DeletionsConfirmed).
		Int("failures", len(summary.Failures)).
		Dur("duration", summary.FinishedAt.Sub(summary.StartedAt)).
		Msg("sync session finished")

	return summary, err
}

func (s *clientSyncService) run(ctx context.Context, sess *session) error {
	if sess.account.UserID <= 0 || s.adapter.APIKey() == "" {
		return ErrNotLoggedIn
	}

	libs, err := s.discoverLibraries(ctx, sess)
	if err != nil {
		return err
	}

	for _, lib := range libs {
		if err := checkCancelled(ctx); err != nil {
			return err
		}
		if err := s.syncLibrary(ctx, sess, lib); err != nil {
			return err
		}
		sess.summary.Libraries++
	}

	return nil
}

func (s *clientSyncService) syncLibrary(ctx context.Context, sess *session, lib models.Library) error {
	for _, typ := range models.SyncOrder {
		if err := checkCancelled(ctx); err != nil {
			return err
		}
		if err := s.pull(ctx, sess, lib, typ); err != nil {
			if isFatal(err) {
				return err
			}
			sess.fail(lib, typ, "", err)
		}
	}

	for _, typ := range models.SyncOrder {
		if !adapter.Submittable(typ) {
			continue
		}
		if err := s.submitChanges(ctx, sess, lib, typ); err != nil {
			return err
		}
	}

	for _, typ := range models.SyncOrder {
		if err := s.submitDeletions(ctx, sess, lib, typ); err != nil {
			return err
		}
	}

	return nil
}

// pull brings (lib, typ) up to date with the server. The stored version
// advances only when every changed key was fetched and applied; a non-fatal
// error leaves it untouched so the keys are delivered again next time.
func (s *clientSyncService) pull(ctx context.Context, sess *session, lib models.Library, typ models.ObjectType) error {
	since, _, err := s.versions.Get(ctx, lib, typ)
	if err != nil {
		return storeError("get version", err)
	}

	remote, err := remoteCall(ctx, s.retrier, "list versions", func(ctx context.Context) (models.RemoteVersions, error) {
		return s.adapter.ListVersions(ctx, lib, typ, since)
	})
	if err != nil {
		return err
	}

	if since > 0 {
		if err := s.applyDeletionLog(ctx, sess, lib, typ, since, remote); err != nil {
			return err
		}
	}

	complete, err := s.applyRemote(ctx, sess, lib, typ, remote)
	if err != nil || !complete {
		return err
	}

	return s.finalize(ctx, lib, typ, since, remote.MaxVersion())
}

// applyRemote downloads and applies the keys remote reports as changed and
// removes tombstoned keys. complete is false when some batch failed.
func (s *clientSyncService) applyRemote(ctx context.Context, sess *session, lib models.Library, typ models.ObjectType, remote models.RemoteVersions) (bool, error) {
	local, err := s.records.States(ctx, lib, typ)
	if err != nil {
		return false, storeError("list record states", err)
	}

	plan, err := s.planner.BuildSyncPlan(ctx, remote, local)
	if err != nil {
		return false, fmt.Errorf("%w: build sync plan: %w", ErrSessionCancelled, err)
	}

	if len(plan.Tombstones) > 0 {
		removed, err := s.records.ApplyDeletions(ctx, lib, typ, plan.Tombstones)
		if err != nil {
			return false, storeError("apply tombstones", err)
		}
		sess.summary.Removed += len(removed)
	}

	complete := true
	for _, batch := range adapter.Chunk(plan.Changed, adapter.FetchBatchSize) {
		if err := checkCancelled(ctx); err != nil {
			return false, err
		}

		res, err := remoteCall(ctx, s.retrier, "fetch objects", func(ctx context.Context) (models.FetchResult, error) {
			return s.adapter.FetchObjects(ctx, lib, typ, batch)
		})
		if err != nil {
			if isFatal(err) {
				return false, err
			}
			for _, key := range batch {
				sess.fail(lib, typ, key, err)
			}
			complete = false
			continue
		}

		results, err := s.records.Upsert(ctx, lib, typ, res.Objects...)
		if err != nil {
			return false, storeError("upsert objects", err)
		}
		for _, r := range results {
			switch {
			case r.Created:
				sess.summary.Created++
			case r.Changed:
				sess.summary.Updated++
			}
		}

		for _, key := range res.Malformed {
			sess.fail(lib, typ, key, fmt.Errorf("%w: undecodable object", ErrMalformedResponse))
		}
		if len(res.Missing) > 0 {
			sess.log.Debug().
				Stringer("library", lib).
				Str("object_type", typ.String()).
				Strs("keys", res.Missing).
				Msg("objects vanished between listing and fetch")
		}
	}

	return complete, nil
}

// applyDeletionLog removes local records the server reports deleted since
// the stored version. Keys listed in remote exist again and are kept.
func (s *clientSyncService) applyDeletionLog(ctx context.Context, sess *session, lib models.Library, typ models.ObjectType, since int64, remote models.RemoteVersions) error {
	deleted, err := s.deletionLog(ctx, sess, lib, since, remote.LastModifiedVersion)
	if err != nil {
		return err
	}

	var keys []string
	for _, key := range deleted.Keys[typ] {
		if _, alive := remote.Versions[key]; !alive {
			keys = append(keys, key)
		}
	}
	if len(keys) == 0 {
		return nil
	}

	removed, err := s.records.ApplyDeletions(ctx, lib, typ, keys)
	if err != nil {
		return storeError("apply remote deletions", err)
	}
	sess.summary.Removed += len(removed)
	return nil
}

// deletionLog returns the deletion log of lib covering every deletion after
// since. One log serves all object types of a library: it is fetched from the
// lowest stored version of the library and reused while it is at least as
// recent as the version list it is applied against.
func (s *clientSyncService) deletionLog(ctx context.Context, sess *session, lib models.Library, since, listed int64) (models.RemoteDeletions, error) {
	if cached, ok := sess.deleted[lib]; ok && cached.since <= since && cached.LastModifiedVersion >= listed {
		return cached.RemoteDeletions, nil
	}

	from := since
	for _, typ := range models.SyncOrder {
		v, _, err := s.versions.Get(ctx, lib, typ)
		if err != nil {
			return models.RemoteDeletions{}, storeError("get version", err)
		}
		if v > 0 && v < from {
			from = v
		}
	}

	deleted, err := remoteCall(ctx, s.retrier, "list deleted", func(ctx context.Context) (models.RemoteDeletions, error) {
		return s.adapter.ListDeleted(ctx, lib, from)
	})
	if err != nil {
		return models.RemoteDeletions{}, err
	}

	if sess.deleted == nil {
		sess.deleted = make(map[models.Library]deletionLog)
	}
	sess.deleted[lib] = deletionLog{since: from, RemoteDeletions: deleted}
	return deleted, nil
}

// finalize advances the stored version; it never moves backwards.
func (s *clientSyncService) finalize(ctx context.Context, lib models.Library, typ models.ObjectType, current, next int64) error {
	if next <= current {
		return nil
	}
	if err := s.versions.Set(ctx, lib, typ, next); err != nil {
		return storeError("set version", err)
	}

	logger.FromContext(ctx).Debug().
		Stringer("library", lib).
		Str("object_type", typ.String()).
		Int64("from", current).
		Int64("to", next).
		Msg("version advanced")
	return nil
}

// submitChanges pushes the locally modified records of (lib, typ).
func (s *clientSyncService) submitChanges(ctx context.Context, sess *session, lib models.Library, typ models.ObjectType) error {
	modified, err := s.records.Modified(ctx, lib, typ)
	if err != nil {
		return storeError("list modified records", err)
	}

	for _, batch := range adapter.Chunk(modified, adapter.SubmitBatchSize) {
		if err := checkCancelled(ctx); err != nil {
			return err
		}

		pending := recordKeys(batch)
		send := func(ctx context.Context) error {
			var err error
			pending, err = s.sendObjects(ctx, sess, lib, typ, pending)
			return err
		}
		refresh := func(ctx context.Context) error {
			return s.pull(ctx, sess, lib, typ)
		}

		if _, err := s.resolver.resolve(ctx, "submit objects", send, refresh); err != nil {
			if isFatal(err) {
				return err
			}
			for _, key := range pending {
				sess.fail(lib, typ, key, err)
			}
		}
	}

	return nil
}

// sendObjects submits the still modified records among keys against the
// stored version and applies the answer. It returns the keys rejected with a
// precondition failure together with ErrVersionConflict.
func (s *clientSyncService) sendObjects(ctx context.Context, sess *session, lib models.Library, typ models.ObjectType, keys []string) ([]string, error) {
	records := make([]models.Record, 0, len(keys))
	for _, key := range keys {
		rec, err := s.records.Get(ctx, lib, typ, key)
		if errors.Is(err, store.ErrRecordNotFound) {
			continue
		}
		if err != nil {
			return keys, storeError("load modified record", err)
		}
		if rec.Status == models.StatusLocallyModified {
			records = append(records, rec)
		}
	}
	if len(records) == 0 {
		return nil, nil
	}

	version, _, err := s.versions.Get(ctx, lib, typ)
	if err != nil {
		return keys, storeError("get version", err)
	}

	res, err := remoteCall(ctx, s.retrier, "submit objects", func(ctx context.Context) (models.SubmitResult, error) {
		return s.adapter.SubmitObjects(ctx, lib, typ, version, records)
	})
	if err != nil {
		return recordKeys(records), err
	}

	var synced []models.RemoteObject
	for _, i := range sortedIndexes(res.Successful) {
		obj := res.Successful[i]
		if obj.Version == 0 {
			obj.Version = res.LastModifiedVersion
		}
		synced = append(synced, obj)
	}
	for _, i := range sortedIndexes(res.Unchanged) {
		if i < len(records) {
			synced = append(synced, models.RemoteObject{Key: res.Unchanged[i], Version: records[i].Version})
		}
	}

	var conflicted []string
	for _, i := range sortedIndexes(res.Failed) {
		f := res.Failed[i]
		if f.Key == "" && i < len(records) {
			f.Key = records[i].Key
		}
		if f.Code == 412 {
			conflicted = append(conflicted, f.Key)
			continue
		}
		sess.fail(lib, typ, f.Key, fmt.Errorf("%w: %d %s", ErrRejected, f.Code, f.Message))
	}

	if err := s.records.MarkSynced(ctx, lib, typ, synced...); err != nil {
		return conflicted, storeError("mark synced", err)
	}
	sess.summary.Submitted += len(res.Successful)

	if err := s.finalize(ctx, lib, typ, version, res.LastModifiedVersion); err != nil {
		return conflicted, err
	}

	if len(conflicted) > 0 {
		return conflicted, fmt.Errorf("%w: %d objects changed on the server", ErrVersionConflict, len(conflicted))
	}
	return nil, nil
}

// submitDeletions pushes the queued deletions of (lib, typ). Each request
// carries the stored library/type version; a precondition failure triggers
// a refresh and a requeue against the refreshed version before any retry.
func (s *clientSyncService) submitDeletions(ctx context.Context, sess *session, lib models.Library, typ models.ObjectType) error {
	entries, err := s.deletions.Pending(ctx, lib, typ)
	if err != nil {
		return storeError("list deletion queue", err)
	}
	if len(entries) == 0 {
		return nil
	}

	if !adapter.DeletionSupported(typ) {
		for _, e := range entries {
			sess.fail(lib, typ, e.Key, fmt.Errorf("%w: %s", ErrUnsupportedDeletionTarget, typ))
			sess.summary.DeletionsUnconfirmed = append(sess.summary.DeletionsUnconfirmed, e)
		}
		return nil
	}

	for _, batch := range adapter.Chunk(entries, adapter.DeletionBatchSize) {
		if err := checkCancelled(ctx); err != nil {
			return err
		}

		pending := entryKeys(batch)
		send := func(ctx context.Context) error {
			if len(pending) == 0 {
				return nil
			}

			version, _, err := s.versions.Get(ctx, lib, typ)
			if err != nil {
				return storeError("get version", err)
			}

			res, err := remoteCall(ctx, s.retrier, "submit deletions", func(ctx context.Context) (models.DeletionResult, error) {
				return s.adapter.SubmitDeletions(ctx, lib, typ, version, pending)
			})
			if err != nil {
				return err
			}

			confirmed, err := s.deletions.Confirm(ctx, lib, typ, res.Confirmed)
			if err != nil {
				return storeError("confirm deletions", err)
			}
			sess.summary.DeletionsConfirmed += len(confirmed)
			pending = nil

			return s.finalize(ctx, lib, typ, version, res.LastModifiedVersion)
		}
		refresh := func(ctx context.Context) error {
			if err := s.pull(ctx, sess, lib, typ); err != nil {
				return err
			}

			queued, err := s.deletions.Pending(ctx, lib, typ)
			if err != nil {
				return storeError("list deletion queue", err)
			}
			pending = intersect(pending, entryKeys(queued))

			version, _, err := s.versions.Get(ctx, lib, typ)
			if err != nil {
				return storeError("get version", err)
			}
			if err := s.deletions.Requeue(ctx, lib, typ, pending, version); err != nil {
				return storeError("requeue deletions", err)
			}
			return nil
		}

		if _, err := s.resolver.resolve(ctx, "submit deletions", send, refresh); err != nil {
			if isFatal(err) {
				return err
			}
			for _, e := range batch {
				if slices.Contains(pending, e.Key) {
					sess.fail(lib, typ, e.Key, err)
					sess.summary.DeletionsUnconfirmed = append(sess.summary.DeletionsUnconfirmed, e)
				}
			}
		}
	}

	return nil
}

// discoverLibraries syncs the group metadata of the personal library and
// returns the libraries of the session, personal first. Groups that left the
// full metadata list are removed locally with all their data.
func (s *clientSyncService) discoverLibraries(ctx context.Context, sess *session) ([]models.Library, error) {
	personal := sess.account.Library()
	if _, _, err := s.libraries.GetOrCreateLibrary(ctx, personal, sess.account.UserID, personalLibraryName); err != nil {
		return nil, storeError("create personal library", err)
	}

	typ := models.ObjectGroupMetadata
	remote, err := remoteCall(ctx, s.retrier, "list groups", func(ctx context.Context) (models.RemoteVersions, error) {
		return s.adapter.ListVersions(ctx, personal, typ, 0)
	})
	if err != nil {
		if isFatal(err) {
			return nil, err
		}
		sess.fail(personal, typ, "", err)
		return s.knownLibraries(ctx)
	}

	since, _, err := s.versions.Get(ctx, personal, typ)
	if err != nil {
		return nil, storeError("get version", err)
	}

	complete, err := s.applyRemote(ctx, sess, personal, typ, remote)
	if err != nil {
		return nil, err
	}
	if complete {
		if err := s.finalize(ctx, personal, typ, since, remote.MaxVersion()); err != nil {
			return nil, err
		}
	}

	for key := range remote.Versions {
		if err := s.registerGroup(ctx, sess, key); err != nil {
			return nil, err
		}
	}

	if !remote.Full {
		sess.log.Warn().Int("groups", len(remote.Versions)).Msg("group list incomplete, no group removed")
		return s.knownLibraries(ctx)
	}

	known, err := s.libraries.Libraries(ctx)
	if err != nil {
		return nil, storeError("list libraries", err)
	}
	for _, info := range known {
		if info.Kind != models.LibraryGroup {
			continue
		}
		if _, ok := remote.Versions[strconv.FormatInt(info.ID, 10)]; ok {
			continue
		}
		if err := s.libraries.RemoveLibrary(ctx, info.Library); err != nil {
			return nil, storeError("remove library", err)
		}
		sess.log.Info().Stringer("library", info.Library).Msg("group left, local copy removed")
	}

	return s.knownLibraries(ctx)
}

// registerGroup creates or renames the library of a group from its stored
// metadata record.
func (s *clientSyncService) registerGroup(ctx context.Context, sess *session, key string) error {
	personal := sess.account.Library()

	id, err := strconv.ParseInt(key, 10, 64)
	if err != nil || id <= 0 {
		sess.fail(personal, models.ObjectGroupMetadata, key, fmt.Errorf("%w: group id %q", ErrMalformedResponse, key))
		return nil
	}

	rec, err := s.records.Get(ctx, personal, models.ObjectGroupMetadata, key)
	if errors.Is(err, store.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return storeError("load group metadata", err)
	}

	name := gjson.GetBytes(rec.Body, "data.name").String()
	owner := gjson.GetBytes(rec.Body, "data.owner").Int()
	if owner <= 0 {
		owner = sess.account.UserID
	}

	if _, _, err := s.libraries.GetOrCreateLibrary(ctx, models.GroupLibrary(id), owner, name); err != nil {
		return storeError("create group library", err)
	}
	return nil
}

func (s *clientSyncService) knownLibraries(ctx context.Context) ([]models.Library, error) {
	known, err := s.libraries.Libraries(ctx)
	if err != nil {
		return nil, storeError("list libraries", err)
	}

	libs := make([]models.Library, 0, len(known))
	for _, info := range known {
		libs = append(libs, info.Library)
	}
	slices.SortStableFunc(libs, func(a, b models.Library) int {
		if a.Kind != b.Kind {
			if a.Kind == models.LibraryPersonal {
				return -1
			}
			return 1
		}
		switch {
		case a.ID < b.ID:
			return -1
		case a.ID > b.ID:
			return 1
		}
		return 0
	})
	return libs, nil
}

func checkCancelled(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrSessionCancelled, err)
	}
	return nil
}

func recordKeys(records []models.Record) []string {
	keys := make([]string, 0, len(records))
	for _, r := range records {
		keys = append(keys, r.Key)
	}
	return keys
}

func entryKeys(entries []models.DeletionEntry) []string {
	keys := make([]string, 0, len(entries))
	for _, e := range entries {
		keys = append(keys, e.Key)
	}
	return keys
}

func intersect(a, b []string) []string {
	var out []string
	for _, k := range a {
		if slices.Contains(b, k) {
			out = append(out, k)
		}
	}
	return out
}

func sortedIndexes[V any](m map[int]V) []int {
	idx := make([]int, 0, len(m))
	for i := range m {
		idx = append(idx, i)
	}
	slices.Sort(idx)
	return idx
}
