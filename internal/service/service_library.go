package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strconv"

	"github.com/tidwall/gjson"

	"github.com/MKhiriev/zotero-sync/internal/logger"
	"github.com/MKhiriev/zotero-sync/internal/store"
	"github.com/MKhiriev/zotero-sync/internal/validators"
	"github.com/MKhiriev/zotero-sync/models"
)

// MaxWriteObjects is the largest accepted write or deletion request.
const MaxWriteObjects = 50

const (
	keyAlphabet = "23456789ABCDEFGHIJKLMNPQRSTUVWXYZ"
	keyLength   = 8
)

type libraryService struct {
	groups    store.GroupRepository
	objects   store.ObjectRepository
	validator validators.Validator

	logger *logger.Logger
}

func NewLibraryService(groups store.GroupRepository, objects store.ObjectRepository, validator validators.Validator, logger *logger.Logger) LibraryService {
	return &libraryService{groups: groups, objects: objects, validator: validator, logger: logger}
}

func (s *libraryService) CheckAccess(ctx context.Context, userID int64, lib models.Library) error {
	switch lib.Kind {
	case models.LibraryPersonal:
		if lib.ID != userID {
			return ErrUnauthorizedAccessToDifferentUserData
		}
		return nil
	case models.LibraryGroup:
		_, err := s.Group(ctx, userID, lib.ID)
		return err
	default:
		return ErrLibraryNotFound
	}
}

func (s *libraryService) Versions(ctx context.Context, lib models.Library, q store.ObjectQuery) (map[string]int64, int64, error) {
	return s.objects.Versions(ctx, lib, q)
}

func (s *libraryService) Objects(ctx context.Context, lib models.Library, q store.ObjectQuery) ([][]byte, int64, error) {
	return s.objects.Objects(ctx, lib, q)
}

func (s *libraryService) Deleted(ctx context.Context, lib models.Library, since int64) (map[store.Resource][]string, int64, error) {
	return s.objects.Deleted(ctx, lib, since)
}

func (s *libraryService) Write(ctx context.Context, lib models.Library, res store.Resource, ifUnmodifiedSince int64, body []byte) (models.WriteOutcome, error) {
	if !gjson.ValidBytes(body) {
		return models.WriteOutcome{}, fmt.Errorf("%w: body is not json", ErrInvalidDataProvided)
	}
	parsed := gjson.ParseBytes(body)
	if !parsed.IsArray() {
		return models.WriteOutcome{}, fmt.Errorf("%w: expected an array of objects", ErrInvalidDataProvided)
	}
	elements := parsed.Array()

	writes := make([]models.ObjectWrite, 0, len(elements))
	for i, el := range elements {
		if !el.IsObject() {
			return models.WriteOutcome{}, fmt.Errorf("%w: element %d is not an object", ErrInvalidDataProvided, i)
		}

		w := models.ObjectWrite{Key: el.Get("key").String(), Version: -1, Body: []byte(el.Raw)}
		if v := el.Get("version"); v.Type == gjson.Number {
			w.Version = v.Int()
		}
		if w.Key == "" {
			key, err := newObjectKey()
			if err != nil {
				return models.WriteOutcome{}, err
			}
			w.Key = key
		}
		writes = append(writes, w)
	}
	if err := s.validator.Validate(ctx, writes); err != nil {
		return models.WriteOutcome{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	out, err := s.objects.Write(ctx, lib, res, ifUnmodifiedSince, writes)
	if err != nil {
		return models.WriteOutcome{}, fmt.Errorf("write %s: %w", res, err)
	}
	return out, nil
}

func (s *libraryService) Delete(ctx context.Context, lib models.Library, res store.Resource, ifUnmodifiedSince int64, keys []string) (int64, error) {
	if err := s.validator.Validate(ctx, keys); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	version, err := s.objects.Delete(ctx, lib, res, ifUnmodifiedSince, keys)
	if err != nil {
		return version, fmt.Errorf("delete %s: %w", res, err)
	}
	return version, nil
}

func (s *libraryService) CreateGroup(ctx context.Context, group models.Group) (models.Group, error) {
	g, err := s.groups.CreateGroup(ctx, group)
	if err != nil {
		return models.Group{}, fmt.Errorf("group creation ended with error: %w", err)
	}

	logger.FromContext(ctx).Debug().Int64("group_id", g.ID).Str("name", g.Name).Msg("group created")
	return g, nil
}

func (s *libraryService) Group(ctx context.Context, userID, groupID int64) (models.Group, error) {
	g, err := s.groups.GetGroup(ctx, groupID)
	if errors.Is(err, store.ErrGroupNotFound) {
		return models.Group{}, fmt.Errorf("%w: group %d", ErrLibraryNotFound, groupID)
	}
	if err != nil {
		return models.Group{}, err
	}
	if !g.HasMember(userID) {
		return models.Group{}, ErrUnauthorizedAccessToDifferentUserData
	}
	return g, nil
}

func (s *libraryService) GroupVersions(ctx context.Context, userID int64) (map[string]int64, int64, error) {
	groups, err := s.groups.GroupsOf(ctx, userID)
	if err != nil {
		return nil, 0, err
	}

	out := make(map[string]int64, len(groups))
	var latest int64
	for _, g := range groups {
		out[strconv.FormatInt(g.ID, 10)] = g.Version
		latest = max(latest, g.Version)
	}
	return out, latest, nil
}

func newObjectKey() (string, error) {
	buf := make([]byte, keyLength)
	limit := big.NewInt(int64(len(keyAlphabet)))
	for i := range buf {
		n, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", fmt.Errorf("generate object key: %w", err)
		}
		buf[i] = keyAlphabet[n.Int64()]
	}
	return string(buf), nil
}
