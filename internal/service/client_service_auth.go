package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/zalando/go-keyring"

	"github.com/MKhiriev/zotero-sync/internal/adapter"
	"github.com/MKhiriev/zotero-sync/internal/logger"
	"github.com/MKhiriev/zotero-sync/internal/store"
	"github.com/MKhiriev/zotero-sync/models"
)

// keyringAccount is the keyring entry holding the serialised session.
const keyringAccount = "session"

type storedSession struct {
	UserID int64  `json:"user_id"`
	Name   string `json:"name"`
	APIKey string `json:"api_key"`
}

type clientAuthService struct {
	libraries      store.LibraryRepository
	adapter        adapter.ServerAdapter
	keyringService string
	logger         *logger.Logger
}

func NewClientAuthService(libraries store.LibraryRepository, serverAdapter adapter.ServerAdapter, keyringService string, logger *logger.Logger) ClientAuthService {
	return &clientAuthService{
		libraries:      libraries,
		adapter:        serverAdapter,
		keyringService: keyringService,
		logger:         logger,
	}
}

// Login implements ClientAuthService. The password is only sent to the key
// endpoint and never stored.
func (a *clientAuthService) Login(ctx context.Context, creds models.Credentials) (models.Session, error) {
	resp, err := a.adapter.Login(ctx, creds)
	if err != nil {
		return models.Session{}, mapAdapterError(err)
	}

	if _, _, err := a.libraries.GetOrCreateUser(ctx, resp.UserID, resp.Name); err != nil {
		return models.Session{}, storeError("create user", err)
	}
	if _, _, err := a.libraries.GetOrCreateLibrary(ctx, models.PersonalLibrary(resp.UserID), resp.UserID, personalLibraryName); err != nil {
		return models.Session{}, storeError("create personal library", err)
	}

	sess := models.Session{UserID: resp.UserID, Name: resp.Name, APIKey: resp.Key}
	if err := a.save(sess); err != nil {
		return models.Session{}, err
	}

	a.adapter.SetAPIKey(sess.APIKey)
	logger.FromContext(ctx).Info().Int64("user_id", sess.UserID).Msg("logged in")
	return sess, nil
}

// RestoreSession implements ClientAuthService.
func (a *clientAuthService) RestoreSession(ctx context.Context) (models.Session, error) {
	raw, err := keyring.Get(a.keyringService, keyringAccount)
	if errors.Is(err, keyring.ErrNotFound) {
		return models.Session{}, ErrNotLoggedIn
	}
	if err != nil {
		return models.Session{}, fmt.Errorf("read keyring: %w", err)
	}

	var stored storedSession
	if err := json.Unmarshal([]byte(raw), &stored); err != nil || stored.UserID <= 0 || stored.APIKey == "" {
		logger.FromContext(ctx).Warn().Str("func", "clientAuthService.RestoreSession").Msg("stored session is unreadable")
		return models.Session{}, ErrNotLoggedIn
	}

	a.adapter.SetAPIKey(stored.APIKey)
	return models.Session{UserID: stored.UserID, Name: stored.Name, APIKey: stored.APIKey}, nil
}

// Logout implements ClientAuthService. The replica is kept.
func (a *clientAuthService) Logout(ctx context.Context) error {
	a.adapter.SetAPIKey("")

	err := keyring.Delete(a.keyringService, keyringAccount)
	if err != nil && !errors.Is(err, keyring.ErrNotFound) {
		return fmt.Errorf("delete keyring entry: %w", err)
	}
	return nil
}

func (a *clientAuthService) save(sess models.Session) error {
	raw, err := json.Marshal(storedSession{UserID: sess.UserID, Name: sess.Name, APIKey: sess.APIKey})
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := keyring.Set(a.keyringService, keyringAccount, string(raw)); err != nil {
		return fmt.Errorf("write keyring: %w", err)
	}
	return nil
}
