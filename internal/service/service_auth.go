package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/zotero-sync/internal/config"
	"github.com/MKhiriev/zotero-sync/internal/crypto"
	"github.com/MKhiriev/zotero-sync/internal/logger"
	"github.com/MKhiriev/zotero-sync/internal/store"
	"github.com/MKhiriev/zotero-sync/internal/utils"
	"github.com/MKhiriev/zotero-sync/models"
)

// KeyIssuer is the issuer claim of every API key.
const KeyIssuer = "zsync-apiserver"

// authService is the concrete implementation of AuthService. Passwords are
// stored as Argon2id hashes; API keys are signed tokens carrying the user id.
type authService struct {
	accounts store.AccountRepository
	hasher   crypto.PasswordHasher

	keySignKey string
	keyTTL     time.Duration

	logger *logger.Logger
}

func NewAuthService(accounts store.AccountRepository, hasher crypto.PasswordHasher, cfg *config.ServerConfig, logger *logger.Logger) AuthService {
	return &authService{
		accounts:   accounts,
		hasher:     hasher,
		keySignKey: cfg.KeySignKey,
		keyTTL:     cfg.KeyTTL,
		logger:     logger,
	}
}

func (a *authService) CreateAccount(ctx context.Context, id int64, name, password string) (models.Account, error) {
	if name == "" || password == "" {
		return models.Account{}, ErrInvalidDataProvided
	}

	hash, err := a.hasher.Hash(password)
	if err != nil {
		return models.Account{}, fmt.Errorf("hash password: %w", err)
	}

	account, err := a.accounts.CreateAccount(ctx, models.Account{ID: id, Name: name, PasswordHash: hash})
	if err != nil {
		return models.Account{}, fmt.Errorf("account creation ended with error: %w", err)
	}
	return account, nil
}

// CreateKey authenticates name and password. An unknown name and a wrong
// password both end in ErrWrongPassword.
func (a *authService) CreateKey(ctx context.Context, name, password string) (models.APIKey, error) {
	log := logger.FromContext(ctx)

	if name == "" || password == "" {
		return models.APIKey{}, ErrInvalidDataProvided
	}

	account, err := a.accounts.FindAccountByName(ctx, name)
	if errors.Is(err, store.ErrNoUserWasFound) {
		log.Info().Str("name", name).Msg("login for unknown account")
		return models.APIKey{}, ErrWrongPassword
	}
	if err != nil {
		return models.APIKey{}, fmt.Errorf("account search by name failed: %w", err)
	}

	if !a.hasher.Verify(password, account.PasswordHash) {
		log.Info().Int64("user_id", account.ID).Msg("wrong password")
		return models.APIKey{}, ErrWrongPassword
	}

	key, err := utils.GenerateAPIKey(KeyIssuer, account.ID, a.keyTTL, a.keySignKey)
	if err != nil {
		return models.APIKey{}, fmt.Errorf("issue api key: %w", err)
	}

	return models.APIKey{Key: key, UserID: account.ID, Username: account.Name}, nil
}

func (a *authService) ParseKey(_ context.Context, key string) (int64, error) {
	userID, err := utils.ParseAPIKey(key, a.keySignKey, KeyIssuer)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrTokenIsExpiredOrInvalid, err)
	}
	return userID, nil
}
