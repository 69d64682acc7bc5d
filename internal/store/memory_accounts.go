package store

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/MKhiriev/zotero-sync/internal/logger"
	"github.com/MKhiriev/zotero-sync/models"
)

type accountRepository struct {
	mu     sync.RWMutex
	byID   map[int64]models.Account
	byName map[string]int64
	lastID int64

	logger *logger.Logger
}

func NewAccountRepository(logger *logger.Logger) AccountRepository {
	logger.Debug().Msg("creating account repository")
	return &accountRepository{
		byID:   make(map[int64]models.Account),
		byName: make(map[string]int64),
		logger: logger,
	}
}

// CreateAccount stores account. A zero ID is replaced by the next free one.
func (r *accountRepository) CreateAccount(ctx context.Context, account models.Account) (models.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if account.Name == "" {
		return models.Account{}, fmt.Errorf("%w: empty account name", ErrInvalidRecord)
	}
	if _, ok := r.byName[account.Name]; ok {
		return models.Account{}, ErrLoginAlreadyExists
	}
	if account.ID == 0 {
		account.ID = r.lastID + 1
	}
	if _, ok := r.byID[account.ID]; ok {
		return models.Account{}, fmt.Errorf("%w: account id %d", ErrLoginAlreadyExists, account.ID)
	}

	r.byID[account.ID] = account
	r.byName[account.Name] = account.ID
	r.lastID = max(r.lastID, account.ID)

	logger.FromContext(ctx).Debug().
		Int64("user_id", account.ID).
		Str("name", account.Name).
		Msg("account created")
	return account, nil
}

func (r *accountRepository) FindAccountByName(_ context.Context, name string) (models.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byName[name]
	if !ok {
		return models.Account{}, ErrNoUserWasFound
	}
	return r.byID[id], nil
}

type groupRepository struct {
	mu     sync.RWMutex
	groups map[int64]models.Group

	logger *logger.Logger
}

func NewGroupRepository(logger *logger.Logger) GroupRepository {
	logger.Debug().Msg("creating group repository")
	return &groupRepository{
		groups: make(map[int64]models.Group),
		logger: logger,
	}
}

func (r *groupRepository) CreateGroup(_ context.Context, group models.Group) (models.Group, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if group.ID <= 0 || group.Owner <= 0 {
		return models.Group{}, fmt.Errorf("%w: group %d owned by %d", ErrInvalidRecord, group.ID, group.Owner)
	}
	if _, ok := r.groups[group.ID]; ok {
		return models.Group{}, fmt.Errorf("%w: group %d exists", ErrInvalidRecord, group.ID)
	}
	if group.Version == 0 {
		group.Version = 1
	}
	group.Members = slices.Clone(group.Members)

	r.groups[group.ID] = group
	return group, nil
}

func (r *groupRepository) GetGroup(_ context.Context, id int64) (models.Group, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	g, ok := r.groups[id]
	if !ok {
		return models.Group{}, ErrGroupNotFound
	}
	return g, nil
}

func (r *groupRepository) GroupsOf(_ context.Context, userID int64) ([]models.Group, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []models.Group
	for _, g := range r.groups {
		if g.HasMember(userID) {
			out = append(out, g)
		}
	}
	slices.SortFunc(out, func(a, b models.Group) int {
		return cmp.Compare(a.ID, b.ID)
	})
	return out, nil
}
