package localstore

import (
	"context"
	"encoding/json"
	"log/slog"

	"stylemart/internal/domain/entity"
	"stylemart/internal/domain/repository"
	"stylemart/internal/errors"
)

type identityRepository struct {
	kv     repository.KVStore
	logger *slog.Logger
}

// NewIdentityRepository creates the identity repository over the key-value store.
func NewIdentityRepository(kv repository.KVStore, logger *slog.Logger) repository.IdentityRepository {
	return &identityRepository{kv: kv, logger: logger}
}

// CurrentUser returns the logged-in user, or repository.ErrNoCurrentUser.
// A corrupt slot is treated as logged out.
func (r *identityRepository) CurrentUser(ctx context.Context) (*entity.User, error) {
	raw, err := r.kv.Get(ctx, userKey)
	if errors.Is(err, repository.ErrKeyNotFound) {
		return nil, repository.ErrNoCurrentUser
	}
	if err != nil {
		return nil, errors.Wrap(err, "load current user")
	}

	var user entity.User
	if err := json.Unmarshal(raw, &user); err != nil {
		r.logger.Warn("Discarding corrupt current-user state", slog.Any("error", err))

		return nil, repository.ErrNoCurrentUser
	}

	return &user, nil
}

// SaveCurrentUser writes the stripped user record into the current-user slot.
func (r *identityRepository) SaveCurrentUser(ctx context.Context, user *entity.User) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return errors.Wrap(err, "marshal current user")
	}

	return errors.Wrap(r.kv.Set(ctx, userKey, raw), "save current user")
}

// ClearCurrentUser logs the user out by deleting the slot.
func (r *identityRepository) ClearCurrentUser(ctx context.Context) error {
	return errors.Wrap(r.kv.Delete(ctx, userKey), "clear current user")
}

// Roster returns the registered credential list. Missing or corrupt data
// yields an empty roster.
func (r *identityRepository) Roster(ctx context.Context) ([]entity.Credential, error) {
	raw, err := r.kv.Get(ctx, usersKey)
	if errors.Is(err, repository.ErrKeyNotFound) {
		return []entity.Credential{}, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "load roster")
	}

	var roster []entity.Credential
	if err := json.Unmarshal(raw, &roster); err != nil {
		r.logger.Warn("Discarding corrupt credential roster", slog.Any("error", err))

		return []entity.Credential{}, nil
	}

	return roster, nil
}

// SaveRoster persists the full credential roster.
func (r *identityRepository) SaveRoster(ctx context.Context, roster []entity.Credential) error {
	raw, err := json.Marshal(roster)
	if err != nil {
		return errors.Wrap(err, "marshal roster")
	}

	return errors.Wrap(r.kv.Set(ctx, usersKey, raw), "save roster")
}
