// Package localstore implements the storefront's persistence ports on top of
// a gocloud.dev blob bucket: one well-known key per aggregate, one JSON blob
// per key. A file bucket gives durable local storage; an in-memory bucket
// serves tests and stateless runs.
package localstore

import (
	"context"
	"log/slog"
	"os"

	"stylemart/config"
	"stylemart/internal/domain/repository"
	"stylemart/internal/errors"

	"go.uber.org/fx"
	"gocloud.dev/blob"
	"gocloud.dev/blob/fileblob"
	"gocloud.dev/blob/memblob"
	"gocloud.dev/gcerrors"
)

// Persisted state layout. One key per aggregate, mirrored from the
// storefront's browser-storage contract.
const (
	cartKey      = "cart"
	wishlistKey  = "wishlist"
	userKey      = "user"
	usersKey     = "users"
	shopModeKey  = "shopMode"
	lastOrderKey = "lastOrder"
)

// Store is a KVStore backed by a blob bucket.
type Store struct {
	bucket *blob.Bucket
}

// Params holds dependencies for the store, injected by Fx.
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the configured bucket and registers its shutdown hook.
func New(params Params) (repository.KVStore, error) {
	var bucket *blob.Bucket

	if path := params.Config.Storage.Path; path != "" {
		if err := os.MkdirAll(path, 0o755); err != nil {
			return nil, errors.Wrap(err, "create storage directory")
		}

		fileBucket, err := fileblob.OpenBucket(path, nil)
		if err != nil {
			return nil, errors.Wrap(err, "open file bucket")
		}
		bucket = fileBucket

		params.Logger.Info("Opened file-backed storefront storage", slog.String("path", path))
	} else {
		bucket = memblob.OpenBucket(nil)
		params.Logger.Warn("No storage path configured, storefront state is in-memory only")
	}

	params.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return errors.WithStack(bucket.Close())
		},
	})

	return &Store{bucket: bucket}, nil
}

// OpenMem returns a store over a fresh in-memory bucket. Intended for tests.
func OpenMem() repository.KVStore {
	return &Store{bucket: memblob.OpenBucket(nil)}
}

// Get returns the blob stored under key, or repository.ErrKeyNotFound.
func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	raw, err := s.bucket.ReadAll(ctx, key)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, repository.ErrKeyNotFound
		}

		return nil, errors.Wrapf(err, "read %q", key)
	}

	return raw, nil
}

// Set writes the blob under key, replacing any previous value.
func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	if err := s.bucket.WriteAll(ctx, key, value, nil); err != nil {
		return errors.Wrapf(err, "write %q", key)
	}

	return nil
}

// Delete removes the key. Deleting an absent key is not an error.
func (s *Store) Delete(ctx context.Context, key string) error {
	err := s.bucket.Delete(ctx, key)
	if err != nil && gcerrors.Code(err) != gcerrors.NotFound {
		return errors.Wrapf(err, "delete %q", key)
	}

	return nil
}
