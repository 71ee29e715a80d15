package repository

import (
	"context"
	"errors"

	"stylemart/internal/domain/entity"
)

// ErrNoCurrentUser is returned when no user is logged in.
var ErrNoCurrentUser = errors.New("no current user")

// IdentityRepository persists the mock identity state: the current user slot
// and the roster of registered credentials. The roster is the only place a
// password hash is ever stored; the current-user slot holds the stripped
// record.
type IdentityRepository interface {
	CurrentUser(ctx context.Context) (*entity.User, error)
	SaveCurrentUser(ctx context.Context, user *entity.User) error
	ClearCurrentUser(ctx context.Context) error

	Roster(ctx context.Context) ([]entity.Credential, error)
	SaveRoster(ctx context.Context, roster []entity.Credential) error
}
