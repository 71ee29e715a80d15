package impl

import (
	"context"
	"log/slog"
	"strings"

	"stylemart/internal/domain/entity"
	domainerrors "stylemart/internal/domain/errors"
	"stylemart/internal/domain/repository"
	"stylemart/internal/domain/service"
	"stylemart/internal/errors"
	"stylemart/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// identityService implements the IdentityUsecase interface.
type identityService struct {
	identityRepo repository.IdentityRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// IdentityServiceParams holds dependencies for identityService, injected by Fx.
type IdentityServiceParams struct {
	fx.In

	IdentityRepo repository.IdentityRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewIdentityService is the constructor for identityService.
func NewIdentityService(params IdentityServiceParams) usecase.IdentityUsecase {
	return &identityService{
		identityRepo: params.IdentityRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// Register adds a new credential to the roster. Email is the uniqueness key;
// registration fails if it is already taken. On success the new user becomes
// the current user and a session token is issued.
func (srv *identityService) Register(ctx context.Context, input usecase.RegisterInput) (*usecase.AuthOutput, error) {
	email := normalizeEmail(input.Email)
	if input.Name == "" || email == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "name and email are required")
	}
	if err := srv.hasher.ValidatePasswordStrength(input.Password); err != nil {
		return nil, err
	}

	roster, err := srv.identityRepo.Roster(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "load roster")
	}

	for _, cred := range roster {
		if normalizeEmail(cred.Email) == email {
			return nil, domainerrors.ErrUserAlreadyExists
		}
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "hash password")
	}

	user := entity.User{
		ID:    uuid.New(),
		Name:  input.Name,
		Email: email,
	}

	roster = append(roster, entity.Credential{User: user, PasswordHash: hash})
	if err := srv.identityRepo.SaveRoster(ctx, roster); err != nil {
		return nil, errors.Wrap(err, "save roster")
	}

	if err := srv.identityRepo.SaveCurrentUser(ctx, &user); err != nil {
		return nil, errors.Wrap(err, "save current user")
	}

	token, err := srv.tokenService.GenerateToken(user.ID)
	if err != nil {
		return nil, errors.Wrap(err, "issue session token")
	}

	srv.logger.Info("User registered", slog.String("email", email))

	return &usecase.AuthOutput{User: &user, Token: token}, nil
}

// Login checks the credentials against the roster. The stored hash is
// stripped before the record is exposed as the current user.
func (srv *identityService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.AuthOutput, error) {
	email := normalizeEmail(input.Email)

	roster, err := srv.identityRepo.Roster(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "load roster")
	}

	for _, cred := range roster {
		if normalizeEmail(cred.Email) != email {
			continue
		}
		if !srv.hasher.Check(input.Password, cred.PasswordHash) {
			break
		}

		user := cred.User
		if err := srv.identityRepo.SaveCurrentUser(ctx, &user); err != nil {
			return nil, errors.Wrap(err, "save current user")
		}

		token, err := srv.tokenService.GenerateToken(user.ID)
		if err != nil {
			return nil, errors.Wrap(err, "issue session token")
		}

		srv.logger.Info("User logged in", slog.String("email", email))

		return &usecase.AuthOutput{User: &user, Token: token}, nil
	}

	return nil, domainerrors.ErrInvalidCredentials
}

// Logout clears the current-user slot.
func (srv *identityService) Logout(ctx context.Context) error {
	return errors.Wrap(srv.identityRepo.ClearCurrentUser(ctx), "clear current user")
}

// CurrentUser returns the logged-in user.
func (srv *identityService) CurrentUser(ctx context.Context) (*entity.User, error) {
	user, err := srv.identityRepo.CurrentUser(ctx)
	if errors.Is(err, repository.ErrNoCurrentUser) {
		return nil, domainerrors.ErrNotLoggedIn
	}
	if err != nil {
		return nil, errors.Wrap(err, "load current user")
	}

	return user, nil
}

// UpdateProfile applies partial updates to the current user and mirrors them
// into the roster entry so the next login sees them.
func (srv *identityService) UpdateProfile(ctx context.Context, input usecase.UpdateProfileInput) (*entity.User, error) {
	user, err := srv.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}

	applyProfileUpdates(user, input)

	if err := srv.identityRepo.SaveCurrentUser(ctx, user); err != nil {
		return nil, errors.Wrap(err, "save current user")
	}

	roster, err := srv.identityRepo.Roster(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "load roster")
	}
	for i := range roster {
		if roster[i].ID == user.ID {
			roster[i].User = *user

			break
		}
	}
	if err := srv.identityRepo.SaveRoster(ctx, roster); err != nil {
		return nil, errors.Wrap(err, "save roster")
	}

	return user, nil
}

func applyProfileUpdates(user *entity.User, input usecase.UpdateProfileInput) {
	if input.Name != nil {
		user.Name = *input.Name
	}
	if input.Phone != nil {
		user.Phone = *input.Phone
	}
	if input.Address != nil {
		user.Address = *input.Address
	}
	if input.City != nil {
		user.City = *input.City
	}
	if input.ZipCode != nil {
		user.ZipCode = *input.ZipCode
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
