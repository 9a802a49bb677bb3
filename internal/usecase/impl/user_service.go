package impl

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"
	"go.uber.org/fx"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"
)

// userService implements the UserUsecase interface.
type userService struct {
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a new account. Hashing is deliberately slow and runs here,
// before the user store's guard is ever taken.
func (srv *userService) Register(ctx context.Context, input *usecase.RegisterInput) (*entity.User, error) {
	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage("failed to hash password")
	}

	user, err := srv.userRepo.Create(ctx, &entity.User{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: hash,
	})
	if errors.Is(err, repository.ErrUserExists) {
		return nil, domainerrors.ErrUserAlreadyExists
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to create user")
	}

	srv.log(ctx).Info("User registered", slog.Int64("userID", user.ID), slog.String("username", user.Username))

	return user, nil
}

// Login verifies credentials and issues a signed identity token. An unknown
// username and a wrong password produce the same error, so the response does
// not reveal which accounts exist.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	user, err := srv.userRepo.FindByUsername(ctx, input.Username)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrInvalidCredentials
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("username", input.Username))

		return nil, domainerrors.ErrInvalidCredentials
	}

	token, err := srv.tokenService.CreateToken(user.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue token")
	}

	srv.log(ctx).Info("User logged in", slog.Int64("userID", user.ID))

	return &usecase.LoginOutput{Token: token, User: user}, nil
}
