package commands

import (
	"context"
	"log/slog"

	"parking-app/internal/domain/auth"
	"parking-app/internal/domain/user"
	reqdto "parking-app/internal/handler/dto/request"
	"parking-app/internal/infra"
	"parking-app/internal/infra/query"
	"parking-app/internal/pkg/errs"
	"parking-app/internal/pkg/password"
	"parking-app/internal/usecase/shared"

	"github.com/google/uuid"
)

//go:generate mockgen -source=auth.go -destination=../../mock/commandsmock/auth.go -package=commandsmock

type LoginResult struct {
	UserID      uuid.UUID
	Role        user.Role
	AccessToken string
}

type AuthCommands interface {
	Register(ctx context.Context, req reqdto.RegisterRequest) (uuid.UUID, error)
	Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error)
	// EnsureAdmin creates the admin account unless the username is taken.
	EnsureAdmin(ctx context.Context, username, plainPassword string) error
}

type authCommandsImpl struct {
	uow    shared.UnitOfWork
	users  shared.UserRepository
	tokens TokenIssuer
}

func NewAuthCommands(uow shared.UnitOfWork, users shared.UserRepository, tokens TokenIssuer) AuthCommands {
	return &authCommandsImpl{
		uow:    uow,
		users:  users,
		tokens: tokens,
	}
}

func (a *authCommandsImpl) Register(ctx context.Context, req reqdto.RegisterRequest) (uuid.UUID, error) {
	reg, err := req.ToDomain()
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrInvalidRegistration)
	}

	hash, err := password.Hash(reg.Password.Value())
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrInvalidRegistration)
	}

	newUser := user.NewUser(reg.Username, hash, user.RoleUser, reg.Profile)

	var userID uuid.UUID
	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, createErr := tx.Users().Create(ctx, tx.DB(), newUser)
		if createErr != nil {
			return createErr
		}
		userID = id
		return nil
	})
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return uuid.Nil, ErrUsernameTaken
		}
		return uuid.Nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	slog.Info("user registered", "user_id", userID, "username", reg.Username.Value())
	return userID, nil
}

func (a *authCommandsImpl) Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error) {
	credentials, err := req.ToDomain()
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	account, err := a.validateUser(ctx, credentials)
	if err != nil {
		return nil, err
	}

	token, err := a.tokens.GenerateToken(account.ID(), account.Role())
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &LoginResult{
		UserID:      account.ID(),
		Role:        account.Role(),
		AccessToken: token,
	}, nil
}

func (a *authCommandsImpl) EnsureAdmin(ctx context.Context, username, plainPassword string) error {
	name, err := user.NewUsername(username)
	if err != nil {
		return errs.Wrap(err, "invalid admin username")
	}

	hash, err := password.Hash(plainPassword)
	if err != nil {
		return errs.Wrap(err, "failed to hash admin password")
	}

	admin := user.NewUser(name, hash, user.RoleAdmin, user.ReconstructProfile("", "", "", "", ""))

	var created bool
	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var createErr error
		created, createErr = tx.Users().CreateIfAbsent(ctx, tx.DB(), admin)
		return createErr
	})
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if created {
		slog.Info("default admin account created", "username", name.Value())
	} else {
		slog.Debug("admin account already present", "username", name.Value())
	}
	return nil
}

func (a *authCommandsImpl) validateUser(ctx context.Context, credentials auth.Credentials) (*user.User, error) {
	var account *user.User
	err := a.uow.WithDB(ctx, func(ctx context.Context, db query.DBTX) error {
		var findErr error
		account, findErr = a.users.FindByUsername(ctx, db, credentials.Username())
		return findErr
	})
	if err != nil {
		// Same error as a password mismatch to prevent user enumeration
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := password.Verify(account.PasswordHash(), credentials.Password()); err != nil {
		return nil, ErrInvalidCredentials
	}

	return account, nil
}
