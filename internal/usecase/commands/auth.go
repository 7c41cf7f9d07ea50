package commands

//go:generate mockgen -source=auth.go -destination=../../../tests/mock/commands/auth.go -package=commandsmock

import (
	"context"
	"log/slog"
	"time"

	"gin-storefront/internal/domain/user"
	"gin-storefront/internal/infra"
	"gin-storefront/internal/pkg/errs"
	"gin-storefront/internal/pkg/jwt"
	"gin-storefront/internal/pkg/password"
	"gin-storefront/internal/usecase/shared"

	"github.com/google/uuid"
)

type LoginResult struct {
	UserID      uuid.UUID
	Role        user.Role
	AccessToken string
	ExpiresAt   time.Time
}

type AuthCommands interface {
	Login(ctx context.Context, email, password string) (*LoginResult, error)
}

type UserByEmailReader interface {
	FindByEmail(ctx context.Context, email string) (*shared.UserSnapshot, error)
}

type authCommandsImpl struct {
	uow        shared.UnitOfWork
	users      UserByEmailReader
	jwtService *jwt.Service
}

func NewAuthCommands(uow shared.UnitOfWork, users UserByEmailReader, jwtService *jwt.Service) AuthCommands {
	return &authCommandsImpl{
		uow:        uow,
		users:      users,
		jwtService: jwtService,
	}
}

func (a *authCommandsImpl) Login(ctx context.Context, email, pass string) (*LoginResult, error) {
	credentials, err := user.NewCredentials(email, pass)
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	snap, err := a.validateUser(ctx, credentials)
	if err != nil {
		return nil, err
	}

	role, err := user.NewRole(snap.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	token, err := a.jwtService.GenerateToken(snap.ID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if updateErr := tx.Users().UpdateLastLogin(ctx, tx.DB(), snap.ID); updateErr != nil {
			slog.Warn("failed to update last login", "user_id", snap.ID, "error", updateErr.Error())
		}
		return nil
	})
	if err != nil {
		// login already succeeded; only last_login is stale
		slog.Warn("transaction failed during login", "user_id", snap.ID, "error", err.Error())
	}

	return &LoginResult{
		UserID:      snap.ID,
		Role:        role,
		AccessToken: token,
		ExpiresAt:   time.Now().Add(a.jwtService.TokenDuration()),
	}, nil
}

func (a *authCommandsImpl) validateUser(ctx context.Context, credentials user.Credentials) (*shared.UserSnapshot, error) {
	snap, err := a.users.FindByEmail(ctx, credentials.Email().Value())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			// same error as a password mismatch to prevent user enumeration
			return nil, ErrInvalidCredentials
		}
		return nil, errs.Wrap(err, "find user by email")
	}

	if !snap.IsActive {
		return nil, ErrUserInactive
	}

	if err := password.ComparePassword(snap.PasswordHash, credentials.Password().Value()); err != nil {
		return nil, ErrInvalidCredentials
	}

	return snap, nil
}
