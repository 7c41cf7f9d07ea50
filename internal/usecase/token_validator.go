package usecase

import (
	"gin-storefront/internal/domain/user"
	"gin-storefront/internal/pkg/errs"
	"gin-storefront/internal/pkg/jwt"

	"github.com/google/uuid"
)

// Principal is the caller a bearer token or access_token cookie resolves to.
type Principal struct {
	UserID uuid.UUID
	Role   user.Role
}

func (p Principal) IsAdmin() bool {
	return p.Role.IsAdmin()
}

// TokenValidator turns a token into a Principal for the auth middleware.
// Account state (inactive, deleted) is not checked here; handlers that load the user do that.
type TokenValidator interface {
	ValidateToken(tokenString string) (Principal, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
	}
}

func (t *tokenValidatorImpl) ValidateToken(tokenString string) (Principal, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return Principal{}, err
	}
	if claims.UserID == uuid.Nil {
		return Principal{}, errs.New("token has no subject")
	}

	role, err := user.NewRole(claims.Role)
	if err != nil {
		return Principal{}, errs.Wrap(err, "token role")
	}

	return Principal{UserID: claims.UserID, Role: role}, nil
}
