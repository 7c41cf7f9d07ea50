//go:build unit || e2e

package builder

import (
	"time"

	"gin-storefront/internal/domain/user"
	sqlc "gin-storefront/internal/infra/sqlc/generated"
	"gin-storefront/internal/usecase/queries"
	"gin-storefront/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// bcrypt hash of "password123"
const TestPasswordHash = "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A."

type UserBuilder struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	Role         string
	Profile      user.Profile
	IsActive     bool
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		ID:           uuid.New(),
		Email:        "shopper@example.com",
		PasswordHash: TestPasswordHash,
		Role:         "customer",
		Profile:      user.Profile{Name: "Jane Shopper"},
		IsActive:     true,
	}
}

func (u *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(u)
	return u
}

func (u *UserBuilder) BuildDomain() (*user.User, error) {
	email, err := user.NewEmail(u.Email)
	if err != nil {
		return nil, err
	}

	role, err := user.NewRole(u.Role)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	return user.ReconstructUser(u.ID, email, u.PasswordHash, role, u.Profile, nil, u.IsActive, now, now), nil
}

func (u *UserBuilder) BuildInfra() sqlc.Users {
	now := time.Now()
	return sqlc.Users{
		ID:             u.ID,
		Email:          u.Email,
		PasswordHash:   u.PasswordHash,
		Role:           u.Role,
		Name:           text(u.Profile.Name),
		Nickname:       text(u.Profile.Nickname),
		Phone:          text(u.Profile.Phone),
		Location:       text(u.Profile.Location),
		Preferences:    text(u.Profile.Preferences),
		FavoriteStyles: text(u.Profile.FavoriteStyles),
		IsActive:       u.IsActive,
		LastLogin:      pgtype.Timestamptz{},
		CreatedAt:      pgtype.Timestamptz{Time: now, Valid: true},
		UpdatedAt:      pgtype.Timestamptz{Time: now, Valid: true},
	}
}

func (u *UserBuilder) BuildSnapshot() *shared.UserSnapshot {
	now := time.Now()
	return &shared.UserSnapshot{
		ID:             u.ID,
		Email:          u.Email,
		PasswordHash:   u.PasswordHash,
		Role:           u.Role,
		Name:           u.Profile.Name,
		Nickname:       u.Profile.Nickname,
		Phone:          u.Profile.Phone,
		Location:       u.Profile.Location,
		Preferences:    u.Profile.Preferences,
		FavoriteStyles: u.Profile.FavoriteStyles,
		IsActive:       u.IsActive,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

func (u *UserBuilder) BuildReadModel() *queries.AuthorizedUserView {
	return &queries.AuthorizedUserView{
		ID:       u.ID,
		Email:    u.Email,
		Role:     u.Role,
		Name:     u.Profile.Name,
		IsActive: u.IsActive,
	}
}

func (u *UserBuilder) BuildProfileView() *queries.ProfileView {
	return &queries.ProfileView{
		ID:             u.ID,
		Email:          u.Email,
		Name:           u.Profile.Name,
		Nickname:       u.Profile.Nickname,
		Phone:          u.Profile.Phone,
		Location:       u.Profile.Location,
		Preferences:    u.Profile.Preferences,
		FavoriteStyles: u.Profile.FavoriteStyles,
	}
}

func (u *UserBuilder) WithEmail(email string) *UserBuilder {
	u.Email = email
	return u
}

func (u *UserBuilder) WithRole(role string) *UserBuilder {
	u.Role = role
	return u
}

func (u *UserBuilder) AsAdmin() *UserBuilder {
	u.Role = "admin"
	return u
}

func (u *UserBuilder) AsInactive() *UserBuilder {
	u.IsActive = false
	return u
}

func text(s string) pgtype.Text {
	return pgtype.Text{String: s, Valid: s != ""}
}
