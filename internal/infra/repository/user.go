package repository

import (
	"context"

	"gin-storefront/internal/domain/user"
	"gin-storefront/internal/infra"
	sqlc "gin-storefront/internal/infra/sqlc/generated"
	"gin-storefront/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type UserWriteQueries interface {
	UpdateUserLastLogin(ctx context.Context, db sqlc.DBTX, id uuid.UUID) error
	UpdateUserProfile(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateUserProfileParams) (int64, error)
	UpsertDefaultAddress(ctx context.Context, db sqlc.DBTX, arg sqlc.UpsertDefaultAddressParams) error
}

type UserRepository struct {
	queries UserWriteQueries
}

func NewUserRepository(queries UserWriteQueries) *UserRepository {
	return &UserRepository{queries: queries}
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID) error {
	if err := r.queries.UpdateUserLastLogin(ctx, tx, userID); err != nil {
		return infra.WrapRepoErr("failed to update user last login", err)
	}
	return nil
}

// UpdateProfile stores blank profile fields as NULL.
func (r *UserRepository) UpdateProfile(ctx context.Context, tx sqlc.DBTX, u *user.User) error {
	p := u.Profile()
	affected, err := r.queries.UpdateUserProfile(ctx, tx, sqlc.UpdateUserProfileParams{
		ID:             u.ID(),
		Name:           pgconv.EmptyStringToPgtype(p.Name),
		Nickname:       pgconv.EmptyStringToPgtype(p.Nickname),
		Phone:          pgconv.EmptyStringToPgtype(p.Phone),
		Location:       pgconv.EmptyStringToPgtype(p.Location),
		Preferences:    pgconv.EmptyStringToPgtype(p.Preferences),
		FavoriteStyles: pgconv.EmptyStringToPgtype(p.FavoriteStyles),
		UpdatedAt:      pgconv.TimeToPgtype(u.UpdatedAt()),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update user profile", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *UserRepository) UpsertDefaultAddress(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID, addr user.Address) error {
	err := r.queries.UpsertDefaultAddress(ctx, tx, sqlc.UpsertDefaultAddressParams{
		UserID:       userID,
		FullName:     addr.FullName,
		Phone:        pgconv.EmptyStringToPgtype(addr.Phone),
		AddressLine1: addr.AddressLine1,
		AddressLine2: pgconv.EmptyStringToPgtype(addr.AddressLine2),
		City:         addr.City,
		State:        pgconv.EmptyStringToPgtype(addr.State),
		ZipCode:      addr.ZipCode,
		Country:      addr.Country,
	})
	if err != nil {
		return infra.WrapRepoErr("failed to upsert default address", err)
	}
	return nil
}
