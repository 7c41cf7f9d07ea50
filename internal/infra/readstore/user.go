package readstore

import (
	"context"

	"gin-storefront/internal/domain/user"
	"gin-storefront/internal/infra"
	sqlc "gin-storefront/internal/infra/sqlc/generated"
	"gin-storefront/internal/pkg/pgconv"
	"gin-storefront/internal/usecase/queries"
	"gin-storefront/internal/usecase/shared"

	"github.com/google/uuid"
)

type UserReadQueries interface {
	FindUserByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Users, error)
	FindUserByEmail(ctx context.Context, db sqlc.DBTX, lower string) (sqlc.Users, error)
	GetDefaultAddress(ctx context.Context, db sqlc.DBTX, userID uuid.UUID) (sqlc.GetDefaultAddressRow, error)
}

type UserReadStore struct {
	queries UserReadQueries
	db      sqlc.DBTX
}

func NewUserReadStore(queries UserReadQueries, db sqlc.DBTX) *UserReadStore {
	return &UserReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	row, err := r.findByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toAuthorizedUserView(row), nil
}

func (r *UserReadStore) FindProfile(ctx context.Context, id uuid.UUID) (*queries.ProfileView, error) {
	row, err := r.findByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &queries.ProfileView{
		ID:             row.ID,
		Email:          row.Email,
		Name:           pgconv.StringFromPgtype(row.Name),
		Nickname:       pgconv.StringFromPgtype(row.Nickname),
		Phone:          pgconv.StringFromPgtype(row.Phone),
		Location:       pgconv.StringFromPgtype(row.Location),
		Preferences:    pgconv.StringFromPgtype(row.Preferences),
		FavoriteStyles: pgconv.StringFromPgtype(row.FavoriteStyles),
	}, nil
}

func (r *UserReadStore) DefaultAddress(ctx context.Context, userID uuid.UUID) (*user.Address, error) {
	row, err := r.queries.GetDefaultAddress(ctx, r.db, userID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to get default address", err)
	}
	return &user.Address{
		FullName:     row.FullName,
		Phone:        pgconv.StringFromPgtype(row.Phone),
		AddressLine1: row.AddressLine1,
		AddressLine2: pgconv.StringFromPgtype(row.AddressLine2),
		City:         row.City,
		State:        pgconv.StringFromPgtype(row.State),
		ZipCode:      row.ZipCode,
		Country:      row.Country,
	}, nil
}

// FindByEmail returns the full snapshot, password hash included, for credential checks.
func (r *UserReadStore) FindByEmail(ctx context.Context, email string) (*shared.UserSnapshot, error) {
	row, err := r.queries.FindUserByEmail(ctx, r.db, email)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by email", err)
	}
	return toUserSnapshot(row), nil
}

func (r *UserReadStore) SnapshotByID(ctx context.Context, id uuid.UUID) (*shared.UserSnapshot, error) {
	row, err := r.findByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toUserSnapshot(row), nil
}

func (r *UserReadStore) findByID(ctx context.Context, id uuid.UUID) (sqlc.Users, error) {
	row, err := r.queries.FindUserByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return sqlc.Users{}, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return sqlc.Users{}, infra.WrapRepoErr("failed to find user by ID", err)
	}
	return row, nil
}

func toAuthorizedUserView(row sqlc.Users) *queries.AuthorizedUserView {
	return &queries.AuthorizedUserView{
		ID:        row.ID,
		Email:     row.Email,
		Role:      row.Role,
		Name:      pgconv.StringFromPgtype(row.Name),
		IsActive:  row.IsActive,
		LastLogin: pgconv.TimePtrFromPgtype(row.LastLogin),
	}
}

func toUserSnapshot(row sqlc.Users) *shared.UserSnapshot {
	return &shared.UserSnapshot{
		ID:             row.ID,
		Email:          row.Email,
		PasswordHash:   row.PasswordHash,
		Role:           row.Role,
		Name:           pgconv.StringFromPgtype(row.Name),
		Nickname:       pgconv.StringFromPgtype(row.Nickname),
		Phone:          pgconv.StringFromPgtype(row.Phone),
		Location:       pgconv.StringFromPgtype(row.Location),
		Preferences:    pgconv.StringFromPgtype(row.Preferences),
		FavoriteStyles: pgconv.StringFromPgtype(row.FavoriteStyles),
		IsActive:       row.IsActive,
		LastLogin:      pgconv.TimePtrFromPgtype(row.LastLogin),
		CreatedAt:      pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:      pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}
