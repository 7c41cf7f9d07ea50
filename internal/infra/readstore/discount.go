package readstore

import (
	"context"

	"gin-storefront/internal/infra"
	sqlc "gin-storefront/internal/infra/sqlc/generated"
	"gin-storefront/internal/pkg/pgconv"
	"gin-storefront/internal/usecase/shared"
)

type DiscountReadQueries interface {
	GetDiscountCodeByCode(ctx context.Context, db sqlc.DBTX, upper string) (sqlc.GetDiscountCodeByCodeRow, error)
}

type DiscountReadStore struct {
	queries DiscountReadQueries
	db      sqlc.DBTX
}

func NewDiscountReadStore(queries DiscountReadQueries, db sqlc.DBTX) *DiscountReadStore {
	return &DiscountReadStore{
		queries: queries,
		db:      db,
	}
}

// FindByCode matches case-insensitively; codes are stored upper-case.
func (r *DiscountReadStore) FindByCode(ctx context.Context, code string) (*shared.DiscountSnapshot, error) {
	row, err := r.queries.GetDiscountCodeByCode(ctx, r.db, code)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("discount code not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get discount code", err)
	}

	return &shared.DiscountSnapshot{
		ID:          row.ID,
		Code:        row.Code,
		Type:        row.Type,
		Value:       pgconv.DecimalFromNumeric(row.Value),
		MinPurchase: pgconv.DecimalPtrFromNumeric(row.MinPurchase),
		MaxDiscount: pgconv.DecimalPtrFromNumeric(row.MaxDiscount),
		ValidFrom:   pgconv.TimeFromPgtype(row.ValidFrom),
		ValidUntil:  pgconv.TimeFromPgtype(row.ValidUntil),
		UsageLimit:  pgconv.Int32PtrFromPgtype(row.UsageLimit),
		UsedCount:   row.UsedCount,
		IsActive:    row.IsActive,
	}, nil
}
