package repository

import (
	"context"

	"gin-storefront/internal/infra"
	sqlc "gin-storefront/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type DiscountWriteQueries interface {
	RedeemDiscountCode(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
}

type DiscountRepository struct {
	queries DiscountWriteQueries
}

func NewDiscountRepository(queries DiscountWriteQueries) *DiscountRepository {
	return &DiscountRepository{queries: queries}
}

// Redeem relies on the conditional UPDATE; concurrent redemptions of the last use serialize on the row lock.
func (r *DiscountRepository) Redeem(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (bool, error) {
	affected, err := r.queries.RedeemDiscountCode(ctx, tx, id)
	if err != nil {
		return false, infra.WrapRepoErr("failed to redeem discount code", err)
	}
	return affected == 1, nil
}
