package readstore

import (
	"context"

	"gin-storefront/internal/domain/catalog"
	"gin-storefront/internal/infra"
	sqlc "gin-storefront/internal/infra/sqlc/generated"
	"gin-storefront/internal/pkg/pgconv"
	"gin-storefront/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
)

type AdminReadQueries interface {
	CountProducts(ctx context.Context, db sqlc.DBTX) (int64, error)
	CountOrders(ctx context.Context, db sqlc.DBTX) (int64, error)
	CountUsers(ctx context.Context, db sqlc.DBTX) (int64, error)
	SumPaidRevenue(ctx context.Context, db sqlc.DBTX) (pgtype.Numeric, error)
	ListAllProducts(ctx context.Context, db sqlc.DBTX) ([]sqlc.ListAllProductsRow, error)
}

// TxRunner runs fn inside a read-only transaction so the counters come from one snapshot.
type TxRunner interface {
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
}

type AdminReadStore struct {
	queries AdminReadQueries
	db      sqlc.DBTX
	tx      TxRunner
}

func NewAdminReadStore(queries AdminReadQueries, db sqlc.DBTX, tx TxRunner) *AdminReadStore {
	return &AdminReadStore{
		queries: queries,
		db:      db,
		tx:      tx,
	}
}

func (r *AdminReadStore) Stats(ctx context.Context) (*queries.StatsView, error) {
	var stats queries.StatsView
	err := r.tx.WithinReadOnly(ctx, func(ctx context.Context, db sqlc.DBTX) error {
		var err error
		if stats.TotalProducts, err = r.queries.CountProducts(ctx, db); err != nil {
			return infra.WrapRepoErr("failed to count products", err)
		}
		if stats.TotalOrders, err = r.queries.CountOrders(ctx, db); err != nil {
			return infra.WrapRepoErr("failed to count orders", err)
		}
		if stats.TotalUsers, err = r.queries.CountUsers(ctx, db); err != nil {
			return infra.WrapRepoErr("failed to count users", err)
		}
		revenue, err := r.queries.SumPaidRevenue(ctx, db)
		if err != nil {
			return infra.WrapRepoErr("failed to sum paid revenue", err)
		}
		stats.TotalRevenue = pgconv.DecimalFromNumeric(revenue)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

func (r *AdminReadStore) ListAllProducts(ctx context.Context) ([]catalog.Product, error) {
	rows, err := r.queries.ListAllProducts(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list all products", err)
	}
	products := make([]catalog.Product, 0, len(rows))
	for _, row := range rows {
		products = append(products, toProduct(productRow(row)))
	}
	return products, nil
}
