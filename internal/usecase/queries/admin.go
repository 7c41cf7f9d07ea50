package queries

//go:generate mockgen -source=admin.go -destination=../../../tests/mock/queries/admin.go -package=queriesmock

import (
	"context"

	"gin-storefront/internal/domain/catalog"
)

type AdminReadStore interface {
	Stats(ctx context.Context) (*StatsView, error)
	ListAllProducts(ctx context.Context) ([]catalog.Product, error)
}

type AdminQueries interface {
	GetStats(ctx context.Context) (*StatsView, error)
	ListProducts(ctx context.Context) ([]catalog.Product, error)
}

type adminQueriesImpl struct {
	readStore AdminReadStore
}

func NewAdminQueries(readStore AdminReadStore) AdminQueries {
	return &adminQueriesImpl{readStore: readStore}
}

// GetStats counts revenue from paid orders only.
func (q *adminQueriesImpl) GetStats(ctx context.Context) (*StatsView, error) {
	return q.readStore.Stats(ctx)
}

// ListProducts includes inactive products, newest first.
func (q *adminQueriesImpl) ListProducts(ctx context.Context) ([]catalog.Product, error) {
	products, err := q.readStore.ListAllProducts(ctx)
	if err != nil {
		return nil, err
	}
	if products == nil {
		products = []catalog.Product{}
	}
	return products, nil
}
