package queries

//go:generate mockgen -source=catalog.go -destination=../../../tests/mock/queries/catalog.go -package=queriesmock

import (
	"context"

	"gin-storefront/internal/domain/catalog"
	"gin-storefront/internal/pkg/errs"
)

// CatalogSource is one backing store for products. It is chosen once per process.
type CatalogSource interface {
	Name() string
	List(ctx context.Context, filter catalog.ListFilter) ([]catalog.Product, error)
	// Get returns errs.ErrProductNotFound when id does not resolve.
	Get(ctx context.Context, id string) (*catalog.ProductDetail, error)
}

type CatalogQueries interface {
	ListProducts(ctx context.Context, filter catalog.ListFilter) ([]catalog.Product, error)
	GetProduct(ctx context.Context, id string) (*catalog.ProductDetail, error)
}

type catalogQueriesImpl struct {
	source CatalogSource
}

func NewCatalogQueries(source CatalogSource) CatalogQueries {
	return &catalogQueriesImpl{source: source}
}

func (q *catalogQueriesImpl) ListProducts(ctx context.Context, filter catalog.ListFilter) ([]catalog.Product, error) {
	products, err := q.source.List(ctx, filter.Normalized())
	if err != nil {
		return nil, errs.Mark(errs.Wrapf(err, "list products from %s", q.source.Name()), errs.ErrUpstreamCatalog)
	}
	if products == nil {
		products = []catalog.Product{}
	}
	return products, nil
}

func (q *catalogQueriesImpl) GetProduct(ctx context.Context, id string) (*catalog.ProductDetail, error) {
	if id == "" {
		return nil, errs.ErrProductNotFound
	}
	detail, err := q.source.Get(ctx, id)
	if err != nil {
		if errs.Is(err, errs.ErrProductNotFound) {
			return nil, err
		}
		return nil, errs.Mark(errs.Wrapf(err, "get product %s from %s", id, q.source.Name()), errs.ErrUpstreamCatalog)
	}
	return detail, nil
}
