//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"

	"gin-storefront/internal/domain/catalog"
	"gin-storefront/internal/usecase/queries"
	"gin-storefront/tests/common/builder"
	queriesmock "gin-storefront/tests/mock/queries"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestAdminQueries_GetStats(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := queriesmock.NewMockAdminReadStore(ctrl)
	stats := &queries.StatsView{TotalProducts: 8, TotalOrders: 3, TotalUsers: 2, TotalRevenue: decimal.RequireFromString("120.50")}
	store.EXPECT().Stats(gomock.Any()).Return(stats, nil).Times(1)

	got, err := queries.NewAdminQueries(store).GetStats(context.Background())

	require.NoError(t, err)
	assert.Equal(t, stats, got)
}

func TestAdminQueries_ListProducts(t *testing.T) {
	t.Run("includes inactive products", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockAdminReadStore(ctrl)
		products := []catalog.Product{
			builder.NewProductBuilder().BuildDomain(),
			builder.NewProductBuilder().With(func(p *builder.ProductBuilder) { p.IsActive = false }).BuildDomain(),
		}
		store.EXPECT().ListAllProducts(gomock.Any()).Return(products, nil).Times(1)

		got, err := queries.NewAdminQueries(store).ListProducts(context.Background())

		require.NoError(t, err)
		assert.Len(t, got, 2)
	})

	t.Run("empty catalog", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockAdminReadStore(ctrl)
		store.EXPECT().ListAllProducts(gomock.Any()).Return(nil, nil).Times(1)

		got, err := queries.NewAdminQueries(store).ListProducts(context.Background())

		require.NoError(t, err)
		assert.Equal(t, []catalog.Product{}, got)
	})

	t.Run("read store failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockAdminReadStore(ctrl)
		store.EXPECT().ListAllProducts(gomock.Any()).Return(nil, errors.New("timeout")).Times(1)

		got, err := queries.NewAdminQueries(store).ListProducts(context.Background())

		assert.Nil(t, got)
		assert.Error(t, err)
	})
}
