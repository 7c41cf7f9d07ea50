//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"

	"gin-storefront/internal/domain/catalog"
	"gin-storefront/internal/pkg/errs"
	"gin-storefront/internal/usecase/queries"
	"gin-storefront/tests/common/builder"
	queriesmock "gin-storefront/tests/mock/queries"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CatalogQueriesTestSuite struct {
	suite.Suite
	mockCtrl *gomock.Controller
	source   *queriesmock.MockCatalogSource
	uc       queries.CatalogQueries
}

func (s *CatalogQueriesTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.source = queriesmock.NewMockCatalogSource(s.mockCtrl)
	s.source.EXPECT().Name().Return("local").AnyTimes()
	s.uc = queries.NewCatalogQueries(s.source)
}

func (s *CatalogQueriesTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCatalogQueriesSuite(t *testing.T) {
	suite.Run(t, new(CatalogQueriesTestSuite))
}

func (s *CatalogQueriesTestSuite) TestListProducts_NormalizesFilter() {
	products := []catalog.Product{builder.NewProductBuilder().BuildDomain()}
	s.source.EXPECT().List(gomock.Any(), catalog.ListFilter{
		Category: "clothing",
		Sort:     catalog.SortNewest,
		Limit:    catalog.DefaultLimit,
	}).Return(products, nil).Times(1)

	got, err := s.uc.ListProducts(context.Background(), catalog.ListFilter{Category: " clothing "})

	s.Require().NoError(err)
	if diff := cmp.Diff(products, got); diff != "" {
		s.T().Errorf("products mismatch (-want +got):\n%s", diff)
	}
}

func (s *CatalogQueriesTestSuite) TestListProducts_NilBecomesEmpty() {
	s.source.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, nil).Times(1)

	got, err := s.uc.ListProducts(context.Background(), catalog.ListFilter{})

	s.Require().NoError(err)
	s.NotNil(got)
	s.Empty(got)
}

func (s *CatalogQueriesTestSuite) TestListProducts_SourceFailure() {
	s.source.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, errors.New("timeout")).Times(1)

	got, err := s.uc.ListProducts(context.Background(), catalog.ListFilter{})

	s.Nil(got)
	s.True(errs.Is(err, errs.ErrUpstreamCatalog))
	s.Contains(err.Error(), "local")
}

func (s *CatalogQueriesTestSuite) TestGetProduct() {
	detail := builder.NewProductBuilder().BuildDetail()

	cases := []struct {
		name    string
		id      string
		setup   func()
		want    *catalog.ProductDetail
		wantErr error
	}{
		{
			name: "found",
			id:   detail.Product.ID,
			setup: func() {
				s.source.EXPECT().Get(gomock.Any(), detail.Product.ID).Return(detail, nil).Times(1)
			},
			want: detail,
		},
		{
			name:    "empty id short-circuits",
			id:      "",
			setup:   func() {},
			wantErr: errs.ErrProductNotFound,
		},
		{
			name: "not found passes through",
			id:   "missing",
			setup: func() {
				s.source.EXPECT().Get(gomock.Any(), "missing").Return(nil, errs.ErrProductNotFound).Times(1)
			},
			wantErr: errs.ErrProductNotFound,
		},
		{
			name: "source failure",
			id:   "p-1",
			setup: func() {
				s.source.EXPECT().Get(gomock.Any(), "p-1").Return(nil, errors.New("502 bad gateway")).Times(1)
			},
			wantErr: errs.ErrUpstreamCatalog,
		},
	}

	for _, tc := range cases {
		s.Run(tc.name, func() {
			tc.setup()

			got, err := s.uc.GetProduct(context.Background(), tc.id)

			if tc.wantErr != nil {
				s.Nil(got)
				s.True(errs.Is(err, tc.wantErr), "got %v", err)
				return
			}
			s.Require().NoError(err)
			s.Equal(tc.want, got)
		})
	}
}
