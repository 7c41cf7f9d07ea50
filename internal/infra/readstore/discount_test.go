//go:build unit

package readstore

import (
	"context"
	"testing"

	"gin-storefront/internal/infra"
	sqlc "gin-storefront/internal/infra/sqlc/generated"
	"gin-storefront/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockDiscountReadQueries struct {
	mock.Mock
}

func (m *MockDiscountReadQueries) GetDiscountCodeByCode(ctx context.Context, db sqlc.DBTX, upper string) (sqlc.GetDiscountCodeByCodeRow, error) {
	args := m.Called(ctx, db, upper)
	return args.Get(0).(sqlc.GetDiscountCodeByCodeRow), args.Error(1)
}

func TestDiscountReadStore_FindByCode(t *testing.T) {
	capped := builder.NewDiscountBuilder().
		With(func(d *builder.DiscountBuilder) { d.Code = "SAVE20" }).
		WithMinPurchase("30").
		WithMaxDiscount("20").
		WithUsage(100, 7)

	tests := []struct {
		name      string
		code      *builder.DiscountBuilder
		mockError error
		wantKind  infra.RepositoryErrorKind
	}{
		{name: "open-ended code", code: builder.NewDiscountBuilder()},
		{name: "code with limits", code: capped},
		{name: "not found", code: builder.NewDiscountBuilder(), mockError: pgx.ErrNoRows, wantKind: infra.KindNotFound},
		{name: "database error", code: builder.NewDiscountBuilder(), mockError: assert.AnError, wantKind: infra.KindDBFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockDiscountReadQueries)
			row := tt.code.BuildRow()
			if tt.mockError != nil {
				row = sqlc.GetDiscountCodeByCodeRow{}
			}
			mockQueries.On("GetDiscountCodeByCode", mock.Anything, mock.Anything, tt.code.Code).Return(row, tt.mockError)

			snap, err := NewDiscountReadStore(mockQueries, nil).FindByCode(context.Background(), tt.code.Code)

			if tt.mockError != nil {
				assert.Nil(t, snap)
				assert.True(t, infra.IsKind(err, tt.wantKind))
				return
			}
			require.NoError(t, err)
			if diff := cmp.Diff(tt.code.BuildSnapshot(), snap); diff != "" {
				t.Errorf("snapshot mismatch (-want +got):\n%s", diff)
			}
			mockQueries.AssertExpectations(t)
		})
	}
}
