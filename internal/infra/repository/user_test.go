//go:build unit

package repository

import (
	"context"
	"testing"
	"time"

	"gin-storefront/internal/domain/user"
	"gin-storefront/internal/infra"
	sqlc "gin-storefront/internal/infra/sqlc/generated"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockUserWriteQueries struct {
	mock.Mock
}

func (m *MockUserWriteQueries) UpdateUserLastLogin(ctx context.Context, db sqlc.DBTX, id uuid.UUID) error {
	args := m.Called(ctx, db, id)
	return args.Error(0)
}

func (m *MockUserWriteQueries) UpdateUserProfile(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateUserProfileParams) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserWriteQueries) UpsertDefaultAddress(ctx context.Context, db sqlc.DBTX, arg sqlc.UpsertDefaultAddressParams) error {
	args := m.Called(ctx, db, arg)
	return args.Error(0)
}

// sqlc.DBTX implementation for MockUserWriteQueries
func (m *MockUserWriteQueries) Exec(ctx context.Context, query string, args ...interface{}) (pgconn.CommandTag, error) {
	mockArgs := m.Called(ctx, query, args)
	return mockArgs.Get(0).(pgconn.CommandTag), mockArgs.Error(1)
}

func (m *MockUserWriteQueries) Query(ctx context.Context, query string, args ...interface{}) (pgx.Rows, error) {
	mockArgs := m.Called(ctx, query, args)
	return mockArgs.Get(0).(pgx.Rows), mockArgs.Error(1)
}

func (m *MockUserWriteQueries) QueryRow(ctx context.Context, query string, args ...interface{}) pgx.Row {
	mockArgs := m.Called(ctx, query, args)
	return mockArgs.Get(0).(pgx.Row)
}

func TestUpdateLastLogin(t *testing.T) {
	testUserID := uuid.New()

	tests := []struct {
		name      string
		userID    uuid.UUID
		mockError error
		wantError bool
	}{
		{
			name:      "success",
			userID:    testUserID,
			mockError: nil,
			wantError: false,
		},
		{
			name:      "database error",
			userID:    testUserID,
			mockError: assert.AnError,
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockUserWriteQueries)
			mockQueries.On("UpdateUserLastLogin", mock.Anything, mock.Anything, tt.userID).Return(tt.mockError)

			repo := NewUserRepository(mockQueries)

			err := repo.UpdateLastLogin(context.Background(), mockQueries, tt.userID)

			if tt.wantError {
				assert.Error(t, err)
				assert.True(t, infra.IsKind(err, infra.KindDBFailure))
			} else {
				assert.NoError(t, err)
			}

			mockQueries.AssertExpectations(t)
		})
	}
}

func TestUpdateProfile(t *testing.T) {
	email, _ := user.NewEmail("shopper@example.com")
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	u := user.ReconstructUser(uuid.New(), email, "hash", user.RoleCustomer, user.Profile{}, nil, true, now, now)
	u.ChangeProfile(user.Profile{Name: "Sam", Phone: ""}, now)

	t.Run("blank fields become NULL", func(t *testing.T) {
		mockQueries := new(MockUserWriteQueries)
		mockQueries.On("UpdateUserProfile", mock.Anything, mock.Anything, mock.MatchedBy(func(p sqlc.UpdateUserProfileParams) bool {
			return p.ID == u.ID() && p.Name.Valid && p.Name.String == "Sam" && !p.Phone.Valid && p.UpdatedAt.Time.Equal(now)
		})).Return(int64(1), nil)

		err := NewUserRepository(mockQueries).UpdateProfile(context.Background(), mockQueries, u)

		assert.NoError(t, err)
		mockQueries.AssertExpectations(t)
	})

	t.Run("missing row is not found", func(t *testing.T) {
		mockQueries := new(MockUserWriteQueries)
		mockQueries.On("UpdateUserProfile", mock.Anything, mock.Anything, mock.Anything).Return(int64(0), nil)

		err := NewUserRepository(mockQueries).UpdateProfile(context.Background(), mockQueries, u)

		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

func TestUpsertDefaultAddress(t *testing.T) {
	userID := uuid.New()
	addr := user.Address{FullName: "Sam", AddressLine1: "1 Road", City: "Leeds", ZipCode: "LS1", Country: "UK"}

	mockQueries := new(MockUserWriteQueries)
	mockQueries.On("UpsertDefaultAddress", mock.Anything, mock.Anything, mock.MatchedBy(func(p sqlc.UpsertDefaultAddressParams) bool {
		return p.UserID == userID && p.City == "Leeds" && !p.AddressLine2.Valid && p.Country == "UK"
	})).Return(nil)

	err := NewUserRepository(mockQueries).UpsertDefaultAddress(context.Background(), mockQueries, userID, addr)

	assert.NoError(t, err)
	mockQueries.AssertExpectations(t)
}
