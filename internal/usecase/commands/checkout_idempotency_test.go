//go:build unit

package commands_test

import (
	"context"
	"errors"
	"time"

	"gin-storefront/internal/domain/order"
	"gin-storefront/internal/infra"
	sqlc "gin-storefront/internal/infra/sqlc/generated"
	"gin-storefront/internal/pkg/errs"
	"gin-storefront/internal/usecase/commands"
	"gin-storefront/internal/usecase/shared"
	"gin-storefront/tests/common/builder"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/mock/gomock"
)

// captureClaim expects one claim for key and records the request hash it was given.
func (s *CheckoutCommandsTestSuite) captureClaim(key uuid.UUID, claimed bool, hash *string) {
	s.idem.EXPECT().Claim(gomock.Any(), gomock.Any(), key, s.customer.ID, "POST /checkout/create", gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ sqlc.DBTX, _, _ uuid.UUID, _, requestHash string, expiresAt time.Time) (bool, error) {
			s.Equal(fixedNow.Add(24*time.Hour), expiresAt)
			s.NotEmpty(requestHash)
			*hash = requestHash
			return claimed, nil
		}).Times(1)
}

func (s *CheckoutCommandsTestSuite) TestCreate_IdempotencyFirstAttemptCompletesKey() {
	key := uuid.New()
	req := builder.NewCheckoutBuilder().BuildCommand()
	req.IdempotencyKey = key

	var hash string
	gomock.InOrder(
		s.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
				return fn(ctx, s.tx)
			}),
		s.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
				return fn(ctx, s.tx)
			}),
	)
	s.captureClaim(key, true, &hash)
	s.expectCustomer()
	s.backend.EXPECT().CreateSession(gomock.Any(), gomock.Any()).
		Return(&commands.CheckoutSession{URL: "https://pay.example.com/cs_9", Reference: "cs_9"}, nil).Times(1)

	var orderID uuid.UUID
	s.orders.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ sqlc.DBTX, o *order.Order) error {
			orderID = o.ID()
			return nil
		}).Times(1)
	s.idem.EXPECT().Complete(gomock.Any(), gomock.Any(), key, s.customer.ID, gomock.Any(), "https://pay.example.com/cs_9").
		DoAndReturn(func(_ context.Context, _ sqlc.DBTX, _, _, id uuid.UUID, _ string) error {
			s.Equal(orderID, id)
			return nil
		}).Times(1)

	result, err := s.uc.Create(context.Background(), req, s.customer.ID)

	s.Require().NoError(err)
	s.False(result.Replayed)
	s.Equal(orderID, result.OrderID)
}

func (s *CheckoutCommandsTestSuite) TestCreate_IdempotencyReplaysCompletedResult() {
	key := uuid.New()
	orderID := uuid.New()
	req := builder.NewCheckoutBuilder().BuildCommand()
	req.IdempotencyKey = key

	var hash string
	s.expectWithin()
	s.captureClaim(key, false, &hash)
	s.idem.EXPECT().Get(gomock.Any(), gomock.Any(), key, s.customer.ID).
		DoAndReturn(func(context.Context, sqlc.DBTX, uuid.UUID, uuid.UUID) (*shared.IdempotencyRecord, error) {
			return &shared.IdempotencyRecord{
				Key:         key,
				UserID:      s.customer.ID,
				RequestHash: hash,
				Status:      shared.IdempotencyCompleted,
				OrderID:     &orderID,
				ResultURL:   "https://pay.example.com/cs_1",
			}, nil
		}).Times(1)

	result, err := s.uc.Create(context.Background(), req, s.customer.ID)

	s.Require().NoError(err)
	s.True(result.Replayed)
	s.Equal("https://pay.example.com/cs_1", result.URL)
	s.Equal(orderID, result.OrderID)
}

func (s *CheckoutCommandsTestSuite) TestCreate_IdempotencyConflicts() {
	cases := []struct {
		name    string
		record  func(hash string) *shared.IdempotencyRecord
		getErr  error
		wantErr error
	}{
		{
			name: "different cart under the same key",
			record: func(string) *shared.IdempotencyRecord {
				return &shared.IdempotencyRecord{RequestHash: "other", Status: shared.IdempotencyCompleted}
			},
			wantErr: commands.ErrIdempotencyKeyReused,
		},
		{
			name: "first attempt still processing",
			record: func(hash string) *shared.IdempotencyRecord {
				return &shared.IdempotencyRecord{RequestHash: hash, Status: shared.IdempotencyProcessing}
			},
			wantErr: commands.ErrIdempotencyInProgress,
		},
		{
			name:    "key released before it could be read",
			getErr:  infra.WrapRepoErr("idempotency key not found", pgx.ErrNoRows, infra.KindNotFound),
			wantErr: commands.ErrIdempotencyInProgress,
		},
	}

	for _, tc := range cases {
		s.Run(tc.name, func() {
			key := uuid.New()
			req := builder.NewCheckoutBuilder().BuildCommand()
			req.IdempotencyKey = key

			var hash string
			s.expectWithin()
			s.captureClaim(key, false, &hash)
			s.idem.EXPECT().Get(gomock.Any(), gomock.Any(), key, s.customer.ID).
				DoAndReturn(func(context.Context, sqlc.DBTX, uuid.UUID, uuid.UUID) (*shared.IdempotencyRecord, error) {
					if tc.getErr != nil {
						return nil, tc.getErr
					}
					return tc.record(hash), nil
				}).Times(1)

			result, err := s.uc.Create(context.Background(), req, s.customer.ID)

			s.Nil(result)
			s.ErrorIs(err, tc.wantErr)
		})
	}
}

func (s *CheckoutCommandsTestSuite) TestCreate_IdempotencyStoreFailure() {
	key := uuid.New()
	req := builder.NewCheckoutBuilder().BuildCommand()
	req.IdempotencyKey = key

	s.expectWithin()
	s.idem.EXPECT().Claim(gomock.Any(), gomock.Any(), key, s.customer.ID, gomock.Any(), gomock.Any(), gomock.Any()).
		Return(false, infra.WrapRepoErr("failed to claim idempotency key", errors.New("conn refused"))).Times(1)

	_, err := s.uc.Create(context.Background(), req, s.customer.ID)

	s.Require().Error(err)
	s.True(errs.Is(err, commands.ErrIdempotencyCheckFailed))
}

func (s *CheckoutCommandsTestSuite) TestCreate_IdempotencyFailureReleasesKey() {
	key := uuid.New()
	req := builder.NewCheckoutBuilder().BuildCommand()
	req.IdempotencyKey = key

	var hash string
	s.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, s.tx)
		}).Times(2)
	s.captureClaim(key, true, &hash)
	s.expectCustomer()
	s.backend.EXPECT().CreateSession(gomock.Any(), gomock.Any()).
		Return(nil, commands.NewCheckoutRejection("Variant sold out")).Times(1)
	s.idem.EXPECT().Release(gomock.Any(), gomock.Any(), key, s.customer.ID).Return(nil).Times(1)

	_, err := s.uc.Create(context.Background(), req, s.customer.ID)

	msg, ok := commands.RejectionMessage(err)
	s.True(ok)
	s.Equal("Variant sold out", msg)
}

func (s *CheckoutCommandsTestSuite) TestCreate_SameCartHashesEqually() {
	first := builder.NewCheckoutBuilder().BuildCommand()
	first.IdempotencyKey = uuid.New()
	second := builder.NewCheckoutBuilder().BuildCommand()
	second.IdempotencyKey = uuid.New()

	var hashes []string
	s.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, s.tx)
		}).Times(2)
	s.idem.EXPECT().Claim(gomock.Any(), gomock.Any(), gomock.Any(), s.customer.ID, gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ sqlc.DBTX, _, _ uuid.UUID, _, requestHash string, _ time.Time) (bool, error) {
			hashes = append(hashes, requestHash)
			return false, nil
		}).Times(2)
	s.idem.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any(), s.customer.ID).
		Return(&shared.IdempotencyRecord{RequestHash: "x", Status: shared.IdempotencyCompleted}, nil).Times(2)

	_, _ = s.uc.Create(context.Background(), first, s.customer.ID)
	_, _ = s.uc.Create(context.Background(), second, s.customer.ID)

	s.Require().Len(hashes, 2)
	s.Equal(hashes[0], hashes[1])
}
