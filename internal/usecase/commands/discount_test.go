//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"

	"gin-storefront/internal/infra"
	"gin-storefront/internal/pkg/clock"
	"gin-storefront/internal/usecase/commands"
	"gin-storefront/tests/common/builder"
	sharedmock "gin-storefront/tests/mock/shared"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type DiscountCommandsTestSuite struct {
	suite.Suite
	mockCtrl *gomock.Controller
	reads    *sharedmock.MockCommandReads
	uc       commands.DiscountCommands
}

func (s *DiscountCommandsTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	uow := sharedmock.NewMockUnitOfWork(s.mockCtrl)
	s.reads = sharedmock.NewMockCommandReads(s.mockCtrl)
	uow.EXPECT().CommandReads().Return(s.reads).AnyTimes()
	s.uc = commands.NewDiscountCommands(uow, clock.NewMockClock(fixedNow))
}

func (s *DiscountCommandsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestDiscountCommandsSuite(t *testing.T) {
	suite.Run(t, new(DiscountCommandsTestSuite))
}

func (s *DiscountCommandsTestSuite) TestValidate_PercentageWithCap() {
	code := builder.NewDiscountBuilder().With(func(d *builder.DiscountBuilder) { d.Code = "SAVE20" })
	code.Value = dec("20")
	code.WithMinPurchase("30").WithMaxDiscount("20")
	s.reads.EXPECT().DiscountByCode(gomock.Any(), "SAVE20").Return(code.BuildSnapshot(), nil).Times(1)

	result, err := s.uc.Validate(context.Background(), "  save20 ", dec("150"))

	s.Require().NoError(err)
	s.True(result.Valid)
	s.True(dec("20").Equal(result.Discount), "got %s", result.Discount)
	s.Empty(result.Message)
}

func (s *DiscountCommandsTestSuite) TestValidate_Welcome() {
	s.reads.EXPECT().DiscountByCode(gomock.Any(), "WELCOME10").
		Return(builder.NewDiscountBuilder().BuildSnapshot(), nil).Times(1)

	result, err := s.uc.Validate(context.Background(), "WELCOME10", dec("10.00"))

	s.Require().NoError(err)
	s.True(result.Valid)
	s.True(dec("1").Equal(result.Discount))
}

func (s *DiscountCommandsTestSuite) TestValidate_Rejections() {
	cases := []struct {
		name     string
		subtotal string
		snap     *builder.DiscountBuilder
		lookup   error
		message  string
	}{
		{name: "unknown code", subtotal: "50", lookup: infra.WrapRepoErr("discount code not found", pgx.ErrNoRows, infra.KindNotFound), message: "Invalid code"},
		{name: "inactive", subtotal: "50", snap: builder.NewDiscountBuilder().With(func(d *builder.DiscountBuilder) { d.IsActive = false }), message: "Invalid code"},
		{name: "not started", subtotal: "50", snap: builder.NewDiscountBuilder().With(func(d *builder.DiscountBuilder) { d.ValidFrom = fixedNow.AddDate(0, 0, 1) }), message: "Code expired"},
		{name: "usage exhausted", subtotal: "50", snap: builder.NewDiscountBuilder().WithUsage(3, 3), message: "Code usage limit reached"},
		{name: "below minimum", subtotal: "29.99", snap: builder.NewDiscountBuilder().WithMinPurchase("30"), message: "Minimum purchase of £30 required"},
	}

	for _, tc := range cases {
		s.Run(tc.name, func() {
			if tc.lookup != nil {
				s.reads.EXPECT().DiscountByCode(gomock.Any(), "WELCOME10").Return(nil, tc.lookup).Times(1)
			} else {
				s.reads.EXPECT().DiscountByCode(gomock.Any(), "WELCOME10").Return(tc.snap.BuildSnapshot(), nil).Times(1)
			}

			result, err := s.uc.Validate(context.Background(), "welcome10", dec(tc.subtotal))

			s.Require().NoError(err)
			s.False(result.Valid)
			s.True(result.Discount.IsZero())
			s.Equal(tc.message, result.Message)
		})
	}
}

func (s *DiscountCommandsTestSuite) TestValidate_BlankCode() {
	result, err := s.uc.Validate(context.Background(), "   ", dec("10"))

	s.Require().NoError(err)
	s.False(result.Valid)
	s.Equal("Code is required", result.Message)
}

func (s *DiscountCommandsTestSuite) TestValidate_LookupFailure() {
	s.reads.EXPECT().DiscountByCode(gomock.Any(), "WELCOME10").
		Return(nil, infra.WrapRepoErr("failed to get discount code", errors.New("connection refused"))).Times(1)

	result, err := s.uc.Validate(context.Background(), "WELCOME10", dec("10"))

	s.Nil(result)
	s.Require().Error(err)
	s.True(infra.IsKind(err, infra.KindDBFailure))
}
