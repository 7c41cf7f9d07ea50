//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"gin-storefront/internal/domain/user"
	"gin-storefront/internal/handler/api"
	resdto "gin-storefront/internal/handler/dto/response"
	"gin-storefront/internal/pkg/errs"
	"gin-storefront/internal/usecase/commands"
	"gin-storefront/tests/common/builder"
	"gin-storefront/tests/common/httptest"
	"gin-storefront/tests/common/testutil"
	commandsmock "gin-storefront/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CheckoutHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockCheckoutCommands
	handler      *api.CheckoutHandler
	userID       uuid.UUID
}

func (s *CheckoutHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockCheckoutCommands(s.mockCtrl)
	s.handler = api.NewCheckoutHandler(s.mockCommands)
	s.userID = uuid.New()

	s.router.POST("/checkout/create", fakeAuth(s.userID, user.RoleCustomer), s.handler.Create)
}

func (s *CheckoutHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCheckoutHandlerSuite(t *testing.T) {
	suite.Run(t, new(CheckoutHandlerTestSuite))
}

func (s *CheckoutHandlerTestSuite) TestCreate() {
	url := "/checkout/create"
	reqBody := builder.NewCheckoutBuilder().WithDiscountCode(" WELCOME10 ").BuildDTO()

	s.Run("success: returns the provider url", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), s.userID).
			DoAndReturn(func(_ any, req commands.CreateCheckoutRequest, _ uuid.UUID) (*commands.CheckoutResult, error) {
				s.Equal("WELCOME10", req.DiscountCode)
				s.Require().Len(req.Items, 1)
				s.True(decimal.RequireFromString("30").Equal(req.Items[0].Price))
				s.Equal(2, req.Items[0].Quantity)
				s.Equal("London", req.ShippingAddress.City)
				return &commands.CheckoutResult{URL: "https://pay.example.com/s/1"}, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var body resdto.CheckoutResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("https://pay.example.com/s/1", body.URL)
	})

	s.Run("success: client discount and unknown item fields are ignored", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), s.userID).
			Return(&commands.CheckoutResult{URL: "https://pay.example.com/s/2"}, nil).Times(1)

		m := testutil.DtoMap(s.T(), reqBody,
			testutil.Field("discount", 999),
			testutil.ItemField(0, "shopifyId", "gid://shopify/Product/1"))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, m, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("success: optional address fields may be omitted", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), s.userID).
			DoAndReturn(func(_ any, req commands.CreateCheckoutRequest, _ uuid.UUID) (*commands.CheckoutResult, error) {
				s.Empty(req.ShippingAddress.Country)
				s.Empty(req.ShippingAddress.Phone)
				return &commands.CheckoutResult{URL: "https://pay.example.com/s/4"}, nil
			}).Times(1)

		m := testutil.DtoMap(s.T(), reqBody,
			testutil.AddressField("country", nil),
			testutil.AddressField("phone", nil))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, m, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 when a cart line quantity is not a number", func() {
		m := testutil.DtoMap(s.T(), reqBody, testutil.ItemField(0, "quantity", "two"))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, m, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("error: 401 without credentials", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: 400 on malformed body", func() {
		m := testutil.DtoMap(s.T(), reqBody, testutil.Field("items", "not-a-list"))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, m, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	rejections := []struct {
		name string
		err  error
		msg  string
	}{
		{name: "empty cart", err: &commands.RejectionError{Kind: commands.ErrCartEmpty, Message: "Cart is empty"}, msg: "Cart is empty"},
		{name: "discount rejected", err: &commands.RejectionError{Kind: commands.ErrDiscountRejected, Message: "Code expired"}, msg: "Code expired"},
		{name: "no eligible lines", err: commands.NewNoEligibleLinesRejection(), msg: "No valid Shopify products in cart"},
		{name: "provider rejection", err: errs.Wrap(commands.NewCheckoutRejection("Variant sold out"), "create session"), msg: "Variant sold out"},
	}
	for _, tc := range rejections {
		s.Run("error: 400 on "+tc.name, func() {
			s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
				Return(nil, tc.err).Times(1)

			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, tc.msg)
		})
	}

	s.Run("error: 404 when the customer no longer exists", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrUserNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "User not found")
	})

	s.Run("error: 500 when the provider is unavailable", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(errors.New("timeout"), commands.ErrCheckoutUnavailable)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Failed to create checkout session")
	})

	s.Run("success: forwards the idempotency key and flags replays", func() {
		key := uuid.New()
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), s.userID).
			DoAndReturn(func(_ any, req commands.CreateCheckoutRequest, _ uuid.UUID) (*commands.CheckoutResult, error) {
				s.Equal(key, req.IdempotencyKey)
				return &commands.CheckoutResult{URL: "https://pay.example.com/s/1", Replayed: true}, nil
			}).Times(1)

		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, reqBody,
			map[string]string{"Idempotency-Key": key.String()}, "bearer-token")

		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Idempotent-Replayed": "true"})
	})

	s.Run("success: first attempt is not flagged as replayed", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), s.userID).
			DoAndReturn(func(_ any, req commands.CreateCheckoutRequest, _ uuid.UUID) (*commands.CheckoutResult, error) {
				s.Equal(uuid.Nil, req.IdempotencyKey)
				return &commands.CheckoutResult{URL: "https://pay.example.com/s/3"}, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
		httptest.AssertHeaderAbsent(s.T(), rec, "Idempotent-Replayed")
	})

	s.Run("error: 400 on malformed idempotency key", func() {
		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, reqBody,
			map[string]string{"Idempotency-Key": "not-a-uuid"}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid Idempotency-Key header")
	})

	conflicts := []struct {
		name string
		err  error
		msg  string
	}{
		{name: "key reused with another cart", err: commands.ErrIdempotencyKeyReused, msg: "Idempotency-Key was already used for a different cart"},
		{name: "first attempt still running", err: commands.ErrIdempotencyInProgress, msg: "Checkout is already being processed"},
	}
	for _, tc := range conflicts {
		s.Run("error: 409 when "+tc.name, func() {
			s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
				Return(nil, errs.Wrap(tc.err, "claim idempotency key")).Times(1)

			rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, reqBody,
				map[string]string{"Idempotency-Key": uuid.NewString()}, "bearer-token")
			httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, tc.msg)
		})
	}
}
