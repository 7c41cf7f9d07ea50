//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"gin-storefront/internal/handler/api"
	resdto "gin-storefront/internal/handler/dto/response"
	"gin-storefront/internal/usecase/commands"
	"gin-storefront/tests/common/httptest"
	commandsmock "gin-storefront/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type DiscountHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockDiscountCommands
	handler      *api.DiscountHandler
}

func (s *DiscountHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockDiscountCommands(s.mockCtrl)
	s.handler = api.NewDiscountHandler(s.mockCommands)

	s.router.POST("/discount/validate", s.handler.Validate)
}

func (s *DiscountHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestDiscountHandlerSuite(t *testing.T) {
	suite.Run(t, new(DiscountHandlerTestSuite))
}

func (s *DiscountHandlerTestSuite) TestValidate() {
	url := "/discount/validate"

	s.Run("success: valid code returns the amount", func() {
		s.mockCommands.EXPECT().Validate(gomock.Any(), "welcome10", decimal.RequireFromString("10")).
			Return(&commands.DiscountValidation{Valid: true, Discount: decimal.RequireFromString("1.00")}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"code": "welcome10", "subtotal": 10}, "")

		var body resdto.ValidateDiscountResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.True(body.Valid)
		s.Require().NotNil(body.Discount)
		s.Equal(1.0, *body.Discount)
		s.Empty(body.Error)
	})

	s.Run("success: rejection is reported with 200 and a message", func() {
		s.mockCommands.EXPECT().Validate(gomock.Any(), "OLD", gomock.Any()).
			Return(&commands.DiscountValidation{Valid: false, Message: "Code expired"}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"code": "OLD", "subtotal": 80}, "")

		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`{"valid":false,"error":"Code expired"}`, rec.Body.String())
	})

	s.Run("success: blank code is passed through for the validator to reject", func() {
		s.mockCommands.EXPECT().Validate(gomock.Any(), "", gomock.Any()).
			Return(&commands.DiscountValidation{Valid: false, Message: "Code is required"}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"subtotal": 10}, "")

		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`{"valid":false,"error":"Code is required"}`, rec.Body.String())
	})

	s.Run("error: 400 on malformed body", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"code": "X", "subtotal": "not-a-number"}, "")

		s.Equal(http.StatusBadRequest, rec.Code)
		s.JSONEq(`{"valid":false,"error":"Invalid request format"}`, rec.Body.String())
	})

	s.Run("error: 500 on lookup failure", func() {
		s.mockCommands.EXPECT().Validate(gomock.Any(), "WELCOME10", gomock.Any()).
			Return(nil, errors.New("db down")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"code": "WELCOME10", "subtotal": 10}, "")

		s.Equal(http.StatusInternalServerError, rec.Code)
		s.JSONEq(`{"valid":false,"error":"Failed to validate code"}`, rec.Body.String())
	})
}
