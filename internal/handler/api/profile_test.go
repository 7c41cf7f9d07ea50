//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"gin-storefront/internal/domain/user"
	"gin-storefront/internal/handler/api"
	resdto "gin-storefront/internal/handler/dto/response"
	"gin-storefront/internal/usecase/commands"
	"gin-storefront/internal/usecase/queries"
	"gin-storefront/tests/common/builder"
	"gin-storefront/tests/common/httptest"
	commandsmock "gin-storefront/tests/mock/commands"
	queriesmock "gin-storefront/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ProfileHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockProfileCommands
	mockQueries  *queriesmock.MockUserQueries
	handler      *api.ProfileHandler
	userID       uuid.UUID
}

func (s *ProfileHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockProfileCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockUserQueries(s.mockCtrl)
	s.handler = api.NewProfileHandler(s.mockCommands, s.mockQueries)
	s.userID = uuid.New()

	auth := fakeAuth(s.userID, user.RoleCustomer)
	s.router.GET("/account/profile", auth, s.handler.Get)
	s.router.PUT("/account/profile", auth, s.handler.Update)
}

func (s *ProfileHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestProfileHandlerSuite(t *testing.T) {
	suite.Run(t, new(ProfileHandlerTestSuite))
}

func (s *ProfileHandlerTestSuite) TestGet() {
	url := "/account/profile"

	s.Run("success: returns profile with address", func() {
		view := builder.NewUserBuilder().With(func(b *builder.UserBuilder) {
			b.Profile.Nickname = "JJ"
			b.Profile.FavoriteStyles = "minimal"
		}).BuildProfileView()
		view.Address = user.Address{AddressLine1: "1 High Street", City: "London", ZipCode: "N1 1AA", Country: "UK"}

		s.mockQueries.EXPECT().GetProfile(gomock.Any(), s.userID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var body resdto.ProfileResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("Jane Shopper", body.Name)
		s.Equal("JJ", body.Nickname)
		s.Equal("minimal", body.FavoriteStyles)
		s.Equal(view.Email, body.Email)
		s.Equal("1 High Street", body.Address.AddressLine1)
		s.Equal("UK", body.Address.Country)
	})

	s.Run("success: missing address is rendered with empty fields", func() {
		view := builder.NewUserBuilder().BuildProfileView()
		view.Address = user.EmptyAddress()

		s.mockQueries.EXPECT().GetProfile(gomock.Any(), s.userID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(map[string]any{
			"addressLine1": "", "addressLine2": "", "city": "", "state": "", "zipCode": "", "country": "UK",
		}, body["address"])
	})

	s.Run("error: 401 without credentials", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: 404 when user is gone", func() {
		s.mockQueries.EXPECT().GetProfile(gomock.Any(), s.userID).Return(nil, queries.ErrUserNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "User not found")
	})

	s.Run("error: 500 on read failure", func() {
		s.mockQueries.EXPECT().GetProfile(gomock.Any(), s.userID).Return(nil, errors.New("db down")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Failed to fetch profile")
	})
}

func (s *ProfileHandlerTestSuite) TestUpdate() {
	url := "/account/profile"
	reqBody := map[string]any{
		"name":     "Jane Shopper",
		"nickname": "JJ",
		"phone":    "07700900000",
		"address": map[string]any{
			"addressLine1": "1 High Street",
			"city":         "London",
			"zipCode":      "N1 1AA",
		},
	}

	s.Run("success: forwards profile and address", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), s.userID, gomock.Any()).
			DoAndReturn(func(_ any, _ uuid.UUID, req commands.UpdateProfileRequest) error {
				s.Equal("JJ", req.Profile.Nickname)
				s.Require().NotNil(req.Address)
				s.Equal("London", req.Address.City)
				return nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "bearer-token")

		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`{"message":"Profile updated successfully"}`, rec.Body.String())
	})

	s.Run("success: address is optional", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), s.userID, gomock.Any()).
			DoAndReturn(func(_ any, _ uuid.UUID, req commands.UpdateProfileRequest) error {
				s.Nil(req.Address)
				return nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"name": "Jane"}, "bearer-token")
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("error: 400 on malformed body", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"name": 42}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("error: 400 carries the rejection message", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), s.userID, gomock.Any()).
			Return(&commands.RejectionError{Kind: commands.ErrInvalidProfile, Message: "Profile fields must be at most 500 characters"}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "at most 500 characters")
	})

	s.Run("error: 404 when user is gone", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), s.userID, gomock.Any()).
			Return(commands.ErrUserNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "User not found")
	})

	s.Run("error: 500 on write failure", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), s.userID, gomock.Any()).
			Return(errors.New("db down")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Failed to update profile")
	})
}
