//go:build unit || e2e

package authtest

import (
	"net/http"
	"testing"

	"gin-storefront/tests/common/builder"
	"gin-storefront/tests/common/dbtest"
	"gin-storefront/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

const (
	loginURL        = "/api/auth/login"
	logoutURL       = "/api/auth/logout"
	accessTokenName = "access_token"
)

// LoginUser logs in through the API and returns the access_token cookie value.
func LoginUser(t *testing.T, router *gin.Engine, email, password string) string {
	t.Helper()

	body := builder.NewAuthBuilder().With(func(a *builder.AuthBuilder) {
		a.Email = email
		a.Password = password
	}).BuildDTO()
	w := httptest.PerformRequest(t, router, http.MethodPost, loginURL, body, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	accessCookie := httptest.ExtractCookie(w, accessTokenName)
	require.NotNil(t, accessCookie, "access_token cookie not set")
	require.NotEmpty(t, accessCookie.Value, "access_token cookie is empty")

	return accessCookie.Value
}

// CreateAndLogin inserts a fixture user with the given role and returns its token.
func CreateAndLogin(t *testing.T, db dbtest.DBLike, router *gin.Engine, email, role string) string {
	t.Helper()
	dbtest.CreateTestUser(t, db, email, role)
	return LoginUser(t, router, email, builder.FixturePassword)
}

// LogoutUser posts to logout with the token as cookie and returns the clearing cookie from the response.
func LogoutUser(t *testing.T, router *gin.Engine, token string) *http.Cookie {
	t.Helper()

	w := httptest.PerformRequestWithCookies(t, router, http.MethodPost, logoutURL, nil,
		[]*http.Cookie{{Name: accessTokenName, Value: token}}, "")
	require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

	cleared := httptest.ExtractCookie(w, accessTokenName)
	require.NotNil(t, cleared, "logout did not clear access_token")
	return cleared
}
