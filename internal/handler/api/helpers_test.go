//go:build unit

package api_test

import (
	"net/http"

	"gin-storefront/internal/domain/user"
	"gin-storefront/internal/handler/middleware"
	"gin-storefront/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// fakeAuth stands in for RequireAuth: any Authorization header authenticates as userID.
func fakeAuth(userID uuid.UUID, role user.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		middleware.SetPrincipal(c, usecase.Principal{UserID: userID, Role: role})
		c.Next()
	}
}
