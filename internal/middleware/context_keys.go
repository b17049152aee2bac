package middleware

import (
	"github.com/SscSPs/product_pricing_app/internal/core/domain"
	"github.com/gin-gonic/gin"
)

// accessTokenKey stores the validated *domain.AccessToken in the request context.
const accessTokenKey = contextKey("accessToken")

// GetAccessTokenFromContext retrieves the token validated by AuthMiddleware.
func GetAccessTokenFromContext(c *gin.Context) (*domain.AccessToken, bool) {
	token, ok := c.Request.Context().Value(accessTokenKey).(*domain.AccessToken)
	return token, ok && token != nil
}

// GetUserIDFromContext retrieves the authenticated user ID from the Gin context.
// It returns the user ID and a boolean indicating if it was found.
func GetUserIDFromContext(c *gin.Context) (int64, bool) {
	token, ok := GetAccessTokenFromContext(c)
	if !ok {
		return 0, false
	}
	return token.UserID, true
}
