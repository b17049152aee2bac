package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/SscSPs/product_pricing_app/internal/apperrors"
	portssvc "github.com/SscSPs/product_pricing_app/internal/core/ports/services"
	"github.com/SscSPs/product_pricing_app/internal/dto"
	"github.com/gin-gonic/gin"
)

// AuthMiddleware creates a Gin middleware handler that requires a valid,
// unrevoked bearer token.
func AuthMiddleware(tokenSvc portssvc.TokenSvcFacade) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			logger.Debug("Authorization header missing")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.MessageResponse{Message: "Unauthenticated."})
			return
		}

		scheme, tokenString, found := strings.Cut(authHeader, " ")
		if !found || !strings.EqualFold(scheme, "bearer") || strings.TrimSpace(tokenString) == "" {
			logger.Debug("Authorization header format invalid")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.MessageResponse{Message: "Unauthenticated."})
			return
		}

		token, err := tokenSvc.ValidateAccessToken(c.Request.Context(), strings.TrimSpace(tokenString))
		if err != nil {
			if errors.Is(err, apperrors.ErrUnauthorized) {
				logger.Warn("Invalid access token", slog.String("error", err.Error()))
				c.AbortWithStatusJSON(http.StatusUnauthorized, dto.MessageResponse{Message: "Unauthenticated."})
				return
			}
			logger.Error("Failed to validate access token", slog.String("error", err.Error()))
			c.AbortWithStatusJSON(http.StatusInternalServerError, dto.MessageResponse{Message: "Internal server error"})
			return
		}

		enrichedLogger := logger.With(slog.Int64("user_id", token.UserID))
		ctx := context.WithValue(c.Request.Context(), accessTokenKey, token)
		c.Request = c.Request.WithContext(WithLogger(ctx, enrichedLogger))

		c.Next()
	}
}
