package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/product_pricing_app/internal/apperrors"
	"github.com/SscSPs/product_pricing_app/internal/core/domain"
	portssvc "github.com/SscSPs/product_pricing_app/internal/core/ports/services"
	"github.com/SscSPs/product_pricing_app/internal/dto"
	"github.com/SscSPs/product_pricing_app/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
)

// AuthHandler handles registration, login and logout.
type AuthHandler struct {
	userService  portssvc.UserSvcFacade
	tokenService portssvc.TokenSvcFacade
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(us portssvc.UserSvcFacade, ts portssvc.TokenSvcFacade) *AuthHandler {
	return &AuthHandler{
		userService:  us,
		tokenService: ts,
	}
}

// registerAuthRoutes sets up the public authentication routes. Login is rate
// limited per client IP.
func registerAuthRoutes(r *gin.Engine, services *portssvc.ServiceContainer, loginLimiter *limiter.Limiter) {
	h := NewAuthHandler(services.User, services.Token)

	r.POST("/register", h.Register)
	r.POST("/login", middleware.RateLimit(loginLimiter), h.Login)
}

// Register godoc
// @Summary Register new user
// @Description Creates an account and returns an access token for it.
// @Tags auth
// @Accept json
// @Produce json
// @Param register body dto.RegisterRequest true "User Registration Info"
// @Success 201 {object} dto.AuthResponse
// @Failure 400 {object} dto.Response "Malformed body"
// @Failure 422 {object} dto.ValidationErrorResponse
// @Failure 500 {object} dto.Response
// @Router /register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.RegisterRequest
	if !bindJSON(c, &req) {
		return
	}

	user, err := h.userService.RegisterUser(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to register user")
		return
	}

	resp, err := h.issueToken(c, user)
	if err != nil {
		logger.Error("Failed to issue token for new user", slog.Int64("user_id", user.UserID), slog.String("error", err.Error()))
		respondFailure(c, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	logger.Info("User registered", slog.Int64("user_id", user.UserID))
	c.JSON(http.StatusCreated, resp)
}

// Login godoc
// @Summary User login
// @Description Authenticates a user and returns a JWT access token.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login Credentials"
// @Success 200 {object} dto.AuthResponse
// @Failure 401 {object} dto.MessageResponse
// @Failure 422 {object} dto.ValidationErrorResponse
// @Failure 429 {object} dto.MessageResponse
// @Failure 500 {object} dto.MessageResponse
// @Router /login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	user, err := h.userService.AuthenticateUser(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, apperrors.ErrUnauthorized) {
			logger.Warn("Login failed", slog.String("reason", "invalid credentials"))
			c.JSON(http.StatusUnauthorized, dto.MessageResponse{Message: "Invalid credentials"})
			return
		}
		logger.Error("Failed to authenticate user", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.MessageResponse{Message: "Internal server error"})
		return
	}

	resp, err := h.issueToken(c, user)
	if err != nil {
		logger.Error("Failed to sign JWT token", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.MessageResponse{Message: "Failed to generate token"})
		return
	}

	logger.Info("User logged in", slog.Int64("user_id", user.UserID))
	c.JSON(http.StatusOK, resp)
}

// Logout godoc
// @Summary User logout
// @Description Revokes the access token used for this request.
// @Tags auth
// @Produce json
// @Success 200 {object} dto.MessageResponse
// @Failure 401 {object} dto.MessageResponse
// @Failure 500 {object} dto.MessageResponse
// @Security BearerAuth
// @Router /logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	token, ok := middleware.GetAccessTokenFromContext(c)
	if !ok {
		logger.Error("Access token not found in context")
		c.JSON(http.StatusUnauthorized, dto.MessageResponse{Message: "Unauthenticated."})
		return
	}

	if err := h.tokenService.RevokeAccessToken(c.Request.Context(), token); err != nil {
		logger.Error("Failed to revoke access token", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.MessageResponse{Message: "Internal server error"})
		return
	}

	logger.Info("User logged out")
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Successfully logged out"})
}

func (h *AuthHandler) issueToken(c *gin.Context, user *domain.User) (dto.AuthResponse, error) {
	token, _, err := h.tokenService.GenerateAccessToken(c.Request.Context(), user)
	if err != nil {
		return dto.AuthResponse{}, err
	}
	return dto.AuthResponse{
		User:        dto.ToUserResponse(user),
		AccessToken: token,
		TokenType:   dto.TokenTypeBearer,
	}, nil
}
