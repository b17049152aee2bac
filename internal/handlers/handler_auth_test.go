package handlers_test

import (
	"encoding/json"
	"net/http"

	"github.com/SscSPs/product_pricing_app/internal/apperrors"
	"github.com/SscSPs/product_pricing_app/internal/core/domain"
	portssvc "github.com/SscSPs/product_pricing_app/internal/core/ports/services"
	"github.com/SscSPs/product_pricing_app/internal/dto"
	"github.com/stretchr/testify/mock"
)

func alice() *domain.User {
	return &domain.User{UserID: 42, Name: "Alice", Email: "alice@example.com"}
}

// --- Auth Test Cases ---

func (suite *HandlerTestSuite) TestRegister_ReturnsUsableToken() {
	suite.mockUserService.On("RegisterUser", mock.Anything, dto.RegisterRequest{
		Name: "Alice", Email: "alice@example.com", Password: "secret123",
	}).Return(alice(), nil).Once()
	suite.mockUserService.On("GetUserByID", mock.Anything, int64(42)).Return(alice(), nil).Once()

	w := suite.do(http.MethodPost, "/register", `{"name":"Alice","email":"alice@example.com","password":"secret123"}`, "")

	suite.Require().Equal(http.StatusCreated, w.Code)
	var resp dto.AuthResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("Bearer", resp.TokenType)
	suite.Equal(int64(42), resp.User.ID)
	suite.NotEmpty(resp.AccessToken)
	suite.NotContains(w.Body.String(), "password")

	me := suite.do(http.MethodGet, "/user", "", resp.AccessToken)
	suite.Equal(http.StatusOK, me.Code)
	var user dto.UserResponse
	suite.Require().NoError(json.Unmarshal(me.Body.Bytes(), &user))
	suite.Equal("alice@example.com", user.Email)
}

func (suite *HandlerTestSuite) TestRegister_ValidationErrors() {
	suite.Run("bad email and short password", func() {
		w := suite.do(http.MethodPost, "/register", `{"name":"Alice","email":"not-an-email","password":"short"}`, "")

		suite.Equal(http.StatusUnprocessableEntity, w.Code)
		env := suite.decode(w)
		suite.Equal("The email field must be a valid email address.", env.Errors["email"])
		suite.Equal("The password field must be at least 8 characters.", env.Errors["password"])
	})

	suite.Run("email taken", func() {
		suite.mockUserService.On("RegisterUser", mock.Anything, mock.Anything).
			Return(nil, apperrors.NewFieldDuplicateError("email", "The email has already been taken.")).Once()

		w := suite.do(http.MethodPost, "/register", `{"name":"Alice","email":"alice@example.com","password":"secret123"}`, "")

		suite.Equal(http.StatusUnprocessableEntity, w.Code)
		suite.Equal("The email has already been taken.", suite.decode(w).Errors["email"])
	})
}

func (suite *HandlerTestSuite) TestLogin() {
	suite.Run("success", func() {
		suite.mockUserService.On("AuthenticateUser", mock.Anything, "alice@example.com", "secret123").Return(alice(), nil).Once()

		w := suite.do(http.MethodPost, "/login", `{"email":"alice@example.com","password":"secret123"}`, "")

		suite.Equal(http.StatusOK, w.Code)
		var resp dto.AuthResponse
		suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
		suite.Equal(dto.TokenTypeBearer, resp.TokenType)
		suite.NotEmpty(w.Header().Get("X-RateLimit-Limit"))
	})

	suite.Run("invalid credentials", func() {
		suite.mockUserService.On("AuthenticateUser", mock.Anything, "alice@example.com", "wrong-pass").
			Return(nil, apperrors.ErrUnauthorized).Once()

		w := suite.do(http.MethodPost, "/login", `{"email":"alice@example.com","password":"wrong-pass"}`, "")

		suite.Equal(http.StatusUnauthorized, w.Code)
		suite.JSONEq(`{"message":"Invalid credentials"}`, w.Body.String())
	})
}

func (suite *HandlerTestSuite) TestLogin_RateLimited() {
	cfg := testConfig()
	cfg.LoginRateLimit = "2-M"
	users := new(MockUserService)
	users.On("AuthenticateUser", mock.Anything, mock.Anything, mock.Anything).Return(nil, apperrors.ErrUnauthorized).Twice()
	suite.router = newTestRouter(cfg, &portssvc.ServiceContainer{User: users, Token: suite.tokenService})

	body := `{"email":"alice@example.com","password":"wrong-pass"}`
	for i := 0; i < 2; i++ {
		suite.Equal(http.StatusUnauthorized, suite.do(http.MethodPost, "/login", body, "").Code)
	}
	w := suite.do(http.MethodPost, "/login", body, "")

	suite.Equal(http.StatusTooManyRequests, w.Code)
	users.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestLogout_RevokesToken() {
	token := suite.generateTestToken(42)

	w := suite.do(http.MethodPost, "/logout", "", token)
	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`{"message":"Successfully logged out"}`, w.Body.String())

	again := suite.do(http.MethodGet, "/currencies", "", token)
	suite.Equal(http.StatusUnauthorized, again.Code)
}

func (suite *HandlerTestSuite) TestHealth() {
	w := suite.do(http.MethodGet, "/health", "", "")
	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("OK", w.Body.String())
}
