package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SscSPs/product_pricing_app/internal/apperrors"
	"github.com/SscSPs/product_pricing_app/internal/core/domain"
	portssvc "github.com/SscSPs/product_pricing_app/internal/core/ports/services"
	"github.com/SscSPs/product_pricing_app/internal/core/services"
	"github.com/SscSPs/product_pricing_app/internal/platform/config"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type TokenServiceTestSuite struct {
	suite.Suite
	store   *MockTokenRevocationStore
	service portssvc.TokenSvcFacade
	user    *domain.User
}

func (suite *TokenServiceTestSuite) SetupTest() {
	suite.store = new(MockTokenRevocationStore)
	cfg := &config.Config{
		JWTSecret:         "test-secret",
		JWTExpiryDuration: time.Hour,
		JWTIssuer:         "test-issuer",
	}
	suite.service = services.NewTokenService(cfg, suite.store)
	suite.user = &domain.User{UserID: 9, Email: "ada@example.com"}
}

func (suite *TokenServiceTestSuite) TestGenerateAndValidate() {
	ctx := context.Background()
	token, expiresAt, err := suite.service.GenerateAccessToken(ctx, suite.user)
	suite.Require().NoError(err)
	suite.WithinDuration(time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	suite.store.On("IsTokenRevoked", ctx, mock.AnythingOfType("string")).Return(false, nil).Once()

	access, err := suite.service.ValidateAccessToken(ctx, token)

	suite.Require().NoError(err)
	suite.Equal(int64(9), access.UserID)
	suite.NotEmpty(access.TokenID)
}

func (suite *TokenServiceTestSuite) TestValidate_Revoked() {
	ctx := context.Background()
	token, _, err := suite.service.GenerateAccessToken(ctx, suite.user)
	suite.Require().NoError(err)
	suite.store.On("IsTokenRevoked", ctx, mock.Anything).Return(true, nil).Once()

	access, err := suite.service.ValidateAccessToken(ctx, token)

	suite.Nil(access)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *TokenServiceTestSuite) TestValidate_Malformed() {
	access, err := suite.service.ValidateAccessToken(context.Background(), "abc.def.ghi")

	suite.Nil(access)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
	suite.store.AssertNotCalled(suite.T(), "IsTokenRevoked", mock.Anything, mock.Anything)
}

func (suite *TokenServiceTestSuite) TestValidate_StoreFailure() {
	ctx := context.Background()
	token, _, err := suite.service.GenerateAccessToken(ctx, suite.user)
	suite.Require().NoError(err)
	storeErr := errors.New("redis down")
	suite.store.On("IsTokenRevoked", ctx, mock.Anything).Return(false, storeErr).Once()

	_, err = suite.service.ValidateAccessToken(ctx, token)

	suite.ErrorIs(err, storeErr)
	suite.NotErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *TokenServiceTestSuite) TestRevokeAccessToken() {
	ctx := context.Background()
	expiresAt := time.Now().Add(time.Hour)
	access := &domain.AccessToken{TokenID: "jti-1", UserID: 9, ExpiresAt: expiresAt}
	suite.store.On("RevokeToken", ctx, "jti-1", expiresAt).Return(nil).Once()

	suite.NoError(suite.service.RevokeAccessToken(ctx, access))
	suite.store.AssertExpectations(suite.T())
}

func TestTokenServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TokenServiceTestSuite))
}
