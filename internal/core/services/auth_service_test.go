package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/leadup-vn/leadup_backend/internal/apperrors"
	"github.com/leadup-vn/leadup_backend/internal/core/domain"
	portssvc "github.com/leadup-vn/leadup_backend/internal/core/ports/services"
	"github.com/leadup-vn/leadup_backend/internal/core/services"
	"github.com/leadup-vn/leadup_backend/internal/dto"
	"github.com/leadup-vn/leadup_backend/internal/platform/config"
	"github.com/leadup-vn/leadup_backend/internal/utils"
)

// --- Mock UserService ---
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) RegisterUser(ctx context.Context, req dto.RegisterUserRequest) (*domain.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest, requestingUserID string) (*domain.User, error) {
	args := m.Called(ctx, userID, req, requestingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) UpdateRefreshToken(ctx context.Context, userID string, refreshTokenHash string, refreshTokenExpiryTime time.Time) error {
	args := m.Called(ctx, userID, refreshTokenHash, refreshTokenExpiryTime)
	return args.Error(0)
}

func (m *MockUserService) ClearRefreshToken(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockUserService) DeleteUser(ctx context.Context, userID string, requestingUserID string) error {
	args := m.Called(ctx, userID, requestingUserID)
	return args.Error(0)
}

func (m *MockUserService) AuthenticateUser(ctx context.Context, email, password string) (*domain.User, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) FindOrCreateOAuthUser(ctx context.Context, provider domain.AuthProviderType, providerUserID, email, name string) (*domain.User, error) {
	args := m.Called(ctx, provider, providerUserID, email, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// --- Test Suite ---
type TokenServiceTestSuite struct {
	suite.Suite
	cfg      *config.Config
	mockUser *MockUserService
	service  portssvc.TokenSvcFacade
}

func (suite *TokenServiceTestSuite) SetupTest() {
	suite.cfg = &config.Config{
		JWTSecret:                  "test-secret",
		JWTExpiryDuration:          15 * time.Minute,
		JWTIssuer:                  "leadup-test",
		RefreshTokenExpiryDuration: 7 * 24 * time.Hour,
	}
	suite.mockUser = new(MockUserService)
	suite.service = services.NewTokenService(suite.cfg, suite.mockUser)
}

// --- Test Cases ---

func (suite *TokenServiceTestSuite) TestGenerateAccessToken_RoundTrips() {
	ctx := context.Background()
	user := &domain.User{UserID: uuid.NewString()}

	token, expiresAt, err := suite.service.GenerateAccessToken(ctx, user)

	suite.Require().NoError(err)
	assert.NotEmpty(suite.T(), token)
	assert.WithinDuration(suite.T(), time.Now().Add(suite.cfg.JWTExpiryDuration), expiresAt, 5*time.Second)

	claims, err := utils.ParseAndValidateJWT(token, suite.cfg.JWTSecret)
	suite.Require().NoError(err)
	assert.Equal(suite.T(), user.UserID, claims.Subject)
}

func (suite *TokenServiceTestSuite) TestGenerateRefreshToken_OpaqueAndUnique() {
	ctx := context.Background()
	user := &domain.User{UserID: uuid.NewString()}

	first, expiry, err := suite.service.GenerateRefreshToken(ctx, user)
	suite.Require().NoError(err)
	second, _, err := suite.service.GenerateRefreshToken(ctx, user)
	suite.Require().NoError(err)

	assert.Len(suite.T(), first, 64)
	assert.NotEqual(suite.T(), first, second)
	assert.WithinDuration(suite.T(), time.Now().Add(suite.cfg.RefreshTokenExpiryDuration), expiry, 5*time.Second)
}

func (suite *TokenServiceTestSuite) TestValidateRefreshToken_Success() {
	ctx := context.Background()
	raw := "a-raw-refresh-token"
	expiry := time.Now().Add(time.Hour)
	user := &domain.User{
		UserID:                 uuid.NewString(),
		RefreshTokenHash:       utils.HashRefreshToken(raw),
		RefreshTokenExpiryTime: &expiry,
	}

	suite.mockUser.On("GetUserByID", ctx, user.UserID).Return(user, nil).Once()

	got, err := suite.service.ValidateAndParseRefreshToken(ctx, user.UserID, raw)

	suite.Require().NoError(err)
	assert.Equal(suite.T(), user.UserID, got.UserID)
}

func (suite *TokenServiceTestSuite) TestValidateRefreshToken_Expired() {
	ctx := context.Background()
	raw := "a-raw-refresh-token"
	expiry := time.Now().Add(-time.Minute)
	user := &domain.User{
		UserID:                 uuid.NewString(),
		RefreshTokenHash:       utils.HashRefreshToken(raw),
		RefreshTokenExpiryTime: &expiry,
	}

	suite.mockUser.On("GetUserByID", ctx, user.UserID).Return(user, nil).Once()

	got, err := suite.service.ValidateAndParseRefreshToken(ctx, user.UserID, raw)

	suite.Require().Error(err)
	assert.Nil(suite.T(), got)
	assert.ErrorIs(suite.T(), err, apperrors.ErrRefreshTokenExpired)
}

func (suite *TokenServiceTestSuite) TestValidateRefreshToken_HashMismatch() {
	ctx := context.Background()
	expiry := time.Now().Add(time.Hour)
	user := &domain.User{
		UserID:                 uuid.NewString(),
		RefreshTokenHash:       utils.HashRefreshToken("the-real-token"),
		RefreshTokenExpiryTime: &expiry,
	}

	suite.mockUser.On("GetUserByID", ctx, user.UserID).Return(user, nil).Once()

	got, err := suite.service.ValidateAndParseRefreshToken(ctx, user.UserID, "a-stolen-guess")

	suite.Require().Error(err)
	assert.Nil(suite.T(), got)
	assert.ErrorIs(suite.T(), err, apperrors.ErrUnauthorized)
}

func (suite *TokenServiceTestSuite) TestValidateRefreshToken_NoStoredToken() {
	ctx := context.Background()
	user := &domain.User{UserID: uuid.NewString()}

	suite.mockUser.On("GetUserByID", ctx, user.UserID).Return(user, nil).Once()

	got, err := suite.service.ValidateAndParseRefreshToken(ctx, user.UserID, "anything")

	suite.Require().Error(err)
	assert.Nil(suite.T(), got)
	assert.ErrorIs(suite.T(), err, apperrors.ErrUnauthorized)
}

func (suite *TokenServiceTestSuite) TestValidateRefreshToken_UnknownUser() {
	ctx := context.Background()
	userID := uuid.NewString()

	suite.mockUser.On("GetUserByID", ctx, userID).Return(nil, apperrors.ErrNotFound).Once()

	got, err := suite.service.ValidateAndParseRefreshToken(ctx, userID, "anything")

	suite.Require().Error(err)
	assert.Nil(suite.T(), got)
	assert.ErrorIs(suite.T(), err, apperrors.ErrUnauthorized)
}

func TestTokenServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TokenServiceTestSuite))
}
