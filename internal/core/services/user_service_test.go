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
	"github.com/leadup-vn/leadup_backend/internal/utils"
)

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByProviderDetails(ctx context.Context, authProvider domain.AuthProviderType, providerUserID string) (*domain.User, error) {
	args := m.Called(ctx, authProvider, providerUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUsers(ctx context.Context, limit, offset int) ([]domain.User, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateRefreshToken(ctx context.Context, userID string, refreshTokenHash string, refreshTokenExpiryTime time.Time) error {
	args := m.Called(ctx, userID, refreshTokenHash, refreshTokenExpiryTime)
	return args.Error(0)
}

func (m *MockUserRepository) ClearRefreshToken(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockUserRepository) MarkUserDeleted(ctx context.Context, userID string, deletedAt time.Time, deleterUserID string) error {
	args := m.Called(ctx, userID, deletedAt, deleterUserID)
	return args.Error(0)
}

// --- Mock CategoryService ---
type MockCategoryService struct {
	mock.Mock
}

func (m *MockCategoryService) SeedDefaultCategories(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockCategoryService) CreateCategory(ctx context.Context, userID string, req dto.CreateCategoryRequest) (*domain.Category, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

func (m *MockCategoryService) GetCategoryByID(ctx context.Context, userID, categoryID string) (*domain.Category, error) {
	args := m.Called(ctx, userID, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

func (m *MockCategoryService) ListCategories(ctx context.Context, userID string) ([]domain.Category, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Category), args.Error(1)
}

func (m *MockCategoryService) UpdateCategory(ctx context.Context, userID, categoryID string, req dto.UpdateCategoryRequest) (*domain.Category, error) {
	args := m.Called(ctx, userID, categoryID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

func (m *MockCategoryService) DeleteCategory(ctx context.Context, userID, categoryID string) error {
	args := m.Called(ctx, userID, categoryID)
	return args.Error(0)
}

// --- Mock GoldenRuleService ---
type MockGoldenRuleService struct {
	mock.Mock
}

func (m *MockGoldenRuleService) SeedDefaultGoldenRules(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockGoldenRuleService) ListGoldenRules(ctx context.Context, userID string) ([]domain.GoldenRule, int, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.GoldenRule), args.Int(1), args.Error(2)
}

func (m *MockGoldenRuleService) SetCompliance(ctx context.Context, userID, ruleID string, isCompliant bool) (*domain.GoldenRule, error) {
	args := m.Called(ctx, userID, ruleID, isCompliant)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GoldenRule), args.Error(1)
}

// --- Test Suite ---
type UserServiceTestSuite struct {
	suite.Suite
	mockUserRepo    *MockUserRepository
	mockCategorySvc *MockCategoryService
	mockRuleSvc     *MockGoldenRuleService
	service         portssvc.UserSvcFacade
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.mockUserRepo = new(MockUserRepository)
	suite.mockCategorySvc = new(MockCategoryService)
	suite.mockRuleSvc = new(MockGoldenRuleService)
	suite.service = services.NewUserService(suite.mockUserRepo, suite.mockCategorySvc, suite.mockRuleSvc)
}

// --- Test Cases ---

func (suite *UserServiceTestSuite) TestRegisterUser_SeedsDefaults() {
	ctx := context.Background()
	req := dto.RegisterUserRequest{
		Name:     "Lan Nguyen",
		Email:    "lan@example.com",
		Password: "correct-horse-battery",
	}

	suite.mockUserRepo.On("SaveUser", ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.Email == req.Email &&
			u.AuthProvider == domain.ProviderLocal &&
			u.PasswordHash != "" &&
			u.PasswordHash != req.Password &&
			u.CreatedBy == u.UserID
	})).Return(nil).Once()
	suite.mockCategorySvc.On("SeedDefaultCategories", ctx, mock.AnythingOfType("string")).Return(nil).Once()
	suite.mockRuleSvc.On("SeedDefaultGoldenRules", ctx, mock.AnythingOfType("string")).Return(nil).Once()

	user, err := suite.service.RegisterUser(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(user)
	assert.Equal(suite.T(), req.Name, user.Name)
	assert.NotEmpty(suite.T(), user.UserID)
	suite.mockUserRepo.AssertExpectations(suite.T())
	suite.mockCategorySvc.AssertExpectations(suite.T())
	suite.mockRuleSvc.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestRegisterUser_DuplicateEmail() {
	ctx := context.Background()

	suite.mockUserRepo.On("SaveUser", ctx, mock.Anything).Return(apperrors.ErrDuplicate).Once()

	user, err := suite.service.RegisterUser(ctx, dto.RegisterUserRequest{
		Name:     "Lan Nguyen",
		Email:    "lan@example.com",
		Password: "correct-horse-battery",
	})

	suite.Require().Error(err)
	assert.Nil(suite.T(), user)
	assert.ErrorIs(suite.T(), err, apperrors.ErrDuplicate)
	suite.mockCategorySvc.AssertNotCalled(suite.T(), "SeedDefaultCategories", mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestRegisterUser_SecondUserGetsOwnSeedRows() {
	ctx := context.Background()

	// Real seeding services over repo mocks: both registrations must land
	// the full default sets, each under its own user id, even though every
	// user's seed rows reuse the same stable category and rule ids.
	categoryRepo := new(MockCategoryRepository)
	ruleRepo := new(MockGoldenRuleRepository)
	svc := services.NewUserService(suite.mockUserRepo,
		services.NewCategoryService(categoryRepo),
		services.NewGoldenRuleService(ruleRepo))

	suite.mockUserRepo.On("SaveUser", ctx, mock.Anything).Return(nil).Twice()

	var categoryOwners, ruleOwners []string
	categoryRepo.On("SaveCategories", ctx, mock.AnythingOfType("[]domain.Category")).
		Run(func(args mock.Arguments) {
			batch := args.Get(1).([]domain.Category)
			suite.Len(batch, 9)
			categoryOwners = append(categoryOwners, batch[0].UserID)
		}).Return(nil).Twice()
	ruleRepo.On("SaveGoldenRules", ctx, mock.AnythingOfType("[]domain.GoldenRule")).
		Run(func(args mock.Arguments) {
			batch := args.Get(1).([]domain.GoldenRule)
			suite.Len(batch, 11)
			ruleOwners = append(ruleOwners, batch[0].UserID)
		}).Return(nil).Twice()

	first, err := svc.RegisterUser(ctx, dto.RegisterUserRequest{
		Name: "Lan Nguyen", Email: "lan@example.com", Password: "correct-horse-battery",
	})
	suite.Require().NoError(err)
	second, err := svc.RegisterUser(ctx, dto.RegisterUserRequest{
		Name: "Minh Tran", Email: "minh@example.com", Password: "correct-horse-battery",
	})
	suite.Require().NoError(err)

	suite.NotEqual(first.UserID, second.UserID)
	suite.Equal([]string{first.UserID, second.UserID}, categoryOwners)
	suite.Equal([]string{first.UserID, second.UserID}, ruleOwners)
	categoryRepo.AssertExpectations(suite.T())
	ruleRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_Success() {
	ctx := context.Background()
	password := "correct-horse-battery"
	hash, err := utils.HashPassword(password)
	suite.Require().NoError(err)

	stored := &domain.User{
		UserID:       uuid.NewString(),
		Email:        "lan@example.com",
		AuthProvider: domain.ProviderLocal,
		PasswordHash: hash,
	}
	suite.mockUserRepo.On("FindUserByEmail", ctx, stored.Email).Return(stored, nil).Once()

	user, err := suite.service.AuthenticateUser(ctx, stored.Email, password)

	suite.Require().NoError(err)
	assert.Equal(suite.T(), stored.UserID, user.UserID)
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_WrongPassword() {
	ctx := context.Background()
	hash, err := utils.HashPassword("the-real-password")
	suite.Require().NoError(err)

	stored := &domain.User{
		UserID:       uuid.NewString(),
		Email:        "lan@example.com",
		AuthProvider: domain.ProviderLocal,
		PasswordHash: hash,
	}
	suite.mockUserRepo.On("FindUserByEmail", ctx, stored.Email).Return(stored, nil).Once()

	user, err := suite.service.AuthenticateUser(ctx, stored.Email, "a-guess")

	suite.Require().Error(err)
	assert.Nil(suite.T(), user)
	assert.ErrorIs(suite.T(), err, apperrors.ErrUnauthorized)
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_UnknownEmailMapsToUnauthorized() {
	ctx := context.Background()

	suite.mockUserRepo.On("FindUserByEmail", ctx, "nobody@example.com").Return(nil, apperrors.ErrNotFound).Once()

	user, err := suite.service.AuthenticateUser(ctx, "nobody@example.com", "whatever")

	suite.Require().Error(err)
	assert.Nil(suite.T(), user)
	assert.ErrorIs(suite.T(), err, apperrors.ErrUnauthorized)
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_OAuthAccountHasNoLocalLogin() {
	ctx := context.Background()
	stored := &domain.User{
		UserID:       uuid.NewString(),
		Email:        "lan@example.com",
		AuthProvider: domain.ProviderGoogle,
	}
	suite.mockUserRepo.On("FindUserByEmail", ctx, stored.Email).Return(stored, nil).Once()

	user, err := suite.service.AuthenticateUser(ctx, stored.Email, "whatever")

	suite.Require().Error(err)
	assert.Nil(suite.T(), user)
	assert.ErrorIs(suite.T(), err, apperrors.ErrUnauthorized)
}

func (suite *UserServiceTestSuite) TestUpdateUser_ForbiddenForOtherUsers() {
	ctx := context.Background()
	name := "New Name"

	user, err := suite.service.UpdateUser(ctx, uuid.NewString(), dto.UpdateUserRequest{Name: &name}, uuid.NewString())

	suite.Require().Error(err)
	assert.Nil(suite.T(), user)
	assert.ErrorIs(suite.T(), err, apperrors.ErrForbidden)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "FindUserByID", mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestFindOrCreateOAuthUser_ExistingUser() {
	ctx := context.Background()
	stored := &domain.User{
		UserID:         uuid.NewString(),
		Email:          "lan@example.com",
		AuthProvider:   domain.ProviderGoogle,
		ProviderUserID: "google-sub-123",
	}

	suite.mockUserRepo.On("FindUserByProviderDetails", ctx, domain.ProviderGoogle, "google-sub-123").Return(stored, nil).Once()

	user, err := suite.service.FindOrCreateOAuthUser(ctx, domain.ProviderGoogle, "google-sub-123", stored.Email, "Lan Nguyen")

	suite.Require().NoError(err)
	assert.Equal(suite.T(), stored.UserID, user.UserID)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "SaveUser", mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestFindOrCreateOAuthUser_CreatesAndSeeds() {
	ctx := context.Background()

	suite.mockUserRepo.On("FindUserByProviderDetails", ctx, domain.ProviderGoogle, "google-sub-456").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockUserRepo.On("SaveUser", ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.AuthProvider == domain.ProviderGoogle &&
			u.ProviderUserID == "google-sub-456" &&
			u.PasswordHash == ""
	})).Return(nil).Once()
	suite.mockCategorySvc.On("SeedDefaultCategories", ctx, mock.AnythingOfType("string")).Return(nil).Once()
	suite.mockRuleSvc.On("SeedDefaultGoldenRules", ctx, mock.AnythingOfType("string")).Return(nil).Once()

	user, err := suite.service.FindOrCreateOAuthUser(ctx, domain.ProviderGoogle, "google-sub-456", "minh@example.com", "Minh Tran")

	suite.Require().NoError(err)
	assert.Equal(suite.T(), "minh@example.com", user.Email)
	suite.mockUserRepo.AssertExpectations(suite.T())
	suite.mockRuleSvc.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestDeleteUser_ForbiddenForOtherUsers() {
	ctx := context.Background()

	err := suite.service.DeleteUser(ctx, uuid.NewString(), uuid.NewString())

	suite.Require().Error(err)
	assert.ErrorIs(suite.T(), err, apperrors.ErrForbidden)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "MarkUserDeleted", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
