package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/leadup-vn/leadup_backend/internal/apperrors"
	"github.com/leadup-vn/leadup_backend/internal/core/domain"
	portssvc "github.com/leadup-vn/leadup_backend/internal/core/ports/services"
	"github.com/leadup-vn/leadup_backend/internal/core/services"
	"github.com/leadup-vn/leadup_backend/internal/dto"
)

// --- Mock CategoryRepository ---
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) FindCategoryByID(ctx context.Context, userID, categoryID string) (*domain.Category, error) {
	args := m.Called(ctx, userID, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

func (m *MockCategoryRepository) ListCategories(ctx context.Context, userID string) ([]domain.Category, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Category), args.Error(1)
}

func (m *MockCategoryRepository) SaveCategory(ctx context.Context, category domain.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryRepository) SaveCategories(ctx context.Context, categories []domain.Category) error {
	args := m.Called(ctx, categories)
	return args.Error(0)
}

func (m *MockCategoryRepository) UpdateCategory(ctx context.Context, category domain.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryRepository) DeleteCategory(ctx context.Context, userID, categoryID string) error {
	args := m.Called(ctx, userID, categoryID)
	return args.Error(0)
}

// --- Test Suite ---
type CategoryServiceTestSuite struct {
	suite.Suite
	mockRepo *MockCategoryRepository
	service  portssvc.CategorySvcFacade
}

func (suite *CategoryServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockCategoryRepository)
	suite.service = services.NewCategoryService(suite.mockRepo)
}

// --- Test Cases ---

func (suite *CategoryServiceTestSuite) TestSeedDefaultCategories_Success() {
	ctx := context.Background()
	userID := uuid.NewString()

	suite.mockRepo.On("SaveCategories", ctx, mock.MatchedBy(func(categories []domain.Category) bool {
		if len(categories) != 9 {
			return false
		}
		hasBusiness := false
		for _, c := range categories {
			if c.UserID != userID || c.CreatedBy != userID {
				return false
			}
			if c.CategoryID == domain.BusinessIncomeCategoryID {
				hasBusiness = true
			}
		}
		return hasBusiness
	})).Return(nil).Once()

	err := suite.service.SeedDefaultCategories(ctx, userID)

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CategoryServiceTestSuite) TestSeedDefaultCategories_TwoUsersGetOwnSets() {
	ctx := context.Background()
	userA := uuid.NewString()
	userB := uuid.NewString()

	var seeded [][]domain.Category
	suite.mockRepo.On("SaveCategories", ctx, mock.AnythingOfType("[]domain.Category")).
		Run(func(args mock.Arguments) {
			seeded = append(seeded, args.Get(1).([]domain.Category))
		}).Return(nil).Twice()

	suite.Require().NoError(suite.service.SeedDefaultCategories(ctx, userA))
	suite.Require().NoError(suite.service.SeedDefaultCategories(ctx, userB))

	// Both users get the same stable cat-1..cat-9 ids; ownership is what
	// keeps the rows apart.
	suite.Require().Len(seeded, 2)
	suite.Require().Len(seeded[1], len(seeded[0]))
	for i := range seeded[0] {
		suite.Equal(seeded[0][i].CategoryID, seeded[1][i].CategoryID)
		suite.Equal(userA, seeded[0][i].UserID)
		suite.Equal(userB, seeded[1][i].UserID)
	}
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CategoryServiceTestSuite) TestSeedDefaultCategories_SaveError() {
	ctx := context.Background()
	userID := uuid.NewString()

	suite.mockRepo.On("SaveCategories", ctx, mock.AnythingOfType("[]domain.Category")).Return(assert.AnError).Once()

	err := suite.service.SeedDefaultCategories(ctx, userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, assert.AnError)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CategoryServiceTestSuite) TestCreateCategory_Success() {
	ctx := context.Background()
	userID := uuid.NewString()
	req := dto.CreateCategoryRequest{Name: "Coffee", Type: "expense", DefaultClassification: "want"}

	suite.mockRepo.On("SaveCategory", ctx, mock.MatchedBy(func(c domain.Category) bool {
		return c.UserID == userID && c.Name == "Coffee" &&
			c.Type == domain.Expense && c.DefaultClassification == domain.Want
	})).Return(nil).Once()

	category, err := suite.service.CreateCategory(ctx, userID, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(category)
	suite.NotEmpty(category.CategoryID)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CategoryServiceTestSuite) TestUpdateCategory_NotFound() {
	ctx := context.Background()
	userID := uuid.NewString()
	name := "Renamed"

	suite.mockRepo.On("FindCategoryByID", ctx, userID, "cat-99").Return(nil, apperrors.ErrNotFound).Once()

	category, err := suite.service.UpdateCategory(ctx, userID, "cat-99", dto.UpdateCategoryRequest{Name: &name})

	suite.Require().Error(err)
	suite.Nil(category)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertExpectations(suite.T())
}

// --- Run Suite ---
func TestCategoryService(t *testing.T) {
	suite.Run(t, new(CategoryServiceTestSuite))
}
