package services_test

import (
	"context"
	"testing"

	"github.com/leadup-vn/leadup_backend/internal/apperrors"
	"github.com/leadup-vn/leadup_backend/internal/core/domain"
	portssvc "github.com/leadup-vn/leadup_backend/internal/core/ports/services"
	"github.com/leadup-vn/leadup_backend/internal/core/services"
	"github.com/leadup-vn/leadup_backend/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock PlaybookRepository ---
type MockPlaybookRepository struct {
	mock.Mock
}

func (m *MockPlaybookRepository) FindPlaybookState(ctx context.Context, userID string) (*domain.PlaybookState, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PlaybookState), args.Error(1)
}

func (m *MockPlaybookRepository) FindPlanProgress(ctx context.Context, userID, listKey string) (*domain.PlanProgress, error) {
	args := m.Called(ctx, userID, listKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PlanProgress), args.Error(1)
}

func (m *MockPlaybookRepository) SavePlaybookState(ctx context.Context, state domain.PlaybookState) error {
	args := m.Called(ctx, state)
	return args.Error(0)
}

func (m *MockPlaybookRepository) SavePlanProgress(ctx context.Context, progress domain.PlanProgress) error {
	args := m.Called(ctx, progress)
	return args.Error(0)
}

// --- Test Suite ---
type PlaybookServiceTestSuite struct {
	suite.Suite
	mockRepo *MockPlaybookRepository
	service  portssvc.PlaybookSvcFacade
}

func (suite *PlaybookServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockPlaybookRepository)
	suite.service = services.NewPlaybookService(suite.mockRepo)
}

// --- Test Cases ---

func (suite *PlaybookServiceTestSuite) TestBuildPlan_Success() {
	ctx := context.Background()
	userID := uuid.NewString()
	req := dto.PlaybookProfileRequest{
		MonthlyIncome: decimal.NewFromInt(20_000_000),
		EssentialCost: decimal.NewFromInt(10_000_000),
		EmergencyFund: decimal.NewFromInt(30_000_000),
	}

	result, err := suite.service.BuildPlan(ctx, userID, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(result)
	suite.NotEmpty(result.Jars)

	// Jar amounts must sum back to the full income.
	total := decimal.Zero
	for _, jar := range result.Jars {
		total = total.Add(jar.Amount)
	}
	suite.True(total.Equal(req.MonthlyIncome), "jar amounts should sum to income, got %s", total)
}

func (suite *PlaybookServiceTestSuite) TestBuildPlan_NegativeIncome() {
	ctx := context.Background()

	result, err := suite.service.BuildPlan(ctx, uuid.NewString(), dto.PlaybookProfileRequest{
		MonthlyIncome: decimal.NewFromInt(-1),
	})

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *PlaybookServiceTestSuite) TestSaveState_Success() {
	ctx := context.Background()
	userID := uuid.NewString()
	req := dto.SavePlaybookStateRequest{
		MonthlyIncome:   decimal.NewFromInt(15_000_000),
		EssentialCost:   decimal.NewFromInt(8_000_000),
		HasHighRateDebt: true,
		CustomJarPcts:   map[string]int{"fun": 5},
	}

	suite.mockRepo.On("SavePlaybookState", ctx, mock.MatchedBy(func(s domain.PlaybookState) bool {
		return s.UserID == userID && s.HasHighRateDebt && s.BusinessMode == domain.ScopePersonal && s.CustomJarPcts["fun"] == 5
	})).Return(nil).Once()

	state, err := suite.service.SaveState(ctx, userID, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(state)
	suite.Equal(domain.ScopePersonal, state.BusinessMode)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *PlaybookServiceTestSuite) TestSaveState_BadJarPct() {
	ctx := context.Background()

	state, err := suite.service.SaveState(ctx, uuid.NewString(), dto.SavePlaybookStateRequest{
		MonthlyIncome: decimal.NewFromInt(15_000_000),
		CustomJarPcts: map[string]int{"invest": 120},
	})

	suite.Require().Error(err)
	suite.Nil(state)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *PlaybookServiceTestSuite) TestGetState_NotFound() {
	ctx := context.Background()
	userID := uuid.NewString()

	suite.mockRepo.On("FindPlaybookState", ctx, userID).Return(nil, apperrors.ErrNotFound).Once()

	state, err := suite.service.GetState(ctx, userID)

	suite.Require().Error(err)
	suite.Nil(state)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *PlaybookServiceTestSuite) TestSavePlanProgress_Success() {
	ctx := context.Background()
	userID := uuid.NewString()
	req := dto.UpdatePlanProgressRequest{Checked: map[string]bool{"0": true, "1": false}}

	suite.mockRepo.On("SavePlanProgress", ctx, mock.MatchedBy(func(p domain.PlanProgress) bool {
		return p.UserID == userID && p.ListKey == "actions7d" && p.Checked["0"]
	})).Return(nil).Once()

	progress, err := suite.service.SavePlanProgress(ctx, userID, "actions7d", req)

	suite.Require().NoError(err)
	suite.Require().NotNil(progress)
	suite.Equal("actions7d", progress.ListKey)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *PlaybookServiceTestSuite) TestSavePlanProgress_EmptyListKey() {
	ctx := context.Background()

	progress, err := suite.service.SavePlanProgress(ctx, uuid.NewString(), "", dto.UpdatePlanProgressRequest{Checked: map[string]bool{}})

	suite.Require().Error(err)
	suite.Nil(progress)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

// --- Run Suite ---
func TestPlaybookService(t *testing.T) {
	suite.Run(t, new(PlaybookServiceTestSuite))
}
