package services_test

import (
	"context"
	"testing"

	"github.com/leadup-vn/leadup_backend/internal/apperrors"
	"github.com/leadup-vn/leadup_backend/internal/core/domain"
	portssvc "github.com/leadup-vn/leadup_backend/internal/core/ports/services"
	"github.com/leadup-vn/leadup_backend/internal/core/services"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock GoldenRuleRepository ---
type MockGoldenRuleRepository struct {
	mock.Mock
}

func (m *MockGoldenRuleRepository) FindGoldenRuleByID(ctx context.Context, userID, ruleID string) (*domain.GoldenRule, error) {
	args := m.Called(ctx, userID, ruleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GoldenRule), args.Error(1)
}

func (m *MockGoldenRuleRepository) ListGoldenRules(ctx context.Context, userID string) ([]domain.GoldenRule, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.GoldenRule), args.Error(1)
}

func (m *MockGoldenRuleRepository) SaveGoldenRules(ctx context.Context, rules []domain.GoldenRule) error {
	args := m.Called(ctx, rules)
	return args.Error(0)
}

func (m *MockGoldenRuleRepository) UpdateGoldenRule(ctx context.Context, rule domain.GoldenRule) error {
	args := m.Called(ctx, rule)
	return args.Error(0)
}

// --- Test Suite ---
type GoldenRuleServiceTestSuite struct {
	suite.Suite
	mockRepo *MockGoldenRuleRepository
	service  portssvc.GoldenRuleSvcFacade
}

func (suite *GoldenRuleServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockGoldenRuleRepository)
	suite.service = services.NewGoldenRuleService(suite.mockRepo)
}

// --- Test Cases ---

func (suite *GoldenRuleServiceTestSuite) TestSeedDefaultGoldenRules_Success() {
	ctx := context.Background()
	userID := uuid.NewString()

	suite.mockRepo.On("SaveGoldenRules", ctx, mock.MatchedBy(func(rules []domain.GoldenRule) bool {
		if len(rules) != 11 {
			return false
		}
		for _, r := range rules {
			if r.UserID != userID || r.IsCompliant || r.CreatedBy != userID {
				return false
			}
		}
		return true
	})).Return(nil).Once()

	err := suite.service.SeedDefaultGoldenRules(ctx, userID)

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *GoldenRuleServiceTestSuite) TestSeedDefaultGoldenRules_TwoUsersGetOwnSets() {
	ctx := context.Background()
	userA := uuid.NewString()
	userB := uuid.NewString()

	var seeded [][]domain.GoldenRule
	suite.mockRepo.On("SaveGoldenRules", ctx, mock.AnythingOfType("[]domain.GoldenRule")).
		Run(func(args mock.Arguments) {
			seeded = append(seeded, args.Get(1).([]domain.GoldenRule))
		}).Return(nil).Twice()

	suite.Require().NoError(suite.service.SeedDefaultGoldenRules(ctx, userA))
	suite.Require().NoError(suite.service.SeedDefaultGoldenRules(ctx, userB))

	// The same stable rule-1..rule-11 ids repeat for every user; ownership
	// is what keeps the rows apart.
	suite.Require().Len(seeded, 2)
	suite.Require().Len(seeded[1], len(seeded[0]))
	for i := range seeded[0] {
		suite.Equal(seeded[0][i].RuleID, seeded[1][i].RuleID)
		suite.Equal(userA, seeded[0][i].UserID)
		suite.Equal(userB, seeded[1][i].UserID)
	}
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *GoldenRuleServiceTestSuite) TestSeedDefaultGoldenRules_SaveError() {
	ctx := context.Background()
	userID := uuid.NewString()
	expectedErr := assert.AnError

	suite.mockRepo.On("SaveGoldenRules", ctx, mock.AnythingOfType("[]domain.GoldenRule")).Return(expectedErr).Once()

	err := suite.service.SeedDefaultGoldenRules(ctx, userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, expectedErr)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *GoldenRuleServiceTestSuite) TestListGoldenRules_Score() {
	ctx := context.Background()
	userID := uuid.NewString()
	rules := []domain.GoldenRule{
		{RuleID: "rule-1", IsCompliant: true},
		{RuleID: "rule-2", IsCompliant: true},
		{RuleID: "rule-3", IsCompliant: false},
	}

	suite.mockRepo.On("ListGoldenRules", ctx, userID).Return(rules, nil).Once()

	got, score, err := suite.service.ListGoldenRules(ctx, userID)

	suite.Require().NoError(err)
	suite.Equal(rules, got)
	suite.Equal(67, score) // round(100 * 2/3)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *GoldenRuleServiceTestSuite) TestListGoldenRules_Empty() {
	ctx := context.Background()
	userID := uuid.NewString()

	suite.mockRepo.On("ListGoldenRules", ctx, userID).Return([]domain.GoldenRule{}, nil).Once()

	got, score, err := suite.service.ListGoldenRules(ctx, userID)

	suite.Require().NoError(err)
	suite.Empty(got)
	suite.NotNil(got)
	suite.Equal(0, score)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *GoldenRuleServiceTestSuite) TestSetCompliance_Success() {
	ctx := context.Background()
	userID := uuid.NewString()
	ruleID := "rule-4"
	existing := &domain.GoldenRule{RuleID: ruleID, UserID: userID, IsCompliant: false}

	suite.mockRepo.On("FindGoldenRuleByID", ctx, userID, ruleID).Return(existing, nil).Once()
	suite.mockRepo.On("UpdateGoldenRule", ctx, mock.MatchedBy(func(r domain.GoldenRule) bool {
		return r.RuleID == ruleID && r.IsCompliant && r.LastUpdatedBy == userID
	})).Return(nil).Once()

	rule, err := suite.service.SetCompliance(ctx, userID, ruleID, true)

	suite.Require().NoError(err)
	suite.Require().NotNil(rule)
	suite.True(rule.IsCompliant)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *GoldenRuleServiceTestSuite) TestSetCompliance_NotFound() {
	ctx := context.Background()
	userID := uuid.NewString()

	suite.mockRepo.On("FindGoldenRuleByID", ctx, userID, "rule-99").Return(nil, apperrors.ErrNotFound).Once()

	rule, err := suite.service.SetCompliance(ctx, userID, "rule-99", true)

	suite.Require().Error(err)
	suite.Nil(rule)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertExpectations(suite.T())
}

// --- ComplianceScore ---

func TestComplianceScore_Rounding(t *testing.T) {
	rules := make([]domain.GoldenRule, 11)
	for i := 0; i < 6; i++ {
		rules[i].IsCompliant = true
	}
	assert.Equal(t, 55, services.ComplianceScore(rules)) // round(100 * 6/11)
}

func TestComplianceScore_Empty(t *testing.T) {
	assert.Equal(t, 0, services.ComplianceScore(nil))
}

// --- Run Suite ---
func TestGoldenRuleService(t *testing.T) {
	suite.Run(t, new(GoldenRuleServiceTestSuite))
}
