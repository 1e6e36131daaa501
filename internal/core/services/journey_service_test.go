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
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock JourneyRepository ---
type MockJourneyRepository struct {
	mock.Mock
}

func (m *MockJourneyRepository) ListJourneyProgress(ctx context.Context, userID string) ([]domain.JourneyProgress, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JourneyProgress), args.Error(1)
}

func (m *MockJourneyRepository) UpsertJourneyProgress(ctx context.Context, progress domain.JourneyProgress) error {
	args := m.Called(ctx, progress)
	return args.Error(0)
}

// --- Test Suite ---
type JourneyServiceTestSuite struct {
	suite.Suite
	mockRepo *MockJourneyRepository
	service  portssvc.JourneySvcFacade
}

func (suite *JourneyServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockJourneyRepository)
	suite.service = services.NewJourneyService(suite.mockRepo)
}

// --- Test Cases ---

func (suite *JourneyServiceTestSuite) TestGetJourneyProgress_Success() {
	ctx := context.Background()
	userID := uuid.NewString()
	expected := []domain.JourneyProgress{{UserID: userID, Day: 1, Completed: true}}

	suite.mockRepo.On("ListJourneyProgress", ctx, userID).Return(expected, nil).Once()

	progress, err := suite.service.GetJourneyProgress(ctx, userID)

	suite.Require().NoError(err)
	suite.Equal(expected, progress)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *JourneyServiceTestSuite) TestUpdateJourneyDay_Complete() {
	ctx := context.Background()
	userID := uuid.NewString()
	completed := true
	req := dto.UpdateJourneyDayRequest{Completed: &completed, Note: "done early"}

	suite.mockRepo.On("UpsertJourneyProgress", ctx, mock.MatchedBy(func(p domain.JourneyProgress) bool {
		return p.UserID == userID && p.Day == 3 && p.Completed && p.Note == "done early" && p.CompletedAt != nil
	})).Return(nil).Once()

	progress, err := suite.service.UpdateJourneyDay(ctx, userID, 3, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(progress)
	suite.True(progress.Completed)
	suite.NotNil(progress.CompletedAt)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *JourneyServiceTestSuite) TestUpdateJourneyDay_Uncomplete() {
	ctx := context.Background()
	userID := uuid.NewString()
	completed := false
	req := dto.UpdateJourneyDayRequest{Completed: &completed}

	suite.mockRepo.On("UpsertJourneyProgress", ctx, mock.MatchedBy(func(p domain.JourneyProgress) bool {
		return p.Day == 5 && !p.Completed && p.CompletedAt == nil
	})).Return(nil).Once()

	progress, err := suite.service.UpdateJourneyDay(ctx, userID, 5, req)

	suite.Require().NoError(err)
	suite.Nil(progress.CompletedAt)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *JourneyServiceTestSuite) TestUpdateJourneyDay_DayOutOfRange() {
	ctx := context.Background()
	completed := true
	req := dto.UpdateJourneyDayRequest{Completed: &completed}

	for _, day := range []int{0, 31, -1} {
		progress, err := suite.service.UpdateJourneyDay(ctx, uuid.NewString(), day, req)
		suite.Require().Error(err)
		suite.Nil(progress)
		suite.ErrorIs(err, apperrors.ErrValidation)
	}
	suite.mockRepo.AssertNotCalled(suite.T(), "UpsertJourneyProgress")
}

// --- Run Suite ---
func TestJourneyService(t *testing.T) {
	suite.Run(t, new(JourneyServiceTestSuite))
}
