package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/leadup-vn/leadup_backend/internal/apperrors"
	"github.com/leadup-vn/leadup_backend/internal/core/domain"
	portsrepo "github.com/leadup-vn/leadup_backend/internal/core/ports/repositories"
	portssvc "github.com/leadup-vn/leadup_backend/internal/core/ports/services"
	"github.com/leadup-vn/leadup_backend/internal/core/services"
	"github.com/leadup-vn/leadup_backend/internal/dto"
)

// --- Mock TransactionRepository ---
type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) FindTransactionByID(ctx context.Context, userID, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, userID, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) ListTransactions(ctx context.Context, userID string, params portsrepo.ListTransactionsParams) ([]domain.Transaction, string, error) {
	args := m.Called(ctx, userID, params)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).([]domain.Transaction), args.String(1), args.Error(2)
}

func (m *MockTransactionRepository) ListTransactionsSince(ctx context.Context, userID string, since time.Time) ([]domain.Transaction, error) {
	args := m.Called(ctx, userID, since)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) SumExpensesByCategory(ctx context.Context, userID string, from, to time.Time) (map[string]decimal.Decimal, error) {
	args := m.Called(ctx, userID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]decimal.Decimal), args.Error(1)
}

func (m *MockTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *MockTransactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *MockTransactionRepository) DeleteTransaction(ctx context.Context, userID, transactionID string) error {
	args := m.Called(ctx, userID, transactionID)
	return args.Error(0)
}

// --- Mock CategoryReader ---
type MockCategoryReader struct {
	mock.Mock
}

func (m *MockCategoryReader) FindCategoryByID(ctx context.Context, userID, categoryID string) (*domain.Category, error) {
	args := m.Called(ctx, userID, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

func (m *MockCategoryReader) ListCategories(ctx context.Context, userID string) ([]domain.Category, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Category), args.Error(1)
}

// --- Test Suite ---
type TransactionServiceTestSuite struct {
	suite.Suite
	mockTxnRepo      *MockTransactionRepository
	mockCategoryRepo *MockCategoryReader
	service          portssvc.TransactionSvcFacade
}

func (suite *TransactionServiceTestSuite) SetupTest() {
	suite.mockTxnRepo = new(MockTransactionRepository)
	suite.mockCategoryRepo = new(MockCategoryReader)
	suite.service = services.NewTransactionService(suite.mockTxnRepo, suite.mockCategoryRepo)
}

// --- Test Cases ---

func (suite *TransactionServiceTestSuite) TestCreateTransaction_AppliesCategoryDefaultClassification() {
	ctx := context.Background()
	userID := uuid.NewString()
	categoryID := uuid.NewString()
	req := dto.CreateTransactionRequest{
		CategoryID: categoryID,
		Amount:     decimal.NewFromInt(250000),
		Type:       string(domain.Expense),
		Date:       time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC),
	}

	suite.mockCategoryRepo.On("FindCategoryByID", ctx, userID, categoryID).Return(&domain.Category{
		CategoryID:            categoryID,
		UserID:                userID,
		Name:                  "Groceries",
		Type:                  domain.Expense,
		DefaultClassification: domain.Need,
	}, nil).Once()

	suite.mockTxnRepo.On("SaveTransaction", ctx, mock.MatchedBy(func(txn domain.Transaction) bool {
		return txn.UserID == userID &&
			txn.Classification == domain.Need &&
			txn.AccountScope == domain.ScopePersonal &&
			txn.PaymentMethod == domain.PaymentCash &&
			txn.CreatedBy == userID
	})).Return(nil).Once()

	txn, err := suite.service.CreateTransaction(ctx, userID, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(txn)
	assert.Equal(suite.T(), domain.Need, txn.Classification)
	assert.NotEmpty(suite.T(), txn.TransactionID)
	suite.mockTxnRepo.AssertExpectations(suite.T())
	suite.mockCategoryRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_ExplicitClassificationWins() {
	ctx := context.Background()
	userID := uuid.NewString()
	req := dto.CreateTransactionRequest{
		CategoryID:     uuid.NewString(),
		Amount:         decimal.NewFromInt(120000),
		Type:           string(domain.Expense),
		Date:           time.Now(),
		Classification: string(domain.Want),
	}

	suite.mockTxnRepo.On("SaveTransaction", ctx, mock.MatchedBy(func(txn domain.Transaction) bool {
		return txn.Classification == domain.Want
	})).Return(nil).Once()

	txn, err := suite.service.CreateTransaction(ctx, userID, req)

	suite.Require().NoError(err)
	assert.Equal(suite.T(), domain.Want, txn.Classification)
	// The category default is never consulted when the classification is set.
	suite.mockCategoryRepo.AssertNotCalled(suite.T(), "FindCategoryByID", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_IncomeStaysUnclassified() {
	ctx := context.Background()
	userID := uuid.NewString()
	req := dto.CreateTransactionRequest{
		CategoryID:     uuid.NewString(),
		Amount:         decimal.NewFromInt(30000000),
		Type:           string(domain.Income),
		Date:           time.Now(),
		Classification: string(domain.Need),
	}

	suite.mockTxnRepo.On("SaveTransaction", ctx, mock.MatchedBy(func(txn domain.Transaction) bool {
		return txn.Classification == domain.SpendingClassification("")
	})).Return(nil).Once()

	txn, err := suite.service.CreateTransaction(ctx, userID, req)

	suite.Require().NoError(err)
	assert.Empty(suite.T(), string(txn.Classification))
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_NegativeAmountFails() {
	ctx := context.Background()
	req := dto.CreateTransactionRequest{
		CategoryID: uuid.NewString(),
		Amount:     decimal.NewFromInt(-500),
		Type:       string(domain.Expense),
		Date:       time.Now(),
	}

	txn, err := suite.service.CreateTransaction(ctx, uuid.NewString(), req)

	suite.Require().Error(err)
	assert.Nil(suite.T(), txn)
	assert.ErrorIs(suite.T(), err, apperrors.ErrValidation)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "SaveTransaction", mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_ZeroAmountAllowed() {
	ctx := context.Background()
	userID := uuid.NewString()
	req := dto.CreateTransactionRequest{
		CategoryID:     uuid.NewString(),
		Amount:         decimal.Zero,
		Type:           string(domain.Expense),
		Date:           time.Now(),
		Classification: string(domain.Need),
	}

	suite.mockTxnRepo.On("SaveTransaction", ctx, mock.MatchedBy(func(txn domain.Transaction) bool {
		return txn.Amount.IsZero()
	})).Return(nil).Once()

	txn, err := suite.service.CreateTransaction(ctx, userID, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(txn)
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestUpdateTransaction_PatchesFields() {
	ctx := context.Background()
	userID := uuid.NewString()
	transactionID := uuid.NewString()
	existing := &domain.Transaction{
		TransactionID:  transactionID,
		UserID:         userID,
		CategoryID:     uuid.NewString(),
		Amount:         decimal.NewFromInt(100000),
		Type:           domain.Expense,
		Classification: domain.Need,
	}
	newAmount := decimal.NewFromInt(150000)
	newClassification := string(domain.Want)

	suite.mockTxnRepo.On("FindTransactionByID", ctx, userID, transactionID).Return(existing, nil).Once()
	suite.mockTxnRepo.On("UpdateTransaction", ctx, mock.MatchedBy(func(txn domain.Transaction) bool {
		return txn.Amount.Equal(newAmount) &&
			txn.Classification == domain.Want &&
			txn.LastUpdatedBy == userID
	})).Return(nil).Once()

	txn, err := suite.service.UpdateTransaction(ctx, userID, transactionID, dto.UpdateTransactionRequest{
		Amount:         &newAmount,
		Classification: &newClassification,
	})

	suite.Require().NoError(err)
	assert.True(suite.T(), txn.Amount.Equal(newAmount))
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestUpdateTransaction_NotFound() {
	ctx := context.Background()
	userID := uuid.NewString()
	transactionID := uuid.NewString()

	suite.mockTxnRepo.On("FindTransactionByID", ctx, userID, transactionID).Return(nil, apperrors.ErrNotFound).Once()

	txn, err := suite.service.UpdateTransaction(ctx, userID, transactionID, dto.UpdateTransactionRequest{})

	suite.Require().Error(err)
	assert.Nil(suite.T(), txn)
	assert.ErrorIs(suite.T(), err, apperrors.ErrNotFound)
}

func (suite *TransactionServiceTestSuite) TestListTransactions_PassesFilters() {
	ctx := context.Background()
	userID := uuid.NewString()
	from := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)

	suite.mockTxnRepo.On("ListTransactions", ctx, userID, mock.MatchedBy(func(p portsrepo.ListTransactionsParams) bool {
		return p.Type == domain.Expense && p.From.Equal(from) && p.Limit == 50
	})).Return([]domain.Transaction{{TransactionID: uuid.NewString()}}, "next-cursor", nil).Once()

	txns, nextToken, err := suite.service.ListTransactions(ctx, userID, dto.ListTransactionsRequest{
		Type:  string(domain.Expense),
		From:  &from,
		Limit: 50,
	})

	suite.Require().NoError(err)
	assert.Len(suite.T(), txns, 1)
	assert.Equal(suite.T(), "next-cursor", nextToken)
}

func (suite *TransactionServiceTestSuite) TestDeleteTransaction_RepoError() {
	ctx := context.Background()

	suite.mockTxnRepo.On("DeleteTransaction", ctx, mock.Anything, mock.Anything).Return(assert.AnError).Once()

	err := suite.service.DeleteTransaction(ctx, uuid.NewString(), uuid.NewString())

	suite.Require().Error(err)
	assert.ErrorIs(suite.T(), err, assert.AnError)
}

func TestTransactionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TransactionServiceTestSuite))
}
