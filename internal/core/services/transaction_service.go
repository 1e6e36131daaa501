package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/leadup-vn/leadup_backend/internal/apperrors"
	"github.com/leadup-vn/leadup_backend/internal/core/domain"
	portsrepo "github.com/leadup-vn/leadup_backend/internal/core/ports/repositories"
	portssvc "github.com/leadup-vn/leadup_backend/internal/core/ports/services"
	"github.com/leadup-vn/leadup_backend/internal/dto"
)

// transactionService implements the transaction operations.
type transactionService struct {
	BaseService
	txnRepo      portsrepo.TransactionRepositoryFacade
	categoryRepo portsrepo.CategoryReader
}

// NewTransactionService creates a new transaction service.
func NewTransactionService(txnRepo portsrepo.TransactionRepositoryFacade, categoryRepo portsrepo.CategoryReader) portssvc.TransactionSvcFacade {
	return &transactionService{
		txnRepo:      txnRepo,
		categoryRepo: categoryRepo,
	}
}

// Ensure implementation matches interface
var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

// CreateTransaction records a new transaction. When the request carries no
// need/want classification, the category's default applies; income
// transactions stay unclassified.
func (s *transactionService) CreateTransaction(ctx context.Context, userID string, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	if req.Amount.IsNegative() {
		return nil, fmt.Errorf("%w: amount must not be negative", apperrors.ErrValidation)
	}

	classification := domain.SpendingClassification(req.Classification)
	if req.Type == string(domain.Expense) && classification == "" {
		category, err := s.categoryRepo.FindCategoryByID(ctx, userID, req.CategoryID)
		if err == nil && category.DefaultClassification != "" {
			classification = category.DefaultClassification
		}
		// A dangling category id is tolerated; the transaction just stays
		// unclassified.
	}
	if req.Type == string(domain.Income) {
		classification = ""
	}

	scope := domain.AccountScope(req.AccountScope)
	if scope == "" {
		scope = domain.ScopePersonal
	}
	method := domain.PaymentMethod(req.PaymentMethod)
	if method == "" {
		method = domain.PaymentCash
	}

	now := time.Now()
	txn := domain.Transaction{
		TransactionID:  uuid.NewString(),
		UserID:         userID,
		CategoryID:     req.CategoryID,
		Amount:         req.Amount,
		Description:    req.Description,
		Type:           domain.TransactionType(req.Type),
		Date:           req.Date,
		PaymentMethod:  method,
		AccountScope:   scope,
		Classification: classification,
		IsAsset:        req.IsAsset,
		IsLiability:    req.IsLiability,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.txnRepo.SaveTransaction(ctx, txn); err != nil {
		s.LogError(ctx, err, "Failed to save transaction")
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	return &txn, nil
}

// GetTransactionByID retrieves a single transaction owned by the user.
func (s *transactionService) GetTransactionByID(ctx context.Context, userID, transactionID string) (*domain.Transaction, error) {
	txn, err := s.txnRepo.FindTransactionByID(ctx, userID, transactionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	return txn, nil
}

// ListTransactions retrieves a filtered page of transactions.
func (s *transactionService) ListTransactions(ctx context.Context, userID string, req dto.ListTransactionsRequest) ([]domain.Transaction, string, error) {
	params := portsrepo.ListTransactionsParams{
		Type:         domain.TransactionType(req.Type),
		CategoryID:   req.CategoryID,
		AccountScope: domain.AccountScope(req.AccountScope),
		Limit:        req.Limit,
		NextToken:    req.NextToken,
	}
	if req.From != nil {
		params.From = *req.From
	}
	if req.To != nil {
		params.To = *req.To
	}

	txns, nextToken, err := s.txnRepo.ListTransactions(ctx, userID, params)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions")
		return nil, "", fmt.Errorf("failed to list transactions: %w", err)
	}
	return txns, nextToken, nil
}

// UpdateTransaction applies partial changes to a transaction.
func (s *transactionService) UpdateTransaction(ctx context.Context, userID, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error) {
	txn, err := s.txnRepo.FindTransactionByID(ctx, userID, transactionID)
	if err != nil {
		return nil, fmt.Errorf("failed to find transaction for update: %w", err)
	}

	if req.Amount != nil {
		if req.Amount.IsNegative() {
			return nil, fmt.Errorf("%w: amount must not be negative", apperrors.ErrValidation)
		}
		txn.Amount = *req.Amount
	}
	if req.CategoryID != nil {
		txn.CategoryID = *req.CategoryID
	}
	if req.Description != nil {
		txn.Description = *req.Description
	}
	if req.Date != nil {
		txn.Date = *req.Date
	}
	if req.PaymentMethod != nil {
		txn.PaymentMethod = domain.PaymentMethod(*req.PaymentMethod)
	}
	if req.AccountScope != nil {
		txn.AccountScope = domain.AccountScope(*req.AccountScope)
	}
	if req.Classification != nil {
		txn.Classification = domain.SpendingClassification(*req.Classification)
	}
	if req.IsAsset != nil {
		txn.IsAsset = *req.IsAsset
	}
	if req.IsLiability != nil {
		txn.IsLiability = *req.IsLiability
	}
	txn.LastUpdatedAt = time.Now()
	txn.LastUpdatedBy = userID

	if err := s.txnRepo.UpdateTransaction(ctx, *txn); err != nil {
		s.LogError(ctx, err, "Failed to update transaction")
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}

	return txn, nil
}

// DeleteTransaction removes a transaction owned by the user.
func (s *transactionService) DeleteTransaction(ctx context.Context, userID, transactionID string) error {
	if err := s.txnRepo.DeleteTransaction(ctx, userID, transactionID); err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}
	return nil
}
