package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/leadup-vn/leadup_backend/internal/apperrors"
	"github.com/leadup-vn/leadup_backend/internal/core/domain"
	portsrepo "github.com/leadup-vn/leadup_backend/internal/core/ports/repositories"
	portssvc "github.com/leadup-vn/leadup_backend/internal/core/ports/services"
	"github.com/leadup-vn/leadup_backend/internal/dto"
)

// budgetService implements the budget operations. Returned budgets carry a
// Spent figure derived from expense transactions at read time.
type budgetService struct {
	BaseService
	budgetRepo portsrepo.BudgetRepositoryFacade
	txnRepo    portsrepo.TransactionReader
}

// NewBudgetService creates a new budget service.
func NewBudgetService(budgetRepo portsrepo.BudgetRepositoryFacade, txnRepo portsrepo.TransactionReader) portssvc.BudgetSvcFacade {
	return &budgetService{
		budgetRepo: budgetRepo,
		txnRepo:    txnRepo,
	}
}

// Ensure implementation matches interface
var _ portssvc.BudgetSvcFacade = (*budgetService)(nil)

// CreateBudget records a new budget for a category and date range.
func (s *budgetService) CreateBudget(ctx context.Context, userID string, req dto.CreateBudgetRequest) (*domain.Budget, error) {
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: budget amount must be positive", apperrors.ErrValidation)
	}
	if req.EndDate.Before(req.StartDate) {
		return nil, fmt.Errorf("%w: budget end date must not precede its start date", apperrors.ErrValidation)
	}

	now := time.Now()
	budget := domain.Budget{
		BudgetID:   uuid.NewString(),
		UserID:     userID,
		CategoryID: req.CategoryID,
		Amount:     req.Amount,
		Spent:      decimal.Zero,
		StartDate:  req.StartDate,
		EndDate:    req.EndDate,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.budgetRepo.SaveBudget(ctx, budget); err != nil {
		s.LogError(ctx, err, "Failed to save budget")
		return nil, fmt.Errorf("failed to create budget: %w", err)
	}

	return &budget, nil
}

// GetBudgetByID retrieves a single budget with its derived Spent figure.
func (s *budgetService) GetBudgetByID(ctx context.Context, userID, budgetID string) (*domain.Budget, error) {
	budget, err := s.budgetRepo.FindBudgetByID(ctx, userID, budgetID)
	if err != nil {
		return nil, fmt.Errorf("failed to get budget: %w", err)
	}

	sums, err := s.txnRepo.SumExpensesByCategory(ctx, userID, budget.StartDate, budget.EndDate)
	if err != nil {
		return nil, fmt.Errorf("failed to derive budget spending: %w", err)
	}
	if spent, ok := sums[budget.CategoryID]; ok {
		budget.Spent = spent
	}

	return budget, nil
}

// ListBudgets retrieves all budgets with derived Spent figures.
func (s *budgetService) ListBudgets(ctx context.Context, userID string) ([]domain.Budget, error) {
	budgets, err := s.budgetRepo.ListBudgets(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list budgets")
		return nil, fmt.Errorf("failed to list budgets: %w", err)
	}
	if len(budgets) == 0 {
		return []domain.Budget{}, nil
	}

	// One sum query per budget: ranges differ per budget so a single
	// grouped query cannot serve them all.
	for i := range budgets {
		sums, err := s.txnRepo.SumExpensesByCategory(ctx, userID, budgets[i].StartDate, budgets[i].EndDate)
		if err != nil {
			return nil, fmt.Errorf("failed to derive budget spending: %w", err)
		}
		if spent, ok := sums[budgets[i].CategoryID]; ok {
			budgets[i].Spent = spent
		}
	}

	return budgets, nil
}

// UpdateBudget applies partial changes to a budget.
func (s *budgetService) UpdateBudget(ctx context.Context, userID, budgetID string, req dto.UpdateBudgetRequest) (*domain.Budget, error) {
	budget, err := s.budgetRepo.FindBudgetByID(ctx, userID, budgetID)
	if err != nil {
		return nil, fmt.Errorf("failed to find budget for update: %w", err)
	}

	if req.Amount != nil {
		if req.Amount.LessThanOrEqual(decimal.Zero) {
			return nil, fmt.Errorf("%w: budget amount must be positive", apperrors.ErrValidation)
		}
		budget.Amount = *req.Amount
	}
	if req.StartDate != nil {
		budget.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		budget.EndDate = *req.EndDate
	}
	if budget.EndDate.Before(budget.StartDate) {
		return nil, fmt.Errorf("%w: budget end date must not precede its start date", apperrors.ErrValidation)
	}
	budget.LastUpdatedAt = time.Now()
	budget.LastUpdatedBy = userID

	if err := s.budgetRepo.UpdateBudget(ctx, *budget); err != nil {
		s.LogError(ctx, err, "Failed to update budget")
		return nil, fmt.Errorf("failed to update budget: %w", err)
	}

	return budget, nil
}

// DeleteBudget removes a budget owned by the user.
func (s *budgetService) DeleteBudget(ctx context.Context, userID, budgetID string) error {
	if err := s.budgetRepo.DeleteBudget(ctx, userID, budgetID); err != nil {
		return fmt.Errorf("failed to delete budget: %w", err)
	}
	return nil
}
