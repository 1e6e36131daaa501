package services

import (
	"context"

	"github.com/leadup-vn/leadup_backend/internal/core/domain"
	"github.com/leadup-vn/leadup_backend/internal/dto"
)

// BudgetSvcFacade defines budget operations. Returned budgets carry the
// derived Spent figure.
type BudgetSvcFacade interface {
	// CreateBudget records a new budget for a category and date range.
	CreateBudget(ctx context.Context, userID string, req dto.CreateBudgetRequest) (*domain.Budget, error)

	// GetBudgetByID retrieves a single budget owned by the user.
	GetBudgetByID(ctx context.Context, userID, budgetID string) (*domain.Budget, error)

	// ListBudgets retrieves all budgets owned by the user.
	ListBudgets(ctx context.Context, userID string) ([]domain.Budget, error)

	// UpdateBudget applies partial changes to a budget.
	UpdateBudget(ctx context.Context, userID, budgetID string, req dto.UpdateBudgetRequest) (*domain.Budget, error)

	// DeleteBudget removes a budget owned by the user.
	DeleteBudget(ctx context.Context, userID, budgetID string) error
}
