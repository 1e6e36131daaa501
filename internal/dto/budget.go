package dto

import (
	"time"

	"github.com/leadup-vn/leadup_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateBudgetRequest defines the data needed to create a budget.
type CreateBudgetRequest struct {
	CategoryID string          `json:"categoryID" binding:"required"`
	Amount     decimal.Decimal `json:"amount" binding:"required"`
	StartDate  time.Time       `json:"startDate" binding:"required"`
	EndDate    time.Time       `json:"endDate" binding:"required"`
}

// UpdateBudgetRequest defines the mutable fields of a budget.
type UpdateBudgetRequest struct {
	Amount    *decimal.Decimal `json:"amount,omitempty"`
	StartDate *time.Time       `json:"startDate,omitempty"`
	EndDate   *time.Time       `json:"endDate,omitempty"`
}

// BudgetResponse defines the data returned for a budget. Spent is derived
// from expense transactions in the budget's category and date range.
type BudgetResponse struct {
	BudgetID   string          `json:"budgetID"`
	CategoryID string          `json:"categoryID"`
	Amount     decimal.Decimal `json:"amount"`
	Spent      decimal.Decimal `json:"spent"`
	StartDate  time.Time       `json:"startDate"`
	EndDate    time.Time       `json:"endDate"`
}

// ToBudgetResponse converts a domain Budget to its response DTO
func ToBudgetResponse(b *domain.Budget) BudgetResponse {
	return BudgetResponse{
		BudgetID:   b.BudgetID,
		CategoryID: b.CategoryID,
		Amount:     b.Amount,
		Spent:      b.Spent,
		StartDate:  b.StartDate,
		EndDate:    b.EndDate,
	}
}

// ToListBudgetResponse converts a slice of domain Budgets to response DTOs
func ToListBudgetResponse(budgets []domain.Budget) []BudgetResponse {
	res := make([]BudgetResponse, len(budgets))
	for i := range budgets {
		res[i] = ToBudgetResponse(&budgets[i])
	}
	return res
}
