package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Budget caps spending for one category over a date range.
type Budget struct {
	BudgetID   string          `json:"budgetID"`
	UserID     string          `json:"userID"`
	CategoryID string          `json:"categoryID"`
	Amount     decimal.Decimal `json:"amount"`
	Spent      decimal.Decimal `json:"spent"`
	StartDate  time.Time       `json:"startDate"`
	EndDate    time.Time       `json:"endDate"`
	AuditFields
}
