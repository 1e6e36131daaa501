package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Budget is the database representation of a per-category budget.
// Spent is not persisted; it is derived from transactions at read time.
type Budget struct {
	BudgetID   string          `db:"budget_id"`
	UserID     string          `db:"user_id"`
	CategoryID string          `db:"category_id"`
	Amount     decimal.Decimal `db:"amount"`
	StartDate  time.Time       `db:"start_date"`
	EndDate    time.Time       `db:"end_date"`
	AuditFields
}
