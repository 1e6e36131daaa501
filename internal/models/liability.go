package models

import "github.com/shopspring/decimal"

// Liability is the database representation of a tracked debt.
type Liability struct {
	LiabilityID  string          `db:"liability_id"`
	UserID       string          `db:"user_id"`
	Name         string          `db:"name"`
	Amount       decimal.Decimal `db:"amount"`
	Type         string          `db:"type"`
	AccountScope string          `db:"account_scope"`
	AuditFields
}
