package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PlaybookState is the database representation of a user's saved playbook
// scenario. CustomJarPcts is stored as a JSONB column.
type PlaybookState struct {
	UserID          string          `db:"user_id"`
	MonthlyIncome   decimal.Decimal `db:"monthly_income"`
	EssentialCost   decimal.Decimal `db:"essential_cost"`
	EmergencyFund   decimal.Decimal `db:"emergency_fund"`
	DebtPayMonthly  decimal.Decimal `db:"debt_pay_monthly"`
	HasHighRateDebt bool            `db:"has_high_rate_debt"`
	BusinessMode    string          `db:"business_mode"`
	CustomJarPcts   []byte          `db:"custom_jar_pcts"`
	UpdatedAt       time.Time       `db:"updated_at"`
}

// PlanProgress is the database representation of checklist progress for one
// generated action list. Checked is stored as a JSONB column.
type PlanProgress struct {
	UserID    string    `db:"user_id"`
	ListKey   string    `db:"list_key"`
	Checked   []byte    `db:"checked"`
	UpdatedAt time.Time `db:"updated_at"`
}
