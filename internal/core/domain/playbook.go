package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PlaybookState is a user's saved wealth-playbook scenario: the manually
// entered profile fields plus any custom jar percentage overrides. It is the
// only persisted form of the allocation profile.
type PlaybookState struct {
	UserID          string          `json:"userID"`
	MonthlyIncome   decimal.Decimal `json:"monthlyIncome"`
	EssentialCost   decimal.Decimal `json:"essentialCost"`
	EmergencyFund   decimal.Decimal `json:"emergencyFund"`
	DebtPayMonthly  decimal.Decimal `json:"debtPayMonthly"`
	HasHighRateDebt bool            `json:"hasHighRateDebt"`
	BusinessMode    AccountScope    `json:"businessMode"`
	CustomJarPcts   map[string]int  `json:"customJarPcts,omitempty"` // jar key -> pct override
	UpdatedAt       time.Time       `json:"updatedAt"`
}

// PlanProgress tracks which items of a generated action checklist the user
// has ticked off, keyed by the list it belongs to (e.g. "actions7d").
type PlanProgress struct {
	UserID    string          `json:"userID"`
	ListKey   string          `json:"listKey"`
	Checked   map[string]bool `json:"checked"`
	UpdatedAt time.Time       `json:"updatedAt"`
}
