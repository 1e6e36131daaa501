package domain

import "github.com/shopspring/decimal"

// LiabilityType classifies a debt.
type LiabilityType string

const (
	LiabilityLoan       LiabilityType = "loan"
	LiabilityCreditCard LiabilityType = "credit_card"
	LiabilityMortgage   LiabilityType = "mortgage"
	LiabilityOther      LiabilityType = "other"
)

// Liability is a standalone debt item tracked for net worth.
type Liability struct {
	LiabilityID  string          `json:"liabilityID"`
	UserID       string          `json:"userID"`
	Name         string          `json:"name"`
	Amount       decimal.Decimal `json:"amount"` // non-negative outstanding balance
	Type         LiabilityType   `json:"type"`
	AccountScope AccountScope    `json:"accountScope"`
	AuditFields
}
