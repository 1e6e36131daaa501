package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType distinguishes money coming in from money going out.
type TransactionType string

const (
	Income  TransactionType = "income"
	Expense TransactionType = "expense"
)

// PaymentMethod records how a transaction was settled.
type PaymentMethod string

const (
	PaymentCash         PaymentMethod = "cash"
	PaymentCreditCard   PaymentMethod = "credit_card"
	PaymentBankTransfer PaymentMethod = "bank_transfer"
)

// AccountScope separates personal money from business money.
type AccountScope string

const (
	ScopePersonal AccountScope = "personal"
	ScopeBusiness AccountScope = "business"
)

// SpendingClassification tags an expense as a need or a want.
// It is meaningful only for expense transactions.
type SpendingClassification string

const (
	Need SpendingClassification = "need"
	Want SpendingClassification = "want"
)

// Transaction represents a single income or expense record.
// CategoryID is not referentially enforced; a dangling id degrades to an
// "unknown category" in consumers rather than failing.
type Transaction struct {
	TransactionID  string                 `json:"transactionID"`
	UserID         string                 `json:"userID"`
	CategoryID     string                 `json:"categoryID"`
	Amount         decimal.Decimal        `json:"amount"` // non-negative, whole VND
	Description    string                 `json:"description"`
	Type           TransactionType        `json:"type"`
	Date           time.Time              `json:"date"` // day precision
	PaymentMethod  PaymentMethod          `json:"paymentMethod"`
	AccountScope   AccountScope           `json:"accountScope"`
	Classification SpendingClassification `json:"classification"`
	IsAsset        bool                   `json:"isAsset"`     // counts toward passive income
	IsLiability    bool                   `json:"isLiability"` // counts toward debt tracking
	AuditFields
}
