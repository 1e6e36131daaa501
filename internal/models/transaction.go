package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is the database representation of a single income or expense
// record. Amount is stored as NUMERIC and carried as a precise decimal.
type Transaction struct {
	TransactionID  string          `db:"transaction_id"`
	UserID         string          `db:"user_id"`
	CategoryID     string          `db:"category_id"`
	Amount         decimal.Decimal `db:"amount"`
	Description    string          `db:"description"`
	Type           string          `db:"type"`
	Date           time.Time       `db:"date"`
	PaymentMethod  string          `db:"payment_method"`
	AccountScope   string          `db:"account_scope"`
	Classification string          `db:"classification"`
	IsAsset        bool            `db:"is_asset"`
	IsLiability    bool            `db:"is_liability"`
	AuditFields
}
