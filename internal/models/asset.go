package models

import "github.com/shopspring/decimal"

// Asset is the database representation of a net-worth asset item.
type Asset struct {
	AssetID      string          `db:"asset_id"`
	UserID       string          `db:"user_id"`
	Name         string          `db:"name"`
	Value        decimal.Decimal `db:"value"`
	Type         string          `db:"type"`
	AccountScope string          `db:"account_scope"`
	AuditFields
}
