package domain

import "github.com/shopspring/decimal"

// AssetType classifies an asset. Cash and investment assets count as liquid
// when the pyramid engine computes emergency-fund coverage.
type AssetType string

const (
	AssetCash       AssetType = "cash"
	AssetInvestment AssetType = "investment"
	AssetRealEstate AssetType = "real_estate"
	AssetVehicle    AssetType = "vehicle"
	AssetOther      AssetType = "other"
)

// IsLiquid reports whether assets of this type are quickly convertible to cash.
func (t AssetType) IsLiquid() bool {
	return t == AssetCash || t == AssetInvestment
}

// Asset is a standalone net-worth item. Assets have no linkage to
// transactions; they are independently maintained by the user.
type Asset struct {
	AssetID      string          `json:"assetID"`
	UserID       string          `json:"userID"`
	Name         string          `json:"name"`
	Value        decimal.Decimal `json:"value"` // non-negative
	Type         AssetType       `json:"type"`
	AccountScope AccountScope    `json:"accountScope"`
	AuditFields
}
