package domain

import "github.com/shopspring/decimal"

// NetWorthSummary is the derived net-worth view over a user's assets and
// liabilities. It is computed on demand and never persisted.
type NetWorthSummary struct {
	TotalAssets      decimal.Decimal `json:"totalAssets"`
	TotalLiquid      decimal.Decimal `json:"totalLiquid"`
	TotalLiabilities decimal.Decimal `json:"totalLiabilities"`
	NetWorth         decimal.Decimal `json:"netWorth"`
}
