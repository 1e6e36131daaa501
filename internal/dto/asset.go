package dto

import (
	"time"

	"github.com/leadup-vn/leadup_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateAssetRequest defines the data needed to create an asset.
type CreateAssetRequest struct {
	Name         string          `json:"name" binding:"required"`
	Value        decimal.Decimal `json:"value" binding:"required"`
	Type         string          `json:"type" binding:"required,oneof=cash investment real_estate vehicle other"`
	AccountScope string          `json:"accountScope" binding:"omitempty,oneof=personal business"`
}

// UpdateAssetRequest defines the mutable fields of an asset.
type UpdateAssetRequest struct {
	Name         *string          `json:"name,omitempty"`
	Value        *decimal.Decimal `json:"value,omitempty"`
	Type         *string          `json:"type,omitempty" binding:"omitempty,oneof=cash investment real_estate vehicle other"`
	AccountScope *string          `json:"accountScope,omitempty" binding:"omitempty,oneof=personal business"`
}

// AssetResponse defines the data returned for an asset.
type AssetResponse struct {
	AssetID       string          `json:"assetID"`
	Name          string          `json:"name"`
	Value         decimal.Decimal `json:"value"`
	Type          string          `json:"type"`
	IsLiquid      bool            `json:"isLiquid"`
	AccountScope  string          `json:"accountScope"`
	CreatedAt     time.Time       `json:"createdAt"`
	LastUpdatedAt time.Time       `json:"lastUpdatedAt"`
}

// NetWorthResponse is the derived net-worth summary for a user.
type NetWorthResponse struct {
	TotalAssets      decimal.Decimal `json:"totalAssets"`
	TotalLiquid      decimal.Decimal `json:"totalLiquid"`
	TotalLiabilities decimal.Decimal `json:"totalLiabilities"`
	NetWorth         decimal.Decimal `json:"netWorth"`
}

// ToAssetResponse converts a domain Asset to its response DTO
func ToAssetResponse(a *domain.Asset) AssetResponse {
	return AssetResponse{
		AssetID:       a.AssetID,
		Name:          a.Name,
		Value:         a.Value,
		Type:          string(a.Type),
		IsLiquid:      a.Type.IsLiquid(),
		AccountScope:  string(a.AccountScope),
		CreatedAt:     a.CreatedAt,
		LastUpdatedAt: a.LastUpdatedAt,
	}
}

// ToListAssetResponse converts a slice of domain Assets to response DTOs
func ToListAssetResponse(assets []domain.Asset) []AssetResponse {
	res := make([]AssetResponse, len(assets))
	for i := range assets {
		res[i] = ToAssetResponse(&assets[i])
	}
	return res
}

// ToNetWorthResponse converts a domain NetWorthSummary to its response DTO
func ToNetWorthResponse(s domain.NetWorthSummary) NetWorthResponse {
	return NetWorthResponse{
		TotalAssets:      s.TotalAssets,
		TotalLiquid:      s.TotalLiquid,
		TotalLiabilities: s.TotalLiabilities,
		NetWorth:         s.NetWorth,
	}
}
