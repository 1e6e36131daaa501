package services

import (
	"context"

	"github.com/leadup-vn/leadup_backend/internal/core/domain"
	"github.com/leadup-vn/leadup_backend/internal/dto"
)

// AssetSvcFacade defines asset operations
type AssetSvcFacade interface {
	// CreateAsset records a new asset.
	CreateAsset(ctx context.Context, userID string, req dto.CreateAssetRequest) (*domain.Asset, error)

	// GetAssetByID retrieves a single asset owned by the user.
	GetAssetByID(ctx context.Context, userID, assetID string) (*domain.Asset, error)

	// ListAssets retrieves all assets owned by the user.
	ListAssets(ctx context.Context, userID string) ([]domain.Asset, error)

	// UpdateAsset applies partial changes to an asset.
	UpdateAsset(ctx context.Context, userID, assetID string, req dto.UpdateAssetRequest) (*domain.Asset, error)

	// DeleteAsset removes an asset owned by the user.
	DeleteAsset(ctx context.Context, userID, assetID string) error
}

// LiabilitySvcFacade defines liability operations
type LiabilitySvcFacade interface {
	// CreateLiability records a new liability.
	CreateLiability(ctx context.Context, userID string, req dto.CreateLiabilityRequest) (*domain.Liability, error)

	// GetLiabilityByID retrieves a single liability owned by the user.
	GetLiabilityByID(ctx context.Context, userID, liabilityID string) (*domain.Liability, error)

	// ListLiabilities retrieves all liabilities owned by the user.
	ListLiabilities(ctx context.Context, userID string) ([]domain.Liability, error)

	// UpdateLiability applies partial changes to a liability.
	UpdateLiability(ctx context.Context, userID, liabilityID string, req dto.UpdateLiabilityRequest) (*domain.Liability, error)

	// DeleteLiability removes a liability owned by the user.
	DeleteLiability(ctx context.Context, userID, liabilityID string) error
}

// NetWorthSvc derives the net-worth summary from assets and liabilities.
type NetWorthSvc interface {
	// GetNetWorth computes the current net-worth summary for the user.
	GetNetWorth(ctx context.Context, userID string) (domain.NetWorthSummary, error)
}
