package repositories

import (
	"context"

	"github.com/leadup-vn/leadup_backend/internal/core/domain"
)

// AssetReader defines read operations for asset data
type AssetReader interface {
	// FindAssetByID retrieves a single asset owned by the user.
	FindAssetByID(ctx context.Context, userID, assetID string) (*domain.Asset, error)

	// ListAssets retrieves all assets owned by the user.
	ListAssets(ctx context.Context, userID string) ([]domain.Asset, error)
}

// AssetWriter defines write operations for asset data
type AssetWriter interface {
	// SaveAsset persists a new asset.
	SaveAsset(ctx context.Context, asset domain.Asset) error

	// UpdateAsset persists changes to an existing asset.
	UpdateAsset(ctx context.Context, asset domain.Asset) error

	// DeleteAsset removes an asset owned by the user.
	DeleteAsset(ctx context.Context, userID, assetID string) error
}

// AssetRepositoryFacade combines all asset repository interfaces
type AssetRepositoryFacade interface {
	AssetReader
	AssetWriter
}

// AssetRepositoryWithTx extends the facade with transaction capabilities
type AssetRepositoryWithTx interface {
	AssetRepositoryFacade
	TransactionManager
}
