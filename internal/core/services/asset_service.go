package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/leadup-vn/leadup_backend/internal/apperrors"
	"github.com/leadup-vn/leadup_backend/internal/core/domain"
	portsrepo "github.com/leadup-vn/leadup_backend/internal/core/ports/repositories"
	portssvc "github.com/leadup-vn/leadup_backend/internal/core/ports/services"
	"github.com/leadup-vn/leadup_backend/internal/dto"
)

// assetService implements the asset operations.
type assetService struct {
	BaseService
	assetRepo portsrepo.AssetRepositoryFacade
}

// NewAssetService creates a new asset service.
func NewAssetService(assetRepo portsrepo.AssetRepositoryFacade) portssvc.AssetSvcFacade {
	return &assetService{assetRepo: assetRepo}
}

// Ensure implementation matches interface
var _ portssvc.AssetSvcFacade = (*assetService)(nil)

// CreateAsset records a new asset.
func (s *assetService) CreateAsset(ctx context.Context, userID string, req dto.CreateAssetRequest) (*domain.Asset, error) {
	if req.Value.IsNegative() {
		return nil, fmt.Errorf("%w: asset value must not be negative", apperrors.ErrValidation)
	}

	scope := domain.AccountScope(req.AccountScope)
	if scope == "" {
		scope = domain.ScopePersonal
	}

	now := time.Now()
	asset := domain.Asset{
		AssetID:      uuid.NewString(),
		UserID:       userID,
		Name:         req.Name,
		Value:        req.Value,
		Type:         domain.AssetType(req.Type),
		AccountScope: scope,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.assetRepo.SaveAsset(ctx, asset); err != nil {
		s.LogError(ctx, err, "Failed to save asset")
		return nil, fmt.Errorf("failed to create asset: %w", err)
	}

	return &asset, nil
}

// GetAssetByID retrieves a single asset owned by the user.
func (s *assetService) GetAssetByID(ctx context.Context, userID, assetID string) (*domain.Asset, error) {
	asset, err := s.assetRepo.FindAssetByID(ctx, userID, assetID)
	if err != nil {
		return nil, fmt.Errorf("failed to get asset: %w", err)
	}
	return asset, nil
}

// ListAssets retrieves all assets owned by the user.
func (s *assetService) ListAssets(ctx context.Context, userID string) ([]domain.Asset, error) {
	assets, err := s.assetRepo.ListAssets(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list assets")
		return nil, fmt.Errorf("failed to list assets: %w", err)
	}
	if assets == nil {
		assets = []domain.Asset{}
	}
	return assets, nil
}

// UpdateAsset applies partial changes to an asset.
func (s *assetService) UpdateAsset(ctx context.Context, userID, assetID string, req dto.UpdateAssetRequest) (*domain.Asset, error) {
	asset, err := s.assetRepo.FindAssetByID(ctx, userID, assetID)
	if err != nil {
		return nil, fmt.Errorf("failed to find asset for update: %w", err)
	}

	if req.Value != nil {
		if req.Value.IsNegative() {
			return nil, fmt.Errorf("%w: asset value must not be negative", apperrors.ErrValidation)
		}
		asset.Value = *req.Value
	}
	if req.Name != nil {
		asset.Name = *req.Name
	}
	if req.Type != nil {
		asset.Type = domain.AssetType(*req.Type)
	}
	if req.AccountScope != nil {
		asset.AccountScope = domain.AccountScope(*req.AccountScope)
	}
	asset.LastUpdatedAt = time.Now()
	asset.LastUpdatedBy = userID

	if err := s.assetRepo.UpdateAsset(ctx, *asset); err != nil {
		s.LogError(ctx, err, "Failed to update asset")
		return nil, fmt.Errorf("failed to update asset: %w", err)
	}

	return asset, nil
}

// DeleteAsset removes an asset owned by the user.
func (s *assetService) DeleteAsset(ctx context.Context, userID, assetID string) error {
	if err := s.assetRepo.DeleteAsset(ctx, userID, assetID); err != nil {
		return fmt.Errorf("failed to delete asset: %w", err)
	}
	return nil
}
