package services

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/leadup-vn/leadup_backend/internal/core/domain"
	portsrepo "github.com/leadup-vn/leadup_backend/internal/core/ports/repositories"
	portssvc "github.com/leadup-vn/leadup_backend/internal/core/ports/services"
)

// netWorthService derives the net-worth summary from assets and liabilities.
type netWorthService struct {
	BaseService
	assetRepo     portsrepo.AssetReader
	liabilityRepo portsrepo.LiabilityReader
}

// NewNetWorthService creates a new net-worth service.
func NewNetWorthService(assetRepo portsrepo.AssetReader, liabilityRepo portsrepo.LiabilityReader) portssvc.NetWorthSvc {
	return &netWorthService{
		assetRepo:     assetRepo,
		liabilityRepo: liabilityRepo,
	}
}

// Ensure implementation matches interface
var _ portssvc.NetWorthSvc = (*netWorthService)(nil)

// GetNetWorth computes the current net-worth summary for the user.
func (s *netWorthService) GetNetWorth(ctx context.Context, userID string) (domain.NetWorthSummary, error) {
	assets, err := s.assetRepo.ListAssets(ctx, userID)
	if err != nil {
		return domain.NetWorthSummary{}, fmt.Errorf("failed to load assets for net worth: %w", err)
	}
	liabilities, err := s.liabilityRepo.ListLiabilities(ctx, userID)
	if err != nil {
		return domain.NetWorthSummary{}, fmt.Errorf("failed to load liabilities for net worth: %w", err)
	}

	summary := domain.NetWorthSummary{
		TotalAssets:      decimal.Zero,
		TotalLiquid:      decimal.Zero,
		TotalLiabilities: decimal.Zero,
	}
	for _, a := range assets {
		summary.TotalAssets = summary.TotalAssets.Add(a.Value)
		if a.Type.IsLiquid() {
			summary.TotalLiquid = summary.TotalLiquid.Add(a.Value)
		}
	}
	for _, l := range liabilities {
		summary.TotalLiabilities = summary.TotalLiabilities.Add(l.Amount)
	}
	summary.NetWorth = summary.TotalAssets.Sub(summary.TotalLiabilities)

	return summary, nil
}
