package services

import (
	"context"
	"fmt"
	"time"

	"github.com/leadup-vn/leadup_backend/internal/core/engine"
	portsrepo "github.com/leadup-vn/leadup_backend/internal/core/ports/repositories"
	portssvc "github.com/leadup-vn/leadup_backend/internal/core/ports/services"
)

// pyramidService loads a user's financial snapshot and evaluates the
// progression ladder over it. The engine itself is shared across users; it
// memoises on input signatures, not on user identity.
type pyramidService struct {
	BaseService
	txnRepo       portsrepo.TransactionReader
	assetRepo     portsrepo.AssetReader
	liabilityRepo portsrepo.LiabilityReader
	ruleRepo      portsrepo.GoldenRuleReader
	engine        *engine.PyramidEngine
}

// NewPyramidService creates a new pyramid service.
func NewPyramidService(
	txnRepo portsrepo.TransactionReader,
	assetRepo portsrepo.AssetReader,
	liabilityRepo portsrepo.LiabilityReader,
	ruleRepo portsrepo.GoldenRuleReader,
	pyramidEngine *engine.PyramidEngine,
) portssvc.PyramidSvcFacade {
	return &pyramidService{
		txnRepo:       txnRepo,
		assetRepo:     assetRepo,
		liabilityRepo: liabilityRepo,
		ruleRepo:      ruleRepo,
		engine:        pyramidEngine,
	}
}

// Ensure implementation matches interface
var _ portssvc.PyramidSvcFacade = (*pyramidService)(nil)

// GetStatus loads the user's transactions for the cashflow window together
// with assets, liabilities and golden rules, then evaluates the ladder.
func (s *pyramidService) GetStatus(ctx context.Context, userID string) (*engine.PyramidStatus, error) {
	windowStart := time.Now().AddDate(0, -3, 0)

	transactions, err := s.txnRepo.ListTransactionsSince(ctx, userID, windowStart)
	if err != nil {
		s.LogError(ctx, err, "Failed to load transactions for pyramid evaluation")
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	assets, err := s.assetRepo.ListAssets(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load assets for pyramid evaluation")
		return nil, fmt.Errorf("failed to load assets: %w", err)
	}

	liabilities, err := s.liabilityRepo.ListLiabilities(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load liabilities for pyramid evaluation")
		return nil, fmt.Errorf("failed to load liabilities: %w", err)
	}

	rules, err := s.ruleRepo.ListGoldenRules(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load golden rules for pyramid evaluation")
		return nil, fmt.Errorf("failed to load golden rules: %w", err)
	}

	status := s.engine.Calculate(userID, transactions, assets, liabilities, rules)
	return &status, nil
}
