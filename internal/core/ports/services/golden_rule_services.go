package services

import (
	"context"

	"github.com/leadup-vn/leadup_backend/internal/core/domain"
)

// GoldenRuleSvcFacade defines golden-rule operations
type GoldenRuleSvcFacade interface {
	// SeedDefaultGoldenRules creates the default rule set for a new user.
	SeedDefaultGoldenRules(ctx context.Context, userID string) error

	// ListGoldenRules retrieves all rules with the current compliance score.
	ListGoldenRules(ctx context.Context, userID string) ([]domain.GoldenRule, int, error)

	// SetCompliance toggles one rule's self-assessed compliance.
	SetCompliance(ctx context.Context, userID, ruleID string, isCompliant bool) (*domain.GoldenRule, error)
}
