package services

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/leadup-vn/leadup_backend/internal/core/domain"
	portsrepo "github.com/leadup-vn/leadup_backend/internal/core/ports/repositories"
	portssvc "github.com/leadup-vn/leadup_backend/internal/core/ports/services"
)

// goldenRuleService implements the golden-rule operations.
type goldenRuleService struct {
	BaseService
	ruleRepo portsrepo.GoldenRuleRepositoryFacade
}

// NewGoldenRuleService creates a new golden-rule service.
func NewGoldenRuleService(ruleRepo portsrepo.GoldenRuleRepositoryFacade) portssvc.GoldenRuleSvcFacade {
	return &goldenRuleService{ruleRepo: ruleRepo}
}

// Ensure implementation matches interface
var _ portssvc.GoldenRuleSvcFacade = (*goldenRuleService)(nil)

// ComplianceScore is the unweighted percentage of compliant rules, rounded
// to the nearest integer. An empty rule set scores zero.
func ComplianceScore(rules []domain.GoldenRule) int {
	if len(rules) == 0 {
		return 0
	}
	compliant := 0
	for _, r := range rules {
		if r.IsCompliant {
			compliant++
		}
	}
	return int(math.Round(100 * float64(compliant) / float64(len(rules))))
}

// SeedDefaultGoldenRules creates the default rule set for a new user.
func (s *goldenRuleService) SeedDefaultGoldenRules(ctx context.Context, userID string) error {
	now := time.Now()
	rules := domain.SeedGoldenRules()
	for i := range rules {
		rules[i].UserID = userID
		rules[i].AuditFields = domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		}
	}

	if err := s.ruleRepo.SaveGoldenRules(ctx, rules); err != nil {
		s.LogError(ctx, err, "Failed to seed golden rules")
		return fmt.Errorf("failed to seed golden rules: %w", err)
	}
	return nil
}

// ListGoldenRules retrieves all rules with the current compliance score.
func (s *goldenRuleService) ListGoldenRules(ctx context.Context, userID string) ([]domain.GoldenRule, int, error) {
	rules, err := s.ruleRepo.ListGoldenRules(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list golden rules")
		return nil, 0, fmt.Errorf("failed to list golden rules: %w", err)
	}
	if rules == nil {
		rules = []domain.GoldenRule{}
	}
	return rules, ComplianceScore(rules), nil
}

// SetCompliance toggles one rule's self-assessed compliance.
func (s *goldenRuleService) SetCompliance(ctx context.Context, userID, ruleID string, isCompliant bool) (*domain.GoldenRule, error) {
	rule, err := s.ruleRepo.FindGoldenRuleByID(ctx, userID, ruleID)
	if err != nil {
		return nil, fmt.Errorf("failed to find golden rule: %w", err)
	}

	rule.IsCompliant = isCompliant
	rule.LastUpdatedAt = time.Now()
	rule.LastUpdatedBy = userID

	if err := s.ruleRepo.UpdateGoldenRule(ctx, *rule); err != nil {
		s.LogError(ctx, err, "Failed to update golden rule")
		return nil, fmt.Errorf("failed to update golden rule: %w", err)
	}

	return rule, nil
}
