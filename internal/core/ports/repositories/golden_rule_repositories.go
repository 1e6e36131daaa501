package repositories

import (
	"context"

	"github.com/leadup-vn/leadup_backend/internal/core/domain"
)

// GoldenRuleReader defines read operations for golden rule data
type GoldenRuleReader interface {
	// FindGoldenRuleByID retrieves a single rule owned by the user.
	FindGoldenRuleByID(ctx context.Context, userID, ruleID string) (*domain.GoldenRule, error)

	// ListGoldenRules retrieves all rules owned by the user, in seed order.
	ListGoldenRules(ctx context.Context, userID string) ([]domain.GoldenRule, error)
}

// GoldenRuleWriter defines write operations for golden rule data
type GoldenRuleWriter interface {
	// SaveGoldenRules persists a batch of rules in one transaction.
	// Used to seed the default set for a new user.
	SaveGoldenRules(ctx context.Context, rules []domain.GoldenRule) error

	// UpdateGoldenRule persists changes to an existing rule (compliance flag).
	UpdateGoldenRule(ctx context.Context, rule domain.GoldenRule) error
}

// GoldenRuleRepositoryFacade combines all golden rule repository interfaces
type GoldenRuleRepositoryFacade interface {
	GoldenRuleReader
	GoldenRuleWriter
}

// GoldenRuleRepositoryWithTx extends the facade with transaction capabilities
type GoldenRuleRepositoryWithTx interface {
	GoldenRuleRepositoryFacade
	TransactionManager
}
