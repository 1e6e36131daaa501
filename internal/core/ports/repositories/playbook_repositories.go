package repositories

import (
	"context"

	"github.com/leadup-vn/leadup_backend/internal/core/domain"
)

// PlaybookReader defines read operations for saved playbook data
type PlaybookReader interface {
	// FindPlaybookState retrieves the user's saved scenario.
	FindPlaybookState(ctx context.Context, userID string) (*domain.PlaybookState, error)

	// FindPlanProgress retrieves checklist progress for one action list.
	FindPlanProgress(ctx context.Context, userID, listKey string) (*domain.PlanProgress, error)
}

// PlaybookWriter defines write operations for saved playbook data
type PlaybookWriter interface {
	// SavePlaybookState inserts or replaces the user's saved scenario.
	SavePlaybookState(ctx context.Context, state domain.PlaybookState) error

	// SavePlanProgress inserts or replaces checklist progress for one list.
	SavePlanProgress(ctx context.Context, progress domain.PlanProgress) error
}

// PlaybookRepositoryFacade combines all playbook repository interfaces
type PlaybookRepositoryFacade interface {
	PlaybookReader
	PlaybookWriter
}

// PlaybookRepositoryWithTx extends the facade with transaction capabilities
type PlaybookRepositoryWithTx interface {
	PlaybookRepositoryFacade
	TransactionManager
}
