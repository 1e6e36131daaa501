package repositories

import (
	"context"

	"github.com/leadup-vn/leadup_backend/internal/core/domain"
)

// JourneyReader defines read operations for journey progress data
type JourneyReader interface {
	// ListJourneyProgress retrieves the user's per-day progress rows ordered
	// by day. Days without a row have simply not been touched yet.
	ListJourneyProgress(ctx context.Context, userID string) ([]domain.JourneyProgress, error)
}

// JourneyWriter defines write operations for journey progress data
type JourneyWriter interface {
	// UpsertJourneyProgress inserts or updates the progress row for one day.
	UpsertJourneyProgress(ctx context.Context, progress domain.JourneyProgress) error
}

// JourneyRepositoryFacade combines all journey repository interfaces
type JourneyRepositoryFacade interface {
	JourneyReader
	JourneyWriter
}

// JourneyRepositoryWithTx extends the facade with transaction capabilities
type JourneyRepositoryWithTx interface {
	JourneyRepositoryFacade
	TransactionManager
}
