package repositories

import (
	"context"

	"github.com/leadup-vn/leadup_backend/internal/core/domain"
)

// LiabilityReader defines read operations for liability data
type LiabilityReader interface {
	// FindLiabilityByID retrieves a single liability owned by the user.
	FindLiabilityByID(ctx context.Context, userID, liabilityID string) (*domain.Liability, error)

	// ListLiabilities retrieves all liabilities owned by the user.
	ListLiabilities(ctx context.Context, userID string) ([]domain.Liability, error)
}

// LiabilityWriter defines write operations for liability data
type LiabilityWriter interface {
	// SaveLiability persists a new liability.
	SaveLiability(ctx context.Context, liability domain.Liability) error

	// UpdateLiability persists changes to an existing liability.
	UpdateLiability(ctx context.Context, liability domain.Liability) error

	// DeleteLiability removes a liability owned by the user.
	DeleteLiability(ctx context.Context, userID, liabilityID string) error
}

// LiabilityRepositoryFacade combines all liability repository interfaces
type LiabilityRepositoryFacade interface {
	LiabilityReader
	LiabilityWriter
}

// LiabilityRepositoryWithTx extends the facade with transaction capabilities
type LiabilityRepositoryWithTx interface {
	LiabilityRepositoryFacade
	TransactionManager
}
