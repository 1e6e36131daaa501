package services

import (
	"context"

	"github.com/leadup-vn/leadup_backend/internal/core/engine"
)

// PyramidSvcFacade defines the pyramid progression operations
type PyramidSvcFacade interface {
	// GetStatus loads the user's financial snapshot and evaluates the
	// progression ladder over it.
	GetStatus(ctx context.Context, userID string) (*engine.PyramidStatus, error)
}
