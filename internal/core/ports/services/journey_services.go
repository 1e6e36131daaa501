package services

import (
	"context"

	"github.com/leadup-vn/leadup_backend/internal/core/domain"
	"github.com/leadup-vn/leadup_backend/internal/dto"
)

// JourneySvcFacade defines operations on the 30-day journey
type JourneySvcFacade interface {
	// GetJourneyProgress retrieves the user's per-day progress rows.
	GetJourneyProgress(ctx context.Context, userID string) ([]domain.JourneyProgress, error)

	// UpdateJourneyDay marks a day complete (or not) with an optional note.
	UpdateJourneyDay(ctx context.Context, userID string, day int, req dto.UpdateJourneyDayRequest) (*domain.JourneyProgress, error)
}
