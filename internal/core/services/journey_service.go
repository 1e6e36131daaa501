package services

import (
	"context"
	"fmt"
	"time"

	"github.com/leadup-vn/leadup_backend/internal/apperrors"
	"github.com/leadup-vn/leadup_backend/internal/core/domain"
	portsrepo "github.com/leadup-vn/leadup_backend/internal/core/ports/repositories"
	portssvc "github.com/leadup-vn/leadup_backend/internal/core/ports/services"
	"github.com/leadup-vn/leadup_backend/internal/dto"
)

// journeyService implements the 30-day journey operations. The curriculum is
// static content; only per-user completion rows are persisted.
type journeyService struct {
	BaseService
	journeyRepo portsrepo.JourneyRepositoryFacade
}

// NewJourneyService creates a new journey service.
func NewJourneyService(journeyRepo portsrepo.JourneyRepositoryFacade) portssvc.JourneySvcFacade {
	return &journeyService{journeyRepo: journeyRepo}
}

// Ensure implementation matches interface
var _ portssvc.JourneySvcFacade = (*journeyService)(nil)

// GetJourneyProgress retrieves the user's per-day progress rows.
func (s *journeyService) GetJourneyProgress(ctx context.Context, userID string) ([]domain.JourneyProgress, error) {
	progress, err := s.journeyRepo.ListJourneyProgress(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list journey progress")
		return nil, fmt.Errorf("failed to get journey progress: %w", err)
	}
	return progress, nil
}

// UpdateJourneyDay marks a day complete (or not) with an optional note.
// Un-completing a day clears its completion timestamp.
func (s *journeyService) UpdateJourneyDay(ctx context.Context, userID string, day int, req dto.UpdateJourneyDayRequest) (*domain.JourneyProgress, error) {
	if day < 1 || day > len(domain.JourneyTasks) {
		return nil, fmt.Errorf("%w: day must be between 1 and %d", apperrors.ErrValidation, len(domain.JourneyTasks))
	}

	progress := domain.JourneyProgress{
		UserID:    userID,
		Day:       day,
		Completed: *req.Completed,
		Note:      req.Note,
	}
	if progress.Completed {
		now := time.Now()
		progress.CompletedAt = &now
	}

	if err := s.journeyRepo.UpsertJourneyProgress(ctx, progress); err != nil {
		s.LogError(ctx, err, "Failed to upsert journey progress")
		return nil, fmt.Errorf("failed to update journey day: %w", err)
	}

	return &progress, nil
}
