package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/leadup-vn/leadup_backend/internal/apperrors"
	"github.com/leadup-vn/leadup_backend/internal/core/domain"
	portsrepo "github.com/leadup-vn/leadup_backend/internal/core/ports/repositories"
	portssvc "github.com/leadup-vn/leadup_backend/internal/core/ports/services"
	"github.com/leadup-vn/leadup_backend/internal/dto"
)

// liabilityService implements the liability operations.
type liabilityService struct {
	BaseService
	liabilityRepo portsrepo.LiabilityRepositoryFacade
}

// NewLiabilityService creates a new liability service.
func NewLiabilityService(liabilityRepo portsrepo.LiabilityRepositoryFacade) portssvc.LiabilitySvcFacade {
	return &liabilityService{liabilityRepo: liabilityRepo}
}

// Ensure implementation matches interface
var _ portssvc.LiabilitySvcFacade = (*liabilityService)(nil)

// CreateLiability records a new liability.
func (s *liabilityService) CreateLiability(ctx context.Context, userID string, req dto.CreateLiabilityRequest) (*domain.Liability, error) {
	if req.Amount.IsNegative() {
		return nil, fmt.Errorf("%w: liability amount must not be negative", apperrors.ErrValidation)
	}

	scope := domain.AccountScope(req.AccountScope)
	if scope == "" {
		scope = domain.ScopePersonal
	}

	now := time.Now()
	liability := domain.Liability{
		LiabilityID:  uuid.NewString(),
		UserID:       userID,
		Name:         req.Name,
		Amount:       req.Amount,
		Type:         domain.LiabilityType(req.Type),
		AccountScope: scope,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.liabilityRepo.SaveLiability(ctx, liability); err != nil {
		s.LogError(ctx, err, "Failed to save liability")
		return nil, fmt.Errorf("failed to create liability: %w", err)
	}

	return &liability, nil
}

// GetLiabilityByID retrieves a single liability owned by the user.
func (s *liabilityService) GetLiabilityByID(ctx context.Context, userID, liabilityID string) (*domain.Liability, error) {
	liability, err := s.liabilityRepo.FindLiabilityByID(ctx, userID, liabilityID)
	if err != nil {
		return nil, fmt.Errorf("failed to get liability: %w", err)
	}
	return liability, nil
}

// ListLiabilities retrieves all liabilities owned by the user.
func (s *liabilityService) ListLiabilities(ctx context.Context, userID string) ([]domain.Liability, error) {
	liabilities, err := s.liabilityRepo.ListLiabilities(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list liabilities")
		return nil, fmt.Errorf("failed to list liabilities: %w", err)
	}
	if liabilities == nil {
		liabilities = []domain.Liability{}
	}
	return liabilities, nil
}

// UpdateLiability applies partial changes to a liability.
func (s *liabilityService) UpdateLiability(ctx context.Context, userID, liabilityID string, req dto.UpdateLiabilityRequest) (*domain.Liability, error) {
	liability, err := s.liabilityRepo.FindLiabilityByID(ctx, userID, liabilityID)
	if err != nil {
		return nil, fmt.Errorf("failed to find liability for update: %w", err)
	}

	if req.Amount != nil {
		if req.Amount.IsNegative() {
			return nil, fmt.Errorf("%w: liability amount must not be negative", apperrors.ErrValidation)
		}
		liability.Amount = *req.Amount
	}
	if req.Name != nil {
		liability.Name = *req.Name
	}
	if req.Type != nil {
		liability.Type = domain.LiabilityType(*req.Type)
	}
	if req.AccountScope != nil {
		liability.AccountScope = domain.AccountScope(*req.AccountScope)
	}
	liability.LastUpdatedAt = time.Now()
	liability.LastUpdatedBy = userID

	if err := s.liabilityRepo.UpdateLiability(ctx, *liability); err != nil {
		s.LogError(ctx, err, "Failed to update liability")
		return nil, fmt.Errorf("failed to update liability: %w", err)
	}

	return liability, nil
}

// DeleteLiability removes a liability owned by the user.
func (s *liabilityService) DeleteLiability(ctx context.Context, userID, liabilityID string) error {
	if err := s.liabilityRepo.DeleteLiability(ctx, userID, liabilityID); err != nil {
		return fmt.Errorf("failed to delete liability: %w", err)
	}
	return nil
}
