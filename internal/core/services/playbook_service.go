package services

import (
	"context"
	"fmt"
	"time"

	"github.com/leadup-vn/leadup_backend/internal/apperrors"
	"github.com/leadup-vn/leadup_backend/internal/core/domain"
	"github.com/leadup-vn/leadup_backend/internal/core/engine"
	portsrepo "github.com/leadup-vn/leadup_backend/internal/core/ports/repositories"
	portssvc "github.com/leadup-vn/leadup_backend/internal/core/ports/services"
	"github.com/leadup-vn/leadup_backend/internal/dto"
)

// playbookService implements the wealth-playbook operations. The allocation
// itself is pure computation; only the entered scenario and checklist ticks
// are persisted.
type playbookService struct {
	BaseService
	playbookRepo portsrepo.PlaybookRepositoryFacade
}

// NewPlaybookService creates a new playbook service.
func NewPlaybookService(playbookRepo portsrepo.PlaybookRepositoryFacade) portssvc.PlaybookSvcFacade {
	return &playbookService{playbookRepo: playbookRepo}
}

// Ensure implementation matches interface
var _ portssvc.PlaybookSvcFacade = (*playbookService)(nil)

// BuildPlan runs the allocation engine over a profile.
func (s *playbookService) BuildPlan(ctx context.Context, userID string, req dto.PlaybookProfileRequest) (*engine.AllocationResult, error) {
	if req.MonthlyIncome.IsNegative() || req.EssentialCost.IsNegative() ||
		req.EmergencyFund.IsNegative() || req.DebtPayMonthly.IsNegative() {
		return nil, fmt.Errorf("%w: profile figures must not be negative", apperrors.ErrValidation)
	}

	result := engine.BuildAllocation(req.ToEngineProfile())
	s.LogDebug(ctx, "Built allocation plan", "userID", userID, "tier", result.Tier, "level", result.Level)
	return &result, nil
}

// SaveState persists the user's scenario for later sessions.
func (s *playbookService) SaveState(ctx context.Context, userID string, req dto.SavePlaybookStateRequest) (*domain.PlaybookState, error) {
	if req.MonthlyIncome.IsNegative() || req.EssentialCost.IsNegative() ||
		req.EmergencyFund.IsNegative() || req.DebtPayMonthly.IsNegative() {
		return nil, fmt.Errorf("%w: profile figures must not be negative", apperrors.ErrValidation)
	}
	for key, pct := range req.CustomJarPcts {
		if pct < 0 || pct > 100 {
			return nil, fmt.Errorf("%w: jar percentage for %q must be between 0 and 100", apperrors.ErrValidation, key)
		}
	}

	businessMode := domain.ScopePersonal
	if req.BusinessMode != "" {
		businessMode = domain.AccountScope(req.BusinessMode)
	}

	state := domain.PlaybookState{
		UserID:          userID,
		MonthlyIncome:   req.MonthlyIncome,
		EssentialCost:   req.EssentialCost,
		EmergencyFund:   req.EmergencyFund,
		DebtPayMonthly:  req.DebtPayMonthly,
		HasHighRateDebt: req.HasHighRateDebt,
		BusinessMode:    businessMode,
		CustomJarPcts:   req.CustomJarPcts,
		UpdatedAt:       time.Now(),
	}

	if err := s.playbookRepo.SavePlaybookState(ctx, state); err != nil {
		s.LogError(ctx, err, "Failed to save playbook state")
		return nil, fmt.Errorf("failed to save playbook state: %w", err)
	}

	return &state, nil
}

// GetState retrieves the user's saved scenario.
func (s *playbookService) GetState(ctx context.Context, userID string) (*domain.PlaybookState, error) {
	state, err := s.playbookRepo.FindPlaybookState(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get playbook state: %w", err)
	}
	return state, nil
}

// SavePlanProgress replaces checklist ticks for one action list.
func (s *playbookService) SavePlanProgress(ctx context.Context, userID, listKey string, req dto.UpdatePlanProgressRequest) (*domain.PlanProgress, error) {
	if listKey == "" {
		return nil, fmt.Errorf("%w: list key is required", apperrors.ErrValidation)
	}

	progress := domain.PlanProgress{
		UserID:    userID,
		ListKey:   listKey,
		Checked:   req.Checked,
		UpdatedAt: time.Now(),
	}

	if err := s.playbookRepo.SavePlanProgress(ctx, progress); err != nil {
		s.LogError(ctx, err, "Failed to save plan progress")
		return nil, fmt.Errorf("failed to save plan progress: %w", err)
	}

	return &progress, nil
}

// GetPlanProgress retrieves checklist ticks for one action list.
func (s *playbookService) GetPlanProgress(ctx context.Context, userID, listKey string) (*domain.PlanProgress, error) {
	progress, err := s.playbookRepo.FindPlanProgress(ctx, userID, listKey)
	if err != nil {
		return nil, fmt.Errorf("failed to get plan progress: %w", err)
	}
	return progress, nil
}
