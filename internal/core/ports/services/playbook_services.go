package services

import (
	"context"

	"github.com/leadup-vn/leadup_backend/internal/core/domain"
	"github.com/leadup-vn/leadup_backend/internal/core/engine"
	"github.com/leadup-vn/leadup_backend/internal/dto"
)

// PlaybookSvcFacade defines the wealth-playbook operations
type PlaybookSvcFacade interface {
	// BuildPlan runs the allocation engine over a profile.
	BuildPlan(ctx context.Context, userID string, req dto.PlaybookProfileRequest) (*engine.AllocationResult, error)

	// SaveState persists the user's scenario for later sessions.
	SaveState(ctx context.Context, userID string, req dto.SavePlaybookStateRequest) (*domain.PlaybookState, error)

	// GetState retrieves the user's saved scenario.
	GetState(ctx context.Context, userID string) (*domain.PlaybookState, error)

	// SavePlanProgress replaces checklist ticks for one action list.
	SavePlanProgress(ctx context.Context, userID, listKey string, req dto.UpdatePlanProgressRequest) (*domain.PlanProgress, error)

	// GetPlanProgress retrieves checklist ticks for one action list.
	GetPlanProgress(ctx context.Context, userID, listKey string) (*domain.PlanProgress, error)
}
