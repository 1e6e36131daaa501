package services

import (
	"context"

	"github.com/leadup-vn/leadup_backend/internal/dto"
)

// CoachSvcFacade defines the AI coaching chat operations
type CoachSvcFacade interface {
	// Chat sends a message (with prior turns) to the coach and returns the
	// reply. The coach is grounded in the user's current financial snapshot.
	Chat(ctx context.Context, userID string, req dto.CoachChatRequest) (string, error)
}
