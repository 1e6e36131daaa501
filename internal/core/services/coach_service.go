package services

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/leadup-vn/leadup_backend/internal/apperrors"
	portssvc "github.com/leadup-vn/leadup_backend/internal/core/ports/services"
	"github.com/leadup-vn/leadup_backend/internal/dto"
	"github.com/leadup-vn/leadup_backend/internal/platform/config"
)

const coachSystemPrompt = `You are Lead Up's personal finance coach for Vietnamese users. ` +
	`Answer in the language the user writes in. Be warm, concrete and brief. ` +
	`Ground advice in the user's snapshot below; never invent numbers. ` +
	`Amounts are in VND. You are a coach, not a licensed advisor: suggest habits ` +
	`and next steps, never specific securities.`

// coachService answers chat messages with a Gemini model grounded in the
// user's pyramid standing and net worth. Without an API key it degrades to a
// canned reply instead of failing the route.
type coachService struct {
	BaseService
	cfg        *config.Config
	pyramidSvc portssvc.PyramidSvcFacade
	netWorth   portssvc.NetWorthSvc
}

// NewCoachService creates a new coach service.
func NewCoachService(cfg *config.Config, pyramidSvc portssvc.PyramidSvcFacade, netWorth portssvc.NetWorthSvc) portssvc.CoachSvcFacade {
	return &coachService{
		cfg:        cfg,
		pyramidSvc: pyramidSvc,
		netWorth:   netWorth,
	}
}

// Ensure implementation matches interface
var _ portssvc.CoachSvcFacade = (*coachService)(nil)

// Chat sends the message plus prior turns to the model and returns its reply.
func (s *coachService) Chat(ctx context.Context, userID string, req dto.CoachChatRequest) (string, error) {
	snapshot, err := s.buildSnapshot(ctx, userID)
	if err != nil {
		return "", err
	}

	if s.cfg.GeminiAPIKey == "" {
		s.LogInfo(ctx, "Coach called without a Gemini API key, returning canned reply")
		return "Xin chào! The coach is not configured yet. " + snapshot, nil
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:      s.cfg.GeminiAPIKey,
		HTTPOptions: genai.HTTPOptions{APIVersion: "v1"},
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to create genai client")
		return "", fmt.Errorf("%w: %v", apperrors.ErrCoachUnavailable, err)
	}

	contents := make([]*genai.Content, 0, len(req.History)+2)
	contents = append(contents, &genai.Content{
		Role:  "user",
		Parts: []*genai.Part{{Text: coachSystemPrompt + "\n\n" + snapshot}},
	})
	for _, turn := range req.History {
		contents = append(contents, &genai.Content{
			Role:  turn.Role,
			Parts: []*genai.Part{{Text: turn.Content}},
		})
	}
	contents = append(contents, &genai.Content{
		Role:  "user",
		Parts: []*genai.Part{{Text: req.Message}},
	})

	resp, err := client.Models.GenerateContent(ctx, s.cfg.GeminiModel, contents, nil)
	if err != nil {
		s.LogError(ctx, err, "Gemini request failed")
		return "", fmt.Errorf("%w: %v", apperrors.ErrCoachUnavailable, err)
	}

	reply := resp.Text()
	if reply == "" {
		return "", fmt.Errorf("%w: empty model response", apperrors.ErrCoachUnavailable)
	}
	return reply, nil
}

// buildSnapshot condenses the user's current standing into prompt text.
func (s *coachService) buildSnapshot(ctx context.Context, userID string) (string, error) {
	status, err := s.pyramidSvc.GetStatus(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("failed to load pyramid status for coach: %w", err)
	}
	summary, err := s.netWorth.GetNetWorth(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("failed to load net worth for coach: %w", err)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "User snapshot:\n")
	fmt.Fprintf(&b, "- Pyramid level: %d (%s)\n", status.CurrentLevel.ID, status.CurrentLevel.Name)
	fmt.Fprintf(&b, "- Avg monthly income: %.0f VND, avg monthly expense: %.0f VND\n",
		status.Metrics.AvgIncome, status.Metrics.AvgExpense)
	fmt.Fprintf(&b, "- Emergency fund: %.1f months of spending\n", status.Metrics.EmergencyFundMonths)
	fmt.Fprintf(&b, "- Passive income: %.0f VND/month\n", status.Metrics.PassiveIncome)
	fmt.Fprintf(&b, "- Net worth: %s VND (assets %s, liabilities %s)\n",
		summary.NetWorth.StringFixed(0), summary.TotalAssets.StringFixed(0), summary.TotalLiabilities.StringFixed(0))
	fmt.Fprintf(&b, "- Golden-rule compliance: %d/100\n", status.Metrics.ComplianceScore)
	if len(status.NextLevelConditions) > 0 {
		fmt.Fprintf(&b, "- To reach the next level: %s\n", strings.Join(status.NextLevelConditions, "; "))
	}
	return b.String(), nil
}
