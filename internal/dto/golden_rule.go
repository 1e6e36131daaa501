package dto

import (
	"github.com/leadup-vn/leadup_backend/internal/core/domain"
)

// UpdateGoldenRuleRequest toggles a rule's self-assessed compliance.
type UpdateGoldenRuleRequest struct {
	IsCompliant *bool `json:"isCompliant" binding:"required"`
}

// GoldenRuleResponse defines the data returned for a golden rule.
type GoldenRuleResponse struct {
	RuleID      string `json:"ruleID"`
	Title       string `json:"title"`
	Description string `json:"description"`
	IsCompliant bool   `json:"isCompliant"`
	ScoreWeight int    `json:"scoreWeight"`
}

// GoldenRulesSummaryResponse is the full rule list plus the unweighted
// compliance score used elsewhere in the app.
type GoldenRulesSummaryResponse struct {
	Rules           []GoldenRuleResponse `json:"rules"`
	ComplianceScore int                  `json:"complianceScore"`
}

// ToGoldenRuleResponse converts a domain GoldenRule to its response DTO
func ToGoldenRuleResponse(r *domain.GoldenRule) GoldenRuleResponse {
	return GoldenRuleResponse{
		RuleID:      r.RuleID,
		Title:       r.Title,
		Description: r.Description,
		IsCompliant: r.IsCompliant,
		ScoreWeight: r.ScoreWeight,
	}
}

// ToGoldenRulesSummaryResponse converts rules plus score to the summary DTO
func ToGoldenRulesSummaryResponse(rules []domain.GoldenRule, score int) GoldenRulesSummaryResponse {
	res := GoldenRulesSummaryResponse{
		Rules:           make([]GoldenRuleResponse, len(rules)),
		ComplianceScore: score,
	}
	for i := range rules {
		res.Rules[i] = ToGoldenRuleResponse(&rules[i])
	}
	return res
}
