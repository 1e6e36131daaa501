package dto

import (
	"time"

	"github.com/leadup-vn/leadup_backend/internal/core/domain"
	"github.com/leadup-vn/leadup_backend/internal/core/engine"
	"github.com/shopspring/decimal"
)

// PlaybookProfileRequest carries the manually entered financial snapshot for
// building an allocation plan.
type PlaybookProfileRequest struct {
	MonthlyIncome   decimal.Decimal `json:"monthlyIncome" binding:"required"`
	EssentialCost   decimal.Decimal `json:"essentialCost"`
	EmergencyFund   decimal.Decimal `json:"emergencyFund"`
	DebtPayMonthly  decimal.Decimal `json:"debtPayMonthly"`
	HasHighRateDebt bool            `json:"hasHighRateDebt"`
}

// ToEngineProfile converts the request to the engine's profile input.
func (r PlaybookProfileRequest) ToEngineProfile() engine.Profile {
	return engine.Profile{
		MonthlyIncome:   r.MonthlyIncome,
		EssentialCost:   r.EssentialCost,
		EmergencyFund:   r.EmergencyFund,
		DebtPayMonthly:  r.DebtPayMonthly,
		HasHighRateDebt: r.HasHighRateDebt,
	}
}

// JarPlanResponse is the resolved allocation for one jar.
type JarPlanResponse struct {
	Key    string          `json:"key"`
	Label  string          `json:"label"`
	Pct    int             `json:"pct"`
	Amount decimal.Decimal `json:"amount"`
	Note   string          `json:"note"`
}

// AllocationResponse is the full playbook output for a profile.
type AllocationResponse struct {
	Tier        string            `json:"tier"`
	Level       string            `json:"level"`
	Jars        []JarPlanResponse `json:"jars"`
	Diagnostics []string          `json:"diagnostics"`
	Actions7d   []string          `json:"actions7d"`
	Actions30d  []string          `json:"actions30d"`
}

// SavePlaybookStateRequest persists the current scenario for later sessions.
type SavePlaybookStateRequest struct {
	MonthlyIncome   decimal.Decimal `json:"monthlyIncome" binding:"required"`
	EssentialCost   decimal.Decimal `json:"essentialCost"`
	EmergencyFund   decimal.Decimal `json:"emergencyFund"`
	DebtPayMonthly  decimal.Decimal `json:"debtPayMonthly"`
	HasHighRateDebt bool            `json:"hasHighRateDebt"`
	BusinessMode    string          `json:"businessMode" binding:"omitempty,oneof=personal business"`
	CustomJarPcts   map[string]int  `json:"customJarPcts,omitempty"`
}

// PlaybookStateResponse is the saved scenario returned to the client.
type PlaybookStateResponse struct {
	MonthlyIncome   decimal.Decimal `json:"monthlyIncome"`
	EssentialCost   decimal.Decimal `json:"essentialCost"`
	EmergencyFund   decimal.Decimal `json:"emergencyFund"`
	DebtPayMonthly  decimal.Decimal `json:"debtPayMonthly"`
	HasHighRateDebt bool            `json:"hasHighRateDebt"`
	BusinessMode    string          `json:"businessMode"`
	CustomJarPcts   map[string]int  `json:"customJarPcts,omitempty"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

// UpdatePlanProgressRequest replaces checklist ticks for one action list.
type UpdatePlanProgressRequest struct {
	Checked map[string]bool `json:"checked" binding:"required"`
}

// PlanProgressResponse is the checklist progress for one action list.
type PlanProgressResponse struct {
	ListKey   string          `json:"listKey"`
	Checked   map[string]bool `json:"checked"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

// InvestmentLadderStepResponse is one rung of the static investment ladder.
type InvestmentLadderStepResponse struct {
	Step        int      `json:"step"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Suitability string   `json:"suitability"`
	RedFlags    []string `json:"redFlags"`
}

// ToAllocationResponse converts an engine AllocationResult to its response DTO
func ToAllocationResponse(res *engine.AllocationResult) AllocationResponse {
	out := AllocationResponse{
		Tier:        string(res.Tier),
		Level:       string(res.Level),
		Jars:        make([]JarPlanResponse, len(res.Jars)),
		Diagnostics: res.Diagnostics,
		Actions7d:   res.Actions7d,
		Actions30d:  res.Actions30d,
	}
	for i, jar := range res.Jars {
		out.Jars[i] = JarPlanResponse{
			Key:    string(jar.Key),
			Label:  jar.Label,
			Pct:    jar.Pct,
			Amount: jar.Amount,
			Note:   jar.Note,
		}
	}
	return out
}

// ToPlaybookStateResponse converts a domain PlaybookState to its response DTO
func ToPlaybookStateResponse(s *domain.PlaybookState) PlaybookStateResponse {
	return PlaybookStateResponse{
		MonthlyIncome:   s.MonthlyIncome,
		EssentialCost:   s.EssentialCost,
		EmergencyFund:   s.EmergencyFund,
		DebtPayMonthly:  s.DebtPayMonthly,
		HasHighRateDebt: s.HasHighRateDebt,
		BusinessMode:    string(s.BusinessMode),
		CustomJarPcts:   s.CustomJarPcts,
		UpdatedAt:       s.UpdatedAt,
	}
}

// ToPlanProgressResponse converts a domain PlanProgress to its response DTO
func ToPlanProgressResponse(p *domain.PlanProgress) PlanProgressResponse {
	return PlanProgressResponse{
		ListKey:   p.ListKey,
		Checked:   p.Checked,
		UpdatedAt: p.UpdatedAt,
	}
}

// ToInvestmentLadderResponse converts the static ladder to response DTOs
func ToInvestmentLadderResponse() []InvestmentLadderStepResponse {
	res := make([]InvestmentLadderStepResponse, len(engine.InvestmentLadder))
	for i, step := range engine.InvestmentLadder {
		res[i] = InvestmentLadderStepResponse{
			Step:        step.Step,
			Title:       step.Title,
			Description: step.Description,
			Suitability: step.Suitability,
			RedFlags:    step.RedFlags,
		}
	}
	return res
}
