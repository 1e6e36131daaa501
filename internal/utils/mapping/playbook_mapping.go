package mapping

import (
	"encoding/json"
	"fmt"

	"github.com/leadup-vn/leadup_backend/internal/core/domain"
	"github.com/leadup-vn/leadup_backend/internal/models"
)

// ToModelPlaybookState converts a domain PlaybookState to its model form,
// serializing the jar overrides to JSON for the JSONB column.
func ToModelPlaybookState(d domain.PlaybookState) (models.PlaybookState, error) {
	var customPcts []byte
	if len(d.CustomJarPcts) > 0 {
		b, err := json.Marshal(d.CustomJarPcts)
		if err != nil {
			return models.PlaybookState{}, fmt.Errorf("failed to marshal custom jar percentages: %w", err)
		}
		customPcts = b
	}
	return models.PlaybookState{
		UserID:          d.UserID,
		MonthlyIncome:   d.MonthlyIncome,
		EssentialCost:   d.EssentialCost,
		EmergencyFund:   d.EmergencyFund,
		DebtPayMonthly:  d.DebtPayMonthly,
		HasHighRateDebt: d.HasHighRateDebt,
		BusinessMode:    string(d.BusinessMode),
		CustomJarPcts:   customPcts,
		UpdatedAt:       d.UpdatedAt,
	}, nil
}

// ToDomainPlaybookState converts a model PlaybookState to its domain form.
func ToDomainPlaybookState(m models.PlaybookState) (domain.PlaybookState, error) {
	var customPcts map[string]int
	if len(m.CustomJarPcts) > 0 {
		if err := json.Unmarshal(m.CustomJarPcts, &customPcts); err != nil {
			return domain.PlaybookState{}, fmt.Errorf("failed to unmarshal custom jar percentages: %w", err)
		}
	}
	return domain.PlaybookState{
		UserID:          m.UserID,
		MonthlyIncome:   m.MonthlyIncome,
		EssentialCost:   m.EssentialCost,
		EmergencyFund:   m.EmergencyFund,
		DebtPayMonthly:  m.DebtPayMonthly,
		HasHighRateDebt: m.HasHighRateDebt,
		BusinessMode:    domain.AccountScope(m.BusinessMode),
		CustomJarPcts:   customPcts,
		UpdatedAt:       m.UpdatedAt,
	}, nil
}

// ToModelPlanProgress converts domain PlanProgress to its model form.
func ToModelPlanProgress(d domain.PlanProgress) (models.PlanProgress, error) {
	checked, err := json.Marshal(d.Checked)
	if err != nil {
		return models.PlanProgress{}, fmt.Errorf("failed to marshal plan progress: %w", err)
	}
	return models.PlanProgress{
		UserID:    d.UserID,
		ListKey:   d.ListKey,
		Checked:   checked,
		UpdatedAt: d.UpdatedAt,
	}, nil
}

// ToDomainPlanProgress converts model PlanProgress to its domain form.
func ToDomainPlanProgress(m models.PlanProgress) (domain.PlanProgress, error) {
	checked := map[string]bool{}
	if len(m.Checked) > 0 {
		if err := json.Unmarshal(m.Checked, &checked); err != nil {
			return domain.PlanProgress{}, fmt.Errorf("failed to unmarshal plan progress: %w", err)
		}
	}
	return domain.PlanProgress{
		UserID:    m.UserID,
		ListKey:   m.ListKey,
		Checked:   checked,
		UpdatedAt: m.UpdatedAt,
	}, nil
}
