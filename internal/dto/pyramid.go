package dto

import (
	"github.com/leadup-vn/leadup_backend/internal/core/engine"
)

// PyramidLevelResponse is the display metadata for one pyramid level.
type PyramidLevelResponse struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Criteria    string `json:"criteria"`
	Icon        string `json:"icon"`
}

// PyramidMetricsResponse carries the aggregates behind the verdict.
type PyramidMetricsResponse struct {
	AvgIncome           float64 `json:"avgIncome"`
	AvgExpense          float64 `json:"avgExpense"`
	EmergencyFundMonths float64 `json:"emergencyFundMonths"`
	PassiveIncome       float64 `json:"passiveIncome"`
	NetWorth            float64 `json:"netWorth"`
	ComplianceScore     int     `json:"complianceScore"`
}

// PyramidStatusResponse is the full progression verdict for the user.
type PyramidStatusResponse struct {
	CurrentLevel        PyramidLevelResponse   `json:"currentLevel"`
	Metrics             PyramidMetricsResponse `json:"metrics"`
	Reasons             []string               `json:"reasons"`
	NextLevelConditions []string               `json:"nextLevelConditions"`
	Actions7d           []string               `json:"actions7d"`
}

// ToPyramidLevelResponse converts engine level info to its response DTO
func ToPyramidLevelResponse(l engine.PyramidLevelInfo) PyramidLevelResponse {
	return PyramidLevelResponse{
		ID:          l.ID,
		Name:        l.Name,
		Description: l.Description,
		Criteria:    l.Criteria,
		Icon:        l.Icon,
	}
}

// ToListPyramidLevelResponse converts the static level list to response DTOs
func ToListPyramidLevelResponse() []PyramidLevelResponse {
	res := make([]PyramidLevelResponse, len(engine.PyramidLevels))
	for i, l := range engine.PyramidLevels {
		res[i] = ToPyramidLevelResponse(l)
	}
	return res
}

// ToPyramidStatusResponse converts an engine PyramidStatus to its response DTO
func ToPyramidStatusResponse(s *engine.PyramidStatus) PyramidStatusResponse {
	return PyramidStatusResponse{
		CurrentLevel: ToPyramidLevelResponse(s.CurrentLevel),
		Metrics: PyramidMetricsResponse{
			AvgIncome:           s.Metrics.AvgIncome,
			AvgExpense:          s.Metrics.AvgExpense,
			EmergencyFundMonths: s.Metrics.EmergencyFundMonths,
			PassiveIncome:       s.Metrics.PassiveIncome,
			NetWorth:            s.Metrics.NetWorth,
			ComplianceScore:     s.Metrics.ComplianceScore,
		},
		Reasons:             s.Reasons,
		NextLevelConditions: s.NextLevelConditions,
		Actions7d:           s.Actions7d,
	}
}
