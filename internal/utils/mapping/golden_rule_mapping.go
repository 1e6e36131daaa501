package mapping

import (
	"github.com/leadup-vn/leadup_backend/internal/core/domain"
	"github.com/leadup-vn/leadup_backend/internal/models"
)

// ToModelGoldenRule converts a domain GoldenRule to a model GoldenRule
func ToModelGoldenRule(d domain.GoldenRule) models.GoldenRule {
	return models.GoldenRule{
		RuleID:      d.RuleID,
		UserID:      d.UserID,
		Title:       d.Title,
		Description: d.Description,
		IsCompliant: d.IsCompliant,
		ScoreWeight: d.ScoreWeight,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainGoldenRule converts a model GoldenRule to a domain GoldenRule
func ToDomainGoldenRule(m models.GoldenRule) domain.GoldenRule {
	return domain.GoldenRule{
		RuleID:      m.RuleID,
		UserID:      m.UserID,
		Title:       m.Title,
		Description: m.Description,
		IsCompliant: m.IsCompliant,
		ScoreWeight: m.ScoreWeight,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainGoldenRuleSlice converts a slice of model GoldenRules to domain GoldenRules
func ToDomainGoldenRuleSlice(ms []models.GoldenRule) []domain.GoldenRule {
	ds := make([]domain.GoldenRule, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainGoldenRule(m)
	}
	return ds
}
