package engine

import "github.com/leadup-vn/leadup_backend/internal/core/domain"

// PassiveIncomeClassifier decides whether an income transaction counts as
// passive. It is a strategy so the detection rule can change without
// touching the level ladder.
type PassiveIncomeClassifier interface {
	IsPassive(t domain.Transaction) bool
}

// CategoryFlagClassifier is the default rule: income booked against the
// reserved business-income category, or explicitly flagged as coming from an
// asset, is passive. This is a heuristic, not a formal tag.
type CategoryFlagClassifier struct{}

func (CategoryFlagClassifier) IsPassive(t domain.Transaction) bool {
	return t.CategoryID == domain.BusinessIncomeCategoryID || t.IsAsset
}
