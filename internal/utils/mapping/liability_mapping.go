package mapping

import (
	"github.com/leadup-vn/leadup_backend/internal/core/domain"
	"github.com/leadup-vn/leadup_backend/internal/models"
)

// ToModelLiability converts a domain Liability to a model Liability
func ToModelLiability(d domain.Liability) models.Liability {
	return models.Liability{
		LiabilityID:  d.LiabilityID,
		UserID:       d.UserID,
		Name:         d.Name,
		Amount:       d.Amount,
		Type:         string(d.Type),
		AccountScope: string(d.AccountScope),
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainLiability converts a model Liability to a domain Liability
func ToDomainLiability(m models.Liability) domain.Liability {
	return domain.Liability{
		LiabilityID:  m.LiabilityID,
		UserID:       m.UserID,
		Name:         m.Name,
		Amount:       m.Amount,
		Type:         domain.LiabilityType(m.Type),
		AccountScope: domain.AccountScope(m.AccountScope),
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainLiabilitySlice converts a slice of model Liabilities to domain Liabilities
func ToDomainLiabilitySlice(ms []models.Liability) []domain.Liability {
	ds := make([]domain.Liability, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainLiability(m)
	}
	return ds
}
