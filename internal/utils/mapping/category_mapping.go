package mapping

import (
	"github.com/leadup-vn/leadup_backend/internal/core/domain"
	"github.com/leadup-vn/leadup_backend/internal/models"
)

// ToModelCategory converts a domain Category to a model Category
func ToModelCategory(d domain.Category) models.Category {
	var classification *string
	if d.DefaultClassification != "" {
		s := string(d.DefaultClassification)
		classification = &s
	}
	return models.Category{
		CategoryID:            d.CategoryID,
		UserID:                d.UserID,
		Name:                  d.Name,
		Type:                  string(d.Type),
		Icon:                  d.Icon,
		Color:                 d.Color,
		DefaultClassification: classification,
		AuditFields:           ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainCategory converts a model Category to a domain Category
func ToDomainCategory(m models.Category) domain.Category {
	var classification domain.SpendingClassification
	if m.DefaultClassification != nil {
		classification = domain.SpendingClassification(*m.DefaultClassification)
	}
	return domain.Category{
		CategoryID:            m.CategoryID,
		UserID:                m.UserID,
		Name:                  m.Name,
		Type:                  domain.TransactionType(m.Type),
		Icon:                  m.Icon,
		Color:                 m.Color,
		DefaultClassification: classification,
		AuditFields:           ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainCategorySlice converts a slice of model Categories to domain Categories
func ToDomainCategorySlice(ms []models.Category) []domain.Category {
	ds := make([]domain.Category, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainCategory(m)
	}
	return ds
}
