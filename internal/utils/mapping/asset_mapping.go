package mapping

import (
	"github.com/leadup-vn/leadup_backend/internal/core/domain"
	"github.com/leadup-vn/leadup_backend/internal/models"
)

// ToModelAsset converts a domain Asset to a model Asset
func ToModelAsset(d domain.Asset) models.Asset {
	return models.Asset{
		AssetID:      d.AssetID,
		UserID:       d.UserID,
		Name:         d.Name,
		Value:        d.Value,
		Type:         string(d.Type),
		AccountScope: string(d.AccountScope),
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainAsset converts a model Asset to a domain Asset
func ToDomainAsset(m models.Asset) domain.Asset {
	return domain.Asset{
		AssetID:      m.AssetID,
		UserID:       m.UserID,
		Name:         m.Name,
		Value:        m.Value,
		Type:         domain.AssetType(m.Type),
		AccountScope: domain.AccountScope(m.AccountScope),
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainAssetSlice converts a slice of model Assets to domain Assets
func ToDomainAssetSlice(ms []models.Asset) []domain.Asset {
	ds := make([]domain.Asset, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainAsset(m)
	}
	return ds
}
