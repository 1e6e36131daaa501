package mapping

import (
	"github.com/leadup-vn/leadup_backend/internal/core/domain"
	"github.com/leadup-vn/leadup_backend/internal/models"
)

// ToModelJourneyProgress converts domain JourneyProgress to its model form
func ToModelJourneyProgress(d domain.JourneyProgress) models.JourneyProgress {
	return models.JourneyProgress{
		UserID:      d.UserID,
		Day:         d.Day,
		Completed:   d.Completed,
		Note:        d.Note,
		CompletedAt: d.CompletedAt,
	}
}

// ToDomainJourneyProgress converts model JourneyProgress to its domain form
func ToDomainJourneyProgress(m models.JourneyProgress) domain.JourneyProgress {
	return domain.JourneyProgress{
		UserID:      m.UserID,
		Day:         m.Day,
		Completed:   m.Completed,
		Note:        m.Note,
		CompletedAt: m.CompletedAt,
	}
}

// ToDomainJourneyProgressSlice converts a slice of model JourneyProgress rows
func ToDomainJourneyProgressSlice(ms []models.JourneyProgress) []domain.JourneyProgress {
	ds := make([]domain.JourneyProgress, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainJourneyProgress(m)
	}
	return ds
}
