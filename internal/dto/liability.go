package dto

import (
	"time"

	"github.com/leadup-vn/leadup_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateLiabilityRequest defines the data needed to create a liability.
type CreateLiabilityRequest struct {
	Name         string          `json:"name" binding:"required"`
	Amount       decimal.Decimal `json:"amount" binding:"required"`
	Type         string          `json:"type" binding:"required,oneof=loan credit_card mortgage other"`
	AccountScope string          `json:"accountScope" binding:"omitempty,oneof=personal business"`
}

// UpdateLiabilityRequest defines the mutable fields of a liability.
type UpdateLiabilityRequest struct {
	Name         *string          `json:"name,omitempty"`
	Amount       *decimal.Decimal `json:"amount,omitempty"`
	Type         *string          `json:"type,omitempty" binding:"omitempty,oneof=loan credit_card mortgage other"`
	AccountScope *string          `json:"accountScope,omitempty" binding:"omitempty,oneof=personal business"`
}

// LiabilityResponse defines the data returned for a liability.
type LiabilityResponse struct {
	LiabilityID   string          `json:"liabilityID"`
	Name          string          `json:"name"`
	Amount        decimal.Decimal `json:"amount"`
	Type          string          `json:"type"`
	AccountScope  string          `json:"accountScope"`
	CreatedAt     time.Time       `json:"createdAt"`
	LastUpdatedAt time.Time       `json:"lastUpdatedAt"`
}

// ToLiabilityResponse converts a domain Liability to its response DTO
func ToLiabilityResponse(l *domain.Liability) LiabilityResponse {
	return LiabilityResponse{
		LiabilityID:   l.LiabilityID,
		Name:          l.Name,
		Amount:        l.Amount,
		Type:          string(l.Type),
		AccountScope:  string(l.AccountScope),
		CreatedAt:     l.CreatedAt,
		LastUpdatedAt: l.LastUpdatedAt,
	}
}

// ToListLiabilityResponse converts a slice of domain Liabilities to response DTOs
func ToListLiabilityResponse(liabilities []domain.Liability) []LiabilityResponse {
	res := make([]LiabilityResponse, len(liabilities))
	for i := range liabilities {
		res[i] = ToLiabilityResponse(&liabilities[i])
	}
	return res
}
