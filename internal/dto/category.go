package dto

import (
	"github.com/leadup-vn/leadup_backend/internal/core/domain"
)

// CreateCategoryRequest defines the data needed to create a category.
type CreateCategoryRequest struct {
	Name                  string `json:"name" binding:"required"`
	Type                  string `json:"type" binding:"required,oneof=income expense"`
	Icon                  string `json:"icon"`
	Color                 string `json:"color"`
	DefaultClassification string `json:"defaultClassification" binding:"omitempty,oneof=need want"`
}

// UpdateCategoryRequest defines the mutable fields of a category.
type UpdateCategoryRequest struct {
	Name                  *string `json:"name,omitempty"`
	Icon                  *string `json:"icon,omitempty"`
	Color                 *string `json:"color,omitempty"`
	DefaultClassification *string `json:"defaultClassification,omitempty" binding:"omitempty,oneof=need want"`
}

// CategoryResponse defines the data returned for a category.
type CategoryResponse struct {
	CategoryID            string `json:"categoryID"`
	Name                  string `json:"name"`
	Type                  string `json:"type"`
	Icon                  string `json:"icon"`
	Color                 string `json:"color"`
	DefaultClassification string `json:"defaultClassification,omitempty"`
}

// ToCategoryResponse converts a domain Category to its response DTO
func ToCategoryResponse(c *domain.Category) CategoryResponse {
	return CategoryResponse{
		CategoryID:            c.CategoryID,
		Name:                  c.Name,
		Type:                  string(c.Type),
		Icon:                  c.Icon,
		Color:                 c.Color,
		DefaultClassification: string(c.DefaultClassification),
	}
}

// ToListCategoryResponse converts a slice of domain Categories to response DTOs
func ToListCategoryResponse(categories []domain.Category) []CategoryResponse {
	res := make([]CategoryResponse, len(categories))
	for i := range categories {
		res[i] = ToCategoryResponse(&categories[i])
	}
	return res
}
