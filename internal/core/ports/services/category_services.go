package services

import (
	"context"

	"github.com/leadup-vn/leadup_backend/internal/core/domain"
	"github.com/leadup-vn/leadup_backend/internal/dto"
)

// CategorySvcFacade defines category operations
type CategorySvcFacade interface {
	// SeedDefaultCategories creates the default category set for a new user.
	SeedDefaultCategories(ctx context.Context, userID string) error

	// CreateCategory records a new user-defined category.
	CreateCategory(ctx context.Context, userID string, req dto.CreateCategoryRequest) (*domain.Category, error)

	// GetCategoryByID retrieves a single category owned by the user.
	GetCategoryByID(ctx context.Context, userID, categoryID string) (*domain.Category, error)

	// ListCategories retrieves all categories owned by the user.
	ListCategories(ctx context.Context, userID string) ([]domain.Category, error)

	// UpdateCategory applies partial changes to a category.
	UpdateCategory(ctx context.Context, userID, categoryID string, req dto.UpdateCategoryRequest) (*domain.Category, error)

	// DeleteCategory removes a category. The reserved business-income
	// category cannot be deleted.
	DeleteCategory(ctx context.Context, userID, categoryID string) error
}
