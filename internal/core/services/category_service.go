package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/leadup-vn/leadup_backend/internal/apperrors"
	"github.com/leadup-vn/leadup_backend/internal/core/domain"
	portsrepo "github.com/leadup-vn/leadup_backend/internal/core/ports/repositories"
	portssvc "github.com/leadup-vn/leadup_backend/internal/core/ports/services"
	"github.com/leadup-vn/leadup_backend/internal/dto"
)

// categoryService implements the category operations.
type categoryService struct {
	BaseService
	categoryRepo portsrepo.CategoryRepositoryFacade
}

// NewCategoryService creates a new category service.
func NewCategoryService(categoryRepo portsrepo.CategoryRepositoryFacade) portssvc.CategorySvcFacade {
	return &categoryService{categoryRepo: categoryRepo}
}

// Ensure implementation matches interface
var _ portssvc.CategorySvcFacade = (*categoryService)(nil)

// SeedDefaultCategories creates the default category set for a new user.
// The seed ids (cat-1..cat-9) are stable per user: the business-income
// passive heuristic depends on cat-9 existing.
func (s *categoryService) SeedDefaultCategories(ctx context.Context, userID string) error {
	now := time.Now()
	categories := domain.SeedCategories()
	for i := range categories {
		categories[i].UserID = userID
		categories[i].AuditFields = domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		}
	}

	if err := s.categoryRepo.SaveCategories(ctx, categories); err != nil {
		s.LogError(ctx, err, "Failed to seed default categories")
		return fmt.Errorf("failed to seed default categories: %w", err)
	}
	return nil
}

// CreateCategory records a new user-defined category.
func (s *categoryService) CreateCategory(ctx context.Context, userID string, req dto.CreateCategoryRequest) (*domain.Category, error) {
	now := time.Now()
	category := domain.Category{
		CategoryID:            uuid.NewString(),
		UserID:                userID,
		Name:                  req.Name,
		Type:                  domain.TransactionType(req.Type),
		Icon:                  req.Icon,
		Color:                 req.Color,
		DefaultClassification: domain.SpendingClassification(req.DefaultClassification),
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.categoryRepo.SaveCategory(ctx, category); err != nil {
		s.LogError(ctx, err, "Failed to save category")
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	return &category, nil
}

// GetCategoryByID retrieves a single category owned by the user.
func (s *categoryService) GetCategoryByID(ctx context.Context, userID, categoryID string) (*domain.Category, error) {
	category, err := s.categoryRepo.FindCategoryByID(ctx, userID, categoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to get category: %w", err)
	}
	return category, nil
}

// ListCategories retrieves all categories owned by the user.
func (s *categoryService) ListCategories(ctx context.Context, userID string) ([]domain.Category, error) {
	categories, err := s.categoryRepo.ListCategories(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list categories")
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	if categories == nil {
		categories = []domain.Category{}
	}
	return categories, nil
}

// UpdateCategory applies partial changes to a category.
func (s *categoryService) UpdateCategory(ctx context.Context, userID, categoryID string, req dto.UpdateCategoryRequest) (*domain.Category, error) {
	category, err := s.categoryRepo.FindCategoryByID(ctx, userID, categoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to find category for update: %w", err)
	}

	if req.Name != nil {
		category.Name = *req.Name
	}
	if req.Icon != nil {
		category.Icon = *req.Icon
	}
	if req.Color != nil {
		category.Color = *req.Color
	}
	if req.DefaultClassification != nil {
		category.DefaultClassification = domain.SpendingClassification(*req.DefaultClassification)
	}
	category.LastUpdatedAt = time.Now()
	category.LastUpdatedBy = userID

	if err := s.categoryRepo.UpdateCategory(ctx, *category); err != nil {
		s.LogError(ctx, err, "Failed to update category")
		return nil, fmt.Errorf("failed to update category: %w", err)
	}

	return category, nil
}

// DeleteCategory removes a category. The reserved business-income category
// cannot be deleted since the passive-income heuristic depends on it.
func (s *categoryService) DeleteCategory(ctx context.Context, userID, categoryID string) error {
	if categoryID == domain.BusinessIncomeCategoryID {
		return fmt.Errorf("%w: the business income category cannot be deleted", apperrors.ErrValidation)
	}
	if err := s.categoryRepo.DeleteCategory(ctx, userID, categoryID); err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}
	return nil
}
