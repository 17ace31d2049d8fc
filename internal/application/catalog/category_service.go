package catalog

import (
	"context"

	"github.com/catalog/backend/internal/domain/catalog"
	"github.com/google/uuid"
)

// CategoryService handles category business operations: validate, then issue
// exactly one persistence write. Reads bypass validation entirely.
type CategoryService struct {
	categoryRepo catalog.CategoryRepository
}

// NewCategoryService creates a new CategoryService
func NewCategoryService(categoryRepo catalog.CategoryRepository) *CategoryService {
	return &CategoryService{categoryRepo: categoryRepo}
}

// Create validates and persists a new category
func (s *CategoryService) Create(ctx context.Context, payload CategoryPayload) (*CategoryResponse, error) {
	if err := ValidateCategoryPayload(payload); err != nil {
		return nil, err
	}

	category := catalog.NewCategory(
		payload.Name,
		payload.Image,
		payload.Description,
		*payload.TaxApplicable,
		payload.Tax,
		taxTypeOf(payload.TaxType),
	)

	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}

	return ToCategoryResponse(category), nil
}

// Update validates the payload and fully replaces an existing category's fields
func (s *CategoryService) Update(ctx context.Context, id uuid.UUID, payload CategoryPayload) (*CategoryResponse, error) {
	if err := ValidateCategoryPayload(payload); err != nil {
		return nil, err
	}

	category, err := s.categoryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	category.Replace(
		payload.Name,
		payload.Image,
		payload.Description,
		*payload.TaxApplicable,
		payload.Tax,
		taxTypeOf(payload.TaxType),
	)

	if err := s.categoryRepo.Update(ctx, category); err != nil {
		return nil, err
	}

	return ToCategoryResponse(category), nil
}

// GetByID retrieves a category with its sub-categories and direct items
func (s *CategoryService) GetByID(ctx context.Context, id uuid.UUID) (*CategoryResponse, error) {
	category, err := s.categoryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToCategoryResponse(category), nil
}

// GetByName retrieves a category by case-insensitive name
func (s *CategoryService) GetByName(ctx context.Context, name string) (*CategoryResponse, error) {
	category, err := s.categoryRepo.FindByNameWithRelations(ctx, name)
	if err != nil {
		return nil, err
	}
	return ToCategoryResponse(category), nil
}

// List retrieves all categories with their relation sets
func (s *CategoryService) List(ctx context.Context) ([]CategoryResponse, error) {
	categories, err := s.categoryRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]CategoryResponse, len(categories))
	for i := range categories {
		responses[i] = *ToCategoryResponse(&categories[i])
	}
	return responses, nil
}

func taxTypeOf(s *string) *catalog.TaxType {
	if s == nil {
		return nil
	}
	t := catalog.TaxType(*s)
	return &t
}
