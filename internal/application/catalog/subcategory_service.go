package catalog

import (
	"context"

	"github.com/catalog/backend/internal/domain/catalog"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SubCategoryService handles sub-category business operations: validate,
// resolve the parent category by name, apply tax inheritance, then issue
// exactly one persistence write.
type SubCategoryService struct {
	subCategoryRepo catalog.SubCategoryRepository
	resolver        *ParentResolver
}

// NewSubCategoryService creates a new SubCategoryService
func NewSubCategoryService(subCategoryRepo catalog.SubCategoryRepository, resolver *ParentResolver) *SubCategoryService {
	return &SubCategoryService{
		subCategoryRepo: subCategoryRepo,
		resolver:        resolver,
	}
}

// Create validates, resolves and persists a new sub-category. Absent tax
// fields inherit the owning category's values; explicit values, including an
// explicit choice to disable tax, are never overridden.
func (s *SubCategoryService) Create(ctx context.Context, payload SubCategoryPayload) (*SubCategoryResponse, error) {
	if err := ValidateSubCategoryPayload(payload); err != nil {
		return nil, err
	}

	category, err := s.resolver.ResolveCategory(ctx, payload.CategoryName)
	if err != nil {
		return nil, err
	}

	taxApplicable, tax := inheritTax(payload, category)

	subCategory := catalog.NewSubCategory(
		payload.Name,
		payload.Image,
		payload.Description,
		category.ID,
		taxApplicable,
		tax,
	)

	if err := s.subCategoryRepo.Create(ctx, subCategory); err != nil {
		return nil, err
	}

	return ToSubCategoryResponse(subCategory), nil
}

// Update validates the payload, re-resolves the parent category and fully
// replaces the sub-category's fields. Inheritance applies the same way as on
// create: an omitted tax field re-inherits from the (possibly new) category.
func (s *SubCategoryService) Update(ctx context.Context, id uuid.UUID, payload SubCategoryPayload) (*SubCategoryResponse, error) {
	if err := ValidateSubCategoryPayload(payload); err != nil {
		return nil, err
	}

	subCategory, err := s.subCategoryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	category, err := s.resolver.ResolveCategory(ctx, payload.CategoryName)
	if err != nil {
		return nil, err
	}

	taxApplicable, tax := inheritTax(payload, category)

	subCategory.Replace(
		payload.Name,
		payload.Image,
		payload.Description,
		category.ID,
		taxApplicable,
		tax,
	)

	if err := s.subCategoryRepo.Update(ctx, subCategory); err != nil {
		return nil, err
	}

	// The parent loaded for the pre-update state is stale after a reparent
	subCategory.Category = nil

	return ToSubCategoryResponse(subCategory), nil
}

// GetByID retrieves a sub-category with its parent category and items
func (s *SubCategoryService) GetByID(ctx context.Context, id uuid.UUID) (*SubCategoryResponse, error) {
	subCategory, err := s.subCategoryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToSubCategoryResponse(subCategory), nil
}

// GetByName retrieves a sub-category by case-insensitive name
func (s *SubCategoryService) GetByName(ctx context.Context, name string) (*SubCategoryResponse, error) {
	subCategory, err := s.subCategoryRepo.FindByNameWithRelations(ctx, name)
	if err != nil {
		return nil, err
	}
	return ToSubCategoryResponse(subCategory), nil
}

// List retrieves all sub-categories with their relation sets
func (s *SubCategoryService) List(ctx context.Context) ([]SubCategoryResponse, error) {
	subCategories, err := s.subCategoryRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]SubCategoryResponse, len(subCategories))
	for i := range subCategories {
		responses[i] = *ToSubCategoryResponse(&subCategories[i])
	}
	return responses, nil
}

// ListByCategory retrieves all sub-categories of a category
func (s *SubCategoryService) ListByCategory(ctx context.Context, categoryID uuid.UUID) ([]SubCategoryResponse, error) {
	subCategories, err := s.subCategoryRepo.FindByCategory(ctx, categoryID)
	if err != nil {
		return nil, err
	}

	responses := make([]SubCategoryResponse, len(subCategories))
	for i := range subCategories {
		responses[i] = *ToSubCategoryResponse(&subCategories[i])
	}
	return responses, nil
}

// inheritTax fills tax gaps from the owning category. Explicit payload
// values always win; inheritance only fills absence.
func inheritTax(payload SubCategoryPayload, category *catalog.Category) (bool, *decimal.Decimal) {
	taxApplicable := category.TaxApplicable
	if payload.TaxApplicable != nil {
		taxApplicable = *payload.TaxApplicable
	}
	tax := category.Tax
	if payload.Tax != nil {
		tax = payload.Tax
	}
	return taxApplicable, tax
}
