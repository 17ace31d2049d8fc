package catalog

import (
	"context"

	"github.com/catalog/backend/internal/domain/catalog"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ItemService handles item business operations: validate, resolve the parent
// context by name, then issue exactly one persistence write.
type ItemService struct {
	itemRepo catalog.ItemRepository
	resolver *ParentResolver
}

// NewItemService creates a new ItemService
func NewItemService(itemRepo catalog.ItemRepository, resolver *ParentResolver) *ItemService {
	return &ItemService{
		itemRepo: itemRepo,
		resolver: resolver,
	}
}

// Create validates, resolves and persists a new item
func (s *ItemService) Create(ctx context.Context, payload ItemPayload) (*ItemResponse, error) {
	if err := ValidateItemPayload(payload); err != nil {
		return nil, err
	}

	parent, err := s.resolver.ResolveItemParent(ctx, payload.CategoryName, payload.SubCategoryName)
	if err != nil {
		return nil, err
	}

	item := catalog.NewItem(
		payload.Name,
		payload.Image,
		payload.Description,
		*payload.TaxApplicable,
		payload.Tax,
		amountsOf(payload),
		parent.CategoryID,
		parent.SubCategoryID,
	)

	if err := s.itemRepo.Create(ctx, item); err != nil {
		return nil, err
	}

	return ToItemResponse(item), nil
}

// Update validates the payload, re-resolves the parent context and fully
// replaces the item's fields
func (s *ItemService) Update(ctx context.Context, id uuid.UUID, payload ItemPayload) (*ItemResponse, error) {
	if err := ValidateItemPayload(payload); err != nil {
		return nil, err
	}

	item, err := s.itemRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	parent, err := s.resolver.ResolveItemParent(ctx, payload.CategoryName, payload.SubCategoryName)
	if err != nil {
		return nil, err
	}

	item.Replace(
		payload.Name,
		payload.Image,
		payload.Description,
		*payload.TaxApplicable,
		payload.Tax,
		amountsOf(payload),
		parent.CategoryID,
		parent.SubCategoryID,
	)

	if err := s.itemRepo.Update(ctx, item); err != nil {
		return nil, err
	}

	// Relations loaded for the pre-update state are stale after a reparent
	item.Category = nil
	item.SubCategory = nil

	return ToItemResponse(item), nil
}

// GetByID retrieves an item with its category and sub-category references
func (s *ItemService) GetByID(ctx context.Context, id uuid.UUID) (*ItemResponse, error) {
	item, err := s.itemRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToItemResponse(item), nil
}

// GetByName retrieves an item by case-insensitive name
func (s *ItemService) GetByName(ctx context.Context, name string) (*ItemResponse, error) {
	item, err := s.itemRepo.FindByNameWithRelations(ctx, name)
	if err != nil {
		return nil, err
	}
	return ToItemResponse(item), nil
}

// List retrieves all items with their references
func (s *ItemService) List(ctx context.Context) ([]ItemResponse, error) {
	items, err := s.itemRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return toItemResponses(items), nil
}

// ListByCategory retrieves all items under a category
func (s *ItemService) ListByCategory(ctx context.Context, categoryID uuid.UUID) ([]ItemResponse, error) {
	items, err := s.itemRepo.FindByCategory(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	return toItemResponses(items), nil
}

// ListBySubCategory retrieves all items under a sub-category
func (s *ItemService) ListBySubCategory(ctx context.Context, subCategoryID uuid.UUID) ([]ItemResponse, error) {
	items, err := s.itemRepo.FindBySubCategory(ctx, subCategoryID)
	if err != nil {
		return nil, err
	}
	return toItemResponses(items), nil
}

// Search retrieves items whose name contains the query, case-insensitively
func (s *ItemService) Search(ctx context.Context, query string) ([]ItemResponse, error) {
	items, err := s.itemRepo.SearchByName(ctx, query)
	if err != nil {
		return nil, err
	}
	return toItemResponses(items), nil
}

func toItemResponses(items []catalog.Item) []ItemResponse {
	responses := make([]ItemResponse, len(items))
	for i := range items {
		responses[i] = *ToItemResponse(&items[i])
	}
	return responses
}

func amountsOf(payload ItemPayload) catalog.ItemAmounts {
	discount := decimal.Zero
	if payload.Discount != nil {
		discount = *payload.Discount
	}
	return catalog.ItemAmounts{
		BaseAmount:  *payload.BaseAmount,
		Discount:    discount,
		TotalAmount: *payload.TotalAmount,
	}
}
