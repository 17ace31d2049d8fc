package catalog

import (
	"context"

	"github.com/google/uuid"
)

// ItemRepository defines the persistence operations for items
type ItemRepository interface {
	// FindByID finds an item with its category and sub-category references
	FindByID(ctx context.Context, id uuid.UUID) (*Item, error)

	// FindByNameWithRelations finds an item by case-insensitive name with its
	// category and sub-category references
	FindByNameWithRelations(ctx context.Context, name string) (*Item, error)

	// FindAll returns all items with their category and sub-category references
	FindAll(ctx context.Context) ([]Item, error)

	// FindByCategory returns all items under a category
	FindByCategory(ctx context.Context, categoryID uuid.UUID) ([]Item, error)

	// FindBySubCategory returns all items under a sub-category
	FindBySubCategory(ctx context.Context, subCategoryID uuid.UUID) ([]Item, error)

	// SearchByName returns items whose name contains the query,
	// case-insensitively
	SearchByName(ctx context.Context, query string) ([]Item, error)

	// Create persists a new item
	Create(ctx context.Context, item *Item) error

	// Update persists a full replacement of an existing item
	Update(ctx context.Context, item *Item) error
}
