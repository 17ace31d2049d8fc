package catalog

import (
	"context"

	"github.com/google/uuid"
)

// SubCategoryRepository defines the persistence operations for sub-categories
type SubCategoryRepository interface {
	// FindByID finds a sub-category with its parent category and items
	FindByID(ctx context.Context, id uuid.UUID) (*SubCategory, error)

	// FindByName finds a sub-category by case-insensitive name, without
	// relations. Used by the name resolution engine.
	FindByName(ctx context.Context, name string) (*SubCategory, error)

	// FindByNameWithRelations finds a sub-category by case-insensitive name
	// with its parent category and items
	FindByNameWithRelations(ctx context.Context, name string) (*SubCategory, error)

	// FindAll returns all sub-categories with their parent category and items
	FindAll(ctx context.Context) ([]SubCategory, error)

	// FindByCategory returns all sub-categories of a category with their items
	FindByCategory(ctx context.Context, categoryID uuid.UUID) ([]SubCategory, error)

	// Create persists a new sub-category
	Create(ctx context.Context, subCategory *SubCategory) error

	// Update persists a full replacement of an existing sub-category
	Update(ctx context.Context, subCategory *SubCategory) error
}
