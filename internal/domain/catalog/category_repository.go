package catalog

import (
	"context"

	"github.com/google/uuid"
)

// CategoryRepository defines the persistence operations for categories.
// By-name lookups are case-insensitive; when several categories share a
// case-folded name the earliest created one wins.
type CategoryRepository interface {
	// FindByID finds a category with its sub-categories and direct items
	FindByID(ctx context.Context, id uuid.UUID) (*Category, error)

	// FindByName finds a category by case-insensitive name, without relations.
	// This is the lookup the name resolution engine uses.
	FindByName(ctx context.Context, name string) (*Category, error)

	// FindByNameWithRelations finds a category by case-insensitive name with
	// its sub-categories and direct items
	FindByNameWithRelations(ctx context.Context, name string) (*Category, error)

	// FindAll returns all categories with their sub-categories and direct items
	FindAll(ctx context.Context) ([]Category, error)

	// Create persists a new category
	Create(ctx context.Context, category *Category) error

	// Update persists a full replacement of an existing category
	Update(ctx context.Context, category *Category) error
}
