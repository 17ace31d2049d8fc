package persistence

import (
	"context"
	"errors"

	"github.com/catalog/backend/internal/domain/catalog"
	"github.com/catalog/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormCategoryRepository implements CategoryRepository using GORM
type GormCategoryRepository struct {
	db *gorm.DB
}

// NewGormCategoryRepository creates a new GormCategoryRepository
func NewGormCategoryRepository(db *gorm.DB) *GormCategoryRepository {
	return &GormCategoryRepository{db: db}
}

// FindByID finds a category with its sub-categories and direct items
func (r *GormCategoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Category, error) {
	var category catalog.Category
	if err := r.withRelations(ctx).First(&category, "id = ?", id).Error; err != nil {
		return nil, translateError(err)
	}
	return &category, nil
}

// FindByName finds a category by case-insensitive name, without relations.
// Earliest created wins when several names case-fold to the same value.
func (r *GormCategoryRepository) FindByName(ctx context.Context, name string) (*catalog.Category, error) {
	var category catalog.Category
	if err := r.db.WithContext(ctx).
		Where("LOWER(name) = LOWER(?)", name).
		Order("created_at ASC").
		First(&category).Error; err != nil {
		return nil, translateError(err)
	}
	return &category, nil
}

// FindByNameWithRelations finds a category by case-insensitive name with relations
func (r *GormCategoryRepository) FindByNameWithRelations(ctx context.Context, name string) (*catalog.Category, error) {
	var category catalog.Category
	if err := r.withRelations(ctx).
		Where("LOWER(name) = LOWER(?)", name).
		Order("created_at ASC").
		First(&category).Error; err != nil {
		return nil, translateError(err)
	}
	return &category, nil
}

// FindAll returns all categories with their relation sets
func (r *GormCategoryRepository) FindAll(ctx context.Context) ([]catalog.Category, error) {
	var categories []catalog.Category
	if err := r.withRelations(ctx).
		Order("created_at ASC").
		Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

// Create persists a new category
func (r *GormCategoryRepository) Create(ctx context.Context, category *catalog.Category) error {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(category).Error; err != nil {
		return translateError(err)
	}
	return nil
}

// Update persists a full replacement of an existing category
func (r *GormCategoryRepository) Update(ctx context.Context, category *catalog.Category) error {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Save(category).Error; err != nil {
		return translateError(err)
	}
	return nil
}

// withRelations preloads the immediate relation set: sub-categories and
// direct items (items not under any sub-category)
func (r *GormCategoryRepository) withRelations(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("SubCategories").
		Preload("Items", "sub_category_id IS NULL")
}

// translateError maps storage errors to domain errors. Referential
// integrity violations at write time surface as a parent-not-found
// condition rather than an opaque failure.
func translateError(err error) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return shared.ErrNotFound
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return shared.NewDomainError("PARENT_NOT_FOUND", "Referenced parent no longer exists")
	default:
		return err
	}
}
