package persistence

import (
	"context"

	"github.com/catalog/backend/internal/domain/catalog"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormSubCategoryRepository implements SubCategoryRepository using GORM
type GormSubCategoryRepository struct {
	db *gorm.DB
}

// NewGormSubCategoryRepository creates a new GormSubCategoryRepository
func NewGormSubCategoryRepository(db *gorm.DB) *GormSubCategoryRepository {
	return &GormSubCategoryRepository{db: db}
}

// FindByID finds a sub-category with its parent category and items
func (r *GormSubCategoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.SubCategory, error) {
	var subCategory catalog.SubCategory
	if err := r.withRelations(ctx).First(&subCategory, "id = ?", id).Error; err != nil {
		return nil, translateError(err)
	}
	return &subCategory, nil
}

// FindByName finds a sub-category by case-insensitive name, without relations
func (r *GormSubCategoryRepository) FindByName(ctx context.Context, name string) (*catalog.SubCategory, error) {
	var subCategory catalog.SubCategory
	if err := r.db.WithContext(ctx).
		Where("LOWER(name) = LOWER(?)", name).
		Order("created_at ASC").
		First(&subCategory).Error; err != nil {
		return nil, translateError(err)
	}
	return &subCategory, nil
}

// FindByNameWithRelations finds a sub-category by case-insensitive name with relations
func (r *GormSubCategoryRepository) FindByNameWithRelations(ctx context.Context, name string) (*catalog.SubCategory, error) {
	var subCategory catalog.SubCategory
	if err := r.withRelations(ctx).
		Where("LOWER(name) = LOWER(?)", name).
		Order("created_at ASC").
		First(&subCategory).Error; err != nil {
		return nil, translateError(err)
	}
	return &subCategory, nil
}

// FindAll returns all sub-categories with their relation sets
func (r *GormSubCategoryRepository) FindAll(ctx context.Context) ([]catalog.SubCategory, error) {
	var subCategories []catalog.SubCategory
	if err := r.withRelations(ctx).
		Order("created_at ASC").
		Find(&subCategories).Error; err != nil {
		return nil, err
	}
	return subCategories, nil
}

// FindByCategory returns all sub-categories of a category with their items
func (r *GormSubCategoryRepository) FindByCategory(ctx context.Context, categoryID uuid.UUID) ([]catalog.SubCategory, error) {
	var subCategories []catalog.SubCategory
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Where("category_id = ?", categoryID).
		Order("created_at ASC").
		Find(&subCategories).Error; err != nil {
		return nil, err
	}
	return subCategories, nil
}

// Create persists a new sub-category
func (r *GormSubCategoryRepository) Create(ctx context.Context, subCategory *catalog.SubCategory) error {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(subCategory).Error; err != nil {
		return translateError(err)
	}
	return nil
}

// Update persists a full replacement of an existing sub-category
func (r *GormSubCategoryRepository) Update(ctx context.Context, subCategory *catalog.SubCategory) error {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Save(subCategory).Error; err != nil {
		return translateError(err)
	}
	return nil
}

func (r *GormSubCategoryRepository) withRelations(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Category").
		Preload("Items")
}
