package persistence

import (
	"context"
	"strings"

	"github.com/catalog/backend/internal/domain/catalog"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormItemRepository implements ItemRepository using GORM
type GormItemRepository struct {
	db *gorm.DB
}

// NewGormItemRepository creates a new GormItemRepository
func NewGormItemRepository(db *gorm.DB) *GormItemRepository {
	return &GormItemRepository{db: db}
}

// FindByID finds an item with its category and sub-category references
func (r *GormItemRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Item, error) {
	var item catalog.Item
	if err := r.withRelations(ctx).First(&item, "id = ?", id).Error; err != nil {
		return nil, translateError(err)
	}
	return &item, nil
}

// FindByNameWithRelations finds an item by case-insensitive name with its references
func (r *GormItemRepository) FindByNameWithRelations(ctx context.Context, name string) (*catalog.Item, error) {
	var item catalog.Item
	if err := r.withRelations(ctx).
		Where("LOWER(name) = LOWER(?)", name).
		Order("created_at ASC").
		First(&item).Error; err != nil {
		return nil, translateError(err)
	}
	return &item, nil
}

// FindAll returns all items with their references
func (r *GormItemRepository) FindAll(ctx context.Context) ([]catalog.Item, error) {
	var items []catalog.Item
	if err := r.withRelations(ctx).
		Order("created_at ASC").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// FindByCategory returns all items under a category
func (r *GormItemRepository) FindByCategory(ctx context.Context, categoryID uuid.UUID) ([]catalog.Item, error) {
	var items []catalog.Item
	if err := r.withRelations(ctx).
		Where("category_id = ?", categoryID).
		Order("created_at ASC").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// FindBySubCategory returns all items under a sub-category
func (r *GormItemRepository) FindBySubCategory(ctx context.Context, subCategoryID uuid.UUID) ([]catalog.Item, error) {
	var items []catalog.Item
	if err := r.withRelations(ctx).
		Where("sub_category_id = ?", subCategoryID).
		Order("created_at ASC").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// SearchByName returns items whose name contains the query, case-insensitively
func (r *GormItemRepository) SearchByName(ctx context.Context, query string) ([]catalog.Item, error) {
	var items []catalog.Item
	pattern := "%" + strings.ToLower(query) + "%"
	if err := r.withRelations(ctx).
		Where("LOWER(name) LIKE ?", pattern).
		Order("created_at ASC").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// Create persists a new item
func (r *GormItemRepository) Create(ctx context.Context, item *catalog.Item) error {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(item).Error; err != nil {
		return translateError(err)
	}
	return nil
}

// Update persists a full replacement of an existing item
func (r *GormItemRepository) Update(ctx context.Context, item *catalog.Item) error {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Save(item).Error; err != nil {
		return translateError(err)
	}
	return nil
}

func (r *GormItemRepository) withRelations(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Category").
		Preload("SubCategory")
}
