package persistence

import (
	"context"
	"testing"

	"github.com/catalog/backend/internal/domain/catalog"
	"github.com/catalog/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedItem(t *testing.T, repo *GormItemRepository, name string, categoryID uuid.UUID, subCategoryID *uuid.UUID) *catalog.Item {
	t.Helper()
	amounts := catalog.ItemAmounts{
		BaseAmount:  decimal.RequireFromString("100"),
		Discount:    decimal.RequireFromString("10"),
		TotalAmount: decimal.RequireFromString("90"),
	}
	item := catalog.NewItem(name, "https://cdn.example.com/i.png", "seeded", false, nil, amounts, categoryID, subCategoryID)
	require.NoError(t, repo.Create(context.Background(), item))
	return item
}

func TestGormItemRepository_FindByID_LoadsReferences(t *testing.T) {
	db := setupCatalogTestDB(t)
	categoryRepo := NewGormCategoryRepository(db)
	subRepo := NewGormSubCategoryRepository(db)
	itemRepo := NewGormItemRepository(db)
	ctx := context.Background()

	category := seedCategory(t, categoryRepo, "Beverages")
	sub := seedSubCategory(t, subRepo, "Soft Drinks", category)

	subID := sub.ID
	item := seedItem(t, itemRepo, "Cola", category.ID, &subID)

	found, err := itemRepo.FindByID(ctx, item.ID)
	require.NoError(t, err)
	require.NotNil(t, found.Category)
	assert.Equal(t, "Beverages", found.Category.Name)
	require.NotNil(t, found.SubCategory)
	assert.Equal(t, "Soft Drinks", found.SubCategory.Name)
	assert.True(t, found.BaseAmount.Equal(decimal.RequireFromString("100")))
	assert.True(t, found.TotalAmount.Equal(decimal.RequireFromString("90")))
}

func TestGormItemRepository_FindByNameWithRelations_CaseInsensitive(t *testing.T) {
	db := setupCatalogTestDB(t)
	categoryRepo := NewGormCategoryRepository(db)
	itemRepo := NewGormItemRepository(db)
	ctx := context.Background()

	category := seedCategory(t, categoryRepo, "Beverages")
	item := seedItem(t, itemRepo, "Cola", category.ID, nil)

	found, err := itemRepo.FindByNameWithRelations(ctx, "COLA")
	require.NoError(t, err)
	assert.Equal(t, item.ID, found.ID)
	require.NotNil(t, found.Category)
	assert.Nil(t, found.SubCategory)
}

func TestGormItemRepository_FindByNameWithRelations_NotFound(t *testing.T) {
	db := setupCatalogTestDB(t)
	itemRepo := NewGormItemRepository(db)

	_, err := itemRepo.FindByNameWithRelations(context.Background(), "ghost")

	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestGormItemRepository_SearchByName(t *testing.T) {
	db := setupCatalogTestDB(t)
	categoryRepo := NewGormCategoryRepository(db)
	itemRepo := NewGormItemRepository(db)
	ctx := context.Background()

	category := seedCategory(t, categoryRepo, "Beverages")
	seedItem(t, itemRepo, "Cola", category.ID, nil)
	seedItem(t, itemRepo, "Cola Zero", category.ID, nil)
	seedItem(t, itemRepo, "Water", category.ID, nil)

	results, err := itemRepo.SearchByName(ctx, "COL")
	require.NoError(t, err)
	require.Len(t, results, 2)

	names := []string{results[0].Name, results[1].Name}
	assert.ElementsMatch(t, []string{"Cola", "Cola Zero"}, names)
}

func TestGormItemRepository_SearchByName_NoMatches(t *testing.T) {
	db := setupCatalogTestDB(t)
	categoryRepo := NewGormCategoryRepository(db)
	itemRepo := NewGormItemRepository(db)
	ctx := context.Background()

	category := seedCategory(t, categoryRepo, "Beverages")
	seedItem(t, itemRepo, "Cola", category.ID, nil)

	results, err := itemRepo.SearchByName(ctx, "pizza")
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestGormItemRepository_FindByCategoryAndSubCategory(t *testing.T) {
	db := setupCatalogTestDB(t)
	categoryRepo := NewGormCategoryRepository(db)
	subRepo := NewGormSubCategoryRepository(db)
	itemRepo := NewGormItemRepository(db)
	ctx := context.Background()

	beverages := seedCategory(t, categoryRepo, "Beverages")
	snacks := seedCategory(t, categoryRepo, "Snacks")
	softDrinks := seedSubCategory(t, subRepo, "Soft Drinks", beverages)

	subID := softDrinks.ID
	seedItem(t, itemRepo, "Cola", beverages.ID, &subID)
	seedItem(t, itemRepo, "Water", beverages.ID, nil)
	seedItem(t, itemRepo, "Chips", snacks.ID, nil)

	byCategory, err := itemRepo.FindByCategory(ctx, beverages.ID)
	require.NoError(t, err)
	assert.Len(t, byCategory, 2)

	bySubCategory, err := itemRepo.FindBySubCategory(ctx, softDrinks.ID)
	require.NoError(t, err)
	require.Len(t, bySubCategory, 1)
	assert.Equal(t, "Cola", bySubCategory[0].Name)
}

func TestGormItemRepository_Update_Reparent(t *testing.T) {
	db := setupCatalogTestDB(t)
	categoryRepo := NewGormCategoryRepository(db)
	subRepo := NewGormSubCategoryRepository(db)
	itemRepo := NewGormItemRepository(db)
	ctx := context.Background()

	beverages := seedCategory(t, categoryRepo, "Beverages")
	softDrinks := seedSubCategory(t, subRepo, "Soft Drinks", beverages)
	item := seedItem(t, itemRepo, "Cola", beverages.ID, nil)

	subID := softDrinks.ID
	item.Replace(item.Name, item.Image, item.Description, item.TaxApplicable, item.Tax,
		catalog.ItemAmounts{
			BaseAmount:  decimal.RequireFromString("120"),
			Discount:    decimal.RequireFromString("20"),
			TotalAmount: decimal.RequireFromString("100"),
		}, beverages.ID, &subID)
	require.NoError(t, itemRepo.Update(ctx, item))

	found, err := itemRepo.FindByID(ctx, item.ID)
	require.NoError(t, err)
	require.NotNil(t, found.SubCategoryID)
	assert.Equal(t, softDrinks.ID, *found.SubCategoryID)
	assert.True(t, found.BaseAmount.Equal(decimal.RequireFromString("120")))
	assert.True(t, found.TotalAmount.Equal(decimal.RequireFromString("100")))
}
