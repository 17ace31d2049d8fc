package handler

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	catalogapp "github.com/catalog/backend/internal/application/catalog"
	"github.com/catalog/backend/internal/domain/catalog"
	"github.com/catalog/backend/internal/infrastructure/persistence"
	"github.com/catalog/backend/internal/interfaces/http/dto"
	"github.com/catalog/backend/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestServer wires the full HTTP stack over an in-memory database
func setupTestServer(t *testing.T) *gin.Engine {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&catalog.Category{}, &catalog.SubCategory{}, &catalog.Item{}))

	categoryRepo := persistence.NewGormCategoryRepository(db)
	subCategoryRepo := persistence.NewGormSubCategoryRepository(db)
	itemRepo := persistence.NewGormItemRepository(db)

	resolver := catalogapp.NewParentResolver(categoryRepo, subCategoryRepo)
	categoryService := catalogapp.NewCategoryService(categoryRepo)
	subCategoryService := catalogapp.NewSubCategoryService(subCategoryRepo, resolver)
	itemService := catalogapp.NewItemService(itemRepo, resolver)

	engine := gin.New()
	r := router.NewRouter(engine, router.WithAPIVersion("v1"))
	r.Register(NewCategoryHandler(categoryService)).
		Register(NewSubCategoryHandler(subCategoryService)).
		Register(NewItemHandler(itemService))
	r.Setup()

	return engine
}

func doJSON(t *testing.T, engine *gin.Engine, method, path string, body any) (*httptest.ResponseRecorder, dto.Response) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	var resp dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return w, resp
}

func dataField(t *testing.T, resp dto.Response) map[string]any {
	t.Helper()
	data, ok := resp.Data.(map[string]any)
	require.True(t, ok, "data is not an object: %#v", resp.Data)
	return data
}
