package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/catalog/backend/internal/infrastructure/persistence"
	"github.com/catalog/backend/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupHealthServer(t *testing.T) (*gin.Engine, *persistence.Database) {
	t.Helper()

	gormDB, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	db := &persistence.Database{DB: gormDB}

	engine := gin.New()
	r := router.NewRouter(engine, router.WithAPIVersion("v1"))
	r.Register(NewHealthHandler(db)).Setup()

	return engine, db
}

func TestHealthCheck_Healthy(t *testing.T) {
	engine, _ := setupHealthServer(t)

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			Status   string `json:"status"`
			Database string `json:"database"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "ok", resp.Data.Status)
	assert.Equal(t, "up", resp.Data.Database)
}

func TestHealthCheck_DatabaseDown(t *testing.T) {
	engine, db := setupHealthServer(t)
	require.NoError(t, db.Close())

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))

	require.Equal(t, http.StatusServiceUnavailable, w.Code)

	var status struct {
		Success  *bool  `json:"success"`
		Status   string `json:"status"`
		Database string `json:"database"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &status))
	assert.Nil(t, status.Success, "degraded health must not claim success")
	assert.Equal(t, "degraded", status.Status)
	assert.Equal(t, "down", status.Database)
}
