package handler

import (
	"strings"

	catalogapp "github.com/catalog/backend/internal/application/catalog"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ItemHandler serves the item endpoints
type ItemHandler struct {
	BaseHandler
	service *catalogapp.ItemService
}

func NewItemHandler(service *catalogapp.ItemService) *ItemHandler {
	return &ItemHandler{service: service}
}

// RegisterRoutes mounts the item routes on the given group
func (h *ItemHandler) RegisterRoutes(rg *gin.RouterGroup) {
	items := rg.Group("/items")
	{
		items.POST("", h.Create)
		items.GET("", h.List)
		items.GET("/search", h.Search)
		items.GET("/id/:id", h.GetByID)
		items.GET("/name/:name", h.GetByName)
		items.GET("/category/:categoryId", h.ListByCategory)
		items.GET("/subcategory/:subCategoryId", h.ListBySubCategory)
		items.PUT("/:id", h.Update)
	}
}

func (h *ItemHandler) Create(c *gin.Context) {
	var payload catalogapp.ItemPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		h.InvalidJSON(c)
		return
	}

	item, err := h.service.Create(c.Request.Context(), payload)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, item)
}

func (h *ItemHandler) List(c *gin.Context) {
	items, err := h.service.List(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, items)
}

func (h *ItemHandler) Search(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))
	if query == "" {
		h.BadRequest(c, "Query parameter q is required")
		return
	}

	items, err := h.service.Search(c.Request.Context(), query)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, items)
}

func (h *ItemHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid item id")
		return
	}

	item, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, item)
}

func (h *ItemHandler) GetByName(c *gin.Context) {
	item, err := h.service.GetByName(c.Request.Context(), c.Param("name"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, item)
}

func (h *ItemHandler) ListByCategory(c *gin.Context) {
	categoryID, err := uuid.Parse(c.Param("categoryId"))
	if err != nil {
		h.BadRequest(c, "Invalid category id")
		return
	}

	items, err := h.service.ListByCategory(c.Request.Context(), categoryID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, items)
}

func (h *ItemHandler) ListBySubCategory(c *gin.Context) {
	subCategoryID, err := uuid.Parse(c.Param("subCategoryId"))
	if err != nil {
		h.BadRequest(c, "Invalid sub-category id")
		return
	}

	items, err := h.service.ListBySubCategory(c.Request.Context(), subCategoryID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, items)
}

func (h *ItemHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid item id")
		return
	}

	var payload catalogapp.ItemPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		h.InvalidJSON(c)
		return
	}

	item, err := h.service.Update(c.Request.Context(), id, payload)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, item)
}
