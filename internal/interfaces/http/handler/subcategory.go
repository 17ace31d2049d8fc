package handler

import (
	catalogapp "github.com/catalog/backend/internal/application/catalog"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SubCategoryHandler serves the sub-category endpoints
type SubCategoryHandler struct {
	BaseHandler
	service *catalogapp.SubCategoryService
}

func NewSubCategoryHandler(service *catalogapp.SubCategoryService) *SubCategoryHandler {
	return &SubCategoryHandler{service: service}
}

// RegisterRoutes mounts the sub-category routes on the given group
func (h *SubCategoryHandler) RegisterRoutes(rg *gin.RouterGroup) {
	subCategories := rg.Group("/subcategories")
	{
		subCategories.POST("", h.Create)
		subCategories.GET("", h.List)
		subCategories.GET("/id/:id", h.GetByID)
		subCategories.GET("/name/:name", h.GetByName)
		subCategories.GET("/category/:categoryId", h.ListByCategory)
		subCategories.PUT("/:id", h.Update)
	}
}

func (h *SubCategoryHandler) Create(c *gin.Context) {
	var payload catalogapp.SubCategoryPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		h.InvalidJSON(c)
		return
	}

	subCategory, err := h.service.Create(c.Request.Context(), payload)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, subCategory)
}

func (h *SubCategoryHandler) List(c *gin.Context) {
	subCategories, err := h.service.List(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, subCategories)
}

func (h *SubCategoryHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid sub-category id")
		return
	}

	subCategory, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, subCategory)
}

func (h *SubCategoryHandler) GetByName(c *gin.Context) {
	subCategory, err := h.service.GetByName(c.Request.Context(), c.Param("name"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, subCategory)
}

func (h *SubCategoryHandler) ListByCategory(c *gin.Context) {
	categoryID, err := uuid.Parse(c.Param("categoryId"))
	if err != nil {
		h.BadRequest(c, "Invalid category id")
		return
	}

	subCategories, err := h.service.ListByCategory(c.Request.Context(), categoryID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, subCategories)
}

func (h *SubCategoryHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid sub-category id")
		return
	}

	var payload catalogapp.SubCategoryPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		h.InvalidJSON(c)
		return
	}

	subCategory, err := h.service.Update(c.Request.Context(), id, payload)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, subCategory)
}
