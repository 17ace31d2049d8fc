package handler

import (
	catalogapp "github.com/catalog/backend/internal/application/catalog"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CategoryHandler serves the category endpoints
type CategoryHandler struct {
	BaseHandler
	service *catalogapp.CategoryService
}

func NewCategoryHandler(service *catalogapp.CategoryService) *CategoryHandler {
	return &CategoryHandler{service: service}
}

// RegisterRoutes mounts the category routes on the given group
func (h *CategoryHandler) RegisterRoutes(rg *gin.RouterGroup) {
	categories := rg.Group("/categories")
	{
		categories.POST("", h.Create)
		categories.GET("", h.List)
		categories.GET("/id/:id", h.GetByID)
		categories.GET("/name/:name", h.GetByName)
		categories.PUT("/:id", h.Update)
	}
}

func (h *CategoryHandler) Create(c *gin.Context) {
	var payload catalogapp.CategoryPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		h.InvalidJSON(c)
		return
	}

	category, err := h.service.Create(c.Request.Context(), payload)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, category)
}

func (h *CategoryHandler) List(c *gin.Context) {
	categories, err := h.service.List(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, categories)
}

func (h *CategoryHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid category id")
		return
	}

	category, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, category)
}

func (h *CategoryHandler) GetByName(c *gin.Context) {
	category, err := h.service.GetByName(c.Request.Context(), c.Param("name"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, category)
}

func (h *CategoryHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid category id")
		return
	}

	var payload catalogapp.CategoryPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		h.InvalidJSON(c)
		return
	}

	category, err := h.service.Update(c.Request.Context(), id, payload)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, category)
}
