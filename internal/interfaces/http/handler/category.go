package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/jakupie/backend/internal/application/listing"
)

// CategoryHandler handles category endpoints.
type CategoryHandler struct {
	BaseHandler
	categoryService *listing.CategoryService
}

func NewCategoryHandler(categoryService *listing.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

// RegisterRoutes registers category routes. Creation is admin only.
func (h *CategoryHandler) RegisterRoutes(rg *gin.RouterGroup, requireAuth, requireAdmin gin.HandlerFunc) {
	rg.GET("/categories", h.List)
	rg.GET("/categories/:id", h.Get)

	rg.POST("/categories", requireAuth, requireAdmin, h.Create)
}

func (h *CategoryHandler) List(c *gin.Context) {
	categories, err := h.categoryService.List(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, categories)
}

func (h *CategoryHandler) Get(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid category ID")
		return
	}

	category, err := h.categoryService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, category)
}

func (h *CategoryHandler) Create(c *gin.Context) {
	var req listing.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	category, err := h.categoryService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, category)
}
