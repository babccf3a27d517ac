package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/sangkips/menu-api/internal/application/service"
	"github.com/sangkips/menu-api/internal/presentation/http/dto/request"
	"github.com/sangkips/menu-api/internal/presentation/http/dto/response"
	"github.com/sangkips/menu-api/internal/presentation/http/middleware"
)

// CategoryHandler handles category-related HTTP requests
type CategoryHandler struct {
	categoryService *service.CategoryService
}

// NewCategoryHandler creates a new category handler
func NewCategoryHandler(categoryService *service.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

// Create handles creating a category
func (h *CategoryHandler) Create(c *gin.Context) {
	var req request.CreateCategoryRequest
	if !bindBody(c, &req) {
		return
	}

	category, err := h.categoryService.CreateCategory(c.Request.Context(), req.ToInput(middleware.GetImage(c)))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Category created successfully", category)
}

// List handles listing categories
func (h *CategoryHandler) List(c *gin.Context) {
	categories, err := h.categoryService.ListCategories(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.List(c, "Categories retrieved successfully", categories)
}

// Get handles getting a category by ID
func (h *CategoryHandler) Get(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	category, err := h.categoryService.GetCategory(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Category retrieved successfully", category)
}

// GetByName handles getting a category by name
func (h *CategoryHandler) GetByName(c *gin.Context) {
	category, err := h.categoryService.GetCategoryByName(c.Request.Context(), c.Param("name"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Category retrieved successfully", category)
}

// Update handles updating a category
func (h *CategoryHandler) Update(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req request.UpdateCategoryRequest
	if !bindBody(c, &req) {
		return
	}

	category, err := h.categoryService.UpdateCategory(c.Request.Context(), req.ToInput(id, middleware.GetImage(c)))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Category updated successfully", category)
}
