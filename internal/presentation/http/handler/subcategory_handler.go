package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/sangkips/menu-api/internal/application/service"
	"github.com/sangkips/menu-api/internal/presentation/http/dto/request"
	"github.com/sangkips/menu-api/internal/presentation/http/dto/response"
	"github.com/sangkips/menu-api/internal/presentation/http/middleware"
)

// SubcategoryHandler handles subcategory-related HTTP requests
type SubcategoryHandler struct {
	subcategoryService *service.SubcategoryService
}

// NewSubcategoryHandler creates a new subcategory handler
func NewSubcategoryHandler(subcategoryService *service.SubcategoryService) *SubcategoryHandler {
	return &SubcategoryHandler{subcategoryService: subcategoryService}
}

// Create handles creating a subcategory
func (h *SubcategoryHandler) Create(c *gin.Context) {
	var req request.CreateSubcategoryRequest
	if !bindBody(c, &req) {
		return
	}

	subcategory, err := h.subcategoryService.CreateSubcategory(c.Request.Context(), req.ToInput(middleware.GetImage(c)))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Subcategory created successfully", subcategory)
}

// List handles listing subcategories
func (h *SubcategoryHandler) List(c *gin.Context) {
	subcategories, err := h.subcategoryService.ListSubcategories(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.List(c, "Subcategories retrieved successfully", subcategories)
}

// ListByCategory handles listing the subcategories of a category
func (h *SubcategoryHandler) ListByCategory(c *gin.Context) {
	categoryID, ok := paramID(c, "categoryId")
	if !ok {
		return
	}

	subcategories, err := h.subcategoryService.ListByCategory(c.Request.Context(), categoryID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.List(c, "Subcategories retrieved successfully", subcategories)
}

// Get handles getting a subcategory by ID
func (h *SubcategoryHandler) Get(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	subcategory, err := h.subcategoryService.GetSubcategory(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Subcategory retrieved successfully", subcategory)
}

// GetByName handles getting a subcategory by name
func (h *SubcategoryHandler) GetByName(c *gin.Context) {
	subcategory, err := h.subcategoryService.GetSubcategoryByName(c.Request.Context(), c.Param("name"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Subcategory retrieved successfully", subcategory)
}

// Update handles updating a subcategory
func (h *SubcategoryHandler) Update(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req request.UpdateSubcategoryRequest
	if !bindBody(c, &req) {
		return
	}

	subcategory, err := h.subcategoryService.UpdateSubcategory(c.Request.Context(), req.ToInput(id, middleware.GetImage(c)))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Subcategory updated successfully", subcategory)
}
