package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/sangkips/menu-api/internal/application/service"
	"github.com/sangkips/menu-api/internal/presentation/http/dto/request"
	"github.com/sangkips/menu-api/internal/presentation/http/dto/response"
	"github.com/sangkips/menu-api/internal/presentation/http/middleware"
)

// ItemHandler handles item-related HTTP requests
type ItemHandler struct {
	itemService *service.ItemService
}

// NewItemHandler creates a new item handler
func NewItemHandler(itemService *service.ItemService) *ItemHandler {
	return &ItemHandler{itemService: itemService}
}

// Create handles creating an item
func (h *ItemHandler) Create(c *gin.Context) {
	var req request.CreateItemRequest
	if !bindBody(c, &req) {
		return
	}

	item, err := h.itemService.CreateItem(c.Request.Context(), req.ToInput(middleware.GetImage(c)))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Item created successfully", item)
}

// List handles listing items
func (h *ItemHandler) List(c *gin.Context) {
	items, err := h.itemService.ListItems(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.List(c, "Items retrieved successfully", items)
}

// Search handles searching items by partial name
func (h *ItemHandler) Search(c *gin.Context) {
	var req request.SearchItemsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	items, err := h.itemService.SearchItems(c.Request.Context(), req.Name)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.List(c, "Items retrieved successfully", items)
}

// ListByCategory handles listing the items of a category, including those
// under its subcategories
func (h *ItemHandler) ListByCategory(c *gin.Context) {
	categoryID, ok := paramID(c, "categoryId")
	if !ok {
		return
	}

	items, err := h.itemService.ListByCategory(c.Request.Context(), categoryID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.List(c, "Items retrieved successfully", items)
}

// ListBySubcategory handles listing the items of a subcategory
func (h *ItemHandler) ListBySubcategory(c *gin.Context) {
	subcategoryID, ok := paramID(c, "subCategoryId")
	if !ok {
		return
	}

	items, err := h.itemService.ListBySubcategory(c.Request.Context(), subcategoryID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.List(c, "Items retrieved successfully", items)
}

// Get handles getting an item by ID
func (h *ItemHandler) Get(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	item, err := h.itemService.GetItem(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Item retrieved successfully", item)
}

// GetByName handles getting an item by name
func (h *ItemHandler) GetByName(c *gin.Context) {
	item, err := h.itemService.GetItemByName(c.Request.Context(), c.Param("name"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Item retrieved successfully", item)
}

// Update handles updating an item
func (h *ItemHandler) Update(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req request.UpdateItemRequest
	if !bindBody(c, &req) {
		return
	}

	item, err := h.itemService.UpdateItem(c.Request.Context(), req.ToInput(id, middleware.GetImage(c)))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Item updated successfully", item)
}
