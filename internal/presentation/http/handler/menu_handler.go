package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sangkips/menu-api/internal/application/service"
	"github.com/sangkips/menu-api/internal/presentation/http/dto/response"
)

// MenuHandler serves the aggregated menu
type MenuHandler struct {
	menuService *service.MenuService
}

// NewMenuHandler creates a new menu handler
func NewMenuHandler(menuService *service.MenuService) *MenuHandler {
	return &MenuHandler{menuService: menuService}
}

// Tree handles fetching the full category forest
func (h *MenuHandler) Tree(c *gin.Context) {
	tree, err := h.menuService.Tree(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Menu retrieved successfully", tree)
}

// Health reports that the server is up
func Health(c *gin.Context) {
	c.JSON(200, gin.H{
		"success":   true,
		"message":   "Server is running",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
