package routes

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sangkips/menu-api/internal/config"
	"github.com/sangkips/menu-api/internal/presentation/http/dto/response"
	"github.com/sangkips/menu-api/internal/presentation/http/handler"
	"github.com/sangkips/menu-api/internal/presentation/http/middleware"
	"github.com/sangkips/menu-api/pkg/apperror"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Category    *handler.CategoryHandler
	Subcategory *handler.SubcategoryHandler
	Item        *handler.ItemHandler
	Menu        *handler.MenuHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	Cfg         *config.Config
	Metrics     *middleware.Metrics
	RateLimiter *middleware.ClientRateLimiter
	// UploadDir is served under the storage public URL when images are
	// kept on local disk
	UploadDir string
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	response.SetDiagnostics(!deps.Cfg.App.IsProduction())

	router := gin.New()

	// Global middleware
	router.Use(middleware.ErrorHandler())
	router.Use(middleware.LoggerMiddleware())
	if deps.Metrics != nil {
		router.Use(deps.Metrics.Middleware())
		router.GET("/metrics", gin.WrapH(deps.Metrics.Handler()))
	}
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	if deps.UploadDir != "" && strings.HasPrefix(deps.Cfg.Storage.PublicURL, "/") {
		router.Static(deps.Cfg.Storage.PublicURL, deps.UploadDir)
	}

	api := router.Group("/api")
	{
		api.GET("/health", handler.Health)

		if deps.RateLimiter != nil {
			api.Use(deps.RateLimiter.Middleware())
		}

		upload := middleware.Upload(deps.Cfg.Storage.UploadMaxSize)

		registerCategoryRoutes(api, h, upload)
		registerSubcategoryRoutes(api, h, upload)
		registerItemRoutes(api, h, upload)

		api.GET("/menu/tree", h.Menu.Tree)
	}

	router.NoRoute(notFound(deps.Cfg))

	return router
}

func registerCategoryRoutes(api *gin.RouterGroup, h *Handlers, upload gin.HandlerFunc) {
	categories := api.Group("/categories")
	{
		categories.POST("", upload, h.Category.Create)
		categories.GET("", h.Category.List)
		categories.GET("/search/:name", h.Category.GetByName)
		categories.GET("/:id", h.Category.Get)
		categories.PUT("/:id", upload, h.Category.Update)
	}
}

func registerSubcategoryRoutes(api *gin.RouterGroup, h *Handlers, upload gin.HandlerFunc) {
	subcategories := api.Group("/subcategories")
	{
		subcategories.POST("", upload, h.Subcategory.Create)
		subcategories.GET("", h.Subcategory.List)
		subcategories.GET("/category/:categoryId", h.Subcategory.ListByCategory)
		subcategories.GET("/search/:name", h.Subcategory.GetByName)
		subcategories.GET("/:id", h.Subcategory.Get)
		subcategories.PUT("/:id", upload, h.Subcategory.Update)
	}
}

func registerItemRoutes(api *gin.RouterGroup, h *Handlers, upload gin.HandlerFunc) {
	items := api.Group("/items")
	{
		items.POST("", upload, h.Item.Create)
		items.GET("", h.Item.List)
		items.GET("/search", h.Item.Search)
		items.GET("/category/:categoryId", h.Item.ListByCategory)
		items.GET("/subcategory/:subCategoryId", h.Item.ListBySubcategory)
		items.GET("/name/:name", h.Item.GetByName)
		items.GET("/:id", h.Item.Get)
		items.PUT("/:id", upload, h.Item.Update)
	}

	api.GET("/search/items", h.Item.Search)
}

// notFound serves the frontend bundle for non-API paths in production and
// the standard 404 envelope otherwise
func notFound(cfg *config.Config) gin.HandlerFunc {
	dist := cfg.Frontend.DistPath
	spa := cfg.App.IsProduction() && dist != ""

	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if !spa || c.Request.Method != http.MethodGet || path == "/api" || strings.HasPrefix(path, "/api/") {
			response.Error(c, apperror.ErrRouteNotFound)
			return
		}

		asset := filepath.Join(dist, filepath.FromSlash(filepath.Clean("/"+path)))
		if info, err := os.Stat(asset); err == nil && !info.IsDir() {
			c.File(asset)
			return
		}
		c.File(filepath.Join(dist, "index.html"))
	}
}
