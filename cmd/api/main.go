package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sangkips/menu-api/internal/application/service"
	"github.com/sangkips/menu-api/internal/config"
	domainRepo "github.com/sangkips/menu-api/internal/domain/repository"
	"github.com/sangkips/menu-api/internal/infrastructure/cache"
	"github.com/sangkips/menu-api/internal/infrastructure/database"
	"github.com/sangkips/menu-api/internal/infrastructure/repository"
	"github.com/sangkips/menu-api/internal/infrastructure/storage"
	"github.com/sangkips/menu-api/internal/presentation/http/handler"
	"github.com/sangkips/menu-api/internal/presentation/http/middleware"
	"github.com/sangkips/menu-api/internal/presentation/http/routes"
	"github.com/sangkips/menu-api/pkg/logger"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg := config.Load()

	zlog, err := logger.New(logger.Config{
		ServiceName: cfg.App.Name,
		Environment: cfg.App.Env,
		Level:       cfg.Log.Level,
		Format:      cfg.Log.Format,
	})
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() { _ = zlog.Sync() }()

	if cfg.App.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Connect to database, retrying until it is reachable
	db, err := database.NewPostgresDB(ctx, &cfg.Database, cfg.App.Debug, zlog)
	if err != nil {
		zlog.Fatal("failed to connect to database", zap.Error(err))
	}

	if err := database.AutoMigrate(db); err != nil {
		zlog.Fatal("failed to run migrations", zap.Error(err))
	}

	images, err := storage.New(&cfg.Storage, zlog)
	if err != nil {
		zlog.Fatal("failed to initialize image storage", zap.Error(err))
	}

	treeCache := domainRepo.TreeCache(cache.NewNoopTreeCache())
	if cfg.Redis.Addr != "" {
		client, err := cache.Connect(ctx, &cfg.Redis)
		if err != nil {
			zlog.Warn("menu tree cache disabled", zap.Error(err))
		} else {
			defer client.Close()
			treeCache = cache.NewTreeCache(client, cfg.Redis.TreeTTL)
		}
	}

	// Initialize repositories
	categoryRepo := repository.NewCategoryRepository(db)
	subcategoryRepo := repository.NewSubcategoryRepository(db)
	itemRepo := repository.NewItemRepository(db)

	// Initialize services
	mediaService := service.NewMediaService(images)
	categoryService := service.NewCategoryService(categoryRepo, mediaService, treeCache)
	subcategoryService := service.NewSubcategoryService(subcategoryRepo, categoryRepo, mediaService, treeCache)
	itemService := service.NewItemService(itemRepo, categoryRepo, subcategoryRepo, mediaService, treeCache)
	menuService := service.NewMenuService(categoryRepo, subcategoryRepo, itemRepo, treeCache)

	// Initialize handlers
	handlers := &routes.Handlers{
		Category:    handler.NewCategoryHandler(categoryService),
		Subcategory: handler.NewSubcategoryHandler(subcategoryService),
		Item:        handler.NewItemHandler(itemService),
		Menu:        handler.NewMenuHandler(menuService),
	}

	rateLimiter := middleware.NewClientRateLimiter(
		middleware.RateLimiterConfigFrom(cfg.RateLimit.Requests, cfg.RateLimit.Duration),
	)
	defer rateLimiter.Close()

	deps := &routes.Deps{
		Cfg:         cfg,
		Metrics:     middleware.NewMetrics(),
		RateLimiter: rateLimiter,
	}
	if local, ok := images.(*storage.LocalStore); ok {
		deps.UploadDir = local.Root()
	}

	router := routes.Setup(handlers, deps)

	port := cfg.App.Port
	if port == "" {
		port = "5000"
	}

	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		zlog.Info("starting server",
			zap.String("port", port),
			zap.String("env", cfg.App.Env),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Fatal("failed to start server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	zlog.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zlog.Error("server shutdown failed", zap.Error(err))
	}

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
