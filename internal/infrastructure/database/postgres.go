package database

import (
	"context"
	"fmt"

	"github.com/sangkips/menu-api/internal/config"
	"github.com/sangkips/menu-api/internal/domain/entity"
	"github.com/sangkips/menu-api/pkg/logger"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// NewPostgresDB opens the PostgreSQL connection, retrying with
// cfg.ReconnectDelay until it succeeds or ctx is cancelled.
func NewPostgresDB(ctx context.Context, cfg *config.DatabaseConfig, debug bool, log *zap.Logger) (*gorm.DB, error) {
	reconnector := &Reconnector{Delay: cfg.ReconnectDelay, Logger: log}

	return reconnector.Connect(ctx, func() (*gorm.DB, error) {
		db, err := gorm.Open(postgres.New(postgres.Config{
			DSN:                  cfg.DSN(),
			PreferSimpleProtocol: true, // disables implicit prepared statement usage
		}), &gorm.Config{
			Logger:         logger.NewGormLogger(debug),
			TranslateError: true,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}

		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
		}
		if err := sqlDB.PingContext(ctx); err != nil {
			_ = sqlDB.Close()
			return nil, fmt.Errorf("failed to ping database: %w", err)
		}

		sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)

		log.Info("connected to PostgreSQL database",
			zap.String("host", cfg.Host),
			zap.String("database", cfg.Name),
		)
		return db, nil
	})
}

// AutoMigrate runs GORM auto-migration for all entities
func AutoMigrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&entity.Category{},
		&entity.Subcategory{},
		&entity.Item{},
	)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}
