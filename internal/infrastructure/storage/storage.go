package storage

import (
	"fmt"

	"github.com/sangkips/menu-api/internal/config"
	domainRepo "github.com/sangkips/menu-api/internal/domain/repository"
	"go.uber.org/zap"
)

// New builds the image storage selected by cfg.Driver
func New(cfg *config.StorageConfig, log *zap.Logger) (domainRepo.ImageStorage, error) {
	switch cfg.Driver {
	case "", "local":
		return NewLocalStore(cfg.Path, cfg.PublicURL)
	case "s3":
		return NewS3Store(cfg, log)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}
