package service

import (
	"bytes"
	"context"

	"github.com/sangkips/menu-api/internal/domain/repository"
	"github.com/sangkips/menu-api/pkg/apperror"
	"github.com/sangkips/menu-api/pkg/logger"
	"github.com/sangkips/menu-api/pkg/utils"
	"go.uber.org/zap"
)

// Storage folders per entity
const (
	FolderCategories    = "menu_categories"
	FolderSubcategories = "menu_subcategories"
	FolderItems         = "menu_items"
)

// ImageUpload is an image received with a create or update request
type ImageUpload struct {
	Filename    string
	ContentType string
	Data        []byte
}

// MediaService uploads entity images and cleans up the ones no longer used
type MediaService struct {
	storage repository.ImageStorage
}

// NewMediaService creates a new media service
func NewMediaService(storage repository.ImageStorage) *MediaService {
	return &MediaService{storage: storage}
}

// Attach uploads file into folder and returns its URL. A nil file yields a
// nil URL.
func (s *MediaService) Attach(ctx context.Context, folder string, file *ImageUpload) (*string, error) {
	if file == nil {
		return nil, nil
	}

	key := utils.ObjectKey(folder, file.Filename, file.ContentType)
	url, err := s.storage.Upload(ctx, key, bytes.NewReader(file.Data), int64(len(file.Data)), file.ContentType)
	if err != nil {
		return nil, apperror.NewUpstreamError(err, "Failed to upload image")
	}
	return &url, nil
}

// Release deletes an image that is no longer referenced. Failures are
// logged and never returned.
func (s *MediaService) Release(ctx context.Context, url *string) {
	if url == nil || *url == "" {
		return
	}
	if err := s.storage.Delete(ctx, *url); err != nil {
		logger.FromContext(ctx).Warn("failed to delete image",
			zap.String("url", *url),
			zap.Error(err),
		)
	}
}
