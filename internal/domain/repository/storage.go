package repository

import (
	"context"
	"io"
)

// ImageStorage persists uploaded images and serves them by URL
type ImageStorage interface {
	// Upload stores the object and returns its public URL
	Upload(ctx context.Context, key string, body io.Reader, size int64, contentType string) (string, error)
	// Delete removes the object a URL returned by Upload points to
	Delete(ctx context.Context, url string) error
}
