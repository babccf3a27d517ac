package service

import (
	"context"
	"errors"
	"io"
	"sync"
	"testing"

	infraRepo "github.com/sangkips/menu-api/internal/infrastructure/repository"
	"github.com/sangkips/menu-api/internal/testutil"
)

// fakeStorage records uploads and deletions in memory
type fakeStorage struct {
	mu        sync.Mutex
	objects   map[string][]byte
	deleted   []string
	uploadErr error
	deleteErr error
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{objects: make(map[string][]byte)}
}

func (f *fakeStorage) Upload(ctx context.Context, key string, body io.Reader, size int64, contentType string) (string, error) {
	if f.uploadErr != nil {
		return "", f.uploadErr
	}
	data, err := io.ReadAll(body)
	if err != nil {
		return "", err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	url := "https://img.example.com/" + key
	f.objects[url] = data
	return url, nil
}

func (f *fakeStorage) Delete(ctx context.Context, url string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleted = append(f.deleted, url)
	if f.deleteErr != nil {
		return f.deleteErr
	}
	delete(f.objects, url)
	return nil
}

// countingCache is an in-memory tree cache that counts invalidations
type countingCache struct {
	data          []byte
	generation    int64
	invalidations int
	getErr        error
	afterGet      func()
}

func (c *countingCache) Get(context.Context) ([]byte, int64, error) {
	if c.getErr != nil {
		return nil, 0, c.getErr
	}
	data, generation := c.data, c.generation
	if c.afterGet != nil {
		c.afterGet()
	}
	return data, generation, nil
}

func (c *countingCache) Set(_ context.Context, generation int64, tree []byte) error {
	if generation == c.generation {
		c.data = tree
	}
	return nil
}

func (c *countingCache) Invalidate(context.Context) error {
	c.invalidations++
	c.generation++
	c.data = nil
	return nil
}

type services struct {
	categories    *CategoryService
	subcategories *SubcategoryService
	items         *ItemService
	menu          *MenuService
	storage       *fakeStorage
	cache         *countingCache
}

func newServices(t *testing.T) services {
	db := testutil.NewDB(t)
	categoryRepo := infraRepo.NewCategoryRepository(db)
	subcategoryRepo := infraRepo.NewSubcategoryRepository(db)
	itemRepo := infraRepo.NewItemRepository(db)

	storage := newFakeStorage()
	cache := &countingCache{}
	media := NewMediaService(storage)

	return services{
		categories:    NewCategoryService(categoryRepo, media, cache),
		subcategories: NewSubcategoryService(subcategoryRepo, categoryRepo, media, cache),
		items:         NewItemService(itemRepo, categoryRepo, subcategoryRepo, media, cache),
		menu:          NewMenuService(categoryRepo, subcategoryRepo, itemRepo, cache),
		storage:       storage,
		cache:         cache,
	}
}

func ptr[T any](v T) *T { return &v }

var errStorageDown = errors.New("storage unavailable")

func pngUpload(name string) *ImageUpload {
	return &ImageUpload{Filename: name, ContentType: "image/png", Data: []byte("\x89PNG\r\n\x1a\n")}
}
