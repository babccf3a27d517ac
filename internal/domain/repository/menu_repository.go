package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/sangkips/menu-api/internal/domain/entity"
)

// Lookups return (nil, nil) when no record matches. Lists are ordered
// newest first.

// CategoryRepository defines the interface for category data operations
type CategoryRepository interface {
	Create(ctx context.Context, category *entity.Category) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Category, error)
	// GetByName matches case-insensitively; the oldest match wins
	GetByName(ctx context.Context, name string) (*entity.Category, error)
	Update(ctx context.Context, category *entity.Category) error
	List(ctx context.Context) ([]entity.Category, error)
}

// SubcategoryRepository defines the interface for subcategory data operations.
// Returned subcategories have their parent Category loaded.
type SubcategoryRepository interface {
	Create(ctx context.Context, subcategory *entity.Subcategory) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Subcategory, error)
	GetByName(ctx context.Context, name string) (*entity.Subcategory, error)
	Update(ctx context.Context, subcategory *entity.Subcategory) error
	List(ctx context.Context) ([]entity.Subcategory, error)
	ListByCategory(ctx context.Context, categoryID uuid.UUID) ([]entity.Subcategory, error)
}

// ItemRepository defines the interface for item data operations.
// Returned items have their Category and SubCategory loaded.
type ItemRepository interface {
	Create(ctx context.Context, item *entity.Item) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Item, error)
	GetByName(ctx context.Context, name string) (*entity.Item, error)
	Update(ctx context.Context, item *entity.Item) error
	List(ctx context.Context) ([]entity.Item, error)
	// Search matches a case-insensitive substring of the name
	Search(ctx context.Context, query string) ([]entity.Item, error)
	// ListByCategory includes items owned through the category's subcategories
	ListByCategory(ctx context.Context, categoryID uuid.UUID) ([]entity.Item, error)
	ListBySubcategory(ctx context.Context, subcategoryID uuid.UUID) ([]entity.Item, error)
}
