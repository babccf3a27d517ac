package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sangkips/menu-api/internal/domain/entity"
	domainRepo "github.com/sangkips/menu-api/internal/domain/repository"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type itemRepository struct {
	db *gorm.DB
}

// NewItemRepository creates a new item repository
func NewItemRepository(db *gorm.DB) domainRepo.ItemRepository {
	return &itemRepository{db: db}
}

// withParents loads both possible owners of an item
func withParents(db *gorm.DB) *gorm.DB {
	return db.Preload("Category").Preload("SubCategory")
}

func (r *itemRepository) Create(ctx context.Context, item *entity.Item) error {
	return translateError(r.db.WithContext(ctx).Omit(clause.Associations).Create(item).Error)
}

func (r *itemRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Item, error) {
	var item entity.Item
	err := r.db.WithContext(ctx).Scopes(withParents).First(&item, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &item, err
}

func (r *itemRepository) GetByName(ctx context.Context, name string) (*entity.Item, error) {
	var item entity.Item
	err := r.db.WithContext(ctx).Scopes(withParents, NameEquals(name)).Take(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &item, err
}

func (r *itemRepository) Update(ctx context.Context, item *entity.Item) error {
	return translateError(r.db.WithContext(ctx).Omit(clause.Associations).Save(item).Error)
}

func (r *itemRepository) List(ctx context.Context) ([]entity.Item, error) {
	items := []entity.Item{}
	err := r.db.WithContext(ctx).Scopes(withParents, NewestFirst).Find(&items).Error
	return items, err
}

func (r *itemRepository) Search(ctx context.Context, query string) ([]entity.Item, error) {
	items := []entity.Item{}
	err := r.db.WithContext(ctx).Scopes(withParents, NameContains(query), NewestFirst).Find(&items).Error
	return items, err
}

// ListByCategory returns items owned by the category directly or through
// one of its subcategories
func (r *itemRepository) ListByCategory(ctx context.Context, categoryID uuid.UUID) ([]entity.Item, error) {
	subcategoryIDs := r.db.WithContext(ctx).
		Model(&entity.Subcategory{}).
		Select("id").
		Where("category_id = ?", categoryID)

	items := []entity.Item{}
	err := r.db.WithContext(ctx).
		Scopes(withParents).
		Where("category_id = ? OR sub_category_id IN (?)", categoryID, subcategoryIDs).
		Scopes(NewestFirst).
		Find(&items).Error
	return items, err
}

func (r *itemRepository) ListBySubcategory(ctx context.Context, subcategoryID uuid.UUID) ([]entity.Item, error) {
	items := []entity.Item{}
	err := r.db.WithContext(ctx).
		Scopes(withParents).
		Where("sub_category_id = ?", subcategoryID).
		Scopes(NewestFirst).
		Find(&items).Error
	return items, err
}
