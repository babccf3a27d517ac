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

type subcategoryRepository struct {
	db *gorm.DB
}

// NewSubcategoryRepository creates a new subcategory repository
func NewSubcategoryRepository(db *gorm.DB) domainRepo.SubcategoryRepository {
	return &subcategoryRepository{db: db}
}

func (r *subcategoryRepository) Create(ctx context.Context, subcategory *entity.Subcategory) error {
	return translateError(r.db.WithContext(ctx).Omit(clause.Associations).Create(subcategory).Error)
}

func (r *subcategoryRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Subcategory, error) {
	var subcategory entity.Subcategory
	err := r.db.WithContext(ctx).Preload("Category").First(&subcategory, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &subcategory, err
}

func (r *subcategoryRepository) GetByName(ctx context.Context, name string) (*entity.Subcategory, error) {
	var subcategory entity.Subcategory
	err := r.db.WithContext(ctx).Preload("Category").Scopes(NameEquals(name)).Take(&subcategory).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &subcategory, err
}

func (r *subcategoryRepository) Update(ctx context.Context, subcategory *entity.Subcategory) error {
	return translateError(r.db.WithContext(ctx).Omit(clause.Associations).Save(subcategory).Error)
}

func (r *subcategoryRepository) List(ctx context.Context) ([]entity.Subcategory, error) {
	subcategories := []entity.Subcategory{}
	err := r.db.WithContext(ctx).Preload("Category").Scopes(NewestFirst).Find(&subcategories).Error
	return subcategories, err
}

func (r *subcategoryRepository) ListByCategory(ctx context.Context, categoryID uuid.UUID) ([]entity.Subcategory, error) {
	subcategories := []entity.Subcategory{}
	err := r.db.WithContext(ctx).
		Preload("Category").
		Where("category_id = ?", categoryID).
		Scopes(NewestFirst).
		Find(&subcategories).Error
	return subcategories, err
}
