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

type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a new category repository
func NewCategoryRepository(db *gorm.DB) domainRepo.CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) Create(ctx context.Context, category *entity.Category) error {
	return translateError(r.db.WithContext(ctx).Omit(clause.Associations).Create(category).Error)
}

func (r *categoryRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	var category entity.Category
	err := r.db.WithContext(ctx).First(&category, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &category, err
}

func (r *categoryRepository) GetByName(ctx context.Context, name string) (*entity.Category, error) {
	var category entity.Category
	err := r.db.WithContext(ctx).Scopes(NameEquals(name)).Take(&category).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &category, err
}

func (r *categoryRepository) Update(ctx context.Context, category *entity.Category) error {
	return translateError(r.db.WithContext(ctx).Omit(clause.Associations).Save(category).Error)
}

func (r *categoryRepository) List(ctx context.Context) ([]entity.Category, error) {
	categories := []entity.Category{}
	err := r.db.WithContext(ctx).Scopes(NewestFirst).Find(&categories).Error
	return categories, err
}
