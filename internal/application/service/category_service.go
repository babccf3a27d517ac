package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/sangkips/menu-api/internal/domain/entity"
	"github.com/sangkips/menu-api/internal/domain/enum"
	"github.com/sangkips/menu-api/internal/domain/repository"
	"github.com/sangkips/menu-api/internal/domain/rules"
	"github.com/sangkips/menu-api/pkg/apperror"
	"github.com/sangkips/menu-api/pkg/validation"
)

// CategoryService handles category-related operations
type CategoryService struct {
	categoryRepo repository.CategoryRepository
	media        *MediaService
	cache        repository.TreeCache
	validator    *validation.Validator
}

// NewCategoryService creates a new category service
func NewCategoryService(categoryRepo repository.CategoryRepository, media *MediaService, cache repository.TreeCache) *CategoryService {
	return &CategoryService{
		categoryRepo: categoryRepo,
		media:        media,
		cache:        cache,
		validator:    validation.Default(),
	}
}

// CreateCategoryInput represents the create category input
type CreateCategoryInput struct {
	Name             string       `json:"name" validate:"notblank,max=100" label:"Category name"`
	Description      *string      `json:"description" validate:"omitempty,max=500" label:"Description"`
	TaxApplicability bool         `json:"taxApplicability"`
	Tax              *float64     `json:"tax" validate:"omitempty,gte=0" label:"Tax"`
	TaxType          string       `json:"taxType" validate:"omitempty,oneof=percentage fixed" label:"Tax type"`
	Image            *ImageUpload `json:"-" validate:"-"`
}

// CreateCategory creates a new category
func (s *CategoryService) CreateCategory(ctx context.Context, input *CreateCategoryInput) (*entity.Category, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.TaxType = strings.ToLower(strings.TrimSpace(input.TaxType))
	if err := s.validator.Struct(input); err != nil {
		return nil, err
	}

	tax, err := rules.NewTax(input.TaxApplicability, input.Tax)
	if err != nil {
		return nil, err
	}

	taxType := enum.TaxTypePercentage
	if input.TaxType != "" {
		if taxType, err = enum.ParseTaxType(input.TaxType); err != nil {
			return nil, apperror.NewBadRequestError("Tax type must be one of: percentage, fixed")
		}
	}

	category := &entity.Category{
		Name:             input.Name,
		Description:      trimmed(input.Description),
		TaxApplicability: tax.Applicable,
		Tax:              tax.Tax,
		TaxType:          taxType,
	}

	if category.Image, err = s.media.Attach(ctx, FolderCategories, input.Image); err != nil {
		return nil, err
	}
	if err := s.categoryRepo.Create(ctx, category); err != nil {
		s.media.Release(ctx, category.Image)
		return nil, err
	}

	invalidateTree(ctx, s.cache)
	return category, nil
}

// GetCategory retrieves a category by ID
func (s *CategoryService) GetCategory(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, apperror.NewNotFoundError("Category")
	}
	return category, nil
}

// GetCategoryByName retrieves a category by case-insensitive name
func (s *CategoryService) GetCategoryByName(ctx context.Context, name string) (*entity.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, searchNameRequired()
	}
	category, err := s.categoryRepo.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, apperror.NewNotFoundError("Category")
	}
	return category, nil
}

// ListCategories lists all categories, newest first
func (s *CategoryService) ListCategories(ctx context.Context) ([]entity.Category, error) {
	return s.categoryRepo.List(ctx)
}

// UpdateCategoryInput represents the update category input. Nil fields are
// left unchanged.
type UpdateCategoryInput struct {
	ID               uuid.UUID    `json:"-" validate:"-"`
	Name             *string      `json:"name" validate:"omitempty,notblank,max=100" label:"Category name"`
	Description      *string      `json:"description" validate:"omitempty,max=500" label:"Description"`
	TaxApplicability *bool        `json:"taxApplicability"`
	Tax              *float64     `json:"tax" validate:"omitempty,gte=0" label:"Tax"`
	TaxType          *string      `json:"taxType" validate:"omitempty,oneof=percentage fixed" label:"Tax type"`
	Image            *ImageUpload `json:"-" validate:"-"`
}

// UpdateCategory updates a category
func (s *CategoryService) UpdateCategory(ctx context.Context, input *UpdateCategoryInput) (*entity.Category, error) {
	input.Name = trimmed(input.Name)
	if input.TaxType != nil {
		lowered := strings.ToLower(strings.TrimSpace(*input.TaxType))
		input.TaxType = &lowered
	}
	if err := s.validator.Struct(input); err != nil {
		return nil, err
	}

	category, err := s.GetCategory(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	tax, err := rules.ApplyTaxChange(
		rules.TaxState{Applicable: category.TaxApplicability, Tax: category.Tax},
		input.TaxApplicability, input.Tax,
	)
	if err != nil {
		return nil, err
	}
	category.TaxApplicability = tax.Applicable
	category.Tax = tax.Tax

	if input.Name != nil && *input.Name != "" {
		category.Name = *input.Name
	}
	if input.Description != nil {
		category.Description = trimmed(input.Description)
	}
	if input.TaxType != nil && *input.TaxType != "" {
		category.TaxType = enum.TaxType(*input.TaxType)
	}

	previousImage := category.Image
	image, err := s.media.Attach(ctx, FolderCategories, input.Image)
	if err != nil {
		return nil, err
	}
	if image != nil {
		category.Image = image
	}

	if err := s.categoryRepo.Update(ctx, category); err != nil {
		s.media.Release(ctx, image)
		return nil, err
	}
	if image != nil {
		s.media.Release(ctx, previousImage)
	}

	invalidateTree(ctx, s.cache)
	return category, nil
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	return &v
}

func searchNameRequired() error {
	return apperror.NewValidationError([]apperror.FieldError{
		{Field: "name", Message: "Search name is required"},
	})
}
