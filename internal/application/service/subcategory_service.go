package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/sangkips/menu-api/internal/domain/entity"
	"github.com/sangkips/menu-api/internal/domain/repository"
	"github.com/sangkips/menu-api/internal/domain/rules"
	"github.com/sangkips/menu-api/pkg/apperror"
	"github.com/sangkips/menu-api/pkg/validation"
)

// SubcategoryService handles subcategory-related operations
type SubcategoryService struct {
	subcategoryRepo repository.SubcategoryRepository
	categoryRepo    repository.CategoryRepository
	media           *MediaService
	cache           repository.TreeCache
	validator       *validation.Validator
}

// NewSubcategoryService creates a new subcategory service
func NewSubcategoryService(
	subcategoryRepo repository.SubcategoryRepository,
	categoryRepo repository.CategoryRepository,
	media *MediaService,
	cache repository.TreeCache,
) *SubcategoryService {
	return &SubcategoryService{
		subcategoryRepo: subcategoryRepo,
		categoryRepo:    categoryRepo,
		media:           media,
		cache:           cache,
		validator:       validation.Default(),
	}
}

// CreateSubcategoryInput represents the create subcategory input. Tax
// fields left nil are copied from the parent category.
type CreateSubcategoryInput struct {
	Name             string       `json:"name" validate:"notblank,max=100" label:"Subcategory name"`
	Description      *string      `json:"description" validate:"omitempty,max=500" label:"Description"`
	CategoryID       string       `json:"categoryId" validate:"required,uuid" label:"Category ID"`
	TaxApplicability *bool        `json:"taxApplicability"`
	Tax              *float64     `json:"tax" validate:"omitempty,gte=0" label:"Tax"`
	Image            *ImageUpload `json:"-" validate:"-"`
}

// CreateSubcategory creates a new subcategory under an existing category
func (s *SubcategoryService) CreateSubcategory(ctx context.Context, input *CreateSubcategoryInput) (*entity.Subcategory, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.CategoryID = strings.TrimSpace(input.CategoryID)
	if err := s.validator.Struct(input); err != nil {
		return nil, err
	}

	parent, err := s.categoryRepo.GetByID(ctx, uuid.MustParse(input.CategoryID))
	if err != nil {
		return nil, err
	}
	if parent == nil {
		return nil, apperror.NewNotFoundError("Parent category")
	}

	tax, err := rules.InheritSubcategoryTax(input.TaxApplicability, input.Tax, parent)
	if err != nil {
		return nil, err
	}

	subcategory := &entity.Subcategory{
		CategoryID:       parent.ID,
		Name:             input.Name,
		Description:      trimmed(input.Description),
		TaxApplicability: &tax.Applicable,
		Tax:              tax.Tax,
	}

	if subcategory.Image, err = s.media.Attach(ctx, FolderSubcategories, input.Image); err != nil {
		return nil, err
	}
	if err := s.subcategoryRepo.Create(ctx, subcategory); err != nil {
		s.media.Release(ctx, subcategory.Image)
		return nil, err
	}

	invalidateTree(ctx, s.cache)
	subcategory.Category = parent
	return withEffectiveTax(subcategory), nil
}

// GetSubcategory retrieves a subcategory by ID
func (s *SubcategoryService) GetSubcategory(ctx context.Context, id uuid.UUID) (*entity.Subcategory, error) {
	subcategory, err := s.subcategoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if subcategory == nil {
		return nil, apperror.NewNotFoundError("Subcategory")
	}
	return withEffectiveTax(subcategory), nil
}

// GetSubcategoryByName retrieves a subcategory by case-insensitive name
func (s *SubcategoryService) GetSubcategoryByName(ctx context.Context, name string) (*entity.Subcategory, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, searchNameRequired()
	}
	subcategory, err := s.subcategoryRepo.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if subcategory == nil {
		return nil, apperror.NewNotFoundError("Subcategory")
	}
	return withEffectiveTax(subcategory), nil
}

// ListSubcategories lists all subcategories, newest first
func (s *SubcategoryService) ListSubcategories(ctx context.Context) ([]entity.Subcategory, error) {
	subcategories, err := s.subcategoryRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return withEffectiveTaxes(subcategories), nil
}

// ListByCategory lists the subcategories of an existing category
func (s *SubcategoryService) ListByCategory(ctx context.Context, categoryID uuid.UUID) ([]entity.Subcategory, error) {
	category, err := s.categoryRepo.GetByID(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, apperror.NewNotFoundError("Category")
	}

	subcategories, err := s.subcategoryRepo.ListByCategory(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	return withEffectiveTaxes(subcategories), nil
}

// UpdateSubcategoryInput represents the update subcategory input. Nil
// fields are left unchanged.
type UpdateSubcategoryInput struct {
	ID               uuid.UUID    `json:"-" validate:"-"`
	Name             *string      `json:"name" validate:"omitempty,notblank,max=100" label:"Subcategory name"`
	Description      *string      `json:"description" validate:"omitempty,max=500" label:"Description"`
	CategoryID       *string      `json:"categoryId" validate:"omitempty,uuid" label:"Category ID"`
	TaxApplicability *bool        `json:"taxApplicability"`
	Tax              *float64     `json:"tax" validate:"omitempty,gte=0" label:"Tax"`
	Image            *ImageUpload `json:"-" validate:"-"`
}

// UpdateSubcategory updates a subcategory, optionally moving it to another
// category
func (s *SubcategoryService) UpdateSubcategory(ctx context.Context, input *UpdateSubcategoryInput) (*entity.Subcategory, error) {
	input.Name = trimmed(input.Name)
	input.CategoryID = trimmed(input.CategoryID)
	if err := s.validator.Struct(input); err != nil {
		return nil, err
	}

	subcategory, err := s.subcategoryRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if subcategory == nil {
		return nil, apperror.NewNotFoundError("Subcategory")
	}

	parent := subcategory.Category
	if input.CategoryID != nil && *input.CategoryID != "" {
		categoryID := uuid.MustParse(*input.CategoryID)
		if categoryID != subcategory.CategoryID {
			parent, err = s.categoryRepo.GetByID(ctx, categoryID)
			if err != nil {
				return nil, err
			}
			if parent == nil {
				return nil, apperror.NewNotFoundError("New parent category")
			}
			subcategory.CategoryID = categoryID
		}
	}

	tax, err := rules.ApplyTaxChange(rules.SubcategoryTaxState(subcategory), input.TaxApplicability, input.Tax)
	if err != nil {
		return nil, err
	}
	if input.TaxApplicability != nil || input.Tax != nil {
		subcategory.TaxApplicability = &tax.Applicable
		subcategory.Tax = tax.Tax
	}

	if input.Name != nil && *input.Name != "" {
		subcategory.Name = *input.Name
	}
	if input.Description != nil {
		subcategory.Description = trimmed(input.Description)
	}

	previousImage := subcategory.Image
	image, err := s.media.Attach(ctx, FolderSubcategories, input.Image)
	if err != nil {
		return nil, err
	}
	if image != nil {
		subcategory.Image = image
	}

	subcategory.Category = nil
	if err := s.subcategoryRepo.Update(ctx, subcategory); err != nil {
		s.media.Release(ctx, image)
		return nil, err
	}
	if image != nil {
		s.media.Release(ctx, previousImage)
	}

	invalidateTree(ctx, s.cache)
	subcategory.Category = parent
	return withEffectiveTax(subcategory), nil
}

func withEffectiveTax(subcategory *entity.Subcategory) *entity.Subcategory {
	effective := rules.EffectiveSubcategoryTax(subcategory, subcategory.Category)
	subcategory.EffectiveTax = &effective
	return subcategory
}

func withEffectiveTaxes(subcategories []entity.Subcategory) []entity.Subcategory {
	for i := range subcategories {
		withEffectiveTax(&subcategories[i])
	}
	return subcategories
}
