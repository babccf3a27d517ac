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

// ItemService handles item-related operations
type ItemService struct {
	itemRepo        repository.ItemRepository
	categoryRepo    repository.CategoryRepository
	subcategoryRepo repository.SubcategoryRepository
	media           *MediaService
	cache           repository.TreeCache
	validator       *validation.Validator
}

// NewItemService creates a new item service
func NewItemService(
	itemRepo repository.ItemRepository,
	categoryRepo repository.CategoryRepository,
	subcategoryRepo repository.SubcategoryRepository,
	media *MediaService,
	cache repository.TreeCache,
) *ItemService {
	return &ItemService{
		itemRepo:        itemRepo,
		categoryRepo:    categoryRepo,
		subcategoryRepo: subcategoryRepo,
		media:           media,
		cache:           cache,
		validator:       validation.Default(),
	}
}

// CreateItemInput represents the create item input
type CreateItemInput struct {
	Name             string       `json:"name" validate:"notblank,max=100" label:"Item name"`
	Description      *string      `json:"description" validate:"omitempty,max=500" label:"Description"`
	TaxApplicability *bool        `json:"taxApplicability" validate:"required" label:"Tax applicability"`
	Tax              *float64     `json:"tax" validate:"omitempty,gte=0" label:"Tax"`
	BaseAmount       *float64     `json:"baseAmount" validate:"required,gte=0" label:"Base amount"`
	Discount         *float64     `json:"discount" validate:"omitempty,gte=0" label:"Discount"`
	CategoryID       *string      `json:"categoryId" validate:"omitempty,uuid" label:"Category ID"`
	SubCategoryID    *string      `json:"subCategoryId" validate:"omitempty,uuid" label:"Subcategory ID"`
	Image            *ImageUpload `json:"-" validate:"-"`
}

// CreateItem creates a new item under an existing category or subcategory
func (s *ItemService) CreateItem(ctx context.Context, input *CreateItemInput) (*entity.Item, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.CategoryID = trimmed(input.CategoryID)
	input.SubCategoryID = trimmed(input.SubCategoryID)
	if err := s.validator.Struct(input); err != nil {
		return nil, err
	}

	parent, err := rules.ResolveParent(entity.Parent{}, rules.ParentChange{
		CategoryID:    input.CategoryID,
		SubCategoryID: input.SubCategoryID,
	})
	if err != nil {
		return nil, err
	}
	if err := s.ensureParentExists(ctx, entity.Parent{}, parent); err != nil {
		return nil, err
	}

	tax, err := rules.NewTax(*input.TaxApplicability, input.Tax)
	if err != nil {
		return nil, err
	}

	item := &entity.Item{
		Name:             input.Name,
		Description:      trimmed(input.Description),
		TaxApplicability: tax.Applicable,
		Tax:              tax.Tax,
		BaseAmount:       *input.BaseAmount,
	}
	if input.Discount != nil {
		item.Discount = *input.Discount
	}
	item.SetParent(parent)

	if err := s.prepare(item); err != nil {
		return nil, err
	}

	if item.Image, err = s.media.Attach(ctx, FolderItems, input.Image); err != nil {
		return nil, err
	}
	if err := s.itemRepo.Create(ctx, item); err != nil {
		s.media.Release(ctx, item.Image)
		return nil, err
	}

	invalidateTree(ctx, s.cache)
	return s.reload(ctx, item)
}

// GetItem retrieves an item by ID
func (s *ItemService) GetItem(ctx context.Context, id uuid.UUID) (*entity.Item, error) {
	item, err := s.itemRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperror.NewNotFoundError("Item")
	}
	return item, nil
}

// GetItemByName retrieves an item by case-insensitive name
func (s *ItemService) GetItemByName(ctx context.Context, name string) (*entity.Item, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, searchNameRequired()
	}
	item, err := s.itemRepo.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperror.NewNotFoundError("Item")
	}
	return item, nil
}

// ListItems lists all items, newest first
func (s *ItemService) ListItems(ctx context.Context) ([]entity.Item, error) {
	return s.itemRepo.List(ctx)
}

// SearchItems finds items whose name contains query, ignoring case
func (s *ItemService) SearchItems(ctx context.Context, query string) ([]entity.Item, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: "name", Message: "Search query is required"},
		})
	}
	return s.itemRepo.Search(ctx, query)
}

// ListByCategory lists the items of a category, including those under its
// subcategories
func (s *ItemService) ListByCategory(ctx context.Context, categoryID uuid.UUID) ([]entity.Item, error) {
	category, err := s.categoryRepo.GetByID(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, apperror.NewNotFoundError("Category")
	}
	return s.itemRepo.ListByCategory(ctx, categoryID)
}

// ListBySubcategory lists the items of a subcategory
func (s *ItemService) ListBySubcategory(ctx context.Context, subcategoryID uuid.UUID) ([]entity.Item, error) {
	subcategory, err := s.subcategoryRepo.GetByID(ctx, subcategoryID)
	if err != nil {
		return nil, err
	}
	if subcategory == nil {
		return nil, apperror.NewNotFoundError("Subcategory")
	}
	return s.itemRepo.ListBySubcategory(ctx, subcategoryID)
}

// UpdateItemInput represents the update item input. Nil fields are left
// unchanged; an empty parent id clears that reference.
type UpdateItemInput struct {
	ID               uuid.UUID    `json:"-" validate:"-"`
	Name             *string      `json:"name" validate:"omitempty,notblank,max=100" label:"Item name"`
	Description      *string      `json:"description" validate:"omitempty,max=500" label:"Description"`
	TaxApplicability *bool        `json:"taxApplicability"`
	Tax              *float64     `json:"tax" validate:"omitempty,gte=0" label:"Tax"`
	BaseAmount       *float64     `json:"baseAmount" validate:"omitempty,gte=0" label:"Base amount"`
	Discount         *float64     `json:"discount" validate:"omitempty,gte=0" label:"Discount"`
	CategoryID       *string      `json:"categoryId" validate:"omitempty,uuid" label:"Category ID"`
	SubCategoryID    *string      `json:"subCategoryId" validate:"omitempty,uuid" label:"Subcategory ID"`
	Image            *ImageUpload `json:"-" validate:"-"`
}

// UpdateItem updates an item. Nothing is persisted when any rule rejects
// the resulting state.
func (s *ItemService) UpdateItem(ctx context.Context, input *UpdateItemInput) (*entity.Item, error) {
	input.Name = trimmed(input.Name)
	input.CategoryID = trimmed(input.CategoryID)
	input.SubCategoryID = trimmed(input.SubCategoryID)
	if err := s.validator.Struct(input); err != nil {
		return nil, err
	}

	item, err := s.GetItem(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	change := rules.ParentChange{CategoryID: input.CategoryID, SubCategoryID: input.SubCategoryID}
	if change.Touched() {
		current := item.Parent()
		next, err := rules.ResolveParent(current, change)
		if err != nil {
			return nil, err
		}
		if err := s.ensureParentExists(ctx, current, next); err != nil {
			return nil, err
		}
		item.SetParent(next)
	}

	tax, err := rules.ApplyTaxChange(
		rules.TaxState{Applicable: item.TaxApplicability, Tax: item.Tax},
		input.TaxApplicability, input.Tax,
	)
	if err != nil {
		return nil, err
	}
	item.TaxApplicability = tax.Applicable
	item.Tax = tax.Tax

	if input.BaseAmount != nil {
		item.BaseAmount = *input.BaseAmount
	}
	if input.Discount != nil {
		item.Discount = *input.Discount
	}
	if input.Name != nil && *input.Name != "" {
		item.Name = *input.Name
	}
	if input.Description != nil {
		item.Description = trimmed(input.Description)
	}

	if err := s.prepare(item); err != nil {
		return nil, err
	}

	previousImage := item.Image
	image, err := s.media.Attach(ctx, FolderItems, input.Image)
	if err != nil {
		return nil, err
	}
	if image != nil {
		item.Image = image
	}

	item.Category = nil
	item.SubCategory = nil
	if err := s.itemRepo.Update(ctx, item); err != nil {
		s.media.Release(ctx, image)
		return nil, err
	}
	if image != nil {
		s.media.Release(ctx, previousImage)
	}

	invalidateTree(ctx, s.cache)
	return s.reload(ctx, item)
}

// prepare runs the write-time rules and derives the total
func (s *ItemService) prepare(item *entity.Item) error {
	if err := rules.CheckDiscount(item.BaseAmount, item.Discount); err != nil {
		return err
	}
	rules.NormalizeItem(item)
	return rules.CheckItem(item)
}

// ensureParentExists verifies a parent reference that differs from current
func (s *ItemService) ensureParentExists(ctx context.Context, current, next entity.Parent) error {
	if next.CategoryID != nil && !sameID(current.CategoryID, next.CategoryID) {
		category, err := s.categoryRepo.GetByID(ctx, *next.CategoryID)
		if err != nil {
			return err
		}
		if category == nil {
			return apperror.NewNotFoundError("Category")
		}
	}
	if next.SubCategoryID != nil && !sameID(current.SubCategoryID, next.SubCategoryID) {
		subcategory, err := s.subcategoryRepo.GetByID(ctx, *next.SubCategoryID)
		if err != nil {
			return err
		}
		if subcategory == nil {
			return apperror.NewNotFoundError("Subcategory")
		}
	}
	return nil
}

// reload returns the stored item with its parents loaded
func (s *ItemService) reload(ctx context.Context, item *entity.Item) (*entity.Item, error) {
	loaded, err := s.itemRepo.GetByID(ctx, item.ID)
	if err != nil {
		return nil, err
	}
	if loaded == nil {
		return item, nil
	}
	return loaded, nil
}

func sameID(a, b *uuid.UUID) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
