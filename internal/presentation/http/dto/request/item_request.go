package request

import (
	"github.com/google/uuid"
	"github.com/sangkips/menu-api/internal/application/service"
)

// CreateItemRequest represents the create item request. Exactly one of
// CategoryID and SubCategoryID must be set.
type CreateItemRequest struct {
	Name             string   `json:"name" form:"name"`
	Description      *string  `json:"description" form:"description"`
	TaxApplicability *bool    `json:"taxApplicability" form:"taxApplicability"`
	Tax              *float64 `json:"tax" form:"tax"`
	BaseAmount       *float64 `json:"baseAmount" form:"baseAmount"`
	Discount         *float64 `json:"discount" form:"discount"`
	CategoryID       *string  `json:"categoryId" form:"categoryId"`
	SubCategoryID    *string  `json:"subCategoryId" form:"subCategoryId"`
}

// ToInput converts the request to a service input
func (r *CreateItemRequest) ToInput(image *service.ImageUpload) *service.CreateItemInput {
	return &service.CreateItemInput{
		Name:             r.Name,
		Description:      r.Description,
		TaxApplicability: r.TaxApplicability,
		Tax:              r.Tax,
		BaseAmount:       r.BaseAmount,
		Discount:         r.Discount,
		CategoryID:       r.CategoryID,
		SubCategoryID:    r.SubCategoryID,
		Image:            image,
	}
}

// UpdateItemRequest represents the update item request. An empty parent id
// clears that reference.
type UpdateItemRequest struct {
	Name             *string  `json:"name" form:"name"`
	Description      *string  `json:"description" form:"description"`
	TaxApplicability *bool    `json:"taxApplicability" form:"taxApplicability"`
	Tax              *float64 `json:"tax" form:"tax"`
	BaseAmount       *float64 `json:"baseAmount" form:"baseAmount"`
	Discount         *float64 `json:"discount" form:"discount"`
	CategoryID       *string  `json:"categoryId" form:"categoryId"`
	SubCategoryID    *string  `json:"subCategoryId" form:"subCategoryId"`
}

// ToInput converts the request to a service input
func (r *UpdateItemRequest) ToInput(id uuid.UUID, image *service.ImageUpload) *service.UpdateItemInput {
	return &service.UpdateItemInput{
		ID:               id,
		Name:             r.Name,
		Description:      r.Description,
		TaxApplicability: r.TaxApplicability,
		Tax:              r.Tax,
		BaseAmount:       r.BaseAmount,
		Discount:         r.Discount,
		CategoryID:       r.CategoryID,
		SubCategoryID:    r.SubCategoryID,
		Image:            image,
	}
}

// SearchItemsRequest carries the search query string
type SearchItemsRequest struct {
	Name string `form:"name"`
}
