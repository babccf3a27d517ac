package request

import (
	"github.com/google/uuid"
	"github.com/sangkips/menu-api/internal/application/service"
)

// CreateSubcategoryRequest represents the create subcategory request. Tax
// fields left out are inherited from the parent category.
type CreateSubcategoryRequest struct {
	Name             string   `json:"name" form:"name"`
	Description      *string  `json:"description" form:"description"`
	CategoryID       string   `json:"categoryId" form:"categoryId"`
	TaxApplicability *bool    `json:"taxApplicability" form:"taxApplicability"`
	Tax              *float64 `json:"tax" form:"tax"`
}

// ToInput converts the request to a service input
func (r *CreateSubcategoryRequest) ToInput(image *service.ImageUpload) *service.CreateSubcategoryInput {
	return &service.CreateSubcategoryInput{
		Name:             r.Name,
		Description:      r.Description,
		CategoryID:       r.CategoryID,
		TaxApplicability: r.TaxApplicability,
		Tax:              r.Tax,
		Image:            image,
	}
}

// UpdateSubcategoryRequest represents the update subcategory request
type UpdateSubcategoryRequest struct {
	Name             *string  `json:"name" form:"name"`
	Description      *string  `json:"description" form:"description"`
	CategoryID       *string  `json:"categoryId" form:"categoryId"`
	TaxApplicability *bool    `json:"taxApplicability" form:"taxApplicability"`
	Tax              *float64 `json:"tax" form:"tax"`
}

// ToInput converts the request to a service input
func (r *UpdateSubcategoryRequest) ToInput(id uuid.UUID, image *service.ImageUpload) *service.UpdateSubcategoryInput {
	return &service.UpdateSubcategoryInput{
		ID:               id,
		Name:             r.Name,
		Description:      r.Description,
		CategoryID:       r.CategoryID,
		TaxApplicability: r.TaxApplicability,
		Tax:              r.Tax,
		Image:            image,
	}
}
