package request

import (
	"github.com/google/uuid"
	"github.com/sangkips/menu-api/internal/application/service"
)

// CreateCategoryRequest represents the create category request, sent as
// JSON or multipart form
type CreateCategoryRequest struct {
	Name             string   `json:"name" form:"name"`
	Description      *string  `json:"description" form:"description"`
	TaxApplicability bool     `json:"taxApplicability" form:"taxApplicability"`
	Tax              *float64 `json:"tax" form:"tax"`
	TaxType          string   `json:"taxType" form:"taxType"`
}

// ToInput converts the request to a service input
func (r *CreateCategoryRequest) ToInput(image *service.ImageUpload) *service.CreateCategoryInput {
	return &service.CreateCategoryInput{
		Name:             r.Name,
		Description:      r.Description,
		TaxApplicability: r.TaxApplicability,
		Tax:              r.Tax,
		TaxType:          r.TaxType,
		Image:            image,
	}
}

// UpdateCategoryRequest represents the update category request
type UpdateCategoryRequest struct {
	Name             *string  `json:"name" form:"name"`
	Description      *string  `json:"description" form:"description"`
	TaxApplicability *bool    `json:"taxApplicability" form:"taxApplicability"`
	Tax              *float64 `json:"tax" form:"tax"`
	TaxType          *string  `json:"taxType" form:"taxType"`
}

// ToInput converts the request to a service input
func (r *UpdateCategoryRequest) ToInput(id uuid.UUID, image *service.ImageUpload) *service.UpdateCategoryInput {
	return &service.UpdateCategoryInput{
		ID:               id,
		Name:             r.Name,
		Description:      r.Description,
		TaxApplicability: r.TaxApplicability,
		Tax:              r.Tax,
		TaxType:          r.TaxType,
		Image:            image,
	}
}
