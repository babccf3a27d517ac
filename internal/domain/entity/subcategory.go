package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Subcategory groups items under exactly one Category. Nil tax fields mean
// the value is taken from the parent category.
type Subcategory struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	CategoryID       uuid.UUID `gorm:"type:uuid;not null;index;index:idx_subcategories_category_name,priority:1" json:"categoryId"`
	Name             string    `gorm:"size:100;not null;index:idx_subcategories_category_name,priority:2" json:"name"`
	Description      *string   `gorm:"size:500" json:"description,omitempty"`
	Image            *string   `gorm:"size:512" json:"image"`
	TaxApplicability *bool     `json:"taxApplicability"`
	Tax              *float64  `json:"tax"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`

	// Relationships
	Category *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Items    []Item    `gorm:"foreignKey:SubCategoryID" json:"-"`

	// EffectiveTax is filled on reads when the parent category is loaded
	EffectiveTax *TaxSettings `gorm:"-" json:"effectiveTax,omitempty"`
}

// BeforeCreate generates a UUID before creating a new subcategory
func (s *Subcategory) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Subcategory model
func (Subcategory) TableName() string {
	return "subcategories"
}
