package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/menu-api/internal/domain/enum"
	"gorm.io/gorm"
)

// Category is the root of the menu hierarchy
type Category struct {
	ID               uuid.UUID    `gorm:"type:uuid;primary_key" json:"id"`
	Name             string       `gorm:"size:100;not null;uniqueIndex" json:"name"`
	Description      *string      `gorm:"size:500" json:"description,omitempty"`
	Image            *string      `gorm:"size:512" json:"image"`
	TaxApplicability bool         `gorm:"not null;default:false" json:"taxApplicability"`
	Tax              *float64     `json:"tax"`
	TaxType          enum.TaxType `gorm:"size:20;not null;default:'percentage'" json:"taxType"`
	CreatedAt        time.Time    `json:"createdAt"`
	UpdatedAt        time.Time    `json:"updatedAt"`

	// Relationships
	Subcategories []Subcategory `gorm:"foreignKey:CategoryID" json:"-"`
	Items         []Item        `gorm:"foreignKey:CategoryID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new category
func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Category model
func (Category) TableName() string {
	return "categories"
}

// TaxSettings returns the category's own tax settings
func (c *Category) TaxSettings() TaxSettings {
	return TaxSettings{
		TaxApplicability: c.TaxApplicability,
		Tax:              c.Tax,
		TaxType:          c.TaxType,
	}
}

// TaxSettings is the tax actually applied to an entity, whether declared
// on the entity itself or taken from its parent.
type TaxSettings struct {
	TaxApplicability bool         `json:"taxApplicability"`
	Tax              *float64     `json:"tax"`
	TaxType          enum.TaxType `json:"taxType"`
}
