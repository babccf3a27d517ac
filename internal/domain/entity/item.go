package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Item is a sellable menu entry owned by either a Category or a Subcategory
type Item struct {
	ID               uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	CategoryID       *uuid.UUID `gorm:"type:uuid;index;index:idx_items_category_subcategory,priority:1" json:"categoryId"`
	SubCategoryID    *uuid.UUID `gorm:"type:uuid;index;index:idx_items_category_subcategory,priority:2" json:"subCategoryId"`
	Name             string     `gorm:"size:100;not null;index" json:"name"`
	Description      *string    `gorm:"size:500" json:"description,omitempty"`
	Image            *string    `gorm:"size:512" json:"image"`
	TaxApplicability bool       `gorm:"not null" json:"taxApplicability"`
	Tax              *float64   `json:"tax"`
	BaseAmount       float64    `gorm:"not null" json:"baseAmount"`
	Discount         float64    `gorm:"not null;default:0" json:"discount"`
	TotalAmount      float64    `gorm:"not null" json:"totalAmount"`
	CreatedAt        time.Time  `json:"createdAt"`
	UpdatedAt        time.Time  `json:"updatedAt"`

	// Relationships
	Category    *Category    `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	SubCategory *Subcategory `gorm:"foreignKey:SubCategoryID" json:"subCategory,omitempty"`
}

// BeforeCreate generates a UUID before creating a new item
func (i *Item) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Item model
func (Item) TableName() string {
	return "items"
}

// Parent returns the item's owner references
func (i *Item) Parent() Parent {
	return Parent{CategoryID: i.CategoryID, SubCategoryID: i.SubCategoryID}
}

// SetParent replaces both owner references
func (i *Item) SetParent(p Parent) {
	i.CategoryID = p.CategoryID
	i.SubCategoryID = p.SubCategoryID
}

// Parent identifies the owner of an item. Exactly one field is set on a
// persisted item.
type Parent struct {
	CategoryID    *uuid.UUID
	SubCategoryID *uuid.UUID
}
