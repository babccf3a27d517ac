// Package menutree assembles the flat category, subcategory and item
// collections into the nested menu forest.
package menutree

import (
	"github.com/google/uuid"
	"github.com/sangkips/menu-api/internal/domain/entity"
)

// CategoryNode is a root of the forest
type CategoryNode struct {
	*entity.Category
	SubCategories    []*SubcategoryNode `json:"subCategories"`
	Items            []*entity.Item     `json:"items"`
	SubCategoryCount int                `json:"subCategoryCount"`
	// ItemCount includes items reached through subcategories
	ItemCount int `json:"itemCount"`
}

// SubcategoryNode hangs under exactly one CategoryNode
type SubcategoryNode struct {
	*entity.Subcategory
	Items     []*entity.Item `json:"items"`
	ItemCount int            `json:"itemCount"`

	parent *CategoryNode
}

// Build returns one node per category with subcategories and items attached
// to their declared parents. Subcategories and items whose parent is not in
// the input are dropped. An item with a subcategory reference only attaches
// there, even if it also names a category.
//
// Each collection is walked once and children keep their input order.
func Build(categories []entity.Category, subcategories []entity.Subcategory, items []entity.Item) []*CategoryNode {
	forest := make([]*CategoryNode, 0, len(categories))
	byCategory := make(map[uuid.UUID]*CategoryNode, len(categories))
	for i := range categories {
		node := &CategoryNode{
			Category:      &categories[i],
			SubCategories: []*SubcategoryNode{},
			Items:         []*entity.Item{},
		}
		forest = append(forest, node)
		byCategory[node.ID] = node
	}

	bySubcategory := make(map[uuid.UUID]*SubcategoryNode, len(subcategories))
	for i := range subcategories {
		sub := &subcategories[i]
		parent, ok := byCategory[sub.CategoryID]
		if !ok {
			continue
		}
		node := &SubcategoryNode{Subcategory: sub, Items: []*entity.Item{}, parent: parent}
		parent.SubCategories = append(parent.SubCategories, node)
		parent.SubCategoryCount++
		bySubcategory[sub.ID] = node
	}

	for i := range items {
		item := &items[i]
		switch {
		case item.SubCategoryID != nil:
			node, ok := bySubcategory[*item.SubCategoryID]
			if !ok {
				continue
			}
			node.Items = append(node.Items, item)
			node.ItemCount++
			node.parent.ItemCount++
		case item.CategoryID != nil:
			node, ok := byCategory[*item.CategoryID]
			if !ok {
				continue
			}
			node.Items = append(node.Items, item)
			node.ItemCount++
		}
	}

	return forest
}
