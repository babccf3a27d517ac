package rules

import "github.com/sangkips/menu-api/internal/domain/entity"

// CheckDiscount rejects a discount larger than the base amount.
func CheckDiscount(baseAmount, discount float64) error {
	if discount > baseAmount {
		return ErrDiscountExceedsBase
	}
	return nil
}

// NormalizeItem rewrites the derived total. It must run right before every
// persist of an item.
func NormalizeItem(item *entity.Item) {
	item.TotalAmount = item.BaseAmount - item.Discount
}

// CheckItem verifies the invariants a persisted item must hold.
func CheckItem(item *entity.Item) error {
	switch {
	case item.CategoryID != nil && item.SubCategoryID != nil:
		return ErrBothParents
	case item.CategoryID == nil && item.SubCategoryID == nil:
		return ErrNoParent
	}
	if item.TaxApplicability && (item.Tax == nil || *item.Tax < 0) {
		return ErrTaxRequired
	}
	return CheckDiscount(item.BaseAmount, item.Discount)
}
