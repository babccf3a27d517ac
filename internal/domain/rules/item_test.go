package rules

import (
	"testing"

	"github.com/google/uuid"
	"github.com/sangkips/menu-api/internal/domain/entity"
	"github.com/stretchr/testify/assert"
)

func TestCheckDiscount(t *testing.T) {
	assert.NoError(t, CheckDiscount(100, 30))
	assert.NoError(t, CheckDiscount(100, 100))
	assert.ErrorIs(t, CheckDiscount(100, 100.01), ErrDiscountExceedsBase)
}

func TestNormalizeItem(t *testing.T) {
	item := &entity.Item{BaseAmount: 100, Discount: 30, TotalAmount: 999}
	NormalizeItem(item)
	assert.Equal(t, 70.0, item.TotalAmount)

	item.Discount = 0
	NormalizeItem(item)
	assert.Equal(t, 100.0, item.TotalAmount)
}

func TestCheckItem(t *testing.T) {
	cat := uuid.New()
	sub := uuid.New()

	valid := entity.Item{CategoryID: &cat, BaseAmount: 10, Discount: 2}
	assert.NoError(t, CheckItem(&valid))

	both := valid
	both.SubCategoryID = &sub
	assert.ErrorIs(t, CheckItem(&both), ErrBothParents)

	orphan := valid
	orphan.CategoryID = nil
	assert.ErrorIs(t, CheckItem(&orphan), ErrNoParent)

	taxless := valid
	taxless.TaxApplicability = true
	assert.ErrorIs(t, CheckItem(&taxless), ErrTaxRequired)

	overDiscount := valid
	overDiscount.Discount = 11
	assert.ErrorIs(t, CheckItem(&overDiscount), ErrDiscountExceedsBase)
}
