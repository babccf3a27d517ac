package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/sangkips/menu-api/internal/domain/enum"
	"github.com/sangkips/menu-api/internal/domain/rules"
	"github.com/sangkips/menu-api/pkg/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateSubcategory_InheritsParentTax(t *testing.T) {
	s := newServices(t)
	ctx := context.Background()

	drinks, err := s.categories.CreateCategory(ctx, &CreateCategoryInput{
		Name: "Drinks", TaxApplicability: true, Tax: ptr(5.0), TaxType: "percentage",
	})
	require.NoError(t, err)

	soda, err := s.subcategories.CreateSubcategory(ctx, &CreateSubcategoryInput{Name: "Soda", CategoryID: drinks.ID.String()})
	require.NoError(t, err)

	require.NotNil(t, soda.TaxApplicability)
	assert.True(t, *soda.TaxApplicability)
	assert.Equal(t, 5.0, *soda.Tax)
	require.NotNil(t, soda.EffectiveTax)
	assert.True(t, soda.EffectiveTax.TaxApplicability)
	assert.Equal(t, 5.0, *soda.EffectiveTax.Tax)
	assert.Equal(t, enum.TaxTypePercentage, soda.EffectiveTax.TaxType)
	require.NotNil(t, soda.Category)
	assert.Equal(t, "Drinks", soda.Category.Name)
}

func TestCreateSubcategory_InheritanceIsPointInTime(t *testing.T) {
	s := newServices(t)
	ctx := context.Background()

	drinks, err := s.categories.CreateCategory(ctx, &CreateCategoryInput{Name: "Drinks", TaxApplicability: true, Tax: ptr(5.0)})
	require.NoError(t, err)
	soda, err := s.subcategories.CreateSubcategory(ctx, &CreateSubcategoryInput{Name: "Soda", CategoryID: drinks.ID.String()})
	require.NoError(t, err)

	_, err = s.categories.UpdateCategory(ctx, &UpdateCategoryInput{ID: drinks.ID, Tax: ptr(9.0), TaxType: ptr("fixed")})
	require.NoError(t, err)

	reloaded, err := s.subcategories.GetSubcategory(ctx, soda.ID)
	require.NoError(t, err)
	assert.Equal(t, 5.0, *reloaded.Tax)
	assert.Equal(t, 5.0, *reloaded.EffectiveTax.Tax)
	assert.Equal(t, enum.TaxTypeFixed, reloaded.EffectiveTax.TaxType, "tax type always follows the parent")
}

func TestCreateSubcategory_ExplicitTax(t *testing.T) {
	s := newServices(t)
	ctx := context.Background()

	drinks, err := s.categories.CreateCategory(ctx, &CreateCategoryInput{Name: "Drinks", TaxApplicability: true, Tax: ptr(5.0)})
	require.NoError(t, err)

	juice, err := s.subcategories.CreateSubcategory(ctx, &CreateSubcategoryInput{
		Name: "Juice", CategoryID: drinks.ID.String(), TaxApplicability: ptr(false),
	})
	require.NoError(t, err)
	assert.False(t, *juice.TaxApplicability)
	assert.Nil(t, juice.Tax)
	assert.False(t, juice.EffectiveTax.TaxApplicability)

	_, err = s.subcategories.CreateSubcategory(ctx, &CreateSubcategoryInput{
		Name: "Tea", CategoryID: drinks.ID.String(), TaxApplicability: ptr(true),
	})
	assert.ErrorIs(t, err, rules.ErrTaxRequired)
}

func TestCreateSubcategory_ParentMustExist(t *testing.T) {
	s := newServices(t)
	ctx := context.Background()

	_, err := s.subcategories.CreateSubcategory(ctx, &CreateSubcategoryInput{Name: "Soda", CategoryID: uuid.NewString()})
	require.Error(t, err)
	assert.True(t, apperror.IsKind(err, apperror.KindNotFound))
	assert.Equal(t, "Parent category not found", err.Error())

	_, err = s.subcategories.CreateSubcategory(ctx, &CreateSubcategoryInput{Name: "Soda", CategoryID: "abc"})
	require.Error(t, err)
	appErr := apperror.GetAppError(err)
	assert.Equal(t, apperror.KindValidation, appErr.Kind)
	assert.Equal(t, "Invalid category id", appErr.Errors[0].Message)
}

func TestUpdateSubcategory_MovesParent(t *testing.T) {
	s := newServices(t)
	ctx := context.Background()

	drinks, err := s.categories.CreateCategory(ctx, &CreateCategoryInput{Name: "Drinks"})
	require.NoError(t, err)
	food, err := s.categories.CreateCategory(ctx, &CreateCategoryInput{Name: "Food", TaxType: "fixed"})
	require.NoError(t, err)
	sub, err := s.subcategories.CreateSubcategory(ctx, &CreateSubcategoryInput{Name: "Snacks", CategoryID: drinks.ID.String()})
	require.NoError(t, err)

	_, err = s.subcategories.UpdateSubcategory(ctx, &UpdateSubcategoryInput{ID: sub.ID, CategoryID: ptr(uuid.NewString())})
	require.Error(t, err)
	assert.Equal(t, "New parent category not found", err.Error())

	moved, err := s.subcategories.UpdateSubcategory(ctx, &UpdateSubcategoryInput{ID: sub.ID, CategoryID: ptr(food.ID.String())})
	require.NoError(t, err)
	assert.Equal(t, food.ID, moved.CategoryID)
	assert.Equal(t, enum.TaxTypeFixed, moved.EffectiveTax.TaxType)

	list, err := s.subcategories.ListByCategory(ctx, drinks.ID)
	require.NoError(t, err)
	assert.Empty(t, list)
	list, err = s.subcategories.ListByCategory(ctx, food.ID)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestUpdateSubcategory_TaxToggle(t *testing.T) {
	s := newServices(t)
	ctx := context.Background()

	drinks, err := s.categories.CreateCategory(ctx, &CreateCategoryInput{Name: "Drinks", TaxApplicability: true, Tax: ptr(5.0)})
	require.NoError(t, err)
	soda, err := s.subcategories.CreateSubcategory(ctx, &CreateSubcategoryInput{Name: "Soda", CategoryID: drinks.ID.String()})
	require.NoError(t, err)

	updated, err := s.subcategories.UpdateSubcategory(ctx, &UpdateSubcategoryInput{ID: soda.ID, TaxApplicability: ptr(false)})
	require.NoError(t, err)
	assert.False(t, *updated.TaxApplicability)
	assert.Nil(t, updated.Tax)

	_, err = s.subcategories.UpdateSubcategory(ctx, &UpdateSubcategoryInput{ID: soda.ID, Tax: ptr(2.0)})
	assert.ErrorIs(t, err, rules.ErrTaxWhileDisabled)
}

func TestListByCategory_ParentMustExist(t *testing.T) {
	s := newServices(t)

	_, err := s.subcategories.ListByCategory(context.Background(), uuid.New())
	require.Error(t, err)
	assert.Equal(t, "Category not found", err.Error())
}

func TestGetSubcategoryByName(t *testing.T) {
	s := newServices(t)
	ctx := context.Background()

	drinks, err := s.categories.CreateCategory(ctx, &CreateCategoryInput{Name: "Drinks"})
	require.NoError(t, err)
	_, err = s.subcategories.CreateSubcategory(ctx, &CreateSubcategoryInput{Name: "Soda", CategoryID: drinks.ID.String()})
	require.NoError(t, err)

	found, err := s.subcategories.GetSubcategoryByName(ctx, "SODA")
	require.NoError(t, err)
	assert.Equal(t, "Soda", found.Name)
	assert.NotNil(t, found.EffectiveTax)

	_, err = s.subcategories.GetSubcategoryByName(ctx, "Cola")
	assert.Equal(t, "Subcategory not found", err.Error())
}
