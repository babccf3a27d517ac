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

func TestCreateCategory(t *testing.T) {
	s := newServices(t)
	ctx := context.Background()

	category, err := s.categories.CreateCategory(ctx, &CreateCategoryInput{
		Name:             "  Drinks  ",
		TaxApplicability: true,
		Tax:              ptr(5.0),
		TaxType:          "Percentage",
		Image:            pngUpload("drinks.png"),
	})
	require.NoError(t, err)

	assert.Equal(t, "Drinks", category.Name)
	assert.True(t, category.TaxApplicability)
	assert.Equal(t, 5.0, *category.Tax)
	assert.Equal(t, enum.TaxTypePercentage, category.TaxType)
	require.NotNil(t, category.Image)
	assert.Contains(t, *category.Image, "menu_categories/")
	assert.Equal(t, 1, s.cache.invalidations)
}

func TestCreateCategory_Defaults(t *testing.T) {
	s := newServices(t)

	category, err := s.categories.CreateCategory(context.Background(), &CreateCategoryInput{Name: "Snacks", Tax: ptr(3.0)})
	require.NoError(t, err)

	assert.False(t, category.TaxApplicability)
	assert.Nil(t, category.Tax, "tax is dropped while applicability is off")
	assert.Equal(t, enum.TaxTypePercentage, category.TaxType)
	assert.Nil(t, category.Image)
}

func TestCreateCategory_ValidationRunsBeforeRules(t *testing.T) {
	s := newServices(t)

	_, err := s.categories.CreateCategory(context.Background(), &CreateCategoryInput{
		Name:             "",
		TaxApplicability: true,
		TaxType:          "flat",
	})
	require.Error(t, err)

	appErr := apperror.GetAppError(err)
	assert.Equal(t, apperror.KindValidation, appErr.Kind)
	assert.Len(t, appErr.Errors, 2)
}

func TestCreateCategory_TaxRequiredWhenApplicable(t *testing.T) {
	s := newServices(t)

	_, err := s.categories.CreateCategory(context.Background(), &CreateCategoryInput{Name: "Drinks", TaxApplicability: true})
	assert.ErrorIs(t, err, rules.ErrTaxRequired)
	assert.Equal(t, 0, s.cache.invalidations)
}

func TestCreateCategory_DuplicateNameDiscardsUpload(t *testing.T) {
	s := newServices(t)
	ctx := context.Background()

	_, err := s.categories.CreateCategory(ctx, &CreateCategoryInput{Name: "Drinks"})
	require.NoError(t, err)

	_, err = s.categories.CreateCategory(ctx, &CreateCategoryInput{Name: "Drinks", Image: pngUpload("dup.png")})
	require.Error(t, err)
	assert.True(t, apperror.IsKind(err, apperror.KindDuplicate))
	assert.Equal(t, "Name already exists", err.Error())

	assert.Len(t, s.storage.deleted, 1)
	assert.Empty(t, s.storage.objects)
}

func TestCreateCategory_UploadFailureAborts(t *testing.T) {
	s := newServices(t)
	s.storage.uploadErr = errStorageDown
	ctx := context.Background()

	_, err := s.categories.CreateCategory(ctx, &CreateCategoryInput{Name: "Drinks", Image: pngUpload("a.png")})
	require.Error(t, err)
	assert.True(t, apperror.IsKind(err, apperror.KindUpstream))

	list, err := s.categories.ListCategories(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestUpdateCategory_TaxStateMachine(t *testing.T) {
	s := newServices(t)
	ctx := context.Background()

	category, err := s.categories.CreateCategory(ctx, &CreateCategoryInput{Name: "Drinks"})
	require.NoError(t, err)

	_, err = s.categories.UpdateCategory(ctx, &UpdateCategoryInput{ID: category.ID, Tax: ptr(4.0)})
	assert.ErrorIs(t, err, rules.ErrTaxWhileDisabled)

	_, err = s.categories.UpdateCategory(ctx, &UpdateCategoryInput{ID: category.ID, TaxApplicability: ptr(true)})
	assert.ErrorIs(t, err, rules.ErrTaxRequiredToEnable)

	updated, err := s.categories.UpdateCategory(ctx, &UpdateCategoryInput{ID: category.ID, TaxApplicability: ptr(true), Tax: ptr(4.0)})
	require.NoError(t, err)
	assert.Equal(t, 4.0, *updated.Tax)

	updated, err = s.categories.UpdateCategory(ctx, &UpdateCategoryInput{ID: category.ID, TaxApplicability: ptr(false)})
	require.NoError(t, err)
	assert.False(t, updated.TaxApplicability)

	stored, err := s.categories.GetCategory(ctx, category.ID)
	require.NoError(t, err)
	assert.False(t, stored.TaxApplicability)
	assert.Nil(t, stored.Tax)
}

func TestUpdateCategory_ReplacesImage(t *testing.T) {
	s := newServices(t)
	ctx := context.Background()

	category, err := s.categories.CreateCategory(ctx, &CreateCategoryInput{Name: "Drinks", Image: pngUpload("old.png")})
	require.NoError(t, err)
	oldURL := *category.Image

	s.storage.deleteErr = errStorageDown
	updated, err := s.categories.UpdateCategory(ctx, &UpdateCategoryInput{
		ID:      category.ID,
		Name:    ptr("Beverages"),
		TaxType: ptr("fixed"),
		Image:   pngUpload("new.png"),
	})
	require.NoError(t, err, "a failed delete of the old image is not fatal")

	assert.Equal(t, "Beverages", updated.Name)
	assert.Equal(t, enum.TaxTypeFixed, updated.TaxType)
	assert.NotEqual(t, oldURL, *updated.Image)
	assert.Equal(t, []string{oldURL}, s.storage.deleted)
}

func TestUpdateCategory_NotFound(t *testing.T) {
	s := newServices(t)

	_, err := s.categories.UpdateCategory(context.Background(), &UpdateCategoryInput{ID: uuid.New(), Name: ptr("X")})
	require.Error(t, err)
	assert.Equal(t, "Category not found", err.Error())
}

func TestGetCategoryByName(t *testing.T) {
	s := newServices(t)
	ctx := context.Background()

	_, err := s.categories.CreateCategory(ctx, &CreateCategoryInput{Name: "Drinks"})
	require.NoError(t, err)

	found, err := s.categories.GetCategoryByName(ctx, "drinks")
	require.NoError(t, err)
	assert.Equal(t, "Drinks", found.Name)

	_, err = s.categories.GetCategoryByName(ctx, "drink")
	assert.True(t, apperror.IsKind(err, apperror.KindNotFound))

	_, err = s.categories.GetCategoryByName(ctx, "  ")
	require.Error(t, err)
	assert.Equal(t, "Search name is required", apperror.GetAppError(err).Errors[0].Message)
}
