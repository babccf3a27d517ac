package rules

import (
	"testing"

	"github.com/sangkips/menu-api/internal/domain/entity"
	"github.com/sangkips/menu-api/internal/domain/enum"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(f float64) *float64 { return &f }
func boolPtr(b bool) *bool        { return &b }

func TestNewTax(t *testing.T) {
	state, err := NewTax(true, floatPtr(5))
	require.NoError(t, err)
	assert.Equal(t, TaxState{Applicable: true, Tax: floatPtr(5)}, state)

	state, err = NewTax(true, floatPtr(0))
	require.NoError(t, err)
	assert.Equal(t, 0.0, *state.Tax)

	_, err = NewTax(true, nil)
	assert.ErrorIs(t, err, ErrTaxRequired)

	_, err = NewTax(true, floatPtr(-1))
	assert.ErrorIs(t, err, ErrTaxRequired)

	state, err = NewTax(false, floatPtr(12))
	require.NoError(t, err)
	assert.Equal(t, TaxState{}, state)
}

func TestApplyTaxChange(t *testing.T) {
	enabled := TaxState{Applicable: true, Tax: floatPtr(8)}
	disabled := TaxState{}

	tests := []struct {
		name       string
		current    TaxState
		applicable *bool
		tax        *float64
		want       TaxState
		wantErr    error
	}{
		{"no change", enabled, nil, nil, enabled, nil},
		{"enable with tax", disabled, boolPtr(true), floatPtr(3), TaxState{true, floatPtr(3)}, nil},
		{"enable without tax", disabled, boolPtr(true), nil, disabled, ErrTaxRequiredToEnable},
		{"re-enable keeps tax", enabled, boolPtr(true), nil, enabled, nil},
		{"disable clears tax", enabled, boolPtr(false), nil, disabled, nil},
		{"disable ignores tax", enabled, boolPtr(false), floatPtr(4), disabled, nil},
		{"tax only while enabled", enabled, nil, floatPtr(0), TaxState{true, floatPtr(0)}, nil},
		{"tax only while disabled", disabled, nil, floatPtr(4), disabled, ErrTaxWhileDisabled},
		{"negative tax", enabled, nil, floatPtr(-2), enabled, ErrTaxRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ApplyTaxChange(tt.current, tt.applicable, tt.tax)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestApplyTaxChange_ApplicableImpliesTax(t *testing.T) {
	states := []TaxState{{}, {Applicable: true, Tax: floatPtr(1)}}
	applicabilities := []*bool{nil, boolPtr(true), boolPtr(false)}
	taxes := []*float64{nil, floatPtr(0), floatPtr(7)}

	for _, s := range states {
		for _, a := range applicabilities {
			for _, tax := range taxes {
				got, err := ApplyTaxChange(s, a, tax)
				if err != nil {
					continue
				}
				if got.Applicable {
					require.NotNil(t, got.Tax)
					assert.GreaterOrEqual(t, *got.Tax, 0.0)
				} else {
					assert.Nil(t, got.Tax)
				}
			}
		}
	}
}

func TestInheritSubcategoryTax(t *testing.T) {
	drinks := &entity.Category{Name: "Drinks", TaxApplicability: true, Tax: floatPtr(5), TaxType: enum.TaxTypePercentage}

	state, err := InheritSubcategoryTax(nil, nil, drinks)
	require.NoError(t, err)
	assert.Equal(t, TaxState{Applicable: true, Tax: floatPtr(5)}, state)

	state, err = InheritSubcategoryTax(boolPtr(false), nil, drinks)
	require.NoError(t, err)
	assert.Equal(t, TaxState{}, state)

	state, err = InheritSubcategoryTax(nil, floatPtr(12), drinks)
	require.NoError(t, err)
	assert.Equal(t, 12.0, *state.Tax)

	_, err = InheritSubcategoryTax(nil, floatPtr(12), &entity.Category{Name: "Snacks"})
	assert.ErrorIs(t, err, ErrTaxWhileDisabled)
}

func TestInheritSubcategoryTax_IsACopy(t *testing.T) {
	parent := &entity.Category{TaxApplicability: true, Tax: floatPtr(5)}

	state, err := InheritSubcategoryTax(nil, nil, parent)
	require.NoError(t, err)

	*parent.Tax = 9
	assert.Equal(t, 5.0, *state.Tax)
}

func TestEffectiveSubcategoryTax(t *testing.T) {
	parent := &entity.Category{TaxApplicability: true, Tax: floatPtr(5), TaxType: enum.TaxTypeFixed}

	own := &entity.Subcategory{TaxApplicability: boolPtr(true), Tax: floatPtr(2)}
	assert.Equal(t, entity.TaxSettings{TaxApplicability: true, Tax: floatPtr(2), TaxType: enum.TaxTypeFixed},
		EffectiveSubcategoryTax(own, parent))

	inheriting := &entity.Subcategory{}
	assert.Equal(t, entity.TaxSettings{TaxApplicability: true, Tax: floatPtr(5), TaxType: enum.TaxTypeFixed},
		EffectiveSubcategoryTax(inheriting, parent))

	optedOut := &entity.Subcategory{TaxApplicability: boolPtr(false)}
	assert.Equal(t, entity.TaxSettings{TaxType: enum.TaxTypeFixed}, EffectiveSubcategoryTax(optedOut, parent))

	orphan := &entity.Subcategory{TaxApplicability: boolPtr(true), Tax: floatPtr(1)}
	assert.Equal(t, enum.TaxTypePercentage, EffectiveSubcategoryTax(orphan, nil).TaxType)
}
