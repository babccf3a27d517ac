package rules

import (
	"github.com/sangkips/menu-api/internal/domain/entity"
	"github.com/sangkips/menu-api/internal/domain/enum"
)

// TaxState is the pair of tax fields every entity carries. Tax is nil
// whenever Applicable is false.
type TaxState struct {
	Applicable bool
	Tax        *float64
}

// NewTax builds the tax state of a freshly created entity. A tax supplied
// while applicability is off is dropped.
func NewTax(applicable bool, tax *float64) (TaxState, error) {
	if !applicable {
		return TaxState{}, nil
	}
	if tax == nil || *tax < 0 {
		return TaxState{}, ErrTaxRequired
	}
	return TaxState{Applicable: true, Tax: copyFloat(tax)}, nil
}

// ApplyTaxChange moves current through the tax state machine.
//
//	no-tax      --enable + tax-->  tax-enabled
//	tax-enabled --disable------->  no-tax (tax cleared)
//	tax-enabled --tax----------->  tax-enabled (tax replaced)
//	no-tax      --tax----------->  rejected
func ApplyTaxChange(current TaxState, applicable *bool, tax *float64) (TaxState, error) {
	if tax != nil && *tax < 0 {
		return current, ErrTaxRequired
	}

	if applicable == nil {
		if tax == nil {
			return current, nil
		}
		if !current.Applicable {
			return current, ErrTaxWhileDisabled
		}
		return TaxState{Applicable: true, Tax: copyFloat(tax)}, nil
	}

	if !*applicable {
		return TaxState{}, nil
	}

	switch {
	case tax != nil:
		return TaxState{Applicable: true, Tax: copyFloat(tax)}, nil
	case current.Applicable && current.Tax != nil:
		return TaxState{Applicable: true, Tax: copyFloat(current.Tax)}, nil
	case current.Applicable:
		return current, ErrTaxRequired
	default:
		return current, ErrTaxRequiredToEnable
	}
}

// InheritSubcategoryTax resolves the tax fields of a new subcategory. When
// the payload carries no applicability the parent's current settings are
// copied; a lone tax value then runs through the state machine from that
// copy.
func InheritSubcategoryTax(applicable *bool, tax *float64, parent *entity.Category) (TaxState, error) {
	if applicable != nil {
		return NewTax(*applicable, tax)
	}

	inherited := TaxState{}
	if parent != nil && parent.TaxApplicability {
		inherited = TaxState{Applicable: true, Tax: copyFloat(parent.Tax)}
	}
	return ApplyTaxChange(inherited, nil, tax)
}

// SubcategoryTaxState returns the stored tax state of sub. Missing fields
// count as no-tax.
func SubcategoryTaxState(sub *entity.Subcategory) TaxState {
	if sub.TaxApplicability == nil || !*sub.TaxApplicability {
		return TaxState{}
	}
	return TaxState{Applicable: true, Tax: copyFloat(sub.Tax)}
}

// EffectiveSubcategoryTax returns the tax applied to sub. Fields set on the
// subcategory win; fields still null fall back to the parent's current
// values. The tax type always comes from the parent.
func EffectiveSubcategoryTax(sub *entity.Subcategory, parent *entity.Category) entity.TaxSettings {
	var settings entity.TaxSettings
	settings.TaxType = enum.TaxTypePercentage
	if parent != nil {
		settings.TaxType = parent.TaxType
	}

	switch {
	case sub.TaxApplicability != nil:
		settings.TaxApplicability = *sub.TaxApplicability
	case parent != nil:
		settings.TaxApplicability = parent.TaxApplicability
	}
	if !settings.TaxApplicability {
		return settings
	}

	switch {
	case sub.Tax != nil:
		settings.Tax = copyFloat(sub.Tax)
	case sub.TaxApplicability == nil && parent != nil:
		settings.Tax = copyFloat(parent.Tax)
	}
	return settings
}

func copyFloat(f *float64) *float64 {
	if f == nil {
		return nil
	}
	v := *f
	return &v
}
