package rules

import "github.com/sangkips/menu-api/pkg/apperror"

// Business rule violations
var (
	ErrBothParents         = apperror.NewBusinessRuleError("Item cannot belong to both category and subcategory")
	ErrNoParent            = apperror.NewBusinessRuleError("Item must belong to either a category or subcategory")
	ErrDiscountExceedsBase = apperror.NewBusinessRuleError("Discount cannot exceed base amount")
	ErrTaxRequired         = apperror.NewBusinessRuleError("Tax value is required and must be non-negative when tax applicability is enabled")
	ErrTaxRequiredToEnable = apperror.NewBusinessRuleError("Tax value is required when enabling tax applicability")
	ErrTaxWhileDisabled    = apperror.NewBusinessRuleError("Cannot set tax value when tax applicability is disabled")
)
