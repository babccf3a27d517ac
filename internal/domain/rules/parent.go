// Package rules holds the write-time integrity rules of the menu hierarchy.
// Every function is pure; callers load and persist state around them.
package rules

import (
	"strings"

	"github.com/google/uuid"
	"github.com/sangkips/menu-api/internal/domain/entity"
	"github.com/sangkips/menu-api/pkg/apperror"
)

// ParentChange is the parent part of an item payload. A nil field was not
// sent; an empty string clears the reference.
type ParentChange struct {
	CategoryID    *string
	SubCategoryID *string
}

// Touched reports whether the payload mentions either parent.
func (c ParentChange) Touched() bool {
	return c.CategoryID != nil || c.SubCategoryID != nil
}

// ResolveParent computes the parent references an item ends up with after
// applying change to current. Use a zero current for creates.
//
// Setting one reference clears the other. The result always has exactly
// one reference set.
func ResolveParent(current entity.Parent, change ParentChange) (entity.Parent, error) {
	categoryID, err := parseRef(change.CategoryID, "Invalid category id")
	if err != nil {
		return current, err
	}
	subCategoryID, err := parseRef(change.SubCategoryID, "Invalid subcategory id")
	if err != nil {
		return current, err
	}

	if categoryID != nil && subCategoryID != nil {
		return current, ErrBothParents
	}

	next := current
	if change.CategoryID != nil {
		next.CategoryID = categoryID
		if categoryID != nil {
			next.SubCategoryID = nil
		}
	}
	if change.SubCategoryID != nil {
		next.SubCategoryID = subCategoryID
		if subCategoryID != nil {
			next.CategoryID = nil
		}
	}

	switch {
	case next.CategoryID != nil && next.SubCategoryID != nil:
		return current, ErrBothParents
	case next.CategoryID == nil && next.SubCategoryID == nil:
		return current, ErrNoParent
	}
	return next, nil
}

// parseRef returns nil for an absent or blank reference.
func parseRef(raw *string, invalid string) (*uuid.UUID, error) {
	if raw == nil {
		return nil, nil
	}
	s := strings.TrimSpace(*raw)
	if s == "" {
		return nil, nil
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return nil, apperror.NewBadRequestError(invalid)
	}
	return &id, nil
}
