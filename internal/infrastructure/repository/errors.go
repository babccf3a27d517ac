package repository

import (
	"errors"
	"strings"

	"github.com/sangkips/menu-api/pkg/apperror"
	"gorm.io/gorm"
)

// translateError maps unique violations to a duplicate error naming the
// offending field. Other errors pass through.
func translateError(err error) error {
	if isDuplicateKeyErr(err) {
		return apperror.NewDuplicateError("name", err)
	}
	return err
}

func isDuplicateKeyErr(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	// PostgreSQL (23505)
	if strings.Contains(err.Error(), "duplicate key value violates unique constraint") {
		return true
	}
	// SQLite (2067)
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
