package repository

import (
	"strings"

	"gorm.io/gorm"
)

// NewestFirst orders results by creation time, most recent first
func NewestFirst(db *gorm.DB) *gorm.DB {
	return db.Order("created_at DESC")
}

// NameEquals matches name case-insensitively and prefers the oldest record
func NameEquals(name string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("LOWER(name) = LOWER(?)", strings.TrimSpace(name)).Order("created_at ASC")
	}
}

// NameContains matches a case-insensitive substring of name. LIKE wildcards
// in the query are matched literally.
func NameContains(query string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		pattern := "%" + escapeLike(strings.ToLower(strings.TrimSpace(query))) + "%"
		return db.Where(`LOWER(name) LIKE ? ESCAPE '\'`, pattern)
	}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
