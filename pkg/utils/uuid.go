package utils

import (
	"path"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"github.com/sangkips/menu-api/pkg/apperror"
)

// ParseUUID parses a path or query id, reporting a malformed value as
// apperror.ErrInvalidID
func ParseUUID(s string) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(s))
	if err != nil {
		return uuid.Nil, apperror.ErrInvalidID
	}
	return id, nil
}

// Slugify converts a string to a URL-friendly slug
func Slugify(s string) string {
	return slug.Make(s)
}

// ObjectKey builds a unique storage key "<folder>/<uuid>-<slug>.<ext>" for
// an uploaded file. The extension follows the detected content type; the
// filename's own extension is used only when the type is unknown.
func ObjectKey(folder, filename, contentType string) string {
	ext := strings.ToLower(path.Ext(filename))
	base := Slugify(strings.TrimSuffix(path.Base(filename), path.Ext(filename)))
	if mtype := mimetype.Lookup(contentType); mtype != nil {
		ext = mtype.Extension()
	}

	name := uuid.NewString()
	if base != "" {
		name += "-" + base
	}
	return folder + "/" + name + ext
}
