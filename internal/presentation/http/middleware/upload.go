package middleware

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/gin-gonic/gin"
	"github.com/sangkips/menu-api/internal/application/service"
	"github.com/sangkips/menu-api/internal/presentation/http/dto/response"
	"github.com/sangkips/menu-api/pkg/apperror"
)

const (
	// ImageField is the multipart field carrying an entity image
	ImageField = "image"

	imageKey = "upload_image"

	// DefaultMaxUploadSize is used when no limit is configured
	DefaultMaxUploadSize int64 = 5 << 20

	// room for the other form fields
	formOverhead int64 = 1 << 20
)

var allowedImageTypes = []string{"image/jpeg", "image/jpg", "image/png", "image/webp"}

// Upload reads the optional image of a multipart request. The file must be
// a JPEG, PNG or WEBP image no larger than maxSize, both by its declared
// type and by its content.
func Upload(maxSize int64) gin.HandlerFunc {
	if maxSize <= 0 {
		maxSize = DefaultMaxUploadSize
	}
	tooLarge := fileTooLarge(maxSize)

	return func(c *gin.Context) {
		if !strings.HasPrefix(c.ContentType(), "multipart/form-data") {
			c.Next()
			return
		}

		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxSize+formOverhead)
		if err := c.Request.ParseMultipartForm(maxSize); err != nil {
			var maxErr *http.MaxBytesError
			if errors.As(err, &maxErr) {
				response.Abort(c, tooLarge)
				return
			}
			response.Abort(c, apperror.NewUploadError("Invalid multipart form"))
			return
		}

		header, err := c.FormFile(ImageField)
		if errors.Is(err, http.ErrMissingFile) {
			c.Next()
			return
		}
		if err != nil {
			response.Abort(c, apperror.NewUploadError("Invalid image upload"))
			return
		}

		if header.Size > maxSize {
			response.Abort(c, tooLarge)
			return
		}
		if !allowedImageType(header.Header.Get("Content-Type")) {
			response.Abort(c, apperror.ErrInvalidFileType)
			return
		}

		file, err := header.Open()
		if err != nil {
			response.Abort(c, apperror.NewUploadError("Invalid image upload"))
			return
		}
		defer file.Close()

		data, err := io.ReadAll(io.LimitReader(file, maxSize+1))
		if err != nil {
			response.Abort(c, apperror.NewUploadError("Invalid image upload"))
			return
		}
		if int64(len(data)) > maxSize {
			response.Abort(c, tooLarge)
			return
		}

		detected := mimetype.Detect(data)
		if !allowedImageType(detected.String()) {
			response.Abort(c, apperror.ErrInvalidFileType)
			return
		}

		c.Set(imageKey, &service.ImageUpload{
			Filename:    header.Filename,
			ContentType: detected.String(),
			Data:        data,
		})
		c.Next()
	}
}

// GetImage returns the image accepted by Upload, or nil
func GetImage(c *gin.Context) *service.ImageUpload {
	v, exists := c.Get(imageKey)
	if !exists {
		return nil
	}
	image, _ := v.(*service.ImageUpload)
	return image
}

func allowedImageType(contentType string) bool {
	contentType = strings.TrimSpace(strings.SplitN(contentType, ";", 2)[0])
	return mimetype.EqualsAny(strings.ToLower(contentType), allowedImageTypes...)
}

func fileTooLarge(maxSize int64) error {
	if maxSize == DefaultMaxUploadSize {
		return apperror.ErrFileTooLarge
	}
	return apperror.NewUploadError(fmt.Sprintf("File size too large. Maximum size is %dMB", maxSize>>20))
}
