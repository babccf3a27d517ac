package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/sangkips/menu-api/internal/presentation/http/dto/response"
)

// ErrorHandler turns panics into the standard 500 envelope
func ErrorHandler() gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(nil, func(c *gin.Context, recovered any) {
		response.Abort(c, errors.Errorf("panic: %v", recovered))
	})
}
