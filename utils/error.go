package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorHandler is a middleware to catch panics and return a generic error.
// The panic detail is logged for operators and never sent to the caller.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				Logger := GetLogger()
				Logger.Error("Unhandled panic", zap.Any("error", err))

				c.String(http.StatusInternalServerError, "Server error")
				c.Abort()
			}
		}()
		c.Next()
	}
}

// TextError sends a plain-text error response and logs the full detail.
func TextError(c *gin.Context, status int, message string, details string) {
	Logger := GetLogger()
	Logger.Warn(message, zap.Int("status", status), zap.String("details", details))
	c.String(status, message)
}
