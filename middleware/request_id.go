package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"psicocitas/utils"
)

const (
	RequestIDKey = "requestID"
	loggerKey    = "requestLogger"
)

// RequestIDMiddleware tags every request with an ID so a submission can be
// traced across the recorder and notifier logs. An inbound X-Request-ID is
// honored, otherwise a fresh one is generated. A logger carrying the ID is
// stored on the context for handlers to pick up via ContextLogger.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.New().String()
		}
		c.Set(RequestIDKey, id)
		c.Set(loggerKey, utils.GetLogger().With(zap.String("requestID", id)))
		c.Writer.Header().Set("X-Request-ID", id)
		c.Next()
	}
}

// ContextLogger returns the request-scoped logger, falling back to the
// global one when the middleware did not run (tests, bare routers).
func ContextLogger(c *gin.Context) *zap.Logger {
	if v, ok := c.Get(loggerKey); ok {
		if logger, ok := v.(*zap.Logger); ok {
			return logger
		}
	}
	return utils.GetLogger()
}
