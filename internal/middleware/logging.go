package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/deepaksolulab007/payment-system-stripe/internal/logger"
)

// RequestLoggingMiddleware logs one line per request after it completes. It never
// reads the request body.
func RequestLoggingMiddleware(log *zap.Logger) gin.HandlerFunc {
	base := logger.OrGlobal(log)
	return func(c *gin.Context) {
		startTime := time.Now()

		c.Next()

		fields := []zap.Field{
			zap.String("correlation_id", GetCorrelationID(c)),
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(startTime)),
			zap.String("client_ip", c.ClientIP()),
			zap.Int("body_size", c.Writer.Size()),
		}
		if c.Writer.Status() >= 500 {
			base.Error("Request completed", fields...)
			return
		}
		base.Info("Request completed", fields...)
	}
}
