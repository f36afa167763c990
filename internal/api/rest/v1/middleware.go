package v1

import (
	"time"

	"github.com/MGTheTrain/car-catalog/internal/pkg/logger"

	"github.com/gin-gonic/gin"
)

// RequestLogger logs one line per request through the application logger
func RequestLogger(log logger.Logger) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		ctx.Next()

		status := ctx.Writer.Status()
		args := []any{
			"method", ctx.Request.Method,
			"path", ctx.Request.URL.Path,
			"status", status,
			"latency", time.Since(start),
			"clientIP", ctx.ClientIP(),
		}
		if len(ctx.Errors) > 0 {
			args = append(args, "error", ctx.Errors.String())
		}

		switch {
		case status >= 500:
			log.Error("Request failed", args...)
		case status >= 400:
			log.Warn("Request rejected", args...)
		default:
			log.Info("Request handled", args...)
		}
	}
}
