package handlers

import (
	"aspcare/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// getLogger returns the logger middleware.RequestLogger stored for this request, which
// already carries the requestID field echoed in X-Request-ID. Outside that middleware the
// global logger is used, tagged with the caller's X-Request-ID when one was sent.
func getLogger(c *gin.Context) *zap.Logger {
	if l, ok := c.Get("logger"); ok {
		if logger, ok := l.(*zap.Logger); ok {
			return logger
		}
	}
	if reqID := c.GetHeader("X-Request-ID"); reqID != "" {
		return utils.GetLogger().With(zap.String("requestID", reqID))
	}
	return utils.GetLogger()
}
