package server

import (
	"auction-engine/utils"
	"time"

	"github.com/gin-gonic/gin"
)

// RequestLoggerMiddleware logs incoming requests with timing and a request
// id echoed back in the X-Request-ID header.
func RequestLoggerMiddleware(c *gin.Context) {
	start := time.Now()
	requestID := utils.NewRequestID()
	c.Writer.Header().Set("X-Request-ID", requestID)

	c.Next() // process request

	utils.Info("HTTP Request", map[string]any{
		"request_id": requestID,
		"method":     c.Request.Method,
		"path":       c.Request.URL.Path,
		"status":     c.Writer.Status(),
		"latency":    time.Since(start).String(),
	})
}
