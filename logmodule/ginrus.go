package logmodule

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

const requestIDHeader = "X-Request-ID"

// Ginrus returns a gin middleware which logs every request through logrus
// under the given prefix. A request id is attached to the context and the
// response so a request can be followed across log lines.
func Ginrus(name string) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		requestID := c.GetHeader(requestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Set("request_id", requestID)
		c.Header(requestIDHeader, requestID)

		c.Next()

		entry := log.WithFields(log.Fields{
			"prefix":     name,
			"request_id": requestID,
			"status":     c.Writer.Status(),
			"method":     c.Request.Method,
			"path":       path,
			"ip":         c.ClientIP(),
			"latency":    time.Since(start),
			"user_agent": c.Request.UserAgent(),
		})
		if requester := c.GetString("requester"); requester != "" {
			entry = entry.WithField("requester", requester)
		}

		switch status := c.Writer.Status(); {
		case len(c.Errors) > 0:
			entry.Error(c.Errors.ByType(gin.ErrorTypeAny).String())
		case status >= 500:
			entry.Error()
		case status >= 400:
			entry.Warn()
		default:
			entry.Info()
		}
	}
}
