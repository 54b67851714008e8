package middleware

import (
	"net/http"
	"runtime/debug"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	RequestIDHeader = "X-Request-ID"

	requestIDKey = "request_id"
	loggerKey    = "logger"
)

// RequestLogger tags every request with a request id (taken from the incoming
// header or freshly generated) and logs its completion.
func RequestLogger(logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Header("X-Request-Id", requestID)

		entry := logger.WithFields(logrus.Fields{
			"request-id": requestID,
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
		})
		c.Set(requestIDKey, requestID)
		c.Set(loggerKey, entry)

		c.Next()

		status := c.Writer.Status()
		fields := logrus.Fields{
			"status-code": status,
			"duration":    time.Since(start),
			"ip":          c.ClientIP(),
			"user-agent":  c.Request.UserAgent(),
		}
		if c.Request.URL.RawQuery != "" {
			fields["query"] = c.Request.URL.RawQuery
		}
		if len(c.Errors) > 0 {
			fields["errors"] = c.Errors.String()
		}
		done := entry.WithFields(fields)
		switch {
		case status >= http.StatusInternalServerError:
			done.Error("request completed")
		case status >= http.StatusBadRequest:
			done.Warn("request completed")
		default:
			done.Info("request completed")
		}
	}
}

// Recovery logs the panic with its stack and answers 500.
func Recovery(logger *logrus.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		Logger(c, logger).WithFields(logrus.Fields{
			"panic": recovered,
			"stack": string(debug.Stack()),
		}).Error("panic recovered in request handler")
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	})
}

// Logger returns the request-scoped entry set by RequestLogger, or a plain
// entry on fallback when the middleware did not run.
func Logger(c *gin.Context, fallback *logrus.Logger) *logrus.Entry {
	if v, ok := c.Get(loggerKey); ok {
		if entry, ok := v.(*logrus.Entry); ok {
			return entry
		}
	}
	return logrus.NewEntry(fallback)
}

func requestIDOf(c *gin.Context) string {
	return c.GetString(requestIDKey)
}
