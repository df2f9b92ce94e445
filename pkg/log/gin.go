package log

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const headerRequestID = "X-Request-ID"

// GinMiddleware returns a Gin middleware that tags each request with an id
// (taken from X-Request-ID or generated), stores a child logger in the request
// context and logs the completed request. Errors attached with c.Error are
// logged with the request.
func GinMiddleware(logger zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		reqID := c.GetHeader(headerRequestID)
		if reqID == "" {
			reqID = uuid.New().String()
		}

		child := logger.With().
			Str(FieldRequestID, reqID).
			Str(FieldMethod, c.Request.Method).
			Str(FieldPath, c.Request.URL.Path).
			Str(FieldClientIP, c.ClientIP()).
			Logger()

		c.Header(headerRequestID, reqID)
		c.Request = c.Request.WithContext(WithLogger(c.Request.Context(), child))

		c.Next()

		lvl := zerolog.InfoLevel
		if len(c.Errors) > 0 {
			lvl = zerolog.WarnLevel
		}
		evt := child.WithLevel(lvl)
		if len(c.Errors) > 0 {
			evt = evt.Str("errors", c.Errors.String())
		}
		if ns := c.Param("ns"); ns != "" {
			evt = evt.Str(FieldNamespace, ns)
		}

		evt.Int(FieldStatus, c.Writer.Status()).
			Float64(FieldLatency, float64(time.Since(start).Milliseconds())).
			Msg("request completed")
	}
}
