package slogx

import (
	"crypto/rand"
	"encoding/hex"
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
)

const requestIDHeader = "X-Request-Id"

// GinMiddleware tags the request context with a request id and writes one
// access record per request.
func GinMiddleware(l *Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		reqID := c.GetHeader(requestIDHeader)
		if reqID == "" {
			reqID = newRequestID()
		}
		c.Header(requestIDHeader, reqID)

		ctx := ContextWith(c.Request.Context(), RequestId(reqID))
		c.Request = c.Request.WithContext(ctx)

		c.Next()

		attrs := []slog.Attr{
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.Int("status", c.Writer.Status()),
			slog.Duration("duration", time.Since(start)),
		}

		if len(c.Errors) > 0 {
			l.Error(c.Request.Context(), "finish with error", append(attrs, slog.String("err", c.Errors.String()))...)
			return
		}

		l.Info(c.Request.Context(), "finish http request", attrs...)
	}
}

func newRequestID() string {
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		return "unknown"
	}

	return hex.EncodeToString(b[:])
}
