package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const sessionContextKey = "session_id"

// SessionMiddleware makes sure every request carries a session ID cookie.
// History is scoped to this ID and lives only in memory.
func SessionMiddleware(cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var id uuid.UUID
		if value, err := c.Cookie(cookieName); err == nil {
			if parsed, err := uuid.Parse(value); err == nil {
				id = parsed
			}
		}
		if id == uuid.Nil {
			id = uuid.New()
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(cookieName, id.String(), 0, "/", "", false, true)
		}

		c.Set(sessionContextKey, id)
		c.Next()
	}
}

func sessionID(c *gin.Context) uuid.UUID {
	if v, ok := c.Get(sessionContextKey); ok {
		if id, ok := v.(uuid.UUID); ok {
			return id
		}
	}
	return uuid.Nil
}

// RequestLogger logs one line per request. Query strings are not logged.
func RequestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("client_ip", c.ClientIP()),
		}
		if len(c.Errors) > 0 {
			fields = append(fields, zap.String("errors", c.Errors.String()))
		}

		if c.Writer.Status() >= http.StatusInternalServerError {
			logger.Error("request", fields...)
			return
		}
		logger.Info("request", fields...)
	}
}
