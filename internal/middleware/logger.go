package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// RequestLogger logs every request, recovers from handler panics and logs
// server-side errors with their stack.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		defer func() {
			if recovered := recover(); recovered != nil {
				err := fmt.Errorf("%v", recovered)
				log.Error().
					Err(err).
					Str("method", c.Request.Method).
					Str("path", c.Request.URL.Path).
					Bytes("stack", debug.Stack()).
					Msg("panic recovered")

				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"success": false,
					"error": gin.H{
						"code":    "INTERNAL_SERVER_ERROR",
						"message": "Internal Server Error",
					},
				})
				return
			}

			evt := log.Info()
			if c.Writer.Status() >= http.StatusInternalServerError {
				evt = log.Error()
			}
			evt.
				Int("status", c.Writer.Status()).
				Str("method", c.Request.Method).
				Str("path", c.Request.URL.Path).
				Str("query", c.Request.URL.RawQuery).
				Str("client_ip", c.ClientIP()).
				Str("user_id", c.GetString("user_id")).
				Dur("latency", time.Since(start)).
				Msg("request")

			for _, ginErr := range c.Errors {
				log.Error().Err(ginErr.Err).Str("path", c.Request.URL.Path).Msg("handler error")
			}
		}()

		c.Next()
	}
}
