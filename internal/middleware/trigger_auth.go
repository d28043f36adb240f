package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"wealthtrack/internal/logger"
)

// TriggerAuth guards the snapshot trigger with a shared secret sent as
// "Authorization: Bearer <secret>". An empty secret disables the trigger.
func TriggerAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if secret == "" {
			c.AbortWithStatusJSON(http.StatusServiceUnavailable,
				gin.H{"error": gin.H{"code": "TRIGGER_NOT_CONFIGURED", "message": "Snapshot trigger is not configured"}})
			return
		}
		token := bearerToken(c.GetHeader("Authorization"))
		if subtle.ConstantTimeCompare([]byte(token), []byte(secret)) != 1 {
			logger.Get().Warnw("rejected snapshot trigger",
				"client_ip", c.ClientIP(),
				"path", c.Request.URL.Path,
			)
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				gin.H{"error": gin.H{"code": "INVALID_TRIGGER_SECRET", "message": "Invalid or missing trigger secret"}})
			return
		}
		c.Next()
	}
}

func bearerToken(header string) string {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
