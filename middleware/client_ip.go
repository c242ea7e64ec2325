package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// clientIP keys rate limiting and request logs. The first X-Forwarded-For hop
// wins, then X-Real-IP, then the peer address.
func clientIP(c *gin.Context) string {
	if first, _, _ := strings.Cut(c.GetHeader("X-Forwarded-For"), ","); strings.TrimSpace(first) != "" {
		return strings.TrimSpace(first)
	}
	if xri := strings.TrimSpace(c.GetHeader("X-Real-IP")); xri != "" {
		return xri
	}
	return c.RemoteIP()
}
