package middleware

import (
	"errors"

	"github.com/velaug24it-bit/serviceswebiste/services/session"
	"github.com/velaug24it-bit/serviceswebiste/utils"

	"github.com/gin-gonic/gin"
)

// RequireUserType authenticates the session and only lets through those whose
// role tag matches userType. No session and the wrong role both answer "Unauthorized".
func RequireUserType(tokens *utils.TokenIssuer, sessions session.Store, userType string) gin.HandlerFunc {
	return func(c *gin.Context) {
		err := authenticate(c, tokens, sessions)
		if err != nil && !errors.Is(err, errNoSession) {
			revocationCheckFailed(c, err)
			return
		}
		claims, ok := GetClaims(c)
		if err != nil || !ok || claims.UserType != userType {
			unauthorized(c, "Unauthorized")
			return
		}
		c.Next()
	}
}
