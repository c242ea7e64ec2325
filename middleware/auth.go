// middleware/auth.go
package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/velaug24it-bit/serviceswebiste/services/session"
	"github.com/velaug24it-bit/serviceswebiste/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Context keys set once a session is authenticated.
const (
	ClaimsKey = "sessionClaims"
	TokenKey  = "sessionToken"
)

// errNoSession covers missing, invalid and revoked tokens.
var errNoSession = errors.New("no valid session")

func unauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, utils.ErrorResponse{Message: message})
}

// BearerToken returns the token of an "Authorization: Bearer ..." header, or "".
func BearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
}

// authenticate validates the bearer token and stores its claims on the context.
// It returns errNoSession for unusable tokens and any other error when the
// revocation check itself failed.
func authenticate(c *gin.Context, tokens *utils.TokenIssuer, sessions session.Store) error {
	tokenString := BearerToken(c)
	if tokenString == "" {
		return errNoSession
	}

	claims, err := tokens.ValidateToken(tokenString)
	if err != nil {
		utils.GetLogger().Debug("Rejected session token", zap.Error(err))
		return errNoSession
	}

	revoked, err := sessions.IsRevoked(c.Request.Context(), tokenString)
	if err != nil {
		return err
	}
	if revoked {
		return errNoSession
	}

	c.Set(ClaimsKey, claims)
	c.Set(TokenKey, tokenString)
	return nil
}

func revocationCheckFailed(c *gin.Context, err error) {
	utils.GetLogger().Error("Failed to check session revocation", zap.Error(err))
	c.AbortWithStatusJSON(http.StatusInternalServerError, utils.ErrorResponse{Message: "Internal server error"})
}

// JWTAuthMiddleware validates the session token and rejects revoked ones.
// With optional set, requests without a usable token pass through unauthenticated.
func JWTAuthMiddleware(tokens *utils.TokenIssuer, sessions session.Store, optional bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		err := authenticate(c, tokens, sessions)
		switch {
		case err == nil, optional && errors.Is(err, errNoSession):
			c.Next()
		case errors.Is(err, errNoSession):
			unauthorized(c, "Not authenticated")
		default:
			revocationCheckFailed(c, err)
		}
	}
}

// GetClaims returns the claims stored by the auth middleware.
func GetClaims(c *gin.Context) (*utils.SessionClaims, bool) {
	v, ok := c.Get(ClaimsKey)
	if !ok {
		return nil, false
	}
	claims, ok := v.(*utils.SessionClaims)
	return claims, ok
}
