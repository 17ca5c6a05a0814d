// middleware/auth.go
package middleware

import (
	"net/http"
	"strings"

	"barberdesk/utils"

	"github.com/gin-gonic/gin"
)

// Context keys set by AuthRequired for downstream handlers.
const (
	CtxUserID = "authUserID"
	CtxRole   = "authRole"
	CtxName   = "authName"
	CtxPhone  = "authPhone"
)

// AuthRequired validates the bearer token and stores its claims in the
// request context. No document read happens here; role gating runs on the
// claims alone. When the auth cache is configured the token hash must also
// match the user's active session, so revoked or superseded tokens stop
// working before their JWT expiry.
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		claims, err := utils.ValidateToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		if utils.AuthCacheClient != nil {
			cachedHash, err := utils.GetCachedAuthToken(utils.AuthCacheClient, claims.Subject)
			if err != nil || cachedHash == "" || cachedHash != utils.HashToken(tokenString) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Session expired or revoked"})
				return
			}
		}

		c.Set(CtxUserID, claims.Subject)
		c.Set(CtxRole, claims.Role)
		c.Set(CtxName, claims.Name)
		c.Set(CtxPhone, claims.Phone)
		c.Next()
	}
}

// CallerID returns the authenticated user's ID from the request context.
func CallerID(c *gin.Context) string {
	id, _ := c.Get(CtxUserID)
	s, _ := id.(string)
	return s
}

// CallerRole returns the authenticated user's role from the request context.
func CallerRole(c *gin.Context) string {
	role, _ := c.Get(CtxRole)
	s, _ := role.(string)
	return s
}
