package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RequireRoles rejects callers whose token role is not in the allow-list.
// Runs after AuthRequired and reads the claims only, so a disallowed caller
// (e.g. a customer on a lifecycle endpoint) is turned away before any
// document read.
func RequireRoles(roles ...string) gin.HandlerFunc {
	allowed := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}
	return func(c *gin.Context) {
		if _, ok := allowed[CallerRole(c)]; !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient role"})
			return
		}
		c.Next()
	}
}
