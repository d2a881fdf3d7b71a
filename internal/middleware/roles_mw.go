package middleware

import (
	"net/http"
	"slices"

	"pijat_jogja/internal/model"

	"github.com/gin-gonic/gin"
)

const msgForbidden = "Anda tidak memiliki akses admin"

// RoleMiddleware lets the request through when the session role is one of allowedRoles.
// It must run after SessionAuthMiddleware.
func RoleMiddleware(allowedRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := c.Get(AuthRoleKey)
		if !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Role not found in session, ensure auth middleware runs first"})
			return
		}

		userRole, ok := role.(string)
		if !ok || !slices.Contains(allowedRoles, userRole) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": msgForbidden})
			return
		}

		c.Next()
	}
}

// AdminMiddleware checks that the session holds the admin grant
func AdminMiddleware() gin.HandlerFunc {
	return RoleMiddleware(model.RoleAdmin)
}
