package middleware

import (
	"context"
	"net/http"
	"strings"

	"pijat_jogja/internal/model"

	"github.com/gin-gonic/gin"
)

const (
	AuthUserKey    = "authUser"
	AuthRoleKey    = "authRole"
	AuthTokenKey   = "authToken"
	CurrentUserKey = "currentUser"
)

// SessionResolver turns a session token into the signed-in admin, or nil
type SessionResolver interface {
	CurrentUser(ctx context.Context, token string) *model.CurrentUser
}

// BearerToken extracts the token of an "Authorization: Bearer <token>" header
func BearerToken(authHeader string) (string, bool) {
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}

// SessionAuthMiddleware requires a bearer token bound to a live admin session
func SessionAuthMiddleware(resolver SessionResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			return
		}

		tokenString, ok := BearerToken(authHeader)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
			return
		}

		user := resolver.CurrentUser(c.Request.Context(), tokenString)
		if user == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired session"})
			return
		}

		setCurrentUser(c, user, tokenString)
		c.Next()
	}
}

func setCurrentUser(c *gin.Context, user *model.CurrentUser, token string) {
	c.Set(AuthUserKey, user.ID)
	c.Set(AuthRoleKey, user.Role)
	c.Set(AuthTokenKey, token)
	c.Set(CurrentUserKey, user)
}

// GetCurrentUser returns the admin stored by the auth middlewares
func GetCurrentUser(c *gin.Context) *model.CurrentUser {
	v, exists := c.Get(CurrentUserKey)
	if !exists {
		return nil
	}
	user, _ := v.(*model.CurrentUser)
	return user
}
