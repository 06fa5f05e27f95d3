package middleware

import (
	"context"
	"errors"
	"net/http"

	"filevault/internal/modules/auth"

	"github.com/gin-gonic/gin"
)

const userIDKey = "user_id"

// TokenResolver maps a session token to a user id.
type TokenResolver interface {
	ResolveUser(ctx context.Context, token string) (string, error)
}

// TokenAuth rejects requests whose X-Token header does not name a live
// session. A store failure is a 500, never a 401: infrastructure trouble must
// not read as bad credentials.
func TokenAuth(resolver TokenResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := resolver.ResolveUser(c.Request.Context(), c.GetHeader("X-Token"))
		if err != nil {
			if errors.Is(err, auth.ErrUnauthorized) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Session store unavailable"})
			return
		}

		c.Set(userIDKey, userID)
		c.Next()
	}
}

// OptionalTokenAuth resolves the caller when a valid token is present and
// treats everything else as anonymous. Used by the content route, where
// public files must stay readable without a token.
func OptionalTokenAuth(resolver TokenResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := resolver.ResolveUser(c.Request.Context(), c.GetHeader("X-Token"))
		if err != nil && !errors.Is(err, auth.ErrUnauthorized) {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Session store unavailable"})
			return
		}
		if err == nil {
			c.Set(userIDKey, userID)
		}
		c.Next()
	}
}

// UserID returns the authenticated caller's id, or "" for anonymous requests.
func UserID(c *gin.Context) string {
	return c.GetString(userIDKey)
}
