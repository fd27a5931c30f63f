package middleware

import (
	"github.com/gin-gonic/gin"
)

// userIDKey is the context key handlers read the acting user ID from.
const userIDKey = "userID"

// Identity returns a Gin middleware that stamps every request with the
// acting user ID. There is no interactive login: the server resolves the
// default identity once at startup and every store operation receives it
// explicitly through the request context, never from a package global.
func Identity(userID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(userIDKey, userID)
		c.Next()
	}
}
