package middleware

import (
	"net/http" // HTTP status codes
	"strings"  // String manipulation

	"github.com/gin-gonic/gin" // Gin web framework

	"debt_tracker/internal/auth"
)

// CurrentUserKey is the gin context key holding the resolved identity
const CurrentUserKey = "currentUser"

// JWTAuthMiddleware validates bearer tokens and resolves the acting identity.
// The full identity is loaded so that tokens for deleted accounts are rejected.
func JWTAuthMiddleware(authSvc *auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization") // Get Authorization header
		// Check if the Authorization header is present and properly formatted
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenStr := strings.TrimPrefix(authHeader, "Bearer ") // Extract the token string
		user, err := authSvc.ResolveIdentity(c.Request.Context(), tokenStr)
		if err != nil {
			// Malformed, expired, bad signature and unknown subject all land here
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Could not validate credentials"})
			return
		}
		c.Set(CurrentUserKey, user) // Store resolved identity in context
		c.Next()                    // Proceed to the next handler
	}
}
