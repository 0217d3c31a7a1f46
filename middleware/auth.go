package middleware

import (
	"net/http"
	"strings"

	"doctorsportal/utils"

	"github.com/gin-gonic/gin"
)

// identityKey is the context key holding the verified email claim.
const identityKey = "email"

// GetIdentity returns the verified email claim set by Authenticate, or ""
// when the request carried no valid credential.
func GetIdentity(c *gin.Context) string {
	if v, ok := c.Get(identityKey); ok {
		if email, ok := v.(string); ok {
			return email
		}
	}
	return ""
}

// Authenticate verifies the bearer token and stores the email claim in the
// request context. A missing header is 401; a malformed or badly signed token
// is 403. Verification failure is terminal for the request.
func Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized Access"})
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader || tokenString == "" {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Forbidden Access"})
			return
		}

		email, err := utils.ExtractEmailFromToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Forbidden Access"})
			return
		}

		c.Set(identityKey, email)
		c.Next()
	}
}
