package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Guard is one authorization step run after token verification. Check
// receives the verified identity (the email claim) and returns an error when
// the caller may not proceed.
type Guard interface {
	Check(c *gin.Context, identity string) error
}

// GuardFunc adapts a plain function to the Guard interface.
type GuardFunc func(c *gin.Context, identity string) error

func (f GuardFunc) Check(c *gin.Context, identity string) error {
	return f(c, identity)
}

// RequireGuards evaluates the given guards in order against the identity set
// by Authenticate, short-circuiting with 403 on the first failure. It must be
// registered after Authenticate on the same route.
func RequireGuards(guards ...Guard) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity := GetIdentity(c)
		if identity == "" {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Forbidden Access"})
			return
		}
		for _, g := range guards {
			if err := g.Check(c, identity); err != nil {
				c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Forbidden Access"})
				return
			}
		}
		c.Next()
	}
}
