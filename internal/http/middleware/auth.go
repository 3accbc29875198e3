package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cspzone/docs-service/internal/auth"
)

const principalKey = "principal"

// Auth requires a valid bearer token when the parser has a secret and lets
// every request through otherwise.
func Auth(parser *auth.Parser) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !parser.Enabled() {
			c.Next()
			return
		}

		principal, err := parser.Parse(auth.BearerToken(c.GetHeader("Authorization")))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":   "unauthorized",
				"message": err.Error(),
			})
			return
		}
		c.Set(principalKey, principal)
		c.Next()
	}
}

// MustPrincipal returns the authenticated caller, if any.
func MustPrincipal(c *gin.Context) (auth.Principal, bool) {
	value, ok := c.Get(principalKey)
	if !ok {
		return auth.Principal{}, false
	}
	principal, ok := value.(auth.Principal)
	return principal, ok
}
