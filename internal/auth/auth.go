package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"salesboard/internal/config"
)

const (
	RoleEmployee = "Employee"
	RoleManager  = "Manager"
)

// RoleResolver maps a bearer token to a role name. It is the only policy
// hook the handlers know about; where roles actually come from is somebody
// else's problem.
type RoleResolver func(token string) (string, bool)

// FromConfig builds a resolver over the static token table in AuthConfig.
func FromConfig(cfg config.AuthConfig) RoleResolver {
	tokens := make(map[string]string, len(cfg.Tokens))
	for token, role := range cfg.Tokens {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		tokens[token] = role
	}
	return func(token string) (string, bool) {
		role, ok := tokens[token]
		return role, ok
	}
}

// RequireRole gates a route group on the caller's resolved role being one of
// roles. Disabled short-circuits to allow, the mode used in dev and behind a
// trusted gateway.
func RequireRole(resolver RoleResolver, disabled bool, roles ...string) gin.HandlerFunc {
	allowed := make(map[string]struct{}, len(roles))
	for _, role := range roles {
		allowed[role] = struct{}{}
	}
	return func(c *gin.Context) {
		if disabled {
			c.Next()
			return
		}
		header := strings.TrimSpace(c.GetHeader("Authorization"))
		token := ""
		if strings.HasPrefix(strings.ToLower(header), "bearer ") {
			token = strings.TrimSpace(header[len("bearer "):])
		}
		if token == "" || resolver == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"code": http.StatusUnauthorized, "message": "missing bearer token"})
			return
		}
		role, ok := resolver(token)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"code": http.StatusUnauthorized, "message": "invalid token"})
			return
		}
		if _, ok := allowed[role]; !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"code": http.StatusForbidden, "message": "insufficient role"})
			return
		}
		c.Set("role", role)
		c.Next()
	}
}
