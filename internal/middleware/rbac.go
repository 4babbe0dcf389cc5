package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/hr-portal/internal/models"
	appErrors "github.com/noah-isme/hr-portal/pkg/errors"
	"github.com/noah-isme/hr-portal/pkg/response"
)

// RequireRoles lets a request through when the session role is one of roles.
// Role names come from the backend role table, so they are compared without
// regard to case.
func RequireRoles(roles ...models.Role) gin.HandlerFunc {
	allowed := make(map[string]struct{}, len(roles))
	names := make([]string, 0, len(roles))
	for _, role := range roles {
		allowed[strings.ToLower(string(role))] = struct{}{}
		names = append(names, string(role))
	}
	denied := appErrors.Clone(appErrors.ErrForbidden, "requires role "+strings.Join(names, " or "))

	return func(c *gin.Context) {
		claims, ok := Claims(c)
		if !ok {
			response.Error(c, appErrors.ErrUnauthorized)
			c.Abort()
			return
		}
		if _, ok := allowed[strings.ToLower(string(claims.Role))]; !ok {
			response.Error(c, denied)
			c.Abort()
			return
		}
		c.Next()
	}
}
