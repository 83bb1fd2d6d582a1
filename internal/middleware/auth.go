package middleware

import (
	"crypto/subtle"
	"strings"

	"github.com/gin-gonic/gin"

	"agency-content-ops/internal/model"
	"agency-content-ops/pkg/response"
)

const (
	scopeContextKey   = "request_scope"
	workspaceIDHeader = "X-Workspace-ID"
	userIDHeader      = "X-User-ID"
)

// Auth validates the bearer token and resolves the request scope from the
// workspace/user headers set by the gateway. Token validation is skipped
// when no token is configured (local development).
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.accessToken != "" {
			header := c.GetHeader("Authorization")
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || subtle.ConstantTimeCompare([]byte(token), []byte(m.accessToken)) != 1 {
				response.Unauthorized(c)
				c.Abort()
				return
			}
		}

		workspaceID := c.GetHeader(workspaceIDHeader)
		if workspaceID == "" {
			response.Forbidden(c)
			c.Abort()
			return
		}

		c.Set(scopeContextKey, model.Scope{
			WorkspaceID: workspaceID,
			UserID:      c.GetHeader(userIDHeader),
		})

		c.Next()
	}
}

// ScopeFromContext returns the scope set by Auth, or a zero scope on
// unauthenticated routes.
func ScopeFromContext(c *gin.Context) model.Scope {
	if v, ok := c.Get(scopeContextKey); ok {
		if sc, ok := v.(model.Scope); ok {
			return sc
		}
	}
	return model.Scope{}
}
