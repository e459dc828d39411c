package utils

import "github.com/gin-gonic/gin"

// Context keys set by the auth middleware after token verification.
const (
	CtxUserID = "userId"
	CtxRole   = "role"
)

// CurrentUserID returns the authenticated account id, or 0 on an
// unauthenticated request.
func CurrentUserID(c *gin.Context) uint {
	if v, ok := c.Get(CtxUserID); ok {
		if id, ok := v.(uint); ok {
			return id
		}
	}
	return 0
}

// CurrentRole returns the authenticated role (admin, client, pilot, editor),
// or "" on an unauthenticated request.
func CurrentRole(c *gin.Context) string {
	if v, ok := c.Get(CtxRole); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
