// Package utils holds the helpers shared across handlers: reading the
// principal the auth middleware injected and minting tokens for tests.
package utils

import "github.com/gin-gonic/gin"

// CurrentUserID returns the authenticated user id from the gin context, or
// 0 when the request carries no principal. The middleware stores a uint,
// but decoded JSON claims can surface as other numeric types.
func CurrentUserID(c *gin.Context) uint {
	v, ok := c.Get("userId")
	if !ok {
		return 0
	}
	switch id := v.(type) {
	case uint:
		return id
	case int:
		return uint(id)
	case int64:
		return uint(id)
	case float64:
		return uint(id)
	default:
		return 0
	}
}

// CurrentRole returns the principal's role claim, or "" for anonymous
// requests.
func CurrentRole(c *gin.Context) string {
	if v, ok := c.Get("role"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
