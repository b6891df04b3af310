package middleware

import (
	"blog-backend/pkg/jwt"

	"github.com/gin-gonic/gin"
)

// ClaimsFromContext returns the claims stored by Guard, if any.
func ClaimsFromContext(c *gin.Context) (*jwt.Claims, bool) {
	v, exists := c.Get(ContextClaimsKey)
	if !exists {
		return nil, false
	}
	claims, ok := v.(*jwt.Claims)
	return claims, ok
}
