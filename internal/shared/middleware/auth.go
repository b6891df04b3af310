package middleware

import (
	"strings"

	"blog-backend/internal/shared/access"
	"blog-backend/internal/shared/response"
	"blog-backend/pkg/jwt"
	"blog-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

const (
	ContextClaimsKey = "claims"
	ContextEmailKey  = "email"
)

// TokenValidator is implemented by *jwt.Manager.
type TokenValidator interface {
	ValidateToken(token string) (*jwt.Claims, error)
}

// Guard enforces rule cho một route.
// Public: đi thẳng. RequiresRole: cần token hợp lệ (401) chứa đúng role claim (403).
func Guard(validator TokenValidator, rule access.Rule) gin.HandlerFunc {
	return func(c *gin.Context) {
		if rule.IsPublic() {
			c.Next()
			return
		}

		claims, ok := authenticate(c, validator)
		if !ok {
			return
		}

		if !claims.HasRole(rule.Role().String()) {
			logger.Warn("access denied", map[string]interface{}{
				"email":         claims.Email,
				"required_role": rule.Role().String(),
				"path":          c.FullPath(),
			})
			response.Forbidden(c, "Access denied: "+rule.Role().String()+" role required")
			c.Abort()
			return
		}

		c.Next()
	}
}

// authenticate validates the bearer token and stores its claims in the context.
func authenticate(c *gin.Context, validator TokenValidator) (*jwt.Claims, bool) {
	// 1. Lấy token từ Authorization header
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		response.Unauthorized(c, "missing authorization header")
		c.Abort()
		return nil, false
	}

	// 2. Extract token từ "Bearer <token>"
	parts := strings.Fields(authHeader)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		response.Unauthorized(c, "invalid authorization header format")
		c.Abort()
		return nil, false
	}

	// 3. Verify signature, expiry, issuer, audience
	claims, err := validator.ValidateToken(parts[1])
	if err != nil {
		logger.Debug("token rejected: " + err.Error())
		response.Unauthorized(c, "invalid token")
		c.Abort()
		return nil, false
	}

	c.Set(ContextClaimsKey, claims)
	c.Set(ContextEmailKey, claims.Email)
	return claims, true
}
