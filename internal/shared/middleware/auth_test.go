package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blog-backend/internal/shared/access"
	"blog-backend/pkg/jwt"
)

func newGuardedRouter(manager *jwt.Manager, rule access.Rule) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/guarded", Guard(manager, rule), func(c *gin.Context) {
		claims, _ := ClaimsFromContext(c)
		email := ""
		if claims != nil {
			email = claims.Email
		}
		c.String(http.StatusOK, email)
	})
	return r
}

func call(r *gin.Engine, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/guarded", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestGuard_Public(t *testing.T) {
	r := newGuardedRouter(jwt.NewManager("secret"), access.Public())

	w := call(r, "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGuard_MissingOrInvalidToken(t *testing.T) {
	r := newGuardedRouter(jwt.NewManager("secret"), access.RequiresRole(access.RoleWriter))

	assert.Equal(t, http.StatusUnauthorized, call(r, "").Code)
	assert.Equal(t, http.StatusUnauthorized, call(r, "Token abc").Code)
	assert.Equal(t, http.StatusUnauthorized, call(r, "Bearer not-a-jwt").Code)

	other := jwt.NewManager("different-secret")
	token, _, err := other.GenerateAccessToken("w@example.com", []string{"Writer"})
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, call(r, "Bearer "+token).Code)
}

func TestGuard_MissingRole(t *testing.T) {
	manager := jwt.NewManager("secret")
	r := newGuardedRouter(manager, access.RequiresRole(access.RoleWriter))

	token, _, err := manager.GenerateAccessToken("reader@example.com", []string{"Reader"})
	require.NoError(t, err)

	assert.Equal(t, http.StatusForbidden, call(r, "Bearer "+token).Code)
}

func TestGuard_WithRole(t *testing.T) {
	manager := jwt.NewManager("secret")
	r := newGuardedRouter(manager, access.RequiresRole(access.RoleWriter))

	token, _, err := manager.GenerateAccessToken("writer@example.com", []string{"Reader", "Writer"})
	require.NoError(t, err)

	w := call(r, "Bearer "+token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "writer@example.com", w.Body.String())
}
