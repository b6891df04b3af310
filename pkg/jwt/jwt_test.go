package jwt

import (
	"testing"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_GenerateAndValidate(t *testing.T) {
	m := NewManager("secret", WithIssuer("blog-api"), WithAudience("blog-client"))

	token, expiresAt, err := m.GenerateAccessToken("writer@example.com", []string{"Reader", "Writer"})
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(30*time.Minute), expiresAt, 5*time.Second)

	claims, err := m.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "writer@example.com", claims.Email)
	assert.Equal(t, []string{"Reader", "Writer"}, claims.Roles)
	assert.True(t, claims.HasRole("Writer"))
	assert.False(t, claims.HasRole("writer"))
}

func TestManager_ExpiredToken(t *testing.T) {
	past := time.Now().Add(-31 * time.Minute)
	issuer := NewManager("secret", WithClock(func() time.Time { return past }))

	token, _, err := issuer.GenerateAccessToken("reader@example.com", []string{"Reader"})
	require.NoError(t, err)

	_, err = NewManager("secret").ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestManager_WrongSecret(t *testing.T) {
	token, _, err := NewManager("one").GenerateAccessToken("a@b.com", nil)
	require.NoError(t, err)

	_, err = NewManager("two").ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestManager_AudienceMismatch(t *testing.T) {
	token, _, err := NewManager("secret", WithAudience("other")).GenerateAccessToken("a@b.com", nil)
	require.NoError(t, err)

	_, err = NewManager("secret", WithAudience("blog-client")).ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestManager_RejectsNoneAlgorithm(t *testing.T) {
	claims := Claims{
		Email: "a@b.com",
		Roles: []string{"Writer"},
		RegisteredClaims: gojwt.RegisteredClaims{
			ExpiresAt: gojwt.NewNumericDate(time.Now().Add(time.Minute)),
		},
	}
	unsigned, err := gojwt.NewWithClaims(gojwt.SigningMethodNone, claims).SignedString(gojwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = NewManager("secret").ValidateToken(unsigned)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
