package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// AccessTokenTTL is fixed; there is no refresh flow.
const AccessTokenTTL = 30 * time.Minute

var ErrInvalidToken = errors.New("invalid token")

// Claims represents JWT claims structure
type Claims struct {
	Email string   `json:"email"`
	Roles []string `json:"roles"`
	jwt.RegisteredClaims
}

// HasRole reports whether the token carries the exact role claim.
func (c *Claims) HasRole(role string) bool {
	for _, r := range c.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// Manager handles JWT operations
type Manager struct {
	secret   string
	issuer   string
	audience string
	now      func() time.Time
}

type Option func(*Manager)

// WithIssuer sets the iss claim and requires it on validation.
func WithIssuer(issuer string) Option {
	return func(m *Manager) { m.issuer = issuer }
}

// WithAudience sets the aud claim and requires it on validation.
func WithAudience(audience string) Option {
	return func(m *Manager) { m.audience = audience }
}

// WithClock overrides the issuance clock (tests).
func WithClock(now func() time.Time) Option {
	return func(m *Manager) { m.now = now }
}

// NewManager creates new JWT manager
func NewManager(secret string, opts ...Option) *Manager {
	m := &Manager{secret: secret, now: time.Now}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// GenerateAccessToken mints a token with the email claim and one role claim per role.
func (m *Manager) GenerateAccessToken(email string, roles []string) (string, time.Time, error) {
	issuedAt := m.now()
	expiresAt := issuedAt.Add(AccessTokenTTL)

	claims := Claims{
		Email: email,
		Roles: append([]string(nil), roles...),
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    m.issuer,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
		},
	}
	if m.audience != "" {
		claims.Audience = jwt.ClaimStrings{m.audience}
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(m.secret))
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}
	return signed, expiresAt, nil
}

// ValidateToken validates signature + expiry and parses claims
func (m *Manager) ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}

	parserOpts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if m.issuer != "" {
		parserOpts = append(parserOpts, jwt.WithIssuer(m.issuer))
	}
	if m.audience != "" {
		parserOpts = append(parserOpts, jwt.WithAudience(m.audience))
	}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		// Verify signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(m.secret), nil
	}, parserOpts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	if !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
