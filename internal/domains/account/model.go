package account

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"blog-backend/internal/shared/access"
)

// Account là identity đăng nhập. Email đồng thời là username.
type Account struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	Roles        []access.Role
	CreatedAt    time.Time
}

// NormalizeEmail là key dùng để lookup và unique index
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (a *Account) HasRole(role access.Role) bool {
	for _, r := range a.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// RoleNames dùng cho role claims trong token
func (a *Account) RoleNames() []string {
	names := make([]string, 0, len(a.Roles))
	for _, r := range a.Roles {
		names = append(names, r.String())
	}
	return names
}
