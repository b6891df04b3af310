package account

import (
	"context"

	"github.com/google/uuid"

	"blog-backend/internal/shared/access"
)

// Repository định nghĩa data access cho accounts + account_roles
type Repository interface {
	// Create insert account (không kèm roles). Trùng email → ErrDuplicateEmail
	Create(ctx context.Context, a *Account) error

	// GetByEmail lookup theo normalized email, load kèm roles. Không có → ErrAccountNotFound
	GetByEmail(ctx context.Context, email string) (*Account, error)

	// AddRoles gán thêm roles, role đã có thì bỏ qua
	AddRoles(ctx context.Context, accountID uuid.UUID, roles ...access.Role) error
}
