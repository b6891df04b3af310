package account

import "context"

type Service interface {
	// Login trả token. Mọi thất bại đều là ErrInvalidCredentials
	Login(ctx context.Context, req LoginRequest) (*LoginResponse, error)

	// Register tạo account với role Reader.
	// Lỗi validate trả về validation.FieldErrors (field-less)
	Register(ctx context.Context, req RegisterRequest) error

	// EnsureAdmin seed account có Reader + Writer nếu chưa có
	EnsureAdmin(ctx context.Context, email, password string) error
}
