package account

import (
	"errors"
	"net/http"
)

var (
	ErrAccountNotFound = errors.New("account not found")
	ErrDuplicateEmail  = errors.New("account email already exists")

	// ErrInvalidCredentials gộp mọi lỗi login (sai email, sai password, lỗi lookup)
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrRoleGrantFailed: account đã tạo nhưng gán role thất bại, không rollback
	ErrRoleGrantFailed = errors.New("role assignment failed")
)

const (
	MsgLoginFailed    = "Email or Password Incorrect"
	MsgRoleNotGranted = "Account was created but the Reader role could not be assigned."
)

// GetHTTPStatusCode map domain error tới HTTP status code
func GetHTTPStatusCode(err error) int {
	switch {
	case errors.Is(err, ErrAccountNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrDuplicateEmail):
		return http.StatusConflict
	case errors.Is(err, ErrInvalidCredentials), errors.Is(err, ErrRoleGrantFailed):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
