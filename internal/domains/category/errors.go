package category

import (
	"errors"
	"net/http"

	"blog-backend/internal/shared/validation"
)

var (
	ErrCategoryNotFound = errors.New("category not found")
	ErrInvalidCateID    = errors.New("invalid category id")
)

// GetHTTPStatusCode map domain error tới HTTP status code
func GetHTTPStatusCode(err error) int {
	switch {
	case errors.Is(err, ErrCategoryNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrInvalidCateID), validation.Is(err):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
