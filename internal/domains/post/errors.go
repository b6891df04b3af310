package post

import (
	"errors"
	"net/http"

	"blog-backend/internal/shared/validation"
)

var (
	ErrPostNotFound       = errors.New("blog post not found")
	ErrDuplicateURLHandle = errors.New("blog post url handle already exists")
)

const (
	MsgURLHandleRequired = "The UrlHandle field is required."
	MsgURLHandleIsUUID   = "The UrlHandle field must not be a UUID."
)

// GetHTTPStatusCode map domain error tới HTTP status code
func GetHTTPStatusCode(err error) int {
	switch {
	case errors.Is(err, ErrPostNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrDuplicateURLHandle):
		return http.StatusConflict
	case validation.Is(err):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
