package image

import (
	"errors"
	"net/http"

	"blog-backend/internal/shared/validation"
)

var (
	ErrBlobWrite      = errors.New("failed to store image")
	ErrMetadataInsert = errors.New("image stored but metadata insert failed")
)

// Validation messages
const (
	MsgUnsupportedFormat = "Unsupported file format."
	MsgFileTooLarge      = "File size cannot be more than 10Mb."
	MsgFileRequired      = "The file field is required."
	MsgFileNameRequired  = "The FileName field is required."
	MsgFileNameInvalid   = "The FileName field must not contain path separators."
)

func GetHTTPStatusCode(err error) int {
	switch {
	case validation.Is(err):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
