package validation

import (
	"errors"
	"sort"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// FieldError là một lỗi validate gắn với một field.
// Field rỗng nghĩa là lỗi không thuộc field nào (vd: login failed).
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// FieldErrors is an ordered collection of field errors.
type FieldErrors []FieldError

func (e FieldErrors) Error() string {
	msgs := make([]string, 0, len(e))
	for _, fe := range e {
		if fe.Field == "" {
			msgs = append(msgs, fe.Message)
			continue
		}
		msgs = append(msgs, fe.Field+": "+fe.Message)
	}
	return strings.Join(msgs, "; ")
}

// Add appends an error for field.
func (e *FieldErrors) Add(field, message string) {
	*e = append(*e, FieldError{Field: field, Message: message})
}

// Err returns nil when empty so callers can `return errs.Err()`.
func (e FieldErrors) Err() error {
	if len(e) == 0 {
		return nil
	}
	return e
}

// Details groups messages by field, preserving order.
func (e FieldErrors) Details() map[string][]string {
	details := make(map[string][]string, len(e))
	for _, fe := range e {
		details[fe.Field] = append(details[fe.Field], fe.Message)
	}
	return details
}

// New builds a single-entry FieldErrors.
func New(field, message string) FieldErrors {
	return FieldErrors{{Field: field, Message: message}}
}

// FromOzzo converts ozzo-validation output into FieldErrors.
// Non-validation errors (internal rule errors) are returned unchanged.
func FromOzzo(err error) error {
	if err == nil {
		return nil
	}

	var errs validation.Errors
	if errors.As(err, &errs) {
		out := FieldErrors{}
		for field, fieldErr := range errs {
			out.Add(field, fieldErr.Error())
		}
		sortByField(out)
		return out
	}

	var vErr validation.Error
	if errors.As(err, &vErr) {
		return New("", vErr.Error())
	}

	return err
}

// ozzo trả map nên thứ tự không ổn định
func sortByField(errs FieldErrors) {
	sort.SliceStable(errs, func(i, j int) bool { return errs[i].Field < errs[j].Field })
}

// Is reports whether err carries field errors.
func Is(err error) bool {
	var fe FieldErrors
	return errors.As(err, &fe)
}

// As extracts field errors from err.
func As(err error) (FieldErrors, bool) {
	var fe FieldErrors
	ok := errors.As(err, &fe)
	return fe, ok
}
