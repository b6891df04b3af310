package account

import (
	"fmt"
	"regexp"
	"unicode/utf8"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	fielderrors "blog-backend/internal/shared/validation"
)

// ========================================
// AUTH DTOs
// ========================================

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Email string   `json:"email"`
	Roles []string `json:"roles"`
	Token string   `json:"token"`
}

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ========================================
// PASSWORD POLICY
// ========================================

const MinPasswordLength = 6

var (
	usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9\-._@+]+$`)
	digitPattern    = regexp.MustCompile(`[0-9]`)
	lowerPattern    = regexp.MustCompile(`[a-z]`)
	upperPattern    = regexp.MustCompile(`[A-Z]`)
	nonAlnumPattern = regexp.MustCompile(`[^a-zA-Z0-9]`)
)

// passwordRules được validate từng rule một để thu thập đủ mọi vi phạm
var passwordRules = []validation.Rule{
	validation.By(func(v interface{}) error {
		if utf8.RuneCountInString(v.(string)) < MinPasswordLength {
			return validation.NewError("password_too_short",
				fmt.Sprintf("Passwords must be at least %d characters.", MinPasswordLength))
		}
		return nil
	}),
	mustMatch(nonAlnumPattern, "password_requires_non_alphanumeric", "Passwords must have at least one non alphanumeric character."),
	mustMatch(digitPattern, "password_requires_digit", "Passwords must have at least one digit ('0'-'9')."),
	mustMatch(lowerPattern, "password_requires_lower", "Passwords must have at least one lowercase ('a'-'z')."),
	mustMatch(upperPattern, "password_requires_upper", "Passwords must have at least one uppercase ('A'-'Z')."),
}

// mustMatch khác validation.Match ở chỗ không bỏ qua chuỗi rỗng
func mustMatch(re *regexp.Regexp, code, message string) validation.Rule {
	return validation.By(func(v interface{}) error {
		if !re.MatchString(v.(string)) {
			return validation.NewError(code, message)
		}
		return nil
	})
}

// ValidateUsername trả lỗi field-less nếu username (email đã trim) không hợp lệ
func ValidateUsername(username string) fielderrors.FieldErrors {
	var errs fielderrors.FieldErrors
	if err := validation.Validate(username,
		validation.Required,
		validation.Match(usernamePattern),
	); err != nil {
		errs.Add("", fmt.Sprintf("Username '%s' is invalid, can only contain letters or digits.", username))
	}
	return errs
}

// ValidatePassword collects every policy violation, no short circuit.
func ValidatePassword(password string) fielderrors.FieldErrors {
	var errs fielderrors.FieldErrors
	for _, rule := range passwordRules {
		if err := validation.Validate(password, rule); err != nil {
			errs.Add("", err.Error())
		}
	}
	return errs
}

// DuplicateUsernameMessage is reported when the email is already registered.
func DuplicateUsernameMessage(username string) string {
	return fmt.Sprintf("Username '%s' is already taken.", username)
}
