package http

import (
	"net/http"
	"regexp"
	"strings"
	"unicode"

	"github.com/scanpass/scanpass/pkg/httpx"
)

const (
	maxEmailLength    = 254
	minPasswordLength = 8
	maxPasswordLength = 72 // bcrypt input limit
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// FieldError names the input field a validation failure belongs to.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationResponse is the 400 body for failed input validation.
type ValidationResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors"`
}

// writeValidationErrors answers a 400 listing every failed rule.
func writeValidationErrors(w http.ResponseWriter, errs []FieldError) {
	httpx.WriteJSON(w, http.StatusBadRequest, ValidationResponse{
		Success: false,
		Message: "Validation failed",
		Errors:  errs,
	})
}

// validateEmail applies the registration email rules.
func validateEmail(email string) []FieldError {
	email = strings.TrimSpace(email)

	switch {
	case email == "":
		return []FieldError{{Field: "email", Message: "Email is required"}}
	case len(email) > maxEmailLength:
		return []FieldError{{Field: "email", Message: "Email too long"}}
	case !emailPattern.MatchString(email):
		return []FieldError{{Field: "email", Message: "Invalid email"}}
	}
	return nil
}

// validatePassword applies the registration password strength rules.
func validatePassword(password string) []FieldError {
	if password == "" {
		return []FieldError{{Field: "password", Message: "Password is required"}}
	}

	var errs []FieldError
	if len(password) < minPasswordLength || len(password) > maxPasswordLength {
		errs = append(errs, FieldError{Field: "password", Message: "Password must be 8-72 characters"})
	}

	var hasLower, hasUpper, hasDigit, hasSpecial, hasSpace bool
	for _, r := range password {
		switch {
		case unicode.IsSpace(r):
			hasSpace = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsDigit(r):
			hasDigit = true
		default:
			hasSpecial = true
		}
	}

	if !hasLower {
		errs = append(errs, FieldError{Field: "password", Message: "Must include a lowercase letter"})
	}
	if !hasUpper {
		errs = append(errs, FieldError{Field: "password", Message: "Must include an uppercase letter"})
	}
	if !hasDigit {
		errs = append(errs, FieldError{Field: "password", Message: "Must include a digit"})
	}
	if !hasSpecial {
		errs = append(errs, FieldError{Field: "password", Message: "Must include a special character"})
	}
	if hasSpace {
		errs = append(errs, FieldError{Field: "password", Message: "Password cannot contain spaces"})
	}
	return errs
}

// validateRegistration runs the full registration rule set.
func validateRegistration(req RegisterRequest) []FieldError {
	errs := validateEmail(req.Email)
	return append(errs, validatePassword(req.Password)...)
}
