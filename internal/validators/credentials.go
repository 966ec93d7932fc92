package validators

import (
	"context"
	"net/mail"
	"strings"
	"unicode/utf8"

	"github.com/taskdeck/taskdeck/models"
)

// Field names reported in credential validation failures.
const (
	FieldEmail    = "email"
	FieldName     = "name"
	FieldPassword = "password"
)

// Credential length policy. Name length is measured in runes, password
// length in bytes (bcrypt truncates input beyond 72 bytes anyway).
const (
	NameMinLength     = 2
	NameMaxLength     = 100
	PasswordMinLength = 8
	PasswordMaxLength = 128
)

// CredentialsValidator validates registration and login payloads.
type CredentialsValidator struct {
}

// NewCredentialsValidator constructs a [Validator] for credential payloads.
func NewCredentialsValidator() Validator {
	return &CredentialsValidator{}
}

// Validate validates registration and login data. Supported inputs are
// [models.RegisterData] and [models.LoginData] (values or pointers); any
// other type yields ErrUnsupportedType.
//
// All field checks run before returning, so a single failed call reports
// every invalid field at once.
func (v *CredentialsValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RegisterData:
		return v.validateRegisterData(value)
	case *models.RegisterData:
		return v.validateRegisterData(*value)

	case models.LoginData:
		return v.validateLoginData(value)
	case *models.LoginData:
		return v.validateLoginData(*value)

	default:
		return ErrUnsupportedType
	}
}

func (v *CredentialsValidator) validateRegisterData(data models.RegisterData) error {
	vErr := NewValidationError()

	validateEmail(vErr, data.Email)
	validateName(vErr, data.Name)
	validatePassword(vErr, data.Password)

	if vErr.HasErrors() {
		return vErr
	}
	return nil
}

func (v *CredentialsValidator) validateLoginData(data models.LoginData) error {
	vErr := NewValidationError()

	if strings.TrimSpace(data.Email) == "" {
		vErr.Add(FieldEmail, "email is required")
	}
	if data.Password == "" {
		vErr.Add(FieldPassword, "password is required")
	}

	if vErr.HasErrors() {
		return vErr
	}
	return nil
}

func validateEmail(vErr *ValidationError, email string) {
	if strings.TrimSpace(email) == "" {
		vErr.Add(FieldEmail, "email is required")
		return
	}

	// mail.ParseAddress accepts "Name <a@b>" forms; require the bare address.
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		vErr.Add(FieldEmail, "email must be a valid address")
	}
}

func validateName(vErr *ValidationError, name string) {
	length := utf8.RuneCountInString(strings.TrimSpace(name))
	if length < NameMinLength || length > NameMaxLength {
		vErr.Add(FieldName, "name must be between 2 and 100 characters")
	}
}

func validatePassword(vErr *ValidationError, password string) {
	if len(password) < PasswordMinLength || len(password) > PasswordMaxLength {
		vErr.Add(FieldPassword, "password must be between 8 and 128 characters")
	}
}
