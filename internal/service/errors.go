package service

import (
	"errors"
	"fmt"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserExists         = errors.New("user already exists")
	ErrCropNotFound       = errors.New("crop not found")
	ErrNoSoilTest         = errors.New("no soil test recorded")
	ErrInvalidResetToken  = errors.New("invalid or expired reset token")
	ErrValidation         = errors.New("validation failed")
)

// ValidationError carries a message that is safe to show to the client.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func (e *ValidationError) Unwrap() error { return ErrValidation }

func invalid(field, format string, args ...any) error {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

// UserExistsError names the field that collided with another account.
type UserExistsError struct {
	Field string
}

func (e *UserExistsError) Error() string {
	switch e.Field {
	case "username":
		return "Username already exists"
	case "email":
		return "Email already registered"
	case "phone":
		return "Phone number already registered"
	default:
		return "User already exists"
	}
}

func (e *UserExistsError) Unwrap() error { return ErrUserExists }
