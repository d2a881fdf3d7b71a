package service

import "errors"

var (
	// ErrValidation is wrapped by every *ValidationError
	ErrValidation = errors.New("validation failed")

	ErrInvalidCredentials = errors.New("Email atau password salah")
	ErrNoAdminAccess      = errors.New("Anda tidak memiliki akses admin")

	ErrPackageNotFound    = errors.New("pricing package not found")
	ErrAdminNotFound      = errors.New("admin not found")
	ErrAdminAlreadyExists = errors.New("admin with this username or email already exists")
	ErrCannotDeleteSelf   = errors.New("Anda tidak dapat menghapus akun Anda sendiri")
)

// ValidationError carries a message meant to be shown next to the form
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func (e *ValidationError) Unwrap() error { return ErrValidation }

func invalid(message string) error {
	return &ValidationError{Message: message}
}
