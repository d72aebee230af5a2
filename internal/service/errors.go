package service

import "errors"

var (
	// ErrInvalidCredentials indicates that provided login credentials are incorrect.
	// Unknown usernames and wrong passwords are reported the same way.
	ErrInvalidCredentials = errors.New("Invalid username or password.")
	// ErrUserAlreadyExists is returned when attempting to register with an existing username.
	ErrUserAlreadyExists = errors.New("Username already exists.")
	// ErrStorageDisabled is returned by exports when no object storage is configured.
	ErrStorageDisabled = errors.New("statement storage is not configured")
)

// ValidationError is a user-correctable input problem. Message is shown to the user as is.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func newValidationError(msg string) error {
	return &ValidationError{Message: msg}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
