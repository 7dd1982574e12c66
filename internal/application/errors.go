package application

import "errors"

// Domain errors raised by the user service. The HTTP boundary maps them to
// status codes with errors.Is; lookup errors are wrapped with the key and
// value that missed.
var (
	// ErrDuplicateUser deliberately does not say which field collided; the
	// store reports a single undifferentiated integrity violation.
	ErrDuplicateUser = errors.New("a user with this username or email already exists")

	ErrUserNotFound = errors.New("no user was found")

	// ErrPasswordConfirmation fires before any lookup, ErrPasswordMismatch
	// only after the target user was located.
	ErrPasswordConfirmation = errors.New("new password does not match confirmation")
	ErrPasswordMismatch     = errors.New("password does not match")

	ErrDatabase = errors.New("integrity violation")
)
