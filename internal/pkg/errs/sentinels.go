package errs

import "errors"

var (
	ErrObjectNotFound    = errors.New("object not found")
	ErrValueIsInvalid    = errors.New("value is invalid")
	ErrValueIsOutOfRange = errors.New("value is out of range")
	ErrValueIsRequired   = errors.New("value is required")
	ErrPersistenceFailed = errors.New("persistence failed")
)

// causeSuffix renders the trailing "(cause: ...)" part shared by every error type.
func causeSuffix(cause error) string {
	if cause == nil {
		return ""
	}
	return " (cause: " + cause.Error() + ")"
}
