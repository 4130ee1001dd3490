package errs

import "fmt"

// PersistenceError wraps a failure reported by a remote store or gateway.
// Both ErrPersistenceFailed and the underlying cause are reachable through errors.Is.
type PersistenceError struct {
	Operation string
	Cause     error
}

func NewPersistenceError(operation string, cause error) *PersistenceError {
	return &PersistenceError{
		Operation: operation,
		Cause:     cause,
	}
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s: %s%s", ErrPersistenceFailed, e.Operation, causeSuffix(e.Cause))
}

func (e *PersistenceError) Unwrap() []error {
	if e.Cause == nil {
		return []error{ErrPersistenceFailed}
	}
	return []error{ErrPersistenceFailed, e.Cause}
}
