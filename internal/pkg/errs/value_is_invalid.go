package errs

import "fmt"

// ValueIsInvalidError reports a value that failed a domain rule.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{
		ParamName: paramName,
		Cause:     cause,
	}
}

func (e *ValueIsInvalidError) Error() string {
	return fmt.Sprintf("%s: %s%s", ErrValueIsInvalid, e.ParamName, causeSuffix(e.Cause))
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}
