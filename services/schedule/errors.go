package schedule

import (
	"errors"
	"fmt"
)

// Domain error codes.
const (
	CodeInvalidWindow     = "invalidWindow"
	CodeInvalidDate       = "invalidDate"
	CodeNoAvailability    = "noAvailability"
	CodeSourceUnavailable = "sourceUnavailable"
	CodePersistenceError  = "persistenceError"
	CodeInvalidTransition = "invalidTransition"
)

// DomainError carries a stable code alongside the human-readable message so
// handlers can map failures to responses without string matching.
type DomainError struct {
	Code    string
	Message string
	Err     error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

func NewDomainError(code, message string) error {
	return &DomainError{Code: code, Message: message}
}

func WrapDomainError(code, message string, err error) error {
	return &DomainError{Code: code, Message: message, Err: err}
}

// ErrCode extracts the domain code from an error chain, or "" when the error
// is not a DomainError.
func ErrCode(err error) string {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Code
	}
	return ""
}
