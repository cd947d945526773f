// Package apperr defines the error taxonomy shared by services and mapped to
// HTTP status codes at the handler boundary.
package apperr

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound means a referenced id does not resolve to a stored record.
	ErrNotFound = errors.New("not found")
	// ErrInvalidInput means a required field is missing or empty.
	ErrInvalidInput = errors.New("invalid input")
)

// ExternalError wraps a failure of an external collaborator (object storage,
// database, OCR, completion API). The wrapped cause is logged server-side;
// clients only see a generic message.
type ExternalError struct {
	Op  string
	Err error
}

func (e *ExternalError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *ExternalError) Unwrap() error { return e.Err }

// External wraps err as an ExternalError for operation op.
func External(op string, err error) error {
	return &ExternalError{Op: op, Err: err}
}

// ParseError means model output did not match the expected schema. Nothing
// repairs or retries it; the request fails.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse model output: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// IsExternal reports whether err is (or wraps) an ExternalError.
func IsExternal(err error) bool {
	var ee *ExternalError
	return errors.As(err, &ee)
}

// IsParse reports whether err is (or wraps) a ParseError.
func IsParse(err error) bool {
	var pe *ParseError
	return errors.As(err, &pe)
}
