package services

import (
	"errors"
	"fmt"
)

// Error kinds surfaced to the HTTP layer. Handlers match with errors.Is and
// translate to status codes.
var (
	ErrNotFound        = errors.New("not found")
	ErrConflict        = errors.New("conflict")
	ErrValidation      = errors.New("invalid input")
	ErrOperationFailed = errors.New("operation failed")
)

// Error pairs a kind with a caller-facing message carrying the offending
// identifier or field.
type Error struct {
	Kind error
	Msg  string
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Msg == "" {
		return e.Kind.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Kind }

func notFoundf(format string, args ...any) error {
	return &Error{Kind: ErrNotFound, Msg: fmt.Sprintf(format, args...)}
}

func conflictf(format string, args ...any) error {
	return &Error{Kind: ErrConflict, Msg: fmt.Sprintf(format, args...)}
}

func invalidf(format string, args ...any) error {
	return &Error{Kind: ErrValidation, Msg: fmt.Sprintf(format, args...)}
}

func failedf(format string, args ...any) error {
	return &Error{Kind: ErrOperationFailed, Msg: fmt.Sprintf(format, args...)}
}
