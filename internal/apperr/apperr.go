// Package apperr implements the small typed-error taxonomy used across the
// command layer so the frontend always sees a stable error kind plus a
// human-readable message, mirroring how the teacher distinguishes file,
// format, and argument failures in app/fileloader without a dedicated
// error-kind library (the pack carries none; this stays on errors/fmt).
package apperr

import (
	"errors"
	"fmt"
)

type Kind string

const (
	IoError       Kind = "IoError"
	FormatError   Kind = "FormatError"
	QueryError    Kind = "QueryError"
	ArgumentError Kind = "ArgumentError"
	Cancelled     Kind = "Cancelled"
)

// AppError is the error type returned by every command in app.App.
type AppError struct {
	Kind    Kind
	Message string
	cause   error
}

func (e *AppError) Error() string {
	if e.Message != "" {
		return string(e.Kind) + ": " + e.Message
	}
	return string(e.Kind)
}

func (e *AppError) Unwrap() error { return e.cause }

func New(kind Kind, format string, args ...any) *AppError {
	return &AppError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func Wrap(kind Kind, cause error, format string, args ...any) *AppError {
	return &AppError{Kind: kind, Message: fmt.Sprintf(format, args...), cause: cause}
}

// Is reports whether err carries the given Kind.
func Is(err error, kind Kind) bool {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae.Kind == kind
	}
	return false
}

var ErrCancelled = &AppError{Kind: Cancelled, Message: "invocation cancelled"}
