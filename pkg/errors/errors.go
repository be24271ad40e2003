// Package errors carries coded errors shared by the CLI and the HTTP server.
//
// Every error the pipeline returns to a caller is an [*Error] whose [Code]
// says what went wrong in a form a program can switch on: the CLI prints
// the message, the server turns the code into a status (INVALID_* is 400,
// NOT_FOUND is 404, UNSUPPORTED is 501).
//
// Barrier placement itself never fails. Running out of attempts yields a
// partial layout, so the codes below cover configuration, option checks
// and the I/O around the generator.
//
//	err := errors.New(errors.ErrCodeInvalidDimensions, "width must be positive, got %g", w)
//	if errors.IsInvalid(err) {
//	    // reject the request
//	}
package errors

import (
	"errors"
	"fmt"
)

// Code identifies a class of failure.
type Code string

const (
	ErrCodeInvalidInput      Code = "INVALID_INPUT"
	ErrCodeInvalidDimensions Code = "INVALID_DIMENSIONS"
	ErrCodeInvalidRules      Code = "INVALID_RULES"
	ErrCodeInvalidFormat     Code = "INVALID_FORMAT"
	ErrCodeInvalidStyle      Code = "INVALID_STYLE"
	ErrCodeInvalidVizType    Code = "INVALID_VIZ_TYPE"
	ErrCodeInvalidSeed       Code = "INVALID_SEED"
	ErrCodeInvalidConfig     Code = "INVALID_CONFIG"
	ErrCodeInvalidPath       Code = "INVALID_PATH"

	ErrCodeNotFound     Code = "NOT_FOUND"
	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"

	ErrCodeInternal    Code = "INTERNAL_ERROR"
	ErrCodeUnsupported Code = "UNSUPPORTED"
)

// Error is a coded error. Cause may be nil.
type Error struct {
	Code    Code
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.Cause }

// New returns an error with code and a formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap is like [New] but records cause.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...), Cause: cause}
}

// first returns the outermost *Error in err's chain.
func first(err error) (*Error, bool) {
	var e *Error
	ok := errors.As(err, &e)
	return e, ok
}

// Is reports whether the outermost coded error in err's chain has code.
func Is(err error, code Code) bool {
	e, ok := first(err)
	return ok && e.Code == code
}

// GetCode returns the outermost code in err's chain, or "" if there is none.
func GetCode(err error) Code {
	if e, ok := first(err); ok {
		return e.Code
	}
	return ""
}

// UserMessage is the message without code prefix or cause. Uncoded errors
// are returned as is.
func UserMessage(err error) string {
	if e, ok := first(err); ok {
		return e.Message
	}
	return err.Error()
}

// IsInvalid reports whether err carries one of the INVALID_* codes.
// The HTTP server maps these to 400 responses.
func IsInvalid(err error) bool {
	switch GetCode(err) {
	case ErrCodeInvalidInput, ErrCodeInvalidDimensions, ErrCodeInvalidRules,
		ErrCodeInvalidFormat, ErrCodeInvalidStyle, ErrCodeInvalidVizType,
		ErrCodeInvalidSeed, ErrCodeInvalidConfig, ErrCodeInvalidPath:
		return true
	}
	return false
}
