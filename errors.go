package remver

import (
	"errors"
	"fmt"
)

// ErrorCode classifies failures returned by the package.
type ErrorCode string

const (
	// CodeTypeMismatch: the input is not a string or a Version.
	CodeTypeMismatch ErrorCode = "TYPE_MISMATCH"
	// CodeGrammarMismatch: the string does not match the version grammar.
	CodeGrammarMismatch ErrorCode = "GRAMMAR_MISMATCH"
	// CodeLengthExceeded: the input is longer than MaxLength.
	CodeLengthExceeded ErrorCode = "LENGTH_EXCEEDED"
	// CodeInvalidOperator: unknown relational operator passed to Cmp.
	CodeInvalidOperator ErrorCode = "INVALID_OPERATOR"
	// CodeInvalidIncrement: unknown bump kind or bad prerelease identifier.
	CodeInvalidIncrement ErrorCode = "INVALID_INCREMENT"
)

// Sentinels for errors.Is checks against an *Error of the same code.
var (
	ErrTypeMismatch     = &Error{Code: CodeTypeMismatch}
	ErrGrammarMismatch  = &Error{Code: CodeGrammarMismatch}
	ErrLengthExceeded   = &Error{Code: CodeLengthExceeded}
	ErrInvalidOperator  = &Error{Code: CodeInvalidOperator}
	ErrInvalidIncrement = &Error{Code: CodeInvalidIncrement}
)

// Error is the single error type returned by parse, compare and increment
// operations. Input and Mode record what was being processed.
type Error struct {
	Code    ErrorCode
	Message string
	Input   string
	Mode    Mode
	Cause   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := e.Message
	if msg == "" {
		msg = string(e.Code)
	}

	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", msg, e.Cause)
	}

	return msg
}

// Unwrap returns the underlying cause for errors.Is and errors.As support.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target is an *Error carrying the same code.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}

	return t.Code == e.Code
}

// CodeOf returns the ErrorCode of err, or "" when err is not an *Error.
func CodeOf(err error) ErrorCode {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}

	return ""
}

func typeMismatch(v any) *Error {
	return &Error{
		Code:    CodeTypeMismatch,
		Message: fmt.Sprintf("invalid version: must be a string, got type %q", fmt.Sprintf("%T", v)),
		Input:   fmt.Sprint(v),
	}
}

func grammarMismatch(raw string, mode Mode) *Error {
	return &Error{
		Code:    CodeGrammarMismatch,
		Message: fmt.Sprintf("invalid version: %s (%s)", raw, mode),
		Input:   raw,
		Mode:    mode,
	}
}

func lengthExceeded(raw string, mode Mode) *Error {
	return &Error{
		Code:    CodeLengthExceeded,
		Message: fmt.Sprintf("invalid version: longer than %d characters (%s)", MaxLength, mode),
		Input:   raw,
		Mode:    mode,
	}
}

func invalidOperator(op string) *Error {
	return &Error{
		Code:    CodeInvalidOperator,
		Message: "invalid operator: " + op,
		Input:   op,
	}
}

func invalidIncrement(raw string, mode Mode, format string, args ...any) *Error {
	return &Error{
		Code:    CodeInvalidIncrement,
		Message: "invalid increment argument: " + fmt.Sprintf(format, args...),
		Input:   raw,
		Mode:    mode,
	}
}
