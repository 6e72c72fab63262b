// Package errors carries the service error taxonomy: a structured error
// type, stable machine codes, and the HTTP mapping.
// Import it as perr to stay clear of the stdlib errors package
package errors

import (
	stderrs "errors"
	"fmt"
	"net/http"
)

// ErrorCode classifies failures across services. Values are stable on the
// wire; append only
type ErrorCode uint16

const (
	// ErrorCodeUnknown covers unclassified failures
	ErrorCodeUnknown ErrorCode = iota

	// ErrorCodePanic marks panics recovered by middleware
	ErrorCodePanic

	// ErrorCodeUnavailable marks transient failures where retry may succeed
	ErrorCodeUnavailable

	// ErrorCodeConflict marks editing conflicts beyond duplicate key
	ErrorCodeConflict

	// ErrorCodeUnauthorized marks missing or invalid credentials
	ErrorCodeUnauthorized

	// ErrorCodeForbidden marks access control rejections
	ErrorCodeForbidden

	// ErrorCodeInvalidArgument marks bad input parameters
	ErrorCodeInvalidArgument

	// ErrorCodeValidation marks input data that failed validation
	ErrorCodeValidation

	// ErrorCodeJSON marks request body parse failures
	ErrorCodeJSON

	// ErrorCodeNotFound marks missing resources
	ErrorCodeNotFound

	// ErrorCodeDuplicateKey marks unique constraint violations
	ErrorCodeDuplicateKey

	// ErrorCodeDB marks database failures with no better classification
	ErrorCodeDB

	// ErrorCodeCollaborator marks failures of upstream providers, the
	// speech-to-text and completion services in particular
	ErrorCodeCollaborator
)

var httpByCode = map[ErrorCode]int{
	ErrorCodeNotFound:        http.StatusNotFound,
	ErrorCodeInvalidArgument: http.StatusUnprocessableEntity,
	ErrorCodeDuplicateKey:    http.StatusConflict,
	ErrorCodeConflict:        http.StatusConflict,
	ErrorCodeValidation:      http.StatusBadRequest,
	ErrorCodeJSON:            http.StatusBadRequest,
	ErrorCodeUnauthorized:    http.StatusUnauthorized,
	ErrorCodeForbidden:       http.StatusForbidden,
	ErrorCodeUnavailable:     http.StatusServiceUnavailable,
	ErrorCodeCollaborator:    http.StatusBadGateway,
}

// HTTPStatusCode maps an ErrorCode to its HTTP status. Unmapped codes,
// ErrorCodeDB and ErrorCodePanic included, resolve to 500
func HTTPStatusCode(c ErrorCode) int {
	if status, ok := httpByCode[c]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// ErrNotFound is a reusable not found sentinel
var ErrNotFound = New(ErrorCodeNotFound, "not found")

// Error pairs a developer facing message with a machine code, an optional
// offending field, and the wrapped cause
type Error struct {
	orig  error
	msg   string
	code  ErrorCode
	field string
}

// Wire is the JSON form the API serves
type Wire struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Field   string    `json:"field,omitempty"`
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.orig != nil {
		return fmt.Sprintf("%s: %v", e.msg, e.orig)
	}
	return e.msg
}

// Unwrap exposes the cause to errors.Is and errors.As
func (e *Error) Unwrap() error { return e.orig }

// Code is the machine classification
func (e *Error) Code() ErrorCode { return e.code }

// Field names the offending input field when one is known
func (e *Error) Field() string { return e.field }

// ToWire strips the cause and keeps the serializable parts
func (e *Error) ToWire() Wire { return Wire{Code: e.code, Message: e.msg, Field: e.field} }

// WireFrom serializes any error, degrading foreign errors to Unknown
func WireFrom(err error) Wire {
	if err == nil {
		return Wire{}
	}
	if e, ok := As(err); ok {
		return e.ToWire()
	}
	return Wire{Code: ErrorCodeUnknown, Message: err.Error()}
}

// Root walks the Unwrap chain to the deepest cause
func Root(err error) error {
	for err != nil {
		next := stderrs.Unwrap(err)
		if next == nil {
			return err
		}
		err = next
	}
	return nil
}

// As unwraps err to (*Error, true) when it is one of ours
func As(err error) (*Error, bool) {
	var e *Error
	if stderrs.As(err, &e) {
		return e, true
	}
	return nil, false
}

// CodeOf classifies any error, foreign ones as Unknown
func CodeOf(err error) ErrorCode {
	if e, ok := As(err); ok {
		return e.code
	}
	return ErrorCodeUnknown
}

// IsCode reports whether err classifies as code
func IsCode(err error, code ErrorCode) bool { return CodeOf(err) == code }

// IsNotFound reports whether err classifies as not found
func IsNotFound(err error) bool { return IsCode(err, ErrorCodeNotFound) }

// HTTPStatus maps any error to its HTTP status
func HTTPStatus(err error) int { return HTTPStatusCode(CodeOf(err)) }

// HTTP resolves status and wire form in one call for handlers
func HTTP(err error) (int, Wire) {
	if err == nil {
		return http.StatusOK, Wire{}
	}
	return HTTPStatus(err), WireFrom(err)
}

// WithField copies err with field attached. Foreign errors pass through
// unchanged
func WithField(err error, field string) error {
	if e, ok := As(err); ok {
		c := *e
		c.field = field
		return &c
	}
	return err
}

// New builds an *Error from code and message
func New(code ErrorCode, msg string) error { return &Error{code: code, msg: msg} }

// Newf is New with a format string
func Newf(code ErrorCode, format string, a ...any) error {
	return &Error{code: code, msg: fmt.Sprintf(format, a...)}
}

// Wrap builds an *Error around a cause
func Wrap(orig error, code ErrorCode, msg string) error {
	return &Error{code: code, msg: msg, orig: orig}
}

// Wrapf is Wrap with a format string
func Wrapf(orig error, code ErrorCode, format string, a ...any) error {
	return &Error{code: code, msg: fmt.Sprintf(format, a...), orig: orig}
}

// Per-code constructors used at call sites

func NotFoundf(format string, a ...any) error   { return Newf(ErrorCodeNotFound, format, a...) }
func InvalidArgf(format string, a ...any) error { return Newf(ErrorCodeInvalidArgument, format, a...) }
func Validationf(format string, a ...any) error { return Newf(ErrorCodeValidation, format, a...) }
func DuplicateKeyf(format string, a ...any) error {
	return Newf(ErrorCodeDuplicateKey, format, a...)
}
func DBf(format string, a ...any) error      { return Newf(ErrorCodeDB, format, a...) }
func JSONErrf(format string, a ...any) error { return Newf(ErrorCodeJSON, format, a...) }
func PanicErrf(format string, a ...any) error {
	return Newf(ErrorCodePanic, format, a...)
}
func Unauthorizedf(format string, a ...any) error {
	return Newf(ErrorCodeUnauthorized, format, a...)
}
func Forbiddenf(format string, a ...any) error { return Newf(ErrorCodeForbidden, format, a...) }
func Unavailablef(format string, a ...any) error {
	return Newf(ErrorCodeUnavailable, format, a...)
}
func Collaboratorf(format string, a ...any) error {
	return Newf(ErrorCodeCollaborator, format, a...)
}
func Internalf(format string, a ...any) error { return Newf(ErrorCodeUnknown, format, a...) }
