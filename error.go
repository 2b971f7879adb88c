package cpumark

import (
	"errors"
	"fmt"
)

// Application error codes.
const (
	EINTERNAL = "internal"
	EINVALID  = "invalid"
	ENOTFOUND = "not_found"
	EFETCH    = "fetch"
	EEXTRACT  = "extract"
)

// Error represents an application-specific error. Code classifies the
// failure, Op names the stage that produced it, and Err holds the
// underlying cause when the error wraps another one.
type Error struct {
	Code    string
	Op      string
	Message string
	Err     error
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := e.Message
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	}
	if e.Op != "" {
		return fmt.Sprintf("%s: %s", e.Op, msg)
	}
	return msg
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// ErrorCode unwraps an application error and returns its code.
// Non-application errors always return EINTERNAL.
func ErrorCode(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		if e.Code == "" && e.Err != nil {
			return ErrorCode(e.Err)
		}
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage unwraps an application error and returns its message.
// Non-application errors always return "Internal error.".
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		if e.Message == "" && e.Err != nil {
			return ErrorMessage(e.Err)
		}
		return e.Message
	}
	return "Internal error."
}

// ErrorOp returns the outermost stage annotation of an application error.
func ErrorOp(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Op
	}
	return ""
}

// Errorf is a helper function to return an Error with a given code and formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// WrapError annotates err with the stage op. The code of err is kept;
// errors without one are classified as fallback.
func WrapError(op string, fallback string, err error) error {
	if err == nil {
		return nil
	}
	code := fallback
	var e *Error
	if errors.As(err, &e) {
		code = ErrorCode(err)
	}
	return &Error{Code: code, Op: op, Err: err}
}
