package errors

import (
	"errors"
	"fmt"
	"net/http"
)

const (
	CodeMissingField     = "MISSING_FIELD"
	CodeInvalidEmail     = "INVALID_EMAIL"
	CodeInvalidTimeZone  = "INVALID_TIMEZONE"
	CodeClassNotFound    = "CLASS_NOT_FOUND"
	CodeNoSlotsAvailable = "NO_SLOTS_AVAILABLE"

	CodeNotFound     = "NOT_FOUND"
	CodeInvalidInput = "INVALID_INPUT"
	CodeInternal     = "INTERNAL_ERROR"
)

type AppError struct {
	Code       string         `json:"code"`
	Message    string         `json:"message"`
	HTTPStatus int            `json:"-"`
	Details    map[string]any `json:"details,omitempty"`
	Err        error          `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func (e *AppError) StatusCode() int {
	return e.HTTPStatus
}

// Is matches on Code so callers can compare against a constructor result,
// e.g. errors.Is(err, apperrors.NoSlotsAvailable()).
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

func New(code, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

func Wrap(err error, code, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

func (e *AppError) WithDetails(details map[string]any) *AppError {
	e.Details = details
	return e
}

func MissingField(message string) *AppError {
	return New(CodeMissingField, message, http.StatusBadRequest)
}

func InvalidEmail(message string) *AppError {
	return New(CodeInvalidEmail, message, http.StatusBadRequest)
}

func InvalidTimeZone() *AppError {
	return New(CodeInvalidTimeZone, "Invalid timezone", http.StatusBadRequest)
}

func ClassNotFound(id string) *AppError {
	return &AppError{
		Code:       CodeClassNotFound,
		Message:    "Class not found",
		HTTPStatus: http.StatusNotFound,
		Details: map[string]any{
			"class_id": id,
		},
	}
}

func NoSlotsAvailable() *AppError {
	return New(CodeNoSlotsAvailable, "No slots available", http.StatusBadRequest)
}

func NotFound(resource string) *AppError {
	return New(CodeNotFound, fmt.Sprintf("%s not found", resource), http.StatusNotFound)
}

func InvalidInput(message string) *AppError {
	return New(CodeInvalidInput, message, http.StatusBadRequest)
}

func Internal(message string, err error) *AppError {
	return Wrap(err, CodeInternal, message, http.StatusInternalServerError)
}

func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

func AsAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return Internal("An unexpected error occurred", err)
}

// HasCode reports whether err is an AppError carrying code.
func HasCode(err error, code string) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Code == code
}
