package errors

import (
	"errors"
	"fmt"
	"net/http"
)

type AppError struct {
	Code       string
	Message    string
	Detail     string
	StatusCode int
	Err        error
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewAppError(code, message string, statusCode int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
	}
}

func (e *AppError) WithDetail(detail string) *AppError {
	e.Detail = detail

	return e
}

func (e *AppError) WithError(err error) *AppError {
	e.Err = err

	return e
}

const (
	ErrCodeValidation         = "VALIDATION_ERROR"
	ErrCodeBadRequest         = "BAD_REQUEST"
	ErrCodeNotFound           = "NOT_FOUND"
	ErrCodeNetwork            = "NETWORK_ERROR"
	ErrCodeServer             = "SERVER_ERROR"
	ErrCodeStorageUnavailable = "STORAGE_UNAVAILABLE"
	ErrCodeInternal           = "INTERNAL_ERROR"
)

// User-facing fallback messages, keyed by error code.
var fallbackMessages = map[string]string{
	ErrCodeNetwork:    "Network error. Please check your connection and try again.",
	ErrCodeServer:     "Server error. Please try again later.",
	ErrCodeNotFound:   "The requested resource was not found.",
	ErrCodeValidation: "Please check your input and try again.",
	ErrCodeBadRequest: "Please check your input and try again.",
}

const GenericMessage = "Something went wrong. Please try again."

func ValidationError(message string) *AppError {
	return NewAppError(ErrCodeValidation, message, http.StatusUnprocessableEntity)
}

func BadRequestError(message string) *AppError {
	return NewAppError(ErrCodeBadRequest, message, http.StatusBadRequest)
}

func NotFoundError(message string) *AppError {
	return NewAppError(ErrCodeNotFound, message, http.StatusNotFound)
}

func NetworkError(message string) *AppError {
	return NewAppError(ErrCodeNetwork, message, http.StatusBadGateway)
}

func ServerError(message string) *AppError {
	return NewAppError(ErrCodeServer, message, http.StatusBadGateway)
}

func StorageUnavailableError(message string) *AppError {
	return NewAppError(ErrCodeStorageUnavailable, message, http.StatusServiceUnavailable)
}

func InternalError(message string) *AppError {
	return NewAppError(ErrCodeInternal, message, http.StatusInternalServerError)
}

func IsAppError(err error) (*AppError, bool) {
	var appError *AppError

	if errors.As(err, &appError) {
		return appError, true
	}

	return nil, false
}

// Code returns the AppError code carried by err, or ErrCodeInternal.
func Code(err error) string {
	if appErr, ok := IsAppError(err); ok {
		return appErr.Code
	}

	return ErrCodeInternal
}

func IsNotFound(err error) bool { return err != nil && Code(err) == ErrCodeNotFound }

func IsStorageUnavailable(err error) bool {
	return err != nil && Code(err) == ErrCodeStorageUnavailable
}

// Retryable reports whether the caller should be offered a retry action.
func Retryable(err error) bool {
	switch Code(err) {
	case ErrCodeNetwork, ErrCodeServer:
		return true
	}

	return false
}

// UserMessage picks the message shown to a shopper: the upstream detail for
// validation failures when present, otherwise a fixed message for the code.
func UserMessage(err error) string {
	appErr, ok := IsAppError(err)
	if !ok {
		return GenericMessage
	}

	if appErr.Code == ErrCodeValidation && appErr.Detail != "" {
		return appErr.Detail
	}

	if msg, ok := fallbackMessages[appErr.Code]; ok {
		return msg
	}

	return GenericMessage
}

// field validation error.
func AddValidationError(field, reason string) *AppError {
	return ValidationError(fmt.Sprintf("Invalid field '%s': %s", field, reason))
}
