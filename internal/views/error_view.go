package views

import (
	"strings"

	appErrors "github.com/aaravmahajanofficial/storefront/internal/errors"
)

const (
	ErrorKindNotFound   = "not_found"
	ErrorKindValidation = "validation"
	ErrorKindNetwork    = "network"
	ErrorKindServer     = "server"
	ErrorKindStorage    = "storage_unavailable"
	ErrorKindInternal   = "internal"
)

// ErrorView is what a page shows in place of its content when loading fails.
type ErrorView struct {
	Kind      string `json:"kind"`
	Title     string `json:"title"`
	Message   string `json:"message"`
	Retryable bool   `json:"retryable"`
}

func NewErrorView(title string, err error) ErrorView {
	return ErrorView{
		Kind:      errorKind(err),
		Title:     title,
		Message:   appErrors.UserMessage(err),
		Retryable: appErrors.Retryable(err),
	}
}

// NotFoundView is shown for missing products and departments.
func NotFoundView(what string) ErrorView {
	return ErrorView{
		Kind:    ErrorKindNotFound,
		Title:   what + " not found",
		Message: "The " + strings.ToLower(what) + " you're looking for doesn't exist or has been removed.",
	}
}

func errorKind(err error) string {
	switch appErrors.Code(err) {
	case appErrors.ErrCodeNotFound:
		return ErrorKindNotFound
	case appErrors.ErrCodeValidation, appErrors.ErrCodeBadRequest:
		return ErrorKindValidation
	case appErrors.ErrCodeNetwork:
		return ErrorKindNetwork
	case appErrors.ErrCodeServer:
		return ErrorKindServer
	case appErrors.ErrCodeStorageUnavailable:
		return ErrorKindStorage
	default:
		return ErrorKindInternal
	}
}
