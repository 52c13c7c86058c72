package storage

import (
	"context"
	"errors"

	appErrors "github.com/aaravmahajanofficial/storefront/internal/errors"
)

// ErrNotFound is returned by Read when nothing is stored under the key.
var ErrNotFound = errors.New("storage: key not found")

// Storage is a durable string-keyed blob store, the server-side stand-in for
// browser local storage. Failures other than a missing key are reported as
// STORAGE_UNAVAILABLE application errors.
type Storage interface {
	Read(ctx context.Context, key string) ([]byte, error)
	Write(ctx context.Context, key string, value []byte) error
	Remove(ctx context.Context, key string) error
	Ping(ctx context.Context) error
	Close() error
}

// Unavailable reports a backend failure as STORAGE_UNAVAILABLE, unless ctx has
// already ended, in which case the context error is returned unwrapped.
func Unavailable(ctx context.Context, message string, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}

	return appErrors.StorageUnavailableError(message).WithError(err)
}
