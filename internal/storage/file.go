package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	appErrors "github.com/aaravmahajanofficial/storefront/internal/errors"
)

type fileStorage struct {
	dir string
}

// NewFileStorage keeps one JSON file per key under dir.
func NewFileStorage(dir string) (Storage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, appErrors.StorageUnavailableError("Failed to prepare storage directory").WithError(err)
	}

	return &fileStorage{dir: dir}, nil
}

func (f *fileStorage) path(key string) (string, error) {
	if key == "" || strings.ContainsAny(key, `/\`) || key == "." || key == ".." {
		return "", appErrors.BadRequestError(fmt.Sprintf("invalid storage key %q", key))
	}

	return filepath.Join(f.dir, key+".json"), nil
}

func (f *fileStorage) Read(ctx context.Context, key string) ([]byte, error) {
	path, err := f.path(key)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNotFound
		}

		return nil, appErrors.StorageUnavailableError("Failed to read " + key).WithError(err)
	}

	return data, nil
}

// Write replaces the file atomically: the value lands in a temp file that is
// then renamed over the old one.
func (f *fileStorage) Write(ctx context.Context, key string, value []byte) error {
	path, err := f.path(key)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(f.dir, key+".*.tmp")
	if err != nil {
		return appErrors.StorageUnavailableError("Failed to write " + key).WithError(err)
	}

	tmpName := tmp.Name()

	if _, err := tmp.Write(value); err != nil {
		tmp.Close()
		os.Remove(tmpName)

		return appErrors.StorageUnavailableError("Failed to write " + key).WithError(err)
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)

		return appErrors.StorageUnavailableError("Failed to write " + key).WithError(err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)

		return appErrors.StorageUnavailableError("Failed to write " + key).WithError(err)
	}

	return nil
}

func (f *fileStorage) Remove(ctx context.Context, key string) error {
	path, err := f.path(key)
	if err != nil {
		return err
	}

	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return appErrors.StorageUnavailableError("Failed to remove " + key).WithError(err)
	}

	return nil
}

func (f *fileStorage) Ping(ctx context.Context) error {
	info, err := os.Stat(f.dir)
	if err != nil {
		return appErrors.StorageUnavailableError("Storage directory is not accessible").WithError(err)
	}

	if !info.IsDir() {
		return appErrors.StorageUnavailableError(f.dir + " is not a directory")
	}

	return nil
}

func (f *fileStorage) Close() error {
	return nil
}
