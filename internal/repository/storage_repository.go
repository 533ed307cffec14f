package repository

import (
	"context"
	"errors"
)

// ErrKeyNotFound is returned by Get when the key has never been written or was removed.
var ErrKeyNotFound = errors.New("storage key not found")

// StorageRepository is durable key/value storage. Writes complete before returning.
type StorageRepository interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}
