// Package kv is the small blob-store surface the blocklist persists
// through. Two implementations: Redis for deployments, in-memory for
// tests and single-process runs.
package kv

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get when the key has no value.
var ErrNotFound = errors.New("kv: key not found")

// Store persists opaque blobs by key.
type Store interface {
	Set(ctx context.Context, key string, value []byte) error
	Get(ctx context.Context, key string) ([]byte, error)
	Delete(ctx context.Context, key string) error
	Close() error
}
