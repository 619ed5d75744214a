// Package kv defines the key-value storage every persisted collection of the
// authoring tool is kept in. Each key holds one JSON document.
package kv

import (
	"context"
	"errors"
)

var ErrClosed = errors.New("kv store is closed")

type Store interface {
	// Get returns the raw value stored under key. The boolean is false when
	// the key is absent; absence is not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
	Keys(ctx context.Context) ([]string, error)
	Close(ctx context.Context) error
}
