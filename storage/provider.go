package storage

import (
	"context"
	"io"
)

// Provider is the object-store abstraction every pipeline talks to.
type Provider interface {
	// SaveWithContext writes a blob under the given key.
	SaveWithContext(ctx context.Context, key string, r io.Reader, size int64, contentType string) error

	// GetWithContext reads the whole blob stored under the given key.
	GetWithContext(ctx context.Context, key string) ([]byte, error)

	// Exists checks whether a blob is stored under the given key.
	Exists(ctx context.Context, key string) (bool, error)

	// Health checks connectivity to the store.
	Health(ctx context.Context) error

	// PublicURL derives the publicly readable URL for a stored key.
	PublicURL(key string) string

	// Name returns the backend name.
	Name() string
}
