package storage

import (
	"context"
	"io"
)

// Storage persists uploaded files (vehicle photos, driver documents)
// and returns the URL the stored object is served from.
type Storage interface {
	// Save writes the object under key and returns its public URL.
	Save(ctx context.Context, key, contentType string, r io.Reader) (string, error)

	// Open returns the object's content. Only the local backend serves
	// files through the API; cloud backends hand out direct URLs.
	Open(ctx context.Context, key string) (io.ReadCloser, error)

	// Exists reports whether the object is present.
	Exists(ctx context.Context, key string) (bool, error)

	// Delete removes the object. Deleting a missing object is not an error.
	Delete(ctx context.Context, key string) error
}
