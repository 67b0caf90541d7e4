package blobstore

import (
	"context"
	"io"
	"os"
)

// ErrNotFound is returned when an artifact does not exist.
//
// Implementations should return an error that satisfies `errors.Is(err, ErrNotFound)`.
// The default maps to `os.ErrNotExist`.
var ErrNotFound = os.ErrNotExist

// Store is an abstraction for persisting score-table artifacts.
type Store interface {
	// Put writes an artifact atomically: a failed write must not leave a
	// partial artifact behind.
	Put(ctx context.Context, name string, data []byte) error

	// Open opens an artifact for reading.
	Open(ctx context.Context, name string) (io.ReadCloser, error)

	// Delete removes an artifact. Deleting a missing artifact is not an error.
	Delete(ctx context.Context, name string) error

	// List returns all artifact names with the given prefix, sorted.
	List(ctx context.Context, prefix string) ([]string, error)
}
