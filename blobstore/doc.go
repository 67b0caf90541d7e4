// Package blobstore provides storage abstraction for score-table artifacts.
//
// Store is the interface for writing and reading report artifacts.
// Implementations must be safe for concurrent use.
//
// # Built-in Implementations
//
//   - LocalStore: local filesystem; writes are atomic (temp file + rename)
//   - MemoryStore: in-memory store for tests
//   - s3.Store: Amazon S3
//   - minio.Store: MinIO and other S3-compatible storage
//
// # Custom Implementations
//
// Implement the Store interface to support custom storage backends:
//
//	type Store interface {
//	    Put(ctx, name, data) error              // Atomic write
//	    Open(ctx, name) (io.ReadCloser, error)  // Open for reading
//	    Delete(ctx, name) error
//	    List(ctx, prefix) ([]string, error)
//	}
package blobstore
