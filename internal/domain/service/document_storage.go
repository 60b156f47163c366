package service

import (
	"context"
	"io"
)

// DocumentStorage persists uploaded document payloads. Payloads are opaque;
// the processing service reads them back through the same storage.
type DocumentStorage interface {
	// Upload writes the payload under the given key and returns the storage
	// path recorded on the knowledge entry.
	Upload(ctx context.Context, key string, contentType string, payload io.Reader) (string, error)

	// Delete removes a stored payload. Missing keys are not an error.
	Delete(ctx context.Context, key string) error

	// Close releases the underlying bucket handle.
	Close() error
}
