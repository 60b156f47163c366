// Package storage persists uploaded document payloads in blob storage via
// the Go CDK, so local development and GCS share one code path.
package storage

import (
	"context"
	"io"
	"log/slog"

	"lapak/internal/domain/service"

	"github.com/pkg/errors"
	"gocloud.dev/blob"
	"gocloud.dev/gcerrors"
)

// blobDocumentStorage implements DocumentStorage on top of a Go CDK bucket.
type blobDocumentStorage struct {
	bucket *blob.Bucket
	logger *slog.Logger
}

// NewBlobDocumentStorage wraps an open bucket handle.
func NewBlobDocumentStorage(bucket *blob.Bucket, logger *slog.Logger) service.DocumentStorage {
	return &blobDocumentStorage{
		bucket: bucket,
		logger: logger,
	}
}

// Upload writes the payload under the given key and returns the key as the
// storage path recorded on the knowledge entry.
func (s *blobDocumentStorage) Upload(ctx context.Context, key string, contentType string, payload io.Reader) (string, error) {
	writer, err := s.bucket.NewWriter(ctx, key, &blob.WriterOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", errors.Wrap(err, "failed to open blob writer")
	}

	if _, err := io.Copy(writer, payload); err != nil {
		// Closing after a failed copy aborts the write.
		_ = writer.Close()

		return "", errors.Wrap(err, "failed to write document payload")
	}
	if err := writer.Close(); err != nil {
		return "", errors.Wrap(err, "failed to finalize document payload")
	}

	s.logger.Debug("document payload stored", slog.String("key", key))

	return key, nil
}

// Delete removes a stored payload. Missing keys are not an error.
func (s *blobDocumentStorage) Delete(ctx context.Context, key string) error {
	if err := s.bucket.Delete(ctx, key); err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil
		}

		return errors.Wrap(err, "failed to delete document payload")
	}

	return nil
}

// Close releases the underlying bucket handle.
func (s *blobDocumentStorage) Close() error {
	return errors.WithStack(s.bucket.Close())
}
