package storage

import (
	"context"
	"fmt"
	"log/slog"

	"lapak/config"
	"lapak/internal/domain/constants"
	"lapak/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"

	// Blob drivers are selected by URL scheme.
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
)

// StorageParams holds dependencies for DocumentStorage, injected by Fx
type StorageParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewDocumentStorage opens the configured bucket and wraps it as a
// DocumentStorage.
func NewDocumentStorage(params StorageParams) (service.DocumentStorage, error) {
	cfg := params.Config.Storage
	logger := params.Logger

	if cfg == nil || cfg.Provider == "" {
		return nil, errors.New("storage is not configured")
	}

	var bucketURL string
	switch cfg.Provider {
	case constants.StorageProviderLocal:
		if cfg.LocalPath == "" {
			return nil, errors.New("local path is required for local provider")
		}
		bucketURL = fmt.Sprintf("file://%s?create_dir=1", cfg.LocalPath)

	case constants.StorageProviderGCS:
		if cfg.Bucket == "" {
			return nil, errors.New("bucket is required for gcs provider")
		}
		bucketURL = "gs://" + cfg.Bucket

	default:
		return nil, errors.Errorf("unknown storage provider: %s", cfg.Provider)
	}

	bucket, err := blob.OpenBucket(params.Ctx, bucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", bucketURL)
	}

	logger.Info("Document storage initialized",
		slog.String("provider", cfg.Provider),
	)

	storage := NewBlobDocumentStorage(bucket, logger)

	params.Lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			logger.Info("Closing document storage")

			return storage.Close()
		},
	})

	return storage, nil
}

// Module provides the storage FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewDocumentStorage),
)
