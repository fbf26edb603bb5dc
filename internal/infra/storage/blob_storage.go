// Package storage stores uploaded files in a gocloud.dev blob bucket.
package storage

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"storefront/config"
	"storefront/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	"gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob" // registers gs:// bucket URLs
	"gocloud.dev/gcerrors"
)

// LocalURLPrefix is the route the local fallback directory is served under.
const LocalURLPrefix = "/uploads"

type blobStorage struct {
	bucket        *blob.Bucket
	publicBaseURL string
}

// Params holds dependencies for BlobStorage, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// New opens the configured bucket, or the local upload directory when no bucket URL is set.
func New(params Params) (service.BlobStorage, error) {
	cfg := params.Config.Storage

	var (
		bucket  *blob.Bucket
		baseURL string
		err     error
	)
	if cfg.BucketURL != "" {
		bucket, err = blob.OpenBucket(params.Ctx, cfg.BucketURL)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to open bucket %s", cfg.BucketURL)
		}
		baseURL = cfg.PublicBaseURL
		params.Logger.Info("Upload storage uses bucket", slog.String("bucket", cfg.BucketURL))
	} else {
		dir, absErr := filepath.Abs(cfg.LocalDir)
		if absErr != nil {
			return nil, errors.Wrap(absErr, "failed to resolve upload directory")
		}
		bucket, err = fileblob.OpenBucket(dir, &fileblob.Options{
			CreateDir: true,
			Metadata:  fileblob.MetadataDontWrite,
		})
		if err != nil {
			return nil, errors.Wrapf(err, "failed to open upload directory %s", dir)
		}
		baseURL = LocalURLPrefix
		params.Logger.Info("Upload storage uses local directory", slog.String("dir", dir))
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return bucket.Close()
		},
	})

	return NewBucketStorage(bucket, baseURL), nil
}

// NewBucketStorage wraps an already opened bucket.
func NewBucketStorage(bucket *blob.Bucket, publicBaseURL string) service.BlobStorage {
	return &blobStorage{
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
	}
}

// Put streams r into the bucket and returns the object's public URL.
func (s *blobStorage) Put(ctx context.Context, key, contentType string, r io.Reader) (string, error) {
	w, err := s.bucket.NewWriter(ctx, key, &blob.WriterOptions{
		ContentType:  contentType,
		CacheControl: "public, max-age=31536000, immutable",
	})
	if err != nil {
		return "", errors.Wrapf(err, "failed to open writer for %s", key)
	}

	if _, err := io.Copy(w, r); err != nil {
		_ = w.Close()

		return "", errors.Wrapf(err, "failed to write %s", key)
	}
	if err := w.Close(); err != nil {
		return "", errors.Wrapf(err, "failed to commit %s", key)
	}

	return s.publicBaseURL + "/" + key, nil
}

func (s *blobStorage) Delete(ctx context.Context, key string) error {
	if err := s.bucket.Delete(ctx, key); err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil
		}

		return errors.Wrapf(err, "failed to delete %s", key)
	}

	return nil
}
