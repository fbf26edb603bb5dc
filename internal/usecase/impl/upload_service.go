package impl

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"strings"
	"time"

	"storefront/config"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"
	"storefront/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// uploadService implements the UploadUsecase interface.
type uploadService struct {
	storage service.BlobStorage
	maxSize int64
	now     func() time.Time
	logger  *slog.Logger
}

// UploadServiceParams holds dependencies for UploadService, injected by Fx.
type UploadServiceParams struct {
	fx.In

	Storage service.BlobStorage
	Config  *config.Config
	Logger  *slog.Logger
}

// NewUploadService is the constructor for uploadService.
func NewUploadService(params UploadServiceParams) usecase.UploadUsecase {
	maxSize := int64(5 << 20)
	if params.Config != nil && params.Config.Storage != nil && params.Config.Storage.MaxUploadSize > 0 {
		maxSize = params.Config.Storage.MaxUploadSize
	}

	return &uploadService{
		storage: params.Storage,
		maxSize: maxSize,
		now:     time.Now,
		logger:  params.Logger,
	}
}

// isImage accepts any image/* media type, ignoring parameters.
func isImage(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}

	return strings.HasPrefix(mediaType, "image/")
}

// Upload stores an image under {folder}/{unixMillis}-{sanitizedName}.
func (srv *uploadService) Upload(ctx context.Context, userID uuid.UUID, input *usecase.UploadInput) (*usecase.UploadOutput, error) {
	if input == nil || input.Body == nil {
		return nil, errors.Wrap(domainerrors.ErrNoFile, "no file in request")
	}
	if !isImage(input.ContentType) {
		return nil, domainerrors.ErrInvalidFileType.WithDetails(fmt.Sprintf("got %q, want image/*", input.ContentType))
	}
	if input.Size > srv.maxSize {
		return nil, domainerrors.ErrFileTooLarge.WithDetails("maximum size is " + util.FormatBytes(srv.maxSize))
	}

	key := fmt.Sprintf("%s/%d-%s",
		util.SanitizeFolder(input.Folder),
		srv.now().UnixMilli(),
		util.SanitizeFileName(input.FileName),
	)

	// The declared size can lie; never read past the limit.
	body := io.LimitReader(input.Body, srv.maxSize+1)
	counter := &countingReader{r: body}

	url, err := srv.storage.Put(ctx, key, input.ContentType, counter)
	if err != nil {
		requestLogger(ctx, srv.logger).Error("Upload failed", slog.String("key", key), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrUploadFailed, err.Error())
	}
	if counter.n > srv.maxSize {
		if delErr := srv.storage.Delete(ctx, key); delErr != nil {
			requestLogger(ctx, srv.logger).Warn("Failed to remove oversized upload", slog.String("key", key), slog.Any("error", delErr))
		}

		return nil, domainerrors.ErrFileTooLarge.WithDetails("maximum size is " + util.FormatBytes(srv.maxSize))
	}

	requestLogger(ctx, srv.logger).Info("File uploaded", slog.String("key", key), slog.Any("userID", userID), slog.Int64("bytes", counter.n))

	return &usecase.UploadOutput{URL: url, Key: key}, nil
}

type countingReader struct {
	r io.Reader
	n int64
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n += int64(n)

	return n, err
}
