package impl

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	mockService "storefront/internal/mocks/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestUploadService(t *testing.T) (*uploadService, *mockService.MockBlobStorage) {
	storage := mockService.NewMockBlobStorage(t)
	srv := NewUploadService(UploadServiceParams{
		Storage: storage,
		Config:  newTestConfig(),
		Logger:  newDiscardLogger(),
	}).(*uploadService)
	srv.now = func() time.Time { return time.UnixMilli(1700000000123) }

	return srv, storage
}

func TestUploadService_Upload_RejectsNonImage(t *testing.T) {
	srv, _ := createTestUploadService(t)

	_, err := srv.Upload(context.Background(), uuid.New(), &usecase.UploadInput{
		FileName:    "notes.txt",
		ContentType: "text/plain",
		Size:        5,
		Body:        strings.NewReader("hello"),
	})

	requireErrorCode(t, err, "INVALID_FILE_TYPE")
}

func TestUploadService_Upload_RejectsDeclaredOversize(t *testing.T) {
	srv, _ := createTestUploadService(t)

	_, err := srv.Upload(context.Background(), uuid.New(), &usecase.UploadInput{
		FileName:    "huge.png",
		ContentType: "image/png",
		Size:        6 << 20,
		Body:        bytes.NewReader(make([]byte, 16)),
	})

	requireErrorCode(t, err, "FILE_TOO_LARGE")
}

func TestUploadService_Upload_RejectsActualOversize(t *testing.T) {
	srv, storage := createTestUploadService(t)
	ctx := context.Background()

	storage.EXPECT().Put(ctx, mock.Anything, "image/png", mock.Anything).
		RunAndReturn(func(_ context.Context, key, _ string, r io.Reader) (string, error) {
			_, err := io.Copy(io.Discard, r)

			return "/uploads/" + key, err
		})
	storage.EXPECT().Delete(ctx, "products/1700000000123-liar.png").Return(nil)

	_, err := srv.Upload(ctx, uuid.New(), &usecase.UploadInput{
		FileName:    "liar.png",
		ContentType: "image/png",
		Size:        10,
		Body:        bytes.NewReader(make([]byte, 6<<20)),
	})

	requireErrorCode(t, err, "FILE_TOO_LARGE")
}

func TestUploadService_Upload_StoresImage(t *testing.T) {
	srv, storage := createTestUploadService(t)
	ctx := context.Background()
	payload := []byte("\x89PNG\r\n\x1a\nrest")

	var stored []byte
	storage.EXPECT().Put(ctx, "avatars/1700000000123-My-Photo.png", "image/png", mock.Anything).
		RunAndReturn(func(_ context.Context, key, _ string, r io.Reader) (string, error) {
			data, err := io.ReadAll(r)
			stored = data

			return "/uploads/" + key, err
		})

	out, err := srv.Upload(ctx, uuid.New(), &usecase.UploadInput{
		Folder:      "avatars",
		FileName:    "My Photo.png",
		ContentType: "image/png",
		Size:        int64(len(payload)),
		Body:        bytes.NewReader(payload),
	})

	require.NoError(t, err)
	assert.Equal(t, "/uploads/avatars/1700000000123-My-Photo.png", out.URL)
	assert.Equal(t, "avatars/1700000000123-My-Photo.png", out.Key)
	assert.Equal(t, payload, stored)
}

func TestUploadService_Upload_NoFile(t *testing.T) {
	srv, _ := createTestUploadService(t)

	_, err := srv.Upload(context.Background(), uuid.New(), &usecase.UploadInput{ContentType: "image/png"})

	requireErrorCode(t, err, "NO_FILE")
}
