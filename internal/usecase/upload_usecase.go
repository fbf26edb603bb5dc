package usecase

import (
	"context"
	"io"

	"github.com/google/uuid"
)

// UploadUsecase stores user-supplied images.
type UploadUsecase interface {
	Upload(ctx context.Context, userID uuid.UUID, input *UploadInput) (*UploadOutput, error)
}

// UploadInput is one multipart file.
type UploadInput struct {
	Folder      string
	FileName    string
	ContentType string
	Size        int64
	Body        io.Reader
}

// UploadOutput is where the stored file can be fetched.
type UploadOutput struct {
	URL string `json:"url"`
	Key string `json:"key"`
}
