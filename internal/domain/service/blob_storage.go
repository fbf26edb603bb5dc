package service

import (
	"context"
	"io"
)

// BlobStorage stores uploaded files and resolves their public URLs.
type BlobStorage interface {
	// Put writes r under key with the given content type and returns the public URL.
	Put(ctx context.Context, key, contentType string, r io.Reader) (string, error)

	// Delete removes the object at key. Missing objects are not an error.
	Delete(ctx context.Context, key string) error
}
