package storage

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

func TestBlobStorage_PutAndDelete(t *testing.T) {
	ctx := context.Background()
	bucket := memblob.OpenBucket(nil)
	defer bucket.Close()

	store := NewBucketStorage(bucket, "https://cdn.example.com/")

	url, err := store.Put(ctx, "products/1700000000000-shirt.png", "image/png", strings.NewReader("png-bytes"))
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/products/1700000000000-shirt.png", url)

	data, err := bucket.ReadAll(ctx, "products/1700000000000-shirt.png")
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(data))

	attrs, err := bucket.Attributes(ctx, "products/1700000000000-shirt.png")
	require.NoError(t, err)
	assert.Equal(t, "image/png", attrs.ContentType)

	require.NoError(t, store.Delete(ctx, "products/1700000000000-shirt.png"))
	exists, err := bucket.Exists(ctx, "products/1700000000000-shirt.png")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestBlobStorage_DeleteMissing(t *testing.T) {
	bucket := memblob.OpenBucket(nil)
	defer bucket.Close()

	store := NewBucketStorage(bucket, LocalURLPrefix)
	assert.NoError(t, store.Delete(context.Background(), "missing/key.png"))
}

func TestBlobStorage_LocalPrefix(t *testing.T) {
	bucket := memblob.OpenBucket(nil)
	defer bucket.Close()

	store := NewBucketStorage(bucket, LocalURLPrefix)
	url, err := store.Put(context.Background(), "avatars/1-me.jpg", "image/jpeg", strings.NewReader("x"))
	require.NoError(t, err)
	assert.Equal(t, "/uploads/avatars/1-me.jpg", url)
}
