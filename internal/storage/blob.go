package storage

import (
	"context"
	"fmt"

	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/memblob"
)

// BlobBucket writes objects to any gocloud.dev/blob bucket. It backs the
// local backend, where objects land in memory or in a directory.
type BlobBucket struct {
	bucket  *blob.Bucket
	baseURL string
}

// OpenBlobBucket opens the bucket at uri (e.g. mem:// or file:///tmp/seed).
// Public URLs are formed by joining baseURL and the object name.
func OpenBlobBucket(ctx context.Context, uri, baseURL string) (*BlobBucket, error) {
	bucket, err := blob.OpenBucket(ctx, uri)
	if err != nil {
		return nil, fmt.Errorf("failed to open bucket %s: %w", uri, err)
	}
	return NewBlobBucket(bucket, baseURL), nil
}

func NewBlobBucket(bucket *blob.Bucket, baseURL string) *BlobBucket {
	return &BlobBucket{bucket: bucket, baseURL: baseURL}
}

func (b *BlobBucket) Write(ctx context.Context, object string, data []byte, contentType string) error {
	return b.bucket.WriteAll(ctx, object, data, &blob.WriterOptions{ContentType: contentType})
}

// MakePublic is a no-op: local buckets have no access control.
func (b *BlobBucket) MakePublic(ctx context.Context, object string) error {
	return nil
}

func (b *BlobBucket) PublicURL(object string) string {
	return PublicObjectURL(b.baseURL, object)
}

func (b *BlobBucket) Close() error {
	return b.bucket.Close()
}
