package storage

import (
	"context"
	"net/url"

	gcs "cloud.google.com/go/storage"
)

// PublicURLBase is the host public Cloud Storage objects are served from.
const PublicURLBase = "https://storage.googleapis.com"

// GCSBucket writes objects to a Cloud Storage bucket, such as the default
// bucket of a Firebase project.
type GCSBucket struct {
	handle *gcs.BucketHandle
	name   string
}

// NewGCSBucket wraps handle. name is the bucket name used in public URLs.
func NewGCSBucket(handle *gcs.BucketHandle, name string) *GCSBucket {
	return &GCSBucket{handle: handle, name: name}
}

func (b *GCSBucket) Write(ctx context.Context, object string, data []byte, contentType string) error {
	w := b.handle.Object(object).NewWriter(ctx)
	w.ContentType = contentType

	if _, err := w.Write(data); err != nil {
		w.Close()
		return err
	}
	return w.Close()
}

// MakePublic adds an allUsers READER ACL entry to the object.
func (b *GCSBucket) MakePublic(ctx context.Context, object string) error {
	return b.handle.Object(object).ACL().Set(ctx, gcs.AllUsers, gcs.RoleReader)
}

func (b *GCSBucket) PublicURL(object string) string {
	return PublicObjectURL(PublicURLBase+"/"+b.name, object)
}

// PublicObjectURL joins base and an object name, escaping the object's path segments.
func PublicObjectURL(base, object string) string {
	u, err := url.Parse(base)
	if err != nil {
		return base + "/" + object
	}
	return u.JoinPath(object).String()
}
