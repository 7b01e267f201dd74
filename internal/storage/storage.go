package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/gabriel-vasile/mimetype"
	"go.uber.org/zap"
)

var (
	// ErrSourceMissing is returned when the local image file does not exist.
	ErrSourceMissing = errors.New("image file not found")
	// ErrNoBucket is returned when no storage bucket is configured.
	ErrNoBucket = errors.New("storage bucket is not configured")
)

// Bucket is an object store that can serve public objects.
type Bucket interface {
	// Write stores data at object, replacing any existing content.
	Write(ctx context.Context, object string, data []byte, contentType string) error

	// MakePublic grants anonymous read access to object.
	MakePublic(ctx context.Context, object string) error

	// PublicURL returns the URL object is served from once public.
	PublicURL(object string) string
}

// UploadResult is the outcome of a single image upload. Exactly one of URL
// and Err is set.
type UploadResult struct {
	LocalPath string
	Object    string
	URL       string
	Size      int64
	Err       error
}

// OK reports whether the upload succeeded and URL can be used.
func (r UploadResult) OK() bool {
	return r.Err == nil && r.URL != ""
}

// Uploader copies local images into a Bucket.
type Uploader struct {
	bucket Bucket
	root   string
	logger *zap.SugaredLogger
}

// NewUploader returns an uploader resolving relative paths against root.
// A nil bucket makes every upload fail with ErrNoBucket.
func NewUploader(bucket Bucket, root string, logger *zap.SugaredLogger) *Uploader {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Uploader{
		bucket: bucket,
		root:   root,
		logger: logger,
	}
}

// Upload uploads the file at localPath to object, makes it public and returns
// its public URL. Failures are reported in the result, never returned.
func (u *Uploader) Upload(ctx context.Context, localPath, object string) UploadResult {
	result := UploadResult{LocalPath: localPath, Object: object}

	path := localPath
	if !filepath.IsAbs(path) {
		path = filepath.Join(u.root, path)
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		u.logger.Warnw("File not found", "path", path)
		result.Err = fmt.Errorf("%w: %s", ErrSourceMissing, path)
		return result
	}
	if err != nil {
		return u.fail(result, fmt.Errorf("failed to read image: %w", err))
	}

	if u.bucket == nil {
		return u.fail(result, ErrNoBucket)
	}

	contentType := mimetype.Detect(data).String()
	if err := u.bucket.Write(ctx, object, data, contentType); err != nil {
		return u.fail(result, fmt.Errorf("failed to write object: %w", err))
	}

	if err := u.bucket.MakePublic(ctx, object); err != nil {
		return u.fail(result, fmt.Errorf("failed to make object public: %w", err))
	}

	result.Size = int64(len(data))
	result.URL = u.bucket.PublicURL(object)

	u.logger.Debugw("image uploaded",
		"path", path,
		"object", object,
		"content_type", contentType,
		"size", humanize.Bytes(uint64(result.Size)),
		"url", result.URL,
	)

	return result
}

func (u *Uploader) fail(result UploadResult, err error) UploadResult {
	u.logger.Errorw("Error uploading image", "path", result.LocalPath, "object", result.Object, "error", err)
	result.Err = err
	return result
}
