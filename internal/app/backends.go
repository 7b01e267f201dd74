package app

import (
	"context"
	"io"

	"io.winapps.shetravels/internal/config"
	"io.winapps.shetravels/internal/db"
	firebaseutil "io.winapps.shetravels/internal/firebase"
	"io.winapps.shetravels/internal/storage"
)

// OpenFirebase authenticates with the service account key and returns the
// project's Firestore and default storage bucket.
func OpenFirebase(ctx context.Context, cfg *config.Firebase, opts *config.Options) (*Backend, error) {
	fb, err := firebaseutil.InitFirebase(ctx, cfg, opts.CredentialsPath)
	if err != nil {
		return nil, err
	}

	backend := &Backend{Writer: db.NewFirestoreWriter(fb.Firestore)}
	if fb.Bucket != nil {
		backend.Bucket = storage.NewGCSBucket(fb.Bucket, fb.BucketName)
	}
	return backend, nil
}

// OpenLocal returns a gocloud.dev blob bucket and in-memory document
// collections. Nothing leaves the machine.
func OpenLocal(ctx context.Context, cfg *config.Firebase, opts *config.Options) (*Backend, error) {
	baseURL := opts.LocalPublicBaseURL
	if baseURL == "" {
		bucketName := cfg.StorageBucket
		if bucketName == "" {
			bucketName = cfg.ProjectID + ".appspot.com"
		}
		baseURL = storage.PublicURLBase + "/" + bucketName
	}

	bucket, err := storage.OpenBlobBucket(ctx, opts.LocalBlobURI, baseURL)
	if err != nil {
		return nil, err
	}

	return &Backend{
		Bucket:  bucket,
		Writer:  db.NewDocstoreWriter(),
		closers: []io.Closer{bucket},
	}, nil
}
