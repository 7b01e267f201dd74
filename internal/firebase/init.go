package firebase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"cloud.google.com/go/firestore"
	gcs "cloud.google.com/go/storage"
	firebase "firebase.google.com/go/v4"
	"google.golang.org/api/option"

	"io.winapps.shetravels/internal/config"
)

// ErrMissingCredentials is returned when the service account key file does not exist.
var ErrMissingCredentials = errors.New("service account key not found")

// Backend is the authenticated connection used for the whole run.
type Backend struct {
	App        *firebase.App
	Firestore  *firestore.Client
	Bucket     *gcs.BucketHandle // nil when no storage bucket is configured
	BucketName string
}

// CheckCredentials verifies that the service account key exists at path.
func CheckCredentials(path string) error {
	info, err := os.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("%w at: %s", ErrMissingCredentials, path)
	}
	if err != nil {
		return fmt.Errorf("failed to stat service account key: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("%w at: %s (path is a directory)", ErrMissingCredentials, path)
	}
	return nil
}

// PrintCredentialsGuidance tells the operator how to obtain a service account key.
func PrintCredentialsGuidance(w io.Writer, path string) {
	fmt.Fprintln(w, "This command requires a Firebase Admin SDK service account key.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "To get it:")
	fmt.Fprintln(w, "1. Go to Firebase Console -> Project Settings -> Service Accounts")
	fmt.Fprintln(w, "2. Click 'Generate New Private Key'")
	fmt.Fprintf(w, "3. Save it as '%s'\n", path)
	fmt.Fprintln(w)
}

// InitFirebase initializes the Firebase app from the service account key at
// credentialsPath and opens the Firestore client and storage bucket.
func InitFirebase(ctx context.Context, cfg *config.Firebase, credentialsPath string) (*Backend, error) {
	if err := CheckCredentials(credentialsPath); err != nil {
		return nil, err
	}

	// Initialize with service account file
	opt := option.WithCredentialsFile(credentialsPath)
	appConfig := &firebase.Config{
		ProjectID:     cfg.ProjectID,
		StorageBucket: cfg.StorageBucket,
	}

	app, err := firebase.NewApp(ctx, appConfig, opt)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Firebase app: %w", err)
	}

	firestoreClient, err := app.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get Firestore client: %w", err)
	}

	backend := &Backend{
		App:        app,
		Firestore:  firestoreClient,
		BucketName: cfg.StorageBucket,
	}

	// Without a bucket uploads fail item by item, the same as any other upload error
	if cfg.StorageBucket == "" {
		return backend, nil
	}

	storageClient, err := app.Storage(ctx)
	if err != nil {
		firestoreClient.Close()
		return nil, fmt.Errorf("failed to get Storage client: %w", err)
	}

	bucket, err := storageClient.DefaultBucket()
	if err != nil {
		firestoreClient.Close()
		return nil, fmt.Errorf("failed to get default bucket: %w", err)
	}
	backend.Bucket = bucket

	return backend, nil
}
