package app

import (
	"context"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"io.winapps.shetravels/internal/config"
	"io.winapps.shetravels/internal/db"
	firebaseutil "io.winapps.shetravels/internal/firebase"
	"io.winapps.shetravels/internal/models/content"
	"io.winapps.shetravels/internal/seed"
	"io.winapps.shetravels/internal/storage"
)

// Backend is the storage bucket and document writer a run seeds into.
type Backend struct {
	Bucket storage.Bucket // nil makes every upload fail
	Writer db.Writer

	closers []io.Closer
}

// Close releases the writer and anything else the opener acquired.
func (b *Backend) Close() error {
	errs := []error{b.Writer.Close()}
	for _, c := range b.closers {
		errs = append(errs, c.Close())
	}
	return errors.Join(errs...)
}

// Opener connects to a backend.
type Opener func(ctx context.Context, cfg *config.Firebase, opts *config.Options) (*Backend, error)

// App runs the seed command.
type App struct {
	Stdout       io.Writer
	Logger       *zap.SugaredLogger
	OpenFirebase Opener
	OpenLocal    Opener
}

func New(logger *zap.SugaredLogger, stdout io.Writer) *App {
	return &App{
		Stdout:       stdout,
		Logger:       logger,
		OpenFirebase: OpenFirebase,
		OpenLocal:    OpenLocal,
	}
}

// Run loads the configuration and manifest, connects to the backend and
// seeds it. It returns config.ErrMissingProjectID or
// firebase.ErrMissingCredentials before any network call when those are
// missing. Item failures do not make Run fail.
func (a *App) Run(ctx context.Context, opts *config.Options) (*seed.Report, error) {
	cfg, err := config.LoadFirebase(opts.EnvFile)
	if err != nil {
		return nil, err
	}

	fmt.Fprintf(a.Stdout, "Project: %s\n", cfg.ProjectID)
	fmt.Fprintf(a.Stdout, "Storage: %s\n\n", cfg.StorageBucket)

	manifest, err := content.Load(opts.ManifestPath)
	if err != nil {
		return nil, err
	}

	open := a.OpenLocal
	if opts.Backend == config.BackendFirebase {
		if err := firebaseutil.CheckCredentials(opts.CredentialsPath); err != nil {
			if errors.Is(err, firebaseutil.ErrMissingCredentials) {
				firebaseutil.PrintCredentialsGuidance(a.Stdout, opts.CredentialsPath)
			}
			return nil, err
		}
		open = a.OpenFirebase
	}

	backend, err := open(ctx, cfg, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize %s backend: %w", opts.Backend, err)
	}
	defer func() {
		if err := backend.Close(); err != nil {
			a.Logger.Warnw("failed to close backend", "error", err)
		}
	}()
	a.Logger.Infow("Backend initialized", "backend", opts.Backend, "project_id", cfg.ProjectID)

	uploader := storage.NewUploader(backend.Bucket, opts.AssetsRoot, a.Logger)
	seeder := seed.NewSeeder(uploader, backend.Writer, a.Logger, seed.Options{
		AllowMissingImages: opts.AllowMissingImages,
	})

	report := seeder.Run(ctx, manifest)

	seed.PrintSummary(a.Stdout, report)
	seed.LogOutcome(a.Logger, report)

	if local, ok := backend.Writer.(*db.DocstoreWriter); ok {
		a.logLocalCollections(ctx, local)
	}

	return report, nil
}

func (a *App) logLocalCollections(ctx context.Context, w *db.DocstoreWriter) {
	for _, name := range w.Collections() {
		docs, err := w.Documents(ctx, name)
		if err != nil {
			a.Logger.Warnw("failed to read local collection", "collection", name, "error", err)
			continue
		}
		a.Logger.Infow("local collection", "collection", name, "documents", len(docs))
	}
}
