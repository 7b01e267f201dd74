package seed

import (
	"context"
	"time"

	"go.uber.org/zap"

	"io.winapps.shetravels/internal/db"
	"io.winapps.shetravels/internal/models/content"
	"io.winapps.shetravels/internal/storage"
)

// Collections written by the seeder.
const (
	CollectionFounderMessages = "founderMessages"
	CollectionGallery         = "gallery"
	CollectionMemories        = "memories"
	CollectionEvents          = "events"
)

// Storage folders images are uploaded into, keyed by collection.
var imageFolders = map[string]string{
	CollectionFounderMessages: "founder_images",
	CollectionGallery:         "gallery",
	CollectionMemories:        "memories",
	CollectionEvents:          "events",
}

// ImageUploader uploads a local image and reports the outcome.
type ImageUploader interface {
	Upload(ctx context.Context, localPath, object string) storage.UploadResult
}

type Options struct {
	// AllowMissingImages writes documents with an empty imageUrl when the
	// image upload fails instead of skipping them.
	AllowMissingImages bool
}

// Seeder uploads images and writes one document per content item.
type Seeder struct {
	uploader ImageUploader
	writer   db.Writer
	logger   *zap.SugaredLogger
	opts     Options
	now      func() time.Time
}

// NewSeeder creates a new seeder
func NewSeeder(uploader ImageUploader, writer db.Writer, logger *zap.SugaredLogger, opts Options) *Seeder {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Seeder{
		uploader: uploader,
		writer:   writer,
		logger:   logger,
		opts:     opts,
		now:      time.Now,
	}
}

// Run seeds the founder message, gallery, memories and events, in that order.
// Per-item failures are recorded in the report and never stop the run.
// Running it twice writes every document twice.
func (s *Seeder) Run(ctx context.Context, m *content.Manifest) *Report {
	s.logger.Infow("Starting Firebase setup")

	report := &Report{}
	report.Founder = []ItemResult{s.SeedFounder(ctx, m.Founder)}
	report.Gallery = s.SeedGallery(ctx, m.Gallery)
	report.Memories = s.SeedMemories(ctx, m.Memories)
	report.Events = s.SeedEvents(ctx, m.Events)

	return report
}
