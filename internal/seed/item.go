package seed

import (
	"context"
	"errors"
	"fmt"
	"path"
	"path/filepath"

	"io.winapps.shetravels/internal/db"
	"io.winapps.shetravels/internal/logging"
	"io.winapps.shetravels/internal/storage"
)

// ErrImageUnavailable marks items skipped because their image was not uploaded.
var ErrImageUnavailable = errors.New("image unavailable")

// ItemResult is the outcome of seeding one content item.
type ItemResult struct {
	Collection string
	Title      string
	Upload     storage.UploadResult
	DocumentID string
	Err        error
}

// Written reports whether the item's document was created.
func (r ItemResult) Written() bool {
	return r.DocumentID != ""
}

// imageObject is the bucket path of image within the collection's folder.
func imageObject(collection, image string) string {
	return path.Join(imageFolders[collection], filepath.Base(image))
}

// seedItem uploads image, then writes the document built from its public URL.
func (s *Seeder) seedItem(ctx context.Context, collection, title, image string, build func(imageURL string) db.Document) ItemResult {
	result := ItemResult{Collection: collection, Title: title}

	if err := ctx.Err(); err != nil {
		result.Err = err
		s.logItem("warn", "item not seeded, run cancelled", result)
		return result
	}

	err := logging.Recover(s.logger, func() error {
		result.Upload = s.uploader.Upload(ctx, image, imageObject(collection, image))
		if result.Upload.OK() {
			s.logItem("info", "image uploaded", result, "url", result.Upload.URL)
		} else if !s.opts.AllowMissingImages {
			return fmt.Errorf("%w: %w", ErrImageUnavailable, result.Upload.Err)
		}

		id, err := s.writer.Add(ctx, collection, build(result.Upload.URL))
		if err != nil {
			return err
		}
		result.DocumentID = id
		return nil
	}, itemFields(collection, title)...)

	if err != nil {
		result.Err = err
		if errors.Is(err, ErrImageUnavailable) {
			s.logItem("warn", "item skipped", result, "error", err)
		} else {
			s.logError(result, err, "failed to write document")
		}
		return result
	}

	s.logItem("info", "document created", result, "document_id", result.DocumentID)
	return result
}
