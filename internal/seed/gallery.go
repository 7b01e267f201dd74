package seed

import (
	"context"

	"io.winapps.shetravels/internal/db"
	"io.winapps.shetravels/internal/models/content"
)

// SeedGallery uploads each gallery image and creates its gallery document.
func (s *Seeder) SeedGallery(ctx context.Context, items []content.GalleryItem) []ItemResult {
	s.logger.Infow("Uploading gallery images", "count", len(items))

	results := make([]ItemResult, 0, len(items))
	for _, item := range items {
		results = append(results, s.seedItem(ctx, CollectionGallery, item.Title, item.Image, func(imageURL string) db.Document {
			return db.Document{
				"title":       item.Title,
				"description": item.Description,
				"imageUrl":    imageURL,
				"category":    item.Category,
				"createdAt":   db.ServerTimestamp,
			}
		}))
	}
	return results
}
