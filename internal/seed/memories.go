package seed

import (
	"context"

	"io.winapps.shetravels/internal/db"
	"io.winapps.shetravels/internal/models/content"
)

// SeedMemories uploads each memory image and creates its memory document.
func (s *Seeder) SeedMemories(ctx context.Context, memories []content.Memory) []ItemResult {
	s.logger.Infow("Uploading memories", "count", len(memories))

	results := make([]ItemResult, 0, len(memories))
	for _, memory := range memories {
		results = append(results, s.seedItem(ctx, CollectionMemories, memory.Title, memory.Image, func(imageURL string) db.Document {
			return db.Document{
				"title":       memory.Title,
				"description": memory.Description,
				"imageUrl":    imageURL,
				"location":    memory.Location,
				"category":    memory.CategoryOrDefault(),
				"createdAt":   db.ServerTimestamp,
			}
		}))
	}
	return results
}
