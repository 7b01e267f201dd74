package seed

import (
	"context"

	"io.winapps.shetravels/internal/db"
	"io.winapps.shetravels/internal/models/content"
)

// isoTimestampLayout matches the ISO-8601 local time strings the app expects
// in founderMessages.createdAt and updatedAt.
const isoTimestampLayout = "2006-01-02T15:04:05.000000"

// SeedFounder uploads the founder portrait and creates the founder message.
func (s *Seeder) SeedFounder(ctx context.Context, founder content.FounderMessage) ItemResult {
	s.logger.Infow("Uploading founder image")

	return s.seedItem(ctx, CollectionFounderMessages, founder.Name, founder.Image, func(imageURL string) db.Document {
		now := s.now().Format(isoTimestampLayout)
		return db.Document{
			"name":      founder.Name,
			"title":     founder.Title,
			"message":   founder.Message,
			"imageUrl":  imageURL,
			"isActive":  founder.IsActive(),
			"createdAt": now,
			"updatedAt": now,
		}
	})
}
