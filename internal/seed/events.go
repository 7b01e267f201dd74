package seed

import (
	"context"

	"io.winapps.shetravels/internal/db"
	"io.winapps.shetravels/internal/models/content"
)

// EventCreator is the createdBy tag of seeded events.
const EventCreator = "admin"

// SeedEvents uploads each event cover image and creates its event document
// with an empty subscriber list.
func (s *Seeder) SeedEvents(ctx context.Context, events []content.Event) []ItemResult {
	s.logger.Infow("Creating events", "count", len(events))

	results := make([]ItemResult, 0, len(events))
	for _, event := range events {
		results = append(results, s.seedItem(ctx, CollectionEvents, event.Title, event.Image, func(imageURL string) db.Document {
			return db.Document{
				"title":           event.Title,
				"date":            event.Date,
				"description":     event.Description,
				"imageUrl":        imageURL,
				"location":        event.Location,
				"price":           event.Price,
				"availableSlots":  event.AvailableSlots,
				"subscribedUsers": []interface{}{},
				"createdAt":       db.ServerTimestamp,
				"createdBy":       EventCreator,
			}
		}))
	}
	return results
}
