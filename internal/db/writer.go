package db

import (
	"context"
	"time"
)

// Document is a flat mapping of field names to values written as one record.
type Document map[string]interface{}

type serverTimestamp struct{}

// ServerTimestamp marks a field the backend fills with its commit time.
var ServerTimestamp = serverTimestamp{}

// Writer adds documents to named collections.
type Writer interface {
	// Add creates a new document with a backend-assigned id and returns the id.
	// Adding the same fields twice creates two documents.
	Add(ctx context.Context, collection string, doc Document) (string, error)

	Close() error
}

// resolve returns a copy of doc with every ServerTimestamp replaced by ts.
func resolve(doc Document, ts interface{}) Document {
	out := make(Document, len(doc))
	for k, v := range doc {
		if _, ok := v.(serverTimestamp); ok {
			out[k] = ts
			continue
		}
		out[k] = v
	}
	return out
}

// now is replaced in tests.
var now = func() time.Time {
	return time.Now().UTC()
}
