package db

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
)

// FirestoreWriter adds documents to Cloud Firestore collections.
type FirestoreWriter struct {
	client *firestore.Client
}

func NewFirestoreWriter(client *firestore.Client) *FirestoreWriter {
	return &FirestoreWriter{client: client}
}

func (w *FirestoreWriter) Add(ctx context.Context, collection string, doc Document) (string, error) {
	data := resolve(doc, firestore.ServerTimestamp)

	ref, _, err := w.client.Collection(collection).Add(ctx, map[string]interface{}(data))
	if err != nil {
		return "", fmt.Errorf("failed to add document to %s: %w", collection, err)
	}
	return ref.ID, nil
}

func (w *FirestoreWriter) Close() error {
	return w.client.Close()
}
