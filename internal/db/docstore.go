package db

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/google/uuid"
	"gocloud.dev/docstore"
	"gocloud.dev/docstore/memdocstore"
)

// KeyField holds the generated id of documents written by DocstoreWriter.
const KeyField = "id"

// DocstoreWriter adds documents to in-memory gocloud.dev/docstore
// collections, opened on first use. It backs the local backend.
type DocstoreWriter struct {
	collections map[string]*docstore.Collection
}

func NewDocstoreWriter() *DocstoreWriter {
	return &DocstoreWriter{collections: make(map[string]*docstore.Collection)}
}

func (w *DocstoreWriter) collection(name string) (*docstore.Collection, error) {
	if coll, ok := w.collections[name]; ok {
		return coll, nil
	}
	coll, err := memdocstore.OpenCollection(KeyField, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open collection %s: %w", name, err)
	}
	w.collections[name] = coll
	return coll, nil
}

func (w *DocstoreWriter) Add(ctx context.Context, collection string, doc Document) (string, error) {
	coll, err := w.collection(collection)
	if err != nil {
		return "", err
	}

	data := resolve(doc, now())
	id := uuid.New().String()
	data[KeyField] = id

	if err := coll.Create(ctx, map[string]interface{}(data)); err != nil {
		return "", fmt.Errorf("failed to add document to %s: %w", collection, err)
	}
	return id, nil
}

// Collections returns the names of collections written so far, sorted.
func (w *DocstoreWriter) Collections() []string {
	names := make([]string, 0, len(w.collections))
	for name := range w.collections {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Documents returns every document in collection.
func (w *DocstoreWriter) Documents(ctx context.Context, collection string) ([]Document, error) {
	coll, ok := w.collections[collection]
	if !ok {
		return nil, nil
	}

	iter := coll.Query().Get(ctx)
	defer iter.Stop()

	var docs []Document
	for {
		doc := map[string]interface{}{}
		err := iter.Next(ctx, doc)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", collection, err)
		}
		docs = append(docs, Document(doc))
	}
	return docs, nil
}

func (w *DocstoreWriter) Close() error {
	var errs []error
	for _, coll := range w.collections {
		if err := coll.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
