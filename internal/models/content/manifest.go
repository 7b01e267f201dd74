package content

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

//go:embed default_manifest.yaml
var defaultManifest []byte

// Manifest is the content seeded into the backend, one list per collection.
type Manifest struct {
	Founder  FounderMessage `yaml:"founder"`
	Gallery  []GalleryItem  `yaml:"gallery"`
	Memories []Memory       `yaml:"memories"`
	Events   []Event        `yaml:"events"`
}

// Default returns the built-in SheTravels demo content.
func Default() (*Manifest, error) {
	return Parse(defaultManifest)
}

// Load reads the manifest at path, or the built-in one when path is empty.
func Load(path string) (*Manifest, error) {
	if path == "" {
		return Default()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}

	m, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("invalid manifest %s: %w", path, err)
	}
	return m, nil
}

// Parse decodes and validates a YAML manifest. Unknown fields are rejected.
func Parse(data []byte) (*Manifest, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var m Manifest
	if err := dec.Decode(&m); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to decode manifest: %w", err)
	}

	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// Validate checks that every item has the fields its document needs.
func (m *Manifest) Validate() error {
	var errs []error

	if m.Founder.Image == "" || m.Founder.Name == "" {
		errs = append(errs, errors.New("founder: image and name are required"))
	}
	for i, item := range m.Gallery {
		if err := requireItem(item.Image, item.Title); err != nil {
			errs = append(errs, fmt.Errorf("gallery[%d]: %w", i, err))
		}
	}
	for i, item := range m.Memories {
		if err := requireItem(item.Image, item.Title); err != nil {
			errs = append(errs, fmt.Errorf("memories[%d]: %w", i, err))
		}
	}
	for i, item := range m.Events {
		if err := requireItem(item.Image, item.Title); err != nil {
			errs = append(errs, fmt.Errorf("events[%d]: %w", i, err))
			continue
		}
		if _, err := time.Parse(EventDateLayout, item.Date); err != nil {
			errs = append(errs, fmt.Errorf("events[%d]: date %q is not YYYY-MM-DD", i, item.Date))
		}
		if item.Price < 0 || item.AvailableSlots < 0 {
			errs = append(errs, fmt.Errorf("events[%d]: price and availableSlots must not be negative", i))
		}
	}

	return errors.Join(errs...)
}

func requireItem(image, title string) error {
	if image == "" || title == "" {
		return errors.New("image and title are required")
	}
	return nil
}
