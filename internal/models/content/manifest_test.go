package content

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultManifest(t *testing.T) {
	m, err := Default()
	require.NoError(t, err)

	assert.Equal(t, "Alexa", m.Founder.Name)
	assert.Equal(t, "Founder & CEO", m.Founder.Title)
	assert.Equal(t, "assets/aleksa_portrait.png", m.Founder.Image)
	assert.True(t, m.Founder.IsActive())
	assert.Contains(t, m.Founder.Message, "Welcome to SheTravels!")

	require.Len(t, m.Gallery, 5)
	assert.Equal(t, "Mountain Adventure", m.Gallery[0].Title)
	assert.Equal(t, "Hiking", m.Gallery[4].Category)

	require.Len(t, m.Memories, 5)
	assert.Equal(t, "assets/past2.jpeg", m.Memories[4].Image)
	assert.Equal(t, DefaultMemoryCategory, m.Memories[0].CategoryOrDefault())

	require.Len(t, m.Events, 2)
	assert.Equal(t, "2025-07-15", m.Events[0].Date)
	assert.Equal(t, 350, m.Events[0].Price)
	assert.Equal(t, 12, m.Events[1].AvailableSlots)
}

func TestParseRejectsUnknownFields(t *testing.T) {
	_, err := Parse([]byte(`
founder: {image: a.png, name: A}
gallery:
  - image: g.jpeg
    title: G
    colour: red
`))
	assert.Error(t, err)
}

func TestParseValidation(t *testing.T) {
	_, err := Parse([]byte(`
founder: {image: a.png, name: A}
gallery:
  - title: no image
events:
  - image: e.jpeg
    title: Bad date
    date: 15/07/2025
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "gallery[0]")
	assert.Contains(t, err.Error(), "events[0]")

	_, err = Parse([]byte(``))
	assert.Error(t, err)
}

func TestFounderInactive(t *testing.T) {
	m, err := Parse([]byte(`
founder: {image: a.png, name: A, active: false}
`))
	require.NoError(t, err)
	assert.False(t, m.Founder.IsActive())
	assert.Empty(t, m.Gallery)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "content.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
founder: {image: a.png, name: A}
memories:
  - image: m.jpeg
    title: M
    category: Culture
`), 0o644))

	m, err := Load(path)
	require.NoError(t, err)
	require.Len(t, m.Memories, 1)
	assert.Equal(t, "Culture", m.Memories[0].CategoryOrDefault())

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	m, err = Load("")
	require.NoError(t, err)
	assert.Len(t, m.Events, 2)
}
