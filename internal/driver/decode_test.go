package driver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleJSON = `{
	"students": [{"id": 1, "name": "Emily Johnson", "classYear": "2024", "bio": "Debate captain",
		"social": {"facebook": "https://facebook.com/emily"}, "avatar": "EJ"}],
	"events": [
		{"id": 1, "title": "Sports Day", "date": "2024-05-15", "year": "2024", "description": "Games",
			"media": [{"id": 1, "type": "image", "title": "Track", "description": "100m dash", "placeholder": "Photo"}]},
		{"id": 2, "title": "Prom", "date": "2023-04-22", "year": "2023", "description": "Dance"}
	],
	"gallery": {"recent": [{"id": 9, "type": "video", "title": "Clip", "description": "Lip sync",
		"url": "https://cdn.example/clip.mp4", "thumbnail": "https://cdn.example/clip.jpg"}]}
}`

const sampleYAML = `
students:
  - id: 1
    name: Emily Johnson
    classYear: "2024"
    bio: Debate captain
    avatar: EJ
events:
  - id: 1
    title: Sports Day
    date: "2024-05-15"
    year: "2024"
    description: Games
    media:
      - id: 1
        type: image
        title: Track
        description: 100m dash
`

func TestDecode_JSON(t *testing.T) {
	ds, err := Decode([]byte(sampleJSON), FormatJSON)
	require.NoError(t, err)

	require.Len(t, ds.Students, 1)
	assert.Equal(t, "2024", ds.Students[0].ClassYear)
	assert.Equal(t, "https://facebook.com/emily", ds.Students[0].Social["facebook"])

	require.Len(t, ds.Events, 2)
	assert.Equal(t, "Photo", ds.Events[0].Media[0].Placeholder)
	// absent media becomes an empty list
	assert.NotNil(t, ds.Events[1].Media)
	assert.Empty(t, ds.Events[1].Media)

	require.NotNil(t, ds.Gallery)
	assert.Len(t, ds.Gallery.Recent, 1)
	assert.NotNil(t, ds.Gallery.Featured)
}

func TestDecode_YAML(t *testing.T) {
	ds, err := Decode([]byte(sampleYAML), FormatYAML)
	require.NoError(t, err)

	require.Len(t, ds.Students, 1)
	assert.Equal(t, "Emily Johnson", ds.Students[0].Name)
	require.Len(t, ds.Events, 1)
	assert.Equal(t, "Track", ds.Events[0].Media[0].Title)
	assert.Empty(t, ds.Gallery.Recent)
}

func TestDecode_Malformed(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		format Format
	}{
		{"empty", "", FormatJSON},
		{"null", "null", FormatJSON},
		{"truncated", `{"students": [`, FormatJSON},
		{"wrong type", `{"students": [{"id": "one"}]}`, FormatJSON},
		{"array", `[1, 2]`, FormatJSON},
		{"bad yaml", "students: [\n  - id: x: y", FormatYAML},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode([]byte(tt.raw), tt.format)
			assert.ErrorIs(t, err, ErrMalformedDataset)
		})
	}
}

func TestDecode_UnsupportedFormat(t *testing.T) {
	_, err := Decode([]byte(sampleJSON), Format("xml"))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestFormatFromPath(t *testing.T) {
	assert.Equal(t, FormatYAML, FormatFromPath("data/classmem.yaml"))
	assert.Equal(t, FormatYAML, FormatFromPath("CLASSMEM.YML"))
	assert.Equal(t, FormatJSON, FormatFromPath("mock-api.json"))
	assert.Equal(t, FormatJSON, FormatFromPath("dataset"))
}
