package model

import "strings"

// Media types with dedicated rendering. Any other value is rendered generically.
const (
	MediaImage = "image"
	MediaVideo = "video"
	MediaBlog  = "blog"
)

type Event struct {
	ID          int         `json:"id" yaml:"id"`
	Title       string      `json:"title" yaml:"title"`
	Date        string      `json:"date" yaml:"date"`
	Year        string      `json:"year" yaml:"year"` // authored independently of Date
	Description string      `json:"description" yaml:"description"`
	Media       []MediaItem `json:"media" yaml:"media"`
}

// MediaItem ids are unique within their parent event or gallery bucket only.
type MediaItem struct {
	ID          int    `json:"id" yaml:"id"`
	Type        string `json:"type" yaml:"type"`
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
	URL         string `json:"url,omitempty" yaml:"url,omitempty"`
	Thumbnail   string `json:"thumbnail,omitempty" yaml:"thumbnail,omitempty"`
	Placeholder string `json:"placeholder,omitempty" yaml:"placeholder,omitempty"`
}

// Image returns the thumbnail when present, else the url.
func (m MediaItem) Image() string {
	if m.Thumbnail != "" {
		return m.Thumbnail
	}
	return m.URL
}

var videoMarkers = []string{".mp4", ".webm", ".ogg", "sample-videos.com"}

// IsVideo reports whether the item should be played rather than shown.
func (m MediaItem) IsVideo() bool {
	if m.Type == MediaVideo {
		return true
	}
	for _, marker := range videoMarkers {
		if strings.Contains(m.URL, marker) {
			return true
		}
	}
	return false
}

type Gallery struct {
	Recent   []MediaItem `json:"recent" yaml:"recent"`
	Featured []MediaItem `json:"featured" yaml:"featured"`
}

// EventMedia is a media item flattened together with the event that owns it.
type EventMedia struct {
	MediaItem `yaml:",inline"`
	Event     *Event `json:"event" yaml:"event"`
}
