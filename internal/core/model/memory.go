package model

type MemoryType string

const (
	MemoryProfile    MemoryType = "profile"
	MemoryMedia      MemoryType = "media"
	MemoryEventMedia MemoryType = "event_media"
)

// Memory is a display record derived from a student, a gallery item or an
// event's media. Data holds the wrapped value: *Student, MediaItem or EventMedia.
type Memory struct {
	Type        MemoryType `json:"type" yaml:"type"`
	Title       string     `json:"title" yaml:"title"`
	Subtitle    string     `json:"subtitle" yaml:"subtitle"`
	Description string     `json:"description" yaml:"description"`
	Image       string     `json:"image" yaml:"image"`
	Data        any        `json:"data" yaml:"data"`
}
