package model

// Dataset is the full snapshot served by a data source. It is never mutated after load.
type Dataset struct {
	Students []Student `json:"students" yaml:"students"`
	Events   []Event   `json:"events" yaml:"events"`
	Gallery  *Gallery  `json:"gallery" yaml:"gallery"`
}

// EmptyDataset is the fallback used when a data source fails.
func EmptyDataset() *Dataset {
	d := &Dataset{}
	d.Normalize()
	return d
}

// Normalize replaces absent collections with empty ones so that a missing key
// behaves exactly like an empty list.
func (d *Dataset) Normalize() {
	if d.Students == nil {
		d.Students = []Student{}
	}
	if d.Events == nil {
		d.Events = []Event{}
	}
	if d.Gallery == nil {
		d.Gallery = &Gallery{}
	}
	if d.Gallery.Recent == nil {
		d.Gallery.Recent = []MediaItem{}
	}
	if d.Gallery.Featured == nil {
		d.Gallery.Featured = []MediaItem{}
	}
	for i := range d.Events {
		if d.Events[i].Media == nil {
			d.Events[i].Media = []MediaItem{}
		}
	}
}
