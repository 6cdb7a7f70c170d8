package model

import "sort"

// Timeline maps an event year to the events of that year in dataset order.
type Timeline map[string][]Event

// Years returns the timeline keys in ascending lexical order.
func (t Timeline) Years() []string {
	years := make([]string, 0, len(t))
	for year := range t {
		years = append(years, year)
	}
	sort.Strings(years)
	return years
}

// Len is the number of events across all years.
func (t Timeline) Len() int {
	n := 0
	for _, events := range t {
		n += len(events)
	}
	return n
}
