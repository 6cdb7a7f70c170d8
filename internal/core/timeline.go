package core

import (
	"context"

	"github.com/agenthands/classmem/internal/core/model"
)

// Timeline groups events by their Year field. The year is taken as authored,
// not derived from Date.
func (s *Store) Timeline(ctx context.Context) model.Timeline {
	timeline := model.Timeline{}
	for _, event := range s.Events(ctx) {
		timeline[event.Year] = append(timeline[event.Year], event)
	}
	return timeline
}
