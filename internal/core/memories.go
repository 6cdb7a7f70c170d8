package core

import (
	"context"
	"fmt"
	"unicode"
	"unicode/utf8"

	"github.com/agenthands/classmem/internal/core/model"
)

const (
	recentProfileCount = 3
	recentMemoryLimit  = 8
)

// RecentMemories mixes the first few student profiles, the recent gallery
// and the first media item of every event that has one, then shuffles the
// pool and keeps at most eight entries.
//
// The result is not deterministic: order, and which entries survive when the
// pool is larger than the limit, change from call to call.
func (s *Store) RecentMemories(ctx context.Context) []model.Memory {
	ds := s.Load(ctx)
	memories := make([]model.Memory, 0, recentProfileCount+len(ds.Gallery.Recent)+len(ds.Events))

	for i := range ds.Students[:min(recentProfileCount, len(ds.Students))] {
		student := &ds.Students[i]
		memories = append(memories, model.Memory{
			Type:        model.MemoryProfile,
			Title:       student.Name,
			Subtitle:    fmt.Sprintf("Class of %s", student.ClassYear),
			Description: student.Bio,
			Image:       student.Avatar,
			Data:        student,
		})
	}

	for _, item := range ds.Gallery.Recent {
		memories = append(memories, model.Memory{
			Type:        model.MemoryMedia,
			Title:       item.Title,
			Subtitle:    capitalize(item.Type),
			Description: item.Description,
			Image:       item.Image(),
			Data:        item,
		})
	}

	for i := range ds.Events {
		event := &ds.Events[i]
		if len(event.Media) == 0 {
			continue
		}
		item := event.Media[0]
		memories = append(memories, model.Memory{
			Type:        model.MemoryEventMedia,
			Title:       item.Title,
			Subtitle:    event.Title,
			Description: item.Description,
			Image:       item.Image(),
			Data:        model.EventMedia{MediaItem: item, Event: event},
		})
	}

	s.shuffle(len(memories), func(i, j int) {
		memories[i], memories[j] = memories[j], memories[i]
	})

	if len(memories) > recentMemoryLimit {
		memories = memories[:recentMemoryLimit]
	}
	return memories
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
