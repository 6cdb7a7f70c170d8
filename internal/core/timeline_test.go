package core

import (
	"context"
	"testing"

	"github.com/agenthands/classmem/internal/core/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeline_GroupsByYear(t *testing.T) {
	s := New(&MockSource{Dataset: testDataset()})

	timeline := s.Timeline(context.Background())
	assert.Equal(t, []string{"2023", "2024"}, timeline.Years())
	assert.Equal(t, len(testDataset().Events), timeline.Len())

	require.Len(t, timeline["2024"], 2)
	assert.Equal(t, 1, timeline["2024"][0].ID)
	assert.Equal(t, 3, timeline["2024"][1].ID)

	for year, events := range timeline {
		for _, ev := range events {
			assert.Equal(t, year, ev.Year)
		}
	}
}

func TestTimeline_TrustsYearOverDate(t *testing.T) {
	ds := &model.Dataset{Events: []model.Event{
		{ID: 1, Date: "2024-01-05", Year: "2023"},
		{ID: 2, Date: "2024-02-01"},
	}}
	timeline := New(&MockSource{Dataset: ds}).Timeline(context.Background())

	assert.Len(t, timeline["2023"], 1)
	assert.Len(t, timeline[""], 1)
	assert.NotContains(t, timeline, "2024")
}

func TestConcreteScenario(t *testing.T) {
	ds := &model.Dataset{
		Students: []model.Student{{ID: 1, Name: "Emily Johnson", ClassYear: "2024"}},
		Events: []model.Event{
			{ID: 1, Year: "2024", Media: []model.MediaItem{{ID: 1, Type: "image", Title: "Track"}}},
			{ID: 2, Year: "2023"},
		},
	}
	s := New(&MockSource{Dataset: ds})
	ctx := context.Background()

	timeline := s.Timeline(ctx)
	require.Len(t, timeline, 2)
	assert.Equal(t, 1, timeline["2024"][0].ID)
	assert.Equal(t, 2, timeline["2023"][0].ID)

	memories := s.RecentMemories(ctx)
	require.Len(t, memories, 2)
	types := map[model.MemoryType]int{}
	for _, m := range memories {
		types[m.Type]++
	}
	assert.Equal(t, map[model.MemoryType]int{model.MemoryProfile: 1, model.MemoryEventMedia: 1}, types)
}
