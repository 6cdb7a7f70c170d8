package core

import (
	"context"
	"fmt"
	"testing"

	"github.com/agenthands/classmem/internal/core/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecentMemories_BuildOrder(t *testing.T) {
	s := New(&MockSource{Dataset: testDataset()}, WithShuffle(identityShuffle))

	memories := s.RecentMemories(context.Background())
	require.Len(t, memories, 7)

	// three profiles out of four students
	for i, name := range []string{"Emily Johnson", "Marcus Chen", "Sophia Rodriguez"} {
		m := memories[i]
		assert.Equal(t, model.MemoryProfile, m.Type)
		assert.Equal(t, name, m.Title)
		assert.Equal(t, "Class of 2024", m.Subtitle)
		student, ok := m.Data.(*model.Student)
		require.True(t, ok)
		assert.Equal(t, student.Avatar, m.Image)
		assert.Equal(t, student.Bio, m.Description)
	}

	sunrise := memories[3]
	assert.Equal(t, model.MemoryMedia, sunrise.Type)
	assert.Equal(t, "Image", sunrise.Subtitle)
	assert.Equal(t, "https://cdn/sunrise-thumb.jpg", sunrise.Image)

	lipSync := memories[4]
	assert.Equal(t, "Video", lipSync.Subtitle)
	assert.Equal(t, "https://cdn/lipsync.mp4", lipSync.Image)

	// first media item of each event with media; Junior Prom has none
	track := memories[5]
	assert.Equal(t, model.MemoryEventMedia, track.Type)
	assert.Equal(t, "Track and Field", track.Title)
	assert.Equal(t, "Annual Sports Day", track.Subtitle)
	assert.Equal(t, "Track and Field description", track.Description)
	em, ok := track.Data.(model.EventMedia)
	require.True(t, ok)
	assert.Equal(t, 1, em.Event.ID)
	assert.Equal(t, 1, em.ID)

	journal := memories[6]
	assert.Equal(t, "Science Field Trip", journal.Subtitle)
	assert.Equal(t, 3, journal.Data.(model.EventMedia).Event.ID)
}

func TestRecentMemories_Truncates(t *testing.T) {
	ds := testDataset()
	for i := 10; i < 15; i++ {
		ds.Gallery.Recent = append(ds.Gallery.Recent, media(i, "image", fmt.Sprintf("Extra %d", i)))
	}
	// pool: 3 profiles + 7 gallery + 2 event media
	s := New(&MockSource{Dataset: ds}, WithShuffle(identityShuffle))
	ctx := context.Background()

	memories := s.RecentMemories(ctx)
	require.Len(t, memories, 8)
	assert.Equal(t, "Emily Johnson", memories[0].Title)
	assert.Equal(t, "Extra 12", memories[7].Title)

	s = New(&MockSource{Dataset: ds}, WithShuffle(reverseShuffle))
	memories = s.RecentMemories(ctx)
	require.Len(t, memories, 8)
	assert.Equal(t, "Field Trip Journal", memories[0].Title)
	assert.Equal(t, "Lip Sync", memories[7].Title)
}

func TestRecentMemories_RandomKeepsCandidatePool(t *testing.T) {
	s := New(&MockSource{Dataset: testDataset()})
	ctx := context.Background()

	pool := map[string]bool{}
	for _, m := range New(&MockSource{Dataset: testDataset()}, WithShuffle(identityShuffle)).RecentMemories(ctx) {
		pool[m.Title] = true
	}

	for run := 0; run < 20; run++ {
		memories := s.RecentMemories(ctx)
		require.Len(t, memories, len(pool))
		got := map[string]bool{}
		for _, m := range memories {
			got[m.Title] = true
		}
		assert.Equal(t, pool, got)
	}
}

func TestRecentMemories_SizeProperty(t *testing.T) {
	tests := []struct {
		students, recent, eventsWithMedia, eventsWithout int
	}{
		{0, 0, 0, 0},
		{1, 0, 0, 3},
		{2, 1, 1, 0},
		{5, 0, 0, 0},
		{5, 4, 3, 2},
		{10, 10, 10, 10},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d-%d-%d-%d", tt.students, tt.recent, tt.eventsWithMedia, tt.eventsWithout), func(t *testing.T) {
			ds := &model.Dataset{Gallery: &model.Gallery{}}
			for i := 0; i < tt.students; i++ {
				ds.Students = append(ds.Students, model.Student{ID: i + 1, Name: fmt.Sprintf("Student %d", i)})
			}
			for i := 0; i < tt.recent; i++ {
				ds.Gallery.Recent = append(ds.Gallery.Recent, media(i+1, "image", fmt.Sprintf("Recent %d", i)))
			}
			for i := 0; i < tt.eventsWithMedia; i++ {
				ds.Events = append(ds.Events, model.Event{ID: i + 1, Media: []model.MediaItem{media(1, "video", "clip"), media(2, "image", "photo")}})
			}
			for i := 0; i < tt.eventsWithout; i++ {
				ds.Events = append(ds.Events, model.Event{ID: 100 + i})
			}

			memories := New(&MockSource{Dataset: ds}).RecentMemories(context.Background())
			want := min(8, min(3, tt.students)+tt.recent+tt.eventsWithMedia)
			assert.Len(t, memories, want)
		})
	}
}

func TestCapitalize(t *testing.T) {
	assert.Equal(t, "Image", capitalize("image"))
	assert.Equal(t, "Blog", capitalize("blog"))
	assert.Equal(t, "Éclair", capitalize("éclair"))
	assert.Equal(t, "", capitalize(""))
	assert.Equal(t, "Video", capitalize("Video"))
}
