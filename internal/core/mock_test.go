package core

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"sync/atomic"

	"github.com/agenthands/classmem/internal/core/model"
)

type MockSource struct {
	Dataset *model.Dataset
	Err     error
	Gate    chan struct{} // when set, fetches wait for it to close
	calls   atomic.Int32
}

func (m *MockSource) Name() string { return "mock" }

func (m *MockSource) FetchDataset(ctx context.Context) (*model.Dataset, error) {
	m.calls.Add(1)
	if m.Gate != nil {
		<-m.Gate
	}
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Dataset, nil
}

func (m *MockSource) Calls() int {
	return int(m.calls.Load())
}

var errFetch = errors.New("fetch failed: connection refused")

// identityShuffle keeps the build order of RecentMemories.
func identityShuffle(n int, swap func(i, j int)) {}

func reverseShuffle(n int, swap func(i, j int)) {
	for i, j := 0, n-1; i < j; i, j = i+1, j-1 {
		swap(i, j)
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func bufferLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return slog.New(slog.NewTextHandler(&buf, nil)), &buf
}

func media(id int, typ, title string) model.MediaItem {
	return model.MediaItem{ID: id, Type: typ, Title: title, Description: title + " description"}
}

func testDataset() *model.Dataset {
	return &model.Dataset{
		Students: []model.Student{
			{ID: 1, Name: "Emily Johnson", ClassYear: "2024", Bio: "Captain of the debate team.", Avatar: "EJ"},
			{ID: 2, Name: "Marcus Chen", ClassYear: "2024", Bio: "President of the coding club.", Avatar: "MC"},
			{ID: 3, Name: "Sophia Rodriguez", ClassYear: "2024", Bio: "Lead in three productions.", Avatar: "SR"},
			{ID: 4, Name: "David Kim", ClassYear: "2023", Bio: "Basketball team captain.", Avatar: "DK"},
		},
		Events: []model.Event{
			{ID: 1, Title: "Annual Sports Day", Date: "2024-05-15", Year: "2024", Description: "Track, basketball and swimming.",
				Media: []model.MediaItem{media(1, "image", "Track and Field"), media(2, "video", "Basketball Final")}},
			{ID: 2, Title: "Junior Prom", Date: "2023-04-22", Year: "2023", Description: "Dancing at the pavilion."},
			{ID: 3, Title: "Science Field Trip", Date: "2024-03-10", Year: "2024", Description: "Natural History Museum.",
				Media: []model.MediaItem{media(7, "blog", "Field Trip Journal")}},
		},
		Gallery: &model.Gallery{
			Recent: []model.MediaItem{
				{ID: 1, Type: "image", Title: "Senior Sunrise", URL: "https://cdn/sunrise.jpg", Thumbnail: "https://cdn/sunrise-thumb.jpg"},
				{ID: 2, Type: "video", Title: "Lip Sync", URL: "https://cdn/lipsync.mp4"},
			},
			Featured: []model.MediaItem{media(1, "image", "Class Portrait")},
		},
	}
}
