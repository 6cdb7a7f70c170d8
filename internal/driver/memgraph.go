package driver

import (
	"context"
	"fmt"
	"log"

	"github.com/agenthands/classmem/internal/core/model"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
)

type MemgraphDriver struct {
	Driver neo4j.DriverWithContext
}

func NewMemgraphDriver(ctx context.Context, uri, username, password string) (*MemgraphDriver, error) {
	driver, err := neo4j.NewDriverWithContext(uri, neo4j.BasicAuth(username, password, ""))
	if err != nil {
		return nil, err
	}

	if err := driver.VerifyConnectivity(ctx); err != nil {
		_ = driver.Close(ctx)
		return nil, err
	}

	log.Println("Connected to Memgraph")
	return &MemgraphDriver{Driver: driver}, nil
}

func (d *MemgraphDriver) Close(ctx context.Context) error {
	return d.Driver.Close(ctx)
}

func (d *MemgraphDriver) ExecuteQuery(ctx context.Context, query string, params map[string]interface{}) (neo4j.EagerResult, error) {
	result, err := neo4j.ExecuteQuery(ctx, d.Driver, query, params, neo4j.EagerResultTransformer)
	if err != nil {
		return neo4j.EagerResult{}, fmt.Errorf("failed to execute query: %w", err)
	}
	return *result, nil
}

func (d *MemgraphDriver) BuildIndices(ctx context.Context) error {
	queries := []string{
		"CREATE INDEX ON :Student(id);",
		"CREATE INDEX ON :Event(id);",
		"CREATE INDEX ON :Media(event_id);",
		"CREATE INDEX ON :GalleryItem(bucket);",
	}

	for _, q := range queries {
		_, err := d.ExecuteQuery(ctx, q, nil)
		if err != nil {
			// index might already exist
			log.Printf("Warning: failed to create index '%s': %v", q, err)
		}
	}

	return nil
}

// MemgraphSource reads the dataset from a graph seeded by Seed.
type MemgraphSource struct {
	Driver GraphDriver
}

func (s *MemgraphSource) Name() string { return "memgraph" }

func (s *MemgraphSource) Close(ctx context.Context) error {
	return s.Driver.Close(ctx)
}

func (s *MemgraphSource) FetchDataset(ctx context.Context) (*model.Dataset, error) {
	students, err := s.Driver.ExecuteQuery(ctx, FetchStudentsQuery, nil)
	if err != nil {
		return nil, fmt.Errorf("fetch students: %w", err)
	}
	events, err := s.Driver.ExecuteQuery(ctx, FetchEventsQuery, nil)
	if err != nil {
		return nil, fmt.Errorf("fetch events: %w", err)
	}
	gallery, err := s.Driver.ExecuteQuery(ctx, FetchGalleryQuery, nil)
	if err != nil {
		return nil, fmt.Errorf("fetch gallery: %w", err)
	}

	ds := &model.Dataset{Gallery: &model.Gallery{}}
	for _, rec := range students.Records {
		ds.Students = append(ds.Students, model.Student{
			ID:        asInt(recordValue(rec, "id")),
			Name:      asString(recordValue(rec, "name")),
			ClassYear: asString(recordValue(rec, "class_year")),
			Bio:       asString(recordValue(rec, "bio")),
			Email:     asString(recordValue(rec, "email")),
			Phone:     asString(recordValue(rec, "phone")),
			Social:    asStringMap(recordValue(rec, "social")),
			Avatar:    asString(recordValue(rec, "avatar")),
		})
	}

	for _, rec := range events.Records {
		ev := model.Event{
			ID:          asInt(recordValue(rec, "id")),
			Title:       asString(recordValue(rec, "title")),
			Date:        asString(recordValue(rec, "date")),
			Year:        asString(recordValue(rec, "year")),
			Description: asString(recordValue(rec, "description")),
		}
		if list, ok := recordValue(rec, "media").([]any); ok {
			for _, v := range list {
				if props, ok := v.(map[string]any); ok {
					ev.Media = append(ev.Media, mediaFromProps(props))
				}
			}
		}
		ds.Events = append(ds.Events, ev)
	}

	for _, rec := range gallery.Records {
		props, ok := recordValue(rec, "item").(map[string]any)
		if !ok {
			continue
		}
		item := mediaFromProps(props)
		switch asString(recordValue(rec, "bucket")) {
		case BucketRecent:
			ds.Gallery.Recent = append(ds.Gallery.Recent, item)
		case BucketFeatured:
			ds.Gallery.Featured = append(ds.Gallery.Featured, item)
		}
	}

	ds.Normalize()
	return ds, nil
}

// Seed writes ds into the graph, replacing any previously seeded dataset.
// Collection order is kept in a position property. Nodes are merged on their
// ids, so a dataset with duplicate ids is rejected before anything is written.
func Seed(ctx context.Context, d GraphDriver, ds *model.Dataset) error {
	if err := checkSeedable(ds); err != nil {
		return err
	}

	if _, err := d.ExecuteQuery(ctx, ClearDatasetQuery, nil); err != nil {
		return fmt.Errorf("failed to clear dataset: %w", err)
	}

	for i, s := range ds.Students {
		social := make(map[string]interface{}, len(s.Social))
		for k, v := range s.Social {
			social[k] = v
		}
		params := map[string]interface{}{
			"id":         s.ID,
			"name":       s.Name,
			"class_year": s.ClassYear,
			"bio":        s.Bio,
			"email":      s.Email,
			"phone":      s.Phone,
			"social":     social,
			"avatar":     s.Avatar,
			"position":   i,
		}
		if _, err := d.ExecuteQuery(ctx, SaveStudentQuery, params); err != nil {
			return fmt.Errorf("failed to save student %d: %w", s.ID, err)
		}
	}

	for i, ev := range ds.Events {
		params := map[string]interface{}{
			"id":          ev.ID,
			"title":       ev.Title,
			"date":        ev.Date,
			"year":        ev.Year,
			"description": ev.Description,
			"position":    i,
		}
		if _, err := d.ExecuteQuery(ctx, SaveEventQuery, params); err != nil {
			return fmt.Errorf("failed to save event %d: %w", ev.ID, err)
		}

		for j, m := range ev.Media {
			params := mediaParams(m, j)
			params["event_id"] = ev.ID
			if _, err := d.ExecuteQuery(ctx, SaveEventMediaQuery, params); err != nil {
				return fmt.Errorf("failed to save media %d of event %d: %w", m.ID, ev.ID, err)
			}
		}
	}

	if ds.Gallery != nil {
		buckets := []struct {
			name  string
			items []model.MediaItem
		}{
			{BucketRecent, ds.Gallery.Recent},
			{BucketFeatured, ds.Gallery.Featured},
		}
		for _, b := range buckets {
			for j, m := range b.items {
				params := mediaParams(m, j)
				params["bucket"] = b.name
				if _, err := d.ExecuteQuery(ctx, SaveGalleryItemQuery, params); err != nil {
					return fmt.Errorf("failed to save %s gallery item %d: %w", b.name, m.ID, err)
				}
			}
		}
	}

	return nil
}

func checkSeedable(ds *model.Dataset) error {
	students := make(map[int]bool, len(ds.Students))
	for _, s := range ds.Students {
		if students[s.ID] {
			return fmt.Errorf("%w: student %d", ErrDuplicateID, s.ID)
		}
		students[s.ID] = true
	}

	events := make(map[int]bool, len(ds.Events))
	for _, ev := range ds.Events {
		if events[ev.ID] {
			return fmt.Errorf("%w: event %d", ErrDuplicateID, ev.ID)
		}
		events[ev.ID] = true
		if err := checkMediaIDs(ev.Media, fmt.Sprintf("event %d", ev.ID)); err != nil {
			return err
		}
	}

	if ds.Gallery != nil {
		if err := checkMediaIDs(ds.Gallery.Recent, BucketRecent+" gallery"); err != nil {
			return err
		}
		if err := checkMediaIDs(ds.Gallery.Featured, BucketFeatured+" gallery"); err != nil {
			return err
		}
	}
	return nil
}

func checkMediaIDs(items []model.MediaItem, owner string) error {
	seen := make(map[int]bool, len(items))
	for _, m := range items {
		if seen[m.ID] {
			return fmt.Errorf("%w: media %d in %s", ErrDuplicateID, m.ID, owner)
		}
		seen[m.ID] = true
	}
	return nil
}

func mediaParams(m model.MediaItem, position int) map[string]interface{} {
	return map[string]interface{}{
		"id":          m.ID,
		"type":        m.Type,
		"title":       m.Title,
		"description": m.Description,
		"url":         m.URL,
		"thumbnail":   m.Thumbnail,
		"placeholder": m.Placeholder,
		"position":    position,
	}
}

func mediaFromProps(props map[string]any) model.MediaItem {
	return model.MediaItem{
		ID:          asInt(props["id"]),
		Type:        asString(props["type"]),
		Title:       asString(props["title"]),
		Description: asString(props["description"]),
		URL:         asString(props["url"]),
		Thumbnail:   asString(props["thumbnail"]),
		Placeholder: asString(props["placeholder"]),
	}
}

func recordValue(rec *neo4j.Record, key string) any {
	v, _ := rec.Get(key)
	return v
}

func asInt(v any) int {
	switch n := v.(type) {
	case int64:
		return int(n)
	case int:
		return n
	case float64:
		return int(n)
	}
	return 0
}

func asString(v any) string {
	s, _ := v.(string)
	return s
}

func asStringMap(v any) map[string]string {
	m, ok := v.(map[string]any)
	if !ok {
		return nil
	}
	out := make(map[string]string, len(m))
	for k, val := range m {
		if s, ok := val.(string); ok {
			out[k] = s
		}
	}
	return out
}
