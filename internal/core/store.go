package core

import (
	"context"
	"errors"
	"log/slog"
	"math/rand"
	"sync"

	"github.com/agenthands/classmem/internal/core/model"
	"github.com/agenthands/classmem/internal/driver"
)

// ShuffleFunc has the signature of rand.Shuffle.
type ShuffleFunc func(n int, swap func(i, j int))

type Option func(*Store)

// WithLogger sets the sink for load failures and dataset warnings.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithShuffle replaces the randomness used by RecentMemories.
func WithShuffle(fn ShuffleFunc) Option {
	return func(s *Store) {
		if fn != nil {
			s.shuffle = fn
		}
	}
}

// Store loads the class dataset once and answers read-only queries over it.
//
// The first Load fetches from the data source; every later call, including
// calls that overlap the first one, sees the same snapshot. A failed fetch is
// logged and replaced by an empty dataset, which is cached like a real one.
type Store struct {
	source  driver.DataSource
	logger  *slog.Logger
	shuffle ShuffleFunc

	mu      sync.Mutex
	dataset *model.Dataset
	loadErr error
}

func New(source driver.DataSource, opts ...Option) *Store {
	s := &Store{
		source:  source,
		logger:  slog.Default(),
		shuffle: rand.Shuffle,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load returns the cached dataset, fetching it on first use. It never fails.
// The fetch is detached from ctx cancellation: a caller going away must not
// turn the shared snapshot into the empty fallback.
func (s *Store) Load(ctx context.Context) *model.Dataset {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.dataset != nil {
		return s.dataset
	}

	ds, err := s.fetch(context.WithoutCancel(ctx))
	if err != nil {
		s.logger.Error("failed to load dataset, serving empty fallback",
			"source", s.sourceName(), "err", err)
		s.loadErr = err
		ds = model.EmptyDataset()
	} else {
		ds.Normalize()
		s.warnDuplicates(ds)
		s.logger.Info("dataset loaded",
			"source", s.sourceName(),
			"students", len(ds.Students),
			"events", len(ds.Events))
	}

	s.dataset = ds
	return ds
}

func (s *Store) fetch(ctx context.Context) (*model.Dataset, error) {
	if s.source == nil {
		return nil, errors.New("no data source configured")
	}
	ds, err := s.source.FetchDataset(ctx)
	if err != nil {
		return nil, err
	}
	if ds == nil {
		return nil, errors.New("data source returned no dataset")
	}
	return ds, nil
}

func (s *Store) sourceName() string {
	if s.source == nil {
		return "none"
	}
	return s.source.Name()
}

// duplicate ids are kept; lookups return the first match
func (s *Store) warnDuplicates(ds *model.Dataset) {
	seen := make(map[int]bool, len(ds.Students))
	for _, st := range ds.Students {
		if seen[st.ID] {
			s.logger.Warn("duplicate student id", "id", st.ID)
		}
		seen[st.ID] = true
	}
	clear(seen)
	for _, ev := range ds.Events {
		if seen[ev.ID] {
			s.logger.Warn("duplicate event id", "id", ev.ID)
		}
		seen[ev.ID] = true
	}
}

// LoadErr reports the failure absorbed by the last load, if any.
func (s *Store) LoadErr() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadErr
}

// Reset drops the cached dataset so the next call fetches again.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dataset = nil
	s.loadErr = nil
}

func (s *Store) Students(ctx context.Context) []model.Student {
	return s.Load(ctx).Students
}

// Student returns the first student with the given id.
func (s *Store) Student(ctx context.Context, id int) (*model.Student, bool) {
	students := s.Load(ctx).Students
	for i := range students {
		if students[i].ID == id {
			return &students[i], true
		}
	}
	return nil, false
}

// StudentRef looks a student up by a textual id, see model.ParseID.
func (s *Store) StudentRef(ctx context.Context, ref string) (*model.Student, bool) {
	id, ok := model.ParseID(ref)
	if !ok {
		return nil, false
	}
	return s.Student(ctx, id)
}

func (s *Store) Events(ctx context.Context) []model.Event {
	return s.Load(ctx).Events
}

// Event returns the first event with the given id.
func (s *Store) Event(ctx context.Context, id int) (*model.Event, bool) {
	events := s.Load(ctx).Events
	for i := range events {
		if events[i].ID == id {
			return &events[i], true
		}
	}
	return nil, false
}

func (s *Store) EventRef(ctx context.Context, ref string) (*model.Event, bool) {
	id, ok := model.ParseID(ref)
	if !ok {
		return nil, false
	}
	return s.Event(ctx, id)
}

func (s *Store) Gallery(ctx context.Context) *model.Gallery {
	return s.Load(ctx).Gallery
}
