package core

import (
	"context"
	"strings"

	"github.com/agenthands/classmem/internal/core/model"
)

// Search matches query case-insensitively as a substring of student names
// and bios, then of event titles and descriptions. Students come first, each
// group in dataset order. The empty query matches everything.
func (s *Store) Search(ctx context.Context, query string) []model.SearchResult {
	ds := s.Load(ctx)
	q := strings.ToLower(query)
	results := []model.SearchResult{}

	for i := range ds.Students {
		student := &ds.Students[i]
		if containsFold(student.Name, q) || containsFold(student.Bio, q) {
			results = append(results, model.SearchResult{
				Type:        model.ResultStudent,
				Title:       student.Name,
				Description: student.Bio,
				Data:        student,
			})
		}
	}

	for i := range ds.Events {
		event := &ds.Events[i]
		if containsFold(event.Title, q) || containsFold(event.Description, q) {
			results = append(results, model.SearchResult{
				Type:        model.ResultEvent,
				Title:       event.Title,
				Description: event.Description,
				Data:        event,
			})
		}
	}

	return results
}

// lowerQuery must already be lower case.
func containsFold(text, lowerQuery string) bool {
	return strings.Contains(strings.ToLower(text), lowerQuery)
}
