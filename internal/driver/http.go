package driver

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/agenthands/classmem/internal/core/model"
)

// HTTPSource fetches a static dataset document with a single GET.
type HTTPSource struct {
	URL    string
	Client *http.Client
}

func (s *HTTPSource) Name() string { return "http:" + s.URL }

func (s *HTTPSource) FetchDataset(ctx context.Context) (*model.Dataset, error) {
	client := s.Client
	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json, application/yaml")

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch dataset: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w %d from %s", ErrUnexpectedStatus, resp.StatusCode, s.URL)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	return Decode(raw, s.format(resp.Header.Get("Content-Type")))
}

func (s *HTTPSource) format(contentType string) Format {
	if strings.Contains(contentType, "yaml") {
		return FormatYAML
	}
	if u, err := url.Parse(s.URL); err == nil {
		return FormatFromPath(u.Path)
	}
	return FormatJSON
}
