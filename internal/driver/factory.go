package driver

import (
	"context"
	"fmt"
	"strings"

	"github.com/agenthands/classmem/internal/config"
)

// NewSource builds the data source selected by cfg.Source.Kind, wrapped in
// Paced when a delay is configured.
func NewSource(ctx context.Context, cfg *config.Config) (DataSource, error) {
	var src DataSource

	switch kind := strings.ToLower(cfg.Source.Kind); kind {
	case "", config.SourceEmbedded:
		src = EmbeddedSource{}

	case config.SourceFile:
		src = &FileSource{Path: cfg.Source.Path}

	case config.SourceHTTP:
		src = &HTTPSource{URL: cfg.Source.URL}

	case config.SourceMemgraph:
		d, err := NewMemgraphDriver(ctx, cfg.Memgraph.URI, cfg.Memgraph.User, cfg.Memgraph.Password)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to Memgraph: %w", err)
		}
		src = &MemgraphSource{Driver: d}

	case config.SourceMinio:
		s, err := NewObjectSource(cfg.Minio)
		if err != nil {
			return nil, err
		}
		src = s

	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedSource, kind)
	}

	delay, err := cfg.Source.DelayDuration()
	if err != nil {
		_ = CloseSource(ctx, src)
		return nil, err
	}
	if delay > 0 {
		src = &Paced{Source: src, Delay: delay}
	}
	return src, nil
}
