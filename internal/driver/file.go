package driver

import (
	"context"
	"fmt"
	"os"

	"github.com/agenthands/classmem/internal/core/model"
)

// FileSource reads a JSON or YAML document from disk.
type FileSource struct {
	Path string
}

func (s *FileSource) Name() string { return "file:" + s.Path }

func (s *FileSource) FetchDataset(ctx context.Context) (*model.Dataset, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	raw, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("read dataset file: %w", err)
	}
	return Decode(raw, FormatFromPath(s.Path))
}
