package driver

import (
	"context"
	_ "embed"

	"github.com/agenthands/classmem/internal/core/model"
)

//go:embed fixtures/classmem.json
var embeddedDataset []byte

// EmbeddedSource serves the class fixture compiled into the binary.
type EmbeddedSource struct{}

func (EmbeddedSource) Name() string { return "embedded" }

func (EmbeddedSource) FetchDataset(ctx context.Context) (*model.Dataset, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return Decode(embeddedDataset, FormatJSON)
}
