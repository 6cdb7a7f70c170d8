package driver

import (
	"context"

	"github.com/agenthands/classmem/internal/core/model"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
)

// DataSource supplies the raw dataset. Implementations fail with an error
// for transport problems and malformed documents alike.
type DataSource interface {
	FetchDataset(ctx context.Context) (*model.Dataset, error)
	Name() string
}

// Closer is implemented by sources holding connections.
type Closer interface {
	Close(ctx context.Context) error
}

type GraphDriver interface {
	ExecuteQuery(ctx context.Context, query string, params map[string]interface{}) (neo4j.EagerResult, error)
	BuildIndices(ctx context.Context) error
	Close(ctx context.Context) error
}

// CloseSource releases src if it holds resources.
func CloseSource(ctx context.Context, src DataSource) error {
	if c, ok := src.(Closer); ok {
		return c.Close(ctx)
	}
	return nil
}
