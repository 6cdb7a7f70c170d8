package driver

import (
	"context"
	"time"

	"github.com/agenthands/classmem/internal/core/model"
)

// Paced delays every fetch of the wrapped source, simulating network latency.
type Paced struct {
	Source DataSource
	Delay  time.Duration
}

func (p *Paced) Name() string { return p.Source.Name() }

func (p *Paced) FetchDataset(ctx context.Context) (*model.Dataset, error) {
	if p.Delay > 0 {
		timer := time.NewTimer(p.Delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-timer.C:
		}
	}
	return p.Source.FetchDataset(ctx)
}

func (p *Paced) Close(ctx context.Context) error {
	return CloseSource(ctx, p.Source)
}
