package factory

import (
	"context"
	"fmt"

	"github.com/DjordjeVuckovic/addsub/internal/history"
	"github.com/DjordjeVuckovic/addsub/internal/history/es"
	"github.com/DjordjeVuckovic/addsub/internal/history/in_mem"
	"github.com/DjordjeVuckovic/addsub/internal/history/pg"
)

// NewStore creates the configured history.Store. The returned cleanup func
// is never nil. A nil store means history is disabled.
func NewStore(ctx context.Context, cfg *StoreConfig) (history.Store, func(), error) {
	noop := func() {}

	switch cfg.Type {
	case history.PG:
		if cfg.Pg == nil {
			return nil, noop, fmt.Errorf("missing PostgreSQL configuration")
		}
		pool, err := pg.NewConnectionPool(ctx, *cfg.Pg)
		if err != nil {
			return nil, noop, fmt.Errorf("failed to create PostgreSQL connection pool: %w", err)
		}
		return pg.NewStore(pool), pool.Close, nil

	case history.ES:
		if cfg.Es == nil {
			return nil, noop, fmt.Errorf("missing Elasticsearch configuration")
		}
		s, err := es.NewStore(ctx, *cfg.Es)
		if err != nil {
			return nil, noop, err
		}
		return s, noop, nil

	case history.InMem:
		return in_mem.NewInMemStore(), noop, nil

	case history.None:
		return nil, noop, nil

	default:
		return nil, noop, fmt.Errorf(string(history.ErrUnsupportedStore), cfg.Type)
	}
}
