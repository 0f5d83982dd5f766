package artifact

import (
	"context"
	"fmt"

	"github.com/nguyentantai21042004/lecture-flow/internal/config"
	"github.com/nguyentantai21042004/lecture-flow/internal/logger"
)

type implWriter struct {
	store  Store
	prefix string
	logger logger.Logger
}

// NewWriter wraps store; every name is stored under prefix when it is set.
func NewWriter(store Store, prefix string, log logger.Logger) Writer {
	return &implWriter{
		store:  store,
		prefix: prefix,
		logger: log,
	}
}

// NewStore opens the backend selected by cfg.Driver.
func NewStore(ctx context.Context, cfg config.StorageConfig) (Store, error) {
	switch cfg.Driver {
	case config.DriverFS:
		return NewFS(cfg.Dir), nil
	case config.DriverSQLite:
		return NewSQLite(ctx, cfg.DSN)
	case config.DriverPostgres:
		return NewPostgres(ctx, cfg.DSN)
	case config.DriverSupabase:
		return NewSupabase(cfg.SupabaseURL, cfg.SupabaseKey, cfg.Bucket)
	default:
		return nil, fmt.Errorf("unsupported storage driver %q", cfg.Driver)
	}
}
