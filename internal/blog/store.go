package blog

import (
	"context"
	"fmt"

	"bloglist/internal/config"
)

// OpenStore opens the repository selected by cfg.Driver. The caller owns the
// result and must Close it.
func OpenStore(ctx context.Context, cfg config.Store) (Repository, error) {
	var (
		repo Repository
		err  error
	)
	switch cfg.Driver {
	case config.DriverMongo:
		repo, err = OpenMongo(ctx, cfg.MongoURI, cfg.MongoDatabase, cfg.Timeout)
	case config.DriverPostgres:
		repo, err = OpenPostgres(ctx, cfg.PostgresDSN, cfg.Timeout)
	case config.DriverSQLite:
		repo, err = OpenSQLite(ctx, cfg.SQLitePath, cfg.Timeout)
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.Driver)
	}
	if err != nil {
		return nil, err
	}
	return repo, nil
}

// Location describes where the store lives, with credentials removed.
func Location(cfg config.Store) string {
	switch cfg.Driver {
	case config.DriverMongo:
		return config.RedactDSN(cfg.MongoURI) + "/" + cfg.MongoDatabase
	case config.DriverPostgres:
		return config.RedactDSN(cfg.PostgresDSN)
	default:
		return cfg.SQLitePath
	}
}
