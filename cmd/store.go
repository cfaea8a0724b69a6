package main

import (
	"context"
	"fmt"

	"campaign-wizard/internal/adapter/memory"
	"campaign-wizard/internal/adapter/postgres"
	"campaign-wizard/internal/adapter/sqlite"
	"campaign-wizard/internal/config/configs"
	"campaign-wizard/internal/core/port"
	"campaign-wizard/internal/db"
)

// openStore opens the key-value backend selected by STORE_DRIVER. The
// returned func releases it.
func openStore(ctx context.Context) (port.KeyValue, func(), error) {
	switch cfg.Store.Driver {
	case configs.StoreMemory:
		return memory.NewKV(), func() {}, nil

	case configs.StorePostgres:
		if cfg.Psql.RunMigrations {
			if err := db.Migrate(cfg.Psql.Addr.String()); err != nil {
				return nil, nil, fmt.Errorf("migration error: %w", err)
			}
			logger.Info("migrations applied successfully")
		}
		pool, err := db.NewPostgresPool(ctx, cfg.Psql)
		if err != nil {
			return nil, nil, fmt.Errorf("database connection error: %w", err)
		}
		return postgres.NewKVRepository(pool), pool.Close, nil

	case configs.StoreSQLite:
		kv, err := sqlite.Open(ctx, cfg.Store.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		return kv, func() { _ = kv.Close() }, nil
	}
	return nil, nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
}
