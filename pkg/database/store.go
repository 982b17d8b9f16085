package database

import (
	"context"
	"fmt"

	"BE-HOTEL-ADMIN/app/storage"
	"BE-HOTEL-ADMIN/config"
)

// OpenStore builds the snapshot store named by storage.driver. The returned close
// func releases the postgres pool; it is a no-op for the other drivers.
func OpenStore(ctx context.Context, cfg *config.Config) (storage.Store, func() error, error) {
	noop := func() error { return nil }
	switch cfg.Storage.Driver {
	case "", "memory":
		return storage.NewMemoryStore(), noop, nil
	case "file":
		store, err := storage.NewFileStore(cfg.Storage.Dir)
		if err != nil {
			return nil, nil, err
		}
		return store, noop, nil
	case "postgres":
		db, err := NewPostgresDatabase(ctx, cfg)
		if err != nil {
			return nil, nil, fmt.Errorf("connect postgres: %w", err)
		}
		store, err := storage.NewPostgresStore(ctx, db.GetDB())
		if err != nil {
			db.Close()
			return nil, nil, err
		}
		return store, db.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}
