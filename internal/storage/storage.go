// Package storage opens the backing stores for the configured driver.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/numeraai/numera/internal/config"
	"github.com/numeraai/numera/internal/database"
	"github.com/numeraai/numera/internal/inventory"
	inventoryStore "github.com/numeraai/numera/internal/inventory/store"
	"github.com/numeraai/numera/internal/kv"
	kvStore "github.com/numeraai/numera/internal/kv/store"
)

type Storage struct {
	KV        kv.Store
	Inventory inventory.Repository

	db *sql.DB
}

// Open returns in-process stores for the memory driver. For postgres it
// connects, migrates and seeds the demo inventory on an empty table.
func Open(ctx context.Context, cfg *config.Config) (*Storage, error) {
	if cfg.UseMemory() {
		return &Storage{
			KV:        kv.NewMemory(),
			Inventory: inventoryStore.NewMemory(inventory.DemoItems(time.Now())),
		}, nil
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	if err := database.Migrate(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	items := inventoryStore.New(db)
	if err := items.Seed(ctx); err != nil {
		db.Close()
		return nil, err
	}

	return &Storage{KV: kvStore.New(db), Inventory: items, db: db}, nil
}

func (s *Storage) Close() error {
	if s.db == nil {
		return nil
	}

	return s.db.Close()
}
