package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/numeraai/numera/internal/inventory"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) CreateItem(ctx context.Context, item *inventory.Item) error {
	query := `
		INSERT INTO inventory_items (id, name, category, current_stock, minimum_threshold, maximum_capacity, unit_price, supplier, last_restocked, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW())
	`

	_, err := s.db.ExecContext(ctx, query,
		item.ID,
		item.Name,
		item.Category,
		item.CurrentStock,
		item.MinimumThreshold,
		item.MaximumCapacity,
		item.UnitPrice,
		item.Supplier,
		item.LastRestocked,
	)
	if err != nil {
		return fmt.Errorf("creating item: %w", err)
	}

	return nil
}

func (s *Store) ListItems(ctx context.Context) ([]inventory.Item, error) {
	query := `
		SELECT id, name, category, current_stock, minimum_threshold, maximum_capacity, unit_price, supplier, last_restocked
		FROM inventory_items
		ORDER BY created_at, name
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing items: %w", err)
	}
	defer rows.Close()

	var items []inventory.Item

	for rows.Next() {
		var i inventory.Item
		if err := rows.Scan(
			&i.ID, &i.Name, &i.Category, &i.CurrentStock, &i.MinimumThreshold,
			&i.MaximumCapacity, &i.UnitPrice, &i.Supplier, &i.LastRestocked,
		); err != nil {
			return nil, fmt.Errorf("scanning item: %w", err)
		}

		items = append(items, i)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating items: %w", err)
	}

	return items, nil
}

// Seed stocks the demo items when the table is empty.
func (s *Store) Seed(ctx context.Context) error {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM inventory_items`).Scan(&n); err != nil {
		return fmt.Errorf("counting items: %w", err)
	}

	if n > 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin seed: %w", err)
	}
	defer tx.Rollback()

	for _, i := range inventory.DemoItems(time.Now()) {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO inventory_items (id, name, category, current_stock, minimum_threshold, maximum_capacity, unit_price, supplier, last_restocked)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			ON CONFLICT (id) DO NOTHING`,
			i.ID, i.Name, i.Category, i.CurrentStock, i.MinimumThreshold, i.MaximumCapacity, i.UnitPrice, i.Supplier, i.LastRestocked,
		)
		if err != nil {
			return fmt.Errorf("seeding %s: %w", i.Name, err)
		}
	}

	return tx.Commit()
}
