package store

import (
	"context"
	"slices"
	"sync"

	"github.com/numeraai/numera/internal/inventory"
)

// Memory keeps items in insertion order for the lifetime of the process.
type Memory struct {
	mu    sync.RWMutex
	items []inventory.Item
}

func NewMemory(seed []inventory.Item) *Memory {
	return &Memory{items: slices.Clone(seed)}
}

func (m *Memory) CreateItem(_ context.Context, item *inventory.Item) error {
	m.mu.Lock()
	m.items = append(m.items, *item)
	m.mu.Unlock()

	return nil
}

func (m *Memory) ListItems(context.Context) ([]inventory.Item, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return slices.Clone(m.items), nil
}
