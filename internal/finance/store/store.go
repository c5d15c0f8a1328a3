package store

import (
	"context"
	"fmt"

	"github.com/numeraai/numera/internal/finance"
	"github.com/numeraai/numera/internal/kv"
)

// Store persists goals and expenses as serialized lists.
type Store struct {
	kv    kv.Store
	codec kv.Codec
}

func New(s kv.Store) *Store {
	return &Store{kv: s, codec: kv.JSONCodec{}}
}

// LoadGoals falls back to the default goals when nothing usable is stored.
func (s *Store) LoadGoals(ctx context.Context) ([]finance.Goal, error) {
	return kv.Load(ctx, s.kv, s.codec, kv.KeyGoals, finance.DefaultGoals()), nil
}

func (s *Store) SaveGoals(ctx context.Context, goals []finance.Goal) error {
	if err := kv.Save(ctx, s.kv, s.codec, kv.KeyGoals, goals); err != nil {
		return fmt.Errorf("saving goals: %w", err)
	}

	return nil
}

func (s *Store) LoadExpenses(ctx context.Context) ([]finance.Expense, error) {
	return kv.Load(ctx, s.kv, s.codec, kv.KeyExpenses, []finance.Expense{}), nil
}

func (s *Store) SaveExpenses(ctx context.Context, expenses []finance.Expense) error {
	if err := kv.Save(ctx, s.kv, s.codec, kv.KeyExpenses, expenses); err != nil {
		return fmt.Errorf("saving expenses: %w", err)
	}

	return nil
}
