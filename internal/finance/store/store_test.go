package store_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/numeraai/numera/internal/finance"
	"github.com/numeraai/numera/internal/finance/store"
	"github.com/numeraai/numera/internal/kv"
)

func TestStore_Defaults(t *testing.T) {
	ctx := context.Background()
	mem := kv.NewMemory()
	s := store.New(mem)

	goals, err := s.LoadGoals(ctx)
	require.NoError(t, err)
	assert.Equal(t, finance.DefaultGoals(), goals)

	expenses, err := s.LoadExpenses(ctx)
	require.NoError(t, err)
	assert.Empty(t, expenses)

	require.NoError(t, mem.Set(ctx, kv.KeyGoals, "not json"))

	goals, err = s.LoadGoals(ctx)
	require.NoError(t, err)
	assert.Len(t, goals, 3)
}

func TestStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	s := store.New(kv.NewMemory())

	goals := []finance.Goal{{ID: 7, Title: "Stock up", Current: 1, Target: 4, Unit: "bags"}}
	require.NoError(t, s.SaveGoals(ctx, goals))

	got, err := s.LoadGoals(ctx)
	require.NoError(t, err)
	assert.Equal(t, goals, got)
}
