package store

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/numeraai/numera/internal/kv"
)

type mapping struct {
	Pattern   string    `json:"pattern"`
	Category  string    `json:"category"`
	CreatedAt time.Time `json:"createdAt"`
}

// Store keeps category mappings as one serialized list in the key/value store.
type Store struct {
	kv    kv.Store
	codec kv.Codec
	mu    sync.Mutex
}

func New(s kv.Store) *Store {
	return &Store{kv: s, codec: kv.JSONCodec{}}
}

func (s *Store) FindMatch(ctx context.Context, description string) (string, error) {
	mappings := kv.Load(ctx, s.kv, s.codec, kv.KeyCategoryMappings, []mapping{})

	var hits []mapping

	for _, m := range slices.Backward(mappings) {
		if strings.Contains(description, m.Pattern) {
			hits = append(hits, m)
		}
	}

	if len(hits) == 0 {
		return "", nil
	}

	// Longest pattern wins. hits is newest first, so the stable sort keeps
	// the latest mapping ahead among equal lengths.
	slices.SortStableFunc(hits, func(a, b mapping) int {
		return cmp.Compare(len(b.Pattern), len(a.Pattern))
	})

	return hits[0].Category, nil
}

func (s *Store) CreateMapping(ctx context.Context, pattern, category string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	mappings := kv.Load(ctx, s.kv, s.codec, kv.KeyCategoryMappings, []mapping{})
	mappings = append(mappings, mapping{Pattern: pattern, Category: category, CreatedAt: time.Now()})

	if err := kv.Save(ctx, s.kv, s.codec, kv.KeyCategoryMappings, mappings); err != nil {
		return fmt.Errorf("creating mapping: %w", err)
	}

	return nil
}
