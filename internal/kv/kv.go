// Package kv is the key/value persistence adapter. Values are stored as
// serialized strings under a fixed set of keys.
package kv

import (
	"context"
	"errors"
	"log/slog"

	jsoniter "github.com/json-iterator/go"
)

const (
	KeyOnboarded = "numeraai_onboarded"
	KeyUserData  = "numeraai_userdata"
	KeyGoals     = "numeraai_goals"
	KeyExpenses  = "numeraai_expenses"

	KeyCategoryMappings = "numeraai_category_mappings"
	KeyProfileExtras    = "numeraai_profile_extras"
)

// Keys lists every key the app writes, in the order they are cleared on logout.
var Keys = []string{KeyOnboarded, KeyUserData, KeyGoals, KeyExpenses, KeyCategoryMappings, KeyProfileExtras}

// ErrEmptyKey is returned by stores for a blank key.
var ErrEmptyKey = errors.New("kv: empty key")

// Store holds string values by key. Get reports ok=false on a miss.
type Store interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}

type Codec interface {
	Marshal(v any) (string, error)
	Unmarshal(data string, v any) error
}

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// JSONCodec serializes with the standard library compatible json-iterator config.
type JSONCodec struct{}

func (JSONCodec) Marshal(v any) (string, error) {
	return json.MarshalToString(v)
}

func (JSONCodec) Unmarshal(data string, v any) error {
	return json.UnmarshalFromString(data, v)
}

// Load reads key and decodes it into a T. A miss, a read error or a value
// that does not decode all yield def.
func Load[T any](ctx context.Context, s Store, codec Codec, key string, def T) T {
	raw, ok, err := s.Get(ctx, key)
	if err != nil {
		slog.Warn("failed to read persisted value", "key", key, "error", err)
		return def
	}

	if !ok {
		return def
	}

	var v T
	if err := codec.Unmarshal(raw, &v); err != nil {
		slog.Warn("discarding malformed persisted value", "key", key, "error", err)
		return def
	}

	return v
}

func Save[T any](ctx context.Context, s Store, codec Codec, key string, v T) error {
	raw, err := codec.Marshal(v)
	if err != nil {
		return err
	}

	return s.Set(ctx, key, raw)
}
