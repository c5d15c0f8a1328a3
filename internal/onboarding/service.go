package onboarding

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/numeraai/numera/internal/kv"
	"github.com/numeraai/numera/internal/validation"
)

type Service struct {
	store kv.Store
	codec kv.Codec
}

func NewService(store kv.Store) *Service {
	return &Service{store: store, codec: kv.JSONCodec{}}
}

// Complete validates both steps and persists the onboarded flag and profile.
func (s *Service) Complete(ctx context.Context, p Profile) (Profile, error) {
	if errs := validation.ValidateAll(p.Data()); !errs.Valid() {
		return Profile{}, errs
	}

	if err := kv.Save(ctx, s.store, s.codec, kv.KeyUserData, p); err != nil {
		return Profile{}, fmt.Errorf("saving profile: %w", err)
	}

	if err := s.store.Set(ctx, kv.KeyOnboarded, "true"); err != nil {
		return Profile{}, fmt.Errorf("marking onboarded: %w", err)
	}

	return p, nil
}

// Load returns the persisted profile. A missing flag, missing data or a
// profile that does not decode all count as not onboarded.
func (s *Service) Load(ctx context.Context) (Profile, bool) {
	flag, ok, err := s.store.Get(ctx, kv.KeyOnboarded)
	if err != nil {
		slog.Warn("failed to read onboarding flag", "error", err)
		return Profile{}, false
	}

	if !ok || flag != "true" {
		return Profile{}, false
	}

	raw, ok, err := s.store.Get(ctx, kv.KeyUserData)
	if err != nil || !ok {
		return Profile{}, false
	}

	var p Profile
	if err := s.codec.Unmarshal(raw, &p); err != nil {
		slog.Error("error loading user data", "error", err)
		return Profile{}, false
	}

	return p, true
}

// Reset removes every persisted key, logging the user out.
func (s *Service) Reset(ctx context.Context) error {
	for _, key := range kv.Keys {
		if err := s.store.Remove(ctx, key); err != nil {
			return fmt.Errorf("removing %s: %w", key, err)
		}
	}

	return nil
}
