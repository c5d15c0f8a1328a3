package profile

import (
	"context"
	"fmt"
	"strings"

	"github.com/numeraai/numera/internal/kv"
	"github.com/numeraai/numera/internal/onboarding"
	"github.com/numeraai/numera/internal/validation"
)

// Onboarding owns the persisted onboarding record.
type Onboarding interface {
	Load(ctx context.Context) (onboarding.Profile, bool)
	Complete(ctx context.Context, p onboarding.Profile) (onboarding.Profile, error)
}

type Service struct {
	onboarding Onboarding
	store      kv.Store
	codec      kv.Codec
}

func NewService(ob Onboarding, store kv.Store) *Service {
	return &Service{onboarding: ob, store: store, codec: kv.JSONCodec{}}
}

// Get returns the defaults overlaid with whatever the owner entered during
// onboarding and on the profile screen.
func (s *Service) Get(ctx context.Context) UserData {
	d := defaults()

	if p, ok := s.onboarding.Load(ctx); ok {
		d = merge(d, p)
	}

	ex := kv.Load(ctx, s.store, s.codec, kv.KeyProfileExtras, extras{})
	if ex.Location != "" {
		d.Location = ex.Location
	}

	if ex.MobileMoney != nil {
		d.MobileMoney = *ex.MobileMoney
	}

	return d
}

type UpdateParams struct {
	onboarding.Profile
	Location string
}

// Update replaces the profile fields under the onboarding rules. An empty
// location falls back to the default.
func (s *Service) Update(ctx context.Context, params UpdateParams) (UserData, error) {
	if _, err := s.onboarding.Complete(ctx, params.Profile); err != nil {
		return UserData{}, err
	}

	ex := kv.Load(ctx, s.store, s.codec, kv.KeyProfileExtras, extras{})

	ex.Location = strings.TrimSpace(params.Location)
	if ex.Location == "" {
		ex.Location = DefaultLocation
	}

	if err := kv.Save(ctx, s.store, s.codec, kv.KeyProfileExtras, ex); err != nil {
		return UserData{}, fmt.Errorf("saving location: %w", err)
	}

	return s.Get(ctx), nil
}

// UpdateMobileMoney normalizes both numbers to +254 form. The M-Pesa number
// is required and the Airtel number may be left empty.
func (s *Service) UpdateMobileMoney(ctx context.Context, m MobileMoney) (MobileMoney, error) {
	errs := validation.ErrorMap{}

	mpesa := validation.NormalizePhone(m.MpesaNumber)
	if !validation.ValidKenyanPhone(mpesa) {
		errs["mpesaNumber"] = "Please enter a valid M-Pesa number"
	}

	airtel := ""
	if strings.TrimSpace(m.AirtelNumber) != "" {
		airtel = validation.NormalizePhone(m.AirtelNumber)
		if !validation.ValidKenyanPhone(airtel) {
			errs["airtelNumber"] = "Please enter a valid Airtel Money number"
		}
	}

	if !errs.Valid() {
		return MobileMoney{}, errs
	}

	out := MobileMoney{MpesaNumber: mpesa, AirtelNumber: airtel}

	ex := kv.Load(ctx, s.store, s.codec, kv.KeyProfileExtras, extras{})
	ex.MobileMoney = &out

	if err := kv.Save(ctx, s.store, s.codec, kv.KeyProfileExtras, ex); err != nil {
		return MobileMoney{}, fmt.Errorf("saving mobile money: %w", err)
	}

	return out, nil
}
