package profile_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/numeraai/numera/internal/kv"
	"github.com/numeraai/numera/internal/onboarding"
	"github.com/numeraai/numera/internal/profile"
	"github.com/numeraai/numera/internal/validation"
)

func newService() (*profile.Service, *onboarding.Service) {
	store := kv.NewMemory()
	ob := onboarding.NewService(store)

	return profile.NewService(ob, store), ob
}

func TestService_Get_Defaults(t *testing.T) {
	svc, _ := newService()

	got := svc.Get(context.Background())
	assert.Equal(t, "Grace", got.FirstName)
	assert.Equal(t, profile.DefaultLocation, got.Location)
	assert.Equal(t, "+254712345678", got.MobileMoney.MpesaNumber)
}

func TestService_Get_MergesOnboarding(t *testing.T) {
	ctx := context.Background()
	svc, ob := newService()

	_, err := ob.Complete(ctx, onboarding.Profile{
		FirstName:       "Amina",
		LastName:        "Otieno",
		Phone:           "0722 000 111",
		BusinessName:    "Amina Feeds",
		BusinessType:    "Agrovet/Animal Feed Store",
		YearsInBusiness: "2-5",
	})
	require.NoError(t, err)

	got := svc.Get(ctx)
	assert.Equal(t, "Amina", got.FirstName)
	assert.Equal(t, "Amina Feeds", got.BusinessName)
	assert.Equal(t, profile.DefaultLocation, got.Location)
}

func TestService_Update(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService()

	params := profile.UpdateParams{
		Profile: onboarding.Profile{
			FirstName:       "Grace",
			LastName:        "Wanjiku",
			Phone:           "+254712345678",
			BusinessName:    "Grace Agrovet",
			BusinessType:    "Agrovet/Animal Feed Store",
			YearsInBusiness: "5-10",
		},
		Location: "Nakuru, Kenya",
	}

	got, err := svc.Update(ctx, params)
	require.NoError(t, err)
	assert.Equal(t, "Grace Agrovet", got.BusinessName)
	assert.Equal(t, "Nakuru, Kenya", got.Location)

	params.Location = ""
	got, err = svc.Update(ctx, params)
	require.NoError(t, err)
	assert.Equal(t, profile.DefaultLocation, got.Location)

	params.BusinessName = " "
	_, err = svc.Update(ctx, params)

	var errs validation.ErrorMap
	require.ErrorAs(t, err, &errs)
	assert.Contains(t, errs, "businessName")
	assert.Equal(t, "Grace Agrovet", svc.Get(ctx).BusinessName)
}

func TestService_UpdateMobileMoney(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService()

	got, err := svc.UpdateMobileMoney(ctx, profile.MobileMoney{MpesaNumber: "0712 345 678"})
	require.NoError(t, err)
	assert.Equal(t, profile.MobileMoney{MpesaNumber: "+254712345678"}, got)

	got, err = svc.UpdateMobileMoney(ctx, profile.MobileMoney{MpesaNumber: "712345678", AirtelNumber: "0733111222"})
	require.NoError(t, err)
	assert.Equal(t, "+254733111222", got.AirtelNumber)
	assert.Equal(t, got, svc.Get(ctx).MobileMoney)

	_, err = svc.UpdateMobileMoney(ctx, profile.MobileMoney{MpesaNumber: "12", AirtelNumber: "999"})

	var errs validation.ErrorMap
	require.ErrorAs(t, err, &errs)
	assert.Len(t, errs, 2)
	assert.Equal(t, "+254733111222", svc.Get(ctx).MobileMoney.AirtelNumber)
}

func TestLabels(t *testing.T) {
	assert.Equal(t, "Excellent", profile.TrustLabel(80))
	assert.Equal(t, "Good", profile.TrustLabel(78))
	assert.Equal(t, "Fair", profile.TrustLabel(59))

	assert.Equal(t, "Excellent Match", profile.MatchLabel(85))
	assert.Equal(t, "Good Match", profile.MatchLabel(70))
	assert.Equal(t, "Fair Match", profile.MatchLabel(50))
	assert.Equal(t, "Low Match", profile.MatchLabel(49))
}

func TestSACCOs_SortedByCompatibility(t *testing.T) {
	got := profile.SACCOs()
	require.Len(t, got, 5)

	scores := make([]int, len(got))
	for i, s := range got {
		scores[i] = s.Compatibility
	}

	assert.Equal(t, []int{92, 88, 85, 75, 70}, scores)
	assert.Equal(t, "Women Enterprise SACCO", got[2].Name)
	assert.Equal(t, "Excellent Match", got[2].Match)

	got[0].Requirements[0] = "mutated"
	assert.NotEqual(t, "mutated", profile.SACCOs()[0].Requirements[0])
}

func TestEligibility(t *testing.T) {
	e := profile.Eligibility()
	assert.True(t, e.Eligible)
	assert.Equal(t, 78, e.TrustScore)
	assert.Equal(t, "Good", e.TrustLabel)
	assert.Len(t, profile.Achievements(), 4)
}
