// Package profile holds the owner's profile, mobile money numbers and the
// credit and SACCO overview built on them.
package profile

import (
	"cmp"
	"slices"

	"github.com/numeraai/numera/internal/onboarding"
)

const DefaultLocation = "Nairobi, Kenya"

type MobileMoney struct {
	MpesaNumber  string `json:"mpesaNumber"`
	AirtelNumber string `json:"airtelNumber"`
}

// UserData is the onboarding profile plus the fields only the profile screen edits.
type UserData struct {
	onboarding.Profile
	Location    string      `json:"location"`
	MobileMoney MobileMoney `json:"mobileMoney"`
}

// extras is what the profile persists beyond the onboarding record.
type extras struct {
	Location    string       `json:"location"`
	MobileMoney *MobileMoney `json:"mobileMoney,omitempty"`
}

func defaults() UserData {
	return UserData{
		Profile: onboarding.Profile{
			FirstName:       "Grace",
			LastName:        "Wanjiku",
			Phone:           "+254712345678",
			BusinessName:    "Grace Agrovet & Animal Feeds",
			BusinessType:    "Agrovet",
			YearsInBusiness: "3",
		},
		Location:    DefaultLocation,
		MobileMoney: MobileMoney{MpesaNumber: "+254712345678"},
	}
}

// merge overlays the non-empty fields of p on d.
func merge(d UserData, p onboarding.Profile) UserData {
	set := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}

	set(&d.FirstName, p.FirstName)
	set(&d.LastName, p.LastName)
	set(&d.Phone, p.Phone)
	set(&d.BusinessName, p.BusinessName)
	set(&d.BusinessType, p.BusinessType)
	set(&d.YearsInBusiness, p.YearsInBusiness)

	return d
}

type Factors struct {
	PaymentHistory    int `json:"paymentHistory"`
	BusinessStability int `json:"businessStability"`
	TransactionVolume int `json:"transactionVolume"`
	CustomerRatings   int `json:"customerRatings"`
}

type LoanEligibility struct {
	Eligible     bool    `json:"eligible"`
	MaxAmount    float64 `json:"maxAmount"`
	InterestRate float64 `json:"interestRate"`
	TermMonths   int     `json:"term"`
	TrustScore   int     `json:"trustScore"`
	TrustLabel   string  `json:"trustLabel"`
	Factors      Factors `json:"factors"`
}

// Eligibility is the illustrative credit assessment shown to every owner.
func Eligibility() LoanEligibility {
	const score = 78

	return LoanEligibility{
		Eligible:     true,
		MaxAmount:    50000,
		InterestRate: 12,
		TermMonths:   6,
		TrustScore:   score,
		TrustLabel:   TrustLabel(score),
		Factors: Factors{
			PaymentHistory:    85,
			BusinessStability: 75,
			TransactionVolume: 80,
			CustomerRatings:   72,
		},
	}
}

func TrustLabel(score int) string {
	switch {
	case score >= 80:
		return "Excellent"
	case score >= 60:
		return "Good"
	default:
		return "Fair"
	}
}

type SACCO struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Location      string   `json:"location"`
	MemberCount   int      `json:"memberCount"`
	MaxLoanAmount float64  `json:"maxLoanAmount"`
	InterestRate  float64  `json:"interestRate"`
	Requirements  []string `json:"requirements"`
	Compatibility int      `json:"compatibilityScore"`
	Match         string   `json:"match"`
	Logo          string   `json:"logo"`
}

var saccos = []SACCO{
	{
		ID:            "1",
		Name:          "Nairobi Business SACCO",
		Description:   "Leading SACCO for Nairobi business owners with competitive rates",
		Location:      "Nairobi CBD",
		MemberCount:   2500,
		MaxLoanAmount: 100000,
		InterestRate:  10,
		Requirements:  []string{"3+ years in business", "Monthly turnover > KES 50,000", "Good credit history"},
		Compatibility: 92,
		Logo:          "🏢",
	},
	{
		ID:            "2",
		Name:          "Kenya Agrovet SACCO",
		Description:   "Specialized SACCO for agricultural and agrovet businesses",
		Location:      "Nakuru",
		MemberCount:   1800,
		MaxLoanAmount: 75000,
		InterestRate:  11,
		Requirements:  []string{"Agrovet license", "2+ years experience", "Regular agricultural suppliers"},
		Compatibility: 88,
		Logo:          "🌾",
	},
	{
		ID:            "3",
		Name:          "Cooperative Bank SACCO",
		Description:   "Large cooperative with extensive branch network",
		Location:      "Nationwide",
		MemberCount:   5000,
		MaxLoanAmount: 150000,
		InterestRate:  12,
		Requirements:  []string{"Business registration", "6 months bank statements", "Collateral or guarantor"},
		Compatibility: 75,
		Logo:          "🏦",
	},
	{
		ID:            "4",
		Name:          "Women Enterprise SACCO",
		Description:   "SACCO focused on women-owned businesses",
		Location:      "Nairobi & Mombasa",
		MemberCount:   3200,
		MaxLoanAmount: 60000,
		InterestRate:  9,
		Requirements:  []string{"Women-owned business", "1+ year in operation", "Business plan"},
		Compatibility: 85,
		Logo:          "👩‍💼",
	},
	{
		ID:            "5",
		Name:          "Youth Enterprise SACCO",
		Description:   "Supporting young entrepreneurs under 35 years",
		Location:      "Multiple locations",
		MemberCount:   1500,
		MaxLoanAmount: 40000,
		InterestRate:  8,
		Requirements:  []string{"Under 35 years", "Business registration", "Youth enterprise certificate"},
		Compatibility: 70,
		Logo:          "🧑‍💼",
	},
}

// SACCOs returns the partner SACCOs, best match first, each labelled.
func SACCOs() []SACCO {
	out := make([]SACCO, len(saccos))
	for i, s := range saccos {
		s.Requirements = slices.Clone(s.Requirements)
		s.Match = MatchLabel(s.Compatibility)
		out[i] = s
	}

	slices.SortStableFunc(out, func(a, b SACCO) int {
		return cmp.Compare(b.Compatibility, a.Compatibility)
	})

	return out
}

func MatchLabel(score int) string {
	switch {
	case score >= 85:
		return "Excellent Match"
	case score >= 70:
		return "Good Match"
	case score >= 50:
		return "Fair Match"
	default:
		return "Low Match"
	}
}

type Achievement struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Earned      bool   `json:"earned"`
}

func Achievements() []Achievement {
	return []Achievement{
		{Title: "Consistent Earner", Description: "6 months of steady revenue", Earned: true},
		{Title: "Payment Master", Description: "No late payments in 3 months", Earned: true},
		{Title: "Growth Champion", Description: "20% month-over-month growth", Earned: false},
		{Title: "Customer Favorite", Description: "4.5+ customer rating", Earned: true},
	}
}
