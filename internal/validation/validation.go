package validation

import (
	"regexp"
	"slices"
	"sort"
	"strings"
	"unicode"
)

// Step identifies one page of the onboarding form.
type Step int

const (
	StepPersonal Step = 1
	StepBusiness Step = 2
)

// Field names used as ErrorMap keys. They match the persisted JSON keys.
const (
	FieldFirstName       = "firstName"
	FieldLastName        = "lastName"
	FieldPhone           = "phone"
	FieldBusinessName    = "businessName"
	FieldBusinessType    = "businessType"
	FieldYearsInBusiness = "yearsInBusiness"
)

var (
	phonePattern       = regexp.MustCompile(`^\+?[0-9]{10,13}$`)
	kenyanPhonePattern = regexp.MustCompile(`^\+254\d{9}$`)
)

// BusinessTypes is the fixed list offered on the business step.
var BusinessTypes = []string{
	"Retail Store",
	"Restaurant",
	"Services",
	"Manufacturing",
	"Agriculture",
	"Agrovet/Animal Feed Store",
	"Transportation",
	"Beauty Salon",
	"Electronics",
	"Clothing",
	"Pharmacy",
	"Hardware Store",
	"Mobile Money Agent",
	"Other",
}

// YearsOption is one years-in-business bucket.
type YearsOption struct {
	Value string
	Label string
}

var YearsOptions = []YearsOption{
	{Value: "0-1", Label: "Less than 1 year"},
	{Value: "1-2", Label: "1-2 years"},
	{Value: "2-5", Label: "2-5 years"},
	{Value: "5-10", Label: "5-10 years"},
	{Value: "10+", Label: "More than 10 years"},
}

// Data is the raw onboarding form content.
type Data struct {
	FirstName       string
	LastName        string
	Phone           string
	BusinessName    string
	BusinessType    string
	YearsInBusiness string
}

// ErrorMap holds one message per invalid field. An empty map means valid.
type ErrorMap map[string]string

func (e ErrorMap) Error() string {
	keys := make([]string, 0, len(e))
	for k := range e {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e[k])
	}

	return "validation failed: " + strings.Join(parts, "; ")
}

// Valid reports whether no field failed.
func (e ErrorMap) Valid() bool { return len(e) == 0 }

// ValidateStep checks the fields belonging to step. Unknown steps report no errors.
func ValidateStep(step Step, d Data) ErrorMap {
	errs := ErrorMap{}

	switch step {
	case StepPersonal:
		if strings.TrimSpace(d.FirstName) == "" {
			errs[FieldFirstName] = "First name is required"
		}

		if strings.TrimSpace(d.LastName) == "" {
			errs[FieldLastName] = "Last name is required"
		}

		if strings.TrimSpace(d.Phone) == "" {
			errs[FieldPhone] = "Phone number is required"
		} else if !ValidPhone(d.Phone) {
			errs[FieldPhone] = "Please enter a valid phone number"
		}
	case StepBusiness:
		if strings.TrimSpace(d.BusinessName) == "" {
			errs[FieldBusinessName] = "Business name is required"
		}

		if !slices.Contains(BusinessTypes, d.BusinessType) {
			errs[FieldBusinessType] = "Please select a business type"
		}

		if !validYears(d.YearsInBusiness) {
			errs[FieldYearsInBusiness] = "Please select your experience"
		}
	}

	return errs
}

// ValidateAll runs every step and merges the results.
func ValidateAll(d Data) ErrorMap {
	errs := ValidateStep(StepPersonal, d)
	for k, v := range ValidateStep(StepBusiness, d) {
		errs[k] = v
	}

	return errs
}

// ValidPhone applies the lenient onboarding rule: optional leading plus and
// 10 to 13 digits once whitespace is removed.
func ValidPhone(phone string) bool {
	return phonePattern.MatchString(stripSpace(phone))
}

// ValidKenyanPhone requires the +254XXXXXXXXX form used for mobile money.
func ValidKenyanPhone(phone string) bool {
	return kenyanPhonePattern.MatchString(phone)
}

// NormalizePhone rewrites local Kenyan formats to +254XXXXXXXXX.
func NormalizePhone(value string) string {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}

		return -1
	}, value)

	switch {
	case strings.HasPrefix(digits, "254"):
		return "+" + digits
	case strings.HasPrefix(digits, "7"), strings.HasPrefix(digits, "1"):
		return "+254" + digits
	case strings.HasPrefix(digits, "0"):
		return "+254" + digits[1:]
	}

	return "+254" + digits
}

func validYears(v string) bool {
	for _, o := range YearsOptions {
		if o.Value == v {
			return true
		}
	}

	return false
}

func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}

		return r
	}, s)
}
