package validation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/numeraai/numera/internal/validation"
)

func TestValidateStep_Personal(t *testing.T) {
	type testCase struct {
		name       string
		data       validation.Data
		wantFields []string
	}

	tests := []testCase{
		{
			name:       "Valid",
			data:       validation.Data{FirstName: "Grace", LastName: "Wanjiku", Phone: "+254712345678"},
			wantFields: nil,
		},
		{
			name:       "AllMissing",
			data:       validation.Data{},
			wantFields: []string{validation.FieldFirstName, validation.FieldLastName, validation.FieldPhone},
		},
		{
			name:       "BlankNames",
			data:       validation.Data{FirstName: "  ", LastName: "\t", Phone: "0712345678"},
			wantFields: []string{validation.FieldFirstName, validation.FieldLastName},
		},
		{
			name:       "BadPhone",
			data:       validation.Data{FirstName: "Grace", LastName: "Wanjiku", Phone: "12345"},
			wantFields: []string{validation.FieldPhone},
		},
		{
			name:       "BusinessFieldsIgnored",
			data:       validation.Data{FirstName: "Grace", LastName: "Wanjiku", Phone: "0712 345 678"},
			wantFields: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := validation.ValidateStep(validation.StepPersonal, tt.data)

			assert.Len(t, errs, len(tt.wantFields))

			for _, f := range tt.wantFields {
				assert.Contains(t, errs, f)
			}
		})
	}
}

func TestValidateStep_Business(t *testing.T) {
	errs := validation.ValidateStep(validation.StepBusiness, validation.Data{
		BusinessName:    "Grace Store",
		BusinessType:    "Retail Store",
		YearsInBusiness: "2-5",
	})
	assert.True(t, errs.Valid())

	errs = validation.ValidateStep(validation.StepBusiness, validation.Data{
		BusinessName:    "",
		BusinessType:    "Spaceship Dealer",
		YearsInBusiness: "100",
	})
	assert.Equal(t, "Business name is required", errs[validation.FieldBusinessName])
	assert.Equal(t, "Please select a business type", errs[validation.FieldBusinessType])
	assert.Equal(t, "Please select your experience", errs[validation.FieldYearsInBusiness])
}

func TestValidateStep_UnknownStep(t *testing.T) {
	assert.Empty(t, validation.ValidateStep(validation.Step(7), validation.Data{}))
}

func TestValidateStep_DoesNotMutate(t *testing.T) {
	data := validation.Data{FirstName: " Grace ", LastName: "", Phone: " +254 712 345 678 "}
	before := data

	_ = validation.ValidateStep(validation.StepPersonal, data)
	_ = validation.ValidateStep(validation.StepBusiness, data)

	assert.Equal(t, before, data)
}

func TestValidPhone(t *testing.T) {
	valid := []string{
		"+254712345678",
		"0712345678",
		"254712345678",
		"+1234567890123",
		"0712 345 678",
		" +254 712 345 678 ",
	}
	for _, p := range valid {
		assert.True(t, validation.ValidPhone(p), p)

		errs := validation.ValidateStep(validation.StepPersonal, validation.Data{FirstName: "a", LastName: "b", Phone: p})
		assert.NotContains(t, errs, validation.FieldPhone, p)
	}

	invalid := []string{
		"071234567",
		"+12345678901234",
		"07123abc78",
		"++254712345678",
		"254-712-345-678",
	}
	for _, p := range invalid {
		assert.False(t, validation.ValidPhone(p), p)

		errs := validation.ValidateStep(validation.StepPersonal, validation.Data{FirstName: "a", LastName: "b", Phone: p})
		assert.Contains(t, errs, validation.FieldPhone, p)
	}
}

func TestNormalizePhone(t *testing.T) {
	tests := map[string]string{
		"0712345678":      "+254712345678",
		"712345678":       "+254712345678",
		"110345678":       "+254110345678",
		"254712345678":    "+254712345678",
		"+254 712 345 678": "+254712345678",
		"(0)712-345-678":  "+254712345678",
	}

	for in, want := range tests {
		got := validation.NormalizePhone(in)
		assert.Equal(t, want, got, in)
		assert.True(t, validation.ValidKenyanPhone(got), got)
	}

	assert.False(t, validation.ValidKenyanPhone("+25471234567"))
}

func TestErrorMap_Error(t *testing.T) {
	errs := validation.ErrorMap{"phone": "bad", "firstName": "missing"}
	assert.Equal(t, "validation failed: firstName: missing; phone: bad", errs.Error())
}
