package view

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/numeraai/numera/internal/kv"
	"github.com/numeraai/numera/internal/onboarding"
	"github.com/numeraai/numera/internal/validation"
)

func TestOnboardingModel_DrivesFlow(t *testing.T) {
	m := NewOnboardingModel(onboarding.NewService(kv.NewMemory()))
	assert.Equal(t, onboarding.StatePersonal, m.flow.State())

	assert.EqualError(t, m.check(validation.FieldPhone)("abc"), "Please enter a valid phone number")
	assert.Equal(t, "abc", m.flow.Profile().Phone)

	answers := map[string]string{
		validation.FieldFirstName:       "Grace",
		validation.FieldLastName:        "Wanjiku",
		validation.FieldPhone:           "+254712345678",
		validation.FieldBusinessName:    "Grace Store",
		validation.FieldBusinessType:    "Retail Store",
		validation.FieldYearsInBusiness: "2-5",
	}
	for field, v := range answers {
		*m.values[field] = v
	}

	m.sync()
	require.True(t, m.flow.Next())

	model, _ := m.rebuild()
	m = model.(OnboardingModel)
	assert.Contains(t, m.ShortHelp(), "Esc")

	model, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = model.(OnboardingModel)
	assert.Equal(t, onboarding.StatePersonal, m.flow.State())
	assert.Equal(t, "Grace", m.flow.Profile().FirstName)

	require.True(t, m.flow.Next())

	*m.values[validation.FieldFirstName] = ""
	m.sync()

	_, err := m.flow.Complete()
	assert.Error(t, err)
	assert.Equal(t, onboarding.StatePersonal, m.flow.State())
}
