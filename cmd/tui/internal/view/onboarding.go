package view

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/numeraai/numera/internal/onboarding"
	"github.com/numeraai/numera/internal/validation"
)

// OnboardedMsg is sent once the profile has been saved.
type OnboardedMsg struct {
	Profile onboarding.Profile
}

type OnboardingModel struct {
	CommonModel
	svc  *onboarding.Service
	flow *onboarding.Flow

	// values are the form bindings keyed by field name. They are pointers so
	// they outlive model copies.
	values map[string]*string
	form   *huh.Form
	saving bool
	err    error
}

var onboardingFields = []string{
	validation.FieldFirstName,
	validation.FieldLastName,
	validation.FieldPhone,
	validation.FieldBusinessName,
	validation.FieldBusinessType,
	validation.FieldYearsInBusiness,
}

func NewOnboardingModel(svc *onboarding.Service) OnboardingModel {
	values := make(map[string]*string, len(onboardingFields))
	for _, f := range onboardingFields {
		values[f] = new(string)
	}

	m := OnboardingModel{svc: svc, flow: onboarding.NewFlow(), values: values}
	m.form = m.buildForm()

	return m
}

func (m OnboardingModel) Title() string { return "Welcome to NumeraAI" }

func (m OnboardingModel) ShortHelp() string {
	if m.flow.State() == onboarding.StateBusiness {
		return "Enter: next | Esc: back to personal details | Ctrl+C: quit"
	}

	return "Enter: next | Shift+Tab: previous field | Ctrl+C: quit"
}

func (m OnboardingModel) Init() tea.Cmd {
	return m.form.Init()
}

func (m OnboardingModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if saved, ok := msg.(onboardingSavedMsg); ok {
		m.saving = false
		if saved.err != nil {
			// The flow finished before the write failed; replay it so the
			// owner lands back on the business step with their answers.
			m.err = saved.err
			m.flow.Reset()
			m.sync()
			m.flow.Next()

			return m.rebuild()
		}

		return m, func() tea.Msg { return OnboardedMsg{Profile: saved.profile} }
	}

	if m.saving {
		return m, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc && m.flow.State() == onboarding.StateBusiness {
		m.sync()
		m.flow.Back()
		m.err = nil

		return m.rebuild()
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	m.sync()

	switch m.flow.State() {
	case onboarding.StatePersonal:
		m.err = nil
		if !m.flow.Next() {
			m.err = m.flow.Errors()
		}

		return m.rebuild()

	case onboarding.StateBusiness:
		p, err := m.flow.Complete()
		if err != nil {
			m.err = err
			return m.rebuild()
		}

		m.saving = true
		m.err = nil

		return m, m.saveCmd(p)
	}

	return m, nil
}

// sync pushes every bound value into the flow.
func (m OnboardingModel) sync() {
	for _, f := range onboardingFields {
		m.flow.Set(f, *m.values[f])
	}
}

func (m OnboardingModel) rebuild() (tea.Model, tea.Cmd) {
	m.form = m.buildForm()
	return m, m.form.Init()
}

func (m OnboardingModel) View() string {
	header := headerStyle.Render("Karibu! Let's set up your business profile.")

	body := m.form.View()
	if m.saving {
		body = "Saving your profile..."
	}

	parts := []string{header, "", body}
	if m.err != nil {
		parts = append(parts, "", errStyle.Render(fmt.Sprintf("Error: %v", m.err)))
	}

	return lipgloss.NewStyle().Padding(1, 2).Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

func (m OnboardingModel) buildForm() *huh.Form {
	if m.flow.State() == onboarding.StateBusiness {
		years := make([]huh.Option[string], 0, len(validation.YearsOptions))
		for _, y := range validation.YearsOptions {
			years = append(years, huh.NewOption(y.Label, y.Value))
		}

		return huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Business Name").
					Value(m.values[validation.FieldBusinessName]).
					Validate(m.check(validation.FieldBusinessName)),
				huh.NewSelect[string]().
					Title("Business Type").
					Options(huh.NewOptions(validation.BusinessTypes...)...).
					Value(m.values[validation.FieldBusinessType]).
					Validate(m.check(validation.FieldBusinessType)),
				huh.NewSelect[string]().
					Title("Years in Business").
					Options(years...).
					Value(m.values[validation.FieldYearsInBusiness]).
					Validate(m.check(validation.FieldYearsInBusiness)),
			).Title("Step 2 of 2: Business Details"),
		).WithWidth(50).WithShowHelp(false)
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("First Name").
				Value(m.values[validation.FieldFirstName]).
				Validate(m.check(validation.FieldFirstName)),
			huh.NewInput().
				Title("Last Name").
				Value(m.values[validation.FieldLastName]).
				Validate(m.check(validation.FieldLastName)),
			huh.NewInput().
				Title("Phone Number").
				Placeholder("+254 712 345 678").
				Value(m.values[validation.FieldPhone]).
				Validate(m.check(validation.FieldPhone)),
		).Title("Step 1 of 2: Personal Information"),
	).WithWidth(50).WithShowHelp(false)
}

// check records the pending value in the flow and reports that field's
// message.
func (m OnboardingModel) check(field string) func(string) error {
	return func(value string) error {
		m.flow.Set(field, value)

		if msg := m.flow.Check(field); msg != "" {
			return errors.New(msg)
		}

		return nil
	}
}

type onboardingSavedMsg struct {
	profile onboarding.Profile
	err     error
}

func (m OnboardingModel) saveCmd(p onboarding.Profile) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := StoreCtx()
		defer cancel()

		saved, err := m.svc.Complete(ctx, p)

		return onboardingSavedMsg{profile: saved, err: err}
	}
}
