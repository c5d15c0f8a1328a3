package onboarding

import (
	"errors"
	"maps"
	"strings"

	"github.com/numeraai/numera/internal/validation"
)

// ErrIncomplete is returned when completion is attempted before both steps pass.
var ErrIncomplete = errors.New("onboarding incomplete")

// Profile is the persisted result of a completed onboarding.
type Profile struct {
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	Phone           string `json:"phone"`
	BusinessName    string `json:"businessName"`
	BusinessType    string `json:"businessType"`
	YearsInBusiness string `json:"yearsInBusiness"`
}

func (p Profile) Data() validation.Data {
	return validation.Data{
		FirstName:       p.FirstName,
		LastName:        p.LastName,
		Phone:           p.Phone,
		BusinessName:    p.BusinessName,
		BusinessType:    p.BusinessType,
		YearsInBusiness: p.YearsInBusiness,
	}
}

// FullName joins first and last name.
func (p Profile) FullName() string {
	return strings.TrimSpace(p.FirstName + " " + p.LastName)
}

type State int

const (
	StatePersonal State = iota + 1
	StateBusiness
	StateComplete
)

func (s State) String() string {
	switch s {
	case StatePersonal:
		return "personal"
	case StateBusiness:
		return "business"
	case StateComplete:
		return "complete"
	}

	return "unknown"
}

// Flow is the two-step onboarding wizard. It is not safe for concurrent use.
type Flow struct {
	state   State
	profile Profile
	errors  validation.ErrorMap
}

func NewFlow() *Flow {
	return &Flow{state: StatePersonal, errors: validation.ErrorMap{}}
}

func (f *Flow) State() State { return f.state }
func (f *Flow) Profile() Profile { return f.profile }
func (f *Flow) Errors() validation.ErrorMap { return maps.Clone(f.errors) }

// Set updates one field by its JSON name and clears that field's error.
// A completed flow is frozen.
func (f *Flow) Set(field, value string) {
	if f.state == StateComplete {
		return
	}

	switch field {
	case validation.FieldFirstName:
		f.profile.FirstName = value
	case validation.FieldLastName:
		f.profile.LastName = value
	case validation.FieldPhone:
		f.profile.Phone = value
	case validation.FieldBusinessName:
		f.profile.BusinessName = value
	case validation.FieldBusinessType:
		f.profile.BusinessType = value
	case validation.FieldYearsInBusiness:
		f.profile.YearsInBusiness = value
	default:
		return
	}

	delete(f.errors, field)
}

// Next validates the personal step and advances on success.
func (f *Flow) Next() bool {
	if f.state != StatePersonal {
		return false
	}

	f.errors = validation.ValidateStep(validation.StepPersonal, f.profile.Data())
	if !f.errors.Valid() {
		return false
	}

	f.state = StateBusiness

	return true
}

// Check reports the message for field against the current data, without
// touching the flow's recorded errors. Empty means valid.
func (f *Flow) Check(field string) string {
	return validation.ValidateAll(f.profile.Data())[field]
}

// Back returns to the personal step keeping entered data.
func (f *Flow) Back() {
	if f.state == StateBusiness {
		f.state = StatePersonal
		f.errors = validation.ErrorMap{}
	}
}

// Complete validates both steps, since personal fields may have changed after
// Next. A personal error sends the flow back to the personal step. On success
// the flow is finished and the profile is returned.
func (f *Flow) Complete() (Profile, error) {
	if f.state != StateBusiness {
		return Profile{}, ErrIncomplete
	}

	f.errors = validation.ValidateAll(f.profile.Data())
	if !f.errors.Valid() {
		if !validation.ValidateStep(validation.StepPersonal, f.profile.Data()).Valid() {
			f.state = StatePersonal
		}

		return Profile{}, maps.Clone(f.errors)
	}

	f.state = StateComplete

	return f.profile, nil
}

// Reset discards all data and starts over.
func (f *Flow) Reset() {
	f.state = StatePersonal
	f.profile = Profile{}
	f.errors = validation.ErrorMap{}
}
