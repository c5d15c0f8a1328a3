package view

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Timeframe is a preset or custom period for expense listings.
type Timeframe int

const (
	TimeframeToday Timeframe = iota
	TimeframeThisWeek
	TimeframeThisMonth
	TimeframeAll
	TimeframeCustom
)

func (t Timeframe) String() string {
	switch t {
	case TimeframeToday:
		return "Today"
	case TimeframeThisWeek:
		return "This Week"
	case TimeframeThisMonth:
		return "This Month"
	case TimeframeAll:
		return "All Time"
	case TimeframeCustom:
		return "Custom Range"
	}

	return "Unknown"
}

const inputDateLayout = "2/1/2006"

// Range returns the inclusive bounds of a preset relative to now. Weeks
// start on Monday.
func (t Timeframe) Range(now time.Time) (time.Time, time.Time) {
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	switch t {
	case TimeframeThisWeek:
		offset := (int(now.Weekday()) + 6) % 7
		return day.AddDate(0, 0, -offset), now
	case TimeframeThisMonth:
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()), now
	}

	return day, now
}

// TimeframeSelectedMsg carries the chosen period. Start and End are zero
// when All is set.
type TimeframeSelectedMsg struct {
	Start time.Time
	End   time.Time
	All   bool
	Label string
}

// Contains reports whether t falls inside the selected period.
func (m TimeframeSelectedMsg) Contains(t time.Time) bool {
	if m.All {
		return true
	}

	return !t.Before(m.Start) && !t.After(m.End)
}

type timeframeState int

const (
	timeframeStateSelect timeframeState = iota
	timeframeStateCustom
)

// TimeframePicker lets the user pick a preset or type a custom range.
type TimeframePicker struct {
	state    timeframeState
	selected Timeframe

	startInput textinput.Model
	endInput   textinput.Model
	focusIndex int

	err error
}

func NewTimeframePicker(initial Timeframe) TimeframePicker {
	si := textinput.New()
	si.Placeholder = "DD/MM/YYYY"
	si.CharLimit = 10
	si.Width = 12
	si.Prompt = "From: "

	ei := textinput.New()
	ei.Placeholder = "DD/MM/YYYY"
	ei.CharLimit = 10
	ei.Width = 12
	ei.Prompt = "To:   "

	return TimeframePicker{selected: initial, startInput: si, endInput: ei}
}

func (m TimeframePicker) Update(msg tea.Msg) (TimeframePicker, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)

	switch {
	case ok && m.state == timeframeStateSelect:
		return m.updateSelect(keyMsg)
	case ok && m.state == timeframeStateCustom:
		return m.updateCustom(keyMsg)
	}

	return m, nil
}

func (m TimeframePicker) updateSelect(msg tea.KeyMsg) (TimeframePicker, tea.Cmd) {
	switch msg.Type {
	case tea.KeyUp:
		if m.selected > TimeframeToday {
			m.selected--
		}
	case tea.KeyDown:
		if m.selected < TimeframeCustom {
			m.selected++
		}
	case tea.KeyEnter:
		switch m.selected {
		case TimeframeCustom:
			m.state = timeframeStateCustom
			m.focusIndex = 0
			m.startInput.Focus()

			return m, textinput.Blink
		case TimeframeAll:
			return m, selected(TimeframeSelectedMsg{All: true, Label: m.selected.String()})
		}

		start, end := m.selected.Range(time.Now())

		return m, selected(TimeframeSelectedMsg{Start: start, End: end, Label: m.selected.String()})
	}

	return m, nil
}

func (m TimeframePicker) updateCustom(msg tea.KeyMsg) (TimeframePicker, tea.Cmd) {
	switch msg.String() {
	case "tab", "shift+tab":
		m.focusIndex = 1 - m.focusIndex
		m.startInput.Blur()
		m.endInput.Blur()

		if m.focusIndex == 0 {
			m.startInput.Focus()
		} else {
			m.endInput.Focus()
		}

		return m, textinput.Blink

	case "enter":
		start, end, err := parseRange(m.startInput.Value(), m.endInput.Value())
		if err != nil {
			m.err = err
			return m, nil
		}

		m.err = nil
		label := fmt.Sprintf("%s - %s", FormatDate(start), FormatDate(end))

		return m, selected(TimeframeSelectedMsg{Start: start, End: end, Label: label})

	case "esc":
		m.state = timeframeStateSelect
		m.err = nil

		return m, nil
	}

	var cmd tea.Cmd
	if m.focusIndex == 0 {
		m.startInput, cmd = m.startInput.Update(msg)
	} else {
		m.endInput, cmd = m.endInput.Update(msg)
	}

	return m, cmd
}

func parseRange(from, to string) (time.Time, time.Time, error) {
	start, err := time.ParseInLocation(inputDateLayout, from, time.Local)
	if err != nil {
		return time.Time{}, time.Time{}, errors.New("invalid start date (DD/MM/YYYY)")
	}

	end, err := time.ParseInLocation(inputDateLayout, to, time.Local)
	if err != nil {
		return time.Time{}, time.Time{}, errors.New("invalid end date (DD/MM/YYYY)")
	}

	if end.Before(start) {
		return time.Time{}, time.Time{}, errors.New("end date is before start date")
	}

	return start, end.Add(24*time.Hour - time.Nanosecond), nil
}

func selected(msg TimeframeSelectedMsg) tea.Cmd {
	return func() tea.Msg { return msg }
}

func (m TimeframePicker) View() string {
	errStr := ""
	if m.err != nil {
		errStr = "\n\n" + errStyle.Render(fmt.Sprintf("Error: %v", m.err))
	}

	if m.state == timeframeStateCustom {
		return fmt.Sprintf(
			"Enter a date range:\n\n%s\n%s\n\n(Enter to confirm, Tab to switch, Esc to go back)%s",
			m.startInput.View(),
			m.endInput.View(),
			errStr,
		)
	}

	s := "Show expenses for:\n\n"
	for t := TimeframeToday; t <= TimeframeCustom; t++ {
		cursor := " "
		if m.selected == t {
			cursor = ">"
		}

		s += fmt.Sprintf("%s %s\n", cursor, t)
	}

	return s + "\n(Enter to select, Esc to go back)" + errStr
}

// IsSelecting reports whether the picker shows the preset list.
func (m TimeframePicker) IsSelecting() bool {
	return m.state == timeframeStateSelect
}
