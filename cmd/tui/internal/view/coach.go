package view

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/numeraai/numera/internal/coach"
)

// visibleMessages is how much of the chat log is drawn.
const visibleMessages = 12

type CoachModel struct {
	CommonModel
	conv *coach.Conversation

	input   textinput.Model
	spinner spinner.Model
	lang    coach.Language
	status  string

	// cancel stops the reply in flight. It is a pointer so every copy of the
	// model sees the same func.
	cancel *context.CancelFunc
}

func NewCoachModel(conv *coach.Conversation, lang coach.Language) CoachModel {
	ti := textinput.New()
	ti.Placeholder = "Ask about pricing, stock, M-Pesa..."
	ti.CharLimit = 500
	ti.Width = 60
	ti.Focus()

	s := spinner.New()
	s.Spinner = spinner.Ellipsis

	return CoachModel{
		conv:    conv,
		input:   ti,
		spinner: s,
		lang:    lang,
		cancel:  new(context.CancelFunc),
	}
}

func (m CoachModel) Title() string { return "AI Business Coach" }

func (m CoachModel) ShortHelp() string {
	return "Enter: send | 1-4: quick action (empty input) | Ctrl+L: language | Esc: back"
}

func (m CoachModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick)
}

func (m CoachModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case coachReplyMsg:
		switch {
		case errors.Is(msg.err, context.Canceled):
			m.status = "Reply cancelled."
		case msg.err != nil:
			m.status = fmt.Sprintf("Error: %v", msg.err)
		default:
			m.status = ""
		}

		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)

		return m, cmd

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			if m.conv.Typing() && *m.cancel != nil {
				(*m.cancel)()
				return m, nil
			}

			return m, Back
		case "ctrl+l":
			if m.lang == coach.Swahili {
				m.lang = coach.English
			} else {
				m.lang = coach.Swahili
			}

			return m, nil
		case "enter":
			text := strings.TrimSpace(m.input.Value())
			if text == "" {
				return m, nil
			}

			m.input.SetValue("")

			return m, m.sendCmd(text, false)
		case "1", "2", "3", "4":
			if m.input.Value() != "" {
				break
			}

			if action, ok := coach.FindQuickAction(msg.String()); ok {
				return m, m.sendCmd(action.Query, true)
			}
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)

	return m, cmd
}

func (m CoachModel) View() string {
	msgs := m.conv.Messages()
	if len(msgs) > visibleMessages {
		msgs = msgs[len(msgs)-visibleMessages:]
	}

	bot := lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	user := lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Align(lipgloss.Right)

	var b strings.Builder

	for _, msg := range msgs {
		stamp := faintStyle.Render(msg.Timestamp.Format("15:04"))
		if msg.IsBot {
			fmt.Fprintf(&b, "%s %s\n\n", stamp, bot.Width(70).Render(msg.Content))
		} else {
			fmt.Fprintf(&b, "%s\n\n", user.Width(76).Render(msg.Content+" "+stamp))
		}
	}

	if m.conv.Typing() {
		b.WriteString(faintStyle.Render("Coach is typing"+m.spinner.View()) + "\n\n")
	}

	actions := make([]string, 0, len(coach.QuickActions))
	for _, a := range coach.QuickActions {
		actions = append(actions, fmt.Sprintf("[%s] %s", a.ID, a.Label))
	}

	b.WriteString(faintStyle.Render(strings.Join(actions, "  ")) + "\n")
	fmt.Fprintf(&b, "%s %s\n", activeStyle(strings.ToUpper(string(m.lang))), m.input.View())

	if m.status != "" {
		b.WriteString("\n" + faintStyle.Render(m.status))
	}

	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}

type coachReplyMsg struct {
	err error
}

func (m CoachModel) sendCmd(text string, quick bool) tea.Cmd {
	ctx, cancel := context.WithCancel(context.Background())
	*m.cancel = cancel

	lang := m.lang

	return func() tea.Msg {
		defer cancel()

		var err error
		if quick {
			_, err = m.conv.QuickAction(ctx, text, lang)
		} else {
			_, err = m.conv.Send(ctx, text, lang)
		}

		return coachReplyMsg{err: err}
	}
}
