package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/numeraai/numera/internal/content"
)

type contentState int

const (
	contentStateForm contentState = iota
	contentStateGenerating
	contentStateResult
)

type ContentModel struct {
	CommonModel
	engine *content.Engine

	state   contentState
	req     *content.Request
	form    *huh.Form
	spinner spinner.Model
	result  content.GeneratedContent
}

func NewContentModel(engine *content.Engine) ContentModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	m := ContentModel{
		engine: engine,
		req: &content.Request{
			Platform: content.PlatformInstagram,
			Type:     content.TypePost,
			Tone:     content.ToneProfessional,
		},
		spinner: s,
	}
	m.form = m.buildForm()

	return m
}

func (m ContentModel) Title() string { return "Content Generator" }

func (m ContentModel) ShortHelp() string {
	if m.state == contentStateResult {
		return "Esc: back | n: new post | g: regenerate"
	}

	return "Esc: back | Enter: next"
}

func (m ContentModel) Init() tea.Cmd {
	return m.form.Init()
}

func (m ContentModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if generated, ok := msg.(contentGeneratedMsg); ok {
		m.state = contentStateResult
		m.result = generated.content

		return m, nil
	}

	switch m.state {
	case contentStateForm:
		if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
			return m, Back
		}

		form, cmd := m.form.Update(msg)
		if f, ok := form.(*huh.Form); ok {
			m.form = f
		}

		if m.form.State != huh.StateCompleted {
			return m, cmd
		}

		m.state = contentStateGenerating

		return m, tea.Batch(m.spinner.Tick, m.generateCmd())

	case contentStateGenerating:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)

		return m, cmd

	case contentStateResult:
		if keyMsg, ok := msg.(tea.KeyMsg); ok {
			switch keyMsg.String() {
			case "esc":
				return m, Back
			case "n":
				m.state = contentStateForm
				m.form = m.buildForm()

				return m, m.form.Init()
			case "g":
				m.state = contentStateGenerating
				return m, tea.Batch(m.spinner.Tick, m.generateCmd())
			}
		}
	}

	return m, nil
}

func (m ContentModel) View() string {
	switch m.state {
	case contentStateGenerating:
		return lipgloss.NewStyle().Padding(1, 2).Render(m.spinner.View() + " Generating content...")
	case contentStateResult:
		return m.viewResult()
	}

	return lipgloss.NewStyle().Padding(1, 2).Render(m.form.View())
}

func (m ContentModel) viewResult() string {
	r := m.result

	parts := []string{
		headerStyle.Render(fmt.Sprintf("Generated %s %s", r.Platform, r.Type)),
		"",
		panelStyle.Width(60).Render(r.Content),
		"",
		activeStyle(strings.Join(r.Hashtags, " ")),
	}

	if r.ImageURL != "" {
		parts = append(parts, "", faintStyle.Render("Image: "+r.ImageURL))
	}

	if r.Fallback {
		parts = append(parts, "", warnStyle.Render("Using the standard template for this combination."))
	}

	return lipgloss.NewStyle().Padding(1, 2).Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

func options[T ~string](opts []content.Option[T]) []huh.Option[T] {
	out := make([]huh.Option[T], 0, len(opts))
	for _, o := range opts {
		out = append(out, huh.NewOption(o.Label, o.Value))
	}

	return out
}

func (m ContentModel) buildForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[content.Platform]().
				Title("Platform").
				Options(options(content.Platforms)...).
				Value(&m.req.Platform),
			huh.NewSelect[content.ContentType]().
				Title("Content Type").
				Options(options(content.ContentTypes)...).
				Value(&m.req.Type),
			huh.NewSelect[content.Tone]().
				Title("Tone").
				Options(options(content.Tones)...).
				Value(&m.req.Tone),
		),
		huh.NewGroup(
			huh.NewText().
				Title("What do you want to post about?").
				Placeholder("New stock of dairy meal just arrived...").
				CharLimit(content.MaxDescriptionLength).
				Value(&m.req.Description).
				Validate(func(s string) error {
					r := *m.req
					r.Description = s

					return r.Validate()
				}),
		),
	).WithWidth(60).WithShowHelp(false)
}

type contentGeneratedMsg struct {
	content content.GeneratedContent
}

func (m ContentModel) generateCmd() tea.Cmd {
	req := *m.req

	return func() tea.Msg {
		ctx, cancel := StoreCtx()
		defer cancel()

		return contentGeneratedMsg{content: m.engine.Generate(ctx, req)}
	}
}
