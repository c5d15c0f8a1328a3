package view

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/numeraai/numera/internal/export"
)

const exportTimeout = 30 * time.Second

type exportState int

const (
	exportStateForm exportState = iota
	exportStateExporting
	exportStateResult
)

// exportForm holds the form bindings across model copies.
type exportForm struct {
	format export.Format
	dir    string
}

type ExportModel struct {
	CommonModel
	exportService *export.Service

	state   exportState
	form    *huh.Form
	input   *exportForm
	spinner spinner.Model
	written string
	err     error
}

func NewExportModel(svc *export.Service) ExportModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	m := ExportModel{
		exportService: svc,
		input:         &exportForm{format: export.FormatText, dir: "./reports"},
		spinner:       s,
	}
	m.form = m.buildForm()

	return m
}

func (m ExportModel) Title() string { return "Export Financial Report" }

func (m ExportModel) ShortHelp() string {
	switch m.state {
	case exportStateResult:
		return "Esc: back to menu"
	case exportStateExporting:
		return "Exporting..."
	}

	return "Esc: back | Enter: confirm"
}

func (m ExportModel) Init() tea.Cmd {
	return m.form.Init()
}

func (m ExportModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc && m.state != exportStateExporting {
		return m, Back
	}

	switch m.state {
	case exportStateForm:
		form, cmd := m.form.Update(msg)
		if f, ok := form.(*huh.Form); ok {
			m.form = f
		}

		if m.form.State != huh.StateCompleted {
			return m, cmd
		}

		m.state = exportStateExporting

		return m, tea.Batch(m.spinner.Tick, m.exportCmd(*m.input))

	case exportStateExporting:
		if result, ok := msg.(exportResultMsg); ok {
			m.state = exportStateResult
			m.err = result.err
			m.written = result.path

			return m, nil
		}

		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)

		return m, cmd
	}

	return m, nil
}

func (m ExportModel) buildForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[export.Format]().
				Title("Format").
				Options(
					huh.NewOption("Plain text (.txt)", export.FormatText),
					huh.NewOption("Excel workbook (.xlsx)", export.FormatXLSX),
				).
				Value(&m.input.format),
			huh.NewInput().
				Title("Output directory").
				Description("Created if it doesn't exist").
				Placeholder("./reports").
				Value(&m.input.dir),
		),
	).WithWidth(50).WithShowHelp(false)
}

func (m ExportModel) View() string {
	style := lipgloss.NewStyle().Padding(1)

	switch m.state {
	case exportStateForm:
		return style.Render(m.form.View())
	case exportStateExporting:
		return style.Render(fmt.Sprintf("%s Building report...", m.spinner.View()))
	}

	if m.err != nil {
		return style.Render(errStyle.Render(fmt.Sprintf("Error: %v", m.err)))
	}

	return style.Render(lipgloss.JoinVertical(lipgloss.Left,
		okStyle.Bold(true).Render("Report saved"),
		"",
		m.written,
	))
}

type exportResultMsg struct {
	path string
	err  error
}

func (m ExportModel) exportCmd(in exportForm) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), exportTimeout)
		defer cancel()

		dir := in.dir
		if dir == "" {
			dir = "."
		}

		if err := os.MkdirAll(dir, 0o755); err != nil {
			return exportResultMsg{err: fmt.Errorf("creating directory: %w", err)}
		}

		tmp, err := os.CreateTemp(dir, "report-*")
		if err != nil {
			return exportResultMsg{err: err}
		}

		name, err := m.exportService.Export(ctx, in.format, tmp)
		if cerr := tmp.Close(); err == nil {
			err = cerr
		}

		if err != nil {
			_ = os.Remove(tmp.Name())
			return exportResultMsg{err: err}
		}

		path := filepath.Join(dir, name)
		if err := os.Rename(tmp.Name(), path); err != nil {
			return exportResultMsg{err: err}
		}

		return exportResultMsg{path: path}
	}
}
