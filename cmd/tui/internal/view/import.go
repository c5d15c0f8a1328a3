package view

import (
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/filepicker"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/numeraai/numera/internal/finance"
	"github.com/numeraai/numera/internal/importer"
	"github.com/numeraai/numera/internal/sales"
)

type importState int

const (
	importStateProvider importState = iota
	importStateFilePick
	importStateImporting
	importStateResult
)

type ImportModel struct {
	CommonModel
	sales         *sales.Service
	importService *importer.Service

	state          importState
	filePicker     filepicker.Model
	providers      []importer.Provider
	providerCursor int
	provider       importer.Provider

	added   []sales.Sale
	skipped int
	err     error
}

func NewImportModel(salesSvc *sales.Service, impSvc *importer.Service) ImportModel {
	fp := filepicker.New()
	fp.CurrentDirectory, _ = os.Getwd()
	fp.AllowedTypes = []string{".csv"}
	fp.DirAllowed = false
	fp.FileAllowed = true
	fp.SetHeight(15)

	return ImportModel{
		sales:         salesSvc,
		importService: impSvc,
		filePicker:    fp,
		providers:     []importer.Provider{importer.ProviderMPesa},
	}
}

func (m ImportModel) Title() string { return "Import M-Pesa Statement" }

func (m ImportModel) ShortHelp() string {
	return "Esc: back | Enter: select"
}

func (m ImportModel) Init() tea.Cmd {
	return m.filePicker.Init()
}

func (m ImportModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyEsc {
			return m.handleEsc()
		}

		if m.state == importStateProvider {
			return m.updateProvider(msg)
		}

	case importResultMsg:
		m.state = importStateResult
		m.err = msg.err
		m.added = msg.added
		m.skipped = msg.skipped

		return m, nil
	}

	if m.state != importStateFilePick {
		return m, nil
	}

	var cmd tea.Cmd
	m.filePicker, cmd = m.filePicker.Update(msg)

	if didSelect, path := m.filePicker.DidSelectFile(msg); didSelect {
		m.state = importStateImporting
		return m, m.importCmd(path)
	}

	return m, cmd
}

func (m ImportModel) handleEsc() (tea.Model, tea.Cmd) {
	switch m.state {
	case importStateFilePick, importStateResult:
		m.state = importStateProvider
		m.err = nil
		m.added = nil

		return m, nil
	}

	return m, Back
}

func (m ImportModel) updateProvider(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyUp:
		if m.providerCursor > 0 {
			m.providerCursor--
		}
	case tea.KeyDown:
		if m.providerCursor < len(m.providers)-1 {
			m.providerCursor++
		}
	case tea.KeyEnter:
		m.provider = m.providers[m.providerCursor]
		m.state = importStateFilePick

		return m, m.filePicker.Init()
	}

	return m, nil
}

func (m ImportModel) View() string {
	style := lipgloss.NewStyle().Padding(1)

	switch m.state {
	case importStateProvider:
		s := "Statement source:\n\n"

		for i, p := range m.providers {
			cursor := "  "
			if i == m.providerCursor {
				cursor = activeStyle("> ")
			}

			s += fmt.Sprintf("%s%s\n", cursor, providerName(p))
		}

		return style.Render(s)

	case importStateFilePick:
		return style.Render(fmt.Sprintf("Select %s CSV statement:\n\n%s", providerName(m.provider), m.filePicker.View()))

	case importStateImporting:
		return style.Render("Reading statement...")

	case importStateResult:
		return style.Render(m.viewResult())
	}

	return ""
}

func (m ImportModel) viewResult() string {
	if m.err != nil {
		return errStyle.Render(fmt.Sprintf("Error: %v", m.err)) + "\n\n(Esc to go back)"
	}

	lines := []string{
		okStyle.Render(fmt.Sprintf("Added %d payments, skipped %d already recorded.", len(m.added), m.skipped)),
		"",
	}

	for _, s := range m.added {
		lines = append(lines, fmt.Sprintf("  %s  %-10s %s", s.Timestamp.Format("2/1 15:04"), finance.FormatKES(s.Total), s.Customer))
	}

	lines = append(lines, "", "(Esc to go back)")

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func providerName(p importer.Provider) string {
	if p == importer.ProviderMPesa {
		return "M-Pesa"
	}

	return string(p)
}

type importResultMsg struct {
	added   []sales.Sale
	skipped int
	err     error
}

func (m ImportModel) importCmd(path string) tea.Cmd {
	provider := m.provider

	return func() tea.Msg {
		f, err := os.Open(path)
		if err != nil {
			return importResultMsg{err: err}
		}
		defer f.Close()

		entries, err := m.importService.Import(provider, f)
		if err != nil {
			return importResultMsg{err: err}
		}

		added := m.sales.Merge(entries)

		return importResultMsg{added: added, skipped: len(entries) - len(added)}
	}
}
