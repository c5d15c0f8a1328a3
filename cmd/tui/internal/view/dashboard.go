package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/numeraai/numera/internal/dashboard"
	"github.com/numeraai/numera/internal/finance"
	"github.com/numeraai/numera/internal/sales"
)

type DashboardModel struct {
	CommonModel
	svc       *dashboard.Service
	sales     *sales.Service
	goals     *finance.Service
	statement sales.StatementSource

	summary *dashboard.Summary
	goalSet []finance.Goal
	spinner spinner.Model
	loading bool
	status  string
	err     error
}

func NewDashboardModel(svc *dashboard.Service, salesSvc *sales.Service, goals *finance.Service, statement sales.StatementSource) DashboardModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	return DashboardModel{
		svc:       svc,
		sales:     salesSvc,
		goals:     goals,
		statement: statement,
		spinner:   s,
		loading:   true,
	}
}

func (m DashboardModel) Title() string { return "Dashboard" }

func (m DashboardModel) ShortHelp() string {
	return "Esc: back | r: refresh M-Pesa"
}

func (m DashboardModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.loadCmd())
}

func (m DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case dashboardLoadedMsg:
		m.loading = false
		m.err = msg.err
		m.summary = msg.summary
		m.goalSet = msg.goals

		return m, nil

	case refreshedMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Refresh failed: %v", msg.err)
			return m, nil
		}

		m.status = fmt.Sprintf("%d new M-Pesa payments", msg.added)

		return m, m.loadCmd()

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, Back
		case "r":
			m.status = "Refreshing M-Pesa statement..."
			return m, m.refreshCmd()
		}

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}

		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)

		return m, cmd
	}

	return m, nil
}

func (m DashboardModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render(m.spinner.View() + " Loading your business overview...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(errStyle.Render(fmt.Sprintf("Error: %v", m.err)))
	}

	s := m.summary

	var b strings.Builder

	b.WriteString(headerStyle.Render(s.Greeting) + "\n")
	b.WriteString(faintStyle.Render("Here's how your business is doing today") + "\n\n")

	fmt.Fprintf(&b, "Daily Sales    %s  (%d transactions)\n", finance.FormatKES(s.DailySales), s.Transactions)
	fmt.Fprintf(&b, "Cash In        %s\n", okStyle.Render(finance.FormatKES(s.CashIn)))
	fmt.Fprintf(&b, "Cash Out       %s\n", errStyle.Render(finance.FormatKES(s.CashOut)))
	fmt.Fprintf(&b, "Weekly Growth  +%.1f%%\n\n", s.WeeklyGrowth)

	b.WriteString(headerStyle.Render("Top Products") + "\n")

	for _, p := range s.TopProducts {
		fmt.Fprintf(&b, "  %-20s %3d sold  %s\n", p.Name, p.Sold, finance.FormatKES(p.Revenue))
	}

	if len(s.LowStock) > 0 {
		b.WriteString("\n" + warnStyle.Render("Low Stock") + "\n")

		for _, a := range s.LowStock {
			fmt.Fprintf(&b, "  %-20s %d left (min %d)\n", a.Name, a.Stock, a.Threshold)
		}
	}

	if len(m.goalSet) > 0 {
		b.WriteString("\n" + headerStyle.Render("Goals") + "\n")

		for _, g := range m.goalSet {
			fmt.Fprintf(&b, "  %-28s %s %3.0f%%\n", g.Title, progressBar(g.Progress(), 20), g.Progress())
		}
	}

	if m.status != "" {
		b.WriteString("\n" + faintStyle.Render(m.status))
	}

	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}

func progressBar(percent float64, width int) string {
	filled := int(percent / 100 * float64(width))

	return activeStyle(strings.Repeat("█", filled)) + faintStyle.Render(strings.Repeat("░", width-filled))
}

type dashboardLoadedMsg struct {
	summary *dashboard.Summary
	goals   []finance.Goal
	err     error
}

func (m DashboardModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := StoreCtx()
		defer cancel()

		summary, err := m.svc.Summary(ctx)
		if err != nil {
			return dashboardLoadedMsg{err: err}
		}

		goals, err := m.goals.Goals(ctx)

		return dashboardLoadedMsg{summary: summary, goals: goals, err: err}
	}
}

type refreshedMsg struct {
	added int
	err   error
}

func (m DashboardModel) refreshCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := StoreCtx()
		defer cancel()

		added, err := m.sales.Refresh(ctx, m.statement)

		return refreshedMsg{added: len(added), err: err}
	}
}
