package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"

	"github.com/numeraai/numera/cmd/tui/internal/view"
	"github.com/numeraai/numera/internal/coach"
	"github.com/numeraai/numera/internal/config"
	"github.com/numeraai/numera/internal/content"
	"github.com/numeraai/numera/internal/dashboard"
	"github.com/numeraai/numera/internal/export"
	"github.com/numeraai/numera/internal/finance"
	financeStore "github.com/numeraai/numera/internal/finance/store"
	"github.com/numeraai/numera/internal/imagegen"
	"github.com/numeraai/numera/internal/importer"
	"github.com/numeraai/numera/internal/inventory"
	"github.com/numeraai/numera/internal/matching"
	matchingStore "github.com/numeraai/numera/internal/matching/store"
	"github.com/numeraai/numera/internal/onboarding"
	"github.com/numeraai/numera/internal/sales"
	"github.com/numeraai/numera/internal/storage"
)

type services struct {
	onboarding *onboarding.Service
	finance    *finance.Service
	inventory  *inventory.Service
	sales      *sales.Service
	dashboard  *dashboard.Service
	export     *export.Service
	importer   *importer.Service
	content    *content.Engine
	coach      *coach.Conversation
	statement  sales.StatementSource
	language   coach.Language
}

type model struct {
	appName string
	svc     services
	profile onboarding.Profile

	currentView View
	active      tea.Model
	width       int
	height      int
	status      string
}

type View int

const (
	ViewMenu View = iota
	ViewOnboarding
	ViewDashboard
	ViewContent
	ViewCoach
	ViewExpenses
	ViewInventory
	ViewImport
	ViewExport
)

type menuEntry struct {
	key   string
	label string
	view  View
}

var menu = []menuEntry{
	{"1", "Dashboard", ViewDashboard},
	{"2", "Create Marketing Content", ViewContent},
	{"3", "Business Coach", ViewCoach},
	{"4", "Expenses", ViewExpenses},
	{"5", "Inventory", ViewInventory},
	{"6", "Import M-Pesa Statement", ViewImport},
	{"7", "Export Financial Report", ViewExport},
}

func newServices(cfg *config.Config, st *storage.Storage) services {
	now := time.Now()

	onboardingSvc := onboarding.NewService(st.KV)
	matchingSvc := matching.NewService(matchingStore.New(st.KV))
	financeSvc := finance.NewService(financeStore.New(st.KV), matchingSvc)
	inventorySvc := inventory.NewService(st.Inventory)
	salesSvc := sales.NewService(sales.DemoSales(now))

	return services{
		onboarding: onboardingSvc,
		finance:    financeSvc,
		inventory:  inventorySvc,
		sales:      salesSvc,
		dashboard:  dashboard.NewService(onboardingSvc, salesSvc, financeSvc, inventorySvc),
		export:     export.NewService(financeSvc),
		importer:   importer.NewService(),
		content:    content.NewEngine(imagegen.NewClient(cfg.ImageGen.BaseURL, cfg.ImageGen.Width, cfg.ImageGen.Height)),
		coach: coach.NewConversation(
			coach.NewClient(cfg.Coach.URL, cfg.Server.Timeout),
			coach.TypingDelay{Min: cfg.Coach.TypingMin, Max: cfg.Coach.TypingMax},
		),
		statement: sales.NewDemoStatement(now),
		language:  coach.ParseLanguage(cfg.App.Language),
	}
}

func initialModel(appName string, svc services) model {
	m := model{appName: appName, svc: svc, currentView: ViewMenu}

	ctx, cancel := view.StoreCtx()
	defer cancel()

	profile, ok := svc.onboarding.Load(ctx)
	if !ok {
		m.currentView = ViewOnboarding
		m.active = view.NewOnboardingModel(svc.onboarding)

		return m
	}

	m.profile = profile

	return m
}

func (m model) Init() tea.Cmd {
	if m.active != nil {
		return m.active.Init()
	}

	return nil
}

func (m model) open(v View) (model, tea.Cmd) {
	switch v {
	case ViewDashboard:
		m.active = view.NewDashboardModel(m.svc.dashboard, m.svc.sales, m.svc.finance, m.svc.statement)
	case ViewContent:
		m.active = view.NewContentModel(m.svc.content)
	case ViewCoach:
		m.active = view.NewCoachModel(m.svc.coach, m.svc.language)
	case ViewExpenses:
		m.active = view.NewExpensesModel(m.svc.finance)
	case ViewInventory:
		m.active = view.NewInventoryModel(m.svc.inventory)
	case ViewImport:
		m.active = view.NewImportModel(m.svc.sales, m.svc.importer)
	case ViewExport:
		m.active = view.NewExportModel(m.svc.export)
	case ViewOnboarding:
		m.active = view.NewOnboardingModel(m.svc.onboarding)
	default:
		return m, nil
	}

	m.currentView = v
	m.status = ""

	cmds := []tea.Cmd{m.active.Init()}
	if m.width > 0 {
		size := tea.WindowSizeMsg{Width: m.width, Height: m.height}
		cmds = append(cmds, func() tea.Msg { return size })
	}

	return m, tea.Batch(cmds...)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		if m.currentView == ViewMenu {
			return m.updateMenu(msg)
		}

	case view.BackMsg:
		if m.currentView == ViewOnboarding {
			return m, tea.Quit
		}

		m.currentView = ViewMenu
		m.active = nil

		return m, nil

	case view.OnboardedMsg:
		m.profile = msg.Profile
		m.currentView = ViewMenu
		m.active = nil

		return m, nil

	case loggedOutMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Logout failed: %v", msg.err)
			return m, nil
		}

		m.profile = onboarding.Profile{}

		return m.open(ViewOnboarding)
	}

	if m.active == nil {
		return m, nil
	}

	var cmd tea.Cmd
	m.active, cmd = m.active.Update(msg)

	return m, cmd
}

func (m model) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "x":
		return m, m.logoutCmd()
	}

	for _, e := range menu {
		if e.key == msg.String() {
			return m.open(e.view)
		}
	}

	return m, nil
}

type loggedOutMsg struct{ err error }

func (m model) logoutCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		return loggedOutMsg{err: m.svc.onboarding.Reset(ctx)}
	}
}

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
	helpStyle  = lipgloss.NewStyle().Faint(true)
)

func (m model) View() string {
	if m.currentView != ViewMenu && m.active != nil {
		body := m.active.View()
		if v, ok := m.active.(view.View); ok {
			body = lipgloss.JoinVertical(lipgloss.Left,
				titleStyle.Padding(1, 1, 0).Render(v.Title()),
				body,
				helpStyle.PaddingLeft(1).Render(v.ShortHelp()),
			)
		}

		return body
	}

	s := titleStyle.Render(m.appName) + "\n"
	if m.profile.BusinessName != "" {
		s += helpStyle.Render(fmt.Sprintf("%s · %s", m.profile.BusinessName, m.profile.FullName())) + "\n"
	}

	s += "\n"
	for _, e := range menu {
		s += fmt.Sprintf("%s. %s\n", e.key, e.label)
	}

	s += "\nx. Log out\nq. Quit"

	if m.status != "" {
		s += "\n\n" + m.status
	}

	return lipgloss.NewStyle().Padding(2).Render(s)
}

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// Log lines would corrupt the screen, so they go to a file.
	logFile, err := tea.LogToFile("numera-tui.log", "numera")
	if err != nil {
		slog.Error("failed to open log file", "error", err)
		os.Exit(1)
	}
	defer logFile.Close()

	st, err := storage.Open(context.Background(), cfg)
	if err != nil {
		slog.Error("failed to open storage", "error", err)
		os.Exit(1)
	}
	defer st.Close()

	p := tea.NewProgram(initialModel(cfg.App.Name, newServices(cfg, st)), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		slog.Error("failed to run TUI", "error", err)
		os.Exit(1)
	}
}
