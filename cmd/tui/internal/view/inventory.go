package view

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/numeraai/numera/internal/finance"
	"github.com/numeraai/numera/internal/inventory"
)

type inventoryState int

const (
	inventoryStateTable inventoryState = iota
	inventoryStateSearch
	inventoryStateAdding
)

// itemForm holds the add form bindings. Numbers stay strings until submit.
type itemForm struct {
	name      string
	category  string
	current   string
	minimum   string
	maximum   string
	unitPrice string
	supplier  string
}

type InventoryModel struct {
	CommonModel
	svc *inventory.Service

	state   inventoryState
	table   table.Model
	search  textinput.Model
	form    *huh.Form
	input   *itemForm
	items   []inventory.Item
	summary inventory.Summary
	lowOnly bool
	status  string
	err     error
}

func NewInventoryModel(svc *inventory.Service) InventoryModel {
	columns := []table.Column{
		{Title: "Product", Width: 24},
		{Title: "Category", Width: 14},
		{Title: "Stock", Width: 6},
		{Title: "Min", Width: 5},
		{Title: "Max", Width: 5},
		{Title: "Price", Width: 11},
		{Title: "Status", Width: 12},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(12),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	ti := textinput.New()
	ti.Placeholder = "Search by name or category"
	ti.CharLimit = 40

	return InventoryModel{
		svc:    svc,
		table:  t,
		search: ti,
	}
}

func (m InventoryModel) Title() string { return "Inventory" }

func (m InventoryModel) ShortHelp() string {
	switch m.state {
	case inventoryStateSearch:
		return "Enter: apply | Esc: clear"
	case inventoryStateAdding:
		return "Esc: cancel | Enter: next"
	}

	return "Esc: back | a: add | /: search | l: low stock only"
}

func (m InventoryModel) Init() tea.Cmd {
	return m.loadCmd("")
}

func (m InventoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case inventoryLoadedMsg:
		m.err = msg.err
		m.items = msg.items
		m.summary = msg.summary
		m.refreshRows()

		return m, nil

	case itemSavedMsg:
		var verr inventory.ValidationError
		if errors.As(msg.err, &verr) {
			// Keep the typed values so the owner can fix them.
			m.form = m.buildForm()
			m.status = verr.Error()

			return m, m.form.Init()
		}

		m.state = inventoryStateTable
		m.form = nil

		if msg.err != nil {
			m.status = fmt.Sprintf("Error: %v", msg.err)
		} else {
			m.status = "Added " + msg.item.Name
		}

		return m, m.loadCmd(m.search.Value())
	}

	switch m.state {
	case inventoryStateSearch:
		return m.updateSearch(msg)
	case inventoryStateAdding:
		return m.updateAdding(msg)
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			return m, Back
		case "/", "s":
			m.state = inventoryStateSearch
			return m, m.search.Focus()
		case "l":
			m.lowOnly = !m.lowOnly
			m.refreshRows()

			return m, nil
		case "a":
			m.input = &itemForm{}
			m.form = m.buildForm()
			m.state = inventoryStateAdding
			m.status = ""

			return m, m.form.Init()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m InventoryModel) updateSearch(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.Type {
		case tea.KeyEnter:
			m.search.Blur()
			m.state = inventoryStateTable

			return m, m.loadCmd(m.search.Value())
		case tea.KeyEsc:
			m.search.Blur()
			m.search.SetValue("")
			m.state = inventoryStateTable

			return m, m.loadCmd("")
		}
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)

	return m, cmd
}

func (m InventoryModel) updateAdding(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		m.state = inventoryStateTable
		m.form = nil

		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	return m, m.addCmd(*m.input)
}

func (m *InventoryModel) refreshRows() {
	rows := make([]table.Row, 0, len(m.items))

	for _, i := range m.items {
		if m.lowOnly && !i.Low() {
			continue
		}

		rows = append(rows, table.Row{
			i.Name,
			i.Category,
			strconv.Itoa(i.CurrentStock),
			strconv.Itoa(i.MinimumThreshold),
			strconv.Itoa(i.MaximumCapacity),
			finance.FormatKES(i.UnitPrice),
			inventory.StockStatus(i).Label(),
		})
	}

	m.table.SetRows(rows)
}

func (m InventoryModel) View() string {
	if m.state == inventoryStateAdding {
		content := "Add Product\n\n" + m.form.View()
		if m.status != "" {
			content = errStyle.Render(m.status) + "\n\n" + content
		}

		return lipgloss.NewStyle().Padding(1).Render(panelStyle.Width(60).Render(content))
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(1).Render(errStyle.Render(fmt.Sprintf("Error: %v", m.err)))
	}

	header := headerStyle.Render(fmt.Sprintf(
		"%d units · %s in stock · %d low",
		m.summary.TotalItems, finance.FormatKES(m.summary.TotalValue), m.summary.LowStockCount,
	))

	lines := []string{header, ""}

	if m.state == inventoryStateSearch || m.search.Value() != "" {
		lines = append(lines, m.search.View(), "")
	}

	if m.lowOnly {
		lines = append(lines, warnStyle.Render("Showing low stock only"), "")
	}

	lines = append(lines, m.table.View())

	if m.status != "" {
		lines = append(lines, "", faintStyle.Render(m.status))
	}

	return lipgloss.NewStyle().Padding(1).Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func (m InventoryModel) buildForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Product name").Value(&m.input.name),
			huh.NewInput().Title("Category").Placeholder("Poultry Feed").Value(&m.input.category),
			huh.NewInput().Title("Supplier").Value(&m.input.supplier),
		),
		huh.NewGroup(
			huh.NewInput().Title("Current stock").Value(&m.input.current).Validate(validInt),
			huh.NewInput().Title("Minimum threshold").Value(&m.input.minimum).Validate(validInt),
			huh.NewInput().Title("Maximum capacity").Value(&m.input.maximum).Validate(validInt),
			huh.NewInput().Title("Unit price (KES)").Value(&m.input.unitPrice).Validate(validFloat),
		),
	).WithWidth(50).WithShowHelp(false)
}

func validInt(s string) error {
	if _, err := atoi(s); err != nil {
		return errors.New("enter a whole number")
	}

	return nil
}

func validFloat(s string) error {
	if _, err := atof(s); err != nil {
		return errors.New("enter a number")
	}

	return nil
}

func atoi(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}

	return strconv.Atoi(s)
}

func atof(s string) (float64, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if s == "" {
		return 0, nil
	}

	return strconv.ParseFloat(s, 64)
}

type inventoryLoadedMsg struct {
	items   []inventory.Item
	summary inventory.Summary
	err     error
}

func (m InventoryModel) loadCmd(term string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := StoreCtx()
		defer cancel()

		items, err := m.svc.Search(ctx, term)
		if err != nil {
			return inventoryLoadedMsg{err: err}
		}

		summary, err := m.svc.Summary(ctx)

		return inventoryLoadedMsg{items: items, summary: summary, err: err}
	}
}

type itemSavedMsg struct {
	item *inventory.Item
	err  error
}

func (m InventoryModel) addCmd(in itemForm) tea.Cmd {
	return func() tea.Msg {
		// Inputs were validated by the form.
		current, _ := atoi(in.current)
		minimum, _ := atoi(in.minimum)
		maximum, _ := atoi(in.maximum)
		price, _ := atof(in.unitPrice)

		ctx, cancel := StoreCtx()
		defer cancel()

		item, err := m.svc.Add(ctx, inventory.AddParams{
			Name:             in.name,
			Category:         in.category,
			CurrentStock:     current,
			MinimumThreshold: minimum,
			MaximumCapacity:  maximum,
			UnitPrice:        price,
			Supplier:         in.supplier,
		})

		return itemSavedMsg{item: item, err: err}
	}
}
