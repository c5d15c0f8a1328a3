package view

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/numeraai/numera/internal/finance"
)

type expenseState int

const (
	expenseStateTimeframe expenseState = iota
	expenseStateList
	expenseStateAdding
)

type expenseItem struct {
	exp finance.Expense
}

func (i expenseItem) Title() string {
	return fmt.Sprintf("%s  %s", finance.FormatKES(i.exp.Amount), i.exp.Description)
}

func (i expenseItem) Description() string {
	return fmt.Sprintf("%s · %s", FormatDate(i.exp.Date), i.exp.Category)
}

func (i expenseItem) FilterValue() string {
	return i.exp.Description + " " + i.exp.Category
}

// expenseForm holds the add form bindings.
type expenseForm struct {
	description string
	amount      string
	category    string
}

type ExpensesModel struct {
	CommonModel
	svc *finance.Service

	state           expenseState
	timeframePicker TimeframePicker
	period          TimeframeSelectedMsg
	list            list.Model
	form            *huh.Form
	input           *expenseForm
	total           float64
	status          string
}

func NewExpensesModel(svc *finance.Service) ExpensesModel {
	l := list.New([]list.Item{}, list.NewDefaultDelegate(), 80, 20)
	l.Title = "Expenses"
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)

	return ExpensesModel{
		svc:             svc,
		timeframePicker: NewTimeframePicker(TimeframeThisMonth),
		list:            l,
	}
}

func (m ExpensesModel) Title() string { return "Expenses" }

func (m ExpensesModel) ShortHelp() string {
	switch m.state {
	case expenseStateList:
		return "Esc: back | a: add | d: delete | /: filter"
	case expenseStateAdding:
		return "Esc: cancel | Enter: next"
	}

	return "Esc: back | Enter: select"
}

func (m ExpensesModel) Init() tea.Cmd {
	return nil
}

func (m ExpensesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case TimeframeSelectedMsg:
		m.period = msg
		m.state = expenseStateList

		return m, m.loadCmd()

	case expensesLoadedMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Error: %v", msg.err)
			return m, nil
		}

		m.setItems(msg.expenses)

		return m, nil

	case expenseSavedMsg:
		m.state = expenseStateList
		m.form = nil

		if msg.err != nil {
			m.status = fmt.Sprintf("Error: %v", msg.err)
		} else {
			m.status = msg.note
		}

		return m, m.loadCmd()

	case tea.WindowSizeMsg:
		m.list.SetSize(msg.Width-4, msg.Height-8)
		return m, nil
	}

	switch m.state {
	case expenseStateTimeframe:
		if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc && m.timeframePicker.IsSelecting() {
			return m, Back
		}

		var cmd tea.Cmd
		m.timeframePicker, cmd = m.timeframePicker.Update(msg)

		return m, cmd

	case expenseStateList:
		return m.updateList(msg)

	case expenseStateAdding:
		return m.updateAdding(msg)
	}

	return m, nil
}

func (m ExpensesModel) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && m.list.FilterState() != list.Filtering {
		switch keyMsg.String() {
		case "esc":
			m.state = expenseStateTimeframe
			return m, nil
		case "a":
			m.input = &expenseForm{}
			m.form = m.buildForm()
			m.state = expenseStateAdding

			return m, m.form.Init()
		case "d":
			item, ok := m.list.SelectedItem().(expenseItem)
			if !ok {
				return m, nil
			}

			return m, m.deleteCmd(item.exp)
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)

	return m, cmd
}

func (m ExpensesModel) updateAdding(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		m.state = expenseStateList
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

func (m *ExpensesModel) setItems(expenses []finance.Expense) {
	items := make([]list.Item, 0, len(expenses))
	m.total = 0

	for _, e := range expenses {
		if !m.period.Contains(e.Date) {
			continue
		}

		items = append(items, expenseItem{exp: e})
		m.total += e.Amount
	}

	m.list.SetItems(items)
	m.list.Title = fmt.Sprintf("Expenses · %s · Total %s", m.period.Label, finance.FormatKES(m.total))
}

func (m ExpensesModel) View() string {
	switch m.state {
	case expenseStateTimeframe:
		return lipgloss.NewStyle().Padding(1).Render(m.timeframePicker.View())
	case expenseStateAdding:
		return lipgloss.NewStyle().Padding(1).Render(panelStyle.Width(56).Render("Add Expense\n\n" + m.form.View()))
	}

	content := m.list.View()
	if m.status != "" {
		content = faintStyle.Render(m.status) + "\n" + content
	}

	return lipgloss.NewStyle().Padding(1).Render(content)
}

func (m ExpensesModel) buildForm() *huh.Form {
	categories := []huh.Option[string]{huh.NewOption("Suggest for me", "")}
	categories = append(categories, huh.NewOptions(finance.Categories...)...)

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Description").
				Placeholder("Transport to Nakuru").
				Value(&m.input.description).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return errors.New("description cannot be empty")
					}

					return nil
				}),
			huh.NewInput().
				Title("Amount (KES)").
				Value(&m.input.amount).
				Validate(func(s string) error {
					_, err := parseAmount(s)
					return err
				}),
			huh.NewSelect[string]().
				Title("Category").
				Options(categories...).
				Value(&m.input.category),
		),
	).WithWidth(50).WithShowHelp(false)
}

func parseAmount(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(s), ",", ""), 64)
	if err != nil || v <= 0 {
		return 0, errors.New("enter an amount above zero")
	}

	return v, nil
}

type expensesLoadedMsg struct {
	expenses []finance.Expense
	err      error
}

func (m ExpensesModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := StoreCtx()
		defer cancel()

		expenses, err := m.svc.Expenses(ctx)

		return expensesLoadedMsg{expenses: expenses, err: err}
	}
}

type expenseSavedMsg struct {
	note string
	err  error
}

func (m ExpensesModel) addCmd(in expenseForm) tea.Cmd {
	return func() tea.Msg {
		amount, err := parseAmount(in.amount)
		if err != nil {
			return expenseSavedMsg{err: err}
		}

		ctx, cancel := StoreCtx()
		defer cancel()

		exp, err := m.svc.AddExpense(ctx, finance.ExpenseParams{
			Description: in.description,
			Amount:      amount,
			Category:    in.category,
		})
		if err != nil {
			return expenseSavedMsg{err: err}
		}

		return expenseSavedMsg{note: fmt.Sprintf("Added %s under %s", finance.FormatKES(exp.Amount), exp.Category)}
	}
}

func (m ExpensesModel) deleteCmd(exp finance.Expense) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := StoreCtx()
		defer cancel()

		if err := m.svc.DeleteExpense(ctx, exp.ID); err != nil {
			return expenseSavedMsg{err: err}
		}

		return expenseSavedMsg{note: "Deleted " + exp.Description}
	}
}
