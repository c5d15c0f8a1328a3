package finance

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=finance
type Repository interface {
	LoadGoals(ctx context.Context) ([]Goal, error)
	SaveGoals(ctx context.Context, goals []Goal) error
	LoadExpenses(ctx context.Context) ([]Expense, error)
	SaveExpenses(ctx context.Context, expenses []Expense) error
}

// CategoryMatcher remembers which category a description was filed under.
type CategoryMatcher interface {
	Suggest(ctx context.Context, description string) (string, error)
	Learn(ctx context.Context, description, category string) error
}

type Service struct {
	repo    Repository
	matcher CategoryMatcher
	now     func() time.Time

	// mu serializes read-modify-write cycles on the stored lists.
	mu sync.Mutex
}

type Option func(*Service)

// WithClock replaces time.Now for ids and expense dates.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// NewService wires the repository. matcher may be nil.
func NewService(repo Repository, matcher CategoryMatcher, opts ...Option) *Service {
	s := &Service{repo: repo, matcher: matcher, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

func (s *Service) Goals(ctx context.Context) ([]Goal, error) {
	return s.repo.LoadGoals(ctx)
}

type GoalParams struct {
	Title   string
	Current float64
	Target  float64
	Unit    string
}

func (s *Service) AddGoal(ctx context.Context, params GoalParams) (*Goal, error) {
	title := strings.TrimSpace(params.Title)
	if title == "" || params.Target <= 0 {
		return nil, ErrInvalidGoal
	}

	unit := params.Unit
	if unit == "" {
		unit = Units[0]
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	goals, err := s.repo.LoadGoals(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading goals: %w", err)
	}

	id := s.now().UnixMilli()
	for taken(goals, id) {
		id++
	}

	goal := Goal{ID: id, Title: title, Current: params.Current, Target: params.Target, Unit: unit}

	if err := s.repo.SaveGoals(ctx, append(goals, goal)); err != nil {
		return nil, fmt.Errorf("saving goals: %w", err)
	}

	return &goal, nil
}

// EditGoal replaces the current and target values of a goal.
func (s *Service) EditGoal(ctx context.Context, id int64, current, target float64) (*Goal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	goals, err := s.repo.LoadGoals(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading goals: %w", err)
	}

	for i := range goals {
		if goals[i].ID != id {
			continue
		}

		goals[i].Current = current
		goals[i].Target = target

		if err := s.repo.SaveGoals(ctx, goals); err != nil {
			return nil, fmt.Errorf("saving goals: %w", err)
		}

		return &goals[i], nil
	}

	return nil, ErrNotFound
}

func (s *Service) Expenses(ctx context.Context) ([]Expense, error) {
	return s.repo.LoadExpenses(ctx)
}

type ExpenseParams struct {
	Description string
	Amount      float64
	Category    string
}

// AddExpense files a new expense at the head of the list. An empty category
// is filled from earlier expenses with a similar description, else Supplies.
func (s *Service) AddExpense(ctx context.Context, params ExpenseParams) (*Expense, error) {
	desc := strings.TrimSpace(params.Description)
	if desc == "" || params.Amount <= 0 {
		return nil, ErrInvalidSpend
	}

	category := params.Category
	if category == "" {
		category = s.suggest(ctx, desc)
	}

	if !validCategory(category) {
		return nil, fmt.Errorf("%w %q", ErrCategory, category)
	}

	id, err := gonanoid.New()
	if err != nil {
		return nil, fmt.Errorf("generating id: %w", err)
	}

	exp := Expense{ID: id, Description: desc, Amount: params.Amount, Category: category, Date: s.now()}

	s.mu.Lock()
	defer s.mu.Unlock()

	expenses, err := s.repo.LoadExpenses(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading expenses: %w", err)
	}

	if err := s.repo.SaveExpenses(ctx, append([]Expense{exp}, expenses...)); err != nil {
		return nil, fmt.Errorf("saving expenses: %w", err)
	}

	if s.matcher != nil && params.Category != "" {
		if err := s.matcher.Learn(ctx, desc, params.Category); err != nil {
			slog.Warn("failed to remember expense category", "error", err)
		}
	}

	return &exp, nil
}

func (s *Service) DeleteExpense(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	expenses, err := s.repo.LoadExpenses(ctx)
	if err != nil {
		return fmt.Errorf("loading expenses: %w", err)
	}

	kept := make([]Expense, 0, len(expenses))
	for _, e := range expenses {
		if e.ID != id {
			kept = append(kept, e)
		}
	}

	if len(kept) == len(expenses) {
		return ErrNotFound
	}

	if err := s.repo.SaveExpenses(ctx, kept); err != nil {
		return fmt.Errorf("saving expenses: %w", err)
	}

	return nil
}

func (s *Service) TotalExpenses(ctx context.Context) (float64, error) {
	return s.TotalExpensesSince(ctx, time.Time{})
}

// TotalExpensesSince sums expenses dated at or after since.
func (s *Service) TotalExpensesSince(ctx context.Context, since time.Time) (float64, error) {
	expenses, err := s.repo.LoadExpenses(ctx)
	if err != nil {
		return 0, fmt.Errorf("loading expenses: %w", err)
	}

	var total float64

	for _, e := range expenses {
		if !e.Date.Before(since) {
			total += e.Amount
		}
	}

	return total, nil
}

func (s *Service) suggest(ctx context.Context, desc string) string {
	if s.matcher == nil {
		return DefaultCategory
	}

	category, err := s.matcher.Suggest(ctx, desc)
	if err != nil {
		slog.Warn("failed to suggest expense category", "error", err)
		return DefaultCategory
	}

	if category == "" {
		return DefaultCategory
	}

	return category
}

func taken(goals []Goal, id int64) bool {
	for _, g := range goals {
		if g.ID == id {
			return true
		}
	}

	return false
}
