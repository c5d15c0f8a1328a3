package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=inventory
type Repository interface {
	CreateItem(ctx context.Context, item *Item) error
	ListItems(ctx context.Context) ([]Item, error)
}

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

type AddParams struct {
	Name             string
	Category         string
	CurrentStock     int
	MinimumThreshold int
	MaximumCapacity  int
	UnitPrice        float64
	Supplier         string
}

// Add validates and stocks a new item. A rejected item is never written.
func (s *Service) Add(ctx context.Context, params AddParams) (*Item, error) {
	item := &Item{
		ID:               uuid.New(),
		Name:             params.Name,
		Category:         params.Category,
		CurrentStock:     params.CurrentStock,
		MinimumThreshold: params.MinimumThreshold,
		MaximumCapacity:  params.MaximumCapacity,
		UnitPrice:        params.UnitPrice,
		Supplier:         params.Supplier,
		LastRestocked:    s.now(),
	}

	if err := item.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.CreateItem(ctx, item); err != nil {
		return nil, fmt.Errorf("creating item: %w", err)
	}

	return item, nil
}

func (s *Service) List(ctx context.Context) ([]Item, error) {
	return s.repo.ListItems(ctx)
}

// Search filters by name or category. An empty term returns everything.
func (s *Service) Search(ctx context.Context, term string) ([]Item, error) {
	items, err := s.repo.ListItems(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]Item, 0, len(items))
	for _, i := range items {
		if i.Matches(term) {
			out = append(out, i)
		}
	}

	return out, nil
}

func (s *Service) LowStock(ctx context.Context) ([]Item, error) {
	items, err := s.repo.ListItems(ctx)
	if err != nil {
		return nil, err
	}

	var low []Item
	for _, i := range items {
		if i.Low() {
			low = append(low, i)
		}
	}

	return low, nil
}

func (s *Service) Summary(ctx context.Context) (Summary, error) {
	items, err := s.repo.ListItems(ctx)
	if err != nil {
		return Summary{}, err
	}

	return Summarize(items), nil
}
