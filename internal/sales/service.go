package sales

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

// StatementSource yields sales reported by a payment provider.
type StatementSource interface {
	Statement(ctx context.Context) ([]Sale, error)
}

// Service keeps the session's sales and orders in memory, newest first.
type Service struct {
	mu          sync.RWMutex
	sales       []Sale
	orders      []Order
	lastRefresh time.Time
	now         func() time.Time
}

type Option func(*Service)

func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func NewService(seed []Sale, opts ...Option) *Service {
	s := &Service{sales: slices.Clone(seed), now: time.Now}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

type SaleParams struct {
	Product       string
	Quantity      int
	UnitPrice     float64
	PaymentMethod PaymentMethod
	Customer      string
}

func (s *Service) RecordSale(params SaleParams) (*Sale, error) {
	if strings.TrimSpace(params.Product) == "" || params.Quantity <= 0 || params.UnitPrice <= 0 {
		return nil, ErrInvalidSale
	}

	method := params.PaymentMethod
	if method == "" {
		method = MPesa
	}

	if !method.Valid() {
		return nil, fmt.Errorf("unknown payment method %q", method)
	}

	id, err := gonanoid.New()
	if err != nil {
		return nil, fmt.Errorf("generating id: %w", err)
	}

	sale := Sale{
		ID:            id,
		Product:       strings.TrimSpace(params.Product),
		Quantity:      params.Quantity,
		UnitPrice:     params.UnitPrice,
		Total:         float64(params.Quantity) * params.UnitPrice,
		PaymentMethod: method,
		Timestamp:     s.now(),
		Customer:      strings.TrimSpace(params.Customer),
	}

	s.mu.Lock()
	s.sales = append([]Sale{sale}, s.sales...)
	s.mu.Unlock()

	return &sale, nil
}

func (s *Service) List() []Sale {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Clone(s.sales)
}

type DaySummary struct {
	Revenue      float64 `json:"revenue"`
	Transactions int     `json:"transactions"`
	Average      float64 `json:"average"`
}

// Today summarizes sales on the current calendar day in local time.
func (s *Service) Today() DaySummary {
	y, m, d := s.now().Date()

	s.mu.RLock()
	defer s.mu.RUnlock()

	var sum DaySummary

	for _, sale := range s.sales {
		sy, sm, sd := sale.Timestamp.Date()
		if sy != y || sm != m || sd != d {
			continue
		}

		sum.Revenue += sale.Total
		sum.Transactions++
	}

	if sum.Transactions > 0 {
		sum.Average = sum.Revenue / float64(sum.Transactions)
	}

	return sum
}

// Refresh pulls a statement and merges the entries not yet recorded.
func (s *Service) Refresh(ctx context.Context, src StatementSource) ([]Sale, error) {
	entries, err := src.Statement(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching statement: %w", err)
	}

	added := s.Merge(entries)

	s.mu.Lock()
	s.lastRefresh = s.now()
	s.mu.Unlock()

	return added, nil
}

// Merge prepends entries whose id is not present yet and returns them.
func (s *Service) Merge(entries []Sale) []Sale {
	s.mu.Lock()
	defer s.mu.Unlock()

	seen := make(map[string]struct{}, len(s.sales))
	for _, sale := range s.sales {
		seen[sale.ID] = struct{}{}
	}

	var added []Sale

	for _, e := range entries {
		if _, ok := seen[e.ID]; ok {
			continue
		}

		seen[e.ID] = struct{}{}
		added = append(added, e)
	}

	if len(added) > 0 {
		s.sales = append(slices.Clone(added), s.sales...)
	}

	return added
}

func (s *Service) LastRefresh() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.lastRefresh
}

type ItemParams struct {
	Product   string
	Quantity  int
	UnitPrice float64
}

type OrderParams struct {
	CustomerName  string
	CustomerPhone string
	Notes         string
	Items         []ItemParams
}

// CreateOrder records a pending order. Items with an empty product, a zero
// quantity or a zero price are rejected as a whole.
func (s *Service) CreateOrder(params OrderParams) (*Order, error) {
	if strings.TrimSpace(params.CustomerName) == "" || strings.TrimSpace(params.CustomerPhone) == "" || len(params.Items) == 0 {
		return nil, ErrInvalidOrder
	}

	order := Order{
		ID:            uuid.New(),
		CustomerName:  strings.TrimSpace(params.CustomerName),
		CustomerPhone: strings.TrimSpace(params.CustomerPhone),
		Status:        StatusPending,
		CreatedAt:     s.now(),
		Notes:         params.Notes,
		Items:         make([]OrderItem, 0, len(params.Items)),
	}

	for n, it := range params.Items {
		if strings.TrimSpace(it.Product) == "" || it.Quantity <= 0 || it.UnitPrice <= 0 {
			return nil, fmt.Errorf("item %d: %w", n+1, ErrInvalidSale)
		}

		item := OrderItem{
			ID:        uuid.New(),
			Product:   it.Product,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
			Total:     float64(it.Quantity) * it.UnitPrice,
		}

		order.Items = append(order.Items, item)
		order.TotalAmount += item.Total
	}

	s.mu.Lock()
	s.orders = append([]Order{order}, s.orders...)
	s.mu.Unlock()

	return &order, nil
}

func (s *Service) Orders() []Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Clone(s.orders)
}

// Transition moves an order along pending -> confirmed|cancelled and
// confirmed -> completed.
func (s *Service) Transition(id uuid.UUID, next OrderStatus) (*Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.orders {
		if s.orders[i].ID != id {
			continue
		}

		if !s.orders[i].Status.CanTransitionTo(next) {
			return nil, fmt.Errorf("%w: %s to %s", ErrInvalidTransition, s.orders[i].Status, next)
		}

		s.orders[i].Status = next
		o := s.orders[i]

		return &o, nil
	}

	return nil, ErrNotFound
}
