// Package alerts runs the periodic low-stock sweep.
package alerts

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/numeraai/numera/internal/inventory"
)

type LowStockLister interface {
	LowStock(ctx context.Context) ([]inventory.Item, error)
}

type Config struct {
	Cron    string
	Enabled bool
}

// Alert is one item that needs restocking.
type Alert struct {
	Item          inventory.Item `json:"item"`
	RestockInDays int            `json:"restockInDays"`
}

type Notifier func(alerts []Alert)

type Service struct {
	scheduler *gocron.Scheduler
	inventory LowStockLister
	config    Config
	notify    Notifier

	mu      sync.Mutex
	running bool
	last    []Alert
}

// NewService builds the sweep. notify may be nil, in which case alerts are
// only logged.
func NewService(inv LowStockLister, cfg Config, notify Notifier) *Service {
	return &Service{
		scheduler: gocron.NewScheduler(time.Local),
		inventory: inv,
		config:    cfg,
		notify:    notify,
	}
}

func (s *Service) Start(ctx context.Context) error {
	if !s.config.Enabled {
		slog.Info("low stock alerts disabled")
		return nil
	}

	_, err := s.scheduler.Cron(s.config.Cron).Do(func() {
		if _, err := s.Sweep(ctx); err != nil {
			slog.Error("low stock sweep failed", "error", err)
		}
	})
	if err != nil {
		return fmt.Errorf("scheduling low stock sweep: %w", err)
	}

	slog.Info("starting low stock alerts", "cron", s.config.Cron)
	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		slog.Info("stopping low stock alerts")
		s.scheduler.Stop()
	}()

	return nil
}

// Sweep checks stock once. A sweep started while another runs returns the
// previous sweep's alerts.
func (s *Service) Sweep(ctx context.Context) ([]Alert, error) {
	s.mu.Lock()
	if s.running {
		last := s.last
		s.mu.Unlock()
		slog.Warn("low stock sweep already running")

		return last, nil
	}

	s.running = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.running = false
		s.mu.Unlock()
	}()

	items, err := s.inventory.LowStock(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing low stock: %w", err)
	}

	alerts := make([]Alert, 0, len(items))
	for _, i := range items {
		alerts = append(alerts, Alert{Item: i, RestockInDays: inventory.RestockInDays(i)})
		slog.Warn("low stock",
			"item", i.Name,
			"stock", i.CurrentStock,
			"threshold", i.MinimumThreshold,
			"restock_in_days", inventory.RestockInDays(i),
		)
	}

	s.mu.Lock()
	s.last = alerts
	s.mu.Unlock()

	if s.notify != nil && len(alerts) > 0 {
		s.notify(alerts)
	}

	return alerts, nil
}

// Last returns the alerts found by the most recent sweep.
func (s *Service) Last() []Alert {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.last
}
