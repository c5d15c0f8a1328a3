package alerts_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/numeraai/numera/internal/alerts"
	"github.com/numeraai/numera/internal/inventory"
	"github.com/numeraai/numera/internal/inventory/store"
)

type failingLister struct{}

func (failingLister) LowStock(context.Context) ([]inventory.Item, error) {
	return nil, errors.New("db down")
}

func TestService_Sweep(t *testing.T) {
	inv := inventory.NewService(store.NewMemory(inventory.DemoItems(time.Now())))

	var notified []alerts.Alert

	svc := alerts.NewService(inv, alerts.Config{}, func(a []alerts.Alert) { notified = a })

	got, err := svc.Sweep(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "Layers Mash 50kg", got[0].Item.Name)
	assert.Equal(t, 2, got[0].RestockInDays)
	assert.Equal(t, got, notified)
	assert.Equal(t, got, svc.Last())
}

// gatedLister answers the first call at once and blocks later calls until
// release is closed.
type gatedLister struct {
	items   []inventory.Item
	calls   int
	entered chan struct{}
	release chan struct{}
}

func (g *gatedLister) LowStock(context.Context) ([]inventory.Item, error) {
	g.calls++
	if g.calls > 1 {
		close(g.entered)
		<-g.release
	}

	return g.items, nil
}

func TestService_Sweep_OverlapReturnsLast(t *testing.T) {
	lister := &gatedLister{
		items:   []inventory.Item{{Name: "Layers Mash 50kg", CurrentStock: 8, MinimumThreshold: 25}},
		entered: make(chan struct{}),
		release: make(chan struct{}),
	}

	svc := alerts.NewService(lister, alerts.Config{}, nil)

	first, err := svc.Sweep(context.Background())
	require.NoError(t, err)
	require.Len(t, first, 1)

	done := make(chan struct{})
	go func() {
		defer close(done)
		_, _ = svc.Sweep(context.Background())
	}()

	<-lister.entered

	got, err := svc.Sweep(context.Background())
	require.NoError(t, err)
	assert.Equal(t, first, got)

	close(lister.release)
	<-done
}

func TestService_Sweep_Error(t *testing.T) {
	svc := alerts.NewService(failingLister{}, alerts.Config{}, nil)

	_, err := svc.Sweep(context.Background())
	assert.Error(t, err)
	assert.Empty(t, svc.Last())
}

func TestService_Start(t *testing.T) {
	inv := inventory.NewService(store.NewMemory(nil))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	assert.NoError(t, alerts.NewService(inv, alerts.Config{Enabled: false, Cron: "bogus"}, nil).Start(ctx))
	assert.Error(t, alerts.NewService(inv, alerts.Config{Enabled: true, Cron: "bogus"}, nil).Start(ctx))
	assert.NoError(t, alerts.NewService(inv, alerts.Config{Enabled: true, Cron: "*/30 * * * *"}, nil).Start(ctx))
}
