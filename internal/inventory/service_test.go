package inventory_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/numeraai/numera/internal/inventory"
	"github.com/numeraai/numera/internal/inventory/store"
)

func TestService_Add(t *testing.T) {
	type args struct {
		params inventory.AddParams
	}

	type testCase struct {
		name       string
		args       args
		setupMock  func(m *inventory.MockRepository)
		wantFields []string
		wantErr    bool
	}

	tests := []testCase{
		{
			name: "Success",
			args: args{params: inventory.AddParams{Name: "Sow Meal 70kg", Category: "Swine Feed", CurrentStock: 10, MinimumThreshold: 5, MaximumCapacity: 40, UnitPrice: 3100}},
			setupMock: func(m *inventory.MockRepository) {
				m.EXPECT().CreateItem(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name:       "StockAboveCapacity",
			args:       args{params: inventory.AddParams{Name: "Overflow", CurrentStock: 60, MaximumCapacity: 50}},
			wantFields: []string{"currentStock"},
			wantErr:    true,
		},
		{
			name:       "ThresholdAboveCapacity",
			args:       args{params: inventory.AddParams{Name: "Odd", CurrentStock: 1, MinimumThreshold: 20, MaximumCapacity: 10}},
			wantFields: []string{"minimumThreshold"},
			wantErr:    true,
		},
		{
			name:       "NegativeAndNameless",
			args:       args{params: inventory.AddParams{CurrentStock: -1, UnitPrice: -5, MaximumCapacity: 10}},
			wantFields: []string{"name", "currentStock", "unitPrice"},
			wantErr:    true,
		},
		{
			name: "RepoError",
			args: args{params: inventory.AddParams{Name: "Salt lick", MaximumCapacity: 10}},
			setupMock: func(m *inventory.MockRepository) {
				m.EXPECT().CreateItem(gomock.Any(), gomock.Any()).Return(errors.New("db error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			repo := inventory.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			got, err := inventory.NewService(repo).Add(context.Background(), tt.args.params)

			if !tt.wantErr {
				require.NoError(t, err)
				assert.NotZero(t, got.ID)
				assert.False(t, got.LastRestocked.IsZero())

				return
			}

			require.Error(t, err)

			if tt.wantFields != nil {
				var verr inventory.ValidationError
				require.ErrorAs(t, err, &verr)

				for _, f := range tt.wantFields {
					assert.Contains(t, verr, f)
				}
			}
		})
	}
}

func TestService_RejectedItemLeavesListUnchanged(t *testing.T) {
	ctx := context.Background()
	svc := inventory.NewService(store.NewMemory(inventory.DemoItems(time.Now())))

	_, err := svc.Add(ctx, inventory.AddParams{Name: "Overflow", CurrentStock: 60, MaximumCapacity: 50})
	require.Error(t, err)

	items, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, items, 6)

	_, err = svc.Add(ctx, inventory.AddParams{Name: "Mineral Lick", Category: "Supplements", CurrentStock: 5, MaximumCapacity: 50})
	require.NoError(t, err)

	items, err = svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, items, 7)
	assert.Equal(t, "Mineral Lick", items[6].Name)
}

func TestService_Queries(t *testing.T) {
	ctx := context.Background()
	svc := inventory.NewService(store.NewMemory(inventory.DemoItems(time.Now())))

	found, err := svc.Search(ctx, "POULTRY")
	require.NoError(t, err)
	assert.Len(t, found, 2)

	found, err = svc.Search(ctx, "")
	require.NoError(t, err)
	assert.Len(t, found, 6)

	low, err := svc.LowStock(ctx)
	require.NoError(t, err)

	names := make([]string, 0, len(low))
	for _, i := range low {
		names = append(names, i.Name)
	}

	assert.Equal(t, []string{"Layers Mash 50kg", "Fish Meal 25kg", "Calf Milk Replacer 20kg"}, names)

	sum, err := svc.Summary(ctx)
	require.NoError(t, err)
	assert.Equal(t, inventory.Summary{TotalItems: 143, TotalValue: 370300, LowStockCount: 3}, sum)
}

func TestStockStatus(t *testing.T) {
	items := inventory.DemoItems(time.Now())

	assert.Equal(t, inventory.StatusMedium, inventory.StockStatus(items[0]))
	assert.Equal(t, inventory.StatusLow, inventory.StockStatus(items[1]))
	assert.Equal(t, inventory.StatusMedium, inventory.StockStatus(items[2]))
	assert.Equal(t, inventory.StatusGood, inventory.StockStatus(inventory.Item{CurrentStock: 9, MinimumThreshold: 1, MaximumCapacity: 10}))
	assert.Equal(t, "Low Stock", inventory.StatusLow.Label())
}

func TestRestockInDays(t *testing.T) {
	assert.Equal(t, 1, inventory.RestockInDays(inventory.Item{CurrentStock: 2}))
	assert.Equal(t, 2, inventory.RestockInDays(inventory.Item{CurrentStock: 8}))
	assert.Equal(t, 15, inventory.RestockInDays(inventory.Item{CurrentStock: 45}))
}

func TestDemoItems_StableIDs(t *testing.T) {
	a := inventory.DemoItems(time.Now())
	b := inventory.DemoItems(time.Now().Add(time.Hour))

	for n := range a {
		assert.Equal(t, a[n].ID, b[n].ID)
		assert.NoError(t, a[n].Validate())
	}
}
