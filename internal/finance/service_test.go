package finance_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/numeraai/numera/internal/finance"
)

var fixedNow = time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)

func clock() time.Time { return fixedNow }

func TestService_AddGoal(t *testing.T) {
	type args struct {
		params finance.GoalParams
	}

	type testCase struct {
		name      string
		args      args
		setupMock func(m *finance.MockRepository)
		want      *finance.Goal
		wantErr   error
	}

	tests := []testCase{
		{
			name: "Success",
			args: args{params: finance.GoalParams{Title: " Sell 100 bags ", Target: 100, Unit: "bags"}},
			setupMock: func(m *finance.MockRepository) {
				m.EXPECT().LoadGoals(gomock.Any()).Return(finance.DefaultGoals(), nil)
				m.EXPECT().SaveGoals(gomock.Any(), gomock.Len(4)).Return(nil)
			},
			want: &finance.Goal{ID: fixedNow.UnixMilli(), Title: "Sell 100 bags", Target: 100, Unit: "bags"},
		},
		{
			name: "DefaultUnitAndIDCollision",
			args: args{params: finance.GoalParams{Title: "Revenue", Current: 10, Target: 500}},
			setupMock: func(m *finance.MockRepository) {
				m.EXPECT().LoadGoals(gomock.Any()).Return([]finance.Goal{{ID: fixedNow.UnixMilli()}}, nil)
				m.EXPECT().SaveGoals(gomock.Any(), gomock.Len(2)).Return(nil)
			},
			want: &finance.Goal{ID: fixedNow.UnixMilli() + 1, Title: "Revenue", Current: 10, Target: 500, Unit: "KES"},
		},
		{
			name:    "MissingTitle",
			args:    args{params: finance.GoalParams{Title: "  ", Target: 10}},
			wantErr: finance.ErrInvalidGoal,
		},
		{
			name:    "ZeroTarget",
			args:    args{params: finance.GoalParams{Title: "Something"}},
			wantErr: finance.ErrInvalidGoal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			repo := finance.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			svc := finance.NewService(repo, nil, finance.WithClock(clock))
			got, err := svc.AddGoal(context.Background(), tt.args.params)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestService_EditGoal(t *testing.T) {
	ctrl := gomock.NewController(t)

	repo := finance.NewMockRepository(ctrl)
	repo.EXPECT().LoadGoals(gomock.Any()).Return(finance.DefaultGoals(), nil).Times(2)
	repo.EXPECT().
		SaveGoals(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, goals []finance.Goal) error {
			assert.Equal(t, 40.0, goals[1].Current)
			assert.Equal(t, 50.0, goals[1].Target)
			return nil
		})

	svc := finance.NewService(repo, nil)

	got, err := svc.EditGoal(context.Background(), 2, 40, 50)
	require.NoError(t, err)
	assert.Equal(t, "New Farmer Customers", got.Title)
	assert.Equal(t, 80.0, got.Progress())

	_, err = svc.EditGoal(context.Background(), 99, 1, 1)
	assert.ErrorIs(t, err, finance.ErrNotFound)
}

func TestService_AddExpense(t *testing.T) {
	existing := []finance.Expense{{ID: "old", Description: "Rent", Amount: 8000, Category: "Rent"}}

	type testCase struct {
		name         string
		params       finance.ExpenseParams
		setupMock    func(m *finance.MockRepository)
		setupMatcher func(m *finance.MockCategoryMatcher)
		wantCategory string
		wantErr      error
	}

	tests := []testCase{
		{
			name:   "PrependsWithExplicitCategory",
			params: finance.ExpenseParams{Description: "Fuel", Amount: 500, Category: "Transportation"},
			setupMock: func(m *finance.MockRepository) {
				m.EXPECT().LoadExpenses(gomock.Any()).Return(existing, nil)
				m.EXPECT().
					SaveExpenses(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, got []finance.Expense) error {
						require.Len(t, got, 2)
						assert.Equal(t, "Fuel", got[0].Description)
						assert.Equal(t, "old", got[1].ID)
						return nil
					})
			},
			setupMatcher: func(m *finance.MockCategoryMatcher) {
				m.EXPECT().Learn(gomock.Any(), "Fuel", "Transportation").Return(nil)
			},
			wantCategory: "Transportation",
		},
		{
			name:   "SuggestedCategory",
			params: finance.ExpenseParams{Description: "Fuel for van", Amount: 700},
			setupMock: func(m *finance.MockRepository) {
				m.EXPECT().LoadExpenses(gomock.Any()).Return(nil, nil)
				m.EXPECT().SaveExpenses(gomock.Any(), gomock.Len(1)).Return(nil)
			},
			setupMatcher: func(m *finance.MockCategoryMatcher) {
				m.EXPECT().Suggest(gomock.Any(), "Fuel for van").Return("Transportation", nil)
			},
			wantCategory: "Transportation",
		},
		{
			name:   "SuggestionFailsFallsBackToSupplies",
			params: finance.ExpenseParams{Description: "Bags", Amount: 100},
			setupMock: func(m *finance.MockRepository) {
				m.EXPECT().LoadExpenses(gomock.Any()).Return(nil, nil)
				m.EXPECT().SaveExpenses(gomock.Any(), gomock.Any()).Return(nil)
			},
			setupMatcher: func(m *finance.MockCategoryMatcher) {
				m.EXPECT().Suggest(gomock.Any(), "Bags").Return("", errors.New("boom"))
			},
			wantCategory: finance.DefaultCategory,
		},
		{
			name:    "MissingDescription",
			params:  finance.ExpenseParams{Amount: 100},
			wantErr: finance.ErrInvalidSpend,
		},
		{
			name:    "NonPositiveAmount",
			params:  finance.ExpenseParams{Description: "Fuel", Amount: 0},
			wantErr: finance.ErrInvalidSpend,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			repo := finance.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			matcher := finance.NewMockCategoryMatcher(ctrl)
			if tt.setupMatcher != nil {
				tt.setupMatcher(matcher)
			}

			svc := finance.NewService(repo, matcher, finance.WithClock(clock))
			got, err := svc.AddExpense(context.Background(), tt.params)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.NotEmpty(t, got.ID)
			assert.Equal(t, tt.wantCategory, got.Category)
			assert.Equal(t, fixedNow, got.Date)
		})
	}
}

func TestService_AddExpense_UnknownCategory(t *testing.T) {
	ctrl := gomock.NewController(t)

	svc := finance.NewService(finance.NewMockRepository(ctrl), nil)

	_, err := svc.AddExpense(context.Background(), finance.ExpenseParams{Description: "x", Amount: 1, Category: "Bribes"})
	assert.ErrorIs(t, err, finance.ErrCategory)
}

func TestService_DeleteExpense(t *testing.T) {
	ctrl := gomock.NewController(t)

	stored := []finance.Expense{{ID: "a"}, {ID: "b"}}

	repo := finance.NewMockRepository(ctrl)
	repo.EXPECT().LoadExpenses(gomock.Any()).Return(stored, nil).Times(2)
	repo.EXPECT().SaveExpenses(gomock.Any(), []finance.Expense{{ID: "b"}}).Return(nil)

	svc := finance.NewService(repo, nil)

	require.NoError(t, svc.DeleteExpense(context.Background(), "a"))
	assert.ErrorIs(t, svc.DeleteExpense(context.Background(), "zzz"), finance.ErrNotFound)
}

func TestService_TotalExpenses(t *testing.T) {
	ctrl := gomock.NewController(t)

	repo := finance.NewMockRepository(ctrl)
	repo.EXPECT().LoadExpenses(gomock.Any()).Return([]finance.Expense{
		{Amount: 500, Date: fixedNow},
		{Amount: 1200.5, Date: fixedNow.Add(-48 * time.Hour)},
	}, nil).AnyTimes()

	svc := finance.NewService(repo, nil)

	total, err := svc.TotalExpenses(context.Background())
	require.NoError(t, err)
	assert.InDelta(t, 1700.5, total, 0.001)

	today, err := svc.TotalExpensesSince(context.Background(), fixedNow.Truncate(24*time.Hour))
	require.NoError(t, err)
	assert.InDelta(t, 500, today, 0.001)
}

func TestGoal_Progress(t *testing.T) {
	assert.Equal(t, 75.0, finance.Goal{Current: 450000, Target: 600000}.Progress())
	assert.Equal(t, 100.0, finance.Goal{Current: 9, Target: 3}.Progress())
	assert.Zero(t, finance.Goal{Current: 9}.Progress())
}

func TestFormatKES(t *testing.T) {
	assert.Equal(t, "KES 0", finance.FormatKES(0))
	assert.Equal(t, "KES 500", finance.FormatKES(500))
	assert.Equal(t, "KES 12,500", finance.FormatKES(12500))
	assert.Equal(t, "KES 1,234,568", finance.FormatKES(1234567.8))
	assert.Equal(t, "-KES 300", finance.FormatKES(-300))
}

func TestStaticAnalytics(t *testing.T) {
	a := finance.StaticAnalytics()
	assert.Len(t, a.WeeklySales, 7)
	assert.Equal(t, 159000.0, a.WeeklyTotal())
}
