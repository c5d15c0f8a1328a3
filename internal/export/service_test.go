package export

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/numeraai/numera/internal/finance"
)

type stubExpenses struct {
	items []finance.Expense
	err   error
}

func (s stubExpenses) Expenses(context.Context) ([]finance.Expense, error) {
	return s.items, s.err
}

var generated = time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC)

func newTestService(items []finance.Expense, err error) *Service {
	svc := NewService(stubExpenses{items: items, err: err})
	svc.now = func() time.Time { return generated }

	return svc
}

func TestNewReport(t *testing.T) {
	expenses := []finance.Expense{
		{Description: "Fuel", Amount: 500, Category: "Transportation"},
		{Description: "Rent", Amount: 15000, Category: "Rent"},
	}

	r := NewReport(SalesSummary(), expenses, generated)

	assert.Equal(t, 10100.0, r.TotalRevenue)
	assert.Equal(t, 15500.0, r.TotalExpenses)
	assert.Equal(t, -5400.0, r.NetProfit)
}

func TestService_Export_Text(t *testing.T) {
	svc := newTestService([]finance.Expense{
		{Description: "Fuel", Amount: 500, Category: "Transportation", Date: time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC)},
	}, nil)

	var buf bytes.Buffer

	name, err := svc.Export(context.Background(), FormatText, &buf)
	require.NoError(t, err)
	assert.Equal(t, "financial-report-2025-03-14.txt", name)

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "NUMERA AI - FINANCIAL REPORT\n"))
	assert.Contains(t, out, "Maize Flour 2kg: Revenue KES 4,500, Profit KES 1,500\n")
	assert.Contains(t, out, "Total Revenue: KES 10,100\n")
	assert.Contains(t, out, "Total Expenses: KES 500\n")
	assert.Contains(t, out, "Net Profit: KES 9,600\n")
	assert.Contains(t, out, "2/3/2025: Fuel - KES 500 (Transportation)\n")
	assert.Contains(t, out, "Generated on: 14/3/2025\n")
}

func TestService_Export_XLSX(t *testing.T) {
	svc := newTestService([]finance.Expense{
		{Description: "Fuel", Amount: 500, Category: "Transportation", Date: generated},
	}, nil)

	var buf bytes.Buffer

	name, err := svc.Export(context.Background(), FormatXLSX, &buf)
	require.NoError(t, err)
	assert.Equal(t, "financial-report-2025-03-14.xlsx", name)

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	title, err := f.GetCellValue("Summary", "A1")
	require.NoError(t, err)
	assert.Equal(t, "NUMERA AI - FINANCIAL REPORT", title)

	product, err := f.GetCellValue("Summary", "A5")
	require.NoError(t, err)
	assert.Equal(t, "Maize Flour 2kg", product)

	desc, err := f.GetCellValue("Expenses", "B2")
	require.NoError(t, err)
	assert.Equal(t, "Fuel", desc)
}

func TestService_Export_Errors(t *testing.T) {
	var buf bytes.Buffer

	_, err := newTestService(nil, errors.New("db down")).Export(context.Background(), FormatText, &buf)
	assert.Error(t, err)

	_, err = newTestService(nil, nil).Export(context.Background(), Format("pdf"), &buf)
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("")
	require.NoError(t, err)
	assert.Equal(t, FormatText, f)

	f, err = ParseFormat("xlsx")
	require.NoError(t, err)
	assert.Equal(t, FormatXLSX, f)

	_, err = ParseFormat("pdf")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}
