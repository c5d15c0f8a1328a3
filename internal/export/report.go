package export

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/numeraai/numera/internal/finance"
)

// ProductLine is one product's contribution to the sales summary.
type ProductLine struct {
	Product string  `json:"product"`
	Revenue float64 `json:"revenue"`
	Cost    float64 `json:"cost"`
	Profit  float64 `json:"profit"`
}

// Report is the owner's financial summary at a point in time.
type Report struct {
	Sales         []ProductLine     `json:"sales"`
	Expenses      []finance.Expense `json:"expenses"`
	TotalRevenue  float64           `json:"totalRevenue"`
	TotalExpenses float64           `json:"totalExpenses"`
	NetProfit     float64           `json:"netProfit"`
	GeneratedAt   time.Time         `json:"generatedAt"`
}

// SalesSummary is the product breakdown printed at the top of every report.
func SalesSummary() []ProductLine {
	return []ProductLine{
		{Product: "Maize Flour 2kg", Revenue: 4500, Cost: 3000, Profit: 1500},
		{Product: "Rice 1kg", Revenue: 3600, Cost: 2400, Profit: 1200},
		{Product: "Cooking Oil 500ml", Revenue: 2000, Cost: 1300, Profit: 700},
	}
}

// NewReport totals sales against expenses. Net profit is revenue minus
// expenses, not the sum of per-product profit.
func NewReport(sales []ProductLine, expenses []finance.Expense, now time.Time) *Report {
	r := &Report{Sales: sales, Expenses: expenses, GeneratedAt: now}

	for _, s := range sales {
		r.TotalRevenue += s.Revenue
	}

	for _, e := range expenses {
		r.TotalExpenses += e.Amount
	}

	r.NetProfit = r.TotalRevenue - r.TotalExpenses

	return r
}

const dateLayout = "2/1/2006"

// WriteText renders the plain text report.
func WriteText(w io.Writer, r *Report) error {
	var sb strings.Builder

	sb.WriteString("NUMERA AI - FINANCIAL REPORT\n")
	sb.WriteString("============================\n\n")

	sb.WriteString("Sales Summary:\n")

	for _, s := range r.Sales {
		fmt.Fprintf(&sb, "%s: Revenue %s, Profit %s\n", s.Product, finance.FormatKES(s.Revenue), finance.FormatKES(s.Profit))
	}

	fmt.Fprintf(&sb, "\nTotal Revenue: %s\n", finance.FormatKES(r.TotalRevenue))
	fmt.Fprintf(&sb, "Total Expenses: %s\n", finance.FormatKES(r.TotalExpenses))
	fmt.Fprintf(&sb, "Net Profit: %s\n\n", finance.FormatKES(r.NetProfit))

	sb.WriteString("Expenses Breakdown:\n")

	for _, e := range r.Expenses {
		fmt.Fprintf(&sb, "%s: %s - %s (%s)\n", e.Date.Format(dateLayout), e.Description, finance.FormatKES(e.Amount), e.Category)
	}

	fmt.Fprintf(&sb, "\nGenerated on: %s\n", r.GeneratedAt.Format(dateLayout))

	_, err := io.WriteString(w, sb.String())

	return err
}
