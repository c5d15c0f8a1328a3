package finance

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidGoal  = errors.New("goal needs a title and a target above zero")
	ErrInvalidSpend = errors.New("expense needs a description and an amount above zero")
	ErrCategory     = errors.New("unknown category")
)

// Goal is a monthly target tracked by the owner.
type Goal struct {
	ID      int64   `json:"id"`
	Title   string  `json:"title"`
	Current float64 `json:"current"`
	Target  float64 `json:"target"`
	Unit    string  `json:"unit"`
}

// Progress is Current as a percentage of Target, capped at 100.
func (g Goal) Progress() float64 {
	if g.Target <= 0 {
		return 0
	}

	return min(g.Current/g.Target*100, 100)
}

type Expense struct {
	ID          string    `json:"id"`
	Description string    `json:"description"`
	Amount      float64   `json:"amount"`
	Category    string    `json:"category"`
	Date        time.Time `json:"date"`
}

var Units = []string{"KES", "customers", "farmers", "times", "kg", "bags", "units"}

const DefaultCategory = "Supplies"

var Categories = []string{
	"Supplies",
	"Rent",
	"Utilities",
	"Transportation",
	"Marketing",
	"Food & Drinks",
	"Equipment",
	"Other",
}

// DefaultGoals returns the goals shown before the owner sets any.
func DefaultGoals() []Goal {
	return []Goal{
		{ID: 1, Title: "Monthly Feed Sales Target", Current: 450000, Target: 600000, Unit: "KES"},
		{ID: 2, Title: "New Farmer Customers", Current: 23, Target: 30, Unit: "farmers"},
		{ID: 3, Title: "Feed Inventory Turnover", Current: 2.3, Target: 3.0, Unit: "times"},
	}
}

func validCategory(c string) bool {
	for _, v := range Categories {
		if v == c {
			return true
		}
	}

	return false
}

// FormatKES renders a whole-shilling amount with thousands separators,
// e.g. "KES 12,500" or "-KES 300".
func FormatKES(amount float64) string {
	d := decimal.NewFromFloat(amount).Round(0)

	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Neg()
	}

	digits := d.String()

	var b strings.Builder
	for i, r := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}

		b.WriteRune(r)
	}

	return sign + "KES " + b.String()
}
