// Package inventory tracks stock levels of the shop's products.
package inventory

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("item not found")

type Item struct {
	ID               uuid.UUID `json:"id"`
	Name             string    `json:"name"`
	Category         string    `json:"category"`
	CurrentStock     int       `json:"currentStock"`
	MinimumThreshold int       `json:"minimumThreshold"`
	MaximumCapacity  int       `json:"maximumCapacity"`
	UnitPrice        float64   `json:"unitPrice"`
	Supplier         string    `json:"supplier"`
	LastRestocked    time.Time `json:"lastRestocked"`
}

// ValidationError maps a field name to its message.
type ValidationError map[string]string

func (v ValidationError) Error() string {
	keys := make([]string, 0, len(v))
	for k := range v {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, v[k]))
	}

	return "invalid item: " + strings.Join(parts, "; ")
}

// Validate checks the rules an item must satisfy before it is stocked.
func (i Item) Validate() error {
	errs := ValidationError{}

	if strings.TrimSpace(i.Name) == "" {
		errs["name"] = "Product name is required"
	}

	if i.CurrentStock < 0 {
		errs["currentStock"] = "Current stock cannot be negative"
	}

	if i.MinimumThreshold < 0 {
		errs["minimumThreshold"] = "Minimum threshold cannot be negative"
	}

	if i.MaximumCapacity < 0 {
		errs["maximumCapacity"] = "Maximum capacity cannot be negative"
	}

	if i.UnitPrice < 0 {
		errs["unitPrice"] = "Unit price cannot be negative"
	}

	if _, ok := errs["currentStock"]; !ok && i.CurrentStock > i.MaximumCapacity {
		errs["currentStock"] = "Current stock cannot exceed maximum capacity"
	}

	if _, ok := errs["minimumThreshold"]; !ok && i.MinimumThreshold > i.MaximumCapacity {
		errs["minimumThreshold"] = "Minimum threshold cannot exceed maximum capacity"
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

func (i Item) Low() bool {
	return i.CurrentStock <= i.MinimumThreshold
}

func (i Item) Value() float64 {
	return float64(i.CurrentStock) * i.UnitPrice
}

type Status string

const (
	StatusLow    Status = "low"
	StatusMedium Status = "medium"
	StatusGood   Status = "good"
)

func (s Status) Label() string {
	switch s {
	case StatusLow:
		return "Low Stock"
	case StatusMedium:
		return "Medium Stock"
	default:
		return "Good Stock"
	}
}

// StockStatus is low at or below the threshold, medium at or below half
// capacity, good otherwise.
func StockStatus(i Item) Status {
	if i.Low() {
		return StatusLow
	}

	if i.MaximumCapacity > 0 && float64(i.CurrentStock)/float64(i.MaximumCapacity)*100 <= 50 {
		return StatusMedium
	}

	return StatusGood
}

// RestockInDays is the naive restock prediction: a third of current stock,
// never less than a day.
func RestockInDays(i Item) int {
	return max(1, i.CurrentStock/3)
}

type Summary struct {
	TotalItems    int     `json:"totalItems"`
	TotalValue    float64 `json:"totalValue"`
	LowStockCount int     `json:"lowStockCount"`
}

func Summarize(items []Item) Summary {
	var s Summary

	for _, i := range items {
		s.TotalItems += i.CurrentStock
		s.TotalValue += i.Value()

		if i.Low() {
			s.LowStockCount++
		}
	}

	return s
}

// Matches reports whether term occurs in the name or category, ignoring case.
func (i Item) Matches(term string) bool {
	t := strings.ToLower(strings.TrimSpace(term))

	return strings.Contains(strings.ToLower(i.Name), t) || strings.Contains(strings.ToLower(i.Category), t)
}

// DemoItems returns the agrovet stock every new shop starts with.
func DemoItems(now time.Time) []Item {
	day := 24 * time.Hour

	items := []Item{
		{Name: "Dairy Meal 50kg", Category: "Dairy Feed", CurrentStock: 45, MinimumThreshold: 20, MaximumCapacity: 100, UnitPrice: 2500, Supplier: "Coopers Kenya Ltd", LastRestocked: now.Add(-3 * day)},
		{Name: "Layers Mash 50kg", Category: "Poultry Feed", CurrentStock: 8, MinimumThreshold: 25, MaximumCapacity: 80, UnitPrice: 2200, Supplier: "Kenchic Ltd", LastRestocked: now.Add(-7 * day)},
		{Name: "Pig Finisher 50kg", Category: "Swine Feed", CurrentStock: 25, MinimumThreshold: 15, MaximumCapacity: 60, UnitPrice: 2800, Supplier: "Farmer's Choice", LastRestocked: now.Add(-2 * day)},
		{Name: "Broiler Starter 50kg", Category: "Poultry Feed", CurrentStock: 35, MinimumThreshold: 20, MaximumCapacity: 80, UnitPrice: 2600, Supplier: "Kenchic Ltd", LastRestocked: now.Add(-1 * day)},
		{Name: "Fish Meal 25kg", Category: "Aquaculture", CurrentStock: 12, MinimumThreshold: 30, MaximumCapacity: 50, UnitPrice: 1800, Supplier: "Victory Farms", LastRestocked: now.Add(-5 * day)},
		{Name: "Calf Milk Replacer 20kg", Category: "Dairy Feed", CurrentStock: 18, MinimumThreshold: 25, MaximumCapacity: 40, UnitPrice: 3200, Supplier: "Coopers Kenya Ltd", LastRestocked: now},
	}

	for n := range items {
		items[n].ID = uuid.NewSHA1(uuid.NameSpaceOID, []byte(items[n].Name))
	}

	return items
}
