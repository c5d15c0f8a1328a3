// Package sales records the day's sales and customer orders.
package sales

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound          = errors.New("not found")
	ErrInvalidSale       = errors.New("sale needs a product, a quantity and a unit price above zero")
	ErrInvalidOrder      = errors.New("order needs a customer name, a phone number and at least one item")
	ErrInvalidTransition = errors.New("invalid order status transition")
)

type PaymentMethod string

const (
	MPesa       PaymentMethod = "M-Pesa"
	Cash        PaymentMethod = "Cash"
	AirtelMoney PaymentMethod = "Airtel Money"
)

var PaymentMethods = []PaymentMethod{MPesa, Cash, AirtelMoney}

func (p PaymentMethod) Valid() bool {
	for _, m := range PaymentMethods {
		if m == p {
			return true
		}
	}

	return false
}

type Sale struct {
	ID            string        `json:"id"`
	Product       string        `json:"product"`
	Quantity      int           `json:"quantity"`
	UnitPrice     float64       `json:"unitPrice"`
	Total         float64       `json:"total"`
	PaymentMethod PaymentMethod `json:"paymentMethod"`
	Timestamp     time.Time     `json:"timestamp"`
	Customer      string        `json:"customer,omitempty"`
}

type Product struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// Products is the catalogue offered when taking an order.
var Products = []Product{
	{Name: "Chick Mash 50kg", Price: 2800},
	{Name: "Layers Mash 50kg", Price: 2200},
	{Name: "Growers Mash 50kg", Price: 2400},
}

func FindProduct(name string) (Product, bool) {
	for _, p := range Products {
		if p.Name == name {
			return p, true
		}
	}

	return Product{}, false
}

type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusConfirmed OrderStatus = "confirmed"
	StatusCompleted OrderStatus = "completed"
	StatusCancelled OrderStatus = "cancelled"
)

// transitions lists the statuses reachable from each status.
var transitions = map[OrderStatus][]OrderStatus{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCompleted},
}

func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, t := range transitions[s] {
		if t == next {
			return true
		}
	}

	return false
}

type OrderItem struct {
	ID        uuid.UUID `json:"id"`
	Product   string    `json:"product"`
	Quantity  int       `json:"quantity"`
	UnitPrice float64   `json:"unitPrice"`
	Total     float64   `json:"total"`
}

type Order struct {
	ID            uuid.UUID   `json:"id"`
	CustomerName  string      `json:"customerName"`
	CustomerPhone string      `json:"customerPhone"`
	Items         []OrderItem `json:"items"`
	TotalAmount   float64     `json:"totalAmount"`
	Status        OrderStatus `json:"status"`
	CreatedAt     time.Time   `json:"createdAt"`
	Notes         string      `json:"notes,omitempty"`
}

// DemoSales are the sales a fresh session starts with.
func DemoSales(now time.Time) []Sale {
	return []Sale{
		{ID: "1", Product: "Chick Mash 50kg", Quantity: 3, UnitPrice: 2800, Total: 8400, PaymentMethod: MPesa, Timestamp: now.Add(-30 * time.Minute), Customer: "Grace Wanjiku"},
		{ID: "2", Product: "Layers Mash 50kg", Quantity: 2, UnitPrice: 2200, Total: 4400, PaymentMethod: Cash, Timestamp: now.Add(-60 * time.Minute), Customer: "John Mwangi"},
		{ID: "3", Product: "Growers Mash 50kg", Quantity: 1, UnitPrice: 2400, Total: 2400, PaymentMethod: AirtelMoney, Timestamp: now.Add(-90 * time.Minute)},
	}
}

// DemoStatement stands in for a mobile money statement feed. Its entries keep
// the same ids for the life of the value, so repeated refreshes add nothing.
type DemoStatement struct {
	entries []Sale
}

func NewDemoStatement(now time.Time) *DemoStatement {
	base := now.UnixMilli()

	return &DemoStatement{entries: []Sale{
		{ID: fmt.Sprintf("MPT%d", base), Product: "Chick Mash 50kg", Quantity: 2, UnitPrice: 2800, Total: 5600, PaymentMethod: MPesa, Timestamp: now.Add(-10 * time.Minute), Customer: "Mary Njeri"},
		{ID: fmt.Sprintf("MPT%d", base+1), Product: "Layers Mash 50kg", Quantity: 3, UnitPrice: 2200, Total: 6600, PaymentMethod: MPesa, Timestamp: now.Add(-5 * time.Minute), Customer: "Peter Kimani"},
		{ID: fmt.Sprintf("MPT%d", base+2), Product: "Growers Mash 50kg", Quantity: 4, UnitPrice: 2400, Total: 9600, PaymentMethod: MPesa, Timestamp: now.Add(-2 * time.Minute), Customer: "Sarah Waweru"},
	}}
}

func (d *DemoStatement) Statement(ctx context.Context) ([]Sale, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return slices.Clone(d.entries), nil
}
