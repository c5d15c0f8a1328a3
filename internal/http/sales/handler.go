package sales

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"

	"github.com/numeraai/numera/internal/importer"
	"github.com/numeraai/numera/internal/sales"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Handler struct {
	svc       *sales.Service
	importSvc *importer.Service
	statement sales.StatementSource
}

func NewHandler(svc *sales.Service, importSvc *importer.Service, statement sales.StatementSource) *Handler {
	return &Handler{svc: svc, importSvc: importSvc, statement: statement}
}

// Routes mounts sales, orders and the product catalogue on the versioned root.
func (h *Handler) Routes(r chi.Router) {
	r.Route("/sales", func(r chi.Router) {
		r.Get("/", h.list)
		r.Post("/", h.record)
		r.Get("/today", h.today)
		r.Post("/refresh", h.refresh)
		r.Post("/import", h.importStatement)
	})

	r.Route("/orders", func(r chi.Router) {
		r.Get("/", h.orders)
		r.Post("/", h.createOrder)
		r.Patch("/{id}/status", h.transition)
	})

	r.Get("/products", h.products)
}

type saleRequest struct {
	Product       string              `json:"product"`
	Quantity      int                 `json:"quantity"`
	UnitPrice     float64             `json:"unitPrice"`
	PaymentMethod sales.PaymentMethod `json:"paymentMethod"`
	Customer      string              `json:"customer"`
}

type batchResponse struct {
	Added       int          `json:"added"`
	Skipped     int          `json:"skipped"`
	Sales       []sales.Sale `json:"sales"`
	LastRefresh *time.Time   `json:"lastRefresh,omitempty"`
}

type orderItemRequest struct {
	Product   string  `json:"product"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unitPrice"`
}

type orderRequest struct {
	CustomerName  string             `json:"customerName"`
	CustomerPhone string             `json:"customerPhone"`
	Notes         string             `json:"notes"`
	Items         []orderItemRequest `json:"items"`
}

type statusRequest struct {
	Status sales.OrderStatus `json:"status"`
}

func (h *Handler) list(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.List())
}

func (h *Handler) record(w http.ResponseWriter, r *http.Request) {
	var req saleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	sale, err := h.svc.RecordSale(sales.SaleParams{
		Product:       req.Product,
		Quantity:      req.Quantity,
		UnitPrice:     req.UnitPrice,
		PaymentMethod: req.PaymentMethod,
		Customer:      req.Customer,
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	writeJSON(w, http.StatusCreated, sale)
}

func (h *Handler) today(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.Today())
}

func (h *Handler) refresh(w http.ResponseWriter, r *http.Request) {
	added, err := h.svc.Refresh(r.Context(), h.statement)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}

	last := h.svc.LastRefresh()

	writeJSON(w, http.StatusOK, batchResponse{
		Added:       len(added),
		Sales:       nonNil(added),
		LastRefresh: &last,
	})
}

func (h *Handler) importStatement(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		http.Error(w, "failed to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}

	provider := importer.Provider(r.FormValue("provider"))
	if provider == "" {
		provider = importer.ProviderMPesa
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "file field is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	parsed, err := h.importSvc.Import(provider, file)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	added := h.svc.Merge(parsed)

	writeJSON(w, http.StatusCreated, batchResponse{
		Added:   len(added),
		Skipped: len(parsed) - len(added),
		Sales:   nonNil(added),
	})
}

func (h *Handler) orders(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.Orders())
}

func (h *Handler) createOrder(w http.ResponseWriter, r *http.Request) {
	var req orderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	params := sales.OrderParams{
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		Notes:         req.Notes,
		Items:         make([]sales.ItemParams, 0, len(req.Items)),
	}

	for _, it := range req.Items {
		params.Items = append(params.Items, sales.ItemParams{
			Product:   it.Product,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
		})
	}

	order, err := h.svc.CreateOrder(params)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	writeJSON(w, http.StatusCreated, order)
}

func (h *Handler) transition(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req statusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	order, err := h.svc.Transition(id, req.Status)
	if errors.Is(err, sales.ErrNotFound) {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	if errors.Is(err, sales.ErrInvalidTransition) {
		http.Error(w, err.Error(), http.StatusConflict)
		return
	}

	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, order)
}

func (h *Handler) products(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, sales.Products)
}

func nonNil(s []sales.Sale) []sales.Sale {
	if s == nil {
		return []sales.Sale{}
	}

	return s
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
