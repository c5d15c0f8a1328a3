package inventory

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	jsoniter "github.com/json-iterator/go"

	"github.com/numeraai/numera/internal/alerts"
	"github.com/numeraai/numera/internal/inventory"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Handler struct {
	svc    *inventory.Service
	alerts *alerts.Service
}

func NewHandler(svc *inventory.Service, alertSvc *alerts.Service) *Handler {
	return &Handler{svc: svc, alerts: alertSvc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/", h.add)
	r.Get("/summary", h.summary)
	r.Get("/alerts", h.lowStock)
}

type itemRequest struct {
	Name             string  `json:"name"`
	Category         string  `json:"category"`
	CurrentStock     int     `json:"currentStock"`
	MinimumThreshold int     `json:"minimumThreshold"`
	MaximumCapacity  int     `json:"maximumCapacity"`
	UnitPrice        float64 `json:"unitPrice"`
	Supplier         string  `json:"supplier"`
}

type itemResponse struct {
	inventory.Item
	Status      inventory.Status `json:"status"`
	StatusLabel string           `json:"statusLabel"`
	Value       float64          `json:"value"`
}

type errorsResponse struct {
	Errors inventory.ValidationError `json:"errors"`
}

func toItemResponse(i inventory.Item) itemResponse {
	status := inventory.StockStatus(i)

	return itemResponse{
		Item:        i,
		Status:      status,
		StatusLabel: status.Label(),
		Value:       i.Value(),
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.Search(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	resp := make([]itemResponse, 0, len(items))
	for _, i := range items {
		resp = append(resp, toItemResponse(i))
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) add(w http.ResponseWriter, r *http.Request) {
	var req itemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	item, err := h.svc.Add(r.Context(), inventory.AddParams{
		Name:             req.Name,
		Category:         req.Category,
		CurrentStock:     req.CurrentStock,
		MinimumThreshold: req.MinimumThreshold,
		MaximumCapacity:  req.MaximumCapacity,
		UnitPrice:        req.UnitPrice,
		Supplier:         req.Supplier,
	})

	var invalid inventory.ValidationError
	if errors.As(err, &invalid) {
		writeJSON(w, http.StatusUnprocessableEntity, errorsResponse{Errors: invalid})
		return
	}

	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, toItemResponse(*item))
}

func (h *Handler) summary(w http.ResponseWriter, r *http.Request) {
	s, err := h.svc.Summary(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, s)
}

// lowStock runs a sweep on demand. When a scheduled sweep is in flight the
// previous result is served instead.
func (h *Handler) lowStock(w http.ResponseWriter, r *http.Request) {
	found, err := h.alerts.Sweep(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if found == nil {
		found = h.alerts.Last()
	}

	if found == nil {
		found = []alerts.Alert{}
	}

	writeJSON(w, http.StatusOK, found)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
