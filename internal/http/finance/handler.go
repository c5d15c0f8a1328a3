package finance

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	jsoniter "github.com/json-iterator/go"

	"github.com/numeraai/numera/internal/finance"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Handler struct {
	svc *finance.Service
}

func NewHandler(svc *finance.Service) *Handler {
	return &Handler{svc: svc}
}

// Routes mounts goals, expenses and analytics side by side, so it expects
// to be given the versioned root rather than a sub-route.
func (h *Handler) Routes(r chi.Router) {
	r.Get("/goals", h.listGoals)
	r.Post("/goals", h.addGoal)
	r.Patch("/goals/{id}", h.editGoal)

	r.Get("/expenses", h.listExpenses)
	r.Post("/expenses", h.addExpense)
	r.Delete("/expenses/{id}", h.deleteExpense)
	r.Get("/expenses/categories", h.categories)

	r.Get("/analytics", h.analytics)
}

type goalRequest struct {
	Title   string  `json:"title"`
	Current float64 `json:"current"`
	Target  float64 `json:"target"`
	Unit    string  `json:"unit"`
}

type editGoalRequest struct {
	Current float64 `json:"current"`
	Target  float64 `json:"target"`
}

type goalResponse struct {
	finance.Goal
	Progress float64 `json:"progress"`
}

type expenseRequest struct {
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Category    string  `json:"category"`
}

type expensesResponse struct {
	Expenses []finance.Expense `json:"expenses"`
	Total    float64           `json:"total"`
}

func toGoalResponse(g finance.Goal) goalResponse {
	return goalResponse{Goal: g, Progress: g.Progress()}
}

func (h *Handler) listGoals(w http.ResponseWriter, r *http.Request) {
	goals, err := h.svc.Goals(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	resp := make([]goalResponse, 0, len(goals))
	for _, g := range goals {
		resp = append(resp, toGoalResponse(g))
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) addGoal(w http.ResponseWriter, r *http.Request) {
	var req goalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	goal, err := h.svc.AddGoal(r.Context(), finance.GoalParams{
		Title:   req.Title,
		Current: req.Current,
		Target:  req.Target,
		Unit:    req.Unit,
	})
	if errors.Is(err, finance.ErrInvalidGoal) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, toGoalResponse(*goal))
}

func (h *Handler) editGoal(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req editGoalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	goal, err := h.svc.EditGoal(r.Context(), id, req.Current, req.Target)
	if errors.Is(err, finance.ErrNotFound) {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, toGoalResponse(*goal))
}

func (h *Handler) listExpenses(w http.ResponseWriter, r *http.Request) {
	expenses, err := h.svc.Expenses(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	resp := expensesResponse{Expenses: expenses}
	for _, e := range expenses {
		resp.Total += e.Amount
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) addExpense(w http.ResponseWriter, r *http.Request) {
	var req expenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	exp, err := h.svc.AddExpense(r.Context(), finance.ExpenseParams{
		Description: req.Description,
		Amount:      req.Amount,
		Category:    req.Category,
	})
	if errors.Is(err, finance.ErrInvalidSpend) || errors.Is(err, finance.ErrCategory) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, exp)
}

func (h *Handler) deleteExpense(w http.ResponseWriter, r *http.Request) {
	err := h.svc.DeleteExpense(r.Context(), chi.URLParam(r, "id"))
	if errors.Is(err, finance.ErrNotFound) {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) categories(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, finance.Categories)
}

func (h *Handler) analytics(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, finance.StaticAnalytics())
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
