package onboarding

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	jsoniter "github.com/json-iterator/go"

	"github.com/numeraai/numera/internal/auth"
	"github.com/numeraai/numera/internal/onboarding"
	"github.com/numeraai/numera/internal/validation"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Handler struct {
	svc    *onboarding.Service
	issuer *auth.Issuer
}

func NewHandler(svc *onboarding.Service, issuer *auth.Issuer) *Handler {
	return &Handler{svc: svc, issuer: issuer}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.get)
	r.Delete("/", h.reset)
	r.Post("/validate", h.validate)
	r.Post("/complete", h.complete)
}

type validateRequest struct {
	Step validation.Step    `json:"step"`
	Data onboarding.Profile `json:"data"`
}

type validateResponse struct {
	Valid  bool                `json:"valid"`
	Errors validation.ErrorMap `json:"errors"`
}

type completeResponse struct {
	Profile onboarding.Profile `json:"profile"`
	Token   string             `json:"token"`
}

func (h *Handler) validate(w http.ResponseWriter, r *http.Request) {
	var req validateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	errs := validation.ValidateStep(req.Step, req.Data.Data())

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(validateResponse{Valid: errs.Valid(), Errors: errs}); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) complete(w http.ResponseWriter, r *http.Request) {
	var req onboarding.Profile
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	p, err := h.svc.Complete(r.Context(), req)

	var errs validation.ErrorMap
	if errors.As(err, &errs) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)

		if err := json.NewEncoder(w).Encode(validateResponse{Errors: errs}); err != nil {
			slog.Error("failed to encode response", "error", err)
		}

		return
	}

	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	token, err := h.issuer.Issue(p.Phone)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(completeResponse{Profile: p, Token: token}); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	p, ok := h.svc.Load(r.Context())
	if !ok {
		http.Error(w, "not onboarded", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(p); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) reset(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Reset(r.Context()); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
