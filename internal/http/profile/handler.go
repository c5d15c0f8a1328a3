package profile

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	jsoniter "github.com/json-iterator/go"

	"github.com/numeraai/numera/internal/auth"
	"github.com/numeraai/numera/internal/onboarding"
	"github.com/numeraai/numera/internal/profile"
	"github.com/numeraai/numera/internal/validation"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Handler struct {
	svc *profile.Service
}

func NewHandler(svc *profile.Service) *Handler {
	return &Handler{svc: svc}
}

// Routes expects the caller to have put auth.Middleware in front.
func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.get)
	r.Patch("/", h.update)
	r.Patch("/mobile-money", h.mobileMoney)
	r.Get("/credit", h.credit)
	r.Get("/saccos", h.saccos)
	r.Get("/achievements", h.achievements)
}

type profileResponse struct {
	profile.UserData
	SignedInAs string `json:"signedInAs,omitempty"`
}

type updateRequest struct {
	onboarding.Profile
	Location string `json:"location"`
}

type errorsResponse struct {
	Errors validation.ErrorMap `json:"errors"`
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	resp := profileResponse{UserData: h.svc.Get(r.Context())}
	if claims, ok := auth.ClaimsFrom(r.Context()); ok {
		resp.SignedInAs = claims.Phone
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	var req updateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	data, err := h.svc.Update(r.Context(), profile.UpdateParams{Profile: req.Profile, Location: req.Location})
	if writeInvalid(w, err) {
		return
	}

	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, profileResponse{UserData: data})
}

func (h *Handler) mobileMoney(w http.ResponseWriter, r *http.Request) {
	var req profile.MobileMoney
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	m, err := h.svc.UpdateMobileMoney(r.Context(), req)
	if writeInvalid(w, err) {
		return
	}

	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, m)
}

func (h *Handler) credit(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, profile.Eligibility())
}

func (h *Handler) saccos(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, profile.SACCOs())
}

func (h *Handler) achievements(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, profile.Achievements())
}

// writeInvalid answers 422 with the field errors when err carries them.
func writeInvalid(w http.ResponseWriter, err error) bool {
	var errs validation.ErrorMap
	if !errors.As(err, &errs) {
		return false
	}

	writeJSON(w, http.StatusUnprocessableEntity, errorsResponse{Errors: errs})

	return true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
