package coach

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	jsoniter "github.com/json-iterator/go"

	"github.com/numeraai/numera/internal/coach"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Handler struct {
	conv *coach.Conversation
	lang coach.Language
}

// NewHandler answers in lang when a request does not name a language.
func NewHandler(conv *coach.Conversation, lang coach.Language) *Handler {
	return &Handler{conv: conv, lang: lang}
}

func (h *Handler) language(requested string) coach.Language {
	if strings.TrimSpace(requested) == "" {
		return h.lang
	}

	return coach.ParseLanguage(requested)
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/ask", h.ask)
	r.Post("/quick", h.quick)
	r.Get("/messages", h.messages)
	r.Get("/quick-actions", h.quickActions)
	r.Get("/insights", h.insights)
}

type askRequest struct {
	Message  string `json:"message"`
	Language string `json:"language"`
}

type quickRequest struct {
	ActionID string `json:"actionId"`
	Language string `json:"language"`
}

type messagesResponse struct {
	Messages []coach.Message `json:"messages"`
	Typing   bool            `json:"typing"`
}

func (h *Handler) ask(w http.ResponseWriter, r *http.Request) {
	var req askRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	msg, err := h.conv.Send(r.Context(), req.Message, h.language(req.Language))
	h.reply(w, msg, err)
}

func (h *Handler) quick(w http.ResponseWriter, r *http.Request) {
	var req quickRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	action, ok := coach.FindQuickAction(req.ActionID)
	if !ok {
		http.Error(w, "unknown quick action", http.StatusNotFound)
		return
	}

	msg, err := h.conv.QuickAction(r.Context(), action.Query, h.language(req.Language))
	h.reply(w, msg, err)
}

func (h *Handler) reply(w http.ResponseWriter, msg coach.Message, err error) {
	if errors.Is(err, coach.ErrEmptyMessage) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err != nil {
		// The client went away while the reply was being typed.
		slog.Info("coach reply dropped", "error", err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(msg); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) messages(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(messagesResponse{
		Messages: h.conv.Messages(),
		Typing:   h.conv.Typing(),
	}); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) quickActions(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(coach.QuickActions); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) insights(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(coach.Insights); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
