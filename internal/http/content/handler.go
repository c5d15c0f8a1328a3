package content

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	jsoniter "github.com/json-iterator/go"

	"github.com/numeraai/numera/internal/content"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Handler struct {
	engine *content.Engine
}

func NewHandler(engine *content.Engine) *Handler {
	return &Handler{engine: engine}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.generate)
	r.Get("/options", h.options)
}

type optionsResponse struct {
	Platforms    []content.Option[content.Platform]    `json:"platforms"`
	ContentTypes []content.Option[content.ContentType] `json:"contentTypes"`
	Tones        []content.Option[content.Tone]        `json:"tones"`
	MaxLength    int                                   `json:"maxDescriptionLength"`
}

func (h *Handler) generate(w http.ResponseWriter, r *http.Request) {
	var req content.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := req.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	out := h.engine.Generate(r.Context(), req)

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(out); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) options(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(optionsResponse{
		Platforms:    content.Platforms,
		ContentTypes: content.ContentTypes,
		Tones:        content.Tones,
		MaxLength:    content.MaxDescriptionLength,
	}); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
