package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/numeraai/numera/internal/auth"
	"github.com/numeraai/numera/internal/http/coach"
	"github.com/numeraai/numera/internal/http/content"
	"github.com/numeraai/numera/internal/http/dashboard"
	"github.com/numeraai/numera/internal/http/export"
	"github.com/numeraai/numera/internal/http/finance"
	"github.com/numeraai/numera/internal/http/inventory"
	"github.com/numeraai/numera/internal/http/matching"
	"github.com/numeraai/numera/internal/http/onboarding"
	"github.com/numeraai/numera/internal/http/profile"
	"github.com/numeraai/numera/internal/http/sales"
)

type Handlers struct {
	Onboarding *onboarding.Handler
	Content    *content.Handler
	Coach      *coach.Handler
	Finance    *finance.Handler
	Matching   *matching.Handler
	Export     *export.Handler
	Inventory  *inventory.Handler
	Sales      *sales.Handler
	Profile    *profile.Handler
	Dashboard  *dashboard.Handler
}

func New(h Handlers, issuer *auth.Issuer, allowedOrigins []string) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))

	router.Route("/api/v1", func(r chi.Router) {
		r.Route("/onboarding", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			h.Onboarding.Routes(r)
		})

		r.Route("/content", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			h.Content.Routes(r)
		})

		r.Route("/coach", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			h.Coach.Routes(r)
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			h.Finance.Routes(r)
		})

		r.Route("/categories", h.Matching.Routes)
		r.Route("/reports", h.Export.Routes)

		r.Route("/inventory", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			h.Inventory.Routes(r)
		})

		// Sales takes multipart statement uploads next to JSON bodies.
		r.Group(h.Sales.Routes)

		r.Route("/profile", func(r chi.Router) {
			r.Use(issuer.Middleware)
			r.Use(middleware.AllowContentType("application/json"))
			h.Profile.Routes(r)
		})

		r.Route("/dashboard", h.Dashboard.Routes)
	})

	return router
}
