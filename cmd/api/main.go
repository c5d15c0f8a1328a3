package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/numeraai/numera/internal/alerts"
	"github.com/numeraai/numera/internal/auth"
	"github.com/numeraai/numera/internal/coach"
	"github.com/numeraai/numera/internal/config"
	"github.com/numeraai/numera/internal/content"
	"github.com/numeraai/numera/internal/dashboard"
	"github.com/numeraai/numera/internal/export"
	"github.com/numeraai/numera/internal/finance"
	financeStore "github.com/numeraai/numera/internal/finance/store"
	numeraHttp "github.com/numeraai/numera/internal/http"
	coachHandler "github.com/numeraai/numera/internal/http/coach"
	contentHandler "github.com/numeraai/numera/internal/http/content"
	dashboardHandler "github.com/numeraai/numera/internal/http/dashboard"
	exportHandler "github.com/numeraai/numera/internal/http/export"
	financeHandler "github.com/numeraai/numera/internal/http/finance"
	inventoryHandler "github.com/numeraai/numera/internal/http/inventory"
	matchingHandler "github.com/numeraai/numera/internal/http/matching"
	onboardingHandler "github.com/numeraai/numera/internal/http/onboarding"
	profileHandler "github.com/numeraai/numera/internal/http/profile"
	salesHandler "github.com/numeraai/numera/internal/http/sales"
	"github.com/numeraai/numera/internal/imagegen"
	"github.com/numeraai/numera/internal/importer"
	"github.com/numeraai/numera/internal/inventory"
	"github.com/numeraai/numera/internal/matching"
	matchingStore "github.com/numeraai/numera/internal/matching/store"
	"github.com/numeraai/numera/internal/onboarding"
	"github.com/numeraai/numera/internal/profile"
	"github.com/numeraai/numera/internal/sales"
	"github.com/numeraai/numera/internal/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	st, err := storage.Open(ctx, cfg)
	if err != nil {
		slog.Error("failed to open storage", "error", err)
		os.Exit(1)
	}
	defer st.Close()

	store := st.KV

	now := time.Now()

	var (
		issuer            = auth.NewIssuer(cfg.Auth.Secret, cfg.Auth.TTL)
		onboardingService = onboarding.NewService(store)
		matchingService   = matching.NewService(matchingStore.New(store))
		financeService    = finance.NewService(financeStore.New(store), matchingService)
		inventoryService  = inventory.NewService(st.Inventory)
		salesService      = sales.NewService(sales.DemoSales(now))
		profileService    = profile.NewService(onboardingService, store)
		exportService     = export.NewService(financeService)
		importService     = importer.NewService()
		dashboardService  = dashboard.NewService(onboardingService, salesService, financeService, inventoryService)
		contentEngine     = content.NewEngine(imagegen.NewClient(cfg.ImageGen.BaseURL, cfg.ImageGen.Width, cfg.ImageGen.Height))
		conversation      = coach.NewConversation(
			coach.NewClient(cfg.Coach.URL, cfg.Server.Timeout),
			coach.TypingDelay{Min: cfg.Coach.TypingMin, Max: cfg.Coach.TypingMax},
		)
		alertService = alerts.NewService(inventoryService, alerts.Config{
			Cron:    cfg.Alerts.Cron,
			Enabled: cfg.Alerts.Enabled,
		}, nil)
	)

	if err := alertService.Start(ctx); err != nil {
		slog.Error("failed to start low stock alerts", "error", err)
		os.Exit(1)
	}

	router := numeraHttp.New(numeraHttp.Handlers{
		Onboarding: onboardingHandler.NewHandler(onboardingService, issuer),
		Content:    contentHandler.NewHandler(contentEngine),
		Coach:      coachHandler.NewHandler(conversation, coach.ParseLanguage(cfg.App.Language)),
		Finance:    financeHandler.NewHandler(financeService),
		Matching:   matchingHandler.NewHandler(matchingService),
		Export:     exportHandler.NewHandler(exportService),
		Inventory:  inventoryHandler.NewHandler(inventoryService, alertService),
		Sales:      salesHandler.NewHandler(salesService, importService, sales.NewDemoStatement(now)),
		Profile:    profileHandler.NewHandler(profileService),
		Dashboard:  dashboardHandler.NewHandler(dashboardService),
	}, issuer, cfg.Server.AllowedOrigins)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: cfg.Server.Timeout,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.Timeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("server shutdown failed", "error", err)
		}
	}()

	slog.Info("starting server", "app", cfg.App.Name, "port", srv.Addr, "storage", cfg.Storage.Driver)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
