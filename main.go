package main

//go:generate swag init

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/VivekbirN/SDP-project/config"
	"github.com/VivekbirN/SDP-project/db"
	_ "github.com/VivekbirN/SDP-project/docs"
	"github.com/VivekbirN/SDP-project/handlers"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

// @title           Utility Bill Tracker API
// @version         1.0.0
// @description     API for recording utility bills and deriving trends, analytics, cost summaries and advisor replies.
// @host            localhost:8080
// @BasePath        /api/v1
// @securityDefinitions.basic  BasicAuth

func main() {
	configPath := flag.String("config", ".", "Directory containing config.yaml")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Configure structured logging
	slog.SetDefault(newLogger(cfg.Logging, os.Stdout))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, closeStore, err := openStore(ctx, cfg.Database)
	if err != nil {
		slog.Error("failed to open bill store", "error", err)
		os.Exit(1)
	}
	defer closeStore()

	// Set shared store for handlers
	handlers.Store = store

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      newRouter(cfg),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server starting", "address", srv.Addr, "store", cfg.Database.Driver)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server failed", "error", err)
			os.Exit(1)
		}
	case <-ctx.Done():
		slog.Info("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("server shutdown failed", "error", err)
		}
	}
}

func newLogger(cfg config.LoggingConfig, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.SlogLevel()}
	if cfg.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// openStore builds the configured bill store and its cleanup func.
func openStore(ctx context.Context, cfg config.DatabaseConfig) (db.BillStore, func(), error) {
	if cfg.Driver != config.DriverPostgres {
		slog.Warn("using in-memory bill store, bills are lost on restart")
		return db.NewMemoryBillStore(), func() {}, nil
	}

	database, err := db.Open(ctx, cfg.URL)
	if err != nil {
		return nil, nil, err
	}
	if err := db.Migrate(database); err != nil {
		database.Close()
		return nil, nil, err
	}
	return db.NewSQLBillStore(database), func() { database.Close() }, nil
}

func newRouter(cfg *config.Config) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/health", handlers.Health)

	// API routes with basic auth
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(handlers.RateLimit(cfg.Server.RateLimitPerSecond))
		r.Use(handlers.BasicAuth(cfg.Auth.User, cfg.Auth.Pass))

		// Bills
		r.Get("/bills", handlers.ListBills)
		r.Post("/bills", handlers.CreateBill)
		r.Get("/bills/{id}", handlers.GetBill)
		r.Put("/bills/{id}", handlers.UpdateBill)
		r.Delete("/bills/{id}", handlers.DeleteBill)
		r.Post("/bills/{id}/pay", handlers.PayBill)

		// Insights
		r.Get("/trends", handlers.GetTrends)
		r.Get("/trends/chart", handlers.GetTrendChart)
		r.Get("/analytics", handlers.GetAnalytics)
		r.Get("/cost-summary", handlers.GetCostSummary)
		r.Get("/summary/monthly", handlers.GetMonthlySummary)
		r.Get("/summary/yearly", handlers.GetYearlySummary)

		// Advisor
		r.Post("/chat", handlers.Chat)

		// Dashboard
		r.Get("/dashboard", handlers.GetDashboard)
	})

	// Swagger UI
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	return r
}
